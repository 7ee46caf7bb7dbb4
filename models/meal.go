package models

import "time"

// Meal is a single logged eating event.
type Meal struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Name string    `gorm:"not null" json:"name"`
	Type string    `gorm:"not null" json:"type"` // "breakfast"|"lunch"|"dinner"|"snack"
	Time time.Time `gorm:"index;not null" json:"time"`

	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"` // grams
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`

	DayID uint `gorm:"index;not null" json:"-"`
	Day   Day  `json:"-"`
}
