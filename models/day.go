package models

import "time"

// Day is a calendar-day bucket owning the meals logged on that date.
// At most one row exists per date; rows are created lazily the first time
// a meal is listed or logged for the date, and are never deleted.
type Day struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Date time.Time `gorm:"uniqueIndex;not null" json:"date"` // local midnight

	Meals []Meal `json:"-"`
}
