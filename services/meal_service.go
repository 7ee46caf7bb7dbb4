package services

import (
	"time"

	"github.com/paramp07/Nutritrack/models"
	"github.com/paramp07/Nutritrack/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db   *gorm.DB
	days *DayService
}

func NewMealService(db *gorm.DB, days *DayService) *MealService {
	return &MealService{db: db, days: days}
}

// MealRequest carries the user-supplied fields of a meal. Hour/Minute come
// from the "HH:MM" form input; the stored timestamp is derived from them
// and the target day.
type MealRequest struct {
	Name     string
	Type     string
	Hour     int
	Minute   int
	Calories int
	Protein  float64
	Carbs    float64
	Fats     float64
}

// ListForDate returns the meals of one calendar day ordered by time of
// day. The day row is created if it does not exist yet.
func (s *MealService) ListForDate(date time.Time) ([]models.Meal, error) {
	day, err := s.days.Resolve(date)
	if err != nil {
		return nil, err
	}

	meals := make([]models.Meal, 0)
	err = s.db.
		Where("day_id = ?", day.ID).
		Order("time asc").
		Find(&meals).Error
	return meals, err
}

// ListRange returns the meals with timestamps in [from, to), ordered by
// time. Unlike ListForDate it never creates day rows.
func (s *MealService) ListRange(from, to time.Time) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	err := s.db.
		Where("time >= ? AND time < ?", from, to).
		Order("time asc").
		Find(&meals).Error
	return meals, err
}

// Create logs a meal on the given date, resolving (or creating) the owning
// day and combining the day's date with the requested clock time.
func (s *MealService) Create(date time.Time, req MealRequest) (*models.Meal, error) {
	day, err := s.days.Resolve(date)
	if err != nil {
		return nil, err
	}

	meal := models.Meal{
		Name:     req.Name,
		Type:     req.Type,
		Time:     utils.AtClock(day.Date, req.Hour, req.Minute),
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
		DayID:    day.ID,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// Update replaces every user-supplied field of a meal. The clock is
// re-applied to the meal's own stored date, so editing a historical entry
// never moves it to another day, and the day reference is re-derived from
// that timestamp to keep meal and day consistent.
func (s *MealService) Update(id uint, req MealRequest) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		return nil, err
	}

	ts := utils.AtClock(meal.Time, req.Hour, req.Minute)
	day, err := s.days.Resolve(ts)
	if err != nil {
		return nil, err
	}

	meal.Name = req.Name
	meal.Type = req.Type
	meal.Time = ts
	meal.Calories = req.Calories
	meal.Protein = req.Protein
	meal.Carbs = req.Carbs
	meal.Fats = req.Fats
	meal.DayID = day.ID

	if err := s.db.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// Delete removes a meal. The owning day is kept even when it has no meals
// left.
func (s *MealService) Delete(id uint) error {
	res := s.db.Delete(&models.Meal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
