package services

import (
	"time"

	"github.com/paramp07/Nutritrack/models"
	"github.com/paramp07/Nutritrack/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DayService struct {
	db *gorm.DB
}

func NewDayService(db *gorm.DB) *DayService {
	return &DayService{db: db}
}

// Resolve maps a date to its Day row, creating the row if the date has not
// been seen yet. Two requests on the same calendar date always resolve to
// the same row regardless of time of day. The insert is ON CONFLICT DO
// NOTHING on the unique date column, so concurrent resolves for a fresh
// date cannot both create one.
func (s *DayService) Resolve(date time.Time) (*models.Day, error) {
	start := utils.DayStart(date)

	day := models.Day{Date: start}
	err := s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoNothing: true,
		}).
		Create(&day).Error
	if err != nil {
		return nil, err
	}

	// The insert reports no id back when the row already existed, so
	// always read the winner.
	var out models.Day
	if err := s.db.Where("date = ?", start).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
