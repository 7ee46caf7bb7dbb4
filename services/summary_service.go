package services

import (
	"time"

	"github.com/paramp07/Nutritrack/models"
	"github.com/paramp07/Nutritrack/utils"
)

// DailySummary is the aggregate view of one calendar day. It is recomputed
// from the meal list on every request; nothing here is persisted.
type DailySummary struct {
	Date     string  `json:"date"`
	Meals    int     `json:"meals"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Goal     int     `json:"goal"`
	Percent  float64 `json:"percent"`
}

type SummaryService struct {
	meals *MealService
	goal  int
}

func NewSummaryService(meals *MealService, calorieGoal int) *SummaryService {
	return &SummaryService{meals: meals, goal: calorieGoal}
}

func (s *SummaryService) ForDate(date time.Time) (*DailySummary, error) {
	start := utils.DayStart(date)
	meals, err := s.meals.ListRange(start, start.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	sum := s.tally(start, meals)
	return &sum, nil
}

// ForWeek returns the seven daily summaries ending on the given date,
// oldest first. Days without meals show zero totals and no day rows are
// created for them.
func (s *SummaryService) ForWeek(end time.Time) ([]DailySummary, error) {
	last := utils.DayStart(end)
	from := last.AddDate(0, 0, -6)

	meals, err := s.meals.ListRange(from, last.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.Meal)
	for _, m := range meals {
		k := utils.DayStart(m.Time).Format("2006-01-02")
		byDay[k] = append(byDay[k], m)
	}

	out := make([]DailySummary, 0, 7)
	for d := from; !d.After(last); d = d.AddDate(0, 0, 1) {
		out = append(out, s.tally(d, byDay[d.Format("2006-01-02")]))
	}
	return out, nil
}

func (s *SummaryService) tally(day time.Time, meals []models.Meal) DailySummary {
	sum := DailySummary{
		Date:  day.Format("2006-01-02"),
		Meals: len(meals),
		Goal:  s.goal,
	}
	for _, m := range meals {
		sum.Calories += m.Calories
		sum.Protein += m.Protein
		sum.Carbs += m.Carbs
		sum.Fats += m.Fats
	}
	sum.Percent = pct(float64(sum.Calories), float64(s.goal))
	return sum
}

func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}
