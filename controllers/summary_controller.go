package controllers

import (
	"net/http"
	"time"

	"github.com/paramp07/Nutritrack/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	summaries *services.SummaryService
}

func NewSummaryController(summaries *services.SummaryService) *SummaryController {
	return &SummaryController{summaries: summaries}
}

// GET /summary?date=2024-01-05
func (sc *SummaryController) GetDailySummary(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	sum, err := sc.summaries.ForDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error computing summary"})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /summary/weekly?date=2024-01-05 — the seven days ending on date
func (sc *SummaryController) GetWeeklySummary(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	sums, err := sc.summaries.ForWeek(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error computing summary"})
		return
	}
	c.JSON(http.StatusOK, sums)
}

// queryDate reads the optional date query parameter, defaulting to now.
func queryDate(c *gin.Context) (time.Time, bool) {
	s := c.Query("date")
	if s == "" {
		return time.Now(), true
	}
	date, err := parseDate(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
