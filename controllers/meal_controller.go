package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/paramp07/Nutritrack/services"
	"github.com/paramp07/Nutritrack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

// mealBody is the request shape shared by create and update. All seven
// meal fields are required; like the frontend's truthiness check, a zero
// value counts as missing.
type mealBody struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Time     string  `json:"time" binding:"required"` // "HH:MM"
	Calories int     `json:"calories" binding:"required"`
	Protein  float64 `json:"protein" binding:"required"`
	Carbs    float64 `json:"carbs" binding:"required"`
	Fats     float64 `json:"fats" binding:"required"`

	Date string `json:"date"` // optional on create, defaults to today; ignored on update
}

func (b mealBody) toRequest() (services.MealRequest, error) {
	hour, minute, err := utils.ParseClock(b.Time)
	if err != nil {
		return services.MealRequest{}, err
	}
	return services.MealRequest{
		Name:     b.Name,
		Type:     b.Type,
		Hour:     hour,
		Minute:   minute,
		Calories: b.Calories,
		Protein:  b.Protein,
		Carbs:    b.Carbs,
		Fats:     b.Fats,
	}, nil
}

// GET /meals?date=2024-01-05
func (mc *MealController) ListMeals(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	meals, err := mc.meals.ListForDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// POST /meals
func (mc *MealController) LogMeal(c *gin.Context) {
	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	req, err := body.toRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// "Today" is resolved here at the boundary, never deeper down.
	date := time.Now()
	if body.Date != "" {
		if date, err = parseDate(body.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
	}

	meal, err := mc.meals.Create(date, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error adding meal"})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// PUT /meals/:id
func (mc *MealController) UpdateMeal(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	req, err := body.toRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.meals.Update(id, req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating meal"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id
func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := mc.meals.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return 0, false
	}
	return uint(id), true
}
