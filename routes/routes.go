package routes

import (
	"net/http"
	"strings"

	"github.com/paramp07/Nutritrack/config"
	"github.com/paramp07/Nutritrack/controllers"
	"github.com/paramp07/Nutritrack/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if cfg.CORSOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.CORSOrigins, ",")
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	r.Use(cors.New(corsCfg))

	days := services.NewDayService(db)
	meals := services.NewMealService(db, days)
	summaries := services.NewSummaryService(meals, cfg.CalorieGoal)

	mealCtl := controllers.NewMealController(meals)
	summaryCtl := controllers.NewSummaryController(summaries)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/meals", mealCtl.ListMeals)
	r.POST("/meals", mealCtl.LogMeal)
	r.PUT("/meals/:id", mealCtl.UpdateMeal)
	r.DELETE("/meals/:id", mealCtl.DeleteMeal)

	r.GET("/summary", summaryCtl.GetDailySummary)
	r.GET("/summary/weekly", summaryCtl.GetWeeklySummary)

	return r
}
