package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/paramp07/Nutritrack/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AppConfig holds the runtime settings read from the environment.
type AppConfig struct {
	Port        string
	CalorieGoal int
	CORSOrigins string
}

// Load reads .env (when present) and the process environment.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := AppConfig{
		Port:        getenv("PORT", "8080"),
		CORSOrigins: getenv("CORS_ORIGINS", "*"),
		CalorieGoal: 2000,
	}
	if v := os.Getenv("CALORIE_GOAL"); v != "" {
		goal, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid CALORIE_GOAL %q: %v", v, err)
		}
		cfg.CalorieGoal = goal
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB connects to Postgres and migrates the schema.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Day{}, &models.Meal{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}
