package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Grouping GroupingConfig
}

type DatabaseConfig struct {
	Path          string
	MigrationsDir string
}

type GroupingConfig struct {
	UsernameSimilarityThreshold float64
	NameSimilarityThreshold     float64
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Database: DatabaseConfig{
			Path:          getEnv("DB_PATH", "./devscope.db"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		},
		Grouping: GroupingConfig{
			UsernameSimilarityThreshold: getEnvAsFloat("USERNAME_SIMILARITY_THRESHOLD", 0.7),
			NameSimilarityThreshold:     getEnvAsFloat("NAME_SIMILARITY_THRESHOLD", 0.8),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
