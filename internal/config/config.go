package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode    string
	Port       string
	Storage    StorageConfig
	JWT        JWTConfig
	Seed       SeedConfig
	Attendance AttendanceConfig
	Reminder   ReminderConfig
}

// StorageConfig holds the key-value store configuration
type StorageConfig struct {
	DataDir string
}

// JWTConfig holds access token configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// SeedConfig controls startup seeding
type SeedConfig struct {
	DemoData bool
}

// AttendanceConfig holds attendance service tuning
type AttendanceConfig struct {
	// ListLatencyMS simulates upstream latency in the listing query.
	// Demo knob only; callers must not depend on it.
	ListLatencyMS int
}

// ReminderConfig holds the check-out reminder cron settings
type ReminderConfig struct {
	Enabled  bool
	Schedule string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "480"))
	seedDemo, _ := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	listLatency, _ := strconv.Atoi(getEnv("ATTENDANCE_LIST_LATENCY_MS", "0"))
	reminderEnabled, _ := strconv.ParseBool(getEnv("REMINDER_ENABLED", "true"))

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "./data"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "default_secret"),
			AccessTokenMins: accessMins,
		},
		Seed: SeedConfig{
			DemoData: seedDemo,
		},
		Attendance: AttendanceConfig{
			ListLatencyMS: listLatency,
		},
		Reminder: ReminderConfig{
			Enabled:  reminderEnabled,
			Schedule: getEnv("REMINDER_SCHEDULE", "0 18 * * *"),
		},
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://attendly.example.com"
	}
	return origins
}
