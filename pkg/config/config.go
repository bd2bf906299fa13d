package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Attendance AttendanceConfig
	Reports    ReportsConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
	APIKey       string
}

type DatabaseConfig struct {
	Path string
}

type AttendanceConfig struct {
	Timezone                 string
	RemoteAdjustmentMinHours string
	RemoteAdjustmentMaxHours string
}

type ReportsConfig struct {
	Dir       string
	Workers   int
	DailyHour int
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
			APIKey:       getEnv("API_KEY", ""),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./timecard.db"),
		},
		Attendance: AttendanceConfig{
			Timezone:                 getEnv("TIMEZONE", workinghours.DefaultTimezone),
			RemoteAdjustmentMinHours: getEnv("REMOTE_ADJUSTMENT_MIN_HOURS", "0"),
			RemoteAdjustmentMaxHours: getEnv("REMOTE_ADJUSTMENT_MAX_HOURS", "8"),
		},
		Reports: ReportsConfig{
			Dir:       getEnv("REPORT_DIR", "./reports"),
			Workers:   getEnvAsInt("REPORT_WORKERS", 1),
			DailyHour: getEnvAsInt("REPORT_DAILY_HOUR", 23),
		},
	}

	return nil
}

// Location resolves the configured attendance timezone
func (c *Config) Location() (*time.Location, error) {
	return workinghours.LoadLocation(c.Attendance.Timezone)
}

// AdjustmentRange builds the remote adjustment range from the configured bounds
func (c *Config) AdjustmentRange() (workinghours.AdjustmentRange, error) {
	min, err := decimal.NewFromString(c.Attendance.RemoteAdjustmentMinHours)
	if err != nil {
		return workinghours.AdjustmentRange{}, fmt.Errorf("%w: REMOTE_ADJUSTMENT_MIN_HOURS %q is not a decimal",
			workinghours.ErrMalformedInput, c.Attendance.RemoteAdjustmentMinHours)
	}
	max, err := decimal.NewFromString(c.Attendance.RemoteAdjustmentMaxHours)
	if err != nil {
		return workinghours.AdjustmentRange{}, fmt.Errorf("%w: REMOTE_ADJUSTMENT_MAX_HOURS %q is not a decimal",
			workinghours.ErrMalformedInput, c.Attendance.RemoteAdjustmentMaxHours)
	}
	return workinghours.NewAdjustmentRange(min, max)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
