package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	SheetID            string
	SheetName          string
	ExamType           string
	TargetNet          float64
	LogLevel           string
	RefreshWorkerCount int
	RefreshQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	cfg := Config{
		Addr:               envOr("ADDR", ":8080"),
		SheetID:            envOr("SHEET_ID", ""),
		SheetName:          envOr("SHEET_NAME", ""),
		ExamType:           envOr("EXAM_TYPE", "TYT"),
		TargetNet:          envFloatOr("TARGET_NET", 0),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		RefreshWorkerCount: envIntOr("REFRESH_WORKER_COUNT", 1),
		RefreshQueueSize:   envIntOr("REFRESH_QUEUE_SIZE", 8),
	}
	if cfg.SheetName == "" {
		cfg.SheetName = cfg.ExamType
	}
	if cfg.TargetNet == 0 {
		cfg.TargetNet = DefaultTargetNet(cfg.ExamType)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.SheetID == "" {
		return fmt.Errorf("SHEET_ID cannot be empty")
	}
	if c.ExamType != "TYT" && c.ExamType != "AYT" {
		return fmt.Errorf("EXAM_TYPE must be TYT or AYT, got %q", c.ExamType)
	}
	if c.RefreshWorkerCount < 1 {
		return fmt.Errorf("REFRESH_WORKER_COUNT must be at least 1")
	}
	if c.RefreshQueueSize < 1 {
		return fmt.Errorf("REFRESH_QUEUE_SIZE must be at least 1")
	}
	if c.TargetNet < 0 {
		return fmt.Errorf("TARGET_NET cannot be negative")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}
