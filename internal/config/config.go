package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for a pipeline run
type Config struct {
	InputDir  string
	OutputDir string
	Files     FilesConfig
	Forecast  ForecastConfig
	Recommend RecommendConfig
	Workers   int
}

// FilesConfig names the input files inside InputDir
type FilesConfig struct {
	Sales    string
	Products string
	Waste    string
}

// ForecastConfig holds reorder formula constants
type ForecastConfig struct {
	LeadTimeDays int
	SafetyFactor float64
}

// RecommendConfig holds co-purchase settings
type RecommendConfig struct {
	BasketKey    string
	MinPairCount int
}

// Load loads configuration from a .env file (if present) and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables with defaults
func FromEnv() (*Config, error) {
	leadTime, err := getInt("LEAD_TIME_DAYS", 2)
	if err != nil {
		return nil, err
	}
	safetyFactor, err := getFloat("SAFETY_FACTOR", 1.5)
	if err != nil {
		return nil, err
	}
	minPairs, err := getInt("MIN_PAIR_COUNT", 1)
	if err != nil {
		return nil, err
	}
	workers, err := getInt("WORKERS", 4)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		InputDir:  getEnv("INPUT_DIR", "data/input"),
		OutputDir: getEnv("OUTPUT_DIR", "data/output"),
		Files: FilesConfig{
			Sales:    getEnv("SALES_FILE", "sales.csv"),
			Products: getEnv("PRODUCTS_FILE", "products.csv"),
			Waste:    getEnv("WASTE_FILE", "waste_logs.csv"),
		},
		Forecast: ForecastConfig{
			LeadTimeDays: leadTime,
			SafetyFactor: safetyFactor,
		},
		Recommend: RecommendConfig{
			BasketKey:    getEnv("BASKET_KEY", "timestamp_cashier"),
			MinPairCount: minPairs,
		},
		Workers: workers,
	}

	return cfg, cfg.Validate()
}

// Validate checks values that cannot be corrected silently
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Forecast.LeadTimeDays < 0 {
		return fmt.Errorf("LEAD_TIME_DAYS must not be negative, got %d", c.Forecast.LeadTimeDays)
	}
	if c.Forecast.SafetyFactor < 0 {
		return fmt.Errorf("SAFETY_FACTOR must not be negative, got %v", c.Forecast.SafetyFactor)
	}
	if c.Workers < 1 {
		return fmt.Errorf("WORKERS must be at least 1, got %d", c.Workers)
	}
	return nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return f, nil
}
