package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Company CompanyConfig
	App     AppConfig
}

// CompanyConfig identifies the employer on generated WPS files and
// documents.
type CompanyConfig struct {
	Name         string
	EmployerCode string
	BankCode     string
}

// AppConfig holds application configuration
type AppConfig struct {
	Env       string
	LogLevel  string
	OutputDir string
}

func Load() (*Config, error) {
	// A missing .env file is fine; env vars may be set directly.
	_ = godotenv.Load()

	config := &Config{
		Company: CompanyConfig{
			Name:         getEnv("COMPANY_NAME", ""),
			EmployerCode: getEnv("WPS_EMPLOYER_CODE", ""),
			BankCode:     getEnv("WPS_EMPLOYER_BANK_CODE", ""),
		},
		App: AppConfig{
			Env:       getEnv("APP_ENV", "development"),
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			OutputDir: getEnv("OUTPUT_DIR", "output"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Company.Name == "" {
		return fmt.Errorf("COMPANY_NAME is required")
	}
	if c.Company.EmployerCode == "" {
		return fmt.Errorf("WPS_EMPLOYER_CODE is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
