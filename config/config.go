package config

import (
	"fmt"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type PCRTConfig struct {
	// URL of the PCRT installation the API fronts.
	URL string
	// CompleteStatusID is the boxstyles status that marks a work order
	// as collected/closed. Everything else counts as open.
	CompleteStatusID int
}

type Config struct {
	Database DatabaseConfig
	PCRT     PCRTConfig
	Port     string
}

// requiredSettings mirrors the original deployment's config check: the
// process refuses to start without them.
var requiredSettings = []string{
	"DB_HOST",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"PCRT_URL",
	"PCRT_COMPLETE_STATUS_ID",
}

// Load reads configuration from the environment. godotenv is expected
// to have populated it from .env before this runs.
func Load() (*Config, error) {
	for _, setting := range requiredSettings {
		if os.Getenv(setting) == "" {
			return nil, fmt.Errorf("missing required setting %s", setting)
		}
	}

	completeStatusID, err := strconv.Atoi(os.Getenv("PCRT_COMPLETE_STATUS_ID"))
	if err != nil {
		return nil, fmt.Errorf("PCRT_COMPLETE_STATUS_ID must be numeric: %w", err)
	}

	dbPort := 3306
	if raw := os.Getenv("DB_PORT"); raw != "" {
		dbPort, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("DB_PORT must be numeric: %w", err)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     dbPort,
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		PCRT: PCRTConfig{
			URL:              os.Getenv("PCRT_URL"),
			CompleteStatusID: completeStatusID,
		},
		Port: port,
	}, nil
}
