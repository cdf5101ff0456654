// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort               = 3318
	DefaultCloseRaceThreshold = 5000
)

type Config struct {
	Port         int
	DataFile     string
	DatabaseURL  string
	DatabaseType string
	// Margins below this are flagged as close races
	CloseRaceThreshold int
	LogLevel           string
}

// ParseFlags validates flags and fills unset values from the environment.
// A .env file in the working directory is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Missing .env is fine
	_ = godotenv.Load()

	fs := flag.NewFlagSet("girigiri", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataFile, "f", "", "Dataset file (.json, .yaml)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&cfg.CloseRaceThreshold, "close-race", -1, "Margin below which a race is close")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("DATA_FILE")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DataFile == "" && cfg.DatabaseURL == "" {
		return Config{}, errors.New("dataset required (use -f / DATA_FILE or -d / DATABASE_URL)")
	}
	if cfg.DataFile != "" && cfg.DatabaseURL != "" {
		return Config{}, errors.New("choose one dataset source: data file or database URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.CloseRaceThreshold < 0 {
		if v := os.Getenv("CLOSE_RACE_THRESHOLD"); v != "" {
			threshold, err := strconv.Atoi(v)
			if err != nil || threshold < 0 {
				return Config{}, errors.New("invalid CLOSE_RACE_THRESHOLD env variable")
			}
			cfg.CloseRaceThreshold = threshold
		} else {
			cfg.CloseRaceThreshold = DefaultCloseRaceThreshold
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}

	return cfg, nil
}
