// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DataFile: JSON or YAML dataset file
  - DatabaseURL: SQL store populated by `girigiri import`
  - DatabaseType: sqlite (default) or postgres
  - CloseRaceThreshold: margins below this are close races (default: 5000)
  - LogLevel: debug, info (default), warn, error

# CLI Flags

	-p           Server port
	-f           Dataset file
	-d           Database URL
	-t           Database type
	-close-race  Close race threshold
	-log-level   Log level

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATA_FILE            → -f
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	CLOSE_RACE_THRESHOLD → -close-race
	LOG_LEVEL            → -log-level

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded before the environment is read; variables
already set in the environment win over the file.

# Validation

ParseFlags returns an error if:

  - neither DATA_FILE nor DATABASE_URL is provided, or both are
  - PORT or CLOSE_RACE_THRESHOLD is not a valid number
  - DATABASE_TYPE is not sqlite or postgres
*/
package cliparse
