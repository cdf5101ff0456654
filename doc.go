// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the girigiri API server.

girigiri ("just barely") explores close races in single-member district
election results: which districts were decided by the smallest margins,
which parties keep finishing second, and how many votes would have
flipped each seat.

# Starting the Server

The server needs exactly one dataset source, a file or a database:

	DATA_FILE=results.json go run main.go

Or with flags:

	go run main.go -p 3318 -f results.yaml
	go run main.go -d "postgres://..." -t postgres

A database is filled with the operator CLI:

	go run ./cmd/girigiri import results.json -d girigiri.db

# Configuration

  - DATA_FILE (-f): JSON or YAML dataset
  - DATABASE_URL (-d): SQL store written by `girigiri import`
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): Server port (default: 3318)
  - CLOSE_RACE_THRESHOLD (-close-race): default 5000
  - LOG_LEVEL (-log-level): default info

Logs are text on a terminal and JSON otherwise.

# Architecture

  - analytics: Ranking, margins, filters, tallies, district names
  - dataset: Immutable loaded dataset (file or SQL)
  - db: Schema, import and load
  - handlers: HTTP request handlers (districts, tallies, chart, parties)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request ids, JSON helpers
  - models: Domain and response types, party colours
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
