package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/mattn/go-isatty"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/girigiri/cliparse"
	"github.com/danielhkuo/girigiri/dataset"
	"github.com/danielhkuo/girigiri/db"
	"github.com/danielhkuo/girigiri/middleware"
	"github.com/danielhkuo/girigiri/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg.LogLevel))

	// Load the dataset once; handlers only read it
	ds, err := loadDataset(context.Background(), cfg)
	if err != nil {
		slog.Error("dataset load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Dataset ready", "districts", ds.Len(), "parties", len(ds.Parties()))

	// Create router
	mux := router.NewRouter(ds, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// newLogger writes text to a terminal and JSON otherwise
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func loadDataset(ctx context.Context, cfg cliparse.Config) (*dataset.Dataset, error) {
	if cfg.DataFile != "" {
		return dataset.LoadFile(cfg.DataFile)
	}

	// database/sql driver names match the accepted database types
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.CreateSchema(ctx, dbConn); err != nil {
		return nil, fmt.Errorf("schema creation failed: %w", err)
	}

	return dataset.Load(ctx, dbConn)
}
