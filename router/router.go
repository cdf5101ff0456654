// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/girigiri/cliparse"
	"github.com/danielhkuo/girigiri/dataset"
	"github.com/danielhkuo/girigiri/handlers"
	"github.com/danielhkuo/girigiri/middleware"
)

func NewRouter(ds *dataset.Dataset, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	districtHandler := handlers.NewDistrictHandler(ds, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// District queries
	mux.HandleFunc("GET /districts", middleware.WithLogging(districtHandler.ListDistricts))
	mux.HandleFunc("POST /query", middleware.WithLogging(districtHandler.Query))
	mux.HandleFunc("GET /districts/{id}", middleware.WithLogging(districtHandler.GetDistrict))

	// Runner-up tally
	mux.HandleFunc("GET /runner-ups", middleware.WithLogging(districtHandler.GetRunnerUps))
	mux.HandleFunc("GET /runner-ups/chart.png", middleware.WithLogging(districtHandler.GetRunnerUpChart))

	mux.HandleFunc("GET /parties", middleware.WithLogging(districtHandler.GetParties))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("girigiri API v1"))
	})

	return mux
}
