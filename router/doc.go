// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the girigiri API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(ds, cfg)

# Endpoints

Health:

	GET /health

District queries:

	GET  /districts      - Filter and sort districts by margin
	POST /query          - Same query from a JSON body, plus runner-up tally
	GET  /districts/{id} - Full breakdown of one district

Runner-up tally:

	GET /runner-ups           - Tally as JSON
	GET /runner-ups/chart.png - Tally as a bar chart

Catalogue:

	GET /parties - Parties in the dataset with colours

Everything except /health and / is wrapped in middleware.WithLogging.
*/
package router
