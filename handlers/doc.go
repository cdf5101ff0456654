// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the girigiri API.

# Handler Types

DistrictHandler serves every read of the loaded dataset. It is created
with the dataset and config:

	districtHandler := handlers.NewDistrictHandler(ds, cfg)

The dataset is immutable once loaded, so handlers share it without
locking.

# District Queries

	GET  /districts        → ListDistricts (max_margin, party, order)
	POST /query            → Query (same query as a JSON body; empty body means no filters)

Both apply the margin bound, then the runner-up party filter, then sort
by margin. An absent max_margin means no bound; negative or non-integer
values are rejected with 400. order is asc (default) or desc. party=ALL
or an empty party disables the party filter, and in that case POST
/query also returns the runner-up tally of the margin-filtered districts.

Each result is a DistrictSummary with humanized margin, a close_race
flag (margin below CloseRaceThreshold) and the first two candidates as
supplied.

# District Detail

	GET /districts/{id}?party=  → GetDistrict

Returns the canonical district name, a Wikipedia link, candidates in
ranking order with vote share and party colour, and the comparison
target. Without a party the target is the runner-up; with a party it is
that party's best candidate, unless that candidate won.

# Runner-up Tally

	GET /runner-ups?max_margin=&order=                  → GetRunnerUps
	GET /runner-ups/chart.png?max_margin=&order=&limit= → GetRunnerUpChart

Districts are sorted by margin (order, default asc) before counting.
Parties with equal counts keep the order in which they were first seen,
so ties follow the margin sort, and POST /query counts in its own order.

The chart is a go-chart bar chart of the top limit parties (default 5)
drawn in party colours. An empty tally is a 404 since there is nothing
to draw.

# Parties

	GET /parties → GetParties

Every party appearing in the dataset with its palette colour.
*/
package handlers
