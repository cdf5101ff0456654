// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the dataset, request, and response types for the API.

# Domain Types

The dataset is a sequence of districts, each with its own candidates:

  - Candidate: id, name, party, votes, is_winner
  - District: id, prefecture, name, candidates, margin, total_votes

Candidate order within a district is the order supplied by the dataset;
it is not assumed to be sorted by votes. The is_winner flag is carried
through but never used for ranking.

# Request Types

  - DistrictQuery: max_margin (optional), party, order

# Response Types

  - DistrictSummary: compact card for list views
  - DistrictListResponse: districts, count
  - QueryResponse: districts, count, runner_ups
  - DistrictDetail: ranked candidates, winner, runner-up, comparison
  - RunnerUpResponse: runner_ups, districts
  - PartiesResponse: parties with colours
  - ErrorResponse: error, message

# Constants

Party filter sentinel:

	PartyAll = "ALL"

Sort orders:

	OrderAsc  = "asc"
	OrderDesc = "desc"

# Colours

PartyColor returns the display colour for a party, falling back to
DefaultPartyColor.
*/
package models
