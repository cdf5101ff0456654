// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// PartyAll is the party filter value that disables party filtering
const PartyAll = "ALL"

// Sort order constants
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Domain types

type Candidate struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Party string `json:"party" yaml:"party"`
	Votes int    `json:"votes" yaml:"votes"`
	// Informational only. Winners are always recomputed from votes.
	IsWinner bool `json:"is_winner" yaml:"is_winner"`
}

type District struct {
	ID         string      `json:"id" yaml:"id"`
	Prefecture string      `json:"prefecture" yaml:"prefecture"`
	Name       string      `json:"name" yaml:"name"`
	Candidates []Candidate `json:"candidates" yaml:"candidates"`
	Margin     int         `json:"margin" yaml:"margin"`
	TotalVotes int         `json:"total_votes" yaml:"total_votes"`
}

// PartyCount is one row of a runner-up tally
type PartyCount struct {
	Party string `json:"party"`
	Count int    `json:"count"`
}

// Request types

// DistrictQuery selects and orders districts.
// A nil MaxMargin means no margin bound.
type DistrictQuery struct {
	MaxMargin *int   `json:"max_margin,omitempty"`
	Party     string `json:"party,omitempty"`
	Order     string `json:"order,omitempty"`
}

// Response types

type CandidateView struct {
	Candidate
	VotesDisplay string  `json:"votes_display"`
	Share        float64 `json:"share"` // percent of the leader's votes
	Color        string  `json:"color"`
	Rank         int     `json:"rank"` // 1-indexed ranking
}

type DistrictSummary struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Prefecture    string          `json:"prefecture"`
	Margin        int             `json:"margin"`
	MarginDisplay string          `json:"margin_display"`
	CloseRace     bool            `json:"close_race"`
	WinnerID      string          `json:"winner_id,omitempty"`
	Leaders       []CandidateView `json:"leaders"`
}

type DistrictListResponse struct {
	Districts []DistrictSummary `json:"districts"`
	Count     int               `json:"count"`
}

type QueryResponse struct {
	Districts []DistrictSummary `json:"districts"`
	Count     int               `json:"count"`
	// Only populated when no party filter is active
	RunnerUps []PartyCount `json:"runner_ups,omitempty"`
}

type ComparisonView struct {
	Target        *CandidateView `json:"target,omitempty"`
	VotesToFlip   int            `json:"votes_to_flip"`
	FlipDisplay   string         `json:"flip_display"`
	SelectedWon   bool           `json:"selected_won"`
	SelectedParty string         `json:"selected_party,omitempty"`
}

type DistrictDetail struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CanonicalName string          `json:"canonical_name"`
	Prefecture    string          `json:"prefecture"`
	WikipediaURL  string          `json:"wikipedia_url"`
	Margin        int             `json:"margin"`
	MarginDisplay string          `json:"margin_display"`
	TotalVotes    int             `json:"total_votes"`
	Winner        *CandidateView  `json:"winner,omitempty"`
	RunnerUp      *CandidateView  `json:"runner_up,omitempty"`
	Candidates    []CandidateView `json:"candidates"`
	Comparison    ComparisonView  `json:"comparison"`
}

type RunnerUpResponse struct {
	RunnerUps []PartyCount `json:"runner_ups"`
	Districts int          `json:"districts"`
}

type PartyView struct {
	Party string `json:"party"`
	Color string `json:"color"`
}

type PartiesResponse struct {
	Parties []PartyView `json:"parties"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
