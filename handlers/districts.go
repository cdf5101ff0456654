// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/girigiri/analytics"
	"github.com/danielhkuo/girigiri/cliparse"
	"github.com/danielhkuo/girigiri/dataset"
	"github.com/danielhkuo/girigiri/middleware"
	"github.com/danielhkuo/girigiri/models"
)

type DistrictHandler struct {
	ds  *dataset.Dataset
	cfg cliparse.Config
}

func NewDistrictHandler(ds *dataset.Dataset, cfg cliparse.Config) *DistrictHandler {
	return &DistrictHandler{ds: ds, cfg: cfg}
}

// ListDistricts handles GET /districts
func (h *DistrictHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	summaries := h.summarize(analytics.Query(h.ds.Districts(), q))

	middleware.JSONResponse(w, http.StatusOK, models.DistrictListResponse{
		Districts: summaries,
		Count:     len(summaries),
	})
}

// Query handles POST /query
// Runs the same query from a JSON body. An empty body means no filters.
// With no party filter the runner-up tally of the margin-filtered
// districts is included, counted in the requested margin order.
func (h *DistrictHandler) Query(w http.ResponseWriter, r *http.Request) {
	var q models.DistrictQuery
	if err := middleware.ParseJSONBody(r, &q); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validateQuery(q); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	districts := h.ds.Districts()
	summaries := h.summarize(analytics.Query(districts, q))

	resp := models.QueryResponse{
		Districts: summaries,
		Count:     len(summaries),
	}
	if q.Party == "" || q.Party == models.PartyAll {
		resp.RunnerUps = analytics.TallyRunnerUpParties(marginOrdered(districts, q.MaxMargin, q.Order))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetDistrict handles GET /districts/{id}
func (h *DistrictHandler) GetDistrict(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	d, err := h.ds.Find(id)
	if errors.Is(err, dataset.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "District not found")
		return
	}
	if err != nil {
		slog.Error("failed to find district", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Dataset error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, buildDetail(d, r.URL.Query().Get("party")))
}

// GetRunnerUps handles GET /runner-ups
func (h *DistrictHandler) GetRunnerUps(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	maxMargin, err := parseMaxMargin(values.Get("max_margin"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	order, err := parseOrder(values.Get("order"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := marginOrdered(h.ds.Districts(), maxMargin, order)

	middleware.JSONResponse(w, http.StatusOK, models.RunnerUpResponse{
		RunnerUps: analytics.TallyRunnerUpParties(filtered),
		Districts: len(filtered),
	})
}

// GetParties handles GET /parties
func (h *DistrictHandler) GetParties(w http.ResponseWriter, r *http.Request) {
	parties := []models.PartyView{}
	for _, p := range h.ds.Parties() {
		parties = append(parties, models.PartyView{Party: p, Color: models.PartyColor(p)})
	}

	middleware.JSONResponse(w, http.StatusOK, models.PartiesResponse{Parties: parties})
}

func (h *DistrictHandler) summarize(districts []models.District) []models.DistrictSummary {
	summaries := make([]models.DistrictSummary, 0, len(districts))
	for _, d := range districts {
		summaries = append(summaries, buildSummary(d, h.cfg.CloseRaceThreshold))
	}
	return summaries
}

// parseQuery reads max_margin, party and order from the query string
func parseQuery(r *http.Request) (models.DistrictQuery, error) {
	values := r.URL.Query()

	maxMargin, err := parseMaxMargin(values.Get("max_margin"))
	if err != nil {
		return models.DistrictQuery{}, err
	}

	q := models.DistrictQuery{
		MaxMargin: maxMargin,
		Party:     values.Get("party"),
		Order:     values.Get("order"),
	}
	if err := validateQuery(q); err != nil {
		return models.DistrictQuery{}, err
	}
	return q, nil
}

// parseMaxMargin returns nil for an empty value
func parseMaxMargin(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, errors.New("max_margin must be a non-negative integer")
	}
	return &n, nil
}

// parseOrder accepts asc or desc; empty means asc
func parseOrder(s string) (string, error) {
	if !analytics.ValidOrder(s) {
		return "", errors.New("order must be asc or desc")
	}
	return s, nil
}

// marginOrdered applies the margin bound and sorts by margin.
// Tally ties go to the party seen first, so the order matters.
func marginOrdered(districts []models.District, maxMargin *int, order string) []models.District {
	return analytics.SortByMargin(analytics.FilterByMaxMargin(districts, maxMargin), order)
}

func validateQuery(q models.DistrictQuery) error {
	if q.MaxMargin != nil && *q.MaxMargin < 0 {
		return errors.New("max_margin must be a non-negative integer")
	}
	if !analytics.ValidOrder(q.Order) {
		return errors.New("order must be asc or desc")
	}
	return nil
}

// rankedViews returns candidate views in ranking order
func rankedViews(candidates []models.Candidate) []models.CandidateView {
	sorted := analytics.SortedByVotesDescending(candidates)
	views := make([]models.CandidateView, 0, len(sorted))
	if len(sorted) == 0 {
		return views
	}

	leaderVotes := sorted[0].Votes
	for i, c := range sorted {
		views = append(views, candidateView(c, i+1, leaderVotes))
	}
	return views
}

func candidateView(c models.Candidate, rank, leaderVotes int) models.CandidateView {
	return models.CandidateView{
		Candidate:    c,
		VotesDisplay: humanize.Comma(int64(c.Votes)),
		Share:        analytics.VoteShare(c.Votes, leaderVotes),
		Color:        models.PartyColor(c.Party),
		Rank:         rank,
	}
}

func buildSummary(d models.District, threshold int) models.DistrictSummary {
	s := models.DistrictSummary{
		ID:            d.ID,
		Name:          d.Name,
		Prefecture:    d.Prefecture,
		Margin:        d.Margin,
		MarginDisplay: humanize.Comma(int64(d.Margin)),
		CloseRace:     d.Margin < threshold,
		Leaders:       []models.CandidateView{},
	}

	ranked := rankedViews(d.Candidates)
	if len(ranked) == 0 {
		return s
	}
	s.WinnerID = ranked[0].ID

	// Compact card: first two candidates as supplied
	for i := 0; i < len(d.Candidates) && i < 2; i++ {
		s.Leaders = append(s.Leaders, ranked[rankIndex(d.Candidates, i)])
	}
	return s
}

// rankIndex returns the ranked position of the i-th input candidate.
// The stable sort places a candidate after every candidate with more
// votes and after earlier candidates with equal votes.
func rankIndex(candidates []models.Candidate, i int) int {
	pos := 0
	for j, c := range candidates {
		if c.Votes > candidates[i].Votes || (c.Votes == candidates[i].Votes && j < i) {
			pos++
		}
	}
	return pos
}

func buildDetail(d models.District, party string) models.DistrictDetail {
	detail := models.DistrictDetail{
		ID:            d.ID,
		Name:          d.Name,
		CanonicalName: analytics.CanonicalDistrictName(d.Name),
		Prefecture:    d.Prefecture,
		WikipediaURL:  analytics.WikipediaURL(d.Name),
		Margin:        d.Margin,
		MarginDisplay: humanize.Comma(int64(d.Margin)),
		TotalVotes:    d.TotalVotes,
		Candidates:    rankedViews(d.Candidates),
	}

	if len(detail.Candidates) > 0 {
		detail.Winner = &detail.Candidates[0]
	}
	if len(detail.Candidates) > 1 {
		detail.RunnerUp = &detail.Candidates[1]
	}

	cmp := analytics.Compare(d.Candidates, party)
	view := models.ComparisonView{
		VotesToFlip: cmp.VotesToFlip,
		FlipDisplay: humanize.Comma(int64(cmp.VotesToFlip)),
		SelectedWon: cmp.PartyWon,
	}
	if party != models.PartyAll {
		view.SelectedParty = party
	}
	if cmp.HasTarget {
		for i := range detail.Candidates {
			if detail.Candidates[i].Candidate == cmp.Target {
				view.Target = &detail.Candidates[i]
				break
			}
		}
	}
	detail.Comparison = view

	return detail
}
