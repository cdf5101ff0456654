// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/danielhkuo/girigiri/analytics"
	"github.com/danielhkuo/girigiri/middleware"
	"github.com/danielhkuo/girigiri/models"
)

// DefaultChartLimit is the number of parties drawn when no limit is given
const DefaultChartLimit = 5

const (
	chartBarWidth   = 50
	chartBarSpacing = 20
	chartMinWidth   = 480
	chartHeight     = 360
)

// GetRunnerUpChart handles GET /runner-ups/chart.png
// Draws the top parties of the runner-up tally as a PNG bar chart.
func (h *DistrictHandler) GetRunnerUpChart(w http.ResponseWriter, r *http.Request) {
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
	limit, err := parseLimit(values.Get("limit"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tally := analytics.TallyRunnerUpParties(marginOrdered(h.ds.Districts(), maxMargin, order))
	if len(tally) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No runner-ups in range")
		return
	}
	if len(tally) > limit {
		tally = tally[:limit]
	}

	var buf bytes.Buffer
	if err := RenderRunnerUpChart(&buf, tally); err != nil {
		slog.Error("failed to render chart", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Chart rendering failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// RenderRunnerUpChart writes a PNG bar chart of the tally to w.
// Each bar uses the party's palette colour.
func RenderRunnerUpChart(w io.Writer, tally []models.PartyCount) error {
	if len(tally) == 0 {
		return errors.New("empty tally")
	}

	maxCount := 0
	bars := make([]chart.Value, 0, len(tally))
	for _, pc := range tally {
		color := drawing.ColorFromHex(strings.TrimPrefix(models.PartyColor(pc.Party), "#"))
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%d)", pc.Party, pc.Count),
			Value: float64(pc.Count),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
		maxCount = max(maxCount, pc.Count)
	}

	width := max(chartMinWidth, 100+len(bars)*(chartBarWidth+chartBarSpacing))

	bc := chart.BarChart{
		Title:      "Runner-up parties",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      width,
		Height:     chartHeight,
		BarWidth:   chartBarWidth,
		BarSpacing: chartBarSpacing,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
		Bars: bars,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// parseLimit returns DefaultChartLimit for an empty value
func parseLimit(s string) (int, error) {
	if s == "" {
		return DefaultChartLimit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.New("limit must be a positive integer")
	}
	return n, nil
}
