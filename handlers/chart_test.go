// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/girigiri/models"
	"github.com/danielhkuo/girigiri/testutil"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestGetRunnerUpChart(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{"default limit", "", http.StatusOK},
		{"single bar", "?limit=1", http.StatusOK},
		{"margin filtered", "?max_margin=500", http.StatusOK},
		{"empty tally", "?max_margin=0", http.StatusNotFound},
		{"zero limit", "?limit=0", http.StatusBadRequest},
		{"non-integer limit", "?limit=many", http.StatusBadRequest},
		{"negative bound", "?max_margin=-10", http.StatusBadRequest},
		{"descending order", "?order=desc&limit=1", http.StatusOK},
		{"unknown order", "?order=sideways", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/runner-ups/chart.png"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetRunnerUpChart(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			if ct := w.Header().Get("Content-Type"); ct != "image/png" {
				t.Errorf("Expected Content-Type image/png, got %q", ct)
			}
			if !bytes.HasPrefix(w.Body.Bytes(), pngMagic) {
				t.Error("Expected body to be a PNG image")
			}
		})
	}
}

func TestRenderRunnerUpChart(t *testing.T) {
	t.Run("renders with unknown party colour", func(t *testing.T) {
		var buf bytes.Buffer
		tally := []models.PartyCount{
			{Party: "自民", Count: 4},
			{Party: "地域政党", Count: 1},
		}
		if err := RenderRunnerUpChart(&buf, tally); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Error("Expected PNG output")
		}
	})

	t.Run("rejects empty tally", func(t *testing.T) {
		var buf bytes.Buffer
		if err := RenderRunnerUpChart(&buf, nil); err == nil {
			t.Error("Expected an error for an empty tally")
		}
	})
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"", DefaultChartLimit, false},
		{"3", 3, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLimit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLimit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("parseLimit(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
