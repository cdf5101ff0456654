// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"testing"

	"github.com/danielhkuo/girigiri/models"
)

func TestParties(t *testing.T) {
	districts := []models.District{
		district("1", cand("a", "Charlie", 1), cand("b", "alpha", 2)),
		district("2", cand("a", "Bravo", 1), cand("b", "Charlie", 2)),
		district("3"),
	}

	got := Parties(districts)
	if !equalStrings(got, []string{"alpha", "Bravo", "Charlie"}) {
		t.Errorf("Parties() = %v, want [alpha Bravo Charlie]", got)
	}
}

func TestParties_Distinct(t *testing.T) {
	got := Parties(sampleDistricts())

	seen := make(map[string]bool)
	for _, p := range got {
		if seen[p] {
			t.Errorf("party %s listed twice", p)
		}
		seen[p] = true
	}
	if len(got) != 4 {
		t.Errorf("Expected 4 parties, got %d: %v", len(got), got)
	}
}

func TestParties_Empty(t *testing.T) {
	if got := Parties(nil); len(got) != 0 {
		t.Errorf("Expected no parties, got %v", got)
	}
}
