// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"testing"

	"github.com/danielhkuo/girigiri/models"
)

func TestCompare(t *testing.T) {
	candidates := []models.Candidate{
		cand("C", "共産", 2000),
		cand("A", "自民", 50000),
		cand("B", "立民", 48000),
	}

	tests := []struct {
		name         string
		party        string
		wantTarget   string
		wantFlip     int
		wantPartyWon bool
	}{
		{"no selection uses runner-up", "", "B", 1001, false},
		{"all sentinel uses runner-up", models.PartyAll, "B", 1001, false},
		{"selected runner-up party", "立民", "B", 1001, false},
		{"selected third-place party", "共産", "C", 24001, false},
		{"selected winning party", "自民", "", 0, true},
		{"party not standing", "維新", "B", 1001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compare(candidates, tt.party)

			if !c.HasWinner || c.Winner.ID != "A" {
				t.Errorf("Expected winner A, got %+v", c.Winner)
			}
			if c.PartyWon != tt.wantPartyWon {
				t.Errorf("PartyWon = %v, want %v", c.PartyWon, tt.wantPartyWon)
			}
			if tt.wantTarget == "" {
				if c.HasTarget {
					t.Errorf("Expected no target, got %s", c.Target.ID)
				}
			} else if !c.HasTarget || c.Target.ID != tt.wantTarget {
				t.Errorf("Expected target %s, got %+v", tt.wantTarget, c.Target)
			}
			if c.VotesToFlip != tt.wantFlip {
				t.Errorf("VotesToFlip = %d, want %d", c.VotesToFlip, tt.wantFlip)
			}
		})
	}
}

func TestCompare_PicksBestPlacedCandidateOfParty(t *testing.T) {
	candidates := []models.Candidate{
		cand("a", "X", 100),
		cand("b", "Y", 80),
		cand("c", "Z", 60),
		cand("d", "Z", 70),
	}

	c := Compare(candidates, "Z")
	if c.Target.ID != "d" {
		t.Errorf("Expected the higher-placed Z candidate d, got %s", c.Target.ID)
	}
	if c.VotesToFlip != 16 {
		t.Errorf("Expected 16 votes to flip, got %d", c.VotesToFlip)
	}
}

func TestCompare_DegenerateDistricts(t *testing.T) {
	empty := Compare(nil, "")
	if empty.HasWinner || empty.HasTarget || empty.VotesToFlip != 0 {
		t.Errorf("Expected zero comparison for empty district, got %+v", empty)
	}

	solo := Compare([]models.Candidate{cand("a", "X", 10)}, "")
	if !solo.HasWinner {
		t.Error("Expected a winner for a single candidate")
	}
	if solo.HasTarget || solo.VotesToFlip != 0 {
		t.Errorf("Expected no target for a single candidate, got %+v", solo)
	}
}
