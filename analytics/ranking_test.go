// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"testing"

	"github.com/danielhkuo/girigiri/models"
)

func cand(id, party string, votes int) models.Candidate {
	return models.Candidate{ID: id, Name: "Candidate " + id, Party: party, Votes: votes}
}

func ids(candidates []models.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortedByVotesDescending(t *testing.T) {
	tests := []struct {
		name     string
		input    []models.Candidate
		expected []string
	}{
		{"empty", nil, []string{}},
		{"single", []models.Candidate{cand("a", "X", 5)}, []string{"a"}},
		{"already sorted", []models.Candidate{cand("a", "X", 9), cand("b", "Y", 3)}, []string{"a", "b"}},
		{"reversed", []models.Candidate{cand("a", "X", 3), cand("b", "Y", 9)}, []string{"b", "a"}},
		{
			"ties keep input order",
			[]models.Candidate{cand("a", "X", 10), cand("b", "Y", 20), cand("c", "Z", 10), cand("d", "W", 20)},
			[]string{"b", "d", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SortedByVotesDescending(tt.input)
			if !equalStrings(ids(result), tt.expected) {
				t.Errorf("SortedByVotesDescending() = %v, want %v", ids(result), tt.expected)
			}
			for i := 1; i < len(result); i++ {
				if result[i].Votes > result[i-1].Votes {
					t.Errorf("votes increase at index %d: %d > %d", i, result[i].Votes, result[i-1].Votes)
				}
			}
		})
	}
}

func TestSortedByVotesDescending_DoesNotMutateInput(t *testing.T) {
	input := []models.Candidate{cand("a", "X", 1), cand("b", "Y", 2), cand("c", "Z", 3)}

	SortedByVotesDescending(input)

	if !equalStrings(ids(input), []string{"a", "b", "c"}) {
		t.Errorf("input was reordered: %v", ids(input))
	}
}

func TestWinner(t *testing.T) {
	if _, ok := Winner(nil); ok {
		t.Error("Expected no winner for empty candidate list")
	}

	w, ok := Winner([]models.Candidate{cand("a", "X", 10), cand("b", "Y", 30), cand("c", "Z", 30)})
	if !ok {
		t.Fatal("Expected a winner")
	}
	if w.ID != "b" {
		t.Errorf("Expected first max-vote candidate b, got %s", w.ID)
	}
}

func TestWinner_IgnoresIsWinnerFlag(t *testing.T) {
	loser := cand("a", "X", 10)
	loser.IsWinner = true

	w, _ := Winner([]models.Candidate{loser, cand("b", "Y", 20)})
	if w.ID != "b" {
		t.Errorf("Expected winner computed from votes (b), got %s", w.ID)
	}
}

func TestRunnerUp(t *testing.T) {
	if _, ok := RunnerUp(nil); ok {
		t.Error("Expected no runner-up for empty list")
	}
	if _, ok := RunnerUp([]models.Candidate{cand("a", "X", 10)}); ok {
		t.Error("Expected no runner-up for a single candidate")
	}

	r, ok := RunnerUp([]models.Candidate{cand("a", "X", 10), cand("b", "Y", 30), cand("c", "Z", 20)})
	if !ok {
		t.Fatal("Expected a runner-up")
	}
	if r.ID != "c" {
		t.Errorf("Expected runner-up c, got %s", r.ID)
	}
}

func TestMargin(t *testing.T) {
	tests := []struct {
		name     string
		input    []models.Candidate
		expected int
	}{
		{"no candidates", nil, 0},
		{"single candidate", []models.Candidate{cand("a", "X", 100)}, 100},
		{"two candidates", []models.Candidate{cand("a", "X", 100), cand("b", "Y", 60)}, 40},
		{"unsorted input", []models.Candidate{cand("a", "X", 60), cand("b", "Y", 5), cand("c", "Z", 100)}, 40},
		{"tie", []models.Candidate{cand("a", "X", 70), cand("b", "Y", 70)}, 0},
		{"zero votes", []models.Candidate{cand("a", "X", 0), cand("b", "Y", 0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Margin(tt.input)
			if result != tt.expected {
				t.Errorf("Margin() = %d, want %d", result, tt.expected)
			}
			if result < 0 {
				t.Errorf("Margin() is negative: %d", result)
			}
		})
	}
}

func TestFlipThreshold(t *testing.T) {
	tests := []struct {
		name       string
		winner     int
		challenger int
		expected   int
	}{
		{"even gap", 100, 60, 21},
		{"odd gap", 100, 61, 20},
		{"exact tie", 100, 100, 1},
		{"challenger ahead", 60, 100, 0},
		{"gap of one", 101, 100, 1},
		{"close race", 50000, 48000, 1001},
		{"zero votes", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FlipThreshold(tt.winner, tt.challenger)
			if result != tt.expected {
				t.Errorf("FlipThreshold(%d, %d) = %d, want %d", tt.winner, tt.challenger, result, tt.expected)
			}
		})
	}
}

func TestFlipThreshold_ActuallyFlips(t *testing.T) {
	for winner := 0; winner <= 40; winner++ {
		for challenger := 0; challenger <= winner; challenger++ {
			n := FlipThreshold(winner, challenger)
			if challenger+n <= winner-n {
				t.Errorf("moving %d votes does not flip %d vs %d", n, winner, challenger)
			}
			if n > 0 && challenger+n-1 > winner-(n-1) {
				t.Errorf("%d votes is not minimal for %d vs %d", n, winner, challenger)
			}
		}
	}
}

func TestVoteShare(t *testing.T) {
	tests := []struct {
		name     string
		votes    int
		max      int
		expected float64
	}{
		{"leader", 200, 200, 100},
		{"half", 100, 200, 50},
		{"zero max", 10, 0, 0},
		{"negative max", 10, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := VoteShare(tt.votes, tt.max)
			if result != tt.expected {
				t.Errorf("VoteShare(%d, %d) = %f, want %f", tt.votes, tt.max, result, tt.expected)
			}
		})
	}
}

func TestCloseRaceScenario(t *testing.T) {
	candidates := []models.Candidate{
		cand("A", "自民", 50000),
		cand("B", "立民", 48000),
		cand("C", "共産", 2000),
	}

	w, _ := Winner(candidates)
	r, _ := RunnerUp(candidates)

	if w.ID != "A" {
		t.Errorf("Expected winner A, got %s", w.ID)
	}
	if r.ID != "B" {
		t.Errorf("Expected runner-up B, got %s", r.ID)
	}
	if m := Margin(candidates); m != 2000 {
		t.Errorf("Expected margin 2000, got %d", m)
	}
	if f := FlipThreshold(w.Votes, r.Votes); f != 1001 {
		t.Errorf("Expected flip threshold 1001, got %d", f)
	}
}
