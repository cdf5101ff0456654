// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"slices"

	"github.com/danielhkuo/girigiri/models"
)

// SortedByVotesDescending returns a copy of candidates ordered by votes, highest first.
// Candidates with equal votes keep their input order.
func SortedByVotesDescending(candidates []models.Candidate) []models.Candidate {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b models.Candidate) int {
		return b.Votes - a.Votes
	})
	return sorted
}

// Winner returns the candidate with the most votes
func Winner(candidates []models.Candidate) (models.Candidate, bool) {
	sorted := SortedByVotesDescending(candidates)
	if len(sorted) == 0 {
		return models.Candidate{}, false
	}
	return sorted[0], true
}

// RunnerUp returns the candidate ranked second by votes
func RunnerUp(candidates []models.Candidate) (models.Candidate, bool) {
	sorted := SortedByVotesDescending(candidates)
	if len(sorted) < 2 {
		return models.Candidate{}, false
	}
	return sorted[1], true
}

// Margin returns the vote gap between the top two candidates.
// A lone candidate's margin is their own vote count; no candidates is 0.
func Margin(candidates []models.Candidate) int {
	sorted := SortedByVotesDescending(candidates)
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0].Votes
	}
	return sorted[0].Votes - sorted[1].Votes
}

// FlipThreshold returns how many votes must move from the winner to the
// challenger for the challenger to lead by at least one vote.
// Each moved vote swings the gap by two.
func FlipThreshold(winnerVotes, challengerVotes int) int {
	d := winnerVotes - challengerVotes
	if d < 0 {
		return 0
	}
	return d/2 + 1
}

// VoteShare returns votes as a percentage of maxVotes (the race leader)
func VoteShare(votes, maxVotes int) float64 {
	if maxVotes <= 0 {
		return 0
	}
	return float64(votes) * 100 / float64(maxVotes)
}
