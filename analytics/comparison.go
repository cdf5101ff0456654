// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import "github.com/danielhkuo/girigiri/models"

// Comparison describes which trailing candidate a district breakdown is
// measured against, and how far they were from winning.
type Comparison struct {
	Winner      models.Candidate
	HasWinner   bool
	Target      models.Candidate
	HasTarget   bool
	VotesToFlip int
	// The selected party's candidate won the district
	PartyWon bool
}

// Compare picks the comparison target for a district.
//
// Without a party selection (empty or models.PartyAll) the target is the
// runner-up. With a party selected, the highest-ranked candidate of that
// party is the target; if that candidate is the winner there is no target
// and PartyWon is set. A party with no candidate in the district falls
// back to the runner-up.
func Compare(candidates []models.Candidate, party string) Comparison {
	sorted := SortedByVotesDescending(candidates)

	var c Comparison
	if len(sorted) == 0 {
		return c
	}
	c.Winner, c.HasWinner = sorted[0], true

	if len(sorted) > 1 {
		c.Target, c.HasTarget = sorted[1], true
	}

	if party != "" && party != models.PartyAll {
		for i, cand := range sorted {
			if cand.Party != party {
				continue
			}
			if i == 0 {
				c.Target, c.HasTarget = models.Candidate{}, false
				c.PartyWon = true
			} else {
				c.Target, c.HasTarget = cand, true
			}
			break
		}
	}

	if c.HasTarget {
		c.VotesToFlip = FlipThreshold(c.Winner.Votes, c.Target.Votes)
	}
	return c
}
