// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"slices"

	"github.com/danielhkuo/girigiri/models"
)

// TallyRunnerUpParties counts how often each party finished second.
// Districts with fewer than two candidates are skipped. Rows are ordered
// by count descending, ties in the order each party was first seen.
func TallyRunnerUpParties(districts []models.District) []models.PartyCount {
	index := make(map[string]int)
	tally := []models.PartyCount{}

	for _, d := range districts {
		runnerUp, ok := RunnerUp(d.Candidates)
		if !ok {
			continue
		}
		i, seen := index[runnerUp.Party]
		if !seen {
			i = len(tally)
			index[runnerUp.Party] = i
			tally = append(tally, models.PartyCount{Party: runnerUp.Party})
		}
		tally[i].Count++
	}

	slices.SortStableFunc(tally, func(a, b models.PartyCount) int {
		return b.Count - a.Count
	})
	return tally
}
