// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"slices"

	"github.com/danielhkuo/girigiri/models"
)

// FilterByMaxMargin keeps districts whose margin is at most *maxMargin.
// A nil bound keeps every district.
func FilterByMaxMargin(districts []models.District, maxMargin *int) []models.District {
	if maxMargin == nil {
		return slices.Clone(districts)
	}

	kept := []models.District{}
	for _, d := range districts {
		if d.Margin <= *maxMargin {
			kept = append(kept, d)
		}
	}
	return kept
}

// FilterByRunnerUpParty keeps districts where party finished exactly second.
// Districts the party won, or where it placed third or lower, are dropped.
// The empty string and models.PartyAll keep every district.
func FilterByRunnerUpParty(districts []models.District, party string) []models.District {
	if party == "" || party == models.PartyAll {
		return slices.Clone(districts)
	}

	kept := []models.District{}
	for _, d := range districts {
		if runnerUp, ok := RunnerUp(d.Candidates); ok && runnerUp.Party == party {
			kept = append(kept, d)
		}
	}
	return kept
}

// SortByMargin returns a copy of districts ordered by margin.
// OrderDesc puts the widest margins first; anything else puts the closest races first.
func SortByMargin(districts []models.District, order string) []models.District {
	sorted := slices.Clone(districts)
	slices.SortStableFunc(sorted, func(a, b models.District) int {
		if order == models.OrderDesc {
			return b.Margin - a.Margin
		}
		return a.Margin - b.Margin
	})
	return sorted
}

// Query applies the margin filter, then the party filter, then sorts by margin
func Query(districts []models.District, q models.DistrictQuery) []models.District {
	filtered := FilterByMaxMargin(districts, q.MaxMargin)
	filtered = FilterByRunnerUpParty(filtered, q.Party)
	return SortByMargin(filtered, q.Order)
}

// ValidOrder reports whether order is a recognised sort order.
// The empty string is accepted and means ascending.
func ValidOrder(order string) bool {
	switch order {
	case "", models.OrderAsc, models.OrderDesc:
		return true
	}
	return false
}
