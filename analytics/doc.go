// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package analytics contains the pure election arithmetic behind the API.

Nothing here performs I/O or returns an error. Empty and single-candidate
districts produce defined zero values instead.

# Ranking

	sorted := analytics.SortedByVotesDescending(d.Candidates)
	winner, ok := analytics.Winner(d.Candidates)
	runnerUp, ok := analytics.RunnerUp(d.Candidates)
	margin := analytics.Margin(d.Candidates)

Sorting is stable, so candidates with equal votes keep dataset order.
The is_winner flag on a candidate is never consulted.

# Flip Threshold

FlipThreshold counts votes that must move from winner to challenger.
Each moved vote changes the gap by two:

	FlipThreshold(100, 60)  == 21
	FlipThreshold(100, 100) == 1
	FlipThreshold(60, 100)  == 0

# Filtering and Ordering

Query filters by maximum margin, then by runner-up party, then sorts:

	max := 5000
	rows := analytics.Query(districts, models.DistrictQuery{
		MaxMargin: &max,
		Party:     "立民",
		Order:     models.OrderAsc,
	})

The party filter is strict: a district only passes when the party
finished exactly second.

# Aggregation

TallyRunnerUpParties counts second places per party, largest first.

# Names

CanonicalDistrictName expands "東京1区" to "東京都第1区" and accepts
full-width digits. WikipediaURL builds an article link from it.
*/
package analytics
