// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/girigiri/analytics"
	"github.com/danielhkuo/girigiri/models"
)

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func printDistricts(w io.Writer, districts []models.District, total int) {
	if len(districts) == 0 {
		fmt.Fprintln(w, "No districts match.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ID\tDISTRICT\tMARGIN\tWINNER\tRUNNER-UP\t")
	for _, d := range districts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			d.ID, d.Name, formatCount(d.Margin),
			candidateLabel(analytics.Winner(d.Candidates)),
			candidateLabel(analytics.RunnerUp(d.Candidates)),
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%s of %s districts\n", formatCount(len(districts)), formatCount(total))
}

func printTally(w io.Writer, tally []models.PartyCount, districts int) {
	fmt.Fprintf(w, "Runner-up parties across %s districts\n", formatCount(districts))
	if len(tally) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, pc := range tally {
		fmt.Fprintf(tw, "  %s\t%s\n", pc.Party, formatCount(pc.Count))
	}
	tw.Flush()
}

func printDistrict(w io.Writer, d models.District, cmp analytics.Comparison) {
	fmt.Fprintf(w, "%s (%s)\n", analytics.CanonicalDistrictName(d.Name), d.Prefecture)
	fmt.Fprintf(w, "%s\n\n", analytics.WikipediaURL(d.Name))

	sorted := analytics.SortedByVotesDescending(d.Candidates)
	if len(sorted) == 0 {
		fmt.Fprintln(w, "No candidates.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCANDIDATE\tPARTY\tVOTES\tSHARE")
	for i, c := range sorted {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f%%\n",
			i+1, c.Name, c.Party, formatCount(c.Votes),
			analytics.VoteShare(c.Votes, sorted[0].Votes),
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nMargin: %s\n", formatCount(d.Margin))
	switch {
	case cmp.PartyWon:
		fmt.Fprintf(w, "%s won this district.\n", cmp.Winner.Party)
	case cmp.HasTarget:
		fmt.Fprintf(w, "%s (%s) needed %s more votes to win.\n",
			cmp.Target.Name, cmp.Target.Party, formatCount(cmp.VotesToFlip))
	}
}

func candidateLabel(c models.Candidate, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s %s", c.Party, humanize.Comma(int64(c.Votes)))
}
