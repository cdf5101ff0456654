// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/danielhkuo/girigiri/models"
)

// Parties returns every distinct party in districts, in Japanese collation order
func Parties(districts []models.District) []string {
	seen := make(map[string]bool)
	parties := []string{}
	for _, d := range districts {
		for _, c := range d.Candidates {
			if !seen[c.Party] {
				seen[c.Party] = true
				parties = append(parties, c.Party)
			}
		}
	}

	collate.New(language.Japanese).SortStrings(parties)
	return parties
}
