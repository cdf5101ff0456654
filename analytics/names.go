// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

const wikipediaBase = "https://ja.wikipedia.org/wiki/"

// U+FF10..U+FF19
var fullwidthDigits = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xff10, Hi: 0xff19, Stride: 1}},
}

var districtPattern = regexp.MustCompile(`^(.+?)(\d+)区$`)

// Regions whose administrative suffix is not 県
var regionSuffixes = map[string]string{
	"東京":  "東京都",
	"大阪":  "大阪府",
	"京都":  "京都府",
	"北海道": "北海道",
}

// NormalizeDigits rewrites full-width digits as ASCII digits and leaves
// every other rune alone
func NormalizeDigits(s string) string {
	t := runes.If(runes.In(fullwidthDigits), width.Narrow, nil)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CanonicalDistrictName turns a short district name such as "東京1区" into
// its administrative form "東京都第1区". Names that do not end in
// "<number>区" are returned unchanged.
func CanonicalDistrictName(name string) string {
	m := districtPattern.FindStringSubmatch(NormalizeDigits(name))
	if m == nil {
		return name
	}

	region := strings.TrimSpace(m[1])
	number := m[2]

	if full, ok := regionSuffixes[region]; ok {
		region = full
	} else if !hasAdministrativeSuffix(region) {
		region += "県"
	}

	return region + "第" + number + "区"
}

func hasAdministrativeSuffix(region string) bool {
	for _, suffix := range []string{"県", "府", "都", "道"} {
		if strings.HasSuffix(region, suffix) {
			return true
		}
	}
	return false
}

// WikipediaURL links to the Japanese Wikipedia article for a district
func WikipediaURL(name string) string {
	return wikipediaBase + url.PathEscape(CanonicalDistrictName(name))
}
