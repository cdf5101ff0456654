// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// DefaultPartyColor is used for parties missing from PartyColors
const DefaultPartyColor = "#9ca3af"

// PartyColors maps short party names to their display colour
var PartyColors = map[string]string{
	"自民":   "#e70112",
	"立民":   "#024197",
	"国民":   "#fbbe00",
	"公明":   "#f55881",
	"維新":   "#badc58",
	"れいわ":  "#e4027e",
	"共産":   "#9b59b6",
	"参政":   "#F6661F",
	"保守":   "#0982DC",
	"社民":   "#3d9be7",
	"教育":   "#37c200",
	"みんつく": "#01afa2",
	"みらい":  "#73d7c3",
	"無所属":  "#9ca3af",
}

// PartyColor returns the display colour for a party
func PartyColor(party string) string {
	if c, ok := PartyColors[party]; ok {
		return c
	}
	return DefaultPartyColor
}
