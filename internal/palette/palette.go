// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package palette assigns chart colors to categories for one render.
package palette

import (
	"fmt"
	"regexp"
	"strings"
)

// Plotly is the default qualitative palette.
var Plotly = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// DefaultOtherColor is the neutral color reserved for the remainder row.
const DefaultOtherColor = "#9E9E9E"

// ContinuousScale is the sequential scale used by the choropleth.
const ContinuousScale = "Blues"

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Palette is a cycling list of category colors plus the reserved color for
// the remainder category.
type Palette struct {
	Colors []string
	Other  string
}

// Default returns the Plotly palette with a grey remainder color.
func Default() Palette {
	return Palette{Colors: append([]string(nil), Plotly...), Other: DefaultOtherColor}
}

// New validates colors and returns a Palette. Empty inputs fall back to the
// defaults.
func New(colors []string, other string) (Palette, error) {
	p := Default()
	if len(colors) > 0 {
		p.Colors = make([]string, 0, len(colors))
		for _, c := range colors {
			c = strings.TrimSpace(c)
			if !hexPattern.MatchString(c) {
				return Palette{}, fmt.Errorf("palette: invalid color %q (want #RRGGBB)", c)
			}
			p.Colors = append(p.Colors, strings.ToUpper(c))
		}
	}
	if other != "" {
		other = strings.TrimSpace(other)
		if !hexPattern.MatchString(other) {
			return Palette{}, fmt.Errorf("palette: invalid other color %q (want #RRGGBB)", other)
		}
		p.Other = strings.ToUpper(other)
	}
	return p, nil
}

// Assignment maps category names to colors.
type Assignment map[string]string

// Assign gives otherLabel the palette's Other color and every remaining
// category the next palette color in the order given, wrapping around when
// there are more categories than colors. Pass categories in ranking order so
// the same data always yields the same colors.
func Assign(categories []string, otherLabel string, p Palette) Assignment {
	colors := p.Colors
	if len(colors) == 0 {
		colors = Plotly
	}
	other := p.Other
	if other == "" {
		other = DefaultOtherColor
	}

	out := make(Assignment, len(categories))
	next := 0
	for _, c := range categories {
		if _, ok := out[c]; ok {
			continue
		}
		if c == otherLabel {
			out[c] = other
			continue
		}
		out[c] = colors[next%len(colors)]
		next++
	}
	return out
}

// Color returns the assigned color for category, or the Other color of the
// default palette for unknown categories.
func (a Assignment) Color(category string) string {
	if c, ok := a[category]; ok {
		return c
	}
	return DefaultOtherColor
}
