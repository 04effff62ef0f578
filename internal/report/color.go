// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strings"

	"github.com/fatih/color"
)

// Shared color printers for report sections.
var (
	colorRed   = color.New(color.FgRed)
	colorGreen = color.New(color.FgGreen)
	colorBold  = color.New(color.Bold)
	colorFaint = color.New(color.Faint)
)

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// ColorChange colors signed deltas: growth green, decline red.
func ColorChange(val string) string {
	switch {
	case strings.HasPrefix(val, "+"):
		return colorGreen.Sprint(val)
	case strings.HasPrefix(val, "-"):
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// dim renders the Other bucket's cells faint.
func dim(val string) string {
	return colorFaint.Sprint(val)
}
