// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"time"

	"github.com/cizinci/cizinci/internal/aggregate"
	"github.com/cizinci/cizinci/internal/figure"
	"github.com/cizinci/cizinci/internal/palette"
	"github.com/cizinci/cizinci/internal/selection"
)

// View is everything one render cycle produced. Formatters and the HTTP
// server read it; nothing modifies it after Run returns.
type View struct {
	RenderID    string    `json:"render_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`

	Labels     figure.Labels `json:"-"`
	OtherLabel string        `json:"other_label"`

	// Selection is the clamped selection the view was rendered for.
	Selection selection.Selection `json:"selection"`
	Bounds    selection.Bounds    `json:"bounds"`
	Countries []string            `json:"countries"`

	// Records is the number of dataset rows that passed the filter.
	Records int `json:"records"`

	MapRows    []aggregate.LocationRow   `json:"map_rows"`
	Bars       []aggregate.Row           `json:"bars"`
	Ranking    []aggregate.CategoryTotal `json:"ranking"`
	Categories []string                  `json:"categories"`
	Colors     palette.Assignment        `json:"colors"`
	YearTotals []aggregate.YearTotal     `json:"year_totals"`

	Map   figure.Figure `json:"map"`
	Chart figure.Figure `json:"chart"`

	Stages   []StageTiming `json:"stages,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Empty reports whether the selection matched no records.
func (v *View) Empty() bool {
	return v.Records == 0
}

// Total is the number of persons across the whole selection.
func (v *View) Total() int {
	n := 0
	for _, yt := range v.YearTotals {
		n += yt.Total
	}
	return n
}

// Years returns the years present in the view, ascending.
func (v *View) Years() []int {
	years := make([]int, len(v.YearTotals))
	for i, yt := range v.YearTotals {
		years[i] = yt.Year
	}
	return years
}

// OtherTotal sums the remainder rows across all years.
func (v *View) OtherTotal() int {
	n := 0
	for _, r := range v.Bars {
		if r.Other {
			n += r.Count
		}
	}
	return n
}

// CountryLabel names the selected country for headings.
func (v *View) CountryLabel() string {
	return v.Selection.Label(v.Labels.AllCountries)
}
