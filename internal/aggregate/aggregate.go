// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package aggregate groups filtered records by year and country of origin,
// optionally keeping only the N largest groups per year and folding the rest
// into a single remainder row.
package aggregate

import (
	"sort"

	"github.com/cizinci/cizinci/internal/dataset"
)

// DefaultOtherLabel names the remainder row.
const DefaultOtherLabel = "Ostatní"

// Row is one (year, category) group with its summed count.
type Row struct {
	Year     int    `json:"year"`
	Category string `json:"category"`
	Count    int    `json:"count"`
	Other    bool   `json:"other,omitempty"`
}

// Options controls the top-N truncation.
type Options struct {
	// TopN keeps the N largest categories per year. Zero disables truncation.
	TopN int

	// OtherLabel names the remainder row. Defaults to DefaultOtherLabel.
	OtherLabel string

	// KeepEmptyOther appends a zero-count remainder row to years that have
	// no more than TopN categories.
	KeepEmptyOther bool
}

func (o Options) otherLabel() string {
	if o.OtherLabel == "" {
		return DefaultOtherLabel
	}
	return o.OtherLabel
}

// group is a (year, category) bucket. seen is the index of the first record
// that contributed to it and breaks count ties.
type group struct {
	year     int
	category string
	count    int
	seen     int
}

// Aggregate sums Persons per (Year, Country) and orders the result by year
// ascending, then count descending. Equal counts keep the order in which the
// category first appeared in records.
//
// With TopN > 0 each year keeps its TopN largest groups followed by one Other
// row holding the sum of the rest, so every year's total is unchanged. The
// function is pure and returns a non-nil slice.
func Aggregate(records []dataset.Record, opts Options) []Row {
	groups := groupByYear(records)
	out := make([]Row, 0, len(groups))

	for _, year := range sortedYears(groups) {
		gs := groups[year]
		sortGroups(gs)

		if opts.TopN <= 0 || (len(gs) <= opts.TopN && !opts.KeepEmptyOther) {
			for _, g := range gs {
				out = append(out, Row{Year: year, Category: g.category, Count: g.count})
			}
			continue
		}

		keep := min(opts.TopN, len(gs))
		for _, g := range gs[:keep] {
			out = append(out, Row{Year: year, Category: g.category, Count: g.count})
		}
		rest := 0
		for _, g := range gs[keep:] {
			rest += g.count
		}
		out = append(out, Row{Year: year, Category: opts.otherLabel(), Count: rest, Other: true})
	}
	return out
}

func groupByYear(records []dataset.Record) map[int][]*group {
	byYear := make(map[int][]*group)
	index := make(map[int]map[string]*group)
	for i, r := range records {
		cats, ok := index[r.Year]
		if !ok {
			cats = make(map[string]*group)
			index[r.Year] = cats
		}
		g, ok := cats[r.Country]
		if !ok {
			g = &group{year: r.Year, category: r.Country, seen: i}
			cats[r.Country] = g
			byYear[r.Year] = append(byYear[r.Year], g)
		}
		g.count += r.Persons
	}
	return byYear
}

func sortGroups(gs []*group) {
	sort.SliceStable(gs, func(i, j int) bool {
		if gs[i].count != gs[j].count {
			return gs[i].count > gs[j].count
		}
		return gs[i].seen < gs[j].seen
	})
}

func sortedYears[T any](m map[int]T) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Years returns the distinct years present in rows, ascending.
func Years(rows []Row) []int {
	set := make(map[int]struct{})
	for _, r := range rows {
		set[r.Year] = struct{}{}
	}
	return sortedYears(set)
}

// ForYear returns the rows belonging to year, preserving their order.
func ForYear(rows []Row, year int) []Row {
	var out []Row
	for _, r := range rows {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// Total sums the counts of rows.
func Total(rows []Row) int {
	n := 0
	for _, r := range rows {
		n += r.Count
	}
	return n
}
