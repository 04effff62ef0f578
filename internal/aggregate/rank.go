// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package aggregate

import (
	"sort"

	"github.com/cizinci/cizinci/internal/dataset"
)

// CategoryTotal is a category's count summed over the whole selected range.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// Rank orders every category in records by its total across all years,
// largest first, ties by first appearance. The ranking does not depend on any
// top-N setting and fixes the category order of chart axes and legends.
func Rank(records []dataset.Record) []CategoryTotal {
	index := make(map[string]int)
	out := make([]CategoryTotal, 0)
	for _, r := range records {
		i, ok := index[r.Country]
		if !ok {
			i = len(out)
			index[r.Country] = i
			out = append(out, CategoryTotal{Category: r.Country})
		}
		out[i].Total += r.Persons
	}
	// out is in first-seen order, so a stable sort keeps that for ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// Categories lists the categories that occur in rows, in ranking order, with
// the Other row's label last. Categories missing from ranking keep their row
// order after the ranked ones.
func Categories(rows []Row, ranking []CategoryTotal) []string {
	present := make(map[string]bool)
	other := ""
	var extra []string
	for _, r := range rows {
		if r.Other {
			other = r.Category
			continue
		}
		if _, ok := present[r.Category]; !ok {
			present[r.Category] = false
			extra = append(extra, r.Category)
		}
	}

	out := make([]string, 0, len(present)+1)
	for _, t := range ranking {
		if _, ok := present[t.Category]; ok {
			present[t.Category] = true
			out = append(out, t.Category)
		}
	}
	for _, c := range extra {
		if !present[c] {
			out = append(out, c)
		}
	}
	if other != "" {
		out = append(out, other)
	}
	return out
}

// YearTotal is the sum of all records in one year.
type YearTotal struct {
	Year  int `json:"year"`
	Total int `json:"total"`
}

// YearTotals sums records per year, ascending by year.
func YearTotals(records []dataset.Record) []YearTotal {
	sums := make(map[int]int)
	for _, r := range records {
		sums[r.Year] += r.Persons
	}
	out := make([]YearTotal, 0, len(sums))
	for _, y := range sortedYears(sums) {
		out = append(out, YearTotal{Year: y, Total: sums[y]})
	}
	return out
}

// LocationRow is a per-year sum keyed by the English country name, the form
// the choropleth matches against its map geometry.
type LocationRow struct {
	Year     int    `json:"year"`
	Country  string `json:"country"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// ByLocation sums records per (year, country) for the map. Location falls
// back to the local name when no English name was recorded. Rows are ordered
// by year, then by first appearance.
func ByLocation(records []dataset.Record) []LocationRow {
	type key struct {
		year    int
		country string
	}
	index := make(map[key]int)
	var out []LocationRow
	for _, r := range records {
		k := key{r.Year, r.Country}
		i, ok := index[k]
		if !ok {
			loc := r.CountryEnglish
			if loc == "" {
				loc = r.Country
			}
			i = len(out)
			index[k] = i
			out = append(out, LocationRow{Year: r.Year, Country: r.Country, Location: loc})
		}
		out[i].Count += r.Persons
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	if out == nil {
		out = []LocationRow{}
	}
	return out
}
