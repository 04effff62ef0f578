// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package dataset loads the foreign-residents table and answers the read-only
// questions the render cycle asks of it: distinct countries, year bounds and
// filtered record slices.
package dataset

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Record is one row of the input table: the number of residents from one
// country of origin in one year.
type Record struct {
	Country        string `json:"country"`
	CountryEnglish string `json:"country_english"`
	Year           int    `json:"year"`
	Persons        int    `json:"persons"`
}

// Dataset is the immutable, in-memory table loaded once at startup. All
// methods are safe for concurrent use because nothing mutates it after New.
type Dataset struct {
	source    string
	records   []Record
	countries []string
	english   map[string]string
	minYear   int
	maxYear   int
}

// New builds a Dataset over records. The slice is copied so later changes by
// the caller are not observed. Countries are ordered with Czech collation,
// which places "Č" after "C" and "Ch" after "H".
func New(source string, records []Record) *Dataset {
	d := &Dataset{
		source:  source,
		records: append([]Record(nil), records...),
		english: make(map[string]string),
	}

	for i, r := range d.records {
		if i == 0 || r.Year < d.minYear {
			d.minYear = r.Year
		}
		if i == 0 || r.Year > d.maxYear {
			d.maxYear = r.Year
		}
		if _, ok := d.english[r.Country]; !ok {
			d.english[r.Country] = r.CountryEnglish
			d.countries = append(d.countries, r.Country)
		}
	}

	collate.New(language.Czech).SortStrings(d.countries)
	return d
}

// Source returns the location the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of all records in input order.
func (d *Dataset) Records() []Record {
	return append([]Record(nil), d.records...)
}

// Countries returns the distinct country names in collated order.
func (d *Dataset) Countries() []string {
	return append([]string(nil), d.countries...)
}

// HasCountry reports whether any record names country.
func (d *Dataset) HasCountry(country string) bool {
	_, ok := d.english[country]
	return ok
}

// EnglishName returns the English name recorded for country, or "" when the
// country does not occur.
func (d *Dataset) EnglishName(country string) string {
	return d.english[country]
}

// YearBounds returns the smallest and largest year present. ok is false for
// an empty dataset.
func (d *Dataset) YearBounds() (lo, hi int, ok bool) {
	if len(d.records) == 0 {
		return 0, 0, false
	}
	return d.minYear, d.maxYear, true
}

// YearSpan returns the first and last year in which country has a record.
func (d *Dataset) YearSpan(country string) (lo, hi int, ok bool) {
	for _, r := range d.records {
		if r.Country != country {
			continue
		}
		if !ok || r.Year < lo {
			lo = r.Year
		}
		if !ok || r.Year > hi {
			hi = r.Year
		}
		ok = true
	}
	return lo, hi, ok
}

// Filter returns the records in [lo, hi] for country, or for every country
// when country is empty.
func (d *Dataset) Filter(lo, hi int, country string) []Record {
	return Filter(d.records, lo, hi, country)
}

// Filter returns the subsequence of records whose year lies in the inclusive
// range [lo, hi] and, when country is non-empty, whose Country equals it.
// Input order and duplicates are preserved and the input is never modified.
// A reversed range selects nothing.
func Filter(records []Record, lo, hi int, country string) []Record {
	out := make([]Record, 0, len(records))
	if lo > hi {
		return out
	}
	for _, r := range records {
		if r.Year < lo || r.Year > hi {
			continue
		}
		if country != "" && r.Country != country {
			continue
		}
		out = append(out, r)
	}
	return out
}
