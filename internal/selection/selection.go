// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package selection holds the user's control values for one render: the
// country, the year range, the animation switch and the top-N limit.
package selection

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names.
const (
	ParamCountry = "country"
	ParamFrom    = "from"
	ParamTo      = "to"
	ParamAnimate = "animate"
	ParamTop     = "top"
)

// MaxTopN caps the top-N value accepted from users.
const MaxTopN = 100

// Selection is the set of control values applied at the filter boundary.
// An empty Country selects every country; TopN of zero disables truncation.
type Selection struct {
	Country string `json:"country,omitempty"`
	From    int    `json:"from"`
	To      int    `json:"to"`
	Animate bool   `json:"animate"`
	TopN    int    `json:"top_n"`
}

// Bounds is the inclusive year range available in the dataset.
type Bounds struct {
	MinYear int  `json:"min_year"`
	MaxYear int  `json:"max_year"`
	Valid   bool `json:"-"`
}

// Clamp returns s with a reversed year range swapped and, when the range
// overlaps b, both ends moved into b. A zero year means "unset": the range is
// open on that side and takes the bound, unless the given end already lies
// beyond the bound on that side, in which case the range collapses onto the
// given year. A range entirely outside b is kept so that it selects nothing.
// TopN is clamped into [0, MaxTopN].
func (s Selection) Clamp(b Bounds) Selection {
	if b.Valid {
		switch {
		case s.From == 0 && s.To == 0:
			s.From, s.To = b.MinYear, b.MaxYear
		case s.From == 0:
			s.From = min(b.MinYear, s.To)
		case s.To == 0:
			s.To = max(b.MaxYear, s.From)
		}
	}
	if s.From > s.To {
		s.From, s.To = s.To, s.From
	}
	if b.Valid && s.Overlaps(b) {
		s.From = clampInt(s.From, b.MinYear, b.MaxYear)
		s.To = clampInt(s.To, b.MinYear, b.MaxYear)
	}
	s.TopN = clampInt(s.TopN, 0, MaxTopN)
	return s
}

// Overlaps reports whether the year range of s intersects b.
func (s Selection) Overlaps(b Bounds) bool {
	return b.Valid && s.From <= b.MaxYear && s.To >= b.MinYear
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Parse reads a Selection from query values, starting from defaults for any
// parameter that is absent or blank. Malformed numbers are errors; values out
// of range are not, they are clamped later.
func Parse(values url.Values, defaults Selection) (Selection, error) {
	s := defaults

	if v, ok := lookup(values, ParamCountry); ok {
		s.Country = v
	} else if values.Has(ParamCountry) {
		// An explicitly blank country means "all countries".
		s.Country = ""
	}

	var err error
	if s.From, err = intParam(values, ParamFrom, s.From); err != nil {
		return Selection{}, err
	}
	if s.To, err = intParam(values, ParamTo, s.To); err != nil {
		return Selection{}, err
	}
	if s.TopN, err = intParam(values, ParamTop, s.TopN); err != nil {
		return Selection{}, err
	}
	if s.TopN < 0 {
		return Selection{}, fmt.Errorf("invalid %s %d: must not be negative", ParamTop, s.TopN)
	}
	if v, ok := lookup(values, ParamAnimate); ok {
		b, err := parseBool(v)
		if err != nil {
			return Selection{}, fmt.Errorf("invalid %s %q: %w", ParamAnimate, v, err)
		}
		s.Animate = b
	} else if values.Has(ParamAnimate) {
		// An unchecked HTML checkbox is absent, but a hidden empty field means off.
		s.Animate = false
	}
	return s, nil
}

func lookup(values url.Values, key string) (string, bool) {
	v := strings.TrimSpace(values.Get(key))
	return v, v != ""
}

func intParam(values url.Values, key string, def int) (int, error) {
	v, ok := lookup(values, key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not an integer", key, v)
	}
	return n, nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(v)
}

// Query encodes s as URL query values. Parse(s.Query(), Selection{}) round
// trips. Unset fields are omitted to keep permalinks short, except top:
// zero (no limit) differs from the server's default limit.
func (s Selection) Query() url.Values {
	v := url.Values{}
	if s.Country != "" {
		v.Set(ParamCountry, s.Country)
	}
	if s.From != 0 {
		v.Set(ParamFrom, strconv.Itoa(s.From))
	}
	if s.To != 0 {
		v.Set(ParamTo, strconv.Itoa(s.To))
	}
	if s.Animate {
		v.Set(ParamAnimate, "1")
	}
	v.Set(ParamTop, strconv.Itoa(s.TopN))
	return v
}

// Key returns a canonical string for s, suitable for deduplicating identical
// requests.
func (s Selection) Key() string {
	return s.Query().Encode()
}

// Label describes the selected country for titles. all is used when no
// country is selected.
func (s Selection) Label(all string) string {
	if s.Country == "" {
		return all
	}
	return s.Country
}
