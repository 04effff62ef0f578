// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/cizinci/cizinci/internal/numfmt"
	"github.com/cizinci/cizinci/internal/pipeline"
)

const moversTopN = 10

type mover struct {
	country string
	first   int
	last    int
}

func (m mover) delta() int { return m.last - m.first }

// moversSection lists the countries whose counts changed the most between
// the first and the last year of the view.
type moversSection struct {
	firstYear, lastYear int
	movers              []mover
	locale              string
}

func (s *moversSection) Name() string { return "movers" }
func (s *moversSection) Description() string {
	return "Largest absolute change between the first and last year"
}

func (s *moversSection) Analyze(view *pipeline.View) error {
	years := view.Years()
	if len(years) < 2 {
		return fmt.Errorf("movers: need at least two years: %w", ErrNoData)
	}
	s.locale = view.Labels.Locale
	s.firstYear, s.lastYear = years[0], years[len(years)-1]

	first := make(map[string]int)
	last := make(map[string]int)
	for _, r := range view.MapRows {
		switch r.Year {
		case s.firstYear:
			first[r.Country] += r.Count
		case s.lastYear:
			last[r.Country] += r.Count
		}
	}

	// Ranking order is the tie-break.
	s.movers = s.movers[:0]
	for _, ct := range view.Ranking {
		m := mover{country: ct.Category, first: first[ct.Category], last: last[ct.Category]}
		if m.delta() != 0 {
			s.movers = append(s.movers, m)
		}
	}
	sort.SliceStable(s.movers, func(i, j int) bool {
		return abs(s.movers[i].delta()) > abs(s.movers[j].delta())
	})
	if len(s.movers) > moversTopN {
		s.movers = s.movers[:moversTopN]
	}
	return nil
}

func (s *moversSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(fmt.Sprintf("Movers %d → %d", s.firstYear, s.lastYear)))
	_, _ = fmt.Fprintf(w, "-------------------\n")

	if len(s.movers) == 0 {
		_, _ = fmt.Fprintf(w, "  No country changed.\n\n")
		return nil
	}

	tbl := NewTable(
		Column{Header: "Country"},
		Column{Header: fmt.Sprint(s.firstYear), Align: AlignRight},
		Column{Header: fmt.Sprint(s.lastYear), Align: AlignRight},
		Column{Header: "Change", Align: AlignRight, Color: ColorChange},
		Column{Header: "Growth", Align: AlignRight, Color: ColorChange},
	)
	for _, m := range s.movers {
		growth := "new"
		if m.first > 0 {
			growth = numfmt.SignedPercent(s.locale, m.delta(), m.first)
		}
		tbl.AddRow(
			m.country,
			numfmt.Int(s.locale, m.first),
			numfmt.Int(s.locale, m.last),
			numfmt.Signed(s.locale, m.delta()),
			growth,
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
