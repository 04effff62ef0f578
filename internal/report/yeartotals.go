// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cizinci/cizinci/internal/aggregate"
	"github.com/cizinci/cizinci/internal/numfmt"
	"github.com/cizinci/cizinci/internal/pipeline"
)

type yearTotalRow struct {
	year   int
	total  int
	change int
	other  int
}

// yearTotalsSection reports persons per year with the change from the year
// before and, when the view is truncated, the Other share.
type yearTotalsSection struct {
	rows      []yearTotalRow
	withOther bool
	locale    string
}

func (s *yearTotalsSection) Name() string        { return "year-totals" }
func (s *yearTotalsSection) Description() string { return "Persons per year and year-over-year change" }

func (s *yearTotalsSection) Analyze(view *pipeline.View) error {
	if view.Empty() {
		return fmt.Errorf("year-totals: %w", ErrNoData)
	}
	s.locale = view.Labels.Locale
	s.withOther = view.Selection.TopN > 0
	s.rows = make([]yearTotalRow, len(view.YearTotals))
	for i, yt := range view.YearTotals {
		row := yearTotalRow{year: yt.Year, total: yt.Total}
		if i > 0 {
			row.change = yt.Total - view.YearTotals[i-1].Total
		}
		for _, r := range aggregate.ForYear(view.Bars, yt.Year) {
			if r.Other {
				row.other += r.Count
			}
		}
		s.rows[i] = row
	}
	return nil
}

func (s *yearTotalsSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Year Totals"))
	_, _ = fmt.Fprintf(w, "-----------\n")

	cols := []Column{
		{Header: "Year"},
		{Header: "Persons", Align: AlignRight},
		{Header: "Change", Align: AlignRight, Color: ColorChange},
	}
	if s.withOther {
		cols = append(cols, Column{Header: "Other share", Align: AlignRight})
	}
	tbl := NewTable(cols...)
	for i, r := range s.rows {
		change := ""
		if i > 0 {
			change = numfmt.Signed(s.locale, r.change)
		}
		tbl.AddRow(
			strconv.Itoa(r.year),
			numfmt.Int(s.locale, r.total),
			change,
			numfmt.Percent(s.locale, r.other, r.total),
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
