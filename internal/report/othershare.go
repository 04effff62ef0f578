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

type otherShareRow struct {
	year  int
	shown int
	other int
}

// otherShareSection shows how much of each year the top-N cut folds into
// the Other bucket.
type otherShareSection struct {
	topN       int
	otherLabel string
	rows       []otherShareRow
	locale     string
}

func (s *otherShareSection) Name() string { return "other-share" }
func (s *otherShareSection) Description() string {
	return "Persons folded into the Other bucket by the top-N cut"
}

func (s *otherShareSection) Analyze(view *pipeline.View) error {
	if view.Selection.TopN <= 0 {
		return fmt.Errorf("other-share: no top-N limit: %w", ErrNoData)
	}
	s.topN = view.Selection.TopN
	s.otherLabel = view.OtherLabel
	s.locale = view.Labels.Locale
	s.rows = s.rows[:0]

	hasOther := false
	for _, year := range aggregate.Years(view.Bars) {
		row := otherShareRow{year: year}
		for _, r := range aggregate.ForYear(view.Bars, year) {
			if r.Other {
				row.other += r.Count
				hasOther = true
			} else {
				row.shown += r.Count
			}
		}
		s.rows = append(s.rows, row)
	}
	if !hasOther {
		return fmt.Errorf("other-share: nothing folded: %w", ErrNoData)
	}
	return nil
}

func (s *otherShareSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(fmt.Sprintf("%s (top %d)", s.otherLabel, s.topN)))
	_, _ = fmt.Fprintf(w, "-----------------\n")

	tbl := NewTable(
		Column{Header: "Year"},
		Column{Header: "Top " + strconv.Itoa(s.topN), Align: AlignRight},
		Column{Header: s.otherLabel, Align: AlignRight, Color: dim},
		Column{Header: "Share", Align: AlignRight},
	)
	var shown, other int
	for _, r := range s.rows {
		shown += r.shown
		other += r.other
		tbl.AddRow(
			strconv.Itoa(r.year),
			numfmt.Int(s.locale, r.shown),
			numfmt.Int(s.locale, r.other),
			numfmt.Percent(s.locale, r.other, r.shown+r.other),
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n  Overall: %s of %s (%s)\n\n",
		numfmt.Int(s.locale, other),
		numfmt.Int(s.locale, shown+other),
		numfmt.Percent(s.locale, other, shown+other))
	return nil
}
