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

const rankingTopN = 20

// rankingSection lists the countries with the most persons over the range.
type rankingSection struct {
	rows   []aggregate.CategoryTotal
	total  int
	more   int
	locale string
}

func (s *rankingSection) Name() string { return "ranking" }
func (s *rankingSection) Description() string {
	return "Countries ranked by persons over the selected years"
}

func (s *rankingSection) Analyze(view *pipeline.View) error {
	if view.Empty() {
		return fmt.Errorf("ranking: %w", ErrNoData)
	}
	s.locale = view.Labels.Locale
	s.total = view.Total()
	s.rows = view.Ranking
	s.more = 0
	if len(s.rows) > rankingTopN {
		s.more = len(s.rows) - rankingTopN
		s.rows = s.rows[:rankingTopN]
	}
	return nil
}

func (s *rankingSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Country Ranking"))
	_, _ = fmt.Fprintf(w, "---------------\n")

	tbl := NewTable(
		Column{Header: "#", Align: AlignRight},
		Column{Header: "Country"},
		Column{Header: "Persons", Align: AlignRight},
		Column{Header: "Share", Align: AlignRight},
	)
	for i, r := range s.rows {
		tbl.AddRow(
			strconv.Itoa(i+1),
			r.Category,
			numfmt.Int(s.locale, r.Total),
			numfmt.Percent(s.locale, r.Total, s.total),
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	if s.more > 0 {
		_, _ = fmt.Fprintf(w, "  ... and %d more\n", s.more)
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
