// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/cizinci/cizinci/internal/aggregate"
	"github.com/cizinci/cizinci/internal/numfmt"
	"github.com/cizinci/cizinci/internal/pipeline"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// markdownRankingLimit caps the ranking table.
const markdownRankingLimit = 20

// MarkdownFormatter writes a view as a human-readable Markdown summary.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the view as a Markdown document to w.
//
// The output includes:
//   - A title heading and the selection
//   - The overall category ranking (top 20)
//   - Per-year totals
//   - The aggregated rows of each year
func (m *MarkdownFormatter) Format(view *pipeline.View, w io.Writer) error {
	labels := view.Labels
	locale := labels.Locale
	num := func(n int) string { return numfmt.Int(locale, n) }

	var b strings.Builder
	title := view.Title
	if title == "" {
		title = labels.MapTitleFor(view.Selection.Country, view.Selection.From, view.Selection.To)
	}
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(title))
	fmt.Fprintf(&b, "**%s:** %s | **%s:** %d–%d",
		labels.Country, escapeMarkdown(view.CountryLabel()),
		labels.Year, view.Selection.From, view.Selection.To)
	if view.Selection.TopN > 0 {
		fmt.Fprintf(&b, " | **Top:** %d", view.Selection.TopN)
	}
	fmt.Fprintf(&b, " | **%s:** %s\n\n", labels.Total, num(view.Total()))

	if view.Empty() {
		fmt.Fprintf(&b, "_%s_\n", labels.Empty)
		return writeString(w, b.String())
	}

	b.WriteString("## " + labels.Countries + "\n\n")
	fmt.Fprintf(&b, "| # | %s | %s |\n|---:|---|---:|\n", labels.Country, labels.Persons)
	for i, t := range view.Ranking {
		if i == markdownRankingLimit {
			break
		}
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, escapeMarkdown(t.Category), num(t.Total))
	}
	if len(view.Ranking) > markdownRankingLimit {
		fmt.Fprintf(&b, "\n_+%d_\n", len(view.Ranking)-markdownRankingLimit)
	}

	b.WriteString("\n## " + labels.Years + "\n\n")
	fmt.Fprintf(&b, "| %s | %s |\n|---:|---:|\n", labels.Year, labels.Persons)
	for _, yt := range view.YearTotals {
		fmt.Fprintf(&b, "| %d | %s |\n", yt.Year, num(yt.Total))
	}

	for _, year := range aggregate.Years(view.Bars) {
		fmt.Fprintf(&b, "\n### %d\n\n", year)
		for _, r := range aggregate.ForYear(view.Bars, year) {
			name := escapeMarkdown(r.Category)
			if r.Other {
				name = "_" + name + "_"
			}
			fmt.Fprintf(&b, "- %s: %s\n", name, num(r.Count))
		}
	}
	return writeString(w, b.String())
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// escapeMarkdown escapes characters that would break table cells or emphasis.
func escapeMarkdown(s string) string {
	r := strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`")
	return r.Replace(s)
}
