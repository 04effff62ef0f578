// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cizinci/cizinci/internal/numfmt"
	"github.com/cizinci/cizinci/internal/pipeline"
	"github.com/cizinci/cizinci/internal/selection"
)

// ReportJSON is the top-level JSON structure for --json output.
type ReportJSON struct {
	Dataset   string              `json:"dataset"`
	Generated string              `json:"generated"`
	Duration  string              `json:"duration"`
	Selection selection.Selection `json:"selection"`
	Records   int                 `json:"records"`
	Total     int                 `json:"total"`
	Sections  []SectionJSON       `json:"sections,omitempty"`
}

// SectionJSON is the JSON representation of a single report section.
type SectionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`            // "ok", "skipped"
	Content     string `json:"content,omitempty"` // rendered text
}

// Render writes the terminal report: a header describing the view followed
// by every requested section. Sections that return ErrNoData are listed as
// skipped.
func Render(view *pipeline.View, sections []string, w io.Writer) error {
	labels := view.Labels
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Cizinci Report"))
	_, _ = fmt.Fprintf(w, "==============\n\n")
	_, _ = fmt.Fprintf(w, "Dataset:    %s\n", view.Source)
	_, _ = fmt.Fprintf(w, "Generated:  %s\n", view.GeneratedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(w, "Country:    %s\n", view.CountryLabel())
	_, _ = fmt.Fprintf(w, "Years:      %d–%d\n", view.Selection.From, view.Selection.To)
	_, _ = fmt.Fprintf(w, "Records:    %s\n", numfmt.Int(labels.Locale, view.Records))
	_, _ = fmt.Fprintf(w, "Persons:    %s\n\n", numfmt.Int(labels.Locale, view.Total()))

	var skipped []string
	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}
		if err := sec.Analyze(view); err != nil {
			if errors.Is(err, ErrNoData) {
				skipped = append(skipped, name)
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}
		if err := sec.Render(w); err != nil {
			return fmt.Errorf("section %s render: %w", name, err)
		}
	}
	if len(skipped) > 0 {
		_, _ = fmt.Fprintf(w, "Skipped (no data): %s\n", strings.Join(skipped, ", "))
	}
	return nil
}

// RenderJSON writes the report as machine-readable JSON.
func RenderJSON(view *pipeline.View, sections []string, w io.Writer) error {
	out := ReportJSON{
		Dataset:   view.Source,
		Generated: view.GeneratedAt.Format(time.RFC3339),
		Duration:  view.Duration.Round(time.Microsecond).String(),
		Selection: view.Selection,
		Records:   view.Records,
		Total:     view.Total(),
	}

	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}

		sj := SectionJSON{
			Name:        sec.Name(),
			Description: sec.Description(),
		}

		if err := sec.Analyze(view); err != nil {
			if errors.Is(err, ErrNoData) {
				sj.Status = "skipped"
				out.Sections = append(out.Sections, sj)
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}

		sj.Status = "ok"
		var buf bytes.Buffer
		if err := sec.Render(&buf); err != nil {
			return fmt.Errorf("section %s render: %w", name, err)
		}
		sj.Content = buf.String()
		out.Sections = append(out.Sections, sj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// ResolveSections determines which sections to run without printing warnings.
// If filter is empty, all registered sections are used.
func ResolveSections(filter []string) []string {
	if len(filter) == 0 {
		return List()
	}

	available := make(map[string]bool)
	for _, name := range List() {
		available[name] = true
	}

	var names []string
	for _, name := range filter {
		if available[name] {
			names = append(names, name)
		}
	}
	return names
}

// UnknownSections returns the names in filter that are not registered.
func UnknownSections(filter []string) []string {
	var unknown []string
	for _, name := range filter {
		if Get(name) == nil {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
