// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cizinci/cizinci/internal/pipeline"
)

func init() {
	RegisterFormatter(NewCSVFormatter())
}

// CSVFormatter writes the aggregated rows of a view, one line per
// (year, category), with the assigned color.
type CSVFormatter struct{}

// Compile-time interface checks.
var (
	_ Formatter    = (*CSVFormatter)(nil)
	_ ContentTyper = (*CSVFormatter)(nil)
)

// NewCSVFormatter returns a new CSVFormatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Name returns the format name.
func (c *CSVFormatter) Name() string {
	return "csv"
}

// ContentType returns the MIME type of the output.
func (c *CSVFormatter) ContentType() string {
	return "text/csv; charset=utf-8"
}

// Format writes a header and one record per aggregated row. An empty view
// produces only the header.
func (c *CSVFormatter) Format(view *pipeline.View, w io.Writer) error {
	cw := csv.NewWriter(w)
	labels := view.Labels
	if err := cw.Write([]string{labels.Year, labels.Country, labels.Persons, "other", "color"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range view.Bars {
		rec := []string{
			strconv.Itoa(r.Year),
			r.Category,
			strconv.Itoa(r.Count),
			strconv.FormatBool(r.Other),
			view.Colors.Color(r.Category),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
