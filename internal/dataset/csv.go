// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// NewCSVReader returns a csv.Reader configured the way every dataset reader
// in this package expects: the given delimiter (',' when zero), variable
// field counts and lazy quotes.
func NewCSVReader(r io.Reader, comma rune) *csv.Reader {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// ReadCSV parses a header row followed by data rows. The first malformed row
// aborts the read with a *LoadError carrying its line number.
func ReadCSV(r io.Reader, source string, cols Columns, comma rune) ([]Record, error) {
	cr := NewCSVReader(r, comma)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &LoadError{Source: source, Err: ErrEmptySource}
	}
	if err != nil {
		return nil, &LoadError{Source: source, Line: 1, Err: fmt.Errorf("reading header: %w", err)}
	}

	idx, err := cols.Index(header)
	if err != nil {
		return nil, &LoadError{Source: source, Line: 1, Err: err}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line, _ := cr.FieldPos(0)
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &LoadError{Source: source, Line: line, Err: err}
		}
		if isBlank(row) {
			continue
		}

		rec, err := idx.Record(row)
		if err != nil {
			le := &LoadError{Source: source, Line: line, Err: err}
			var fe *FieldError
			if errors.As(err, &fe) {
				le.Column = fe.Column
			}
			return nil, le
		}
		records = append(records, rec)
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
