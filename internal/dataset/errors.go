// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

// ErrEmptySource is returned when the source has no header row at all.
var ErrEmptySource = errors.New("dataset: source is empty")

// ErrMissingColumn is returned when a required column is absent from the
// header.
var ErrMissingColumn = errors.New("dataset: missing required column")

// LoadError describes why a dataset could not be loaded. Line is 1-based and
// zero when the failure is not tied to a row.
type LoadError struct {
	Source string
	Line   int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("dataset: %s line %d, column %q: %v", e.Source, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("dataset: %s line %d: %v", e.Source, e.Line, e.Err)
	default:
		return fmt.Sprintf("dataset: %s: %v", e.Source, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// FieldError reports a single cell that could not be parsed.
type FieldError struct {
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("column %q: invalid value %q: %v", e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
