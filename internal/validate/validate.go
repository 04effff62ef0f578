// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package validate checks a residents CSV file row by row. Unlike the
// dataset loader, which stops at the first bad row, it keeps going and
// reports every problem with a line number and a fix suggestion.
package validate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cizinci/cizinci/internal/dataset"
)

// MaxErrors caps the number of errors kept in a Result.
const MaxErrors = 100

// RowError represents a single validation issue on a specific line.
type RowError struct {
	Line       int    // 1-based line number
	Column     string // header name (empty if line-level error)
	Value      string // offending cell value
	Message    string // what's wrong
	Suggestion string // how to fix it
}

// Error implements the error interface.
func (e *RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("line %d, column %q: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Result contains the outcome of validating a CSV file.
type Result struct {
	TotalRows int
	Errors    []RowError

	// Dropped counts errors found after MaxErrors was reached.
	Dropped int

	// Warnings do not make the file invalid.
	Warnings []RowError

	Countries        int
	MinYear, MaxYear int
}

// Valid returns true if no errors were found.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// ErrorCount is the number of errors found, including dropped ones.
func (r *Result) ErrorCount() int {
	return len(r.Errors) + r.Dropped
}

func (r *Result) addError(e RowError) {
	if len(r.Errors) >= MaxErrors {
		r.Dropped++
		return
	}
	r.Errors = append(r.Errors, e)
}

func (r *Result) addWarning(e RowError) {
	if len(r.Warnings) < MaxErrors {
		r.Warnings = append(r.Warnings, e)
	}
}

// Validate reads CSV from r and checks the header and every data row against
// cols. Unset column names use dataset.DefaultColumns.
func Validate(r io.Reader, cols dataset.Columns) *Result {
	result := &Result{}
	cols = cols.WithDefaults()
	cr := dataset.NewCSVReader(r, 0)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		result.addError(RowError{
			Line:       1,
			Message:    "file is empty",
			Suggestion: fmt.Sprintf("add a header row: %s", strings.Join(headerNames(cols), ",")),
		})
		return result
	}
	if err != nil {
		result.addError(RowError{
			Line:       1,
			Message:    fmt.Sprintf("unreadable header: %v", err),
			Suggestion: "ensure the file is comma-separated UTF-8 text",
		})
		return result
	}

	idx, err := cols.Index(header)
	if err != nil {
		checkHeader(header, cols, result)
		return result
	}

	countries := make(map[string]bool)
	missingEnglish := make(map[string]bool)
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
			result.TotalRows++
			result.addError(RowError{
				Line:       line,
				Message:    fmt.Sprintf("malformed CSV: %v", err),
				Suggestion: "check quoting on this line",
			})
			continue
		}
		if isBlank(row) {
			continue
		}
		result.TotalRows++

		rec, err := idx.Record(row)
		if err != nil {
			result.addError(rowError(line, len(row), idx.Width(), err))
			continue
		}

		countries[rec.Country] = true
		if result.MinYear == 0 || rec.Year < result.MinYear {
			result.MinYear = rec.Year
		}
		if rec.Year > result.MaxYear {
			result.MaxYear = rec.Year
		}
		if rec.CountryEnglish == "" && !missingEnglish[rec.Country] {
			missingEnglish[rec.Country] = true
			result.addWarning(RowError{
				Line:       line,
				Column:     cols.CountryEnglish,
				Message:    fmt.Sprintf("no English name for %q", rec.Country),
				Suggestion: "the map locates countries by English name; add it or the country is drawn under its local name",
			})
		}
	}
	result.Countries = len(countries)
	return result
}

// checkHeader reports every configured column missing from header, with a
// suggestion when a header cell looks like a misspelling of it.
func checkHeader(header []string, cols dataset.Columns, result *Result) {
	present := make([]string, len(header))
	for i, h := range header {
		present[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	for _, name := range headerNames(cols) {
		found := false
		for _, h := range present {
			if strings.EqualFold(h, name) {
				found = true
				break
			}
		}
		if found {
			continue
		}

		suggestion := fmt.Sprintf("add a %q column or set columns in .cizinci.yaml", name)
		if hint := closestMatch(name, present, 3); hint != "" {
			suggestion = fmt.Sprintf("did you mean %q? rename the column or set columns in .cizinci.yaml", hint)
		}
		result.addError(RowError{
			Line:       1,
			Column:     name,
			Message:    fmt.Sprintf("missing required column %q", name),
			Suggestion: suggestion,
		})
	}
}

// rowError converts a dataset.Index.Record failure into a RowError.
func rowError(line, width, want int, err error) RowError {
	var fe *dataset.FieldError
	if !errors.As(err, &fe) {
		return RowError{
			Line:       line,
			Message:    fmt.Sprintf("row has %d fields, expected at least %d", width, want),
			Suggestion: "check for missing delimiters or an unquoted comma in a country name",
		}
	}
	return RowError{
		Line:       line,
		Column:     fe.Column,
		Value:      fe.Value,
		Message:    fmt.Sprintf("invalid value %q: %v", fe.Value, fe.Err),
		Suggestion: suggestFix(fe),
	}
}

func suggestFix(fe *dataset.FieldError) string {
	msg := fe.Err.Error()
	switch {
	case msg == "country is empty":
		return "fill in the country of citizenship or delete the row"
	case strings.HasPrefix(msg, "outside"):
		return fmt.Sprintf("use a year between %d and %d", dataset.MinYear, dataset.MaxYear)
	case msg == "count is empty":
		return "fill in the number of persons (0 is allowed)"
	case strings.Contains(msg, "negative"):
		return "person counts cannot be negative"
	}
	if _, err := strconv.ParseFloat(strings.ReplaceAll(fe.Value, ",", "."), 64); err == nil {
		return "use a whole number without decimals"
	}
	return "use a whole number such as 2004 or 1 250"
}

func headerNames(cols dataset.Columns) []string {
	return []string{cols.Country, cols.CountryEnglish, cols.Year, cols.Persons}
}

func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

// closestMatch finds the closest string in candidates to input using
// Levenshtein distance, ignoring case. Returns empty string if no match is
// within maxDist.
func closestMatch(input string, candidates []string, maxDist int) string {
	best := ""
	bestDist := maxDist + 1

	for _, c := range candidates {
		d := levenshtein(strings.ToLower(input), strings.ToLower(c))
		if d < bestDist {
			bestDist = d
			best = c
		}
	}

	if bestDist <= maxDist {
		return best
	}
	return ""
}

// levenshtein computes the Levenshtein edit distance between two strings,
// counted in runes.
func levenshtein(s, t string) int {
	a, b := []rune(s), []rune(t)
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}
