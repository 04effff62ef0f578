// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Year limits accepted for a record.
const (
	MinYear = 1800
	MaxYear = 3000
)

// Columns names the header cells that hold each Record field.
type Columns struct {
	Country        string `yaml:"country,omitempty" toml:"country,omitempty"`
	CountryEnglish string `yaml:"country_english,omitempty" toml:"country_english,omitempty"`
	Year           string `yaml:"year,omitempty" toml:"year,omitempty"`
	Persons        string `yaml:"persons,omitempty" toml:"persons,omitempty"`
}

// DefaultColumns matches the header of the data.gov.cz export.
var DefaultColumns = Columns{
	Country:        "Země",
	CountryEnglish: "Země_anglicky",
	Year:           "Rok",
	Persons:        "Počet osob",
}

// WithDefaults fills unset names from DefaultColumns.
func (c Columns) WithDefaults() Columns {
	if c.Country == "" {
		c.Country = DefaultColumns.Country
	}
	if c.CountryEnglish == "" {
		c.CountryEnglish = DefaultColumns.CountryEnglish
	}
	if c.Year == "" {
		c.Year = DefaultColumns.Year
	}
	if c.Persons == "" {
		c.Persons = DefaultColumns.Persons
	}
	return c
}

// Index locates the four columns in header. Names are matched after trimming
// whitespace and a UTF-8 byte order mark, first exactly and then ignoring
// case.
func (c Columns) Index(header []string) (Index, error) {
	c = c.WithDefaults()
	clean := make([]string, len(header))
	for i, h := range header {
		clean[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	find := func(name string) int {
		for i, h := range clean {
			if h == name {
				return i
			}
		}
		for i, h := range clean {
			if strings.EqualFold(h, name) {
				return i
			}
		}
		return -1
	}

	idx := Index{cols: c}
	var missing []string
	for _, f := range []struct {
		name string
		pos  *int
	}{
		{c.Country, &idx.country},
		{c.CountryEnglish, &idx.english},
		{c.Year, &idx.year},
		{c.Persons, &idx.persons},
	} {
		*f.pos = find(f.name)
		if *f.pos < 0 {
			missing = append(missing, strconv.Quote(f.name))
		}
	}
	if len(missing) > 0 {
		return Index{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

// Index maps header positions to Record fields.
type Index struct {
	cols                            Columns
	country, english, year, persons int
}

// Width returns the minimum number of cells a row must have.
func (x Index) Width() int {
	return max(x.country, x.english, x.year, x.persons) + 1
}

// Record converts one data row. The returned error is a *FieldError naming
// the offending column.
func (x Index) Record(row []string) (Record, error) {
	if len(row) < x.Width() {
		return Record{}, fmt.Errorf("expected at least %d fields, got %d", x.Width(), len(row))
	}

	country := strings.TrimSpace(row[x.country])
	if country == "" {
		return Record{}, &FieldError{Column: x.cols.Country, Value: row[x.country], Err: errors.New("country is empty")}
	}

	yearCell := strings.TrimSpace(row[x.year])
	year, err := strconv.Atoi(yearCell)
	if err != nil {
		return Record{}, &FieldError{Column: x.cols.Year, Value: yearCell, Err: errors.New("not an integer")}
	}
	if year < MinYear || year > MaxYear {
		return Record{}, &FieldError{Column: x.cols.Year, Value: yearCell, Err: fmt.Errorf("outside %d..%d", MinYear, MaxYear)}
	}

	persons, err := ParseCount(row[x.persons])
	if err != nil {
		return Record{}, &FieldError{Column: x.cols.Persons, Value: strings.TrimSpace(row[x.persons]), Err: err}
	}

	return Record{
		Country:        country,
		CountryEnglish: strings.TrimSpace(row[x.english]),
		Year:           year,
		Persons:        persons,
	}, nil
}

// ParseCount parses a non-negative person count. Spaces, no-break spaces and
// commas used as thousands separators are ignored.
func ParseCount(s string) (int, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ',', '\u00a0', '\u202f', '\t':
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return 0, errors.New("count is empty")
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, errors.New("not an integer")
	}
	if n < 0 {
		return 0, errors.New("count is negative")
	}
	return n, nil
}
