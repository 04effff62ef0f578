// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

// errUnsupported is wrapped when a SQL source cannot be opened.
var errUnsupported = errors.New("unsupported database source")

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// sqlSource is a parsed sqlite:// or postgres:// dataset location.
type sqlSource struct {
	driver string
	dsn    string
	table  string
}

// parseSQLSource splits the table query parameter off source and converts
// the remainder into a DSN the registered driver accepts.
func parseSQLSource(scheme, source string) (sqlSource, error) {
	u, err := url.Parse(source)
	if err != nil {
		return sqlSource{}, err
	}
	q := u.Query()
	table := q.Get("table")
	if table == "" {
		table = DefaultTable
	}
	if !identPattern.MatchString(table) {
		return sqlSource{}, fmt.Errorf("invalid table name %q", table)
	}
	q.Del("table")
	u.RawQuery = q.Encode()

	switch scheme {
	case "sqlite":
		path := u.Host + u.Path
		if path == "" {
			return sqlSource{}, fmt.Errorf("%w: sqlite source has no path", errUnsupported)
		}
		dsn := path
		if u.RawQuery != "" {
			dsn += "?" + u.RawQuery
		}
		return sqlSource{driver: "sqlite", dsn: dsn, table: table}, nil
	case "postgres", "postgresql":
		return sqlSource{driver: "pgx", dsn: u.String(), table: table}, nil
	}
	return sqlSource{}, fmt.Errorf("%w: %s", errUnsupported, scheme)
}

// query builds the SELECT for the configured columns. The table name was
// validated by parseSQLSource.
func (s sqlSource) query(cols Columns) string {
	cols = cols.WithDefaults()
	names := []string{cols.Country, cols.CountryEnglish, cols.Year, cols.Persons}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteIdent(n)
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), s.table)
}

// quoteIdent wraps a column name in double quotes. Column names come from the
// CSV header convention and may contain spaces or diacritics, so they are
// quoted rather than pattern-checked.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (l Loader) loadSQL(ctx context.Context, scheme, source string) ([]Record, error) {
	src, err := parseSQLSource(scheme, source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	db, err := sql.Open(src.driver, src.dsn)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	defer db.Close() //nolint:errcheck // read-only

	rows, err := db.QueryContext(ctx, src.query(l.Columns))
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("query %s: %w", src.table, err)}
	}
	defer rows.Close() //nolint:errcheck // read-only

	var records []Record
	line := 0
	for rows.Next() {
		line++
		var (
			r       Record
			english sql.NullString
		)
		if err := rows.Scan(&r.Country, &english, &r.Year, &r.Persons); err != nil {
			return nil, &LoadError{Source: source, Line: line, Err: err}
		}
		r.Country = strings.TrimSpace(r.Country)
		r.CountryEnglish = strings.TrimSpace(english.String)
		if err := checkRecord(r, l.Columns.WithDefaults()); err != nil {
			le := &LoadError{Source: source, Line: line, Err: err}
			var fe *FieldError
			if errors.As(err, &fe) {
				le.Column = fe.Column
			}
			return nil, le
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return records, nil
}

// checkRecord applies the row invariants to a value scanned from SQL, where
// the driver has already done the type conversion.
func checkRecord(r Record, cols Columns) error {
	switch {
	case r.Country == "":
		return &FieldError{Column: cols.Country, Err: errors.New("country is empty")}
	case r.Year < MinYear || r.Year > MaxYear:
		return &FieldError{Column: cols.Year, Value: fmt.Sprint(r.Year), Err: fmt.Errorf("outside %d..%d", MinYear, MaxYear)}
	case r.Persons < 0:
		return &FieldError{Column: cols.Persons, Value: fmt.Sprint(r.Persons), Err: errors.New("count is negative")}
	}
	return nil
}
