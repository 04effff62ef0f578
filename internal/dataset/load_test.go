// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cizinci/cizinci/internal/testable"
)

const sampleCSV = "Země,Země_anglicky,Rok,Počet osob\n" +
	"Ukrajina,Ukraine,2004,100\n" +
	"Slovensko,Slovakia,2004,90\n" +
	"\n" +
	"Vietnam,Vietnam,2005,\"1,080\"\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	ds, err := Loader{}.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 1080, ds.Records()[2].Persons)
	assert.Equal(t, path, ds.Source())
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "Země,Země_anglicky,Rok,Počet osob\n")

	ds, err := Loader{}.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestLoad_Semicolon(t *testing.T) {
	path := writeCSV(t, "Země;Země_anglicky;Rok;Počet osob\nRusko;Russia;2007;3 500\n")

	ds, err := Loader{Comma: ';'}.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 3500, ds.Records()[0].Persons)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Loader{}.Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Zero(t, le.Line)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := Loader{}.Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestLoad_MalformedRowIsFatal(t *testing.T) {
	path := writeCSV(t, "Země,Země_anglicky,Rok,Počet osob\n"+
		"Ukrajina,Ukraine,2004,100\n"+
		"Slovensko,Slovakia,2004,many\n")

	ds, err := Loader{}.Load(context.Background(), path)
	require.Error(t, err)
	assert.Nil(t, ds)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.Line)
	assert.Equal(t, "Počet osob", le.Column)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeCSV(t, "country,year\nX,2004\n")

	_, err := Loader{}.Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoad_UsesInjectedFS(t *testing.T) {
	mock := &testable.MockFileSystem{
		OpenFn: func(name string) (io.ReadCloser, error) {
			assert.Equal(t, "virtual.csv", name)
			return io.NopCloser(strings.NewReader(sampleCSV)), nil
		},
	}

	ds, err := Loader{FS: mock}.Load(context.Background(), "virtual.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cizinci.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, sampleCSV)
	}))
	defer srv.Close()

	ds, err := Loader{Client: srv.Client()}.Load(context.Background(), srv.URL+"/cizinci.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())

	_, err = Loader{Client: srv.Client()}.Load(context.Background(), srv.URL+"/missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestLoad_UnsupportedScheme(t *testing.T) {
	_, err := Loader{}.Load(context.Background(), "ftp://example.com/data.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported source scheme "ftp"`)
}

func TestLoad_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE residents ("Země" TEXT, "Země_anglicky" TEXT, "Rok" INTEGER, "Počet osob" INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO residents VALUES ('Ukrajina','Ukraine',2004,100), ('Polsko','Poland',2005,40), ('Rusko',NULL,2005,7)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	ds, err := Loader{}.Load(context.Background(), "sqlite://"+path+"?table=residents")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, "", ds.EnglishName("Rusko"))
	lo, hi, _ := ds.YearBounds()
	assert.Equal(t, 2004, lo)
	assert.Equal(t, 2005, hi)
}

func TestParseSQLSource(t *testing.T) {
	src, err := parseSQLSource("sqlite", "sqlite:///var/data/stats.db?table=t1")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", src.driver)
	assert.Equal(t, "/var/data/stats.db", src.dsn)
	assert.Equal(t, "t1", src.table)

	src, err = parseSQLSource("postgres", "postgres://app:pw@db:5432/stats?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "pgx", src.driver)
	assert.Equal(t, "postgres://app:pw@db:5432/stats?sslmode=disable", src.dsn)
	assert.Equal(t, DefaultTable, src.table)
	assert.Equal(t, `SELECT "Země", "Země_anglicky", "Rok", "Počet osob" FROM cizinci`, src.query(Columns{}))

	_, err = parseSQLSource("sqlite", "sqlite:///x.db?table=t;DROP")
	assert.Error(t, err)
}

func TestSourceScheme(t *testing.T) {
	assert.Equal(t, "", sourceScheme("data/cizinci.csv"))
	assert.Equal(t, "", sourceScheme(`C://data/cizinci.csv`))
	assert.Equal(t, "https", sourceScheme("HTTPS://data.gov.cz/x.csv"))
	assert.Equal(t, "sqlite", sourceScheme("sqlite:///tmp/x.db"))
}
