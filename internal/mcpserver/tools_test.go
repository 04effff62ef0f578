// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `Země,Země_anglicky,Rok,Počet osob
Ukrajina,Ukraine,2004,1000
Slovensko,Slovakia,2004,800
Vietnam,Vietnam,2004,300
Rusko,Russia,2004,100
Ukrajina,Ukraine,2005,1500
Slovensko,Slovakia,2005,700
Vietnam,Vietnam,2005,300
Rusko,Russia,2005,400
`

// writeDataset writes the sample CSV to a fresh temp dir.
func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cizinci.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o600))
	return path
}

// isolateConfig keeps the user's global config out of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func newTestToolset(t *testing.T) *toolset {
	t.Helper()
	isolateConfig(t)
	return newToolset(Options{Dir: t.TempDir()})
}

func intPtr(n int) *int { return &n }

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestHandleCountries(t *testing.T) {
	ts := newTestToolset(t)
	path := writeDataset(t)

	_, out, err := ts.handleCountries(context.Background(), nil, CountriesInput{Dataset: path})
	require.NoError(t, err)

	assert.Equal(t, 2004, out.MinYear)
	assert.Equal(t, 2005, out.MaxYear)
	require.Len(t, out.Countries, 4)

	names := make([]string, 0, len(out.Countries))
	for _, c := range out.Countries {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Rusko", "Slovensko", "Ukrajina", "Vietnam"}, names)
	assert.Equal(t, CountryInfo{Name: "Rusko", English: "Russia", FirstYear: 2004, LastYear: 2005}, out.Countries[0])
}

func TestHandleCountries_MissingDataset(t *testing.T) {
	ts := newTestToolset(t)
	_, _, err := ts.handleCountries(context.Background(), nil, CountriesInput{Dataset: "/nonexistent/cizinci.csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestHandleCountries_MalformedDataset(t *testing.T) {
	ts := newTestToolset(t)
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Země,Rok\nUkrajina,2004\n"), 0o600))

	_, _, err := ts.handleCountries(context.Background(), nil, CountriesInput{Dataset: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load failed")
}

func TestHandleAggregate_TopN(t *testing.T) {
	ts := newTestToolset(t)
	path := writeDataset(t)

	_, out, err := ts.handleAggregate(context.Background(), nil, AggregateInput{Dataset: path, Top: intPtr(2)})
	require.NoError(t, err)

	assert.Equal(t, 8, out.Records)
	assert.Equal(t, 5100, out.Total)
	assert.Equal(t, 1100, out.Other)
	assert.Len(t, out.Rows, 6)
	assert.Equal(t, 2004, out.Selection.From)
	assert.Equal(t, 2005, out.Selection.To)
	require.NotEmpty(t, out.Ranking)
	assert.Equal(t, "Ukrajina", out.Ranking[0].Category)
	assert.Equal(t, 2500, out.Ranking[0].Total)

	sum := 0
	for _, r := range out.Rows {
		sum += r.Count
	}
	assert.Equal(t, out.Total, sum, "rows must preserve the total")
}

func TestHandleAggregate_DefaultTopKeepsEverything(t *testing.T) {
	ts := newTestToolset(t)
	path := writeDataset(t)

	_, out, err := ts.handleAggregate(context.Background(), nil, AggregateInput{Dataset: path})
	require.NoError(t, err)
	assert.Equal(t, 20, out.Selection.TopN)
	assert.Zero(t, out.Other)
	assert.Len(t, out.Rows, 8)
}

func TestHandleAggregate_CountryAndRange(t *testing.T) {
	ts := newTestToolset(t)
	path := writeDataset(t)

	_, out, err := ts.handleAggregate(context.Background(), nil, AggregateInput{
		Dataset: path, Country: " Vietnam ", From: 2005, To: 2005,
	})
	require.NoError(t, err)
	assert.Equal(t, "Vietnam", out.Selection.Country)
	assert.Equal(t, 300, out.Total)
	assert.Len(t, out.Rows, 1)
}

func TestHandleAggregate_EmptyResultIsNotAnError(t *testing.T) {
	ts := newTestToolset(t)
	path := writeDataset(t)

	_, out, err := ts.handleAggregate(context.Background(), nil, AggregateInput{Dataset: path, Country: "Atlantida"})
	require.NoError(t, err)
	assert.Zero(t, out.Records)
	assert.NotNil(t, out.Rows)
	assert.Empty(t, out.Rows)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rows":[]`)
}

func TestHandleAggregate_NegativeTop(t *testing.T) {
	ts := newTestToolset(t)
	_, _, err := ts.handleAggregate(context.Background(), nil, AggregateInput{Dataset: writeDataset(t), Top: intPtr(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestHandleRender_DefaultsToMarkdown(t *testing.T) {
	ts := newTestToolset(t)
	result, _, err := ts.handleRender(context.Background(), nil, RenderInput{Dataset: writeDataset(t)})
	require.NoError(t, err)
	text := textOf(t, result)
	assert.Contains(t, text, "Ukrajina")
	assert.Contains(t, text, "|")
}

func TestHandleRender_JSON(t *testing.T) {
	ts := newTestToolset(t)
	result, _, err := ts.handleRender(context.Background(), nil, RenderInput{Dataset: writeDataset(t), Format: "json"})
	require.NoError(t, err)
	text := textOf(t, result)
	assert.True(t, json.Valid([]byte(text)))
	assert.Contains(t, text, `"bars"`)
}

func TestHandleRender_RejectsUnusableFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"png", "binary"},
		{"html-dir", "directory"},
		{"xlsx", "unsupported format"},
		{"<script>", "unsupported format"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			ts := newTestToolset(t)
			_, _, err := ts.handleRender(context.Background(), nil, RenderInput{Dataset: writeDataset(t), Format: tt.format})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHandleReport_Text(t *testing.T) {
	ts := newTestToolset(t)
	result, _, err := ts.handleReport(context.Background(), nil, ReportInput{Dataset: writeDataset(t), Sections: "ranking, year-totals"})
	require.NoError(t, err)
	text := textOf(t, result)
	assert.Contains(t, text, "Cizinci Report")
	assert.Contains(t, text, "Ukrajina")
}

func TestHandleReport_JSON(t *testing.T) {
	ts := newTestToolset(t)
	result, _, err := ts.handleReport(context.Background(), nil, ReportInput{Dataset: writeDataset(t), JSON: true})
	require.NoError(t, err)
	text := textOf(t, result)
	assert.True(t, json.Valid([]byte(text)))
	assert.Contains(t, text, `"ranking"`)
}

func TestHandleReport_UnknownSection(t *testing.T) {
	ts := newTestToolset(t)
	_, _, err := ts.handleReport(context.Background(), nil, ReportInput{Dataset: writeDataset(t), Sections: "ranking,bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section(s): bogus")
}

func TestToolset_LoadsDatasetOnce(t *testing.T) {
	ts := newTestToolset(t)
	path := writeDataset(t)

	_, first, err := ts.handleCountries(context.Background(), nil, CountriesInput{Dataset: path})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("Země,Země_anglicky,Rok,Počet osob\nNěmecko,Germany,2010,5\n"), 0o600))
	_, second, err := ts.handleCountries(context.Background(), nil, CountriesInput{Dataset: path})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, ts.datasets.loaded, 1)
}

func TestToolset_DefaultDataset(t *testing.T) {
	isolateConfig(t)
	ts := newToolset(Options{Dir: t.TempDir(), Dataset: writeDataset(t)})

	_, out, err := ts.handleCountries(context.Background(), nil, CountriesInput{})
	require.NoError(t, err)
	assert.Len(t, out.Countries, 4)
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"ranking", []string{"ranking"}},
		{" ranking , movers ,, ", []string{"ranking", "movers"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitAndTrim(tt.input))
	}
}
