// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cizinci/cizinci/internal/dataset"
	"github.com/cizinci/cizinci/internal/selection"
)

func TestHTMLFormatter_Name(t *testing.T) {
	f := NewHTMLFormatter()
	assert.Equal(t, "html", f.Name())
	assert.Equal(t, "text/html; charset=utf-8", f.ContentType())
}

func TestHTMLFormatter_Static(t *testing.T) {
	v := renderView(t, sampleDataset(), "cs", selection.Selection{TopN: 2})

	var buf bytes.Buffer
	require.NoError(t, NewHTMLFormatter().Format(v, &buf))
	out := buf.String()

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `<html lang="cs">`)
	assert.Contains(t, out, "<h1>Cizinci v ČR</h1>")
	assert.Contains(t, out, DefaultPlotlyURL)
	assert.Contains(t, out, `<script id="figures" type="application/json">`)
	assert.Contains(t, out, `"choropleth"`)
	assert.Contains(t, out, `"natural earth"`)
	assert.Contains(t, out, "Plotly.newPlot")
	assert.Contains(t, out, "Podíl ostatních")
	assert.Contains(t, out, "2026-02-12 10:00 UTC")
	assert.NotContains(t, out, `<form`)
	assert.NotContains(t, out, `id="empty"`)
}

func TestHTMLFormatter_Interactive(t *testing.T) {
	v := renderView(t, sampleDataset(), "en", selection.Selection{Country: "Vietnam", Animate: true})
	f := &HTMLFormatter{Interactive: true, BasePath: "/", SharePath: "/share.png"}

	var buf bytes.Buffer
	require.NoError(t, f.Format(v, &buf))
	out := buf.String()

	assert.Contains(t, out, `<form class="controls" id="controls" method="get" action="/">`)
	assert.Contains(t, out, `<option value="">all countries</option>`)
	assert.Contains(t, out, `<option value="Vietnam" selected>Vietnam</option>`)
	assert.Contains(t, out, `<option value="Rusko">Rusko</option>`)
	assert.Contains(t, out, `name="from" id="from" min="2004" max="2005" step="1" value="2004"`)
	assert.Contains(t, out, `id="animate" value="1" checked`)
	assert.Contains(t, out, `href="/?animate=1&amp;country=Vietnam&amp;from=2004&amp;to=2005&amp;top=0"`)
	assert.Contains(t, out, `src="/share.png?animate=1&amp;country=Vietnam&amp;from=2004&amp;to=2005&amp;top=0"`)
	assert.Contains(t, out, `"frames"`)
}

func TestHTMLFormatter_EmptySelection(t *testing.T) {
	v := renderView(t, sampleDataset(), "en", selection.Selection{From: 2010, To: 2010})

	var buf bytes.Buffer
	require.NoError(t, (&HTMLFormatter{Interactive: true}).Format(v, &buf))
	out := buf.String()

	assert.Contains(t, out, `id="empty"`)
	assert.Contains(t, out, "No data for the selected range.")
	assert.Contains(t, out, `<form`, "controls stay usable")
}

func TestHTMLFormatter_EmptyDataset(t *testing.T) {
	v := renderView(t, dataset.New("empty.csv", nil), "en", selection.Selection{})

	var buf bytes.Buffer
	require.NoError(t, NewHTMLFormatter().Format(v, &buf))
	out := buf.String()

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "The dataset is empty.")
	assert.NotContains(t, out, "Plotly")
}

func TestHTMLFormatter_EscapesCountryNames(t *testing.T) {
	ds := dataset.New("x.csv", []dataset.Record{
		{Country: "<script>alert(1)</script>", CountryEnglish: "X", Year: 2004, Persons: 1},
	})
	v := renderView(t, ds, "en", selection.Selection{})

	var buf bytes.Buffer
	require.NoError(t, (&HTMLFormatter{Interactive: true}).Format(v, &buf))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}
