// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cizinci/cizinci/internal/selection"
)

func TestJSONFormatter_Envelope(t *testing.T) {
	v := renderView(t, sampleDataset(), "cs", selection.Selection{TopN: 2})

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(v, &buf))

	var got struct {
		View struct {
			Selection selection.Selection `json:"selection"`
			Bars      []struct {
				Year     int    `json:"year"`
				Category string `json:"category"`
				Count    int    `json:"count"`
				Other    bool   `json:"other"`
			} `json:"bars"`
			Colors map[string]string `json:"colors"`
			Chart  map[string]any    `json:"chart"`
		} `json:"view"`
		Metadata JSONMetadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "00000000-0000-0000-0000-000000000001", got.Metadata.RenderID)
	assert.Equal(t, "2026-02-12T10:00:00Z", got.Metadata.GeneratedAt)
	assert.Equal(t, 8, got.Metadata.Records)
	assert.Equal(t, 6, got.Metadata.Rows)
	assert.False(t, got.Metadata.Empty)
	assert.Equal(t, selection.Selection{From: 2004, To: 2005, TopN: 2}, got.View.Selection)
	assert.True(t, got.View.Bars[2].Other)
	assert.Equal(t, "Ostatní", got.View.Bars[2].Category)
	assert.Equal(t, 34179+14743, got.View.Bars[2].Count)
	assert.Equal(t, "#9E9E9E", got.View.Colors["Ostatní"])
	assert.Contains(t, got.View.Chart, "layout")
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
}

func TestJSONFormatter_Compact(t *testing.T) {
	v := renderView(t, sampleDataset(), "cs", selection.Selection{})

	var pretty, compact bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(v, &pretty))
	require.NoError(t, (&JSONFormatter{Compact: true}).Format(v, &compact))

	assert.Contains(t, pretty.String(), "\n  ")
	assert.Equal(t, 1, strings.Count(compact.String(), "\n"))
}

func TestJSONFormatter_EmptyView(t *testing.T) {
	v := renderView(t, sampleDataset(), "cs", selection.Selection{Country: "Atlantida"})

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(v, &buf))
	assert.Contains(t, buf.String(), `"empty": true`)
	assert.Contains(t, buf.String(), `"bars": []`)
}
