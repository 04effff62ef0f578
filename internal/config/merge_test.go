// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cizinci/cizinci/internal/dataset"
	"github.com/cizinci/cizinci/internal/palette"
)

func intPtr(n int) *int { return &n }

func TestMerge_Defaults(t *testing.T) {
	s := Merge(&Config{}, Settings{TopN: TopNUnset})

	assert.Equal(t, dataset.DefaultSource, s.Dataset)
	assert.Equal(t, DefaultLocale, s.Locale)
	assert.Equal(t, dataset.DefaultColumns, s.Columns)
	assert.Equal(t, DefaultTopN, s.TopN)
	assert.Equal(t, palette.Default(), s.Palette)
	assert.Equal(t, DefaultAddr, s.Addr)
	assert.Equal(t, DefaultReadTimeout, s.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, s.WriteTimeout)
	assert.Empty(t, s.Model)
}

func TestMerge_FileValues(t *testing.T) {
	cfg := &Config{
		Dataset:        "data.csv",
		Title:          "Titulek",
		Locale:         "en",
		Columns:        dataset.Columns{Year: "Year"},
		TopN:           intPtr(0),
		OtherLabel:     "Zbytek",
		KeepEmptyOther: true,
		Palette:        []string{"#112233"},
		OtherColor:     "#cccccc",
		OutputFormat:   "json",
		Serve:          ServeConfig{Addr: ":9000", ReadTimeout: "2s", WriteTimeout: "bogus"},
		LLM:            LLMConfig{Model: "m", MaxTokens: 100},
	}
	s := Merge(cfg, Settings{TopN: TopNUnset})

	assert.Equal(t, "data.csv", s.Dataset)
	assert.Equal(t, "Titulek", s.Title)
	assert.Equal(t, "en", s.Locale)
	assert.Equal(t, "Year", s.Columns.Year)
	assert.Equal(t, dataset.DefaultColumns.Country, s.Columns.Country)
	assert.Equal(t, 0, s.TopN, "an explicit zero shows every country")
	assert.Equal(t, "Zbytek", s.OtherLabel)
	assert.True(t, s.KeepEmptyOther)
	assert.Equal(t, palette.Palette{Colors: []string{"#112233"}, Other: "#CCCCCC"}, s.Palette)
	assert.Equal(t, "json", s.OutputFormat)
	assert.Equal(t, ":9000", s.Addr)
	assert.Equal(t, 2*time.Second, s.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, s.WriteTimeout)
	assert.Equal(t, "m", s.Model)
	assert.Equal(t, 100, s.MaxTokens)
}

func TestMerge_CLIWins(t *testing.T) {
	cfg := &Config{Dataset: "file.csv", TopN: intPtr(5), Locale: "en", Serve: ServeConfig{Addr: ":9000"}}
	s := Merge(cfg, Settings{Dataset: "cli.csv", TopN: 3, Locale: "cs", Addr: ":1234"})

	assert.Equal(t, "cli.csv", s.Dataset)
	assert.Equal(t, 3, s.TopN)
	assert.Equal(t, "cs", s.Locale)
	assert.Equal(t, ":1234", s.Addr)
}

func TestMerge_InvalidPaletteFallsBack(t *testing.T) {
	s := Merge(&Config{Palette: []string{"red"}}, Settings{TopN: TopNUnset})
	assert.Equal(t, palette.Default(), s.Palette)
}

func TestOverlay(t *testing.T) {
	base := &Config{Dataset: "base.csv", Locale: "en", TopN: intPtr(5), Palette: []string{"#000000"}}
	over := &Config{Dataset: "over.csv", Serve: ServeConfig{Addr: ":1"}, Columns: dataset.Columns{Persons: "N"}}

	got := Overlay(base, over)
	assert.Equal(t, "over.csv", got.Dataset)
	assert.Equal(t, "en", got.Locale)
	assert.Equal(t, 5, *got.TopN)
	assert.Equal(t, []string{"#000000"}, got.Palette)
	assert.Equal(t, ":1", got.Serve.Addr)
	assert.Equal(t, "N", got.Columns.Persons)
	assert.Equal(t, "base.csv", base.Dataset, "base is not modified")
}
