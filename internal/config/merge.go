// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"time"

	"github.com/cizinci/cizinci/internal/dataset"
	"github.com/cizinci/cizinci/internal/palette"
)

// Built-in defaults, used when neither flags, env nor files set a value.
const (
	DefaultTopN         = 20
	DefaultLocale       = "cs"
	DefaultAddr         = ":8501"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// TopNUnset marks Settings.TopN as not given on the command line.
const TopNUnset = -1

// Settings are the effective values used by the commands.
type Settings struct {
	Dataset        string
	Title          string
	Locale         string
	Columns        dataset.Columns
	TopN           int
	OtherLabel     string
	KeepEmptyOther bool
	Palette        palette.Palette
	OutputFormat   string
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	Model          string
	MaxTokens      int
}

// Overlay returns a copy of base with every field set in over applied on top.
func Overlay(base, over *Config) *Config {
	out := *base
	if over.Dataset != "" {
		out.Dataset = over.Dataset
	}
	if over.Title != "" {
		out.Title = over.Title
	}
	if over.Locale != "" {
		out.Locale = over.Locale
	}
	if over.Columns.Country != "" {
		out.Columns.Country = over.Columns.Country
	}
	if over.Columns.CountryEnglish != "" {
		out.Columns.CountryEnglish = over.Columns.CountryEnglish
	}
	if over.Columns.Year != "" {
		out.Columns.Year = over.Columns.Year
	}
	if over.Columns.Persons != "" {
		out.Columns.Persons = over.Columns.Persons
	}
	if over.TopN != nil {
		n := *over.TopN
		out.TopN = &n
	}
	if over.OtherLabel != "" {
		out.OtherLabel = over.OtherLabel
	}
	if over.KeepEmptyOther {
		out.KeepEmptyOther = true
	}
	if len(over.Palette) > 0 {
		out.Palette = append([]string(nil), over.Palette...)
	}
	if over.OtherColor != "" {
		out.OtherColor = over.OtherColor
	}
	if over.OutputFormat != "" {
		out.OutputFormat = over.OutputFormat
	}
	if over.Serve.Addr != "" {
		out.Serve.Addr = over.Serve.Addr
	}
	if over.Serve.ReadTimeout != "" {
		out.Serve.ReadTimeout = over.Serve.ReadTimeout
	}
	if over.Serve.WriteTimeout != "" {
		out.Serve.WriteTimeout = over.Serve.WriteTimeout
	}
	if over.LLM.Model != "" {
		out.LLM.Model = over.LLM.Model
	}
	if over.LLM.MaxTokens > 0 {
		out.LLM.MaxTokens = over.LLM.MaxTokens
	}
	return &out
}

// Merge combines file-based config with CLI-provided settings.
// CLI values take precedence; zero-value CLI fields (and TopNUnset) fall
// through to the file config and then to the built-in defaults.
func Merge(fileCfg *Config, cli Settings) Settings {
	result := cli

	if result.Dataset == "" {
		result.Dataset = fileCfg.Dataset
	}
	if result.Dataset == "" {
		result.Dataset = dataset.DefaultSource
	}
	if result.Title == "" {
		result.Title = fileCfg.Title
	}
	if result.Locale == "" {
		result.Locale = fileCfg.Locale
	}
	if result.Locale == "" {
		result.Locale = DefaultLocale
	}
	if result.Columns == (dataset.Columns{}) {
		result.Columns = fileCfg.Columns
	}
	result.Columns = result.Columns.WithDefaults()

	if result.TopN == TopNUnset {
		result.TopN = DefaultTopN
		if fileCfg.TopN != nil {
			result.TopN = *fileCfg.TopN
		}
	}
	if result.OtherLabel == "" {
		result.OtherLabel = fileCfg.OtherLabel
	}
	if !result.KeepEmptyOther && fileCfg.KeepEmptyOther {
		result.KeepEmptyOther = true
	}

	if len(result.Palette.Colors) == 0 && result.Palette.Other == "" {
		p, err := palette.New(fileCfg.Palette, fileCfg.OtherColor)
		if err != nil {
			// Validate reports this; fall back so rendering still works.
			slog.Warn("invalid palette in config, using default", "error", err)
			p = palette.Default()
		}
		result.Palette = p
	}

	if result.OutputFormat == "" {
		result.OutputFormat = fileCfg.OutputFormat
	}
	if result.Addr == "" {
		result.Addr = fileCfg.Serve.Addr
	}
	if result.Addr == "" {
		result.Addr = DefaultAddr
	}
	if result.ReadTimeout == 0 {
		result.ReadTimeout = parseDurationOr(fileCfg.Serve.ReadTimeout, DefaultReadTimeout)
	}
	if result.WriteTimeout == 0 {
		result.WriteTimeout = parseDurationOr(fileCfg.Serve.WriteTimeout, DefaultWriteTimeout)
	}
	if result.Model == "" {
		result.Model = fileCfg.LLM.Model
	}
	if result.MaxTokens == 0 && fileCfg.LLM.MaxTokens > 0 {
		result.MaxTokens = fileCfg.LLM.MaxTokens
	}
	return result
}

func parseDurationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
