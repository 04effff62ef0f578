// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cizinci/cizinci/internal/figure"
	"github.com/cizinci/cizinci/internal/output"
	"github.com/cizinci/cizinci/internal/palette"
	"github.com/cizinci/cizinci/internal/selection"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.Locale != "" && !slices.Contains(figure.Locales(), cfg.Locale) {
		errs = append(errs, fmt.Sprintf("locale: unsupported locale %q (must be one of %s)",
			cfg.Locale, strings.Join(figure.Locales(), ", ")))
	}

	if cfg.TopN != nil && (*cfg.TopN < 0 || *cfg.TopN > selection.MaxTopN) {
		errs = append(errs, fmt.Sprintf("top_n: must be between 0 and %d, got %d", selection.MaxTopN, *cfg.TopN))
	}

	if _, err := palette.New(cfg.Palette, cfg.OtherColor); err != nil {
		errs = append(errs, err.Error())
	}

	cols := cfg.Columns.WithDefaults()
	seen := make(map[string]string)
	for _, c := range []struct{ key, name string }{
		{"country", cols.Country},
		{"country_english", cols.CountryEnglish},
		{"year", cols.Year},
		{"persons", cols.Persons},
	} {
		if prev, ok := seen[c.name]; ok {
			errs = append(errs, fmt.Sprintf("columns.%s: header %q already used by columns.%s", c.key, c.name, prev))
			continue
		}
		seen[c.name] = c.key
	}

	for key, val := range map[string]string{
		"serve.read_timeout":  cfg.Serve.ReadTimeout,
		"serve.write_timeout": cfg.Serve.WriteTimeout,
	} {
		if val == "" {
			continue
		}
		if d, err := time.ParseDuration(val); err != nil || d <= 0 {
			errs = append(errs, fmt.Sprintf("%s: invalid duration %q", key, val))
		}
	}

	if cfg.LLM.MaxTokens < 0 {
		errs = append(errs, fmt.Sprintf("llm.max_tokens: must be non-negative, got %d", cfg.LLM.MaxTokens))
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
