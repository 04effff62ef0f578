// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides are the settings that can be changed from the environment.
type envOverrides struct {
	Dataset string `env:"CIZINCI_DATASET"`
	Addr    string `env:"CIZINCI_ADDR"`
	TopN    *int   `env:"CIZINCI_TOP_N"`
	Locale  string `env:"CIZINCI_LOCALE"`
	Title   string `env:"CIZINCI_TITLE"`
}

// ApplyEnv overwrites cfg with any CIZINCI_* variables that are set.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Dataset != "" {
		cfg.Dataset = o.Dataset
	}
	if o.Addr != "" {
		cfg.Serve.Addr = o.Addr
	}
	if o.TopN != nil {
		n := *o.TopN
		cfg.TopN = &n
	}
	if o.Locale != "" {
		cfg.Locale = o.Locale
	}
	if o.Title != "" {
		cfg.Title = o.Title
	}
	return nil
}
