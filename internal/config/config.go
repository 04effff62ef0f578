// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package config handles .cizinci.yaml configuration files.
package config

import "github.com/cizinci/cizinci/internal/dataset"

// Config represents the contents of a .cizinci.yaml (or .cizinci.toml) file.
type Config struct {
	Dataset        string          `yaml:"dataset,omitempty" toml:"dataset,omitempty"`
	Title          string          `yaml:"title,omitempty" toml:"title,omitempty"`
	Locale         string          `yaml:"locale,omitempty" toml:"locale,omitempty"`
	Columns        dataset.Columns `yaml:"columns,omitempty" toml:"columns,omitempty"`
	TopN           *int            `yaml:"top_n,omitempty" toml:"top_n,omitempty"`
	OtherLabel     string          `yaml:"other_label,omitempty" toml:"other_label,omitempty"`
	KeepEmptyOther bool            `yaml:"keep_empty_other,omitempty" toml:"keep_empty_other,omitempty"`
	Palette        []string        `yaml:"palette,omitempty" toml:"palette,omitempty"`
	OtherColor     string          `yaml:"other_color,omitempty" toml:"other_color,omitempty"`
	OutputFormat   string          `yaml:"output_format,omitempty" toml:"output_format,omitempty"`
	Serve          ServeConfig     `yaml:"serve,omitempty" toml:"serve,omitempty"`
	LLM            LLMConfig       `yaml:"llm,omitempty" toml:"llm,omitempty"`
}

// ServeConfig holds the HTTP server settings.
type ServeConfig struct {
	Addr         string `yaml:"addr,omitempty" toml:"addr,omitempty"`
	ReadTimeout  string `yaml:"read_timeout,omitempty" toml:"read_timeout,omitempty"`
	WriteTimeout string `yaml:"write_timeout,omitempty" toml:"write_timeout,omitempty"`
}

// LLMConfig holds the narration model settings.
type LLMConfig struct {
	Model     string `yaml:"model,omitempty" toml:"model,omitempty"`
	MaxTokens int    `yaml:"max_tokens,omitempty" toml:"max_tokens,omitempty"`
}

const (
	// FileName is the expected config file name in the working directory.
	FileName = ".cizinci.yaml"

	// TOMLFileName is read when FileName does not exist.
	TOMLFileName = ".cizinci.toml"
)
