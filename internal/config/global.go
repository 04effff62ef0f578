// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global cizinci configuration.
// It uses $XDG_CONFIG_HOME/cizinci if set, otherwise ~/.config/cizinci.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cizinci")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cizinci")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	cfg, err := loadYAML(GlobalConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// LoadEffective layers the global config, the file in dir and the CIZINCI_*
// environment, later sources winning.
func LoadEffective(dir string) (*Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	local, err := Load(dir)
	if err != nil {
		return nil, err
	}
	cfg := Overlay(global, local)
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
