// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the dashboard's aggregation and rendering as tools over
// stdio transport.
package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/cizinci/cizinci/internal/config"
	"github.com/cizinci/cizinci/internal/dataset"
)

// ResolveSource turns a local dataset path into an absolute, symlink-resolved
// path. URL and database sources are returned unchanged.
func ResolveSource(source string) (string, error) {
	if source == "" {
		source = dataset.DefaultSource
	}
	if strings.Contains(source, "://") {
		return source, nil
	}

	absPath, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("cannot resolve dataset %q: %w", source, err)
	}
	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("dataset %q does not exist", source)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("dataset %q does not exist", source)
	}
	if info.IsDir() {
		return "", fmt.Errorf("dataset %q is a directory", source)
	}
	return absPath, nil
}

// ResolveSettings merges the effective config found in dir with the dataset
// named by a tool call. An empty source falls back to the configured dataset
// and then to the default file name.
func ResolveSettings(dir, source string) (config.Settings, error) {
	fileCfg, err := config.LoadEffective(dir)
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	settings := config.Merge(fileCfg, config.Settings{
		Dataset: source,
		TopN:    config.TopNUnset,
	})
	settings.Dataset, err = ResolveSource(settings.Dataset)
	if err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// datasetCache keeps every dataset loaded by the server. Sources are read
// once per process; concurrent calls for the same source share one load.
type datasetCache struct {
	mu     sync.Mutex
	loaded map[string]*dataset.Dataset
	group  singleflight.Group
}

func newDatasetCache() *datasetCache {
	return &datasetCache{loaded: make(map[string]*dataset.Dataset)}
}

func (c *datasetCache) get(ctx context.Context, settings config.Settings) (*dataset.Dataset, error) {
	key := cacheKey(settings)

	c.mu.Lock()
	ds, ok := c.loaded[key]
	c.mu.Unlock()
	if ok {
		return ds, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		ds, err := settings.Loader().Load(context.WithoutCancel(ctx), settings.Dataset)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.loaded[key] = ds
		c.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dataset.Dataset), nil
}

func cacheKey(s config.Settings) string {
	c := s.Columns
	return strings.Join([]string{s.Dataset, c.Country, c.CountryEnglish, c.Year, c.Persons}, "\x00")
}
