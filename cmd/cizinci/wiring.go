// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/cizinci/cizinci/internal/config"
	"github.com/cizinci/cizinci/internal/pipeline"
	"github.com/cizinci/cizinci/internal/selection"
)

// loadSettings layers the global config, .cizinci.yaml in the working
// directory, CIZINCI_* variables and the global flags.
func loadSettings() (config.Settings, error) {
	fileCfg, err := config.LoadEffective(".")
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "cizinci: failed to load %s (%v)", config.FileName, err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "cizinci: %v", err)
	}
	return config.Merge(fileCfg, config.Settings{
		Dataset: datasetFlag,
		TopN:    config.TopNUnset,
	}), nil
}

// loadPipeline reads the dataset named by settings. Any load failure is
// fatal and maps to ExitTotalFailure.
func loadPipeline(ctx context.Context, settings config.Settings) (*pipeline.Pipeline, error) {
	loader := settings.Loader()
	loader.FS = cmdFS

	ds, err := loader.Load(ctx, settings.Dataset)
	if err != nil {
		return nil, exitError(ExitTotalFailure, "cizinci: cannot load dataset (%v)", err)
	}
	slog.Info("dataset ready", "records", ds.Len(), "countries", len(ds.Countries()))
	return pipeline.New(ds, settings.PipelineOptions()), nil
}

// selectionFlags are the dashboard controls as command-line flags.
type selectionFlags struct {
	country string
	from    int
	to      int
	top     int
	animate bool
}

func (f *selectionFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.country, "country", "", "only this country of citizenship (default: all countries)")
	fs.IntVar(&f.from, "from", 0, "first year of the range (default: earliest year)")
	fs.IntVar(&f.to, "to", 0, "last year of the range (default: latest year)")
	fs.IntVar(&f.top, "top", config.DefaultTopN, "countries kept per year before the rest is folded into Other (0 keeps all)")
	fs.BoolVar(&f.animate, "animate", false, "animate the bar chart year by year")
}

func (f *selectionFlags) reset() {
	*f = selectionFlags{top: config.DefaultTopN}
}

// selection returns defaults overridden by every flag set on the command
// line. An unset --top keeps the configured top_n.
func (f *selectionFlags) selection(fs *pflag.FlagSet, defaults selection.Selection) (selection.Selection, error) {
	sel := defaults
	sel.Country = f.country
	sel.From = f.from
	sel.To = f.to
	sel.Animate = f.animate
	if fs.Changed("top") {
		if f.top < 0 {
			return selection.Selection{}, fmt.Errorf("--top must not be negative, got %d", f.top)
		}
		sel.TopN = f.top
	}
	return sel, nil
}
