// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package config

import (
	"github.com/cizinci/cizinci/internal/dataset"
	"github.com/cizinci/cizinci/internal/figure"
	"github.com/cizinci/cizinci/internal/pipeline"
	"github.com/cizinci/cizinci/internal/selection"
)

// PipelineOptions converts merged settings into render options.
func (s Settings) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Title:          s.Title,
		OtherLabel:     s.OtherLabel,
		KeepEmptyOther: s.KeepEmptyOther,
		Palette:        s.Palette,
		Labels:         figure.LabelsFor(s.Locale),
	}
}

// Loader returns a dataset loader reading the configured columns.
func (s Settings) Loader() dataset.Loader {
	return dataset.Loader{Columns: s.Columns}
}

// DefaultSelection is the selection used when a request leaves a control
// unset: every country over the whole range, truncated to TopN.
func (s Settings) DefaultSelection() selection.Selection {
	return selection.Selection{TopN: s.TopN}
}
