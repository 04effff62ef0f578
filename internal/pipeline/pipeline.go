// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package pipeline runs one render cycle: filter the dataset by a selection,
// aggregate, rank, assign colors and build the figures.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cizinci/cizinci/internal/aggregate"
	"github.com/cizinci/cizinci/internal/dataset"
	"github.com/cizinci/cizinci/internal/figure"
	"github.com/cizinci/cizinci/internal/palette"
	"github.com/cizinci/cizinci/internal/selection"
)

// Options configures every render of a Pipeline.
type Options struct {
	// Title is the dashboard heading.
	Title string

	// OtherLabel names the remainder category. Defaults to Labels.Other.
	OtherLabel string

	// KeepEmptyOther adds a zero remainder row to years that need none.
	KeepEmptyOther bool

	Palette palette.Palette
	Labels  figure.Labels
}

// Pipeline renders views over one immutable dataset. It keeps no state
// between runs and is safe for concurrent use.
type Pipeline struct {
	ds   *dataset.Dataset
	opts Options

	nowFunc func() time.Time
	newID   func() string
}

// New creates a Pipeline over ds.
func New(ds *dataset.Dataset, opts Options) *Pipeline {
	if opts.Labels.Locale == "" {
		opts.Labels = figure.LabelsFor(figure.DefaultLocale)
	}
	if opts.OtherLabel == "" {
		opts.OtherLabel = opts.Labels.Other
	}
	opts.OtherLabel = distinctLabel(ds, opts.OtherLabel)
	if len(opts.Palette.Colors) == 0 {
		opts.Palette = palette.Default()
	}
	return &Pipeline{
		ds:      ds,
		opts:    opts,
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
}

// distinctLabel returns label, parenthesized as often as needed so that it
// names no country in ds. Figures and colors are keyed by category name, so
// the remainder must not share a name with a real country.
func distinctLabel(ds *dataset.Dataset, label string) string {
	if ds == nil {
		return label
	}
	out := label
	for ds.HasCountry(out) {
		out = "(" + out + ")"
	}
	if out != label {
		slog.Warn("other label names a country in the dataset; renamed", "label", label, "renamed", out)
	}
	return out
}

// Dataset returns the dataset the pipeline renders.
func (p *Pipeline) Dataset() *dataset.Dataset { return p.ds }

// Options returns the render options.
func (p *Pipeline) Options() Options { return p.opts }

// Bounds returns the dataset's year range.
func (p *Pipeline) Bounds() selection.Bounds {
	lo, hi, ok := p.ds.YearBounds()
	return selection.Bounds{MinYear: lo, MaxYear: hi, Valid: ok}
}

// StageTiming records how long one stage of a run took.
type StageTiming struct {
	Stage    string        `json:"stage"`
	Duration time.Duration `json:"duration_ns"`
}

// stage is one named step of a render cycle.
type stage struct {
	name string
	run  func()
}

// Run executes one render cycle for sel. The selection is clamped to the
// dataset bounds first and the clamped value is reported in the View. An
// empty result is a normal View; the only error is context cancellation.
func (p *Pipeline) Run(ctx context.Context, sel selection.Selection) (*View, error) {
	start := time.Now()
	bounds := p.Bounds()
	sel = sel.Clamp(bounds)

	v := &View{
		RenderID:    p.newID(),
		GeneratedAt: p.nowFunc(),
		Title:       p.opts.Title,
		Source:      p.ds.Source(),
		Labels:      p.opts.Labels,
		OtherLabel:  p.opts.OtherLabel,
		Selection:   sel,
		Bounds:      bounds,
		Countries:   p.ds.Countries(),
	}

	var filtered []dataset.Record
	stages := []stage{
		{"filter", func() {
			filtered = p.ds.Filter(sel.From, sel.To, sel.Country)
			v.Records = len(filtered)
		}},
		{"aggregate", func() {
			v.Bars = aggregate.Aggregate(filtered, aggregate.Options{
				TopN:           sel.TopN,
				OtherLabel:     p.opts.OtherLabel,
				KeepEmptyOther: p.opts.KeepEmptyOther,
			})
			v.MapRows = aggregate.ByLocation(filtered)
			v.YearTotals = aggregate.YearTotals(filtered)
		}},
		{"rank", func() {
			v.Ranking = aggregate.Rank(filtered)
			v.Categories = aggregate.Categories(v.Bars, v.Ranking)
		}},
		{"assign", func() {
			v.Colors = palette.Assign(v.Categories, p.opts.OtherLabel, p.opts.Palette)
		}},
		{"figures", func() {
			labels := p.opts.Labels
			v.Map = figure.Choropleth(v.MapRows, figure.MapOptions{
				Title:  labels.MapTitleFor(sel.Country, sel.From, sel.To),
				Labels: labels,
			})
			v.Chart = figure.Bar(figure.BarInput{
				Rows:       v.Bars,
				Categories: v.Categories,
				Colors:     v.Colors,
			}, figure.BarOptions{
				Title:   labels.BarTitleFor(sel.Country, sel.From, sel.To),
				Labels:  labels,
				Animate: sel.Animate,
			})
		}},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline: %s: %w", s.name, err)
		}
		t0 := time.Now()
		s.run()
		d := time.Since(t0)
		v.Stages = append(v.Stages, StageTiming{Stage: s.name, Duration: d})
		slog.Debug("render stage complete", "render_id", v.RenderID, "stage", s.name, "duration", d)
	}

	v.Duration = time.Since(start)
	slog.Debug("render complete",
		"render_id", v.RenderID,
		"country", sel.Country,
		"from", sel.From,
		"to", sel.To,
		"top_n", sel.TopN,
		"records", v.Records,
		"rows", len(v.Bars),
		"duration", v.Duration,
	)
	return v, nil
}
