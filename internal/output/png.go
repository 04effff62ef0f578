// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cizinci/cizinci/internal/aggregate"
	"github.com/cizinci/cizinci/internal/pipeline"
)

func init() {
	RegisterFormatter(NewPNGFormatter())
}

// ErrEmptyChart is returned when there is nothing to draw.
var ErrEmptyChart = errors.New("no data to chart")

// PNG layout in pixels.
const (
	pngBarWidth   = 40
	pngBarSpacing = 12
	pngMinWidth   = 640
	pngHeight     = 480
)

// PNGFormatter draws the bar chart as a static stacked bar PNG: one bar per
// year, one colored segment per category.
type PNGFormatter struct{}

// Compile-time interface checks.
var (
	_ Formatter    = (*PNGFormatter)(nil)
	_ ContentTyper = (*PNGFormatter)(nil)
)

// NewPNGFormatter returns a new PNGFormatter.
func NewPNGFormatter() *PNGFormatter {
	return &PNGFormatter{}
}

// Name returns the format name.
func (p *PNGFormatter) Name() string {
	return "png"
}

// ContentType returns the MIME type of the output.
func (p *PNGFormatter) ContentType() string {
	return "image/png"
}

// Format renders the chart. Views without a positive total return
// ErrEmptyChart because a stacked bar chart has no scale to draw.
func (p *PNGFormatter) Format(view *pipeline.View, w io.Writer) error {
	if view.Total() <= 0 {
		return ErrEmptyChart
	}

	years := aggregate.Years(view.Bars)
	bars := make([]chart.StackedBar, 0, len(years))
	for _, y := range years {
		var values []chart.Value
		for _, r := range aggregate.ForYear(view.Bars, y) {
			if r.Count <= 0 {
				continue
			}
			values = append(values, chart.Value{
				Label: r.Category,
				Value: float64(r.Count),
				Style: chart.Style{
					FillColor:   hexColor(view.Colors.Color(r.Category)),
					StrokeColor: drawing.ColorWhite,
					StrokeWidth: 1,
				},
			})
		}
		if len(values) == 0 {
			continue
		}
		bars = append(bars, chart.StackedBar{Name: strconv.Itoa(y), Width: pngBarWidth, Values: values})
	}

	title := ""
	if view.Chart.Layout.Title != nil {
		title = view.Chart.Layout.Title.Text
	}
	sbc := chart.StackedBarChart{
		Title:      title,
		Width:      max(pngMinWidth, len(bars)*(pngBarWidth+pngBarSpacing)+120),
		Height:     pngHeight,
		BarSpacing: pngBarSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		Bars:       bars,
	}
	if err := sbc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

// hexColor converts "#RRGGBB" into a drawing color.
func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
