// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package figure

import (
	"strconv"

	"github.com/cizinci/cizinci/internal/aggregate"
	"github.com/cizinci/cizinci/internal/palette"
)

// BarOptions configures Bar.
type BarOptions struct {
	Title   string
	Labels  Labels
	Animate bool
}

// BarInput is the aggregated data a bar chart plots. Categories fixes the
// legend and axis order and normally comes from aggregate.Categories.
type BarInput struct {
	Rows       []aggregate.Row
	Categories []string
	Colors     palette.Assignment
}

// Bar builds the bar chart. When animated, each frame shows one year with the
// categories on the x axis in ranking order and a fixed y range. Otherwise
// the years are on the x axis and categories are stacked.
func Bar(in BarInput, opts BarOptions) Figure {
	if len(in.Rows) == 0 {
		return emptyFigure(opts.Title, opts.Labels)
	}

	counts := make(map[int]map[string]int)
	for _, r := range in.Rows {
		if counts[r.Year] == nil {
			counts[r.Year] = make(map[string]int)
		}
		counts[r.Year][r.Category] += r.Count
	}
	years := aggregate.Years(in.Rows)

	if opts.Animate {
		return animatedBar(in, opts, years, counts)
	}
	return stackedBar(in, opts, years, counts)
}

func stackedBar(in BarInput, opts BarOptions, years []int, counts map[int]map[string]int) Figure {
	traces := make([]Trace, 0, len(in.Categories))
	for _, c := range in.Categories {
		ys := make([]int, len(years))
		for i, y := range years {
			ys[i] = counts[y][c]
		}
		traces = append(traces, Trace{
			Type:          "bar",
			Name:          c,
			X:             years,
			Y:             ys,
			Marker:        &Marker{Color: in.Colors.Color(c)},
			HoverTemplate: "%{x}: %{y:,d}<extra>%{fullData.name}</extra>",
		})
	}

	margin := DefaultMargin
	return Figure{
		Data: traces,
		Layout: Layout{
			Title:   &Title{Text: opts.Title},
			Margin:  &margin,
			BarMode: "stack",
			XAxis:   &Axis{Title: &Title{Text: opts.Labels.Year}, DTick: 1, TickFormat: "d"},
			YAxis:   &Axis{Title: &Title{Text: opts.Labels.Persons}, TickFormat: ",d"},
		},
	}
}

func animatedBar(in BarInput, opts BarOptions, years []int, counts map[int]map[string]int) Figure {
	peak := 0
	for _, byCat := range counts {
		for _, n := range byCat {
			peak = max(peak, n)
		}
	}

	// One trace per category keeps legend colors stable between frames.
	frameData := func(year int) []Trace {
		traces := make([]Trace, 0, len(in.Categories))
		for _, c := range in.Categories {
			traces = append(traces, Trace{
				Type:          "bar",
				Name:          c,
				X:             []string{c},
				Y:             []int{counts[year][c]},
				Marker:        &Marker{Color: in.Colors.Color(c)},
				HoverTemplate: "%{x}: %{y:,d}<extra></extra>",
			})
		}
		return traces
	}

	margin := DefaultMargin
	fig := Figure{
		Data: frameData(years[0]),
		Layout: Layout{
			Title:      &Title{Text: opts.Title},
			Margin:     &margin,
			BarMode:    "stack",
			ShowLegend: boolPtr(false),
			XAxis: &Axis{
				Type:          "category",
				CategoryOrder: "array",
				CategoryArray: in.Categories,
			},
			YAxis: &Axis{
				Title:      &Title{Text: opts.Labels.Persons},
				TickFormat: ",d",
				Range:      []int{0, headroom(peak)},
			},
		},
	}

	if len(years) > 1 {
		for _, y := range years {
			fig.Frames = append(fig.Frames, Frame{Name: strconv.Itoa(y), Data: frameData(y)})
		}
		fig.Layout.UpdateMenus, fig.Layout.Sliders = animationControls(years, opts.Labels)
	}
	return fig
}

// headroom returns an axis maximum 5% above peak so the tallest bar does not
// touch the frame.
func headroom(peak int) int {
	if peak <= 0 {
		return 1
	}
	return (peak*105 + 99) / 100
}
