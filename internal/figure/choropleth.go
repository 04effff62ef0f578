// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package figure

import (
	"strconv"

	"github.com/cizinci/cizinci/internal/aggregate"
	"github.com/cizinci/cizinci/internal/palette"
)

// MapOptions configures Choropleth.
type MapOptions struct {
	Title  string
	Labels Labels
}

// Choropleth builds a world map colored by resident count, one animation
// frame per year. The color range is fixed across frames so colors compare
// between years.
func Choropleth(rows []aggregate.LocationRow, opts MapOptions) Figure {
	if len(rows) == 0 {
		return emptyFigure(opts.Title, opts.Labels)
	}

	byYear := make(map[int][]aggregate.LocationRow)
	var years []int
	zmax := 0
	for _, r := range rows {
		if _, ok := byYear[r.Year]; !ok {
			years = append(years, r.Year)
		}
		byYear[r.Year] = append(byYear[r.Year], r)
		zmax = max(zmax, r.Count)
	}
	// rows arrive ordered by year, so years is ascending.

	trace := func(year int) Trace {
		yr := byYear[year]
		t := Trace{
			Type:          "choropleth",
			Name:          strconv.Itoa(year),
			Locations:     make([]string, len(yr)),
			LocationMode:  "country names",
			Z:             make([]int, len(yr)),
			Text:          make([]string, len(yr)),
			ZMin:          intPtr(0),
			ZMax:          intPtr(zmax),
			ColorScale:    palette.ContinuousScale,
			ColorBar:      &ColorBar{Title: &Title{Text: opts.Labels.Persons}, TickFormat: ",d"},
			HoverTemplate: "<b>%{text}</b><br>%{z:,d}<extra></extra>",
		}
		for i, r := range yr {
			t.Locations[i] = r.Location
			t.Z[i] = r.Count
			t.Text[i] = r.Country
		}
		return t
	}

	margin := DefaultMargin
	fig := Figure{
		Data: []Trace{trace(years[0])},
		Layout: Layout{
			Title:  &Title{Text: opts.Title},
			Margin: &margin,
			Geo: &Geo{
				Projection:     Projection{Type: "natural earth"},
				ShowFrame:      false,
				ShowCoastlines: true,
			},
		},
	}

	if len(years) > 1 {
		for _, y := range years {
			fig.Frames = append(fig.Frames, Frame{Name: strconv.Itoa(y), Data: []Trace{trace(y)}})
		}
		fig.Layout.UpdateMenus, fig.Layout.Sliders = animationControls(years, opts.Labels)
	}
	return fig
}
