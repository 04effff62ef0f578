// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package figure

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cizinci/cizinci/internal/aggregate"
	"github.com/cizinci/cizinci/internal/palette"
)

func locationRows() []aggregate.LocationRow {
	return []aggregate.LocationRow{
		{Year: 2004, Country: "Ukrajina", Location: "Ukraine", Count: 100},
		{Year: 2004, Country: "Slovensko", Location: "Slovakia", Count: 50},
		{Year: 2005, Country: "Ukrajina", Location: "Ukraine", Count: 120},
	}
}

func barInput() BarInput {
	rows := []aggregate.Row{
		{Year: 2004, Category: "Ukrajina", Count: 100},
		{Year: 2004, Category: "Other", Count: 30, Other: true},
		{Year: 2005, Category: "Ukrajina", Count: 120},
		{Year: 2005, Category: "Vietnam", Count: 40},
	}
	cats := []string{"Ukrajina", "Vietnam", "Other"}
	return BarInput{Rows: rows, Categories: cats, Colors: palette.Assign(cats, "Other", palette.Default())}
}

func TestChoropleth(t *testing.T) {
	fig := Choropleth(locationRows(), MapOptions{Title: "Mapa", Labels: LabelsFor("cs")})

	require.Len(t, fig.Data, 1)
	tr := fig.Data[0]
	assert.Equal(t, "choropleth", tr.Type)
	assert.Equal(t, "country names", tr.LocationMode)
	assert.Equal(t, "Blues", tr.ColorScale)
	assert.Equal(t, ",d", tr.ColorBar.TickFormat)
	assert.Equal(t, []string{"Ukraine", "Slovakia"}, tr.Locations)
	assert.Equal(t, []int{100, 50}, tr.Z)
	assert.Equal(t, []string{"Ukrajina", "Slovensko"}, tr.Text)
	assert.Equal(t, 0, *tr.ZMin)
	assert.Equal(t, 120, *tr.ZMax, "color range spans every frame")

	assert.Equal(t, "natural earth", fig.Layout.Geo.Projection.Type)
	require.Len(t, fig.Frames, 2)
	assert.Equal(t, "2005", fig.Frames[1].Name)
	assert.Equal(t, []int{120}, fig.Frames[1].Data[0].Z)
	require.Len(t, fig.Layout.Sliders, 1)
	assert.Len(t, fig.Layout.Sliders[0].Steps, 2)
	assert.Equal(t, "Rok: ", fig.Layout.Sliders[0].CurrentValue.Prefix)
	require.Len(t, fig.Layout.UpdateMenus, 1)
	assert.Equal(t, "Přehrát", fig.Layout.UpdateMenus[0].Buttons[0].Label)
}

func TestChoropleth_SingleYearHasNoFrames(t *testing.T) {
	fig := Choropleth(locationRows()[:2], MapOptions{Labels: LabelsFor("en")})
	assert.Empty(t, fig.Frames)
	assert.Empty(t, fig.Layout.Sliders)
}

func TestChoropleth_Empty(t *testing.T) {
	fig := Choropleth(nil, MapOptions{Title: "Mapa", Labels: LabelsFor("en")})

	assert.True(t, fig.Empty())
	require.Len(t, fig.Layout.Annotations, 1)
	assert.Equal(t, "No data for the selected range.", fig.Layout.Annotations[0].Text)

	data, err := json.Marshal(fig)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"data":[]`)
	assert.Contains(t, string(data), `"showarrow":false`)
}

func TestBar_Stacked(t *testing.T) {
	fig := Bar(barInput(), BarOptions{Title: "Vývoj", Labels: LabelsFor("cs")})

	require.Len(t, fig.Data, 3)
	assert.Equal(t, "stack", fig.Layout.BarMode)
	assert.Equal(t, ",d", fig.Layout.YAxis.TickFormat)
	assert.Equal(t, 1, fig.Layout.XAxis.DTick)
	assert.Empty(t, fig.Frames)

	ukr := fig.Data[0]
	assert.Equal(t, "Ukrajina", ukr.Name)
	assert.Equal(t, []int{2004, 2005}, ukr.X)
	assert.Equal(t, []int{100, 120}, ukr.Y)
	assert.Equal(t, palette.Plotly[0], ukr.Marker.Color)

	other := fig.Data[2]
	assert.Equal(t, []int{30, 0}, other.Y)
	assert.Equal(t, palette.DefaultOtherColor, other.Marker.Color)
}

func TestBar_Animated(t *testing.T) {
	fig := Bar(barInput(), BarOptions{Title: "Vývoj", Labels: LabelsFor("cs"), Animate: true})

	require.Len(t, fig.Frames, 2)
	assert.Equal(t, "category", fig.Layout.XAxis.Type)
	assert.Equal(t, "array", fig.Layout.XAxis.CategoryOrder)
	assert.Equal(t, []string{"Ukrajina", "Vietnam", "Other"}, fig.Layout.XAxis.CategoryArray)
	assert.Equal(t, []int{0, 126}, fig.Layout.YAxis.Range, "5% above the 120 peak")
	assert.False(t, *fig.Layout.ShowLegend)

	// Every frame carries one trace per category in the same order.
	for _, f := range fig.Frames {
		require.Len(t, f.Data, 3)
		for i, c := range []string{"Ukrajina", "Vietnam", "Other"} {
			assert.Equal(t, c, f.Data[i].Name)
		}
	}
	assert.Equal(t, []int{0}, fig.Frames[0].Data[1].Y, "Vietnam absent in 2004")
	assert.Equal(t, []int{40}, fig.Frames[1].Data[1].Y)
	require.Len(t, fig.Layout.UpdateMenus, 1)
	assert.Len(t, fig.Layout.UpdateMenus[0].Buttons, 2)
}

func TestBar_Empty(t *testing.T) {
	fig := Bar(BarInput{}, BarOptions{Title: "Vývoj", Labels: LabelsFor("cs"), Animate: true})
	assert.True(t, fig.Empty())
	assert.Equal(t, LabelsFor("cs").Empty, fig.Layout.Annotations[0].Text)
}

func TestHeadroom(t *testing.T) {
	assert.Equal(t, 1, headroom(0))
	assert.Equal(t, 105, headroom(100))
	assert.Equal(t, 2, headroom(1))
}

func TestLabelsFor(t *testing.T) {
	assert.Equal(t, "en", LabelsFor("en-GB").Locale)
	assert.Equal(t, "en", LabelsFor("EN_us").Locale)
	assert.Equal(t, "cs", LabelsFor("de").Locale)
	assert.Equal(t, "cs", LabelsFor("").Locale)

	cs := LabelsFor("cs")
	assert.Equal(t, "Počet cizinců z všech zemí v letech 2004–2023", cs.MapTitleFor("", 2004, 2023))
	assert.Equal(t, "Foreign residents from Vietnam by year, 2010–2012", LabelsFor("en").BarTitleFor("Vietnam", 2010, 2012))
}
