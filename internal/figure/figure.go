// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package figure builds declarative chart specifications in the JSON shape
// Plotly.js accepts (data, layout and animation frames). Nothing here draws;
// the browser renders the figures.
package figure

// Figure is a complete chart specification.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Frames []Frame `json:"frames,omitempty"`
}

// Empty reports whether the figure has no plotted values.
func (f Figure) Empty() bool {
	return len(f.Data) == 0
}

// Trace is one plotted series.
type Trace struct {
	Type          string    `json:"type"`
	Name          string    `json:"name,omitempty"`
	X             any       `json:"x,omitempty"`
	Y             []int     `json:"y,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	Locations     []string  `json:"locations,omitempty"`
	LocationMode  string    `json:"locationmode,omitempty"`
	Z             []int     `json:"z,omitempty"`
	ZMin          *int      `json:"zmin,omitempty"`
	ZMax          *int      `json:"zmax,omitempty"`
	Text          []string  `json:"text,omitempty"`
	ColorScale    string    `json:"colorscale,omitempty"`
	ColorBar      *ColorBar `json:"colorbar,omitempty"`
}

// Marker styles bars.
type Marker struct {
	Color string `json:"color,omitempty"`
}

// ColorBar configures the legend of a continuous color scale.
type ColorBar struct {
	Title      *Title `json:"title,omitempty"`
	TickFormat string `json:"tickformat,omitempty"`
}

// Title is a chart or axis title.
type Title struct {
	Text string `json:"text"`
}

// Layout is the non-data part of a figure.
type Layout struct {
	Title       *Title       `json:"title,omitempty"`
	Margin      *Margin      `json:"margin,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	Geo         *Geo         `json:"geo,omitempty"`
	BarMode     string       `json:"barmode,omitempty"`
	ShowLegend  *bool        `json:"showlegend,omitempty"`
	UpdateMenus []UpdateMenu `json:"updatemenus,omitempty"`
	Sliders     []Slider     `json:"sliders,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// DefaultMargin leaves room for the title and the animation controls.
var DefaultMargin = Margin{L: 40, R: 20, T: 60, B: 40}

// Axis configures a cartesian axis.
type Axis struct {
	Title         *Title   `json:"title,omitempty"`
	Type          string   `json:"type,omitempty"`
	TickFormat    string   `json:"tickformat,omitempty"`
	DTick         int      `json:"dtick,omitempty"`
	CategoryOrder string   `json:"categoryorder,omitempty"`
	CategoryArray []string `json:"categoryarray,omitempty"`
	Range         []int    `json:"range,omitempty"`
	Visible       *bool    `json:"visible,omitempty"`
}

// Geo configures the map projection of a choropleth.
type Geo struct {
	Projection     Projection `json:"projection"`
	ShowFrame      bool       `json:"showframe"`
	ShowCoastlines bool       `json:"showcoastlines"`
	Visible        *bool      `json:"visible,omitempty"`
}

// Projection names a map projection.
type Projection struct {
	Type string `json:"type"`
}

// Frame is one animation step.
type Frame struct {
	Name   string  `json:"name"`
	Data   []Trace `json:"data"`
	Layout *Layout `json:"layout,omitempty"`
}

// UpdateMenu is a group of buttons, used for play and pause.
type UpdateMenu struct {
	Type       string   `json:"type"`
	ShowActive bool     `json:"showactive"`
	Direction  string   `json:"direction,omitempty"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	XAnchor    string   `json:"xanchor,omitempty"`
	YAnchor    string   `json:"yanchor,omitempty"`
	Buttons    []Button `json:"buttons"`
}

// Button triggers a Plotly method with arguments.
type Button struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Slider steps through animation frames.
type Slider struct {
	Active       int          `json:"active"`
	CurrentValue CurrentValue `json:"currentvalue"`
	Pad          Pad          `json:"pad"`
	Steps        []SliderStep `json:"steps"`
}

// CurrentValue labels the slider position.
type CurrentValue struct {
	Prefix  string `json:"prefix"`
	Visible bool   `json:"visible"`
}

// Pad is slider padding in pixels.
type Pad struct {
	T int `json:"t"`
}

// SliderStep jumps to one frame.
type SliderStep struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Annotation is free text placed on the plot, used for the empty state.
type Annotation struct {
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
