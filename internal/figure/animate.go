// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package figure

import "strconv"

// Animation timings in milliseconds.
const (
	frameDuration      = 800
	transitionDuration = 300
)

// animationControls returns the play/pause buttons and the year slider for
// frames named after years.
func animationControls(years []int, labels Labels) ([]UpdateMenu, []Slider) {
	menus := []UpdateMenu{{
		Type:       "buttons",
		ShowActive: false,
		Direction:  "left",
		X:          0,
		Y:          -0.08,
		XAnchor:    "left",
		YAnchor:    "top",
		Buttons: []Button{
			{
				Label:  labels.Play,
				Method: "animate",
				Args: []any{nil, map[string]any{
					"frame":       map[string]any{"duration": frameDuration, "redraw": true},
					"fromcurrent": true,
					"transition":  map[string]any{"duration": transitionDuration},
				}},
			},
			{
				Label:  labels.Pause,
				Method: "animate",
				Args: []any{[]any{nil}, map[string]any{
					"frame":      map[string]any{"duration": 0, "redraw": false},
					"mode":       "immediate",
					"transition": map[string]any{"duration": 0},
				}},
			},
		},
	}}

	steps := make([]SliderStep, len(years))
	for i, y := range years {
		name := strconv.Itoa(y)
		steps[i] = SliderStep{
			Label:  name,
			Method: "animate",
			Args: []any{[]string{name}, map[string]any{
				"frame":      map[string]any{"duration": transitionDuration, "redraw": true},
				"mode":       "immediate",
				"transition": map[string]any{"duration": transitionDuration},
			}},
		}
	}
	sliders := []Slider{{
		Active:       0,
		CurrentValue: CurrentValue{Prefix: labels.Year + ": ", Visible: true},
		Pad:          Pad{T: 50},
		Steps:        steps,
	}}
	return menus, sliders
}

// emptyFigure is the placeholder shown when the selection has no data.
func emptyFigure(title string, labels Labels) Figure {
	margin := DefaultMargin
	return Figure{
		Data: []Trace{},
		Layout: Layout{
			Title:  &Title{Text: title},
			Margin: &margin,
			XAxis:  &Axis{Visible: boolPtr(false)},
			YAxis:  &Axis{Visible: boolPtr(false)},
			Annotations: []Annotation{{
				Text: labels.Empty,
				XRef: "paper",
				YRef: "paper",
				X:    0.5,
				Y:    0.5,
			}},
		},
	}
}
