// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package palette

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign_OtherAlwaysNeutral(t *testing.T) {
	a := Assign([]string{"Ostatní", "Ukrajina", "Slovensko"}, "Ostatní", Default())

	assert.Equal(t, DefaultOtherColor, a["Ostatní"])
	assert.Equal(t, Plotly[0], a["Ukrajina"], "Other does not consume a palette slot")
	assert.Equal(t, Plotly[1], a["Slovensko"])
}

func TestAssign_Cycles(t *testing.T) {
	var cats []string
	for i := 0; i < 12; i++ {
		cats = append(cats, fmt.Sprintf("c%02d", i))
	}

	a := Assign(cats, "Other", Default())

	assert.Equal(t, Plotly[0], a["c00"])
	assert.Equal(t, Plotly[9], a["c09"])
	assert.Equal(t, Plotly[0], a["c10"])
	assert.Equal(t, Plotly[1], a["c11"])
}

func TestAssign_Deterministic(t *testing.T) {
	cats := []string{"A", "B", "Other", "C"}
	assert.Equal(t, Assign(cats, "Other", Default()), Assign(cats, "Other", Default()))
}

func TestAssign_DuplicatesKeepFirstColor(t *testing.T) {
	a := Assign([]string{"A", "B", "A"}, "Other", Default())
	assert.Equal(t, Plotly[0], a["A"])
	assert.Len(t, a, 2)
}

func TestAssignment_ColorFallback(t *testing.T) {
	a := Assign([]string{"A"}, "Other", Default())
	assert.Equal(t, DefaultOtherColor, a.Color("missing"))
	assert.Equal(t, Plotly[0], a.Color("A"))
}

func TestNew(t *testing.T) {
	p, err := New([]string{"#112233", " #aabbcc "}, "#000000")
	require.NoError(t, err)
	assert.Equal(t, []string{"#112233", "#AABBCC"}, p.Colors)
	assert.Equal(t, "#000000", p.Other)

	p, err = New(nil, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	_, err = New([]string{"red"}, "")
	assert.ErrorContains(t, err, `invalid color "red"`)

	_, err = New(nil, "#12")
	assert.ErrorContains(t, err, "invalid other color")
}
