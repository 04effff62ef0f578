// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cizinci/cizinci/internal/dataset"
	"github.com/cizinci/cizinci/internal/figure"
	"github.com/cizinci/cizinci/internal/pipeline"
	"github.com/cizinci/cizinci/internal/selection"
)

var fixedTime = time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)

func sampleDataset() *dataset.Dataset {
	return dataset.New("cizinci_complete.csv", []dataset.Record{
		{Country: "Ukrajina", CountryEnglish: "Ukraine", Year: 2004, Persons: 78263},
		{Country: "Slovensko", CountryEnglish: "Slovakia", Year: 2004, Persons: 47352},
		{Country: "Vietnam", CountryEnglish: "Vietnam", Year: 2004, Persons: 34179},
		{Country: "Rusko", CountryEnglish: "Russia", Year: 2004, Persons: 14743},
		{Country: "Ukrajina", CountryEnglish: "Ukraine", Year: 2005, Persons: 87789},
		{Country: "Slovensko", CountryEnglish: "Slovakia", Year: 2005, Persons: 49446},
		{Country: "Vietnam", CountryEnglish: "Vietnam", Year: 2005, Persons: 36832},
		{Country: "Rusko", CountryEnglish: "Russia", Year: 2005, Persons: 16273},
	})
}

// renderView runs one render cycle over ds in the given locale.
func renderView(t *testing.T, ds *dataset.Dataset, locale string, sel selection.Selection) *pipeline.View {
	t.Helper()
	p := pipeline.New(ds, pipeline.Options{Title: "Cizinci v ČR", Labels: figure.LabelsFor(locale)})
	v, err := p.Run(context.Background(), sel)
	require.NoError(t, err)
	v.GeneratedAt = fixedTime
	v.RenderID = "00000000-0000-0000-0000-000000000001"
	return v
}
