// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package report

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

func sampleDataset() *dataset.Dataset {
	return dataset.New("cizinci_complete.csv", []dataset.Record{
		{Country: "Ukrajina", CountryEnglish: "Ukraine", Year: 2004, Persons: 1000},
		{Country: "Slovensko", CountryEnglish: "Slovakia", Year: 2004, Persons: 800},
		{Country: "Vietnam", CountryEnglish: "Vietnam", Year: 2004, Persons: 300},
		{Country: "Rusko", CountryEnglish: "Russia", Year: 2004, Persons: 100},
		{Country: "Ukrajina", CountryEnglish: "Ukraine", Year: 2005, Persons: 1500},
		{Country: "Slovensko", CountryEnglish: "Slovakia", Year: 2005, Persons: 700},
		{Country: "Vietnam", CountryEnglish: "Vietnam", Year: 2005, Persons: 300},
		{Country: "Rusko", CountryEnglish: "Russia", Year: 2005, Persons: 400},
	})
}

func renderView(t *testing.T, sel selection.Selection) *pipeline.View {
	t.Helper()
	p := pipeline.New(sampleDataset(), pipeline.Options{Labels: figure.LabelsFor("en")})
	v, err := p.Run(context.Background(), sel)
	require.NoError(t, err)
	v.GeneratedAt = time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)
	return v
}
