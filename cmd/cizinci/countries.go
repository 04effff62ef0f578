// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cizinci/cizinci/internal/report"
)

var countriesYears bool

// countriesCmd lists the countries the dropdown offers.
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the countries of citizenship in the dataset",
	Long: `List the distinct countries of citizenship in collated order, the same
list the dashboard's country dropdown offers. With --years, also print the
first and last year each country appears in.`,
	Args: cobra.NoArgs,
	RunE: runCountries,
}

func init() {
	countriesCmd.Flags().BoolVar(&countriesYears, "years", false, "show the year span of each country")
}

func runCountries(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	p, err := loadPipeline(cmd.Context(), settings)
	if err != nil {
		return err
	}
	ds := p.Dataset()
	w := cmd.OutOrStdout()

	if !countriesYears {
		for _, c := range ds.Countries() {
			_, _ = fmt.Fprintln(w, c)
		}
		return nil
	}

	tbl := report.NewTable(
		report.Column{Header: "Country"},
		report.Column{Header: "English"},
		report.Column{Header: "First", Align: report.AlignRight},
		report.Column{Header: "Last", Align: report.AlignRight},
	)
	for _, c := range ds.Countries() {
		first, last, _ := ds.YearSpan(c)
		tbl.AddRow(c, ds.EnglishName(c), fmt.Sprint(first), fmt.Sprint(last))
	}
	if err := tbl.Render(w); err != nil {
		return fmt.Errorf("cizinci: %v", err)
	}

	b := p.Bounds()
	if b.Valid {
		_, _ = fmt.Fprintf(w, "\n%d countries, %d–%d\n", len(ds.Countries()), b.MinYear, b.MaxYear)
	}
	return nil
}
