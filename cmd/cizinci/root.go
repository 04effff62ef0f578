// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cizincilog "github.com/cizinci/cizinci/internal/log"
)

// Global flag values.
var (
	verbose     bool
	quiet       bool
	noColor     bool
	logFormat   string
	datasetFlag string
)

// rootCmd is the base command for cizinci.
var rootCmd = &cobra.Command{
	Use:   "cizinci",
	Short: "Explore foreign residents in Czechia by country and year",
	Long: `Cizinci turns the Czech Statistical Office's table of foreign residents
(country of citizenship, year, number of persons) into an interactive
dashboard: a choropleth of where residents come from and a stacked bar chart
of the largest countries per year, with everything else folded into Other.

Serve it over HTTP, render a static snapshot, or print a terminal report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}
		if err := cizincilog.SetupWithFormat(os.Stderr, logFormat, verbose, quiet); err != nil {
			return exitError(ExitInvalidArgs, "cizinci: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cizincilog.FormatText, "log format: text or json")
	rootCmd.PersistentFlags().StringVarP(&datasetFlag, "dataset", "d", "",
		"dataset source: CSV path, http(s) URL, sqlite:// or postgres:// (default from config, then cizinci_complete.csv)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
