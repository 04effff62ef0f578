// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cizinci/cizinci/internal/validate"
)

// validateCmd checks every row of a residents CSV file.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check every row of a residents CSV file",
	Long: `Validate a residents CSV file before serving it. Unlike loading, which
stops at the first bad row, validate reads the whole file and reports every
problem with its line, column and a suggested fix.

The file defaults to --dataset, then the configured dataset. Only local
files are read; use - for stdin:
  cizinci validate cizinci_complete.csv
  curl -s https://example.org/cizinci.csv | cizinci validate -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	path := settings.Dataset
	if len(args) > 0 {
		path = args[0]
	}

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := cmdFS.Open(path)
		if err != nil {
			return exitError(ExitInvalidArgs, "cizinci: cannot open %q (%v)", path, err)
		}
		defer f.Close() //nolint:errcheck // best-effort close on input file
		r = f
	}

	result := validate.Validate(r, settings.Columns)

	stderr := cmd.ErrOrStderr()
	for _, e := range result.Warnings {
		_, _ = fmt.Fprintf(stderr, "warning: %s\n", e.Error())
		if e.Suggestion != "" {
			_, _ = fmt.Fprintf(stderr, "  hint: %s\n", e.Suggestion)
		}
	}

	if result.Valid() {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "valid: %d rows, %d countries", result.TotalRows, result.Countries)
		if result.TotalRows > 0 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), ", %d–%d", result.MinYear, result.MaxYear)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	for _, e := range result.Errors {
		_, _ = fmt.Fprintf(stderr, "%s\n", e.Error())
		if e.Suggestion != "" {
			_, _ = fmt.Fprintf(stderr, "  fix: %s\n", e.Suggestion)
		}
	}
	if result.Dropped > 0 {
		_, _ = fmt.Fprintf(stderr, "... and %d more\n", result.Dropped)
	}
	_, _ = fmt.Fprintf(stderr, "\n%d error(s) found in %d rows\n", result.ErrorCount(), result.TotalRows)
	return exitError(ExitInvalidArgs, "")
}
