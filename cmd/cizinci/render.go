// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cizinci/cizinci/internal/output"
)

// Render-specific flag values.
var (
	renderFormat string
	renderOutput string
	renderSel    selectionFlags
)

// renderCmd runs one render cycle and writes it in a registered format.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard for one selection",
	Long: `Run one render cycle for the selection given by --country, --from, --to,
--top and --animate, and write it in one of the registered formats.

Formats: ` + strings.Join(output.Names(), ", ") + `
The html-dir format writes index.html and assets/ and requires --output.

Examples:
  cizinci render -o dashboard.html
  cizinci render --country Ukrajina --from 2010 --to 2020 -f csv
  cizinci render --top 5 -f png -o bars.png
  cizinci render -f html-dir -o site/`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format (default from config, then html)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file or directory (default: stdout)")
	renderSel.register(renderCmd.Flags())
}

func runRender(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	format := renderFormat
	if format == "" {
		format = settings.OutputFormat
	}
	if format == "" {
		format = "html"
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return exitError(ExitInvalidArgs, "cizinci: %v", err)
	}
	dirFormatter, isDir := formatter.(output.DirectoryFormatter)
	if isDir && renderOutput == "" {
		return exitError(ExitInvalidArgs, "cizinci: %v", output.ErrNeedsOutputDir)
	}

	sel, err := renderSel.selection(cmd.Flags(), settings.DefaultSelection())
	if err != nil {
		return exitError(ExitInvalidArgs, "cizinci: %v", err)
	}

	p, err := loadPipeline(cmd.Context(), settings)
	if err != nil {
		return err
	}
	view, err := p.Run(cmd.Context(), sel)
	if err != nil {
		return fmt.Errorf("cizinci: render failed (%v)", err)
	}
	if view.Empty() {
		slog.Warn("selection matched no records", "selection", view.Selection.Key())
	}

	if isDir {
		if err := dirFormatter.FormatDir(view, renderOutput); err != nil {
			return fmt.Errorf("cizinci: writing %s failed (%v)", renderOutput, err)
		}
		slog.Info("render complete", "format", format, "dir", renderOutput, "duration", view.Duration)
		return nil
	}

	w := cmd.OutOrStdout()
	if renderOutput != "" {
		f, createErr := cmdFS.Create(renderOutput)
		if createErr != nil {
			return exitError(ExitInvalidArgs, "cizinci: cannot create output file %q (%v)", renderOutput, createErr)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}

	if err := formatter.Format(view, w); err != nil {
		if errors.Is(err, output.ErrEmptyChart) {
			return exitError(ExitInvalidArgs, "cizinci: nothing to draw for %s", view.Selection.Key())
		}
		return fmt.Errorf("cizinci: formatting failed (%v)", err)
	}
	slog.Info("render complete", "format", format, "records", view.Records, "duration", view.Duration)
	return nil
}
