// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cizinci/cizinci/internal/config"
	"github.com/cizinci/cizinci/internal/llm"
	"github.com/cizinci/cizinci/internal/narrate"
	"github.com/cizinci/cizinci/internal/pipeline"
	"github.com/cizinci/cizinci/internal/report"
)

// Report-specific flag values.
var (
	reportSections string
	reportJSON     bool
	reportNarrate  bool
	reportOutput   string
	reportSel      selectionFlags
)

// newProvider builds the LLM provider for --narrate. Tests replace it.
var newProvider = func(settings config.Settings) (llm.Provider, error) {
	return llm.NewAnthropicProvider(llm.WithModel(settings.Model))
}

// reportCmd is the subcommand for printing a terminal summary.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a terminal summary of a selection",
	Long: `Summarize a selection in the terminal: the country ranking, totals per
year, the biggest movers between the first and last year, and how much of
each year was folded into Other.

Sections: ` + strings.Join(report.List(), ", ") + `

With --narrate, a short written summary from the Anthropic API is appended
(requires ANTHROPIC_API_KEY).`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportSections, "sections", "", "comma-separated list of report sections to include")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the report as JSON")
	reportCmd.Flags().BoolVar(&reportNarrate, "narrate", false, "append an LLM-written summary")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path (default: stdout)")
	reportSel.register(reportCmd.Flags())
}

func runReport(cmd *cobra.Command, _ []string) error {
	if reportNarrate && reportJSON {
		return exitError(ExitInvalidArgs, "cizinci: --narrate cannot be combined with --json")
	}

	var sections []string
	if reportSections != "" {
		for _, s := range strings.Split(reportSections, ",") {
			if s = strings.TrimSpace(s); s != "" {
				sections = append(sections, s)
			}
		}
		if unknown := report.UnknownSections(sections); len(unknown) > 0 {
			return exitError(ExitInvalidArgs, "cizinci: unknown section(s): %s (available: %s)",
				strings.Join(unknown, ", "), strings.Join(report.List(), ", "))
		}
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	sel, err := reportSel.selection(cmd.Flags(), settings.DefaultSelection())
	if err != nil {
		return exitError(ExitInvalidArgs, "cizinci: %v", err)
	}

	p, err := loadPipeline(cmd.Context(), settings)
	if err != nil {
		return err
	}
	view, err := p.Run(cmd.Context(), sel)
	if err != nil {
		return fmt.Errorf("cizinci: report failed (%v)", err)
	}

	w := cmd.OutOrStdout()
	if reportOutput != "" {
		f, createErr := cmdFS.Create(reportOutput)
		if createErr != nil {
			return exitError(ExitInvalidArgs, "cizinci: cannot create output file %q (%v)", reportOutput, createErr)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}

	if reportJSON {
		err = report.RenderJSON(view, sections, w)
	} else {
		err = report.Render(view, sections, w)
	}
	if err != nil {
		return fmt.Errorf("cizinci: rendering failed (%v)", err)
	}

	if reportNarrate {
		if err := appendNarration(cmd, settings, view, w); err != nil {
			return err
		}
	}

	slog.Info("report complete", "records", view.Records, "duration", view.Duration)
	return nil
}

// appendNarration writes the LLM summary after the report. The report is
// already out, so failures map to ExitPartialFailure.
func appendNarration(cmd *cobra.Command, settings config.Settings, view *pipeline.View, w io.Writer) error {
	provider, err := newProvider(settings)
	if err != nil {
		return exitError(ExitPartialFailure, "cizinci: narration unavailable (%v)", err)
	}

	text, err := narrate.Narrate(cmd.Context(), provider, view, narrate.Options{
		Model:     settings.Model,
		MaxTokens: settings.MaxTokens,
	})
	if errors.Is(err, narrate.ErrNothingToNarrate) {
		slog.Info("nothing to narrate for an empty selection")
		return nil
	}
	if err != nil {
		return exitError(ExitPartialFailure, "cizinci: narration failed (%v)", err)
	}

	_, _ = fmt.Fprintf(w, "\n%s\n%s\n", report.SectionTitle("Summary"), text)
	return nil
}
