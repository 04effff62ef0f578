// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cizinci/cizinci/internal/redact"
	"github.com/cizinci/cizinci/internal/server"
)

// Serve-specific flag values.
var (
	serveAddr      string
	servePlotlyURL string
)

// serveCmd runs the interactive dashboard over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard over HTTP",
	Long: `Load the dataset once and serve the dashboard. Every change of the
country dropdown, year range slider or animate checkbox re-renders both
figures for the new selection.

Endpoints:
  /                 the dashboard (query: country, from, to, animate, top)
  /api/view         the rendered view as JSON
  /api/countries    countries and year bounds
  /chart/bars.png   static bar chart
  /share.png        QR code of the permalink
  /health           liveness probe`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, then :8501)")
	serveCmd.Flags().StringVar(&servePlotlyURL, "plotly-url", "", "Plotly.js bundle URL (default: CDN)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		settings.Addr = serveAddr
	}

	p, err := loadPipeline(cmd.Context(), settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(p, server.Config{
		Addr:         settings.Addr,
		ReadTimeout:  settings.ReadTimeout,
		WriteTimeout: settings.WriteTimeout,
		Defaults:     settings.DefaultSelection(),
		PlotlyURL:    servePlotlyURL,
	})
	slog.Info("serving dashboard", "addr", settings.Addr, "dataset", redact.URL(settings.Dataset))
	if err := srv.ListenAndServe(ctx); err != nil {
		return exitError(ExitInvalidArgs, "cizinci: serve failed (%v)", err)
	}
	slog.Info("server stopped")
	return nil
}
