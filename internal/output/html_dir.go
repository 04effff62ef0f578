// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/cizinci/cizinci/internal/pipeline"
	"github.com/cizinci/cizinci/internal/testable"
)

func init() {
	RegisterFormatter(NewHTMLDirFormatter())
}

// HTMLDirFormatter writes the dashboard as a directory: index.html plus
// assets/dashboard.{css,js}.
type HTMLDirFormatter struct {
	// PlotlyURL overrides DefaultPlotlyURL.
	PlotlyURL string

	fs testable.FileSystem
}

// Compile-time interface checks.
var (
	_ Formatter          = (*HTMLDirFormatter)(nil)
	_ DirectoryFormatter = (*HTMLDirFormatter)(nil)
)

// NewHTMLDirFormatter returns a new HTMLDirFormatter.
func NewHTMLDirFormatter() *HTMLDirFormatter {
	return &HTMLDirFormatter{}
}

// Name returns the format name.
func (h *HTMLDirFormatter) Name() string {
	return "html-dir"
}

// Format returns ErrNeedsOutputDir; use FormatDir.
func (h *HTMLDirFormatter) Format(_ *pipeline.View, _ io.Writer) error {
	return fmt.Errorf("html-dir: %w", ErrNeedsOutputDir)
}

func (h *HTMLDirFormatter) fsys() testable.FileSystem {
	if h.fs != nil {
		return h.fs
	}
	return testable.DefaultFS
}

// FormatDir writes the dashboard to dir as index.html + assets/.
func (h *HTMLDirFormatter) FormatDir(view *pipeline.View, dir string) error {
	fsys := h.fsys()
	assetsDir := filepath.Join(dir, "assets")
	if err := fsys.MkdirAll(assetsDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := fsys.WriteFile(filepath.Join(assetsDir, "dashboard.css"), []byte(dashboardCSS), 0o644); err != nil { //nolint:gosec // dashboard assets are meant to be readable
		return fmt.Errorf("write dashboard.css: %w", err)
	}
	if err := fsys.WriteFile(filepath.Join(assetsDir, "dashboard.js"), []byte(dashboardJS), 0o644); err != nil { //nolint:gosec // dashboard assets are meant to be readable
		return fmt.Errorf("write dashboard.js: %w", err)
	}

	f, err := fsys.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	defer f.Close() //nolint:errcheck // best-effort close

	if len(view.Countries) == 0 {
		return writeEmpty(f, view, "assets/dashboard.css")
	}

	html := &HTMLFormatter{PlotlyURL: h.PlotlyURL}
	data := html.buildData(view)
	if err := dashboardTemplate().Execute(f, data); err != nil {
		return fmt.Errorf("execute html-dir template: %w", err)
	}
	return nil
}
