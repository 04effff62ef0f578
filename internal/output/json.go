// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cizinci/cizinci/internal/pipeline"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps a view with metadata for the JSON output format.
type JSONEnvelope struct {
	View     *pipeline.View `json:"view"`
	Metadata JSONMetadata   `json:"metadata"`
}

// JSONMetadata summarizes the render that produced the view.
type JSONMetadata struct {
	RenderID    string `json:"render_id"`
	Records     int    `json:"records"`
	Rows        int    `json:"rows"`
	Total       int    `json:"total"`
	Empty       bool   `json:"empty"`
	GeneratedAt string `json:"generated_at"`
}

// JSONFormatter writes a view as a JSON object with a metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool
}

// Compile-time interface checks.
var (
	_ Formatter    = (*JSONFormatter)(nil)
	_ ContentTyper = (*JSONFormatter)(nil)
)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// ContentType returns the MIME type of the output.
func (f *JSONFormatter) ContentType() string {
	return "application/json; charset=utf-8"
}

// Format writes the view as a JSON document to w. Output is pretty-printed
// for terminals and in-memory writers and compact for pipes and files unless
// Compact forces it.
func (f *JSONFormatter) Format(view *pipeline.View, w io.Writer) error {
	envelope := JSONEnvelope{
		View: view,
		Metadata: JSONMetadata{
			RenderID:    view.RenderID,
			Records:     view.Records,
			Rows:        len(view.Bars),
			Total:       view.Total(),
			Empty:       view.Empty(),
			GeneratedAt: view.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}

	var (
		data []byte
		err  error
	)
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		// Character devices are terminals.
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// Non-file writers (bytes.Buffer in tests, HTTP responses) get pretty output.
	return false
}
