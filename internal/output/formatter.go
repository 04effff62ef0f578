// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package output defines the Formatter interface for writing rendered views
// in various formats.
package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/cizinci/cizinci/internal/pipeline"
)

// ErrNeedsOutputDir is returned by directory formatters asked to write to a
// stream.
var ErrNeedsOutputDir = errors.New("format requires --output (-o) flag to specify output directory")

// Formatter writes a rendered view to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "html", "json", "csv").
	Name() string

	// Format writes the view to w.
	Format(view *pipeline.View, w io.Writer) error
}

// DirectoryFormatter extends Formatter for formats that produce a directory
// of files (index.html + assets/) instead of a single stream.
type DirectoryFormatter interface {
	Formatter
	FormatDir(view *pipeline.View, dir string) error
}

// ContentTyper is implemented by formatters that know their MIME type, so
// the HTTP server can serve them directly.
type ContentTyper interface {
	ContentType() string
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resetFmtForTesting clears the formatter registry. Only for use in tests.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

// formatNames returns a comma-separated sorted list of registered format
// names. Callers hold fmtMu.
func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
