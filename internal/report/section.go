// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package report provides a pluggable section registry for cizinci report.
// Each section analyzes a rendered view and writes a focused terminal summary.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/cizinci/cizinci/internal/pipeline"
)

// ErrNoData indicates a section has nothing to say about the view, typically
// because the selection is empty or too narrow for the analysis.
var ErrNoData = errors.New("no data for section")

// Section is a pluggable report section that analyzes a view and renders a
// focused report segment.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "movers").
	Name() string

	// Description returns a human-readable description of what this section reports.
	Description() string

	// Analyze processes the view and prepares internal state for rendering.
	// Returns ErrNoData (wrapped) when the section does not apply.
	Analyze(view *pipeline.View) error

	// Render writes the section output to w.
	Render(w io.Writer) error
}

func init() {
	registerBuiltins()
}

// registerBuiltins registers the built-in sections in report order.
func registerBuiltins() {
	Register(&rankingSection{})
	Register(&yearTotalsSection{})
	Register(&moversSection{})
	Register(&otherShareSection{})
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}
