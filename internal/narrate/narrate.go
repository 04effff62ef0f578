// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package narrate asks an LLM for a short written summary of a view.
package narrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cizinci/cizinci/internal/llm"
	"github.com/cizinci/cizinci/internal/pipeline"
)

// ErrNothingToNarrate is returned for empty views; the provider is not called.
var ErrNothingToNarrate = errors.New("narrate: view is empty")

const (
	promptRankingLimit = 10
	defaultMaxTokens   = 400
)

var temperature = 0.2

const systemPrompt = `You summarise statistics about foreign residents of the Czech Republic.
Write one short paragraph in the requested language. Use only the numbers given.
Mention the largest groups, the overall trend and anything unusual. No headings, no lists.`

// Options tune the completion request. Zero values use the provider defaults.
type Options struct {
	Model     string
	MaxTokens int
}

// Narrate builds a prompt from view and returns the model's trimmed answer.
func Narrate(ctx context.Context, provider llm.Provider, view *pipeline.View, opts Options) (string, error) {
	if view.Empty() {
		return "", ErrNothingToNarrate
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	resp, err := provider.Complete(ctx, llm.Request{
		Prompt:      Prompt(view),
		System:      systemPrompt,
		Model:       opts.Model,
		MaxTokens:   maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("narrate: %w", err)
	}
	slog.Debug("narration complete",
		"render_id", view.RenderID,
		"model", resp.Model,
		"input_tokens", resp.InputTokens,
		"output_tokens", resp.OutputTokens,
	)
	return strings.TrimSpace(resp.Text), nil
}

// Prompt renders the facts of view as compact plain text.
func Prompt(view *pipeline.View) string {
	var b strings.Builder
	lang := "Czech"
	if view.Labels.Locale == "en" {
		lang = "English"
	}
	fmt.Fprintf(&b, "Language: %s\n", lang)
	fmt.Fprintf(&b, "Country filter: %s\n", view.Selection.Label("all countries"))
	fmt.Fprintf(&b, "Years: %d-%d\n", view.Selection.From, view.Selection.To)
	fmt.Fprintf(&b, "Total persons: %d\n", view.Total())

	b.WriteString("\nLargest groups over the range:\n")
	for i, ct := range view.Ranking {
		if i == promptRankingLimit {
			fmt.Fprintf(&b, "(%d more)\n", len(view.Ranking)-promptRankingLimit)
			break
		}
		fmt.Fprintf(&b, "%d. %s: %d\n", i+1, ct.Category, ct.Total)
	}

	b.WriteString("\nPersons per year:\n")
	for _, yt := range view.YearTotals {
		fmt.Fprintf(&b, "%d: %d\n", yt.Year, yt.Total)
	}
	return b.String()
}
