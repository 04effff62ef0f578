// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package llm is the completion backend behind report narration: a Provider
// interface, the Anthropic implementation and a scripted provider for tests.
package llm

import "context"

// Provider answers one prompt at a time.
type Provider interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request is a single-turn completion. Zero Model, MaxTokens and Temperature
// leave the choice to the provider.
type Request struct {
	System      string
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature *float64
}

// Response is the text the model returned and what it cost.
type Response struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}
