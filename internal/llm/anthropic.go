// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// APIKeyEnv names the variable the API key is read from.
const APIKeyEnv = "ANTHROPIC_API_KEY"

const (
	// DefaultModel serves requests that name no model.
	DefaultModel = "claude-sonnet-4-5-20250929"

	defaultMaxTokens = 1024

	// The SDK retries 429 and 5xx responses with backoff.
	defaultRetries = 2
)

// ErrNoAPIKey is returned by NewAnthropicProvider when no key is configured.
var ErrNoAPIKey = errors.New("llm: " + APIKeyEnv + " is not set")

// AnthropicProvider sends requests to the Anthropic Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

var _ Provider = (*AnthropicProvider)(nil)

// AnthropicOption configures NewAnthropicProvider.
type AnthropicOption func(*anthropicSettings)

type anthropicSettings struct {
	apiKey  string
	baseURL string
	model   string
	retries int
}

// WithAPIKey uses key instead of the environment.
func WithAPIKey(key string) AnthropicOption {
	return func(s *anthropicSettings) { s.apiKey = key }
}

// WithBaseURL sends requests to url, for proxies and test servers.
func WithBaseURL(url string) AnthropicOption {
	return func(s *anthropicSettings) { s.baseURL = url }
}

// WithModel sets the default model. The llm.model config key feeds it; an
// empty value keeps DefaultModel.
func WithModel(model string) AnthropicOption {
	return func(s *anthropicSettings) {
		if model != "" {
			s.model = model
		}
	}
}

// WithRetries sets how often transient failures are retried.
func WithRetries(n int) AnthropicOption {
	return func(s *anthropicSettings) { s.retries = n }
}

// NewAnthropicProvider builds a provider. It fails with ErrNoAPIKey before
// any request is made when neither WithAPIKey nor the environment has a key.
func NewAnthropicProvider(opts ...AnthropicOption) (*AnthropicProvider, error) {
	s := anthropicSettings{model: DefaultModel, retries: defaultRetries}
	for _, o := range opts {
		o(&s)
	}
	if s.apiKey == "" {
		s.apiKey = os.Getenv(APIKeyEnv)
	}
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(s.apiKey),
		option.WithMaxRetries(s.retries),
	}
	if s.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(s.baseURL))
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(reqOpts...),
		model:  s.model,
	}, nil
}

// Model returns the model used when a request names none.
func (p *AnthropicProvider) Model() string { return p.model }

// Complete sends req as a single user message and joins the text blocks of
// the answer.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: defaultMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.Model != "" {
		params.Model = anthropic.Model(req.Model)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = int64(req.MaxTokens)
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("llm: anthropic request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(tb.Text)
		}
	}
	return &Response{
		Text:         text.String(),
		Model:        string(msg.Model),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}, nil
}
