// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"cmp"
	"context"
	"strings"
	"sync"
)

// Reply is one scripted answer. A non-nil Err is returned instead of Text.
type Reply struct {
	Text string
	Err  error
}

// Scripted is a Provider that plays back fixed replies in order, repeating
// the last one, and records every request it was asked.
type Scripted struct {
	mu       sync.Mutex
	replies  []Reply
	requests []Request
}

var _ Provider = (*Scripted)(nil)

// NewScripted returns a provider that answers with replies. With no replies
// every answer is empty.
func NewScripted(replies ...Reply) *Scripted {
	return &Scripted{replies: replies}
}

// Complete records req and returns the next reply. A cancelled context is
// neither recorded nor answered.
func (s *Scripted) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.requests)
	s.requests = append(s.requests, req)
	if len(s.replies) == 0 {
		return &Response{Model: cmp.Or(req.Model, "scripted")}, nil
	}

	r := s.replies[min(n, len(s.replies)-1)]
	if r.Err != nil {
		return nil, r.Err
	}
	return &Response{
		Text:         r.Text,
		Model:        cmp.Or(req.Model, "scripted"),
		InputTokens:  len(strings.Fields(req.System)) + len(strings.Fields(req.Prompt)),
		OutputTokens: len(strings.Fields(r.Text)),
	}, nil
}

// Requests returns a copy of the requests received so far.
func (s *Scripted) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}
