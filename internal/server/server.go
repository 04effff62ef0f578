// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package server serves the interactive dashboard over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/cizinci/cizinci/internal/pipeline"
	"github.com/cizinci/cizinci/internal/selection"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
	shareImageSize    = 256
)

// Config defines the inputs for the dashboard server.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Defaults fill selection parameters missing from a request.
	Defaults selection.Selection

	// PlotlyURL overrides the Plotly.js bundle location.
	PlotlyURL string
}

// Server renders views for HTTP requests. Identical concurrent selections
// share one render.
type Server struct {
	cfg     Config
	pipe    *pipeline.Pipeline
	renders singleflight.Group
	handler http.Handler
}

// New builds a server for the given pipeline.
func New(p *pipeline.Pipeline, cfg Config) *Server {
	s := &Server{cfg: cfg, pipe: p}
	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe listens on cfg.Addr and serves until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx ends, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("dashboard listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		slog.Info("dashboard stopped")
		return nil
	})
	return g.Wait()
}

// render runs the pipeline for sel, collapsing concurrent identical
// selections into one run. The render outlives a single caller's
// cancellation so that the other waiters still get a result.
func (s *Server) render(ctx context.Context, sel selection.Selection) (*pipeline.View, error) {
	v, err, shared := s.renders.Do(sel.Key(), func() (any, error) {
		return s.pipe.Run(context.WithoutCancel(ctx), sel)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Debug("render shared", "key", sel.Key())
	}
	return v.(*pipeline.View), nil
}
