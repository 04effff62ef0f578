// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/cizinci/cizinci/internal/output"
	"github.com/cizinci/cizinci/internal/selection"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /api/view", s.handleView)
	mux.HandleFunc("GET /api/countries", s.handleCountries)
	mux.HandleFunc("GET /chart/bars.png", s.handleBarsPNG)
	mux.HandleFunc("GET /share.png", s.handleShare)
	mux.HandleFunc("GET /health", s.handleHealth)
	return requestLogger(requestID(mux))
}

// CountriesResponse is the body of /api/countries.
type CountriesResponse struct {
	Countries []string `json:"countries"`
	MinYear   int      `json:"min_year"`
	MaxYear   int      `json:"max_year"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	f := &output.HTMLFormatter{
		Interactive: true,
		BasePath:    "/",
		SharePath:   "/share.png",
		PlotlyURL:   s.cfg.PlotlyURL,
	}
	s.serveFormat(w, r, f)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.serveFormat(w, r, &output.JSONFormatter{Compact: true})
}

func (s *Server) handleBarsPNG(w http.ResponseWriter, r *http.Request) {
	s.serveFormat(w, r, output.NewPNGFormatter())
}

func (s *Server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	b := s.pipe.Bounds()
	resp := CountriesResponse{
		Countries: s.pipe.Dataset().Countries(),
		MinYear:   b.MinYear,
		MaxYear:   b.MaxYear,
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("write countries", "error", err)
	}
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.parseSelection(w, r)
	if !ok {
		return
	}
	link := permalink(r, sel.Clamp(s.pipe.Bounds()))
	png, err := qrcode.Encode(link, qrcode.Medium, shareImageSize)
	if err != nil {
		slog.Error("encode share qr", "error", err, "request_id", RequestIDFrom(r.Context()))
		http.Error(w, "cannot encode share image", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "OK")
}

// parseSelection reads the selection from the query string. It answers 400
// and returns false when a value cannot be parsed.
func (s *Server) parseSelection(w http.ResponseWriter, r *http.Request) (selection.Selection, bool) {
	sel, err := selection.Parse(r.URL.Query(), s.cfg.Defaults)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return selection.Selection{}, false
	}
	return sel, true
}

// serveFormat renders the request's selection and writes it with f. Output
// is buffered so a formatter error still yields a clean 500.
func (s *Server) serveFormat(w http.ResponseWriter, r *http.Request, f output.Formatter) {
	sel, ok := s.parseSelection(w, r)
	if !ok {
		return
	}
	view, err := s.render(r.Context(), sel)
	if err != nil {
		slog.Error("render failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := f.Format(view, &buf); err != nil {
		if errors.Is(err, output.ErrEmptyChart) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		slog.Error("format failed", "format", f.Name(), "error", err, "request_id", RequestIDFrom(r.Context()))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	if ct, ok := f.(output.ContentTyper); ok {
		w.Header().Set("Content-Type", ct.ContentType())
	}
	w.Header().Set("X-Render-ID", view.RenderID)
	_, _ = w.Write(buf.Bytes())
}

// permalink is the absolute dashboard URL for sel as seen by the client.
func permalink(r *http.Request, sel selection.Selection) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host + "/?" + sel.Query().Encode()
}
