// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for cizinci using log/slog.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported handler formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler.
func Setup(verbose, quiet bool) {
	// Text format is always valid.
	_ = SetupWithFormat(os.Stderr, FormatText, verbose, quiet)
}

// SetupWithFormat is like Setup but writes to w using the named handler
// format ("text" or "json"). The server uses json when its logs are shipped
// somewhere that parses them.
func SetupWithFormat(w io.Writer, format string, verbose, quiet bool) error {
	opts := &slog.HandlerOptions{Level: Level(verbose, quiet)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q (valid: text, json)", format)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// Level maps the verbosity flags to a slog level. Quiet wins over verbose.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
