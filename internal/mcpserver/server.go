// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Options configures the tools of one server.
type Options struct {
	// Dir is where config files are looked up. Defaults to ".".
	Dir string

	// Dataset is used by tool calls that name no dataset of their own.
	// When empty the configured dataset applies.
	Dataset string
}

// New creates an MCP server with all dashboard tools registered.
func New(version string, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cizinci",
		Title:   "Cizinci: foreign residents in Czechia",
		Version: version,
	}, nil)
	registerTools(server, newToolset(opts))
	return server
}

// Run creates and runs the MCP server on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, opts Options, transport mcp.Transport) error {
	server := New(version, opts)
	return server.Run(ctx, transport)
}
