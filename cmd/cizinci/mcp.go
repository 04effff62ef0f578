// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/cizinci/cizinci/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running cizinci as an MCP server, exposing the dashboard's data to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing cizinci's tools:
  - countries: List countries and the dataset's year range
  - aggregate: Per-year counts of the top countries plus Other
  - render:    The dashboard as markdown, json, csv or html
  - report:    Ranking, year totals, movers and Other share

Tools read --dataset unless a call names its own dataset.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mcpserver.Run(cmd.Context(), Version, mcpserver.Options{
			Dir:     ".",
			Dataset: datasetFlag,
		}, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
