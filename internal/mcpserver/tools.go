// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cizinci/cizinci/internal/aggregate"
	"github.com/cizinci/cizinci/internal/config"
	"github.com/cizinci/cizinci/internal/output"
	"github.com/cizinci/cizinci/internal/pipeline"
	"github.com/cizinci/cizinci/internal/report"
	"github.com/cizinci/cizinci/internal/selection"
)

// CountriesInput is the input schema for the countries MCP tool.
type CountriesInput struct {
	Dataset string `json:"dataset,omitempty" jsonschema:"Dataset source: CSV path, http(s) URL, sqlite:// or postgres:// (defaults to the configured dataset)"`
}

// CountryInfo describes one country of the dataset.
type CountryInfo struct {
	Name      string `json:"name"`
	English   string `json:"english,omitempty"`
	FirstYear int    `json:"first_year"`
	LastYear  int    `json:"last_year"`
}

// CountriesOutput is the result of the countries MCP tool.
type CountriesOutput struct {
	Countries []CountryInfo `json:"countries"`
	MinYear   int           `json:"min_year"`
	MaxYear   int           `json:"max_year"`
}

// AggregateInput is the input schema for the aggregate MCP tool.
type AggregateInput struct {
	Dataset string `json:"dataset,omitempty" jsonschema:"Dataset source: CSV path, http(s) URL, sqlite:// or postgres:// (defaults to the configured dataset)"`
	Country string `json:"country,omitempty" jsonschema:"Country name as written in the dataset (empty selects all countries)"`
	From    int    `json:"from,omitempty" jsonschema:"First year of the range (defaults to the earliest year)"`
	To      int    `json:"to,omitempty" jsonschema:"Last year of the range (defaults to the latest year)"`
	Top     *int   `json:"top,omitempty" jsonschema:"Countries kept per year before the rest is folded into Other (0 keeps all, default from config)"`
}

// AggregateOutput is the result of the aggregate MCP tool.
type AggregateOutput struct {
	Selection  selection.Selection       `json:"selection"`
	Records    int                       `json:"records"`
	Total      int                       `json:"total"`
	Other      int                       `json:"other"`
	Rows       []aggregate.Row           `json:"rows"`
	Ranking    []aggregate.CategoryTotal `json:"ranking"`
	YearTotals []aggregate.YearTotal     `json:"year_totals"`
}

// RenderInput is the input schema for the render MCP tool.
type RenderInput struct {
	Dataset string `json:"dataset,omitempty" jsonschema:"Dataset source: CSV path, http(s) URL, sqlite:// or postgres:// (defaults to the configured dataset)"`
	Country string `json:"country,omitempty" jsonschema:"Country name as written in the dataset (empty selects all countries)"`
	From    int    `json:"from,omitempty" jsonschema:"First year of the range (defaults to the earliest year)"`
	To      int    `json:"to,omitempty" jsonschema:"Last year of the range (defaults to the latest year)"`
	Top     *int   `json:"top,omitempty" jsonschema:"Countries kept per year before the rest is folded into Other (0 keeps all, default from config)"`
	Animate bool   `json:"animate,omitempty" jsonschema:"Render the bar chart as per-year animation frames (html only)"`
	Format  string `json:"format,omitempty" jsonschema:"Output format: markdown, json, csv, html (default: markdown)"`
}

// ReportInput is the input schema for the report MCP tool.
type ReportInput struct {
	Dataset  string `json:"dataset,omitempty" jsonschema:"Dataset source: CSV path, http(s) URL, sqlite:// or postgres:// (defaults to the configured dataset)"`
	Country  string `json:"country,omitempty" jsonschema:"Country name as written in the dataset (empty selects all countries)"`
	From     int    `json:"from,omitempty" jsonschema:"First year of the range (defaults to the earliest year)"`
	To       int    `json:"to,omitempty" jsonschema:"Last year of the range (defaults to the latest year)"`
	Top      *int   `json:"top,omitempty" jsonschema:"Countries kept per year before the rest is folded into Other (0 keeps all, default from config)"`
	Sections string `json:"sections,omitempty" jsonschema:"Comma-separated list of report sections to include (default: all)"`
	JSON     bool   `json:"json,omitempty" jsonschema:"Return the report as JSON instead of text"`
}

// query is the selection part shared by the tool inputs.
type query struct {
	dataset  string
	country  string
	from, to int
	top      *int
	animate  bool
}

func (q query) selection(defaults selection.Selection) selection.Selection {
	sel := defaults
	sel.Country = strings.TrimSpace(q.country)
	sel.From = q.from
	sel.To = q.to
	sel.Animate = q.animate
	if q.top != nil {
		sel.TopN = *q.top
	}
	return sel
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// toolset holds the state shared by the tool handlers of one server.
type toolset struct {
	opts     Options
	datasets *datasetCache

	// Report sections hold analysis state between Analyze and Render.
	reportMu sync.Mutex
}

func newToolset(opts Options) *toolset {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	return &toolset{opts: opts, datasets: newDatasetCache()}
}

// registerTools adds all dashboard tools to the MCP server.
func registerTools(server *mcp.Server, ts *toolset) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "countries",
		Description: "List the countries of citizenship in the foreign-residents dataset with the years each appears in, plus the dataset's year range.",
		Annotations: readOnly,
	}, ts.handleCountries)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "aggregate",
		Description: "Aggregate resident counts per year and country for a selection. Countries outside the top N of each year are folded into an Other row.",
		Annotations: readOnly,
	}, ts.handleAggregate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render the dashboard for a selection as markdown, json, csv or a self-contained html page.",
		Annotations: readOnly,
	}, ts.handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "report",
		Description: "Summarize a selection: ranking, per-year totals, biggest movers and the share folded into Other.",
		Annotations: readOnly,
	}, ts.handleReport)
}

func (ts *toolset) pipeline(ctx context.Context, source string) (*pipeline.Pipeline, config.Settings, error) {
	if source == "" {
		source = ts.opts.Dataset
	}
	settings, err := ResolveSettings(ts.opts.Dir, source)
	if err != nil {
		return nil, config.Settings{}, err
	}
	ds, err := ts.datasets.get(ctx, settings)
	if err != nil {
		return nil, config.Settings{}, fmt.Errorf("load failed: %w", err)
	}
	return pipeline.New(ds, settings.PipelineOptions()), settings, nil
}

func (ts *toolset) view(ctx context.Context, q query) (*pipeline.View, error) {
	p, settings, err := ts.pipeline(ctx, q.dataset)
	if err != nil {
		return nil, err
	}
	sel := q.selection(settings.DefaultSelection())
	if sel.TopN < 0 {
		return nil, fmt.Errorf("invalid top %d: must not be negative", sel.TopN)
	}
	view, err := p.Run(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}
	slog.Debug("mcp view rendered", "selection", view.Selection.Key(), "records", view.Records)
	return view, nil
}

func (ts *toolset) handleCountries(ctx context.Context, _ *mcp.CallToolRequest, input CountriesInput) (*mcp.CallToolResult, CountriesOutput, error) {
	p, _, err := ts.pipeline(ctx, input.Dataset)
	if err != nil {
		return nil, CountriesOutput{}, err
	}
	ds := p.Dataset()
	bounds := p.Bounds()

	out := CountriesOutput{
		Countries: make([]CountryInfo, 0, len(ds.Countries())),
		MinYear:   bounds.MinYear,
		MaxYear:   bounds.MaxYear,
	}
	for _, name := range ds.Countries() {
		first, last, _ := ds.YearSpan(name)
		out.Countries = append(out.Countries, CountryInfo{
			Name:      name,
			English:   ds.EnglishName(name),
			FirstYear: first,
			LastYear:  last,
		})
	}
	return nil, out, nil
}

func (ts *toolset) handleAggregate(ctx context.Context, _ *mcp.CallToolRequest, input AggregateInput) (*mcp.CallToolResult, AggregateOutput, error) {
	view, err := ts.view(ctx, query{
		dataset: input.Dataset,
		country: input.Country,
		from:    input.From,
		to:      input.To,
		top:     input.Top,
	})
	if err != nil {
		return nil, AggregateOutput{}, err
	}

	return nil, AggregateOutput{
		Selection:  view.Selection,
		Records:    view.Records,
		Total:      view.Total(),
		Other:      view.OtherTotal(),
		Rows:       append([]aggregate.Row{}, view.Bars...),
		Ranking:    append([]aggregate.CategoryTotal{}, view.Ranking...),
		YearTotals: append([]aggregate.YearTotal{}, view.YearTotals...),
	}, nil
}

func (ts *toolset) handleRender(ctx context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, any, error) {
	// Determine format (default to markdown for MCP consumers).
	format := "markdown"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := textFormatter(format)
	if err != nil {
		return nil, nil, err
	}

	view, err := ts.view(ctx, query{
		dataset: input.Dataset,
		country: input.Country,
		from:    input.From,
		to:      input.To,
		top:     input.Top,
		animate: input.Animate,
	})
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := formatter.Format(view, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

func (ts *toolset) handleReport(ctx context.Context, _ *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, any, error) {
	var filter []string
	if input.Sections != "" {
		filter = splitAndTrim(input.Sections)
	}
	if unknown := report.UnknownSections(filter); len(unknown) > 0 {
		return nil, nil, fmt.Errorf("unknown section(s): %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(report.List(), ", "))
	}

	view, err := ts.view(ctx, query{
		dataset: input.Dataset,
		country: input.Country,
		from:    input.From,
		to:      input.To,
		top:     input.Top,
	})
	if err != nil {
		return nil, nil, err
	}

	sections := report.ResolveSections(filter)
	ts.reportMu.Lock()
	defer ts.reportMu.Unlock()
	var buf bytes.Buffer
	if input.JSON {
		err = report.RenderJSON(view, sections, &buf)
	} else {
		err = report.Render(view, sections, &buf)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("report failed: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

// textFormatter returns the named formatter when it writes text to a single
// stream. Image and directory formats cannot travel as MCP text content.
func textFormatter(name string) (output.Formatter, error) {
	f, err := output.GetFormatter(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported format %q", name)
	}
	if _, ok := f.(output.DirectoryFormatter); ok {
		return nil, fmt.Errorf("format %q writes a directory and is not available over MCP", name)
	}
	if ct, ok := f.(output.ContentTyper); ok && !isText(ct.ContentType()) {
		return nil, fmt.Errorf("format %q is binary and is not available over MCP", name)
	}
	return f, nil
}

func isText(contentType string) bool {
	return strings.HasPrefix(contentType, "text/") || strings.HasPrefix(contentType, "application/json")
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
