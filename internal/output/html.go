// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"sync"

	"github.com/cizinci/cizinci/internal/figure"
	"github.com/cizinci/cizinci/internal/numfmt"
	"github.com/cizinci/cizinci/internal/pipeline"
	"github.com/cizinci/cizinci/internal/selection"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// DefaultPlotlyURL is the Plotly.js bundle loaded by dashboards.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// HTMLFormatter writes a view as a self-contained HTML dashboard. Plotly.js
// is loaded from PlotlyURL and draws the embedded figures.
type HTMLFormatter struct {
	// Interactive adds the control form (country, years, animation, top-N)
	// that submits back to BasePath, plus the share link and QR code.
	Interactive bool

	// BasePath is the form action and permalink path. Defaults to "/".
	BasePath string

	// SharePath serves the permalink QR code. Empty disables the image.
	SharePath string

	// PlotlyURL overrides DefaultPlotlyURL.
	PlotlyURL string
}

// Compile-time interface checks.
var (
	_ Formatter    = (*HTMLFormatter)(nil)
	_ ContentTyper = (*HTMLFormatter)(nil)
)

// NewHTMLFormatter returns a static (non-interactive) HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

// ContentType returns the MIME type of the output.
func (h *HTMLFormatter) ContentType() string {
	return "text/html; charset=utf-8"
}

var (
	dashboardTmplOnce sync.Once
	dashboardTmpl     *template.Template
)

func dashboardTemplate() *template.Template {
	dashboardTmplOnce.Do(func() {
		dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // json.Marshal escapes <, > and &
			},
		}).Parse(dashboardHTML))
	})
	return dashboardTmpl
}

// Format writes the dashboard to w. A view of an empty dataset gets a
// placeholder page; an empty selection still renders the controls and the
// empty-state figures.
func (h *HTMLFormatter) Format(view *pipeline.View, w io.Writer) error {
	if len(view.Countries) == 0 {
		return writeEmpty(w, view, "")
	}
	data := h.buildData(view)
	data.InlineAssets = true
	data.CSS = template.CSS(dashboardCSS) //nolint:gosec // static asset
	data.JS = template.JS(dashboardJS)    //nolint:gosec // static asset
	if err := dashboardTemplate().Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the dashboard.
type htmlData struct {
	Lang        string
	Title       string
	Heading     string
	GeneratedAt string
	RenderID    string
	Labels      figure.Labels
	Source      string
	PlotlyURL   string

	Interactive bool
	BasePath    string
	Permalink   string
	ShareImage  string

	Selection selection.Selection
	Bounds    selection.Bounds
	Countries []countryOption
	Cards     []card
	Empty     bool

	Figures map[string]figure.Figure

	InlineAssets bool
	CSS          template.CSS
	JS           template.JS
}

type countryOption struct {
	Name     string
	Selected bool
}

type card struct {
	Label string
	Value string
}

func (h *HTMLFormatter) buildData(view *pipeline.View) htmlData {
	base := h.BasePath
	if base == "" {
		base = "/"
	}
	plotly := h.PlotlyURL
	if plotly == "" {
		plotly = DefaultPlotlyURL
	}
	labels := view.Labels
	locale := labels.Locale

	data := htmlData{
		Lang:        locale,
		Title:       view.Title,
		Heading:     view.Title,
		GeneratedAt: view.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"),
		RenderID:    view.RenderID,
		Labels:      labels,
		Source:      view.Source,
		PlotlyURL:   plotly,
		Interactive: h.Interactive,
		BasePath:    base,
		Selection:   view.Selection,
		Bounds:      view.Bounds,
		Empty:       view.Empty(),
		Figures: map[string]figure.Figure{
			"map":   view.Map,
			"chart": view.Chart,
		},
	}
	if data.Title == "" {
		data.Title = labels.MapTitleFor(view.Selection.Country, view.Selection.From, view.Selection.To)
		data.Heading = data.Title
	}

	query := view.Selection.Query().Encode()
	data.Permalink = base
	if query != "" {
		data.Permalink += "?" + query
	}
	if h.Interactive && h.SharePath != "" {
		data.ShareImage = h.SharePath
		if query != "" {
			data.ShareImage += "?" + query
		}
	}

	data.Countries = make([]countryOption, len(view.Countries))
	for i, c := range view.Countries {
		data.Countries[i] = countryOption{Name: c, Selected: c == view.Selection.Country}
	}

	total := view.Total()
	data.Cards = []card{
		{Label: labels.Total, Value: numfmt.Int(locale, total)},
		{Label: labels.Countries, Value: strconv.Itoa(len(view.Ranking))},
		{Label: labels.Years, Value: strconv.Itoa(len(view.YearTotals))},
	}
	if view.Selection.TopN > 0 {
		data.Cards = append(data.Cards, card{Label: labels.OtherShare, Value: numfmt.Percent(locale, view.OtherTotal(), total)})
	}
	return data
}

// writeEmpty writes the placeholder page shown when the dataset has no rows.
// stylesheet links an external CSS file when non-empty.
func writeEmpty(w io.Writer, view *pipeline.View, stylesheet string) error {
	data := struct {
		Lang, Title, Message, Stylesheet string
	}{
		Lang:       view.Labels.Locale,
		Title:      view.Title,
		Message:    view.Labels.NoData,
		Stylesheet: stylesheet,
	}
	if err := emptyTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("write empty html: %w", err)
	}
	return nil
}

var emptyTmpl = template.Must(template.New("empty").Parse(emptyHTML))

const emptyHTML = `<!DOCTYPE html>
<html lang="{{.Lang}}"><head><meta charset="utf-8"><title>{{.Title}}</title>
{{if .Stylesheet}}<link rel="stylesheet" href="{{.Stylesheet}}">{{else}}<style>body{font-family:sans-serif;display:flex;justify-content:center;align-items:center;height:100vh;color:#6c757d;}</style>{{end}}
</head><body><p class="empty">{{.Message}}</p></body></html>
`
