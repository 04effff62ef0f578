// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package output

const dashboardHTML = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .InlineAssets}}<style>{{.CSS}}</style>{{else}}<link rel="stylesheet" href="assets/dashboard.css">{{end}}
<script src="{{.PlotlyURL}}" charset="utf-8"></script>
</head>
<body>
<header>
  <h1>{{.Heading}}</h1>
  <p>{{.Labels.Generated}} {{.GeneratedAt}} &middot; {{.Source}}</p>
</header>

{{if .Interactive}}
<form class="controls" id="controls" method="get" action="{{.BasePath}}">
  <label class="control">{{.Labels.Country}}
    <select name="country" id="country">
      <option value="">{{.Labels.AllCountries}}</option>
      {{range .Countries}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
      {{end}}
    </select>
  </label>
  <fieldset class="control years">
    <legend>{{.Labels.Year}}: <output id="from-out">{{.Selection.From}}</output> &ndash; <output id="to-out">{{.Selection.To}}</output></legend>
    <input type="range" name="from" id="from" min="{{.Bounds.MinYear}}" max="{{.Bounds.MaxYear}}" step="1" value="{{.Selection.From}}">
    <input type="range" name="to" id="to" min="{{.Bounds.MinYear}}" max="{{.Bounds.MaxYear}}" step="1" value="{{.Selection.To}}">
  </fieldset>
  <label class="control">
    <input type="checkbox" name="animate" id="animate" value="1"{{if .Selection.Animate}} checked{{end}}> {{.Labels.Animate}}
  </label>
  <input type="hidden" name="animate" value="">
  <label class="control">{{.Labels.TopN}}
    <input type="number" name="top" id="top" min="0" max="100" value="{{.Selection.TopN}}">
  </label>
  <button type="submit">{{.Labels.Apply}}</button>
</form>
{{else}}
<p class="selection">{{.Labels.Country}}: {{if .Selection.Country}}{{.Selection.Country}}{{else}}{{.Labels.AllCountries}}{{end}}
  &middot; {{.Labels.Year}}: {{.Selection.From}}&ndash;{{.Selection.To}}{{if .Selection.TopN}} &middot; Top {{.Selection.TopN}}{{end}}</p>
{{end}}

<section class="cards" id="summary">
  {{range .Cards}}<div class="card"><div class="value">{{.Value}}</div><div class="label">{{.Label}}</div></div>
  {{end}}
</section>

{{if .Empty}}<p class="empty" id="empty">{{.Labels.Empty}}</p>{{end}}

<section class="charts" id="charts">
  <div class="chart-box"><div id="chart-map" class="chart"></div></div>
  <div class="chart-box"><div id="chart-bars" class="chart"></div></div>
</section>

<footer>
  <p>{{.Labels.Source}}</p>
  {{if .Interactive}}<p class="share"><a href="{{.Permalink}}">{{.Labels.Share}}</a></p>
  {{if .ShareImage}}<img class="qr" src="{{.ShareImage}}" alt="{{.Labels.Share}}" width="128" height="128">{{end}}{{end}}
  <p class="render-id">{{.RenderID}}</p>
</footer>

<script id="figures" type="application/json">{{json .Figures}}</script>
{{if .InlineAssets}}<script>{{.JS}}</script>{{else}}<script src="assets/dashboard.js"></script>{{end}}
</body>
</html>
`

const dashboardCSS = `:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --muted: #6c757d; --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --muted: #adb5bd; --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p, footer p { color: var(--muted); font-size: .875rem; }
.controls { display: flex; flex-wrap: wrap; gap: 1rem; align-items: flex-end; margin-bottom: 1.5rem; }
.control { display: flex; flex-direction: column; gap: .25rem; font-size: .8125rem; border: 0; }
.control select, .control input[type=number] { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); }
.years input[type=range] { width: 220px; }
.controls button { padding: .4rem .9rem; border: 1px solid var(--accent); border-radius: 4px; background: var(--accent); color: #fff; cursor: pointer; }
.selection { margin-bottom: 1rem; color: var(--muted); }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(140px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.empty { padding: 1rem; margin-bottom: 1rem; border: 1px dashed var(--border); border-radius: 8px; color: var(--muted); text-align: center; }
.charts { display: grid; grid-template-columns: 1fr; gap: 1rem; margin-bottom: 1.5rem; }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .5rem; }
.chart { width: 100%; min-height: 480px; }
footer { display: flex; flex-wrap: wrap; gap: 1rem; align-items: center; }
footer .render-id { font-family: monospace; font-size: .6875rem; }
`

const dashboardJS = `(function () {
  "use strict";
  var node = document.getElementById("figures");
  var figures = node ? JSON.parse(node.textContent) : {};
  var config = { responsive: true, displaylogo: false };

  function draw(id, fig) {
    var el = document.getElementById(id);
    if (!el || !fig || !window.Plotly) { return; }
    Plotly.newPlot(el, fig.data, fig.layout, config).then(function () {
      if (fig.frames && fig.frames.length) { Plotly.addFrames(el, fig.frames); }
    });
  }
  draw("chart-map", figures.map);
  draw("chart-bars", figures.chart);

  var form = document.getElementById("controls");
  if (!form) { return; }
  var from = document.getElementById("from");
  var to = document.getElementById("to");
  var fromOut = document.getElementById("from-out");
  var toOut = document.getElementById("to-out");

  function syncYears(moved) {
    var lo = parseInt(from.value, 10), hi = parseInt(to.value, 10);
    if (lo > hi) {
      if (moved === from) { to.value = lo; } else { from.value = hi; }
    }
    fromOut.textContent = from.value;
    toOut.textContent = to.value;
  }
  from.addEventListener("input", function () { syncYears(from); });
  to.addEventListener("input", function () { syncYears(to); });

  ["country", "from", "to", "animate", "top"].forEach(function (id) {
    var el = document.getElementById(id);
    if (el) { el.addEventListener("change", function () { form.submit(); }); }
  });
})();
`
