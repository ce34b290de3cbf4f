package web

// Chart page template. The SVG geometry is computed server-side in
// buildChartView; the template only places the shapes.
const chartPageTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ganttview — {{.Source}}</title>
<style>
  body { font-family: -apple-system, 'Segoe UI', sans-serif; margin: 24px; background: #fafafa; color: #222; }
  h1 { font-size: 18px; }
  .meta { color: #666; font-size: 13px; margin-bottom: 12px; }
  svg { background: #fff; border: 1px solid #ddd; border-radius: 4px; }
  .legend { margin-top: 14px; font-size: 13px; }
  .legend span.swatch { display: inline-block; width: 14px; height: 14px; border-radius: 3px;
    vertical-align: -2px; margin: 0 4px 0 12px; border: 1px solid #aaa; }
  .violations { margin-top: 16px; }
  .violations li { color: #b33; font-size: 13px; }
  .clean { color: #2a7; font-size: 13px; }
</style>
</head>
<body>
<h1>{{.Source}} <small>({{.Mode}})</small></h1>
<div class="meta">{{.MachineCount}} machines · {{.RecordCount}} records · makespan {{printf "%.4g" .Makespan}}</div>

<svg width="{{.Width}}" height="{{.Height}}" font-size="{{.LabelSize}}">
  {{- range .Ticks}}
  <line x1="{{.X}}" y1="{{$.AxisY}}" x2="{{.X}}" y2="{{$.Height}}" stroke="#eee"/>
  <text x="{{.X}}" y="{{$.AxisY}}" text-anchor="middle" fill="#888">{{.Label}}</text>
  {{- end}}
  {{- range .Rows}}
  {{- if .IsHeader}}
  <text x="4" y="{{.LabelY}}" font-weight="bold" fill="#444">{{.Label}}</text>
  {{- else}}
  <text x="{{.LabelX}}" y="{{.LabelY}}" text-anchor="end" fill="#333">{{.Label}}</text>
  {{- range .Bars}}
  <rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="{{.Fill}}" stroke="#999" stroke-width="0.5"/>
  {{- if .Text}}
  <text x="{{.TextX}}" y="{{.TextY}}" text-anchor="middle" fill="#333">{{.Text}}</text>
  {{- end}}
  {{- end}}
  {{- end}}
  {{- end}}
</svg>

{{- if .ShowLegend}}
<div class="legend"><strong>Legend:</strong>
  {{- range .Legend}}
  <span class="swatch" style="background: {{.Color}}"></span>{{.Label}}
  {{- end}}
</div>
{{- end}}

<div class="violations">
{{- if .Violations}}
<strong>Violations</strong>
<ul>
  {{- range .Violations}}
  <li>{{.}}</li>
  {{- end}}
</ul>
{{- else}}
<span class="clean">No violations — schedule is consistent.</span>
{{- end}}
</div>

<script>
  // Live reload: the server pushes only when the input file changes.
  (function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");
    ws.onmessage = function () { location.reload(); };
    ws.onclose = function () { setTimeout(connect, 2000); };
  })();
</script>
</body>
</html>`
