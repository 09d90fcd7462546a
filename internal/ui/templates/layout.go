// Package templates holds the dashboard pages as hand-built templ
// components. Pages render the stat cards server-side and pull chart JSON
// from the API for Plotly to draw in the browser.
package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

const pageStyle = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  background: linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%);
  font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
  padding: 20px; min-height: 100vh;
}
.header {
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  padding: 40px; border-radius: 15px; text-align: center; margin-bottom: 30px;
  box-shadow: 0 8px 20px rgba(0,0,0,0.15);
}
.header h1 { color: white; font-size: 2.5em; margin-bottom: 10px; }
.header p { color: #f0f0f0; font-size: 1.2em; font-weight: 300; }
.header a { color: #f0f0f0; }
.container { max-width: 1400px; margin: 0 auto; }
.stats-grid {
  display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
  gap: 20px; margin-bottom: 30px;
}
.stat-card {
  background: white; padding: 25px; border-radius: 12px; text-align: center;
  box-shadow: 0 4px 15px rgba(0,0,0,0.08);
}
.stat-number { font-size: 2.5em; font-weight: bold; color: #667eea; margin-bottom: 10px; }
.stat-label { color: #666; font-size: 0.95em; text-transform: uppercase; letter-spacing: 1px; }
.chart-grid { display: grid; grid-template-columns: 1fr; gap: 30px; }
.chart-row-2 { display: grid; grid-template-columns: repeat(auto-fit, minmax(500px, 1fr)); gap: 30px; }
.chart { background: white; box-shadow: 0 4px 15px rgba(0,0,0,0.08); padding: 20px; border-radius: 12px; }
.modern-table { width: 100%; border-collapse: collapse; }
.modern-table th, .modern-table td { padding: 8px 12px; text-align: left; border-bottom: 1px solid #eee; }
.footer { text-align: center; margin-top: 50px; padding: 20px; color: #666; font-size: 0.9em; }
`

// writePageOpen writes the shared document head and header banner.
func writePageOpen(b *strings.Builder, title, subtitle string) {
	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"UTF-8\">")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">")
	fmt.Fprintf(b, "<title>%s</title>", templ.EscapeString(title))
	b.WriteString("<script src=\"https://cdn.plot.ly/plotly-2.35.2.min.js\"></script>")
	b.WriteString("<script type=\"module\" src=\"https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js\"></script>")
	fmt.Fprintf(b, "<style>%s</style></head><body><div class=\"container\">", pageStyle)
	fmt.Fprintf(b, "<div class=\"header\"><h1>%s</h1><p>%s</p>",
		templ.EscapeString(title), templ.EscapeString(subtitle))
	b.WriteString(`<p><a href="/">Matches</a> | <a href="/players">Players</a></p></div>`)
}

func writePageClose(b *strings.Builder, footer string) {
	fmt.Fprintf(b, "<div class=\"footer\"><p>%s</p></div>", templ.EscapeString(footer))
	b.WriteString("</div></body></html>")
}

func writeStatCard(b *strings.Builder, number, label string) {
	fmt.Fprintf(b,
		"<div class=\"stat-card\"><div class=\"stat-number\">%s</div><div class=\"stat-label\">%s</div></div>",
		templ.EscapeString(number), templ.EscapeString(label))
}

func writeChartDiv(b *strings.Builder, id string) {
	fmt.Fprintf(b, "<div class=\"chart\"><div id=\"%s\"></div></div>", templ.EscapeString(id))
}

// writeChartLoader emits the script that fetches the figure set and hands
// each figure to Plotly, keyed by div id.
func writeChartLoader(b *strings.Builder, apiPath string) {
	fmt.Fprintf(b, `<script>
fetch(%q).then(function(r){ return r.json(); }).then(function(body){
  var figures = body.data || {};
  Object.keys(figures).forEach(function(id){
    var el = document.getElementById(id);
    if (el) { Plotly.newPlot(el, figures[id].data, figures[id].layout, {responsive: true}); }
  });
});
</script>`, apiPath)
}
