package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"isl-dashboard/internal/charts"
	"isl-dashboard/internal/models"
	"isl-dashboard/internal/services"
)

const maxLeaderRows = 20

var leadersTableTemplate = template.Must(template.New("leadersTable").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`
<div id="leaders-content">
<table class="modern-table">
<thead><tr><th>#</th><th>Team</th><th>Wins</th></tr></thead>
<tbody>
{{range $i, $row := .}}<tr>
<td>{{inc $i}}</td>
<td>{{.Team}}</td>
<td><strong>{{.Wins}}</strong></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *SSEHandlers) renderLeadersTable(leaders []models.TeamWins) (string, error) {
	if len(leaders) > maxLeaderRows {
		leaders = leaders[:maxLeaderRows]
	}
	var buf strings.Builder
	err := leadersTableTemplate.Execute(&buf, leaders)
	return buf.String(), err
}

// HandleMatchCharts pushes the full match figure set as datastar signals;
// the page script re-renders each Plotly div when the signal changes.
func (h *SSEHandlers) HandleMatchCharts(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	figs := charts.MatchFigures(h.analytics.Matches())
	jsonData, err := json.Marshal(map[string]any{"matchFigures": figs})
	if err != nil {
		h.logger.Error("marshal match figures", "error", err)
		return
	}
	sse.PatchSignals(jsonData)
	sse.PatchElements(`<div id="match-charts-status">Match charts refreshed</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandlePlayerCharts(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	figs := charts.PlayerFigures(h.analytics.Players())
	jsonData, err := json.Marshal(map[string]any{"playerFigures": figs})
	if err != nil {
		h.logger.Error("marshal player figures", "error", err)
		return
	}
	sse.PatchSignals(jsonData)
	sse.PatchElements(`<div id="player-charts-status">Player charts refreshed</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderLeadersTable(h.analytics.Matches().Leaders)
	if err != nil {
		h.logger.Error("render leaders table", "error", err)
		return
	}
	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleRefreshAll pushes every signal and the leaders table in one stream.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	m := h.analytics.Matches()
	html, err := h.renderLeadersTable(m.Leaders)
	if err != nil {
		h.logger.Error("render leaders table", "error", err)
		return
	}
	sse.PatchElements(html)

	allSignals, err := json.Marshal(map[string]any{
		"matchFigures":  charts.MatchFigures(m),
		"playerFigures": charts.PlayerFigures(h.analytics.Players()),
	})
	if err != nil {
		h.logger.Error("marshal refresh signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
