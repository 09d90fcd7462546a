package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Dashboard is the match analytics page.
func Dashboard(d DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writePageOpen(&b, "Indian Super League", "Comprehensive Analytics Dashboard")

		b.WriteString(`<div class="stats-grid">`)
		writeStatCard(&b, fmt.Sprintf("%d", d.Summary.Matches), "Total Matches")
		writeStatCard(&b, fmt.Sprintf("%.1f", d.Summary.AvgGoals), "Avg Goals/Match")
		writeStatCard(&b, fmt.Sprintf("%.0f", d.Summary.AvgAttendance), "Avg Attendance")
		writeStatCard(&b, fmt.Sprintf("%d Seasons", d.Summary.Seasons), "Seasons Covered")
		b.WriteString(`</div>`)

		b.WriteString(`<div class="chart-grid">`)
		writeChartDiv(&b, "goal-trend")
		b.WriteString(`<div class="chart-row-2">`)
		writeChartDiv(&b, "winner-split")
		writeChartDiv(&b, "goal-distribution")
		b.WriteString(`</div><div class="chart-row-2">`)
		writeChartDiv(&b, "day-goals")
		writeChartDiv(&b, "attendance")
		b.WriteString(`</div>`)
		writeChartDiv(&b, "yearly-trends")
		b.WriteString(`<div class="chart-row-2">`)
		writeChartDiv(&b, "top-venues")
		writeChartDiv(&b, "team-winrate")
		b.WriteString(`</div>`)
		writeChartDiv(&b, "score-heatmap")
		b.WriteString(`<div class="chart" id="leaders-content" data-on-load="@get('/sse/leaderboard')"></div>`)
		b.WriteString(`</div>`)

		writeChartLoader(&b, "/api/charts/matches")

		writePageClose(&b, "ISL Matches 2014-2023 | Indian Super League Analytics Dashboard")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
