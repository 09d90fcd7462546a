package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Players is the player statistics page.
func Players(d PlayersData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writePageOpen(&b, "ISL Player Statistics", "Performance Analysis Across Squads")

		b.WriteString(`<div class="stats-grid">`)
		writeStatCard(&b, fmt.Sprintf("%d", d.Summary.Players), "Players")
		writeStatCard(&b, fmt.Sprintf("%d", d.Summary.Squads), "Squads")
		writeStatCard(&b, fmt.Sprintf("%d", d.Summary.TotalGoals), "Total Goals")
		writeStatCard(&b, fmt.Sprintf("%d", d.Summary.TotalAssists), "Total Assists")
		b.WriteString(`</div>`)

		b.WriteString(`<div class="chart-grid">`)
		b.WriteString(`<div class="chart-row-2">`)
		writeChartDiv(&b, "top-scorers")
		writeChartDiv(&b, "top-assisters")
		b.WriteString(`</div><div class="chart-row-2">`)
		writeChartDiv(&b, "age-groups")
		writeChartDiv(&b, "player-type")
		b.WriteString(`</div>`)
		writeChartDiv(&b, "squad-goals")
		writeChartDiv(&b, "squad-minutes")
		writeChartDiv(&b, "goals-minutes")
		b.WriteString(`</div>`)

		writeChartLoader(&b, "/api/charts/players")

		writePageClose(&b, "ISL Player Statistics | Indian Super League Analytics Dashboard")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
