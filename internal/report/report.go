// Package report renders precomputed analytics as terminal tables.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"isl-dashboard/internal/services"
	"isl-dashboard/internal/stats"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// MatchSummary prints the headline match numbers and winner split.
func MatchSummary(w io.Writer, m *services.MatchAnalytics) {
	fmt.Fprintf(w, "\n=== Match Summary ===\n\n")
	fmt.Fprintf(w, "  Matches        : %d\n", m.Summary.Matches)
	fmt.Fprintf(w, "  Seasons        : %d\n", m.Summary.Seasons)
	fmt.Fprintf(w, "  Total goals    : %d\n", m.Summary.TotalGoals)
	fmt.Fprintf(w, "  Avg goals      : %.2f\n", m.Summary.AvgGoals)
	fmt.Fprintf(w, "  Avg attendance : %.0f\n", m.Summary.AvgAttendance)
	if m.Skipped > 0 {
		fmt.Fprintf(w, "  Rows skipped   : %d\n", m.Skipped)
	}

	fmt.Fprintf(w, "\n--- Results ---\n\n")
	t := newTable(w)
	t.Header("OUTCOME", "MATCHES")
	t.Append("Home wins", fmt.Sprintf("%d", m.Winners.HomeWins))
	t.Append("Away wins", fmt.Sprintf("%d", m.Winners.AwayWins))
	t.Append("Draws", fmt.Sprintf("%d", m.Winners.Draws))
	t.Render()

	fmt.Fprintf(w, "\n--- Goals per Match ---\n\n")
	bt := newTable(w)
	bt.Header("RANGE", "MATCHES")
	for _, b := range m.GoalBins.Bins {
		bt.Append(b.Label, fmt.Sprintf("%d", b.Frequency))
	}
	if m.GoalBins.Unbinned > 0 {
		bt.Append("other", fmt.Sprintf("%d", m.GoalBins.Unbinned))
	}
	bt.Render()
}

// Leaderboard prints the top teams by total wins.
func Leaderboard(w io.Writer, m *services.MatchAnalytics) {
	fmt.Fprintf(w, "\n--- Leaderboard ---\n\n")
	t := newTable(w)
	t.Header("RANK", "TEAM", "WINS")
	for i, l := range m.Leaders {
		t.Append(fmt.Sprintf("%d", i+1), l.Team, fmt.Sprintf("%d", l.Wins))
	}
	t.Render()
}

// TeamPerformance prints the win-rate table.
func TeamPerformance(w io.Writer, m *services.MatchAnalytics) {
	fmt.Fprintf(w, "\n--- Team Performance ---\n\n")
	t := newTable(w)
	t.Header("TEAM", "MATCHES", "WINS", "GOALS", "WIN%")
	for _, tp := range m.TeamTable {
		t.Append(
			tp.Team,
			fmt.Sprintf("%d", tp.Matches),
			fmt.Sprintf("%d", tp.Wins),
			fmt.Sprintf("%d", tp.Goals),
			fmt.Sprintf("%.1f%%", tp.WinRate),
		)
	}
	t.Render()
}

// Yearly prints the per-season match counts and scoring averages.
func Yearly(w io.Writer, m *services.MatchAnalytics) {
	fmt.Fprintf(w, "\n--- Seasons ---\n\n")
	t := newTable(w)
	t.Header("YEAR", "MATCHES", "AVG GOALS")
	for _, y := range m.Yearly {
		t.Append(
			fmt.Sprintf("%d", y.Year),
			fmt.Sprintf("%d", y.Matches),
			fmt.Sprintf("%.2f", y.AvgGoals),
		)
	}
	t.Render()
}

// GroupMeans prints any keyed mean series (weekday goals, monthly goals).
func GroupMeans(w io.Writer, title, keyHeader string, means []stats.GroupMean) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", title)
	t := newTable(w)
	t.Header(keyHeader, "MEAN", "MATCHES")
	for _, g := range means {
		t.Append(g.Key, fmt.Sprintf("%.2f", g.Mean), fmt.Sprintf("%d", g.Count))
	}
	t.Render()
}

// PlayerSummary prints the headline player numbers and the ranked lists.
func PlayerSummary(w io.Writer, p *services.PlayerAnalytics) {
	fmt.Fprintf(w, "\n=== Player Summary ===\n\n")
	fmt.Fprintf(w, "  Players        : %d\n", p.Summary.Players)
	fmt.Fprintf(w, "  Squads         : %d\n", p.Summary.Squads)
	fmt.Fprintf(w, "  Total goals    : %d\n", p.Summary.TotalGoals)
	fmt.Fprintf(w, "  Total assists  : %d\n", p.Summary.TotalAssists)
	fmt.Fprintf(w, "  Avg age        : %.1f\n", p.Summary.AvgAge)
	fmt.Fprintf(w, "  Domestic       : %d\n", p.TypeSplit.Domestic)
	fmt.Fprintf(w, "  Foreign        : %d\n", p.TypeSplit.Foreign)

	Ranked(w, "Top Scorers", "PLAYER", "GOALS", p.TopScorers)
	Ranked(w, "Top Assisters", "PLAYER", "ASSISTS", p.TopAssisters)

	fmt.Fprintf(w, "\n--- Age Groups ---\n\n")
	at := newTable(w)
	at.Header("AGE", "PLAYERS")
	for _, b := range p.AgeGroups.Bins {
		at.Append(b.Label, fmt.Sprintf("%d", b.Frequency))
	}
	if p.AgeGroups.Unbinned > 0 {
		at.Append("other", fmt.Sprintf("%d", p.AgeGroups.Unbinned))
	}
	at.Render()

	if p.GoalsMinutes.Defined {
		fmt.Fprintf(w, "\n  Goals vs minutes correlation: r = %.2f\n", p.GoalsMinutes.R)
	} else {
		fmt.Fprintf(w, "\n  Goals vs minutes correlation: r = N/A\n")
	}
}

// Ranked prints a labelled value ranking, highest first. Values are whole
// counts; use RankedMeans for averaged values.
func Ranked(w io.Writer, title, labelHeader, valueHeader string, rows []stats.Ranked) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", title)
	t := newTable(w)
	t.Header("RANK", labelHeader, valueHeader)
	for i, r := range rows {
		t.Append(fmt.Sprintf("%d", i+1), r.Label, fmt.Sprintf("%.0f", r.Value))
	}
	t.Render()
}

// RankedMeans prints a labelled ranking of averaged values, highest first,
// with two decimals.
func RankedMeans(w io.Writer, title, labelHeader, valueHeader string, rows []stats.Ranked) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", title)
	t := newTable(w)
	t.Header("RANK", labelHeader, valueHeader)
	for i, r := range rows {
		t.Append(fmt.Sprintf("%d", i+1), r.Label, fmt.Sprintf("%.2f", r.Value))
	}
	t.Render()
}
