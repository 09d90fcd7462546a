package charts

import (
	"strconv"

	"isl-dashboard/internal/services"
	"isl-dashboard/internal/stats"
)

// MatchFigures builds the full match-page chart set, keyed by the div id
// each figure renders into.
func MatchFigures(m *services.MatchAnalytics) map[string]Figure {
	figs := make(map[string]Figure, 9)

	figs["goal-trend"] = Line("Goals Trend Over All Seasons", "Match Date", "Average Goals",
		groupKeys(m.GoalTrend), groupMeans(m.GoalTrend))

	figs["winner-split"] = Pie("Home vs Away Wins Distribution",
		[]string{"Home Wins", "Away Wins", "Draws"},
		[]float64{float64(m.Winners.HomeWins), float64(m.Winners.AwayWins), float64(m.Winners.Draws)},
		0.4)

	figs["goal-distribution"] = Bar("Goal Distribution Across All Matches", "Goals", "Frequency",
		binLabels(m.GoalBins), binFrequencies(m.GoalBins))

	figs["day-goals"] = Bar("Average Goals by Day of Week", "Day of Week", "Average Goals",
		groupKeys(m.DayMeans), groupMeans(m.DayMeans))

	figs["top-venues"] = HBar("Top Venues by Average Goals", "Average Goals",
		rankedLabels(m.TopVenues), rankedValues(m.TopVenues))

	figs["score-heatmap"] = Heatmap("Scoring Patterns (Home vs Away Score Frequency)",
		"Home Team Score", "Away Team Score",
		m.Scores.HomeScores, m.Scores.AwayScores, m.Scores.Counts)

	years := make([]string, len(m.Yearly))
	counts := make([]float64, len(m.Yearly))
	avgs := make([]float64, len(m.Yearly))
	for i, y := range m.Yearly {
		years[i] = strconv.Itoa(y.Year)
		counts[i] = float64(y.Matches)
		avgs[i] = y.AvgGoals
	}
	figs["yearly-trends"] = DualAxis("Yearly Trends: Matches and Average Goals",
		years, "Matches Played", counts, "Avg Goals", avgs)

	teams := make([]string, len(m.TeamTable))
	rates := make([]float64, len(m.TeamTable))
	for i, t := range m.TeamTable {
		teams[i] = t.Team
		rates[i] = t.WinRate
	}
	figs["team-winrate"] = HBar("Top Teams by Win Rate (%)", "Win Rate", teams, rates)

	figs["attendance"] = LineWithMarkers("Average Attendance by Year", "Year", "Average Attendance",
		groupKeys(m.AttendanceByYear), groupMeans(m.AttendanceByYear))

	return figs
}

// PlayerFigures builds the player-page chart set.
func PlayerFigures(p *services.PlayerAnalytics) map[string]Figure {
	figs := make(map[string]Figure, 7)

	figs["top-scorers"] = Bar("Top Scorers", "Player", "Goals",
		rankedLabels(p.TopScorers), rankedValues(p.TopScorers))

	figs["top-assisters"] = Bar("Top Assisters", "Player", "Assists",
		rankedLabels(p.TopAssisters), rankedValues(p.TopAssisters))

	figs["age-groups"] = Bar("Players by Age Group", "Age Group", "Players",
		binLabels(p.AgeGroups), binFrequencies(p.AgeGroups))

	figs["player-type"] = Pie("Domestic vs Foreign Players",
		[]string{"Domestic", "Foreign"},
		[]float64{float64(p.TypeSplit.Domestic), float64(p.TypeSplit.Foreign)},
		0.4)

	figs["squad-goals"] = HBar("Goals by Squad", "Goals",
		rankedLabels(p.SquadGoals), rankedValues(p.SquadGoals))

	names := make([]string, len(p.SquadMinutes))
	series := make([][]float64, len(p.SquadMinutes))
	for i, sm := range p.SquadMinutes {
		names[i] = sm.Squad
		series[i] = sm.Minutes
	}
	figs["squad-minutes"] = Box("Minutes Played by Squad", "Minutes", names, series)

	figs["goals-minutes"] = Scatter("Goals vs Minutes Played", "Minutes", "Goals",
		p.GoalsMinutes.X, p.GoalsMinutes.Y, p.GoalsMinutes.Labels,
		p.GoalsMinutes.R, p.GoalsMinutes.Defined)

	return figs
}

func groupKeys(gs []stats.GroupMean) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Key
	}
	return out
}

func groupMeans(gs []stats.GroupMean) []float64 {
	out := make([]float64, len(gs))
	for i, g := range gs {
		out[i] = g.Mean
	}
	return out
}

func rankedLabels(rs []stats.Ranked) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Label
	}
	return out
}

func rankedValues(rs []stats.Ranked) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Value
	}
	return out
}

func binLabels(t stats.BinTally) []string {
	out := make([]string, len(t.Bins))
	for i, b := range t.Bins {
		out[i] = b.Label
	}
	return out
}

func binFrequencies(t stats.BinTally) []float64 {
	out := make([]float64, len(t.Bins))
	for i, b := range t.Bins {
		out[i] = float64(b.Frequency)
	}
	return out
}
