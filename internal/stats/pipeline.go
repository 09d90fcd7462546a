// Package stats is the aggregation pipeline: pure, synchronous transforms
// from loaded rows to the summary figures and chart sub-tables the dashboard
// renders. Nothing here keeps state between calls, so every function is safe
// to invoke from concurrent requests.
package stats

import (
	"math"
	"slices"
	"sort"
	"strings"

	"isl-dashboard/internal/models"
)

// WeekdayOrder and MonthOrder are the canonical orderings for grouped output
// keyed on those fields. Groups absent from the input are omitted, never
// zero-filled.
var (
	WeekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	MonthOrder   = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

// Sample is one (group key, value) observation fed to GroupedMean.
type Sample struct {
	Key   string
	Value float64
}

type GroupMean struct {
	Key   string  `json:"key"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// Ranked is a (label, value) pair for top-N projections.
type Ranked struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// isDraw reports whether a winner cell denotes a draw: empty, missing, or the
// literal "Draw" in any casing.
func isDraw(winner string) bool {
	w := strings.TrimSpace(winner)
	return w == "" || strings.EqualFold(w, "draw")
}

func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

// Summary computes the stat-card figures. Attendance cells recorded as NaN
// are excluded from both the total and the mean. An empty table yields zero
// values.
func Summary(matches []models.Match) models.SummaryStats {
	var s models.SummaryStats
	s.Matches = len(matches)
	if len(matches) == 0 {
		return s
	}

	seasons := make(map[int]struct{})
	attSum, attN := 0.0, 0
	for _, m := range matches {
		seasons[m.Year] = struct{}{}
		s.TotalGoals += m.TotalGoals
		if !math.IsNaN(m.Attendance) {
			attSum += m.Attendance
			attN++
		}
	}
	s.Seasons = len(seasons)
	s.AvgGoals = round(float64(s.TotalGoals)/float64(len(matches)), 2)
	s.TotalAttendance = attSum
	if attN > 0 {
		s.AvgAttendance = round(attSum/float64(attN), 0)
	}
	return s
}

// WinnerDistribution counts home wins, away wins, and draws. Each row lands
// in exactly one bucket: draw rule first, then Home, then Away, so the three
// counts always sum to the row count.
func WinnerDistribution(matches []models.Match) models.WinnerDistribution {
	var d models.WinnerDistribution
	for _, m := range matches {
		switch {
		case isDraw(m.Winner):
			d.Draws++
		case m.Winner == m.Home:
			d.HomeWins++
		case m.Winner == m.Away:
			d.AwayWins++
		default:
			// Winner names neither side; the match decided nothing we can
			// attribute, treat as a draw rather than invent a win.
			d.Draws++
		}
	}
	return d
}

// Leaderboard counts wins per team, draws excluded entirely. Output is
// descending by wins with ties broken by the team's first appearance in the
// source table, truncated to topN (topN <= 0 means no truncation).
func Leaderboard(matches []models.Match, topN int) []models.TeamWins {
	wins := make(map[string]int)
	var appearance []string
	seen := make(map[string]struct{})

	note := func(team string) {
		if _, ok := seen[team]; !ok && team != "" {
			seen[team] = struct{}{}
			appearance = append(appearance, team)
		}
	}
	for _, m := range matches {
		note(m.Home)
		note(m.Away)
		if !isDraw(m.Winner) {
			wins[m.Winner]++
		}
	}

	board := make([]models.TeamWins, 0, len(wins))
	for _, team := range appearance {
		if w, ok := wins[team]; ok {
			board = append(board, models.TeamWins{Team: team, Wins: w})
		}
	}
	slices.SortStableFunc(board, func(a, b models.TeamWins) int {
		return b.Wins - a.Wins
	})
	if topN > 0 && len(board) > topN {
		board = board[:topN]
	}
	return board
}

// GroupedMean computes the arithmetic mean of Value per distinct Key. NaN
// values are excluded from the mean; a key whose every value is NaN is
// dropped. When order is non-nil the output follows it, keeping only keys
// present in the input; otherwise keys sort ascending. Grouping over more
// than one field is done by composing the fields into the Key string before
// calling.
func GroupedMean(samples []Sample, order []string) []GroupMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range samples {
		if math.IsNaN(s.Value) {
			continue
		}
		sums[s.Key] += s.Value
		counts[s.Key]++
	}

	keys := order
	if keys == nil {
		keys = make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}

	out := make([]GroupMean, 0, len(counts))
	for _, k := range keys {
		n, ok := counts[k]
		if !ok {
			continue
		}
		out = append(out, GroupMean{Key: k, Mean: sums[k] / float64(n), Count: n})
	}
	return out
}

// TopNBy sorts descending by value with a stable tie-break on original order
// and truncates to n (n <= 0 means no truncation). Already-sorted input
// passes through unchanged.
func TopNBy(items []Ranked, n int) []Ranked {
	out := make([]Ranked, len(items))
	copy(out, items)
	slices.SortStableFunc(out, func(a, b Ranked) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Correlation is the Pearson coefficient over pairs where both values are
// present (non-NaN), clamped to [-1,1] and rounded to 2 decimals. ok is
// false when fewer than 2 valid pairs exist or either side has zero
// variance; callers display that as N/A instead of a fabricated number.
func Correlation(xs, ys []float64) (r float64, ok bool) {
	n := 0.0
	var sx, sy, sxx, syy, sxy float64
	limit := min(len(xs), len(ys))
	for i := 0; i < limit; i++ {
		x, y := xs[i], ys[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		n++
		sx += x
		sy += y
		sxx += x * x
		syy += y * y
		sxy += x * y
	}
	if n < 2 {
		return math.NaN(), false
	}
	denom := math.Sqrt((n*sxx - sx*sx) * (n*syy - sy*sy))
	if denom == 0 || math.IsNaN(denom) {
		return math.NaN(), false
	}
	r = (n*sxy - sx*sy) / denom
	r = math.Max(-1, math.Min(1, r))
	return round(r, 2), true
}

// ScoreMatrix is the home-score x away-score frequency table behind the
// scoring heatmap. Counts is indexed [away][home], matching the axes.
type ScoreMatrix struct {
	HomeScores []int   `json:"home_scores"`
	AwayScores []int   `json:"away_scores"`
	Counts     [][]int `json:"counts"`
}

// ScoreFrequency cross-tabulates final scores. Axes cover every score value
// observed on that side, ascending; cells with no matches hold zero.
func ScoreFrequency(matches []models.Match) ScoreMatrix {
	freq := make(map[[2]int]int)
	homeSet := make(map[int]struct{})
	awaySet := make(map[int]struct{})
	for _, m := range matches {
		freq[[2]int{m.HomeScore, m.AwayScore}]++
		homeSet[m.HomeScore] = struct{}{}
		awaySet[m.AwayScore] = struct{}{}
	}

	sm := ScoreMatrix{
		HomeScores: sortedInts(homeSet),
		AwayScores: sortedInts(awaySet),
	}
	sm.Counts = make([][]int, len(sm.AwayScores))
	for i, as := range sm.AwayScores {
		row := make([]int, len(sm.HomeScores))
		for j, hs := range sm.HomeScores {
			row[j] = freq[[2]int{hs, as}]
		}
		sm.Counts[i] = row
	}
	return sm
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// TeamPerformanceTable rolls up matches, wins, and goals per team, sorted
// descending by win rate with an alphabetical stable tie-break.
func TeamPerformanceTable(matches []models.Match) []models.TeamPerformance {
	type acc struct {
		matches, wins, goals int
	}
	teams := make(map[string]*acc)
	get := func(name string) *acc {
		if name == "" {
			return nil
		}
		a, ok := teams[name]
		if !ok {
			a = &acc{}
			teams[name] = a
		}
		return a
	}

	for _, m := range matches {
		if h := get(m.Home); h != nil {
			h.matches++
			h.goals += m.HomeScore
		}
		if a := get(m.Away); a != nil {
			a.matches++
			a.goals += m.AwayScore
		}
		if !isDraw(m.Winner) {
			if w, ok := teams[m.Winner]; ok {
				w.wins++
			}
		}
	}

	names := make([]string, 0, len(teams))
	for name := range teams {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.TeamPerformance, 0, len(names))
	for _, name := range names {
		a := teams[name]
		tp := models.TeamPerformance{
			Team:    name,
			Matches: a.matches,
			Wins:    a.wins,
			Goals:   a.goals,
		}
		if a.matches > 0 {
			tp.WinRate = round(float64(a.wins)/float64(a.matches)*100, 1)
		}
		out = append(out, tp)
	}
	slices.SortStableFunc(out, func(a, b models.TeamPerformance) int {
		switch {
		case a.WinRate > b.WinRate:
			return -1
		case a.WinRate < b.WinRate:
			return 1
		default:
			return 0
		}
	})
	return out
}

// YearlyStats reports match count and mean goals per season, ascending by
// year.
func YearlyStats(matches []models.Match) []models.YearlyStat {
	counts := make(map[int]int)
	goals := make(map[int]int)
	for _, m := range matches {
		counts[m.Year]++
		goals[m.Year] += m.TotalGoals
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]models.YearlyStat, 0, len(years))
	for _, y := range years {
		out = append(out, models.YearlyStat{
			Year:     y,
			Matches:  counts[y],
			AvgGoals: float64(goals[y]) / float64(counts[y]),
		})
	}
	return out
}
