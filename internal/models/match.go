package models

import "time"

// Match is one row of the match results CSV. MonthName and GoalRange are
// derived at load time and never persisted.
type Match struct {
	Date       time.Time
	Year       int
	Day        string // short weekday code: Mon..Sun
	Home       string
	Away       string
	Winner     string // team name, "Draw", or empty when the source cell is null
	TotalGoals int
	Attendance float64 // NaN when the source cell is missing
	Venue      string
	HomeScore  int
	AwayScore  int

	MonthName string
	GoalRange string // bin label, empty when the value falls outside all bins
}

// MatchColumns is the header the loader expects for match data.
var MatchColumns = []string{
	"Date", "Year", "Day", "Home", "Away", "winner",
	"total_goals", "Attendance", "Venue", "home_team_score", "away_team_score",
}

type SummaryStats struct {
	Matches         int     `json:"matches"`
	Seasons         int     `json:"seasons"`
	TotalGoals      int     `json:"total_goals"`
	AvgGoals        float64 `json:"avg_goals_per_match"`
	AvgAttendance   float64 `json:"avg_attendance"`
	TotalAttendance float64 `json:"total_attendance"`
}

type WinnerDistribution struct {
	HomeWins int `json:"home_wins"`
	AwayWins int `json:"away_wins"`
	Draws    int `json:"draws"`
}

type TeamWins struct {
	Team string `json:"team"`
	Wins int    `json:"wins"`
}

// TeamPerformance is the per-team rollup behind the win-rate chart.
type TeamPerformance struct {
	Team    string  `json:"team"`
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	Goals   int     `json:"goals"`
	WinRate float64 `json:"win_rate"`
}

type YearlyStat struct {
	Year     int     `json:"year"`
	Matches  int     `json:"matches"`
	AvgGoals float64 `json:"avg_goals"`
}
