package models

// PlayerType classifies a player by the national-identifier marker in the
// Nation field.
type PlayerType string

const (
	Domestic PlayerType = "Domestic"
	Foreign  PlayerType = "Foreign"
)

// Player is one row of the player season stats CSV. AgeGroup and Type are
// derived at load time.
type Player struct {
	Name          string
	Squad         string
	Nation        string // free text, carries a country code token
	Age           int
	Minutes       int
	Goals         int
	Assists       int
	MatchesPlayed int
	Starts        int
	YellowCards   int
	RedCards      int

	AgeGroup string
	Type     PlayerType
}

// PlayerColumns is the header the loader expects for player data.
var PlayerColumns = []string{
	"Player", "Squad", "Nation", "Age", "Minutes", "Goals", "Assists",
	"Matches_Played", "Starts", "Yellow_Cards", "Red_Cards",
}

type PlayerSummary struct {
	Players      int     `json:"players"`
	Squads       int     `json:"squads"`
	TotalGoals   int     `json:"total_goals"`
	TotalAssists int     `json:"total_assists"`
	AvgAge       float64 `json:"avg_age"`
}

type TypeSplit struct {
	Domestic int `json:"domestic"`
	Foreign  int `json:"foreign"`
}
