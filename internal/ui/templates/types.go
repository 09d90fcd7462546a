package templates

import "isl-dashboard/internal/models"

// DashboardData is the server-rendered portion of the match page; the
// charts themselves load client-side from the API.
type DashboardData struct {
	Summary models.SummaryStats
	Winners models.WinnerDistribution
}

// PlayersData is the server-rendered portion of the players page.
type PlayersData struct {
	Summary   models.PlayerSummary
	TypeSplit models.TypeSplit
}
