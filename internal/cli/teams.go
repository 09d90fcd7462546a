package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"isl-dashboard/internal/report"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Show team rankings",
	Long:  "Print the wins leaderboard, the win-rate table, and the busiest venues.",
	Args:  cobra.NoArgs,
	RunE:  runTeams,
}

func runTeams(cmd *cobra.Command, args []string) error {
	a, err := loadMatches()
	if err != nil {
		return err
	}

	m := a.Matches()
	if m.Summary.Matches == 0 {
		fmt.Fprintln(os.Stdout, "No matches loaded. Check the --matches path.")
		return nil
	}

	report.Leaderboard(os.Stdout, m)
	report.TeamPerformance(os.Stdout, m)
	report.RankedMeans(os.Stdout, "Top Venues", "VENUE", "AVG GOALS", m.TopVenues)
	return nil
}
