package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"isl-dashboard/internal/report"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Show the player aggregates",
	Long: `Print the player table overview: totals, the domestic/foreign split,
top scorers and assisters, the age distribution, and the goals-vs-minutes
correlation.`,
	Args: cobra.NoArgs,
	RunE: runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	a, err := loadPlayers()
	if err != nil {
		return err
	}

	p := a.Players()
	if p.Summary.Players == 0 {
		fmt.Fprintln(os.Stdout, "No players loaded. Check the --players path.")
		return nil
	}

	report.PlayerSummary(os.Stdout, p)
	report.Ranked(os.Stdout, "Squad Goals", "SQUAD", "GOALS", p.SquadGoals)
	return nil
}
