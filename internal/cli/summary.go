package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"isl-dashboard/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the headline match aggregates",
	Long: `Print the match table overview: totals, the home/away/draw split,
the goals-per-match distribution, weekday scoring averages, and the
per-season trend.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, err := loadMatches()
	if err != nil {
		return err
	}

	m := a.Matches()
	if m.Summary.Matches == 0 {
		fmt.Fprintln(os.Stdout, "No matches loaded. Check the --matches path.")
		return nil
	}

	report.MatchSummary(os.Stdout, m)
	report.GroupMeans(os.Stdout, "Goals by Weekday", "DAY", m.DayMeans)
	report.Yearly(os.Stdout, m)
	return nil
}
