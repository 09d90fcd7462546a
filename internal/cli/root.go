// Package cli implements the statctl command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"isl-dashboard/internal/config"
	"isl-dashboard/internal/services"
)

const loadTimeout = 30 * time.Second

var (
	matchesCSV     string
	playersCSV     string
	topN           int
	zeroGoals      string
	domesticMarker string
)

var rootCmd = &cobra.Command{
	Use:   "statctl",
	Short: "ISL analytics from the command line",
	Long:  "Load the ISL match and player CSV tables and print the precomputed aggregates as tables.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&matchesCSV, "matches", "data/isl_matches.csv", "path to the match CSV")
	rootCmd.PersistentFlags().StringVar(&playersCSV, "players", "data/isl_players.csv", "path to the player CSV")
	rootCmd.PersistentFlags().IntVar(&topN, "top", 10, "rows in ranked output")
	rootCmd.PersistentFlags().StringVar(&zeroGoals, "zero-goals", "unbinned", "goalless match bin policy (unbinned or lowest)")
	rootCmd.PersistentFlags().StringVar(&domesticMarker, "domestic-marker", "IND", "nation substring that marks a player domestic")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(playersCmd)
}

func pipelineConfig() config.PipelineConfig {
	return config.PipelineConfig{
		ZeroGoals:      zeroGoals,
		DomesticMarker: domesticMarker,
		TopN:           topN,
	}
}

func loadMatches() (*services.Analytics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	a := services.NewAnalytics(pipelineConfig())
	if err := a.LoadMatchesFromCSV(ctx, matchesCSV); err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	return a, nil
}

func loadPlayers() (*services.Analytics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	a := services.NewAnalytics(pipelineConfig())
	if err := a.LoadPlayersFromCSV(ctx, playersCSV); err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	return a, nil
}
