package services

import (
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"isl-dashboard/internal/config"
	"isl-dashboard/internal/dataset"
	"isl-dashboard/internal/models"
	"isl-dashboard/internal/stats"
)

const (
	cacheVersion = "v1"
	cacheDir     = ".cache"
	topSquads    = 5
)

// MatchAnalytics is the precomputed result set for the match dashboard: one
// entry per aggregation request in the match catalog.
type MatchAnalytics struct {
	Summary          models.SummaryStats       `json:"summary"`
	Winners          models.WinnerDistribution `json:"winners"`
	Leaders          []models.TeamWins         `json:"leaders"`
	GoalTrend        []stats.GroupMean         `json:"goal_trend"`
	GoalBins         stats.BinTally            `json:"goal_bins"`
	DayMeans         []stats.GroupMean         `json:"day_means"`
	MonthMeans       []stats.GroupMean         `json:"month_means"`
	TopVenues        []stats.Ranked            `json:"top_venues"`
	Scores           stats.ScoreMatrix         `json:"scores"`
	Yearly           []models.YearlyStat       `json:"yearly"`
	TeamTable        []models.TeamPerformance  `json:"team_table"`
	AttendanceByYear []stats.GroupMean         `json:"attendance_by_year"`

	RecordCount  int64     `json:"record_count"`
	Skipped      int       `json:"skipped"`
	LastModified time.Time `json:"last_modified"`
}

// SquadMinutes carries the raw minutes samples for one squad's box trace.
type SquadMinutes struct {
	Squad   string    `json:"squad"`
	Minutes []float64 `json:"minutes"`
}

// ScatterStudy is a paired-field study: the points plus their Pearson
// coefficient. Defined is false when the coefficient is undetermined.
type ScatterStudy struct {
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Labels  []string  `json:"labels"`
	R       float64   `json:"r"`
	Defined bool      `json:"defined"`
}

// PlayerAnalytics is the precomputed result set for the player dashboard.
type PlayerAnalytics struct {
	Summary      models.PlayerSummary `json:"summary"`
	TopScorers   []stats.Ranked       `json:"top_scorers"`
	TopAssisters []stats.Ranked       `json:"top_assisters"`
	AgeGroups    stats.BinTally       `json:"age_groups"`
	TypeSplit    models.TypeSplit     `json:"type_split"`
	SquadGoals   []stats.Ranked       `json:"squad_goals"`
	SquadMinutes []SquadMinutes       `json:"squad_minutes"`
	GoalsMinutes ScatterStudy         `json:"goals_minutes"`

	RecordCount  int64     `json:"record_count"`
	Skipped      int       `json:"skipped"`
	LastModified time.Time `json:"last_modified"`
}

// Analytics loads both datasets and serves precomputed aggregates. The
// pipeline itself is pure; this layer owns the load, the precompute cache,
// and the RWMutex-guarded snapshot swap.
type Analytics struct {
	mu      sync.RWMutex
	matches *MatchAnalytics
	players *PlayerAnalytics
	cfg     config.PipelineConfig
	logger  *slog.Logger

	matchesPath string
	playersPath string
}

func NewAnalytics(cfg config.PipelineConfig) *Analytics {
	if cfg.TopN <= 0 {
		cfg.TopN = 10
	}
	return &Analytics{
		matches: &MatchAnalytics{},
		players: &PlayerAnalytics{},
		cfg:     cfg,
		logger:  slog.Default(),
	}
}

func (a *Analytics) loadOptions() dataset.Options {
	return dataset.Options{
		ZeroGoals:      a.cfg.ZeroGoalPolicy(),
		DomesticMarker: a.cfg.DomesticMarker,
	}
}

// SetMatches recomputes match analytics from in-memory rows, assuming the
// full expected schema. Used by tests and by the degraded "table
// unavailable" path.
func (a *Analytics) SetMatches(rows []models.Match) error {
	computed, err := a.computeMatches(rows, models.MatchColumns, 0)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.matches = computed
	a.mu.Unlock()
	return nil
}

func (a *Analytics) SetPlayers(rows []models.Player) error {
	computed, err := a.computePlayers(rows, models.PlayerColumns, 0)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.players = computed
	a.mu.Unlock()
	return nil
}

// LoadMatchesFromCSV loads, derives, and precomputes the match dataset. A
// missing or unreadable file degrades to an empty table (neutral aggregates)
// and returns the load error for the caller to log; a catalog schema
// mismatch is returned as-is.
func (a *Analytics) LoadMatchesFromCSV(ctx context.Context, filename string) error {
	a.mu.Lock()
	a.matchesPath = filename
	a.mu.Unlock()

	if cached, ok := loadCache[MatchAnalytics](cacheFilename(filename, "matches"), filename); ok {
		a.mu.Lock()
		a.matches = cached
		a.mu.Unlock()
		a.logger.Info("match analytics loaded from cache", "records", cached.RecordCount)
		return nil
	}

	start := time.Now()
	table, loadErr := dataset.LoadMatches(ctx, filename, a.loadOptions())
	if loadErr != nil {
		if setErr := a.SetMatches(nil); setErr != nil {
			return setErr
		}
		return fmt.Errorf("matches table unavailable: %w", loadErr)
	}

	computed, err := a.computeMatches(table.Rows, table.Columns, table.Skipped)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.matches = computed
	a.mu.Unlock()

	if err := saveCache(cacheFilename(filename, "matches"), computed); err != nil {
		a.logger.Warn("failed to save match cache", "error", err)
	}
	a.logger.Info("match csv processed",
		"records", len(table.Rows),
		"skipped", table.Skipped,
		"duration", time.Since(start),
	)
	return nil
}

func (a *Analytics) LoadPlayersFromCSV(ctx context.Context, filename string) error {
	a.mu.Lock()
	a.playersPath = filename
	a.mu.Unlock()

	if cached, ok := loadCache[PlayerAnalytics](cacheFilename(filename, "players"), filename); ok {
		a.mu.Lock()
		a.players = cached
		a.mu.Unlock()
		a.logger.Info("player analytics loaded from cache", "records", cached.RecordCount)
		return nil
	}

	start := time.Now()
	table, loadErr := dataset.LoadPlayers(ctx, filename, a.loadOptions())
	if loadErr != nil {
		if setErr := a.SetPlayers(nil); setErr != nil {
			return setErr
		}
		return fmt.Errorf("players table unavailable: %w", loadErr)
	}

	computed, err := a.computePlayers(table.Rows, table.Columns, table.Skipped)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.players = computed
	a.mu.Unlock()

	if err := saveCache(cacheFilename(filename, "players"), computed); err != nil {
		a.logger.Warn("failed to save player cache", "error", err)
	}
	a.logger.Info("player csv processed",
		"records", len(table.Rows),
		"skipped", table.Skipped,
		"duration", time.Since(start),
	)
	return nil
}

// Reload re-reads both CSVs from the paths of the last load, bypassing the
// precompute cache. Tables never loaded from a file are left alone.
func (a *Analytics) Reload(ctx context.Context) error {
	a.mu.RLock()
	matchesPath, playersPath := a.matchesPath, a.playersPath
	a.mu.RUnlock()

	if matchesPath != "" {
		os.Remove(cacheFilename(matchesPath, "matches"))
		if err := a.LoadMatchesFromCSV(ctx, matchesPath); err != nil {
			return err
		}
	}
	if playersPath != "" {
		os.Remove(cacheFilename(playersPath, "players"))
		if err := a.LoadPlayersFromCSV(ctx, playersPath); err != nil {
			return err
		}
	}
	return nil
}

// computeMatches runs the match aggregation catalog. Each request names the
// columns it reads so a schema drift in the CSV surfaces as a configuration
// error instead of silently empty charts.
func (a *Analytics) computeMatches(rows []models.Match, columns []string, skipped int) (*MatchAnalytics, error) {
	topN := a.cfg.TopN
	bins := stats.GoalRangeBins(a.cfg.ZeroGoalPolicy())

	cat := stats.NewCatalog(columns)
	cat.Add("summary", []string{"Year", "total_goals", "Attendance"}, func() any {
		return stats.Summary(rows)
	})
	cat.Add("winner_distribution", []string{"winner", "Home", "Away"}, func() any {
		return stats.WinnerDistribution(rows)
	})
	cat.Add("leaderboard", []string{"winner", "Home", "Away"}, func() any {
		return stats.Leaderboard(rows, topN)
	})
	cat.Add("goal_trend", []string{"Date", "total_goals"}, func() any {
		samples := make([]stats.Sample, len(rows))
		for i, m := range rows {
			samples[i] = stats.Sample{Key: m.Date.Format("2006-01-02"), Value: float64(m.TotalGoals)}
		}
		return stats.GroupedMean(samples, nil)
	})
	cat.Add("goal_bins", []string{"total_goals"}, func() any {
		values := make([]float64, len(rows))
		for i, m := range rows {
			values[i] = float64(m.TotalGoals)
		}
		return stats.BinAndCount(values, bins)
	})
	cat.Add("day_means", []string{"Day", "total_goals"}, func() any {
		samples := make([]stats.Sample, len(rows))
		for i, m := range rows {
			samples[i] = stats.Sample{Key: m.Day, Value: float64(m.TotalGoals)}
		}
		return stats.GroupedMean(samples, stats.WeekdayOrder)
	})
	cat.Add("month_means", []string{"Date", "total_goals"}, func() any {
		samples := make([]stats.Sample, len(rows))
		for i, m := range rows {
			samples[i] = stats.Sample{Key: m.MonthName, Value: float64(m.TotalGoals)}
		}
		return stats.GroupedMean(samples, stats.MonthOrder)
	})
	cat.Add("top_venues", []string{"Venue", "total_goals"}, func() any {
		samples := make([]stats.Sample, 0, len(rows))
		for _, m := range rows {
			if m.Venue != "" {
				samples = append(samples, stats.Sample{Key: m.Venue, Value: float64(m.TotalGoals)})
			}
		}
		means := stats.GroupedMean(samples, nil)
		ranked := make([]stats.Ranked, len(means))
		for i, gm := range means {
			ranked[i] = stats.Ranked{Label: gm.Key, Value: gm.Mean}
		}
		return stats.TopNBy(ranked, topN)
	})
	cat.Add("score_matrix", []string{"home_team_score", "away_team_score"}, func() any {
		return stats.ScoreFrequency(rows)
	})
	cat.Add("yearly", []string{"Year", "total_goals"}, func() any {
		return stats.YearlyStats(rows)
	})
	cat.Add("team_table", []string{"Home", "Away", "winner", "home_team_score", "away_team_score"}, func() any {
		table := stats.TeamPerformanceTable(rows)
		if len(table) > topN {
			table = table[:topN]
		}
		return table
	})
	cat.Add("attendance_by_year", []string{"Year", "Attendance"}, func() any {
		samples := make([]stats.Sample, len(rows))
		for i, m := range rows {
			samples[i] = stats.Sample{Key: strconv.Itoa(m.Year), Value: m.Attendance}
		}
		return stats.GroupedMean(samples, nil)
	})

	results, err := cat.Run()
	if err != nil {
		return nil, err
	}

	return &MatchAnalytics{
		Summary:          results["summary"].(models.SummaryStats),
		Winners:          results["winner_distribution"].(models.WinnerDistribution),
		Leaders:          results["leaderboard"].([]models.TeamWins),
		GoalTrend:        results["goal_trend"].([]stats.GroupMean),
		GoalBins:         results["goal_bins"].(stats.BinTally),
		DayMeans:         results["day_means"].([]stats.GroupMean),
		MonthMeans:       results["month_means"].([]stats.GroupMean),
		TopVenues:        results["top_venues"].([]stats.Ranked),
		Scores:           results["score_matrix"].(stats.ScoreMatrix),
		Yearly:           results["yearly"].([]models.YearlyStat),
		TeamTable:        results["team_table"].([]models.TeamPerformance),
		AttendanceByYear: results["attendance_by_year"].([]stats.GroupMean),
		RecordCount:      int64(len(rows)),
		Skipped:          skipped,
		LastModified:     time.Now(),
	}, nil
}

func (a *Analytics) computePlayers(rows []models.Player, columns []string, skipped int) (*PlayerAnalytics, error) {
	topN := a.cfg.TopN
	classifier := stats.NewNationClassifier(a.cfg.DomesticMarker)

	cat := stats.NewCatalog(columns)
	cat.Add("summary", []string{"Player", "Squad", "Age", "Goals", "Assists"}, func() any {
		return playerSummary(rows)
	})
	cat.Add("top_scorers", []string{"Player", "Goals"}, func() any {
		ranked := make([]stats.Ranked, len(rows))
		for i, p := range rows {
			ranked[i] = stats.Ranked{Label: p.Name, Value: float64(p.Goals)}
		}
		return stats.TopNBy(ranked, topN)
	})
	cat.Add("top_assisters", []string{"Player", "Assists"}, func() any {
		ranked := make([]stats.Ranked, len(rows))
		for i, p := range rows {
			ranked[i] = stats.Ranked{Label: p.Name, Value: float64(p.Assists)}
		}
		return stats.TopNBy(ranked, topN)
	})
	cat.Add("age_groups", []string{"Age"}, func() any {
		values := make([]float64, len(rows))
		for i, p := range rows {
			values[i] = float64(p.Age)
		}
		return stats.BinAndCount(values, stats.AgeGroupBins())
	})
	cat.Add("type_split", []string{"Nation"}, func() any {
		return classifier.Split(rows)
	})
	cat.Add("squad_goals", []string{"Squad", "Goals"}, func() any {
		totals := make(map[string]float64)
		var order []string
		for _, p := range rows {
			if p.Squad == "" {
				continue
			}
			if _, ok := totals[p.Squad]; !ok {
				order = append(order, p.Squad)
			}
			totals[p.Squad] += float64(p.Goals)
		}
		ranked := make([]stats.Ranked, len(order))
		for i, squad := range order {
			ranked[i] = stats.Ranked{Label: squad, Value: totals[squad]}
		}
		return stats.TopNBy(ranked, topN)
	})
	cat.Add("squad_minutes", []string{"Squad", "Minutes"}, func() any {
		return minutesBySquad(rows)
	})
	cat.Add("goals_minutes", []string{"Player", "Minutes", "Goals"}, func() any {
		study := ScatterStudy{
			X:      make([]float64, len(rows)),
			Y:      make([]float64, len(rows)),
			Labels: make([]string, len(rows)),
		}
		for i, p := range rows {
			study.X[i] = float64(p.Minutes)
			study.Y[i] = float64(p.Goals)
			study.Labels[i] = p.Name
		}
		study.R, study.Defined = stats.Correlation(study.X, study.Y)
		if !study.Defined {
			// JSON cannot carry the NaN sentinel; Defined=false is the
			// undefined marker on the wire.
			study.R = 0
		}
		return study
	})

	results, err := cat.Run()
	if err != nil {
		return nil, err
	}

	return &PlayerAnalytics{
		Summary:      results["summary"].(models.PlayerSummary),
		TopScorers:   results["top_scorers"].([]stats.Ranked),
		TopAssisters: results["top_assisters"].([]stats.Ranked),
		AgeGroups:    results["age_groups"].(stats.BinTally),
		TypeSplit:    results["type_split"].(models.TypeSplit),
		SquadGoals:   results["squad_goals"].([]stats.Ranked),
		SquadMinutes: results["squad_minutes"].([]SquadMinutes),
		GoalsMinutes: results["goals_minutes"].(ScatterStudy),
		RecordCount:  int64(len(rows)),
		Skipped:      skipped,
		LastModified: time.Now(),
	}, nil
}

func playerSummary(rows []models.Player) models.PlayerSummary {
	var s models.PlayerSummary
	s.Players = len(rows)
	if len(rows) == 0 {
		return s
	}
	squads := make(map[string]struct{})
	ageSum := 0
	for _, p := range rows {
		if p.Squad != "" {
			squads[p.Squad] = struct{}{}
		}
		s.TotalGoals += p.Goals
		s.TotalAssists += p.Assists
		ageSum += p.Age
	}
	s.Squads = len(squads)
	s.AvgAge = math.Round(float64(ageSum)/float64(len(rows))*10) / 10
	return s
}

// minutesBySquad keeps raw minutes per squad for the busiest squads, feeding
// the box chart.
func minutesBySquad(rows []models.Player) []SquadMinutes {
	bySquad := make(map[string][]float64)
	for _, p := range rows {
		if p.Squad != "" {
			bySquad[p.Squad] = append(bySquad[p.Squad], float64(p.Minutes))
		}
	}

	squads := make([]string, 0, len(bySquad))
	for squad := range bySquad {
		squads = append(squads, squad)
	}
	sort.Slice(squads, func(i, j int) bool {
		if len(bySquad[squads[i]]) == len(bySquad[squads[j]]) {
			return squads[i] < squads[j]
		}
		return len(bySquad[squads[i]]) > len(bySquad[squads[j]])
	})
	if len(squads) > topSquads {
		squads = squads[:topSquads]
	}

	out := make([]SquadMinutes, len(squads))
	for i, squad := range squads {
		out[i] = SquadMinutes{Squad: squad, Minutes: bySquad[squad]}
	}
	return out
}

// Matches returns the current match snapshot. The pointer is never mutated
// after publication, so readers need no further locking.
func (a *Analytics) Matches() *MatchAnalytics {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.matches
}

func (a *Analytics) Players() *PlayerAnalytics {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.players
}

// Stats reports load counters for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return map[string]any{
		"match_records":  a.matches.RecordCount,
		"match_skipped":  a.matches.Skipped,
		"matches_loaded": a.matches.LastModified,
		"player_records": a.players.RecordCount,
		"player_skipped": a.players.Skipped,
		"players_loaded": a.players.LastModified,
	}
}

// Precompute cache. The pipeline stays pure; this layer owns the caching
// decision, keyed on source path and invalidated by file mtime.

func cacheFilename(csvPath, kind string) string {
	return fmt.Sprintf("%s/%s_%s_%s.gob", cacheDir, strings.ReplaceAll(csvPath, "/", "_"), kind, cacheVersion)
}

func saveCache(filename string, v any) error {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(v)
}

// loadCache returns the cached value when it exists and is newer than the
// source CSV.
func loadCache[T interface{ modified() time.Time }](filename, csvPath string) (*T, bool) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var v T
	if err := gob.NewDecoder(f).Decode(&v); err != nil {
		return nil, false
	}
	info, err := os.Stat(csvPath)
	if err != nil || info.ModTime().After(v.modified()) {
		return nil, false
	}
	return &v, true
}

func (m MatchAnalytics) modified() time.Time  { return m.LastModified }
func (p PlayerAnalytics) modified() time.Time { return p.LastModified }
