package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"isl-dashboard/internal/config"
	"isl-dashboard/internal/models"
	"isl-dashboard/internal/services"
	"isl-dashboard/internal/stats"
)

func createTestAnalytics(t *testing.T) *services.Analytics {
	t.Helper()
	a := services.NewAnalytics(config.PipelineConfig{
		ZeroGoals:      string(stats.ZeroGoalsUnbinned),
		DomesticMarker: "IND",
		TopN:           10,
	})

	nov20, _ := time.Parse("2006-01-02", "2021-11-20")
	nov21, _ := time.Parse("2006-01-02", "2021-11-21")
	matches := []models.Match{
		{
			Date: nov20, Year: 2021, Day: "Sat", MonthName: "November",
			Home: "Goa", Away: "Pune", Winner: "Goa",
			TotalGoals: 3, Attendance: 12000, Venue: "Fatorda",
			HomeScore: 2, AwayScore: 1,
		},
		{
			Date: nov21, Year: 2021, Day: "Sun", MonthName: "November",
			Home: "Kerala", Away: "Mumbai", Winner: "Draw",
			TotalGoals: 2, Attendance: math.NaN(), Venue: "Kochi",
			HomeScore: 1, AwayScore: 1,
		},
	}
	if err := a.SetMatches(matches); err != nil {
		t.Fatal(err)
	}

	players := []models.Player{
		{Name: "Chhetri", Squad: "Bengaluru", Nation: "IND", Age: 37, Minutes: 1800, Goals: 12, Assists: 3},
		{Name: "Boumous", Squad: "Goa", Nation: "FRA", Age: 26, Minutes: 1500, Goals: 11, Assists: 8},
	}
	if err := a.SetPlayers(players); err != nil {
		t.Fatal(err)
	}
	return a
}

func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %q, want application/json", ct)
	}

	var response map[string]any
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}
	return response
}

func TestNewAPIHandlers(t *testing.T) {
	analytics := createTestAnalytics(t)
	handlers := NewAPIHandlers(analytics, slog.Default())

	if handlers == nil {
		t.Fatal("NewAPIHandlers() returned nil")
	}
	if handlers.analytics != analytics {
		t.Error("NewAPIHandlers() should set analytics field")
	}
}

func TestAPIHandlers_HandleMatchSummary(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	w := httptest.NewRecorder()
	handlers.HandleMatchSummary(w, req)

	response := decodeSuccess(t, w)
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Errorf("cache-control = %q, want public, max-age=300", cc)
	}

	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data object in response")
	}
	summary, ok := data["summary"].(map[string]any)
	if !ok {
		t.Fatal("expected summary object")
	}
	if summary["matches"] != float64(2) {
		t.Errorf("matches = %v, want 2", summary["matches"])
	}
	winners, ok := data["winners"].(map[string]any)
	if !ok {
		t.Fatal("expected winners object")
	}
	if winners["home_wins"] != float64(1) || winners["draws"] != float64(1) {
		t.Errorf("winners = %v", winners)
	}
}

func TestAPIHandlers_HandlePlayerSummary(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/player-summary", nil)
	w := httptest.NewRecorder()
	handlers.HandlePlayerSummary(w, req)

	response := decodeSuccess(t, w)
	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data object in response")
	}
	split, ok := data["type_split"].(map[string]any)
	if !ok {
		t.Fatal("expected type_split object")
	}
	if split["domestic"] != float64(1) || split["foreign"] != float64(1) {
		t.Errorf("type_split = %v", split)
	}
}

func TestAPIHandlers_HandleLeaderboard(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	w := httptest.NewRecorder()
	handlers.HandleLeaderboard(w, req)

	response := decodeSuccess(t, w)
	board, ok := response["data"].([]any)
	if !ok || len(board) != 1 {
		t.Fatalf("data = %v, want one leaderboard row", response["data"])
	}
	row := board[0].(map[string]any)
	if row["team"] != "Goa" || row["wins"] != float64(1) {
		t.Errorf("row = %v, want Goa with 1 win", row)
	}
}

func TestAPIHandlers_HandleMatchCharts(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/charts/matches", nil)
	w := httptest.NewRecorder()
	handlers.HandleMatchCharts(w, req)

	response := decodeSuccess(t, w)
	figs, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected figure map in response")
	}
	for _, id := range []string{"goal-trend", "winner-split", "goal-distribution", "score-heatmap", "team-winrate"} {
		fig, ok := figs[id].(map[string]any)
		if !ok {
			t.Errorf("missing figure %q", id)
			continue
		}
		if _, ok := fig["data"]; !ok {
			t.Errorf("figure %q missing data", id)
		}
		if _, ok := fig["layout"]; !ok {
			t.Errorf("figure %q missing layout", id)
		}
	}
}

func TestAPIHandlers_HandlePlayerCharts(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/charts/players", nil)
	w := httptest.NewRecorder()
	handlers.HandlePlayerCharts(w, req)

	response := decodeSuccess(t, w)
	figs, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected figure map in response")
	}
	for _, id := range []string{"top-scorers", "age-groups", "player-type", "goals-minutes"} {
		if _, ok := figs[id]; !ok {
			t.Errorf("missing figure %q", id)
		}
	}
}

func TestAPIHandlers_HandleHealth(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handlers.HandleHealth(w, req)

	response := decodeSuccess(t, w)
	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected health data in response")
	}
	if data["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", data["status"])
	}
	ts, _ := data["timestamp"].(string)
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("invalid timestamp: %v", err)
	}

	// Health must never be cached.
	if cc := w.Header().Get("Cache-Control"); cc != "" {
		t.Errorf("health should not set cache-control, got %q", cc)
	}
}

func TestAPIHandlers_HandleStats(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	handlers.HandleStats(w, req)

	response := decodeSuccess(t, w)
	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected stats object in response")
	}
	if data["match_records"] != float64(2) {
		t.Errorf("match_records = %v, want 2", data["match_records"])
	}
	if data["player_records"] != float64(2) {
		t.Errorf("player_records = %v, want 2", data["player_records"])
	}
}

func TestAPIHandlers_HandleReload(t *testing.T) {
	t.Chdir(t.TempDir())

	csvPath := filepath.Join(t.TempDir(), "matches.csv")
	csv := `Date,Year,Day,Home,Away,winner,total_goals,Attendance,Venue,home_team_score,away_team_score
2021-11-20,2021,Sat,Goa,Pune,Goa,3,12000,Fatorda,2,1`
	if err := os.WriteFile(csvPath, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	analytics := createTestAnalytics(t)
	if err := analytics.LoadMatchesFromCSV(context.Background(), csvPath); err != nil {
		t.Fatal(err)
	}
	handlers := NewAPIHandlers(analytics, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
	w := httptest.NewRecorder()
	handlers.HandleReload(w, req)

	response := decodeSuccess(t, w)
	data := response["data"].(map[string]any)
	if data["match_records"] != float64(1) {
		t.Errorf("match_records = %v, want 1", data["match_records"])
	}
}

func TestAPIHandlers_HandleReload_MissingField(t *testing.T) {
	t.Chdir(t.TempDir())

	// Header lacks the Attendance column the summary aggregation requires.
	csvPath := filepath.Join(t.TempDir(), "matches.csv")
	csv := `Date,Year,Day,Home,Away,winner,total_goals,Venue,home_team_score,away_team_score
2021-11-20,2021,Sat,Goa,Pune,Goa,3,Fatorda,2,1`
	if err := os.WriteFile(csvPath, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	analytics := createTestAnalytics(t)
	if err := analytics.LoadMatchesFromCSV(context.Background(), csvPath); err == nil {
		t.Fatal("load with missing column should fail")
	}
	handlers := NewAPIHandlers(analytics, quietLogger())

	req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
	w := httptest.NewRecorder()
	handlers.HandleReload(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var response map[string]any
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if success, _ := response["success"].(bool); success {
		t.Error("expected success=false")
	}
	errObj, ok := response["error"].(map[string]any)
	if !ok {
		t.Fatal("expected error object")
	}
	if errObj["code"] != "MISSING_FIELD" {
		t.Errorf("code = %v, want MISSING_FIELD", errObj["code"])
	}
}

func TestAPIHandlers_HeaderConsistency(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(t), slog.Default())

	endpoints := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"summary", handlers.HandleMatchSummary},
		{"player-summary", handlers.HandlePlayerSummary},
		{"leaderboard", handlers.HandleLeaderboard},
		{"match-charts", handlers.HandleMatchCharts},
		{"player-charts", handlers.HandlePlayerCharts},
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			endpoint.handler(w, req)

			decodeSuccess(t, w)
			if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
				t.Errorf("cache-control = %q, want public, max-age=300", cc)
			}
		})
	}
}
