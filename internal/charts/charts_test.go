package charts

import (
	"encoding/json"
	"testing"

	"isl-dashboard/internal/models"
	"isl-dashboard/internal/services"
	"isl-dashboard/internal/stats"
)

func TestHBar_RankOneOnTop(t *testing.T) {
	fig := HBar("title", "x", []string{"first", "second", "third"}, []float64{9, 5, 1})

	ys := fig.Data[0]["y"].([]string)
	xs := fig.Data[0]["x"].([]float64)
	if ys[len(ys)-1] != "first" || xs[len(xs)-1] != 9 {
		t.Errorf("rank 1 must be last (drawn on top), got y=%v x=%v", ys, xs)
	}
}

func TestPie_Hole(t *testing.T) {
	fig := Pie("title", []string{"a", "b"}, []float64{1, 2}, 0.4)
	if fig.Data[0]["hole"] != 0.4 {
		t.Errorf("hole = %v, want 0.4", fig.Data[0]["hole"])
	}
	if fig.Data[0]["type"] != "pie" {
		t.Errorf("type = %v, want pie", fig.Data[0]["type"])
	}
}

func TestScatter_Annotation(t *testing.T) {
	fig := Scatter("t", "x", "y", []float64{1, 2}, []float64{1, 2}, []string{"a", "b"}, 0.85, true)
	anns := fig.Layout["annotations"].([]map[string]any)
	if anns[0]["text"] != "r = 0.85" {
		t.Errorf("annotation = %v, want r = 0.85", anns[0]["text"])
	}

	fig = Scatter("t", "x", "y", nil, nil, nil, 0, false)
	anns = fig.Layout["annotations"].([]map[string]any)
	if anns[0]["text"] != "r = N/A" {
		t.Errorf("annotation = %v, want r = N/A", anns[0]["text"])
	}
}

func TestDualAxis_SecondaryAxis(t *testing.T) {
	fig := DualAxis("t", []string{"2021"}, "bars", []float64{1}, "line", []float64{2})
	if len(fig.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(fig.Data))
	}
	if fig.Data[1]["yaxis"] != "y2" {
		t.Errorf("line trace yaxis = %v, want y2", fig.Data[1]["yaxis"])
	}
	y2 := fig.Layout["yaxis2"].(map[string]any)
	if y2["overlaying"] != "y" || y2["side"] != "right" {
		t.Errorf("yaxis2 = %v", y2)
	}
}

func TestFigure_MarshalsToJSON(t *testing.T) {
	fig := Line("t", "x", "y", []string{"a"}, []float64{1})
	raw, err := json.Marshal(fig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc struct {
		Data   []map[string]any `json:"data"`
		Layout map[string]any   `json:"layout"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Data) != 1 || doc.Layout == nil {
		t.Errorf("figure shape wrong: %s", raw)
	}
}

func matchFixture(t *testing.T) *services.MatchAnalytics {
	t.Helper()
	return &services.MatchAnalytics{
		Summary: models.SummaryStats{Matches: 1},
		Winners: models.WinnerDistribution{HomeWins: 1},
		Leaders: []models.TeamWins{{Team: "Goa", Wins: 1}},
		GoalTrend: []stats.GroupMean{
			{Key: "2021-11-20", Mean: 3, Count: 1},
		},
		GoalBins: stats.BinTally{Bins: []stats.BinCount{{Label: "0-1"}, {Label: "2"}, {Label: "3", Frequency: 1}, {Label: "4"}, {Label: "5+"}}},
		DayMeans: []stats.GroupMean{{Key: "Sat", Mean: 3, Count: 1}},
		TopVenues: []stats.Ranked{
			{Label: "Fatorda", Value: 3},
		},
		Scores:           stats.ScoreMatrix{HomeScores: []int{2}, AwayScores: []int{1}, Counts: [][]int{{1}}},
		Yearly:           []models.YearlyStat{{Year: 2021, Matches: 1, AvgGoals: 3}},
		TeamTable:        []models.TeamPerformance{{Team: "Goa", Matches: 1, Wins: 1, WinRate: 100}},
		AttendanceByYear: []stats.GroupMean{{Key: "2021", Mean: 12000, Count: 1}},
	}
}

func TestMatchFigures_CompleteSet(t *testing.T) {
	figs := MatchFigures(matchFixture(t))

	wantIDs := []string{
		"goal-trend", "winner-split", "goal-distribution", "day-goals",
		"top-venues", "score-heatmap", "yearly-trends", "team-winrate",
		"attendance",
	}
	if len(figs) != len(wantIDs) {
		t.Errorf("len(figs) = %d, want %d", len(figs), len(wantIDs))
	}
	for _, id := range wantIDs {
		fig, ok := figs[id]
		if !ok {
			t.Errorf("missing figure %q", id)
			continue
		}
		if len(fig.Data) == 0 {
			t.Errorf("figure %q has no traces", id)
		}
	}
}

func TestPlayerFigures_CompleteSet(t *testing.T) {
	p := &services.PlayerAnalytics{
		TopScorers:   []stats.Ranked{{Label: "Chhetri", Value: 12}},
		TopAssisters: []stats.Ranked{{Label: "Boumous", Value: 8}},
		AgeGroups:    stats.BinTally{Bins: []stats.BinCount{{Label: "15-21"}}},
		TypeSplit:    models.TypeSplit{Domestic: 1, Foreign: 1},
		SquadGoals:   []stats.Ranked{{Label: "Goa", Value: 17}},
		SquadMinutes: []services.SquadMinutes{{Squad: "Goa", Minutes: []float64{1500}}},
		GoalsMinutes: services.ScatterStudy{X: []float64{1500}, Y: []float64{11}, Labels: []string{"Boumous"}},
	}

	figs := PlayerFigures(p)

	wantIDs := []string{
		"top-scorers", "top-assisters", "age-groups", "player-type",
		"squad-goals", "squad-minutes", "goals-minutes",
	}
	if len(figs) != len(wantIDs) {
		t.Errorf("len(figs) = %d, want %d", len(figs), len(wantIDs))
	}
	for _, id := range wantIDs {
		if _, ok := figs[id]; !ok {
			t.Errorf("missing figure %q", id)
		}
	}
}
