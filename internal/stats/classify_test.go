package stats

import (
	"testing"

	"isl-dashboard/internal/models"
)

func TestNationClassifier_Classify(t *testing.T) {
	c := NewNationClassifier("IND")

	tests := []struct {
		nation string
		want   models.PlayerType
	}{
		{"IND", models.Domestic},
		{"in IND", models.Domestic},
		{"ind", models.Domestic},
		{"BRA", models.Foreign},
		{"", models.Foreign},
		{"ESP", models.Foreign},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.nation); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.nation, got, tt.want)
		}
	}
}

func TestNationClassifier_EmptyMarker(t *testing.T) {
	c := NewNationClassifier("")
	if got := c.Classify("IND"); got != models.Foreign {
		t.Errorf("empty marker must never classify domestic, got %s", got)
	}
}

func TestNationClassifier_Split(t *testing.T) {
	c := NewNationClassifier("IND")
	players := []models.Player{
		{Nation: "IND"},
		{Nation: "BRA"},
		{Type: models.Domestic, Nation: "whatever"},
	}

	s := c.Split(players)
	if s.Domestic != 2 || s.Foreign != 1 {
		t.Errorf("Split = %+v, want 2 domestic, 1 foreign", s)
	}
}
