package stats

import (
	"strings"

	"isl-dashboard/internal/models"
)

// NationClassifier splits players into Domestic and Foreign by looking for a
// marker token in the nationality field. The match is a case-insensitive
// substring test, so both the 2-letter and 3-letter code conventions seen in
// source data work with the appropriate marker.
type NationClassifier struct {
	marker string
}

func NewNationClassifier(marker string) NationClassifier {
	return NationClassifier{marker: strings.ToLower(strings.TrimSpace(marker))}
}

func (c NationClassifier) Classify(nation string) models.PlayerType {
	if c.marker != "" && strings.Contains(strings.ToLower(nation), c.marker) {
		return models.Domestic
	}
	return models.Foreign
}

// Split counts players per type under this classifier, reading the derived
// Type when set and falling back to Nation otherwise.
func (c NationClassifier) Split(players []models.Player) models.TypeSplit {
	var s models.TypeSplit
	for _, p := range players {
		t := p.Type
		if t == "" {
			t = c.Classify(p.Nation)
		}
		if t == models.Domestic {
			s.Domestic++
		} else {
			s.Foreign++
		}
	}
	return s
}
