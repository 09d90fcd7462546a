package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"isl-dashboard/internal/models"
	"isl-dashboard/internal/stats"
)

// PlayerTable is a loaded player dataset in file order.
type PlayerTable struct {
	Rows    []models.Player
	Columns []string
	Skipped int
}

// LoadPlayers streams the player CSV with the same batched parse as
// LoadMatches. Rows without a player name are skipped.
func LoadPlayers(ctx context.Context, path string, opts Options) (*PlayerTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open players csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	headerRec, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read players header: %w", err)
	}
	h := newHeader(headerRec)
	bins := stats.AgeGroupBins()
	classifier := stats.NewNationClassifier(opts.DomesticMarker)

	t := &PlayerTable{Columns: h.columns()}
	batch := make([][]string, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		parsed := make([]*models.Player, len(batch))
		var g errgroup.Group
		g.SetLimit(maxWorkers)
		for i, record := range batch {
			g.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if p, ok := parsePlayer(h, record, bins, classifier); ok {
					parsed[i] = &p
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, p := range parsed {
			if p == nil {
				t.Skipped++
				continue
			}
			t.Rows = append(t.Rows, *p)
		}
		batch = batch[:0]
		return nil
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Skipped++
			continue
		}
		batch = append(batch, record)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return t, nil
}

func parsePlayer(h header, record []string, bins stats.BinSpec, classifier stats.NationClassifier) (models.Player, bool) {
	name := h.field(record, "Player")
	if name == "" {
		return models.Player{}, false
	}

	p := models.Player{
		Name:          name,
		Squad:         h.field(record, "Squad"),
		Nation:        h.field(record, "Nation"),
		Age:           parseOptionalInt(h.field(record, "Age")),
		Minutes:       parseOptionalInt(h.field(record, "Minutes")),
		Goals:         parseOptionalInt(h.field(record, "Goals")),
		Assists:       parseOptionalInt(h.field(record, "Assists")),
		MatchesPlayed: parseOptionalInt(h.field(record, "Matches_Played")),
		Starts:        parseOptionalInt(h.field(record, "Starts")),
		YellowCards:   parseOptionalInt(h.field(record, "Yellow_Cards")),
		RedCards:      parseOptionalInt(h.field(record, "Red_Cards")),
	}

	if i, ok := bins.Bucket(float64(p.Age)); ok {
		p.AgeGroup = bins.Labels[i]
	}
	p.Type = classifier.Classify(p.Nation)
	return p, true
}
