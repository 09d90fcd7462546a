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

// MatchTable is a loaded match dataset: parsed rows in file order, the
// columns the file declared, and the count of rows dropped as unparseable.
type MatchTable struct {
	Rows    []models.Match
	Columns []string
	Skipped int
}

// LoadMatches streams the match CSV, parsing records in bounded parallel
// batches. Row order is preserved; rows missing a date or either team name
// are skipped and counted. A missing or empty file is a "table unavailable"
// error for the caller to degrade on.
func LoadMatches(ctx context.Context, path string, opts Options) (*MatchTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matches csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	headerRec, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read matches header: %w", err)
	}
	h := newHeader(headerRec)
	bins := stats.GoalRangeBins(opts.ZeroGoals)

	t := &MatchTable{Columns: h.columns()}
	batch := make([][]string, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		parsed := make([]*models.Match, len(batch))
		var g errgroup.Group
		g.SetLimit(maxWorkers)
		for i, record := range batch {
			g.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if m, ok := parseMatch(h, record, bins); ok {
					parsed[i] = &m
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, m := range parsed {
			if m == nil {
				t.Skipped++
				continue
			}
			t.Rows = append(t.Rows, *m)
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
			// Malformed line; drop it and keep streaming.
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

func parseMatch(h header, record []string, bins stats.BinSpec) (models.Match, bool) {
	date, ok := parseDate(h.field(record, "Date"))
	if !ok {
		return models.Match{}, false
	}
	home := h.field(record, "Home")
	away := h.field(record, "Away")
	if home == "" || away == "" {
		return models.Match{}, false
	}

	m := models.Match{
		Date:       date,
		Day:        h.field(record, "Day"),
		Home:       home,
		Away:       away,
		Winner:     h.field(record, "winner"),
		Attendance: parseOptionalFloat(h.field(record, "Attendance")),
		Venue:      h.field(record, "Venue"),
		HomeScore:  parseOptionalInt(h.field(record, "home_team_score")),
		AwayScore:  parseOptionalInt(h.field(record, "away_team_score")),
	}

	m.Year = parseOptionalInt(h.field(record, "Year"))
	if m.Year == 0 {
		m.Year = date.Year()
	}
	if m.Day == "" {
		m.Day = date.Weekday().String()[:3]
	}

	if goals := h.field(record, "total_goals"); goals != "" {
		m.TotalGoals = parseOptionalInt(goals)
	} else {
		m.TotalGoals = m.HomeScore + m.AwayScore
	}

	m.MonthName = date.Month().String()
	if i, ok := bins.Bucket(float64(m.TotalGoals)); ok {
		m.GoalRange = bins.Labels[i]
	}
	return m, true
}
