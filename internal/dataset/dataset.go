// Package dataset owns file I/O and schema for the two league CSVs. It
// parses rows in bounded parallel batches, computes the derived fields once
// per load, and records the header so the aggregation catalog can check its
// required columns against what the file actually carries.
package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"isl-dashboard/internal/stats"
)

const (
	batchSize  = 5000
	maxWorkers = 8
)

// Options carries the load-time policies that vary per deployment.
type Options struct {
	// ZeroGoals picks the goal-range bin behavior for 0-goal matches.
	ZeroGoals stats.ZeroGoalPolicy
	// DomesticMarker is the national-identifier token matched against the
	// Nation field.
	DomesticMarker string
}

// header maps column names to record indices.
type header map[string]int

func newHeader(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		h[strings.TrimSpace(name)] = i
	}
	return h
}

func (h header) columns() []string {
	// A duplicated header name keeps only its last index, so the map can be
	// shorter than the record it came from. Size by the largest index and
	// skip the slots the duplicates vacated.
	n := 0
	for _, i := range h {
		if i >= n {
			n = i + 1
		}
	}
	slots := make([]string, n)
	for name, i := range h {
		slots[i] = name
	}
	cols := make([]string, 0, len(h))
	for _, name := range slots {
		if name != "" {
			cols = append(cols, name)
		}
	}
	return cols
}

// field returns the trimmed cell for a column, or "" when the column or cell
// is absent.
func (h header) field(record []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

var dateLayouts = []string{
	"2006-01-02", "02-01-2006", "01/02/2006", "2/1/2006", "2006/01/02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseOptionalFloat reads a numeric cell that may legitimately be empty.
// Missing or unparseable cells come back as NaN so downstream means exclude
// them instead of counting a zero.
func parseOptionalFloat(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func parseOptionalInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
