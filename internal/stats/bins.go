package stats

import "math"

// BinSpec declares a categorical binning: len(Edges) == len(Labels)+1.
// Right-closed bins cover (lo, hi]; left-closed bins cover [lo, hi). Values
// outside every bin are reported as unbinned, never coerced into the nearest
// one.
type BinSpec struct {
	Labels []string
	Edges  []float64

	// LeftClosed selects [lo, hi) intervals instead of (lo, hi].
	LeftClosed bool

	// IncludeLowest additionally admits v == Edges[0] into the first bin of
	// a right-closed spec.
	IncludeLowest bool
}

type BinCount struct {
	Label     string `json:"label"`
	Frequency int    `json:"frequency"`
}

// BinTally is the result of BinAndCount: one entry per declared label in
// declaration order (zero frequencies included), plus the count of in-range
// misses.
type BinTally struct {
	Bins     []BinCount `json:"bins"`
	Unbinned int        `json:"unbinned"`
}

// Bucket returns the bin index for v, or false when v falls outside all bins.
func (s BinSpec) Bucket(v float64) (int, bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	for i := 0; i < len(s.Labels); i++ {
		lo, hi := s.Edges[i], s.Edges[i+1]
		if s.LeftClosed {
			if v >= lo && v < hi {
				return i, true
			}
			continue
		}
		if v > lo && v <= hi {
			return i, true
		}
		if i == 0 && s.IncludeLowest && v == lo {
			return 0, true
		}
	}
	return 0, false
}

// BinAndCount tallies values into the declared bins. NaN values are missing
// data and excluded outright; finite out-of-range values land in Unbinned.
func BinAndCount(values []float64, spec BinSpec) BinTally {
	t := BinTally{Bins: make([]BinCount, len(spec.Labels))}
	for i, label := range spec.Labels {
		t.Bins[i].Label = label
	}
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if i, ok := spec.Bucket(v); ok {
			t.Bins[i].Frequency++
		} else {
			t.Unbinned++
		}
	}
	return t
}

// ZeroGoalPolicy decides where a 0-goal match lands in the goal-range bins.
// Published dashboards disagree on this convention, so it is configurable.
type ZeroGoalPolicy string

const (
	// ZeroGoalsUnbinned keeps 0 outside every bin; it surfaces in Unbinned.
	ZeroGoalsUnbinned ZeroGoalPolicy = "unbinned"
	// ZeroGoalsLowest widens the first bin to admit 0.
	ZeroGoalsLowest ZeroGoalPolicy = "lowest"
)

// GoalRangeBins is the total-goals binning: (0,1], (1,2], (2,3], (3,4],
// (4,10] labeled 0-1, 2, 3, 4, 5+.
func GoalRangeBins(policy ZeroGoalPolicy) BinSpec {
	return BinSpec{
		Labels:        []string{"0-1", "2", "3", "4", "5+"},
		Edges:         []float64{0, 1, 2, 3, 4, 10},
		IncludeLowest: policy == ZeroGoalsLowest,
	}
}

// AgeGroupBins is the player age binning: [15,22), [22,27), [27,32),
// [32,37), [37,45).
func AgeGroupBins() BinSpec {
	return BinSpec{
		Labels:     []string{"15-21", "22-26", "27-31", "32-36", "37-44"},
		Edges:      []float64{15, 22, 27, 32, 37, 45},
		LeftClosed: true,
	}
}
