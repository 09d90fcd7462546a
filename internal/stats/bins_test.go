package stats

import (
	"math"
	"testing"
)

func TestBinAndCount_DeclaredOrder(t *testing.T) {
	spec := GoalRangeBins(ZeroGoalsUnbinned)
	values := []float64{1, 2, 2, 5, 7, 12}

	tally := BinAndCount(values, spec)

	if len(tally.Bins) != len(spec.Labels) {
		t.Fatalf("len(Bins) = %d, want %d (every label present)", len(tally.Bins), len(spec.Labels))
	}
	for i, label := range spec.Labels {
		if tally.Bins[i].Label != label {
			t.Errorf("Bins[%d].Label = %s, want %s", i, tally.Bins[i].Label, label)
		}
	}

	wantFreq := []int{1, 2, 0, 0, 2}
	for i, want := range wantFreq {
		if tally.Bins[i].Frequency != want {
			t.Errorf("Bins[%d] (%s) = %d, want %d", i, tally.Bins[i].Label, tally.Bins[i].Frequency, want)
		}
	}
	if tally.Unbinned != 1 {
		t.Errorf("Unbinned = %d, want 1 (the 12)", tally.Unbinned)
	}
}

func TestBinAndCount_Empty(t *testing.T) {
	spec := GoalRangeBins(ZeroGoalsUnbinned)

	tally := BinAndCount(nil, spec)

	if len(tally.Bins) != len(spec.Labels) {
		t.Fatalf("len(Bins) = %d, want %d even with no input", len(tally.Bins), len(spec.Labels))
	}
	for _, b := range tally.Bins {
		if b.Frequency != 0 {
			t.Errorf("bin %s = %d, want 0", b.Label, b.Frequency)
		}
	}
	if tally.Unbinned != 0 {
		t.Errorf("Unbinned = %d, want 0", tally.Unbinned)
	}
}

func TestBinAndCount_NaNExcluded(t *testing.T) {
	spec := GoalRangeBins(ZeroGoalsUnbinned)

	tally := BinAndCount([]float64{math.NaN(), math.NaN(), 2}, spec)

	var total int
	for _, b := range tally.Bins {
		total += b.Frequency
	}
	if total != 1 || tally.Unbinned != 0 {
		t.Errorf("NaN must vanish entirely: binned=%d unbinned=%d, want 1 and 0", total, tally.Unbinned)
	}
}

func TestGoalRangeBins_ZeroGoalPolicy(t *testing.T) {
	values := []float64{0, 0, 1}

	unbinned := BinAndCount(values, GoalRangeBins(ZeroGoalsUnbinned))
	if unbinned.Bins[0].Frequency != 1 {
		t.Errorf("unbinned policy: first bin = %d, want 1", unbinned.Bins[0].Frequency)
	}
	if unbinned.Unbinned != 2 {
		t.Errorf("unbinned policy: Unbinned = %d, want 2", unbinned.Unbinned)
	}

	lowest := BinAndCount(values, GoalRangeBins(ZeroGoalsLowest))
	if lowest.Bins[0].Frequency != 3 {
		t.Errorf("lowest policy: first bin = %d, want 3", lowest.Bins[0].Frequency)
	}
	if lowest.Unbinned != 0 {
		t.Errorf("lowest policy: Unbinned = %d, want 0", lowest.Unbinned)
	}
}

func TestBucket_Boundaries(t *testing.T) {
	rightClosed := GoalRangeBins(ZeroGoalsUnbinned)
	tests := []struct {
		v     float64
		idx   int
		found bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 1, true},
		{4, 3, true},
		{10, 4, true},
		{10.5, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		idx, ok := rightClosed.Bucket(tt.v)
		if ok != tt.found || (ok && idx != tt.idx) {
			t.Errorf("Bucket(%v) = (%d, %v), want (%d, %v)", tt.v, idx, ok, tt.idx, tt.found)
		}
	}
}

func TestAgeGroupBins_LeftClosed(t *testing.T) {
	spec := AgeGroupBins()
	tests := []struct {
		age   float64
		label string
		found bool
	}{
		{15, "15-21", true},
		{21.9, "15-21", true},
		{22, "22-26", true},
		{37, "37-44", true},
		{45, "", false},
		{14, "", false},
	}
	for _, tt := range tests {
		idx, ok := spec.Bucket(tt.age)
		if ok != tt.found {
			t.Errorf("Bucket(%v) found = %v, want %v", tt.age, ok, tt.found)
			continue
		}
		if ok && spec.Labels[idx] != tt.label {
			t.Errorf("Bucket(%v) = %s, want %s", tt.age, spec.Labels[idx], tt.label)
		}
	}
}
