package grading

import (
	"math"
	"testing"
)

func TestNumericExactMatch(t *testing.T) {
	for _, truth := range []float64{750, -120.5, 0.01, 1e6} {
		if got := Numeric(truth, truth, nil); got != MaxPoints {
			t.Errorf("Numeric(%v, %v) = %d, want 4", truth, truth, got)
		}
	}
}

func TestNumericZeroTruth(t *testing.T) {
	if got := Numeric(0, 0, nil); got != 4 {
		t.Errorf("Numeric(0, 0) = %d, want 4", got)
	}
	for _, a := range []float64{0.001, -1, 100} {
		if got := Numeric(a, 0, nil); got != 0 {
			t.Errorf("Numeric(%v, 0) = %d, want 0", a, got)
		}
	}
}

func TestNumericBands(t *testing.T) {
	tests := []struct {
		name   string
		answer float64
		truth  float64
		bands  []float64
		want   int
	}{
		{"coffee 720 vs 750", 720, 750, nil, 4},
		{"coffee 500 vs 750", 500, 750, nil, 0},
		{"edge of first band", 105, 100, nil, 4},
		{"second band", 108, 100, nil, 3},
		{"third band", 85, 100, nil, 2},
		{"fourth band", 130, 100, nil, 1},
		{"outside", 131, 100, nil, 0},
		{"wide bands", 115, 100, []float64{0.15, 0.25, 0.35, 0.45}, 4},
		{"negative truth", -95, -100, nil, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Numeric(tt.answer, tt.truth, tt.bands); got != tt.want {
				t.Errorf("Numeric(%v, %v, %v) = %d, want %d", tt.answer, tt.truth, tt.bands, got, tt.want)
			}
		})
	}
}

func TestNumericMonotonic(t *testing.T) {
	truth := 250.0
	prev := MaxPoints
	for delta := 0.0; delta <= 200; delta += 0.5 {
		got := Numeric(truth+delta, truth, nil)
		if got > prev {
			t.Fatalf("points rose from %d to %d at delta %v", prev, got, delta)
		}
		prev = got
	}
}

func TestMCQ(t *testing.T) {
	pts := []int{2, 4, 1, 3}
	for i, want := range pts {
		if got := MCQ(i, pts); got != want {
			t.Errorf("MCQ(%d) = %d, want %d", i, got, want)
		}
	}
	for _, i := range []int{-1, 4, 100} {
		if got := MCQ(i, pts); got != 0 {
			t.Errorf("MCQ(%d) = %d, want 0", i, got)
		}
	}
	if got := GradeMCQ(2, pts); got.Points != 1 || got.SevereMiss {
		t.Errorf("GradeMCQ(2) = %+v, want 1 point and no severe miss", got)
	}
}

func TestSevereMiss(t *testing.T) {
	tests := []struct {
		answer, truth float64
		rule          Rule
		want          bool
	}{
		{10, -5, RuleOppositeSign, true},
		{-10, 5, RuleOppositeSign, true},
		{0, -5, RuleOppositeSign, true},
		{-1, 0, RuleOppositeSign, true},
		{0, 0, RuleOppositeSign, false},
		{10, 5, RuleOppositeSign, false},
		{100, 40, RuleOvershootX2, true},
		{19, 40, RuleOvershootX2, true},
		{20, 40, RuleOvershootX2, false},
		{80, 40, RuleOvershootX2, false},
		{-40, 40, RuleOvershootX2, false},
		{5, 0, RuleOvershootX2, true},
		{1e9, 1, RuleNone, false},
		{1e9, 1, "", false},
	}
	for _, tt := range tests {
		if got := SevereMiss(tt.answer, tt.truth, tt.rule); got != tt.want {
			t.Errorf("SevereMiss(%v, %v, %q) = %v, want %v", tt.answer, tt.truth, tt.rule, got, tt.want)
		}
	}
}

func TestParseRule(t *testing.T) {
	if ParseRule("opposite_sign") != RuleOppositeSign {
		t.Error("opposite_sign not parsed")
	}
	if ParseRule("bogus") != RuleNone {
		t.Error("unknown tag should map to none")
	}
}

func TestBoostDoublesBands(t *testing.T) {
	got := Boost(nil)
	want := []float64{0.10, 0.20, 0.40, 0.60}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Boost()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if DefaultBands[0] != 0.05 {
		t.Fatal("Boost mutated DefaultBands")
	}

	res := GradeNumeric(108, 100, nil, RuleNone, true)
	if res.Points != 4 || !res.Boosted {
		t.Errorf("boosted 8%% error = %+v, want 4 points", res)
	}
}

func TestGradeNumericZeroTruthEncodes(t *testing.T) {
	res := GradeNumeric(3, 0, nil, RuleNone, false)
	if math.IsInf(res.RelativeError, 0) {
		t.Fatal("RelativeError should be finite")
	}
	if res.Points != 0 {
		t.Errorf("points = %d, want 0", res.Points)
	}
}
