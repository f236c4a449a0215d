// Package grading converts a submitted answer into points and decides whether
// it counts as a severe miss.
//
// All functions are total: they never panic on malformed input, and an
// out-of-range option index simply earns nothing.
package grading

import (
	"math"
)

// MaxPoints is the award for an answer inside the tightest band.
const MaxPoints = 4

// GoodAnswer is the minimum award that extends a streak.
const GoodAnswer = 2

// DefaultBands are the relative-error thresholds used when a template does
// not configure its own.
var DefaultBands = []float64{0.05, 0.10, 0.20, 0.30}

// Rule names a severe-miss policy.
type Rule string

const (
	RuleNone         Rule = "none"
	RuleOppositeSign Rule = "opposite_sign"
	RuleOvershootX2  Rule = "overshoot_x2"
)

// ParseRule maps a configuration tag to a Rule. Unknown tags become RuleNone.
func ParseRule(s string) Rule {
	switch Rule(s) {
	case RuleOppositeSign, RuleOvershootX2:
		return Rule(s)
	default:
		return RuleNone
	}
}

// Result is the outcome of grading one answer.
type Result struct {
	Points        int     `json:"points"`
	SevereMiss    bool    `json:"severeMiss"`
	RelativeError float64 `json:"relativeError"`
	Boosted       bool    `json:"boosted,omitempty"`
}

// Numeric awards 4, 3, 2, 1 or 0 points depending on which band the relative
// error falls into. Bands must be ascending; fewer than four bands simply cap
// the lowest reachable non-zero award. A zero truth only accepts an exact
// zero answer.
func Numeric(answer, truth float64, bands []float64) int {
	if len(bands) == 0 {
		bands = DefaultBands
	}
	if truth == 0 {
		if answer == 0 {
			return MaxPoints
		}
		return 0
	}
	rel := RelativeError(answer, truth)
	if math.IsNaN(rel) {
		return 0
	}
	for i, b := range bands {
		if i >= MaxPoints {
			break
		}
		if rel <= b {
			return MaxPoints - i
		}
	}
	return 0
}

// RelativeError returns |answer-truth| / |truth|. It is +Inf for a zero
// truth and a non-zero answer, and 0 when both are zero.
func RelativeError(answer, truth float64) float64 {
	if truth == 0 {
		if answer == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return math.Abs(answer-truth) / math.Abs(truth)
}

// MCQ returns the points assigned to the chosen option, or 0 when the index
// does not name an option.
func MCQ(chosen int, points []int) int {
	if chosen < 0 || chosen >= len(points) {
		return 0
	}
	return points[chosen]
}

// SevereMiss reports whether answer is directionally or order-of-magnitude
// wrong under rule. Zero counts as non-negative for the sign check.
func SevereMiss(answer, truth float64, rule Rule) bool {
	switch rule {
	case RuleOppositeSign:
		return (answer >= 0 && truth < 0) || (answer < 0 && truth >= 0)
	case RuleOvershootX2:
		if truth == 0 {
			return answer != 0
		}
		ratio := math.Abs(answer / truth)
		return ratio < 0.5 || ratio > 2.0
	default:
		return false
	}
}

// Boost returns a copy of bands with every threshold doubled. Empty input
// boosts the defaults.
func Boost(bands []float64) []float64 {
	if len(bands) == 0 {
		bands = DefaultBands
	}
	out := make([]float64, len(bands))
	for i, b := range bands {
		out[i] = b * 2
	}
	return out
}

// GradeNumeric grades a numeric answer and evaluates the severe-miss rule on
// the same answer/truth pair.
func GradeNumeric(answer, truth float64, bands []float64, rule Rule, boosted bool) Result {
	if boosted {
		bands = Boost(bands)
	}
	return Result{
		Points:        Numeric(answer, truth, bands),
		SevereMiss:    SevereMiss(answer, truth, rule),
		RelativeError: finite(RelativeError(answer, truth)),
		Boosted:       boosted,
	}
}

// GradeMCQ grades a multiple-choice pick. Severe misses do not apply.
func GradeMCQ(chosen int, points []int) Result {
	return Result{Points: MCQ(chosen, points)}
}

// finite clamps infinities so a Result always encodes as JSON.
func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return math.MaxFloat64
	}
	return v
}
