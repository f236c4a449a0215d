// Package cases holds the business-case template catalog and turns templates
// into concrete prompts with a known truth.
package cases

import "fmt"

// Difficulty selects which half of the catalog a player draws from.
type Difficulty string

const (
	DifficultyQuick Difficulty = "quick"
	DifficultyFull  Difficulty = "full"
)

// ParseDifficulty accepts "quick" or "full".
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyQuick, DifficultyFull:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// Category groups templates by the consulting skill they exercise.
type Category string

const (
	CategoryQuickMath     Category = "quick_math"
	CategoryMarketEntry   Category = "market_entry"
	CategoryProfitability Category = "profitability"
	CategoryMarketSizing  Category = "market_sizing"
	CategoryPricing       Category = "pricing"
	CategoryOps           Category = "ops"
)

// DecisionKind distinguishes numeric estimates from multiple choice.
type DecisionKind string

const (
	DecisionNumeric DecisionKind = "numeric"
	DecisionMCQ     DecisionKind = "mcq"
)

// Decision describes how a prompt is answered.
type Decision struct {
	Kind    DecisionKind `json:"kind"`
	Options []string     `json:"options,omitempty"`
	Points  []int        `json:"points,omitempty"`
}

// Numeric is the decision shared by every estimation template.
func Numeric() Decision { return Decision{Kind: DecisionNumeric} }

// MCQ builds a multiple-choice decision.
func MCQ(points []int, options ...string) Decision {
	return Decision{Kind: DecisionMCQ, Options: options, Points: points}
}

// Range bounds a sampled parameter. A Step below 1 samples a 2-decimal float.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Param is one named input of a template. When Choices is non-empty the
// value is drawn from it and Range is ignored.
type Param struct {
	Name    string    `json:"name"`
	Range   Range     `json:"range"`
	Choices []float64 `json:"choices,omitempty"`
}

// P declares a ranged param.
func P(name string, min, max, step float64) Param {
	return Param{Name: name, Range: Range{Min: min, Max: max, Step: step}}
}

// Value is one sampled parameter.
type Value struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Values keeps sampled parameters in declaration order.
type Values []Value

// Get returns the named value, or 0 if absent.
func (vs Values) Get(name string) float64 {
	for _, v := range vs {
		if v.Name == name {
			return v.Value
		}
	}
	return 0
}

// Step is an intermediate quantity on the way to the final answer.
type Step struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Truth is the known answer of an instantiated prompt.
type Truth struct {
	Final        float64 `json:"final"`
	CorrectIndex int     `json:"correctIndex"`
	Steps        []Step  `json:"steps,omitempty"`
}

// ComputeFunc derives the truth from sampled values.
type ComputeFunc func(v Values) (Truth, error)

// Template is a parameterized business case.
type Template struct {
	ID         string
	Category   Category
	Difficulty Difficulty
	Title      string
	Stem       string
	Params     []Param
	Decision   Decision
	Compute    ComputeFunc
	TimeLimit  int // seconds; 0 means use the game setting
	Bands      []float64
	SevereMiss string
	Hint       string
	Approach   string
	HowTo      string
}

// PromptInstance is a template after sampling, ready to show a player.
type PromptInstance struct {
	TemplateID string     `json:"templateId"`
	Title      string     `json:"title"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Stem       string     `json:"stem"`
	Values     Values     `json:"values"`
	Decision   Decision   `json:"decision"`
	Truth      Truth      `json:"truth"`
	TimeLimit  int        `json:"timeLimit"`
	Seed       uint32     `json:"seed"`

	HintShown bool `json:"hintShown,omitempty"`
	PeekShown bool `json:"peekShown,omitempty"`
	ExtraTime int  `json:"extraTime,omitempty"`
}

// IsMCQ reports whether the prompt is multiple choice.
func (p *PromptInstance) IsMCQ() bool {
	return p.Decision.Kind == DecisionMCQ
}

// TotalTime is the time limit in seconds including any purchased extension.
func (p *PromptInstance) TotalTime() int {
	return p.TimeLimit + p.ExtraTime
}

// numeric wraps a single-value compute.
func numeric(f func(v Values) float64) ComputeFunc {
	return func(v Values) (Truth, error) {
		return Truth{Final: f(v)}, nil
	}
}

// stepped wraps a compute that reports intermediate steps. The last step is
// the final answer.
func stepped(f func(v Values) []Step) ComputeFunc {
	return func(v Values) (Truth, error) {
		steps := f(v)
		if len(steps) == 0 {
			return Truth{}, fmt.Errorf("no steps computed")
		}
		return Truth{Final: steps[len(steps)-1].Value, Steps: steps}, nil
	}
}

// bestOption picks the highest-scoring option of an MCQ.
func bestOption(points []int) ComputeFunc {
	return func(Values) (Truth, error) {
		if len(points) == 0 {
			return Truth{}, fmt.Errorf("no options")
		}
		best := 0
		for i, p := range points {
			if p > points[best] {
				best = i
			}
		}
		return Truth{CorrectIndex: best}, nil
	}
}
