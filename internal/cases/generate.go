package cases

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"

	"github.com/abhisek/casetrack/internal/random"
)

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// Generate instantiates t with a generator seeded by seed. The same template
// and seed always produce the same prompt. A broken compute never fails
// generation: the truth falls back to zero and a warning is logged.
func Generate(t *Template, seed uint32) *PromptInstance {
	src := random.New(seed)
	values := sample(src, t.Params)

	truth, err := evalTruth(t, values)
	if err != nil {
		slog.Warn("case truth fallback", "template", t.ID, "error", err)
		truth = Truth{}
	}

	return &PromptInstance{
		TemplateID: t.ID,
		Title:      t.Title,
		Category:   t.Category,
		Difficulty: t.Difficulty,
		Stem:       FillStem(t.Stem, values),
		Values:     values,
		Decision:   t.Decision,
		Truth:      truth,
		TimeLimit:  t.TimeLimit,
		Seed:       seed,
	}
}

func sample(src *random.Source, params []Param) Values {
	values := make(Values, 0, len(params))
	for _, p := range params {
		var v float64
		switch {
		case len(p.Choices) > 0:
			v, _ = random.Choice(src, p.Choices)
		case p.Range.Step > 0 && p.Range.Step < 1:
			v = random.Float(src, p.Range.Min, p.Range.Max, 2)
		default:
			v = random.Int(src, p.Range.Min, p.Range.Max, p.Range.Step)
		}
		values = append(values, Value{Name: p.Name, Value: v})
	}
	return values
}

// FillStem replaces every {name} with the shortest decimal form of its
// value. Unknown placeholders are left in place.
func FillStem(stem string, values Values) string {
	known := make(map[string]float64, len(values))
	for _, v := range values {
		known[v.Name] = v.Value
	}
	return placeholder.ReplaceAllStringFunc(stem, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := known[name]
		if !ok {
			return m
		}
		return FormatNumber(v)
	})
}

// FormatNumber renders v without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func evalTruth(t *Template, values Values) (truth Truth, err error) {
	if t.Compute == nil {
		return Truth{}, fmt.Errorf("no compute bound")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compute panicked: %v", r)
		}
	}()

	truth, err = t.Compute(values)
	if err != nil {
		return Truth{}, err
	}

	if t.Decision.Kind == DecisionMCQ {
		if truth.CorrectIndex < 0 || truth.CorrectIndex >= len(t.Decision.Options) {
			return Truth{}, fmt.Errorf("correct index %d out of range", truth.CorrectIndex)
		}
		return Truth{CorrectIndex: truth.CorrectIndex}, nil
	}

	if !finite(truth.Final) {
		return Truth{}, fmt.Errorf("non-finite truth %v", truth.Final)
	}
	truth.Final = random.Round(truth.Final, 2)
	for i := range truth.Steps {
		if !finite(truth.Steps[i].Value) {
			return Truth{}, fmt.Errorf("non-finite step %q", truth.Steps[i].Label)
		}
		truth.Steps[i].Value = random.Round(truth.Steps[i].Value, 2)
	}
	return truth, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
