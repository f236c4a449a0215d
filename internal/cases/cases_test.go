package cases

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/abhisek/casetrack/internal/random"
)

func TestValidate_StandardCatalogPasses(t *testing.T) {
	if err := Standard().Validate(); err != nil {
		t.Fatalf("standard catalog validation failed: %v", err)
	}
}

func TestStandard_Counts(t *testing.T) {
	c := Standard()
	if c.Len() != 50 {
		t.Fatalf("catalog has %d templates, want 50", c.Len())
	}
	if got := len(c.ByDifficulty(DifficultyQuick)); got != 20 {
		t.Errorf("quick templates = %d, want 20", got)
	}
	if got := len(c.ByDifficulty(DifficultyFull)); got != 30 {
		t.Errorf("full templates = %d, want 30", got)
	}
	mcq := 0
	for _, tmpl := range c.All() {
		if tmpl.Decision.Kind == DecisionMCQ {
			mcq++
		}
	}
	if mcq != 10 {
		t.Errorf("MCQ templates = %d, want 10", mcq)
	}
}

func TestStandard_HintsAreShort(t *testing.T) {
	for _, tmpl := range Standard().All() {
		if tmpl.Hint == "" || tmpl.Approach == "" {
			t.Errorf("template %q missing hint or approach", tmpl.ID)
			continue
		}
		if n := len(strings.Fields(tmpl.Hint)); n > 5 {
			t.Errorf("template %q hint has %d words, want <= 5", tmpl.ID, n)
		}
	}
}

func TestValidateTemplates_DetectsDuplicateID(t *testing.T) {
	tmpl := Template{ID: "a", Difficulty: DifficultyQuick, Stem: "x", Decision: Numeric(), Compute: numeric(func(Values) float64 { return 1 })}
	err := validateTemplates([]Template{tmpl, tmpl})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate ID error, got %v", err)
	}
}

func TestValidateTemplates_DetectsPlaceholderMismatch(t *testing.T) {
	tmpl := Template{
		ID: "a", Difficulty: DifficultyQuick, Decision: Numeric(),
		Stem:    "{x} and {y}",
		Params:  []Param{P("x", 1, 2, 1), P("z", 1, 2, 1)},
		Compute: numeric(func(Values) float64 { return 1 }),
	}
	err := validateTemplates([]Template{tmpl})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "{y}") || !strings.Contains(err.Error(), `"z"`) {
		t.Errorf("error should name both sides of the mismatch, got: %v", err)
	}
}

func TestValidateTemplates_DetectsBadDecision(t *testing.T) {
	tests := []struct {
		name string
		tmpl Template
		want string
	}{
		{
			"mcq length mismatch",
			Template{ID: "m", Difficulty: DifficultyFull, Decision: MCQ([]int{1, 2}, "only one"), Compute: bestOption([]int{1, 2})},
			"point values",
		},
		{
			"descending bands",
			Template{ID: "n", Difficulty: DifficultyQuick, Decision: Numeric(), Bands: []float64{0.2, 0.1}, Compute: numeric(func(Values) float64 { return 1 })},
			"ascending",
		},
		{
			"no compute",
			Template{ID: "c", Difficulty: DifficultyQuick, Decision: Numeric()},
			"no compute",
		},
		{
			"bad rule",
			Template{ID: "r", Difficulty: DifficultyQuick, Decision: Numeric(), SevereMiss: "sideways", Compute: numeric(func(Values) float64 { return 1 })},
			"severe-miss",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTemplates([]Template{tt.tmpl})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCoffeeRevenueTruth(t *testing.T) {
	tmpl, ok := Standard().Get("qm-coffee-revenue-2step")
	if !ok {
		t.Fatal("coffee template missing")
	}
	truth, err := tmpl.Compute(Values{{"customers", 300}, {"buyPct", 50}, {"price", 5}})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if truth.Final != 750 {
		t.Fatalf("truth = %v, want 750", truth.Final)
	}
}

func TestMCQCorrectIndexIsBestOption(t *testing.T) {
	tmpl, _ := Standard().Get("mcq-market-entry-decision")
	p := Generate(tmpl, 12345)
	if p.Truth.CorrectIndex != 1 {
		t.Fatalf("correct index = %d, want 1", p.Truth.CorrectIndex)
	}
	if !p.IsMCQ() || len(p.Decision.Options) != 4 {
		t.Fatalf("decision = %+v, want 4-option MCQ", p.Decision)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, tmpl := range Standard().All() {
		a := Generate(tmpl, 42)
		b := Generate(tmpl, 42)
		if a.Stem != b.Stem || a.Truth.Final != b.Truth.Final || a.Truth.CorrectIndex != b.Truth.CorrectIndex {
			t.Errorf("template %q: same seed produced different prompts", tmpl.ID)
		}
		if strings.Contains(a.Stem, "{") {
			t.Errorf("template %q: unfilled placeholder in %q", tmpl.ID, a.Stem)
		}
	}
}

func TestGenerate_ValuesInRange(t *testing.T) {
	tmpl, _ := Standard().Get("qm-coffee-revenue-2step")
	for seed := uint32(0); seed < 200; seed++ {
		p := Generate(tmpl, seed)
		for i, param := range tmpl.Params {
			v := p.Values[i]
			if v.Name != param.Name {
				t.Fatalf("value %d is %q, want %q", i, v.Name, param.Name)
			}
			if v.Value < param.Range.Min || v.Value > param.Range.Max {
				t.Fatalf("seed %d: %s = %v outside [%v, %v]", seed, v.Name, v.Value, param.Range.Min, param.Range.Max)
			}
		}
	}
}

func TestCompute_NoFallbackAcrossSeeds(t *testing.T) {
	for _, tmpl := range Standard().All() {
		for seed := uint32(0); seed < 2000; seed++ {
			values := sample(random.New(seed*7919), tmpl.Params)
			truth, err := evalTruth(tmpl, values)
			if err != nil {
				t.Fatalf("template %q seed %d values %v: %v", tmpl.ID, seed, values, err)
			}
			if truth.Final != random.Round(truth.Final, 2) {
				t.Fatalf("template %q seed %d: truth %v not rounded", tmpl.ID, seed, truth.Final)
			}
		}
	}
}

func TestCompute_BreakEvenIsPositive(t *testing.T) {
	for _, id := range []string{"qm-break-even-volume", "fc-food-truck-breakeven"} {
		tmpl, ok := Standard().Get(id)
		if !ok {
			t.Fatalf("%s missing", id)
		}
		for seed := uint32(0); seed < 2000; seed++ {
			truth, err := evalTruth(tmpl, sample(random.New(seed), tmpl.Params))
			if err != nil {
				t.Fatalf("%s seed %d: %v", id, seed, err)
			}
			if truth.Final <= 0 {
				t.Fatalf("%s seed %d: break-even %v, want positive", id, seed, truth.Final)
			}
		}
	}
}

func TestGenerate_FallbackOnBrokenCompute(t *testing.T) {
	tests := []struct {
		name    string
		compute ComputeFunc
	}{
		{"nil", nil},
		{"error", func(Values) (Truth, error) { return Truth{}, errors.New("boom") }},
		{"panic", func(Values) (Truth, error) { panic("bad formula") }},
		{"nan", numeric(func(Values) float64 { return math.NaN() })},
		{"inf", numeric(func(Values) float64 { return math.Inf(1) })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := &Template{ID: "broken", Stem: "{x}", Params: []Param{P("x", 1, 9, 1)}, Decision: Numeric(), Compute: tt.compute}
			p := Generate(tmpl, 1)
			if p.Truth.Final != 0 {
				t.Fatalf("truth = %v, want fallback 0", p.Truth.Final)
			}
		})
	}
}

func TestGenerate_StepsRounded(t *testing.T) {
	tmpl, _ := Standard().Get("fc-subscription-churn-impact")
	p := Generate(tmpl, 99)
	if len(p.Truth.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(p.Truth.Steps))
	}
	if p.Truth.Steps[1].Value != p.Truth.Final {
		t.Errorf("last step %v should equal final %v", p.Truth.Steps[1].Value, p.Truth.Final)
	}
}

func TestFillStem(t *testing.T) {
	got := FillStem("{a} at ${b} for {c}", Values{{"a", 300}, {"b", 4.5}})
	want := "300 at $4.5 for {c}"
	if got != want {
		t.Errorf("FillStem = %q, want %q", got, want)
	}
}

func TestPick_OnlyRequestedDifficulty(t *testing.T) {
	src := random.New(7)
	for i := 0; i < 100; i++ {
		tmpl, ok := Standard().Pick(src, DifficultyQuick)
		if !ok {
			t.Fatal("Pick returned false")
		}
		if tmpl.Difficulty != DifficultyQuick {
			t.Fatalf("picked %q with difficulty %q", tmpl.ID, tmpl.Difficulty)
		}
	}
	empty := NewCatalog(nil)
	if _, ok := empty.Pick(src, DifficultyFull); ok {
		t.Error("Pick on empty catalog should report false")
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty("quick"); err != nil || d != DifficultyQuick {
		t.Errorf("ParseDifficulty(quick) = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("hard"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
