// Package coach produces the text behind the hint and peek credits. With an
// LLM provider it asks for fresh wording; otherwise, or when the model
// misbehaves, it serves the catalog's own hint and approach.
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/llm"
)

// Source tells where a piece of coaching text came from.
type Source string

const (
	SourceLLM    Source = "llm"
	SourceStatic Source = "static"
)

// MaxHintWords bounds the length of a hint.
const MaxHintWords = 5

// Hint is a short nudge toward the method.
type Hint struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

// Peek is the general approach to a prompt.
type Peek struct {
	Framework string   `json:"framework"`
	Outline   []string `json:"outline"`
	Source    Source   `json:"source"`
}

// Config holds generation settings for coach requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.4,
	}
}

// Coach answers hint and peek requests for instantiated prompts.
type Coach struct {
	provider llm.Provider
	catalog  *cases.Catalog
	cfg      Config
	logger   *slog.Logger
}

// New creates a Coach. A nil provider serves static text only.
func New(provider llm.Provider, catalog *cases.Catalog, cfg Config, logger *slog.Logger) *Coach {
	if catalog == nil {
		catalog = cases.Standard()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coach{provider: provider, catalog: catalog, cfg: cfg, logger: logger}
}

// Online reports whether an LLM provider is configured.
func (c *Coach) Online() bool { return c.provider != nil }

type hintOutput struct {
	Hint string `json:"hint"`
}

type peekOutput struct {
	Framework string   `json:"framework"`
	Outline   []string `json:"outline"`
}

var errLeak = errors.New("output reveals the answer")

// Hint returns a hint for q. It never fails: any provider error falls back
// to the static hint.
func (c *Coach) Hint(ctx context.Context, q *cases.PromptInstance) Hint {
	t, _ := c.catalog.Get(q.TemplateID)
	static := Hint{Text: StaticHint(t), Source: SourceStatic}
	if c.provider == nil {
		return static
	}

	var out hintOutput
	if err := c.generate(llm.WithPurpose(ctx, llm.PurposeHint), hintSystemPrompt, HintSchema, q, t, &out); err != nil {
		c.logger.Warn("coach hint fell back to static", "template", q.TemplateID, "error", err)
		return static
	}
	text := strings.TrimSpace(out.Hint)
	if n := len(strings.Fields(text)); n == 0 || n > MaxHintWords {
		c.logger.Warn("coach hint rejected", "template", q.TemplateID, "words", n)
		return static
	}
	if Leaks(text, q) {
		c.logger.Warn("coach hint rejected", "template", q.TemplateID, "error", errLeak)
		return static
	}
	return Hint{Text: text, Source: SourceLLM}
}

// Peek returns the approach for q, falling back to the static outline on
// any provider error.
func (c *Coach) Peek(ctx context.Context, q *cases.PromptInstance) Peek {
	t, _ := c.catalog.Get(q.TemplateID)
	static := StaticPeek(t, q)
	if c.provider == nil {
		return static
	}

	var out peekOutput
	if err := c.generate(llm.WithPurpose(ctx, llm.PurposePeek), peekSystemPrompt, PeekSchema, q, t, &out); err != nil {
		c.logger.Warn("coach peek fell back to static", "template", q.TemplateID, "error", err)
		return static
	}
	if Leaks(out.Framework+"\n"+strings.Join(out.Outline, "\n"), q) {
		c.logger.Warn("coach peek rejected", "template", q.TemplateID, "error", errLeak)
		return static
	}
	return Peek{Framework: out.Framework, Outline: out.Outline, Source: SourceLLM}
}

func (c *Coach) generate(ctx context.Context, system string, schema *llm.Schema, q *cases.PromptInstance, t *cases.Template, out any) error {
	msg, err := buildMessage(q, t)
	if err != nil {
		return fmt.Errorf("build coach prompt: %w", err)
	}
	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    llm.UserMessage(msg),
		Schema:      schema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("parse coach response: %w", err)
	}
	return nil
}

// StaticHint is the catalog hint for t, or the first words of its approach
// when the template has none.
func StaticHint(t *cases.Template) string {
	if t == nil {
		return "Break it into steps"
	}
	if t.Hint != "" {
		return t.Hint
	}
	words := strings.Fields(t.Approach)
	if len(words) == 0 {
		return "Break it into steps"
	}
	return strings.Join(words[:min(len(words), MaxHintWords)], " ")
}

// StaticPeek builds an outline from the template approach and the labels of
// the truth steps. Step values are never included.
func StaticPeek(t *cases.Template, q *cases.PromptInstance) Peek {
	p := Peek{Framework: "Structured breakdown", Source: SourceStatic}
	if t != nil {
		p.Framework = frameworks[t.Category]
		if t.Approach != "" {
			p.Outline = append(p.Outline, t.Approach)
		}
	}
	var steps []cases.Step
	if q != nil {
		steps = q.Truth.Steps
	}
	for _, s := range steps {
		p.Outline = append(p.Outline, "Work out the "+s.Label)
	}
	if t != nil && t.HowTo != "" && len(steps) == 0 {
		p.Outline = append(p.Outline, "Formula: "+t.HowTo)
	}
	if len(p.Outline) == 0 {
		p.Outline = []string{"List the figures given, then combine them one step at a time"}
	}
	return p
}

var frameworks = map[cases.Category]string{
	cases.CategoryQuickMath:     "Arithmetic chain",
	cases.CategoryMarketEntry:   "Market entry",
	cases.CategoryProfitability: "Profit tree",
	cases.CategoryMarketSizing:  "Market sizing funnel",
	cases.CategoryPricing:       "Pricing",
	cases.CategoryOps:           "Operations",
}

// Leaks reports whether text gives away q's answer: the final value, an
// intermediate step value, or the text of the correct option.
func Leaks(text string, q *cases.PromptInstance) bool {
	if q == nil {
		return false
	}
	lower := strings.ToLower(text)
	if q.IsMCQ() {
		i := q.Truth.CorrectIndex
		if i >= 0 && i < len(q.Decision.Options) {
			opt := strings.ToLower(strings.TrimSpace(q.Decision.Options[i]))
			if opt != "" && strings.Contains(lower, opt) {
				return true
			}
		}
		return false
	}
	plain := strings.ReplaceAll(text, ",", "")
	values := []float64{q.Truth.Final}
	for _, s := range q.Truth.Steps {
		values = append(values, s.Value)
	}
	for _, v := range values {
		for _, form := range numberForms(v) {
			if strings.Contains(plain, form) {
				return true
			}
		}
	}
	return false
}

// numberForms lists the ways v might be written. Values under 10 are
// skipped; a single digit shows up in ordinary prose.
func numberForms(v float64) []string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) < 10 {
		return nil
	}
	a := math.Abs(v)
	forms := []string{cases.FormatNumber(a), cases.FormatNumber(math.Round(a))}
	if r := math.Round(a*10) / 10; r != a {
		forms = append(forms, cases.FormatNumber(r))
	}
	return forms
}
