package game

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/casetrack/internal/board"
	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/events"
	"github.com/abhisek/casetrack/internal/grading"
	"github.com/abhisek/casetrack/internal/player"
	"github.com/abhisek/casetrack/internal/random"
)

// CreditCost is the points price of spending any credit.
const CreditCost = 1

// ExtraTimeSecs is what one add60 credit adds to the clock.
const ExtraTimeSecs = 60

// Machine reduces actions over State. It holds no game state of its own and
// is safe for concurrent use.
type Machine struct {
	catalog *cases.Catalog
	board   *board.Board
	now     func() time.Time
	log     *slog.Logger
	newID   func() string
}

// Option configures a Machine.
type Option func(*Machine)

// WithCatalog replaces the built-in case catalog.
func WithCatalog(c *cases.Catalog) Option { return func(m *Machine) { m.catalog = c } }

// WithBoard replaces the built-in board.
func WithBoard(b *board.Board) Option { return func(m *Machine) { m.board = b } }

// WithClock sets the time source used for seeds and timestamps.
func WithClock(now func() time.Time) Option { return func(m *Machine) { m.now = now } }

// WithLogger sets the logger for invariant violations.
func WithLogger(l *slog.Logger) Option { return func(m *Machine) { m.log = l } }

// NewMachine returns a machine over the standard catalog and board.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		catalog: cases.Standard(),
		board:   board.Standard(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(m)
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	return m
}

// Board returns the board the machine moves players on.
func (m *Machine) Board() *board.Board { return m.board }

// Catalog returns the catalog prompts are drawn from.
func (m *Machine) Catalog() *cases.Catalog { return m.catalog }

// Reduce returns the state after a. When a's preconditions do not hold the
// input state is returned unchanged, with the same Seq. Reduce never
// mutates s.
func (m *Machine) Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	if _, ok := a.(ResetGame); !ok && s.Phase != PhaseSetup && s.Phase != PhaseEnd {
		if _, ok := s.Current(); !ok {
			m.log.Error("turn index out of range",
				"turn_index", s.TurnIndex, "players", len(s.Players), "phase", s.Phase, "action", a.Kind())
			return s
		}
	}
	next, ok := m.apply(s.clone(), a)
	if !ok {
		return s
	}
	next.Seq = s.Seq + 1
	return next
}

func (m *Machine) apply(s State, a Action) (State, bool) {
	switch a := a.(type) {
	case StartGame:
		return m.startGame(s, a)
	case StartTurn:
		if s.Phase != PhaseIdle {
			return s, false
		}
		s.Phase = PhaseChoice
		s.LastGrading = nil
		s.ActiveEvent = nil
		s.ChosenDifficulty = ""
		return s, true
	case ChooseDifficulty:
		return m.chooseDifficulty(s, a.Difficulty)
	case SubmitAnswer:
		return m.submitAnswer(s, a)
	case ExpireTimer:
		return m.expireTimer(s)
	case ApplyGrading:
		return m.applyGrading(s)
	case ShowResults:
		return m.showResults(s)
	case ResolveEvent:
		return m.resolveEvent(s, a.Outcome, -1)
	case ChooseEventOption:
		return m.chooseEventOption(s, a.Index)
	case ContinueEvent:
		if s.Phase != PhaseEvent || !s.ActiveEvent.Resolved() {
			return s, false
		}
		s.Phase = PhaseTransition
		return s, true
	case ChooseForkPath:
		return m.chooseForkPath(s, a.Target)
	case EndTurn:
		return m.endTurn(s)
	case UseAdd60:
		return m.spendCredit(s, func(c *player.Credits) *int { return &c.Add60 }, func(p *cases.PromptInstance) bool {
			p.ExtraTime += ExtraTimeSecs
			return true
		})
	case UseGooglePeek:
		return m.spendCredit(s, func(c *player.Credits) *int { return &c.GooglePeek }, func(p *cases.PromptInstance) bool {
			if p.PeekShown {
				return false
			}
			p.PeekShown = true
			return true
		})
	case UseHint:
		return m.spendCredit(s, func(c *player.Credits) *int { return &c.Hint }, func(p *cases.PromptInstance) bool {
			if p.HintShown {
				return false
			}
			p.HintShown = true
			return true
		})
	case ResetGame:
		return Fresh(), true
	default:
		return s, false
	}
}

func (m *Machine) startGame(s State, a StartGame) (State, bool) {
	if s.Phase != PhaseSetup {
		return s, false
	}
	if len(a.Players) < MinPlayers || len(a.Players) > MaxPlayers {
		return s, false
	}
	players := make([]player.Player, 0, len(a.Players))
	for _, name := range a.Players {
		name = strings.TrimSpace(name)
		if name == "" {
			return s, false
		}
		players = append(players, player.New(name))
	}
	now := m.now()
	return State{
		ID:        m.newID(),
		Players:   players,
		Phase:     PhaseIdle,
		Settings:  a.Settings.Normalize(),
		StartedAt: now,
		RNG:       random.SeedFrom(now, 0, 0),
	}, true
}

func (m *Machine) chooseDifficulty(s State, d cases.Difficulty) (State, bool) {
	if s.Phase != PhaseChoice {
		return s, false
	}
	p := &s.Players[s.TurnIndex]
	if p.Pending.DifficultyOverride != "" {
		d = p.Pending.DifficultyOverride
		p.Pending.DifficultyOverride = ""
	}
	if _, err := cases.ParseDifficulty(string(d)); err != nil {
		return s, false
	}

	now := m.now()
	src := random.New(random.SeedFrom(now, s.TurnIndex, s.PromptsCompleted))
	t, ok := m.catalog.Pick(src, d)
	if !ok {
		m.log.Error("no templates for difficulty", "difficulty", d)
		return s, false
	}
	// Instantiate from the state after the pick so the first parameter is
	// not sampled with the draw that chose the template.
	prompt := cases.Generate(t, src.State())
	if prompt.TimeLimit <= 0 {
		prompt.TimeLimit = s.Settings.TimerSecs
	}

	s.ChosenDifficulty = d
	s.Prompt = prompt
	s.PromptStartedAt = now
	s.Phase = PhasePrompt
	return s, true
}

func (m *Machine) submitAnswer(s State, a SubmitAnswer) (State, bool) {
	if s.Phase != PhasePrompt || s.Prompt == nil {
		return s, false
	}
	p := &s.Players[s.TurnIndex]
	q := s.Prompt
	boosted := p.Pending.ToleranceBoost

	g := Grading{Truth: q.Truth.Final}
	if q.IsMCQ() {
		r := grading.GradeMCQ(a.Choice, q.Decision.Points)
		g.Points, g.Choice, g.Truth = r.Points, a.Choice, float64(q.Truth.CorrectIndex)
	} else {
		bands := grading.DefaultBands
		rule := grading.RuleNone
		if t, ok := m.catalog.Get(q.TemplateID); ok {
			if len(t.Bands) > 0 {
				bands = t.Bands
			}
			rule = grading.ParseRule(t.SevereMiss)
		}
		r := grading.GradeNumeric(a.Answer, q.Truth.Final, bands, rule, boosted)
		g.Points, g.SevereMiss, g.RelativeError, g.Boosted = r.Points, r.SevereMiss, r.RelativeError, r.Boosted
		g.Answer = a.Answer
	}

	p.Points += g.Points
	p.Pending.ToleranceBoost = false
	s.LastGrading = &g
	s.Phase = PhaseGrading
	return s, true
}

func (m *Machine) expireTimer(s State) (State, bool) {
	if s.Phase != PhasePrompt || s.Prompt == nil {
		return s, false
	}
	p := &s.Players[s.TurnIndex]
	p.Pending.ToleranceBoost = false
	truth := s.Prompt.Truth.Final
	if s.Prompt.IsMCQ() {
		truth = float64(s.Prompt.Truth.CorrectIndex)
	}
	s.LastGrading = &Grading{Truth: truth, Choice: -1, TimedOut: true}
	s.Phase = PhaseGrading
	return s, true
}

func (m *Machine) applyGrading(s State) (State, bool) {
	if s.Phase != PhaseGrading || s.LastGrading == nil {
		return s, false
	}
	p := &s.Players[s.TurnIndex]
	g := s.LastGrading

	if g.Points >= grading.GoodAnswer {
		p.Streak++
	} else {
		p.Streak = 0
	}
	g.Bonus = p.Streak >= 3 && p.Streak%3 == 0

	switch {
	case g.SevereMiss:
		g.Moved = -1
	case g.Bonus:
		g.Moved = 2
	default:
		g.Moved = 1
	}
	*p = p.MoveOn(m.board, g.Moved)
	s.Phase = PhaseResults
	return s, true
}

func (m *Machine) showResults(s State) (State, bool) {
	if s.Phase != PhaseResults {
		return s, false
	}
	p := s.Players[s.TurnIndex]
	tile, _ := m.board.Tile(p.Position)
	switch {
	case tile.Kind == board.KindEvent:
		id := tile.EventID
		if id == "" {
			src := random.New(s.RNG)
			e, ok := events.Random(src, wildcardType(src), s.RecentEvents)
			s.RNG = src.State()
			if !ok {
				s.Phase = PhaseTransition
				return s, true
			}
			id = e.ID
		}
		s.ActiveEvent = &ActiveEvent{ID: id, Option: -1}
		s.Phase = PhaseEvent
	case m.board.IsFork(p.Position):
		s.Fork = &Fork{From: p.Position, Options: append([]int(nil), tile.Next...)}
		s.Phase = PhaseFork
	default:
		s.Phase = PhaseTransition
	}
	return s, true
}

// wildcardType draws the card type for an event tile without a fixed card:
// half positive, a quarter each negative and choice.
func wildcardType(src *random.Source) events.Type {
	switch r := src.Float(); {
	case r < 0.5:
		return events.TypePositive
	case r < 0.75:
		return events.TypeNegative
	default:
		return events.TypeChoice
	}
}

func (m *Machine) chooseEventOption(s State, index int) (State, bool) {
	if s.Phase != PhaseEvent || s.ActiveEvent == nil || s.ActiveEvent.Resolved() {
		return s, false
	}
	e, ok := events.Get(s.ActiveEvent.ID)
	if !ok || index < 0 || index >= len(e.Options) {
		return s, false
	}
	src := random.New(s.RNG)
	o := e.Options[index].Resolve(src)
	s.RNG = src.State()
	return m.resolveEvent(s, &o, index)
}

func (m *Machine) resolveEvent(s State, o *events.Outcome, option int) (State, bool) {
	if s.Phase != PhaseEvent || s.ActiveEvent == nil || s.ActiveEvent.Resolved() {
		return s, false
	}
	if o == nil {
		e, ok := events.Get(s.ActiveEvent.ID)
		if !ok || e.Effect == nil {
			return s, false
		}
		o = e.Effect
	}
	out := *o
	p := &s.Players[s.TurnIndex]
	*p = events.Apply(*p, out, m.board)

	s.ActiveEvent.Outcome = &out
	s.ActiveEvent.Option = option
	s.RecentEvents = append(s.RecentEvents, s.ActiveEvent.ID)
	if n := len(s.RecentEvents); n > RecentEventsKept {
		s.RecentEvents = s.RecentEvents[n-RecentEventsKept:]
	}
	return s, true
}

func (m *Machine) chooseForkPath(s State, target int) (State, bool) {
	if s.Phase != PhaseFork || s.Fork == nil {
		return s, false
	}
	valid := false
	for _, opt := range s.Fork.Options {
		if opt == target {
			valid = true
			break
		}
	}
	if !valid {
		return s, false
	}
	p := &s.Players[s.TurnIndex]
	*p = p.PlaceOn(m.board, target)
	s.Fork = nil
	s.Prompt = nil
	s.LastGrading = nil
	s.ChosenDifficulty = ""
	s.Phase = PhaseChoice
	return s, true
}

func (m *Machine) endTurn(s State) (State, bool) {
	if s.Phase != PhaseTransition {
		return s, false
	}
	n := len(s.Players)
	s.TurnIndex = (s.TurnIndex + 1) % n
	s.PromptsCompleted++
	s.Prompt = nil
	s.ActiveEvent = nil
	s.Fork = nil
	s.PromptStartedAt = time.Time{}

	over := s.Settings.Session == SessionShort && s.PromptsCompleted >= ShortSessionRounds*n
	for _, p := range s.Players {
		if m.board.IsTerminal(p.Position) {
			over = true
		}
	}
	if over {
		s.Phase = PhaseEnd
		s.EndedAt = m.now()
	} else {
		s.Phase = PhaseIdle
	}
	return s, true
}

// spendCredit runs effect on the open prompt when the current player holds
// the credit. Spending costs one credit and CreditCost points, which may
// leave the score negative.
func (m *Machine) spendCredit(s State, counter func(*player.Credits) *int, effect func(*cases.PromptInstance) bool) (State, bool) {
	if s.Phase != PhasePrompt || s.Prompt == nil {
		return s, false
	}
	p := &s.Players[s.TurnIndex]
	c := counter(&p.Credits)
	if *c <= 0 {
		return s, false
	}
	if !effect(s.Prompt) {
		return s, false
	}
	*c--
	p.Points -= CreditCost
	return s, true
}
