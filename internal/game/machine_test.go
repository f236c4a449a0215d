package game

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/abhisek/casetrack/internal/board"
	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/events"
	"github.com/abhisek/casetrack/internal/player"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMachine(opts ...Option) *Machine {
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithLogger(quietLogger()),
	}
	return NewMachine(append(base, opts...)...)
}

func startedGame(t *testing.T, m *Machine, names ...string) State {
	t.Helper()
	if len(names) == 0 {
		names = []string{"Ada", "Bo"}
	}
	s := m.Reduce(Fresh(), StartGame{Players: names})
	if s.Phase != PhaseIdle {
		t.Fatalf("StartGame phase = %s, want idle", s.Phase)
	}
	return s
}

// atPrompt puts the current player in front of q.
func atPrompt(s State, q *cases.PromptInstance) State {
	s.Phase = PhasePrompt
	s.Prompt = q
	return s
}

func coffeePrompt(t *testing.T) *cases.PromptInstance {
	t.Helper()
	tmpl, ok := cases.Standard().Get("qm-coffee-revenue-2step")
	if !ok {
		t.Fatal("coffee template missing")
	}
	return &cases.PromptInstance{
		TemplateID: tmpl.ID,
		Difficulty: tmpl.Difficulty,
		Decision:   tmpl.Decision,
		Values:     cases.Values{{Name: "customers", Value: 300}, {Name: "buyPct", Value: 50}, {Name: "price", Value: 5}},
		Truth:      cases.Truth{Final: 750},
		TimeLimit:  75,
	}
}

func mcqPrompt(t *testing.T) *cases.PromptInstance {
	t.Helper()
	tmpl, ok := cases.Standard().Get("mcq-market-entry-decision")
	if !ok {
		t.Fatal("market entry template missing")
	}
	return cases.Generate(tmpl, 1)
}

// genericPrompt grades with the default bands and no severe-miss rule.
func genericPrompt(truth float64) *cases.PromptInstance {
	return &cases.PromptInstance{TemplateID: "adhoc", Decision: cases.Numeric(), Truth: cases.Truth{Final: truth}, TimeLimit: 75}
}

func TestStartGame_Validation(t *testing.T) {
	m := newTestMachine()
	tests := []struct {
		name    string
		players []string
		ok      bool
	}{
		{"one player", []string{"Ada"}, false},
		{"five players", []string{"A", "B", "C", "D", "E"}, false},
		{"blank name", []string{"Ada", "   "}, false},
		{"two players", []string{"Ada", "Bo"}, true},
		{"four players", []string{"A", "B", "C", "D"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := m.Reduce(Fresh(), StartGame{Players: tt.players})
			if got := s.Phase == PhaseIdle; got != tt.ok {
				t.Fatalf("started = %v, want %v (phase %s)", got, tt.ok, s.Phase)
			}
			if !tt.ok && s.Seq != 0 {
				t.Errorf("rejected start changed seq to %d", s.Seq)
			}
		})
	}
}

func TestStartGame_InitialState(t *testing.T) {
	m := newTestMachine()
	s := m.Reduce(Fresh(), StartGame{Players: []string{" Ada ", "Bo"}, Settings: Settings{TimerSecs: 42, Session: "marathon"}})
	if s.ID == "" || !s.StartedAt.Equal(testNow) {
		t.Errorf("id %q started %v", s.ID, s.StartedAt)
	}
	if s.Settings != (Settings{TimerSecs: 75, Session: SessionStandard}) {
		t.Errorf("settings = %+v, want defaults", s.Settings)
	}
	if s.Players[0].Name != "Ada" {
		t.Errorf("name = %q, want trimmed", s.Players[0].Name)
	}
	for _, p := range s.Players {
		if p.Position != 0 || p.Points != 0 || p.Credits != player.StartingCredits || p.Rank != board.RankAssociate {
			t.Errorf("player = %+v", p)
		}
	}
	if again := m.Reduce(s, StartGame{Players: []string{"X", "Y"}}); again.Seq != s.Seq {
		t.Error("StartGame outside setup should be a no-op")
	}
}

func TestCoffeeRevenueScenario(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s = m.Reduce(s, StartTurn{})
	if s.Phase != PhaseChoice {
		t.Fatalf("phase = %s, want choice", s.Phase)
	}
	s = atPrompt(s, coffeePrompt(t))

	s = m.Reduce(s, SubmitAnswer{Answer: 750})
	if s.Phase != PhaseGrading {
		t.Fatalf("phase = %s, want grading", s.Phase)
	}
	if s.LastGrading.Points != 4 || s.Players[0].Points != 4 {
		t.Fatalf("grading %+v player points %d, want 4", s.LastGrading, s.Players[0].Points)
	}

	s = m.Reduce(s, ApplyGrading{})
	p := s.Players[0]
	if s.Phase != PhaseResults || p.Position != 1 || p.Streak != 1 {
		t.Fatalf("after apply: phase %s pos %d streak %d", s.Phase, p.Position, p.Streak)
	}
	if p.Points != 4 {
		t.Errorf("points changed on apply: %d", p.Points)
	}

	s = m.Reduce(s, ShowResults{})
	if s.Phase != PhaseTransition {
		t.Fatalf("phase = %s, want transition", s.Phase)
	}
	s = m.Reduce(s, EndTurn{})
	if s.Phase != PhaseIdle || s.TurnIndex != 1 || s.PromptsCompleted != 1 || s.Prompt != nil {
		t.Errorf("after end turn: phase %s turn %d completed %d prompt %v", s.Phase, s.TurnIndex, s.PromptsCompleted, s.Prompt)
	}
}

func TestSubmitAnswer_MCQ(t *testing.T) {
	m := newTestMachine()
	want := []int{2, 4, 1, 3}
	for choice, points := range want {
		s := atPrompt(startedGame(t, m), mcqPrompt(t))
		s = m.Reduce(s, SubmitAnswer{Choice: choice})
		if s.LastGrading.Points != points {
			t.Errorf("choice %d: points = %d, want %d", choice, s.LastGrading.Points, points)
		}
		if s.LastGrading.SevereMiss {
			t.Errorf("choice %d: MCQ reported a severe miss", choice)
		}
		if s.LastGrading.Truth != 1 {
			t.Errorf("truth index = %v, want 1", s.LastGrading.Truth)
		}
	}

	s := atPrompt(startedGame(t, m), mcqPrompt(t))
	if s = m.Reduce(s, SubmitAnswer{Choice: 7}); s.LastGrading.Points != 0 {
		t.Errorf("out-of-range choice earned %d", s.LastGrading.Points)
	}
}

func TestForkScenario(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s.Players[0] = s.Players[0].PlaceOn(m.Board(), 5)
	s = atPrompt(s, genericPrompt(100))

	s = m.Reduce(s, SubmitAnswer{Answer: 100})
	s = m.Reduce(s, ApplyGrading{})
	s = m.Reduce(s, ShowResults{})
	if s.Phase != PhaseFork || s.Fork == nil {
		t.Fatalf("phase = %s, want fork", s.Phase)
	}
	if s.Fork.From != 6 || len(s.Fork.Options) != 2 || s.Fork.Options[0] != 7 || s.Fork.Options[1] != 19 {
		t.Fatalf("fork = %+v, want from 6 to [7 19]", s.Fork)
	}

	if bad := m.Reduce(s, ChooseForkPath{Target: 8}); bad.Seq != s.Seq {
		t.Error("choosing a non-option should be a no-op")
	}

	s = m.Reduce(s, ChooseForkPath{Target: 19})
	p := s.Players[0]
	if s.Phase != PhaseChoice || p.Position != 19 || s.Fork != nil {
		t.Fatalf("after fork: phase %s pos %d fork %v", s.Phase, p.Position, s.Fork)
	}
	if p.Rank != board.RankAnalyst {
		t.Errorf("rank = %q, want Analyst", p.Rank)
	}
	if s.TurnIndex != 0 {
		t.Error("fork choice must not pass the turn")
	}
}

func TestApplyGrading_Streaks(t *testing.T) {
	m := newTestMachine()
	tests := []struct {
		name       string
		streak     int
		points     int
		severe     bool
		wantStreak int
		wantMoved  int
	}{
		{"good answer", 0, 2, false, 1, 1},
		{"third in a row earns bonus", 2, 3, false, 3, 2},
		{"sixth in a row earns bonus", 5, 4, false, 6, 2},
		{"fourth in a row no bonus", 3, 4, false, 4, 1},
		{"weak answer resets", 4, 1, false, 0, 1},
		{"severe miss overrides bonus", 2, 2, true, 3, -1},
		{"severe miss resets", 3, 0, true, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startedGame(t, m)
			s.Players[0] = s.Players[0].PlaceOn(m.Board(), 9)
			s.Players[0].Streak = tt.streak
			s.Phase = PhaseGrading
			s.Prompt = genericPrompt(1)
			s.LastGrading = &Grading{Points: tt.points, SevereMiss: tt.severe}

			s = m.Reduce(s, ApplyGrading{})
			p := s.Players[0]
			if p.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", p.Streak, tt.wantStreak)
			}
			if s.LastGrading.Moved != tt.wantMoved || p.Position != 9+tt.wantMoved {
				t.Errorf("moved %d to %d, want %d", s.LastGrading.Moved, p.Position, tt.wantMoved)
			}
		})
	}
}

func TestApplyGrading_SevereMissAtStartStaysOnBoard(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s.Phase = PhaseGrading
	s.Prompt = genericPrompt(1)
	s.LastGrading = &Grading{SevereMiss: true}
	s = m.Reduce(s, ApplyGrading{})
	if s.Players[0].Position != 0 {
		t.Errorf("position = %d, want 0", s.Players[0].Position)
	}
}

func TestExpireTimer(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s.Players[0].Streak = 2
	s.Players[0].Pending.ToleranceBoost = true
	s = atPrompt(s, genericPrompt(100))

	s = m.Reduce(s, ExpireTimer{})
	if s.Phase != PhaseGrading || !s.LastGrading.TimedOut || s.LastGrading.Points != 0 || s.LastGrading.SevereMiss {
		t.Fatalf("grading = %+v phase %s", s.LastGrading, s.Phase)
	}
	if s.Players[0].Pending.ToleranceBoost {
		t.Error("boost should be consumed by a timeout")
	}
	s = m.Reduce(s, ApplyGrading{})
	if p := s.Players[0]; p.Streak != 0 || p.Position != 1 {
		t.Errorf("after timeout: streak %d pos %d", p.Streak, p.Position)
	}
}

func TestSubmitAnswer_ToleranceBoost(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s = atPrompt(s, genericPrompt(100))

	plain := m.Reduce(s, SubmitAnswer{Answer: 112})
	if plain.LastGrading.Points != 2 {
		t.Fatalf("unboosted points = %d, want 2", plain.LastGrading.Points)
	}

	s.Players[0].Pending.ToleranceBoost = true
	boosted := m.Reduce(s, SubmitAnswer{Answer: 112})
	if boosted.LastGrading.Points != 3 || !boosted.LastGrading.Boosted {
		t.Errorf("boosted grading = %+v, want 3 points", boosted.LastGrading)
	}
	if boosted.Players[0].Pending.ToleranceBoost {
		t.Error("boost not consumed")
	}
}

func TestSubmitAnswer_SevereMissRule(t *testing.T) {
	m := newTestMachine()
	tmpl, ok := cases.Standard().Get("qm-growth-rate")
	if !ok {
		t.Fatal("growth template missing")
	}
	q := &cases.PromptInstance{TemplateID: tmpl.ID, Decision: tmpl.Decision, Truth: cases.Truth{Final: 12}}
	s := m.Reduce(atPrompt(startedGame(t, m), q), SubmitAnswer{Answer: -12})
	if !s.LastGrading.SevereMiss || s.LastGrading.Points != 0 {
		t.Errorf("grading = %+v, want severe miss", s.LastGrading)
	}
}

func TestChooseDifficulty(t *testing.T) {
	m := newTestMachine()
	s := m.Reduce(startedGame(t, m), StartTurn{})

	if bad := m.Reduce(s, ChooseDifficulty{Difficulty: "medium"}); bad.Seq != s.Seq {
		t.Error("unknown difficulty should be a no-op")
	}

	a := m.Reduce(s, ChooseDifficulty{Difficulty: cases.DifficultyQuick})
	b := m.Reduce(s, ChooseDifficulty{Difficulty: cases.DifficultyQuick})
	if a.Phase != PhasePrompt || a.Prompt == nil {
		t.Fatalf("phase = %s, want prompt", a.Phase)
	}
	if a.Prompt.Difficulty != cases.DifficultyQuick {
		t.Errorf("difficulty = %s", a.Prompt.Difficulty)
	}
	if a.Prompt.TemplateID != b.Prompt.TemplateID || a.Prompt.Stem != b.Prompt.Stem {
		t.Error("same clock and turn should instantiate the same prompt")
	}
	if a.Prompt.TimeLimit <= 0 || !a.PromptStartedAt.Equal(testNow) {
		t.Errorf("time limit %d started %v", a.Prompt.TimeLimit, a.PromptStartedAt)
	}
}

func TestChooseDifficulty_ParametersVaryAcrossClocks(t *testing.T) {
	now := testNow
	m := newTestMachine(WithClock(func() time.Time { return now }))
	s := m.Reduce(startedGame(t, m), StartTurn{})

	customers := map[float64]int{}
	for i := 0; i < 3000; i++ {
		now = testNow.Add(time.Duration(i*37) * time.Millisecond)
		q := m.Reduce(s, ChooseDifficulty{Difficulty: cases.DifficultyQuick}).Prompt
		if q.TemplateID == "qm-coffee-revenue-2step" {
			customers[q.Values.Get("customers")]++
		}
	}
	if len(customers) < 2 {
		t.Fatalf("coffee customers took values %v, want several", customers)
	}
}

func TestChooseDifficulty_OverrideWins(t *testing.T) {
	m := newTestMachine()
	s := m.Reduce(startedGame(t, m), StartTurn{})
	s.Players[0].Pending.DifficultyOverride = cases.DifficultyFull

	s = m.Reduce(s, ChooseDifficulty{Difficulty: cases.DifficultyQuick})
	if s.Prompt.Difficulty != cases.DifficultyFull || s.ChosenDifficulty != cases.DifficultyFull {
		t.Errorf("difficulty = %s, want full", s.Prompt.Difficulty)
	}
	if s.Players[0].Pending.DifficultyOverride != "" {
		t.Error("override not consumed")
	}
}

func TestChooseDifficulty_TimerFallback(t *testing.T) {
	catalog := cases.NewCatalog([]cases.Template{{
		ID: "t1", Difficulty: cases.DifficultyQuick, Title: "One", Stem: "Two plus {x}?",
		Params: []cases.Param{cases.P("x", 1, 1, 1)},
		Compute: func(v cases.Values) (cases.Truth, error) {
			return cases.Truth{Final: 2 + v.Get("x")}, nil
		},
	}})
	m := newTestMachine(WithCatalog(catalog))
	s := m.Reduce(Fresh(), StartGame{Players: []string{"Ada", "Bo"}, Settings: Settings{TimerSecs: 90}})
	s = m.Reduce(s, StartTurn{})
	s = m.Reduce(s, ChooseDifficulty{Difficulty: cases.DifficultyQuick})
	if s.Prompt.TimeLimit != 90 {
		t.Errorf("time limit = %d, want the 90s setting", s.Prompt.TimeLimit)
	}
	if s.Prompt.Truth.Final != 3 {
		t.Errorf("truth = %v, want 3", s.Prompt.Truth.Final)
	}

	empty := m.Reduce(m.Reduce(m.Reduce(Fresh(), StartGame{Players: []string{"A", "B"}}), StartTurn{}), ChooseDifficulty{Difficulty: cases.DifficultyFull})
	if empty.Phase != PhaseChoice {
		t.Errorf("difficulty with no templates should be a no-op, phase %s", empty.Phase)
	}
}

func TestCredits(t *testing.T) {
	m := newTestMachine()
	s := atPrompt(startedGame(t, m), genericPrompt(10))
	s.Players[0].Points = 3

	s = m.Reduce(s, UseHint{})
	if !s.Prompt.HintShown || s.Players[0].Credits.Hint != 0 || s.Players[0].Points != 2 {
		t.Fatalf("after hint: prompt %+v player %+v", s.Prompt, s.Players[0])
	}
	if again := m.Reduce(s, UseHint{}); again.Seq != s.Seq {
		t.Error("hint with no credits should be a no-op")
	}

	s = m.Reduce(s, UseGooglePeek{})
	if !s.Prompt.PeekShown || s.Players[0].Credits.GooglePeek != 0 || s.Players[0].Points != 1 {
		t.Fatalf("after peek: prompt %+v player %+v", s.Prompt, s.Players[0])
	}

	s = m.Reduce(s, UseAdd60{})
	s = m.Reduce(s, UseAdd60{})
	if s.Prompt.ExtraTime != 120 || s.Prompt.TotalTime() != 195 || s.Players[0].Credits.Add60 != 0 {
		t.Errorf("after add60 x2: extra %d credits %d", s.Prompt.ExtraTime, s.Players[0].Credits.Add60)
	}
	if s.Players[0].Points != -1 {
		t.Errorf("points = %d, want -1", s.Players[0].Points)
	}
	if again := m.Reduce(s, UseAdd60{}); again.Seq != s.Seq {
		t.Error("add60 with no credits should be a no-op")
	}

	idle := startedGame(t, m)
	if again := m.Reduce(idle, UseHint{}); again.Seq != idle.Seq {
		t.Error("credits outside the prompt phase should be a no-op")
	}
}

func TestEventTile_SimpleCard(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s.Players[0] = s.Players[0].PlaceOn(m.Board(), 3)
	s = atPrompt(s, genericPrompt(100))
	s = m.Reduce(s, SubmitAnswer{Answer: 100})
	s = m.Reduce(s, ApplyGrading{})
	s = m.Reduce(s, ShowResults{})
	if s.Phase != PhaseEvent || s.ActiveEvent == nil || s.ActiveEvent.ID != "networking-win" {
		t.Fatalf("phase %s event %+v, want networking-win", s.Phase, s.ActiveEvent)
	}

	if early := m.Reduce(s, ContinueEvent{}); early.Seq != s.Seq {
		t.Error("continue before resolving should be a no-op")
	}

	s = m.Reduce(s, ResolveEvent{})
	if s.Players[0].Credits.Hint != 2 {
		t.Errorf("hint credits = %d, want 2", s.Players[0].Credits.Hint)
	}
	if len(s.RecentEvents) != 1 || s.RecentEvents[0] != "networking-win" {
		t.Errorf("recent = %v", s.RecentEvents)
	}
	if again := m.Reduce(s, ResolveEvent{}); again.Seq != s.Seq {
		t.Error("resolving twice should be a no-op")
	}

	s = m.Reduce(s, ContinueEvent{})
	if s.Phase != PhaseTransition {
		t.Errorf("phase = %s, want transition", s.Phase)
	}
}

func TestEventTile_ChoiceCard(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s.Phase = PhaseEvent
	s.Players[0] = s.Players[0].PlaceOn(m.Board(), 15)
	s.ActiveEvent = &ActiveEvent{ID: "promotion-review", Option: -1}

	if noEffect := m.Reduce(s, ResolveEvent{}); noEffect.Seq != s.Seq {
		t.Error("a choice card has no effect of its own")
	}
	if bad := m.Reduce(s, ChooseEventOption{Index: 5}); bad.Seq != s.Seq {
		t.Error("out-of-range option should be a no-op")
	}

	safe := m.Reduce(s, ChooseEventOption{Index: 0})
	if safe.Players[0].Position != 16 || safe.RNG != s.RNG || safe.ActiveEvent.Option != 0 {
		t.Errorf("safe option: pos %d rng changed %v", safe.Players[0].Position, safe.RNG != s.RNG)
	}

	risky1 := m.Reduce(s, ChooseEventOption{Index: 1})
	risky2 := m.Reduce(s, ChooseEventOption{Index: 1})
	if risky1.RNG == s.RNG {
		t.Error("probabilistic option should advance the generator")
	}
	if risky1.Players[0].Position != risky2.Players[0].Position || risky1.RNG != risky2.RNG {
		t.Error("same state should resolve the same way")
	}
	if pos := risky1.Players[0].Position; pos != 15 && pos != 17 {
		t.Errorf("risky option moved to %d, want 15 or 17", pos)
	}
}

func TestResolveEvent_ExplicitOutcome(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s.Phase = PhaseEvent
	s.Players[0] = s.Players[0].PlaceOn(m.Board(), 23)
	s.ActiveEvent = &ActiveEvent{ID: "deal-closes", Option: -1}

	s = m.Reduce(s, ResolveEvent{Outcome: &events.Outcome{SkipToTerminal: true}})
	if s.Players[0].Position != m.Board().Terminal() || s.Players[0].Rank != board.RankPartner {
		t.Errorf("pos %d rank %q, want terminal", s.Players[0].Position, s.Players[0].Rank)
	}
}

func TestRecentEvents_KeepsLastFive(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	ids := []string{"networking-win", "client-win", "mentorship", "innovation-award", "staffing-crunch", "client-crisis"}
	for _, id := range ids {
		s.Phase = PhaseEvent
		s.ActiveEvent = &ActiveEvent{ID: id, Option: -1}
		s = m.Reduce(s, ResolveEvent{})
	}
	if len(s.RecentEvents) != RecentEventsKept || s.RecentEvents[0] != "client-win" {
		t.Errorf("recent = %v", s.RecentEvents)
	}
}

func TestWildcardEventTile(t *testing.T) {
	tiles := []board.Tile{
		{Index: 0, Kind: board.KindNormal, Next: []int{1}},
		{Index: 1, Kind: board.KindEvent, Next: []int{2}, Depth: 1},
		{Index: 2, Kind: board.KindTerminal, Prev: 1, Depth: 18},
	}
	m := newTestMachine(WithBoard(board.New(tiles)))
	s := startedGame(t, m)
	s = atPrompt(s, genericPrompt(100))
	s = m.Reduce(s, SubmitAnswer{Answer: 100})
	s = m.Reduce(s, ApplyGrading{})
	before := s.RNG
	s = m.Reduce(s, ShowResults{})
	if s.Phase != PhaseEvent || s.ActiveEvent == nil {
		t.Fatalf("phase = %s, want event", s.Phase)
	}
	if _, ok := events.Get(s.ActiveEvent.ID); !ok {
		t.Errorf("drew unknown event %q", s.ActiveEvent.ID)
	}
	if s.RNG == before {
		t.Error("wildcard draw should advance the generator")
	}
}

func TestStandardBoard_WildcardDealsUnfixedCards(t *testing.T) {
	m := newTestMachine()
	fixed := map[string]bool{}
	for _, tile := range m.Board().Tiles() {
		if tile.EventID != "" {
			fixed[tile.EventID] = true
		}
	}

	drawn := map[string]bool{}
	s := startedGame(t, m)
	for i := 0; i < 200; i++ {
		s.Players[0] = s.Players[0].PlaceOn(m.Board(), 8)
		s.Players[0].Streak = 0
		s.ActiveEvent = nil
		s = atPrompt(s, genericPrompt(100))
		s = m.Reduce(s, SubmitAnswer{Answer: 100})
		s = m.Reduce(s, ApplyGrading{})
		s = m.Reduce(s, ShowResults{})
		if s.Phase != PhaseEvent || s.ActiveEvent == nil {
			t.Fatalf("draw %d: phase = %s, want event", i, s.Phase)
		}
		drawn[s.ActiveEvent.ID] = true
		s.RecentEvents = append(s.RecentEvents, s.ActiveEvent.ID)
		if len(s.RecentEvents) > RecentEventsKept {
			s.RecentEvents = s.RecentEvents[1:]
		}
	}
	for _, id := range []string{"client-win", "mentorship", "innovation-award", "pivot-opportunity"} {
		if fixed[id] {
			t.Errorf("%s sits on a fixed tile", id)
		}
		if !drawn[id] {
			t.Errorf("%s never dealt by the wildcard tile, drew %v", id, drawn)
		}
	}
}

func TestEndTurn_TerminalEndsGame(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s.Players[0] = s.Players[0].PlaceOn(m.Board(), 17)
	s = atPrompt(s, genericPrompt(100))
	s = m.Reduce(s, SubmitAnswer{Answer: 100})
	s = m.Reduce(s, ApplyGrading{})
	s = m.Reduce(s, ShowResults{})
	s = m.Reduce(s, EndTurn{})
	if s.Phase != PhaseEnd || !s.EndedAt.Equal(testNow) {
		t.Fatalf("phase = %s, want end", s.Phase)
	}
	if s.Players[0].Rank != board.RankPartner {
		t.Errorf("rank = %q, want Partner", s.Players[0].Rank)
	}
	if again := m.Reduce(s, StartTurn{}); again.Seq != s.Seq {
		t.Error("a finished game should ignore START_TURN")
	}
}

func TestEndTurn_ShortSession(t *testing.T) {
	m := newTestMachine()
	s := m.Reduce(Fresh(), StartGame{Players: []string{"Ada", "Bo"}, Settings: Settings{Session: SessionShort}})
	s.Phase = PhaseTransition
	s.PromptsCompleted = ShortSessionRounds*2 - 2

	s = m.Reduce(s, EndTurn{})
	if s.Phase != PhaseIdle {
		t.Fatalf("phase = %s after %d prompts, want idle", s.Phase, s.PromptsCompleted)
	}
	s.Phase = PhaseTransition
	s = m.Reduce(s, EndTurn{})
	if s.Phase != PhaseEnd || s.PromptsCompleted != 16 {
		t.Errorf("phase = %s after %d prompts, want end", s.Phase, s.PromptsCompleted)
	}

	std := m.Reduce(Fresh(), StartGame{Players: []string{"Ada", "Bo"}})
	std.Phase = PhaseTransition
	std.PromptsCompleted = 100
	if std = m.Reduce(std, EndTurn{}); std.Phase != PhaseIdle {
		t.Errorf("standard session ended on prompt count")
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	m := newTestMachine()
	s := atPrompt(startedGame(t, m), coffeePrompt(t))
	_ = m.Reduce(s, SubmitAnswer{Answer: 750})
	if s.Players[0].Points != 0 || s.Phase != PhasePrompt || s.LastGrading != nil {
		t.Error("Reduce mutated its input")
	}
	_ = m.Reduce(s, UseHint{})
	if s.Prompt.HintShown {
		t.Error("Reduce mutated the input prompt")
	}
}

func TestReduce_InvalidTurnIndexIsNoOp(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m)
	s.TurnIndex = 9
	if got := m.Reduce(s, StartTurn{}); got.Seq != s.Seq {
		t.Error("out-of-range turn index should be a no-op")
	}
	if got := m.Reduce(s, ResetGame{}); got.Phase != PhaseSetup {
		t.Error("reset should still work")
	}
}

func TestResetGame(t *testing.T) {
	m := newTestMachine()
	s := atPrompt(startedGame(t, m), coffeePrompt(t))
	r := m.Reduce(s, ResetGame{})
	if r.Phase != PhaseSetup || len(r.Players) != 0 || r.Prompt != nil {
		t.Errorf("reset = %+v", r)
	}
	if r.Seq != s.Seq+1 {
		t.Errorf("seq = %d, want %d", r.Seq, s.Seq+1)
	}
}

func TestSummarize(t *testing.T) {
	m := newTestMachine()
	s := startedGame(t, m, "Ada", "Bo", "Cy")
	b := m.Board()
	s.Players[0] = s.Players[0].PlaceOn(b, 10)
	s.Players[1] = s.Players[1].PlaceOn(b, 22) // branch, depth 13
	s.Players[2] = s.Players[2].PlaceOn(b, 10)
	s.Players[2].Points = 9
	s.StartedAt = testNow.Add(-30 * time.Minute)
	s.EndedAt = testNow

	sum := m.Summarize(s)
	names := []string{sum.Standings[0].Name, sum.Standings[1].Name, sum.Standings[2].Name}
	if names[0] != "Bo" || names[1] != "Cy" || names[2] != "Ada" {
		t.Errorf("standings = %v, want [Bo Cy Ada]", names)
	}
	if sum.Winner.Name != "Bo" || sum.Duration != 30*time.Minute {
		t.Errorf("winner %q duration %v", sum.Winner.Name, sum.Duration)
	}
}
