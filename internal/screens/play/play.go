// Package play is the pass-the-device game table: it renders the live game
// and turns key presses into actions on the engine.
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/coach"
	"github.com/abhisek/casetrack/internal/events"
	"github.com/abhisek/casetrack/internal/game"
	"github.com/abhisek/casetrack/internal/router"
	"github.com/abhisek/casetrack/internal/screen"
	"github.com/abhisek/casetrack/internal/screens/summary"
	"github.com/abhisek/casetrack/internal/ui/components"
	"github.com/abhisek/casetrack/internal/ui/layout"
)

// Options tunes the table. Zero pauses use the engine defaults.
type Options struct {
	GradingPause    time.Duration
	TransitionPause time.Duration
	// Now is the clock the prompt countdown reads.
	Now func() time.Time
}

var difficulties = []cases.Difficulty{cases.DifficultyQuick, cases.DifficultyFull}

// PlayScreen implements screen.Screen for a game in progress.
type PlayScreen struct {
	engine *game.Engine
	coach  *coach.Coach
	opts   Options

	state  game.State
	synced bool
	input  components.TextInput
	picker components.MultiChoice

	hint        *coach.Hint
	peek        *coach.Peek
	loadingHint bool
	loadingPeek bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a table over engine. A nil coach serves catalog text.
func New(engine *game.Engine, c *coach.Coach, opts Options) *PlayScreen {
	if c == nil {
		c = coach.New(nil, engine.Machine().Catalog(), coach.DefaultConfig(), nil)
	}
	if opts.GradingPause <= 0 {
		opts.GradingPause = game.DefaultGradingPause
	}
	if opts.TransitionPause <= 0 {
		opts.TransitionPause = game.DefaultTransitionPause
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &PlayScreen{engine: engine, coach: c, opts: opts}
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(s.sync(s.engine.State()), tickCmd())
}

func (s *PlayScreen) Title() string {
	switch s.state.Phase {
	case game.PhasePrompt, game.PhaseGrading:
		if q := s.state.Prompt; q != nil {
			return q.Title
		}
	case game.PhaseResults:
		return "Results"
	case game.PhaseEvent:
		return "Career Event"
	case game.PhaseFork:
		return "Risk Fork"
	}
	return "Career Track"
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch s.state.Phase {
	case game.PhaseIdle:
		return []layout.KeyHint{{Key: "Enter", Description: "Start turn"}, {Key: "Esc", Description: "Menu"}}
	case game.PhaseChoice, game.PhaseFork:
		return []layout.KeyHint{{Key: "↑↓", Description: "Choose"}, {Key: "Enter", Description: "Confirm"}}
	case game.PhasePrompt:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+T", Description: "+60s"},
			{Key: "Ctrl+G", Description: "Peek"},
			{Key: "Ctrl+E", Description: "Hint"},
		}
	case game.PhaseResults:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	case game.PhaseEvent:
		if s.state.ActiveEvent.Resolved() {
			return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
		}
		if len(s.picker.Options) > 0 {
			return []layout.KeyHint{{Key: "↑↓", Description: "Choose"}, {Key: "Enter", Description: "Confirm"}}
		}
		return []layout.KeyHint{{Key: "Enter", Description: "Accept"}}
	}
	return nil
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s, tea.Batch(tickCmd(), s.checkClock())

	case advanceMsg:
		next, _ := s.engine.DispatchIf(context.Background(), msg.Seq, msg.Action)
		return s, s.sync(next)

	case hintMsg:
		s.loadingHint = false
		if q := s.state.Prompt; q != nil && q.Seed == msg.Seed {
			h := msg.Hint
			s.hint = &h
		}
		return s, nil

	case peekMsg:
		s.loadingPeek = false
		if q := s.state.Prompt; q != nil && q.Seed == msg.Seed {
			p := msg.Peek
			s.peek = &p
		}
		return s, nil

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	if s.state.Phase == game.PhasePrompt && !s.state.Prompt.IsMCQ() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// dispatch sends a against the state this screen last rendered.
func (s *PlayScreen) dispatch(a game.Action) tea.Cmd {
	next, _ := s.engine.DispatchIf(context.Background(), s.state.Seq, a)
	return s.sync(next)
}

// sync adopts next. Entering a phase resets the phase's widgets and arms
// any pause that ends it.
func (s *PlayScreen) sync(next game.State) tea.Cmd {
	if s.synced && next.Seq == s.state.Seq {
		return nil
	}
	prev := s.state
	entered := !s.synced || prev.Phase != next.Phase
	s.state, s.synced = next, true

	var cmds []tea.Cmd
	if entered {
		cmds = append(cmds, s.enter(next))
	}
	if next.Phase == game.PhasePrompt {
		cmds = append(cmds, s.fetchCoaching())
	}
	return tea.Batch(cmds...)
}

func (s *PlayScreen) enter(st game.State) tea.Cmd {
	switch st.Phase {
	case game.PhaseChoice:
		s.picker = components.NewMultiChoice([]string{
			"Quick math: a one-step estimate",
			"Full case: multi-step math or a judgment call",
		})
	case game.PhasePrompt:
		s.hint, s.peek = nil, nil
		s.loadingHint, s.loadingPeek = false, false
		if st.Prompt.IsMCQ() {
			s.picker = components.NewMultiChoice(st.Prompt.Decision.Options)
			return nil
		}
		s.input = components.NewTextInput("e.g. 1250, 1.2k, $3m", 24)
		return s.input.Init()
	case game.PhaseGrading:
		if st.Prompt != nil && st.Prompt.IsMCQ() && st.LastGrading != nil {
			s.picker.Submitted = true
			s.picker.ChosenIndex = st.LastGrading.Choice
			s.picker.Reveal(st.Prompt.Truth.CorrectIndex)
		}
		return s.advanceAfter(s.opts.GradingPause, st.Seq, game.ApplyGrading{})
	case game.PhaseEvent:
		s.picker = components.NewMultiChoice(nil)
		if e, ok := events.Get(st.ActiveEvent.ID); ok && e.IsChoice() {
			opts := make([]string, len(e.Options))
			for i, o := range e.Options {
				opts[i] = o.Text
			}
			s.picker = components.NewMultiChoice(opts)
		}
	case game.PhaseFork:
		s.picker = components.NewMultiChoice(s.forkLabels(st.Fork))
	case game.PhaseTransition:
		return s.advanceAfter(s.opts.TransitionPause, st.Seq, game.EndTurn{})
	case game.PhaseEnd:
		sum := s.engine.Machine().Summarize(st)
		engine := s.engine
		done := func() tea.Cmd {
			engine.Dispatch(context.Background(), game.ResetGame{})
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum, done)}
		}
	case game.PhaseSetup:
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

func (s *PlayScreen) forkLabels(f *game.Fork) []string {
	if f == nil {
		return nil
	}
	b := s.engine.Machine().Board()
	labels := make([]string, len(f.Options))
	for i, target := range f.Options {
		t, _ := b.Tile(target)
		switch {
		case i == 0:
			labels[i] = "Stay the course"
		case t.Label != "":
			labels[i] = "Take the risk: " + t.Label
		default:
			labels[i] = "Take the risk"
		}
	}
	return labels
}

func (s *PlayScreen) advanceAfter(d time.Duration, seq uint64, a game.Action) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{Seq: seq, Action: a}
	})
}

// checkClock ends the prompt once its deadline has passed.
func (s *PlayScreen) checkClock() tea.Cmd {
	if s.state.Phase != game.PhasePrompt {
		return nil
	}
	d := s.state.Deadline()
	if d.IsZero() || s.opts.Now().Before(d) {
		return nil
	}
	return s.dispatch(game.ExpireTimer{})
}

// remaining is the whole seconds left on the prompt clock.
func (s *PlayScreen) remaining() int {
	d := s.state.Deadline()
	if d.IsZero() {
		return 0
	}
	return max(int(d.Sub(s.opts.Now()).Round(time.Second)/time.Second), 0)
}

// fetchCoaching asks the coach for any revealed hint or peek not yet shown.
func (s *PlayScreen) fetchCoaching() tea.Cmd {
	q := s.state.Prompt
	if q == nil {
		return nil
	}
	prompt := *q
	var cmds []tea.Cmd
	if q.HintShown && s.hint == nil && !s.loadingHint {
		s.loadingHint = true
		cmds = append(cmds, func() tea.Msg {
			return hintMsg{Seed: prompt.Seed, Hint: s.coach.Hint(context.Background(), &prompt)}
		})
	}
	if q.PeekShown && s.peek == nil && !s.loadingPeek {
		s.loadingPeek = true
		cmds = append(cmds, func() tea.Msg {
			return peekMsg{Seed: prompt.Seed, Peek: s.coach.Peek(context.Background(), &prompt)}
		})
	}
	return tea.Batch(cmds...)
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	st := s.state

	switch st.Phase {
	case game.PhaseIdle:
		if key == "enter" || key == "space" {
			return s.dispatch(game.StartTurn{})
		}

	case game.PhaseChoice:
		s.picker, _ = s.picker.Update(msg)
		if s.picker.Submitted {
			return s.dispatch(game.ChooseDifficulty{Difficulty: difficulties[s.picker.ChosenIndex]})
		}

	case game.PhasePrompt:
		switch key {
		case "ctrl+t":
			return s.dispatch(game.UseAdd60{})
		case "ctrl+g":
			return s.dispatch(game.UseGooglePeek{})
		case "ctrl+e":
			return s.dispatch(game.UseHint{})
		}
		if st.Prompt.IsMCQ() {
			s.picker, _ = s.picker.Update(msg)
			if s.picker.Submitted {
				return s.dispatch(game.SubmitAnswer{Choice: s.picker.ChosenIndex})
			}
			return nil
		}
		if key == "enter" {
			ans, err := cases.ParseAnswer(s.input.Value(), st.Prompt.Decision)
			if err != nil {
				s.input.Reject(err.Error())
				return nil
			}
			return s.dispatch(game.SubmitAnswer{Answer: ans.Value})
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd

	case game.PhaseResults:
		if key == "enter" || key == "space" {
			return s.dispatch(game.ShowResults{})
		}

	case game.PhaseEvent:
		if st.ActiveEvent.Resolved() {
			if key == "enter" || key == "space" {
				return s.dispatch(game.ContinueEvent{})
			}
			return nil
		}
		if len(s.picker.Options) == 0 {
			if key == "enter" || key == "space" {
				return s.dispatch(game.ResolveEvent{})
			}
			return nil
		}
		s.picker, _ = s.picker.Update(msg)
		if s.picker.Submitted {
			return s.dispatch(game.ChooseEventOption{Index: s.picker.ChosenIndex})
		}

	case game.PhaseFork:
		s.picker, _ = s.picker.Update(msg)
		if s.picker.Submitted && st.Fork != nil {
			return s.dispatch(game.ChooseForkPath{Target: st.Fork.Options[s.picker.ChosenIndex]})
		}
	}
	return nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
