// Package setup collects players and table settings for a new game.
package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casetrack/internal/game"
	"github.com/abhisek/casetrack/internal/router"
	"github.com/abhisek/casetrack/internal/screen"
	"github.com/abhisek/casetrack/internal/ui/components"
	"github.com/abhisek/casetrack/internal/ui/layout"
	"github.com/abhisek/casetrack/internal/ui/theme"
)

type step int

const (
	stepCount step = iota
	stepNames
	stepTimer
	stepSession
)

const maxNameLen = 16

var timerChoices = []int{60, 75, 90}

var sessionChoices = []game.SessionLength{game.SessionStandard, game.SessionShort}

// SetupScreen walks through player count, names, timer and session length,
// then starts the game and hands over to the table.
type SetupScreen struct {
	engine *game.Engine
	table  func() screen.Screen

	step     step
	count    int
	names    []string
	input    components.TextInput
	picker   components.MultiChoice
	settings game.Settings
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.BackHandler = (*SetupScreen)(nil)

// New creates a setup screen. table builds the screen that replaces this
// one once the game has started.
func New(engine *game.Engine, table func() screen.Screen) *SetupScreen {
	s := &SetupScreen{engine: engine, table: table}
	s.enter(stepCount)
	return s
}

func (s *SetupScreen) Init() tea.Cmd { return nil }

func (s *SetupScreen) Title() string { return "New Game" }

func (s *SetupScreen) HandlesBack() bool { return true }

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.step == stepNames {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Choose"}, {Key: "Enter", Description: "Confirm"}, {Key: "Esc", Description: "Back"}}
}

func (s *SetupScreen) enter(st step) tea.Cmd {
	s.step = st
	switch st {
	case stepCount:
		opts := make([]string, 0, game.MaxPlayers-game.MinPlayers+1)
		for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
			opts = append(opts, fmt.Sprintf("%d players", n))
		}
		s.picker = components.NewMultiChoice(opts)
	case stepNames:
		s.input = components.NewTextInput(fmt.Sprintf("Player %d", len(s.names)+1), maxNameLen)
		return s.input.Init()
	case stepTimer:
		s.picker = components.NewMultiChoice([]string{"60 seconds", "75 seconds", "90 seconds"})
		s.picker.Selected = 1
	case stepSession:
		s.picker = components.NewMultiChoice([]string{
			"Standard: play until someone retires",
			fmt.Sprintf("Short: %d rounds, best career wins", game.ShortSessionRounds),
		})
	}
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.step == stepNames {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}
	if kmsg.String() == "esc" {
		return s, s.back()
	}

	switch s.step {
	case stepCount:
		if s.pick(kmsg) {
			s.count = game.MinPlayers + s.picker.ChosenIndex
			s.names = nil
			return s, s.enter(stepNames)
		}
	case stepNames:
		if kmsg.String() != "enter" {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		name := strings.TrimSpace(s.input.Value())
		if name == "" {
			s.input.Reject("enter a name")
			return s, nil
		}
		s.names = append(s.names, name)
		if len(s.names) < s.count {
			return s, s.enter(stepNames)
		}
		return s, s.enter(stepTimer)
	case stepTimer:
		if s.pick(kmsg) {
			s.settings.TimerSecs = timerChoices[s.picker.ChosenIndex]
			return s, s.enter(stepSession)
		}
	case stepSession:
		if s.pick(kmsg) {
			s.settings.Session = sessionChoices[s.picker.ChosenIndex]
			return s, s.start()
		}
	}
	return s, nil
}

func (s *SetupScreen) pick(msg tea.KeyMsg) bool {
	s.picker, _ = s.picker.Update(msg)
	return s.picker.Submitted
}

func (s *SetupScreen) back() tea.Cmd {
	switch s.step {
	case stepCount:
		return func() tea.Msg { return router.PopScreenMsg{} }
	case stepNames:
		if len(s.names) == 0 {
			return s.enter(stepCount)
		}
		s.names = s.names[:len(s.names)-1]
		return s.enter(stepNames)
	case stepTimer:
		s.names = s.names[:len(s.names)-1]
		return s.enter(stepNames)
	default:
		return s.enter(s.step - 1)
	}
}

// start abandons any unfinished game and deals a new one.
func (s *SetupScreen) start() tea.Cmd {
	ctx := context.Background()
	if s.engine.State().Phase != game.PhaseSetup {
		s.engine.Dispatch(ctx, game.ResetGame{})
	}
	if _, err := s.engine.Apply(ctx, game.StartGame{Players: s.names, Settings: s.settings}); err != nil {
		s.enter(stepCount)
		return nil
	}
	next := s.table()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	switch s.step {
	case stepCount:
		b.WriteString(heading.Render("How many players?"))
		b.WriteString("\n\n")
		b.WriteString(s.picker.View())
	case stepNames:
		b.WriteString(heading.Render(fmt.Sprintf("Player %d of %d", len(s.names)+1, s.count)))
		b.WriteString("\n\n")
		b.WriteString("Name: " + s.input.View())
		if len(s.names) > 0 {
			b.WriteString("\n\n")
			b.WriteString(dim.Render("At the table: " + strings.Join(s.names, ", ")))
		}
	case stepTimer:
		b.WriteString(heading.Render("Time per case"))
		b.WriteString("\n\n")
		b.WriteString(s.picker.View())
	case stepSession:
		b.WriteString(heading.Render("Session length"))
		b.WriteString("\n\n")
		b.WriteString(s.picker.View())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.ArcadeCard(b.String(), cw))
}
