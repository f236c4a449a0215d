package setup

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/casetrack/internal/game"
	"github.com/abhisek/casetrack/internal/router"
	"github.com/abhisek/casetrack/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "table" }
func (s *stubScreen) Title() string                          { return "Table" }

func newEngine(t *testing.T) *game.Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := game.NewEngine(game.NewMachine(game.WithLogger(logger)), game.Fresh(),
		game.EngineOptions{NoAutoAdvance: true, Logger: logger})
	t.Cleanup(e.Close)
	return e
}

func press(s *SetupScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func typeName(s *SetupScreen, name string) {
	for _, r := range name {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	press(s, tea.KeyEnter)
}

func TestSetup_StartsGame(t *testing.T) {
	e := newEngine(t)
	s := New(e, func() screen.Screen { return &stubScreen{} })

	press(s, tea.KeyDown) // 3 players
	press(s, tea.KeyEnter)
	require.Equal(t, stepNames, s.step)
	assert.Equal(t, 3, s.count)

	typeName(s, "Ada")
	typeName(s, "Bo")
	typeName(s, "Cy")
	require.Equal(t, stepTimer, s.step)

	press(s, tea.KeyDown) // 90 seconds
	press(s, tea.KeyEnter)
	require.Equal(t, stepSession, s.step)

	press(s, tea.KeyDown) // short
	cmd := press(s, tea.KeyEnter)
	require.NotNil(t, cmd)
	_, ok := cmd().(router.ReplaceScreenMsg)
	assert.True(t, ok, "expected ReplaceScreenMsg")

	st := e.State()
	assert.Equal(t, game.PhaseIdle, st.Phase)
	require.Len(t, st.Players, 3)
	assert.Equal(t, "Cy", st.Players[2].Name)
	assert.Equal(t, 90, st.Settings.TimerSecs)
	assert.Equal(t, game.SessionShort, st.Settings.Session)
}

func TestSetup_BlankNameRejected(t *testing.T) {
	s := New(newEngine(t), func() screen.Screen { return &stubScreen{} })
	press(s, tea.KeyEnter)
	typeName(s, "   ")
	assert.Equal(t, stepNames, s.step)
	assert.Empty(t, s.names)
	assert.Contains(t, s.View(100, 30), "enter a name")
}

func TestSetup_ReplacesUnfinishedGame(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	old, _ := e.Dispatch(ctx, game.StartGame{Players: []string{"Old", "Game"}})
	e.Dispatch(ctx, game.StartTurn{})

	s := New(e, func() screen.Screen { return &stubScreen{} })
	press(s, tea.KeyEnter)
	typeName(s, "Ada")
	typeName(s, "Bo")
	press(s, tea.KeyEnter)
	press(s, tea.KeyEnter)

	st := e.State()
	assert.Equal(t, game.PhaseIdle, st.Phase)
	assert.NotEqual(t, old.ID, st.ID)
	assert.Equal(t, "Ada", st.Players[0].Name)
	assert.Equal(t, game.SessionStandard, st.Settings.Session)
	assert.Equal(t, 75, st.Settings.TimerSecs)
}

func TestSetup_EscWalksBack(t *testing.T) {
	s := New(newEngine(t), func() screen.Screen { return &stubScreen{} })
	press(s, tea.KeyEnter)
	typeName(s, "Ada")
	press(s, tea.KeyEscape)
	assert.Equal(t, stepNames, s.step)
	assert.Empty(t, s.names)

	press(s, tea.KeyEscape)
	assert.Equal(t, stepCount, s.step)

	cmd := press(s, tea.KeyEscape)
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
