package app

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
)

func newTestModel(t *testing.T) (AppModel, *game.Engine) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := game.NewEngine(game.NewMachine(game.WithLogger(logger)), game.Fresh(),
		game.EngineOptions{NoAutoAdvance: true, Logger: logger})
	t.Cleanup(e.Close)
	return newAppModel(Options{Engine: e, SkipWelcome: true}), e
}

// run feeds msg through the model and then every message its command
// produces, one level deep.
func run(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd != nil {
		if out := cmd(); out != nil {
			if _, batch := out.(tea.BatchMsg); !batch {
				next, _ = m.Update(out)
				m = next.(AppModel)
			}
		}
	}
	return m
}

func TestApp_NewGameFlow(t *testing.T) {
	m, e := newTestModel(t)
	assert.Equal(t, "Home", m.router.Active().Title())

	m = run(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, "New Game", m.router.Active().Title())

	// Setup consumes Esc to step back; on its first step that pops it.
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = next.(AppModel)
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
	assert.Equal(t, game.PhaseSetup, e.State().Phase)
}

func TestApp_HeaderShowsCurrentPlayer(t *testing.T) {
	m, e := newTestModel(t)
	assert.Empty(t, m.status().Player)

	e.Dispatch(context.Background(), game.StartGame{Players: []string{"Ada", "Bo"}})
	st := m.status()
	assert.Equal(t, "Ada", st.Player)
	assert.Equal(t, "Associate", st.Rank)
}

func TestApp_EscPopsTable(t *testing.T) {
	m, e := newTestModel(t)
	e.Dispatch(context.Background(), game.StartGame{Players: []string{"Ada", "Bo"}})

	m = run(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())

	m = run(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Home", m.router.Active().Title())
}
