package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casetrack/internal/coach"
	"github.com/abhisek/casetrack/internal/game"
	"github.com/abhisek/casetrack/internal/router"
	"github.com/abhisek/casetrack/internal/screen"
	"github.com/abhisek/casetrack/internal/screens/home"
	"github.com/abhisek/casetrack/internal/screens/play"
	"github.com/abhisek/casetrack/internal/screens/setup"
	"github.com/abhisek/casetrack/internal/screens/welcome"
	"github.com/abhisek/casetrack/internal/ui/layout"
)

// Options holds the dependencies the TUI runs on.
type Options struct {
	Engine *game.Engine
	// Coach may be nil; hints then come from the catalog.
	Coach *coach.Coach
	Play  play.Options
	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *game.Engine
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	table := func() screen.Screen { return play.New(opts.Engine, opts.Coach, opts.Play) }
	newHome := func() screen.Screen {
		return home.New(opts.Engine, home.Routes{
			Table: table,
			Setup: func() screen.Screen { return setup.New(opts.Engine, table) },
		}, opts.Coach != nil && opts.Coach.Online())
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = newHome()
	} else {
		first = welcome.New(newHome)
	}
	return AppModel{
		router: router.New(first),
		engine: opts.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status describes the player whose turn it is, if a game is running.
func (m AppModel) status() layout.Status {
	if m.engine == nil {
		return layout.Status{}
	}
	st := m.engine.State()
	if st.Phase == game.PhaseSetup || st.Phase == game.PhaseEnd {
		return layout.Status{}
	}
	p, ok := st.Current()
	if !ok {
		return layout.Status{}
	}
	return layout.Status{Player: p.Name, Points: p.Points, Rank: string(p.Rank)}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
