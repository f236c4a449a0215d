package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/casetrack/internal/game"
	"github.com/abhisek/casetrack/internal/router"
	"github.com/abhisek/casetrack/internal/screen"
	"github.com/abhisek/casetrack/internal/ui/components"
	"github.com/abhisek/casetrack/internal/ui/layout"
)

// Block-letter title (same art as welcome/banner.go).
const titleArt = `╔═╗╔═╗╔═╗╔═╗╔╦╗╦═╗╔═╗╔═╗╦╔═
║  ╠═╣╚═╗║╣  ║ ╠╦╝╠═╣║  ╠╩╗
╚═╝╩ ╩╚═╝╚═╝ ╩ ╩╚═╩ ╩╚═╝╩ ╩`

const (
	itemResume = iota
	itemNew
	itemExit
)

// Routes builds the screens reachable from the menu.
type Routes struct {
	Table func() screen.Screen
	Setup func() screen.Screen
}

// HomeScreen is the main menu. It reads the engine on every frame so the
// resume entry tracks the game on the table.
type HomeScreen struct {
	engine  *game.Engine
	routes  Routes
	online  bool
	menu    components.Menu
	visited bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. online reports whether the coach is backed
// by an LLM.
func New(engine *game.Engine, routes Routes, online bool) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	h := &HomeScreen{engine: engine, routes: routes, online: online}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "RESUME GAME", Action: push(routes.Table)},
		{Label: "NEW GAME", Action: push(routes.Setup)},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	h.refresh()
	return h
}

// resumable reports whether a game is waiting on the table.
func resumable(p game.Phase) bool {
	return p != game.PhaseSetup && p != game.PhaseEnd
}

// refresh enables the resume entry only while a game is in progress, and
// puts the cursor on it the first time one is.
func (h *HomeScreen) refresh() {
	canResume := resumable(h.engine.State().Phase)
	h.menu.Items[itemResume].Disabled = !canResume
	switch {
	case canResume && !h.visited:
		h.menu.Selected = itemResume
		h.visited = true
	case !canResume && h.menu.Selected == itemResume:
		h.menu.Selected = itemNew
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	h.refresh()
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()
	st := h.engine.State()

	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	leader := ""
	if standings := h.engine.Machine().Standings(st.Players); len(standings) > 0 {
		leader = standings[0].Name
	}

	variant := MascotIdle
	switch {
	case st.Phase == game.PhaseEnd:
		variant = MascotRetired
	case resumable(st.Phase):
		variant = MascotInProgress
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(variant, cw))
	}
	sections = append(sections, renderStatusBar(st, leader, cw, compact))
	sections = append(sections, h.menu.View(22))
	if !h.online {
		sections = append(sections, renderCoachNote(cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
