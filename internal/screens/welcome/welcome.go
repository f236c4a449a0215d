package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casetrack/internal/board"
	"github.com/abhisek/casetrack/internal/router"
	"github.com/abhisek/casetrack/internal/screen"
	"github.com/abhisek/casetrack/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond

	// climbStep is how long the marker rests on each rung of the ladder.
	climbStep = 300 * time.Millisecond
	// ladderMinWidth is the narrowest frame that fits the whole ladder on
	// one line.
	ladderMinWidth = 70
)

const briefcaseArt = `     ┌─────┐
 ┌───┴─────┴───┐
 │      ◆      │
 ├─────────────┤
 │  $   %   #  │
 │             │
 └─────────────┘`

// sparkle frames cycle around the briefcase
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home
// screen: the briefcase, then the career ladder climbed rung by rung, then the
// banner. Any key skips ahead.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

// rung is the ladder index the marker has reached, or -1 before the climb.
func (w *WelcomeScreen) rung() int {
	if w.elapsed < phase1End {
		return -1
	}
	return min(int((w.elapsed-phase1End)/climbStep), len(board.Ladder())-1)
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	caseStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	// Phase 1+: briefcase
	rendered := caseStyle.Render(briefcaseArt)

	// Phase 2+: sparkles around the briefcase
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		accentStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		secondaryStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

		s1 := accentStyle.Render(sparkle)
		s2 := secondaryStyle.Render(sparkle)

		// Place sparkles on sides of the briefcase
		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 3 {
			lines[3] = s2 + "  " + lines[3] + "  " + s1
		}
		if len(lines) > 6 {
			lines[6] = s1 + "  " + lines[6] + "  " + s2
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if r := w.rung(); r >= 0 {
		sections = append(sections, "", renderLadder(r, width))
	}

	// Phase 3+: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Climb the ladder, one case at a time.")
		sections = append(sections, tagline)
	}

	// "press any key" hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderLadder draws the titles from Associate to Partner with the reached
// rung highlighted. Narrow frames show only the current title.
func renderLadder(rung, width int) string {
	ladder := board.Ladder()
	done := lipgloss.NewStyle().Foreground(theme.Text)
	here := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	ahead := lipgloss.NewStyle().Foreground(theme.TextDim)

	if width < ladderMinWidth {
		return here.Render("▲ " + string(ladder[rung]))
	}

	parts := make([]string, len(ladder))
	for i, r := range ladder {
		switch {
		case i < rung:
			parts[i] = done.Render(string(r))
		case i == rung:
			parts[i] = here.Render("▲ " + string(r))
		default:
			parts[i] = ahead.Render(string(r))
		}
	}
	return strings.Join(parts, ahead.Render(" › "))
}
