package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casetrack/internal/game"
	"github.com/abhisek/casetrack/internal/ui/theme"
)

const arcadeTitleCompact = "C · A · S · E · T · R · A · C · K"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	text := titleArt
	if compact {
		text = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// renderStatusBar summarises the game on the table in a bordered box
// matching content width.
func renderStatusBar(st game.State, leader string, cw int, compact bool) string {
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	goldStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	tealStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	switch {
	case st.Phase == game.PhaseSetup:
		stats = dimStyle.Render("NO GAME IN PROGRESS")
	case st.Phase == game.PhaseEnd:
		stats = goldStyle.Render(fmt.Sprintf("★ %s RETIRED ON TOP", leader))
	case compact:
		stats = fmt.Sprintf("%s %s",
			tealStyle.Render(fmt.Sprintf("♟%d", len(st.Players))),
			goldStyle.Render(fmt.Sprintf("★%s", leader)))
	default:
		round := st.PromptsCompleted/len(st.Players) + 1
		stats = fmt.Sprintf("%s  %s  %s",
			tealStyle.Render(fmt.Sprintf("♟ %d PLAYERS", len(st.Players))),
			dimStyle.Render(fmt.Sprintf("ROUND %d", round)),
			goldStyle.Render(fmt.Sprintf("★ %s LEADS", leader)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderCoachNote shows a dim line when hints come from the built-in
// catalog instead of an LLM.
func renderCoachNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("Offline coach: set an LLM API key for tailored hints (see casetrack --help)")
}

// renderMascotBox renders the briefcase centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
