package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casetrack/internal/ui/theme"
)

const bannerArt = `
╔═╗╔═╗╔═╗╔═╗╔╦╗╦═╗╔═╗╔═╗╦╔═
║  ╠═╣╚═╗║╣  ║ ╠╦╝╠═╣║  ╠╩╗
╚═╝╩ ╩╚═╝╚═╝ ╩ ╩╚═╩ ╩╚═╝╩ ╩`

const bannerCompact = "C A S E T R A C K"

// RenderBanner returns the CASETRACK banner styled in the gold accent.
// Uses a compact fallback for terminals narrower than 32 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	if width < 32 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
