package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casetrack/internal/ui/theme"
)

// MascotVariant selects which briefcase art to display.
type MascotVariant int

const (
	MascotIdle       MascotVariant = iota // no game on the table
	MascotInProgress                      // a game can be resumed
	MascotRetired                         // the last game just ended
)

const mascotIdle = `  ┌───┐
┌─┴───┴─┐
│   ◆   │
│ $ % # │
└───────┘`

const mascotInProgress = `  ┌───┐
┌─┴───┴─┐ ▶
│   ◆   │
│ $ % # │
└───────┘`

const mascotRetired = `  ┌───┐
┌─┴───┴─┐
│ ★ ◆ ★ │
│ $ % # │
└─╥═══╥─┘
  ╚═══╝`

// RenderMascot returns the briefcase art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotInProgress:
		art = mascotInProgress
		fg = theme.Secondary
	case MascotRetired:
		art = mascotRetired
		fg = theme.Gold
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
