package play

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casetrack/internal/board"
	"github.com/abhisek/casetrack/internal/player"
	"github.com/abhisek/casetrack/internal/ui/theme"
)

const cellWidth = 3

func tileGlyph(t board.Tile) string {
	switch t.Kind {
	case board.KindPromotion:
		return "▲"
	case board.KindEvent:
		if t.EventID == "" {
			return "?"
		}
		return "!"
	case board.KindRiskFork:
		return "Y"
	case board.KindRiskMerge:
		return "+"
	case board.KindTerminal:
		return "★"
	default:
		return "·"
	}
}

func glyphStyle(t board.Tile) lipgloss.Style {
	switch t.Kind {
	case board.KindPromotion, board.KindTerminal:
		return lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	case board.KindEvent:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	case board.KindRiskFork, board.KindRiskMerge:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

// renderTrack draws the main line with player markers below it, then each
// risk branch on its own row.
func renderTrack(b *board.Board, players []player.Player, current int) string {
	var lines []string

	mainTiles := make([]board.Tile, 0, b.Terminal()+1)
	for i := 0; i <= b.Terminal(); i++ {
		t, _ := b.Tile(i)
		mainTiles = append(mainTiles, t)
	}
	lines = append(lines, "       "+renderCells(mainTiles), "       "+renderMarkers(mainTiles, players, current))

	for _, fork := range mainTiles {
		if len(fork.Next) < 2 {
			continue
		}
		branch := branchTiles(b, fork.Next[1])
		if len(branch) == 0 {
			continue
		}
		indent := strings.Repeat(" ", fork.Index*cellWidth)
		label := lipgloss.NewStyle().Foreground(theme.Secondary).Render(padRight(branch[0].Label, 6)) + " "
		lines = append(lines,
			label+indent+" ↳ "+renderCells(branch),
			"       "+indent+"   "+renderMarkers(branch, players, current))
	}
	return strings.Join(lines, "\n")
}

// branchTiles follows a side branch from its first tile until it rejoins
// the main line.
func branchTiles(b *board.Board, start int) []board.Tile {
	var out []board.Tile
	for pos := start; pos > b.Terminal(); {
		t, ok := b.Tile(pos)
		if !ok {
			break
		}
		out = append(out, t)
		if len(t.Next) == 0 {
			break
		}
		pos = t.Next[0]
	}
	return out
}

func renderCells(tiles []board.Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteString(glyphStyle(t).Width(cellWidth).Align(lipgloss.Center).Render(tileGlyph(t)))
	}
	return sb.String()
}

func renderMarkers(tiles []board.Tile, players []player.Player, current int) string {
	var sb strings.Builder
	for _, t := range tiles {
		cell := ""
		for i, p := range players {
			if p.Position != t.Index {
				continue
			}
			style := lipgloss.NewStyle().Foreground(theme.PlayerColor(i))
			if i == current {
				style = style.Bold(true).Underline(true)
			}
			cell += style.Render(initial(p.Name))
		}
		sb.WriteString(lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Render(cell))
	}
	return sb.String()
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
