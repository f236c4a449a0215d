package game

import (
	"cmp"
	"slices"
	"time"

	"github.com/abhisek/casetrack/internal/player"
)

// Summary is the end-of-game report.
type Summary struct {
	Duration  time.Duration   `json:"duration"`
	Prompts   int             `json:"prompts"`
	Standings []player.Player `json:"standings"`
	Winner    player.Player   `json:"winner"`
}

// Standings orders players by progress, then points, highest first. A
// player on a branch ranks by the main-line tile they are level with. Ties
// keep seating order.
func (m *Machine) Standings(players []player.Player) []player.Player {
	out := slices.Clone(players)
	slices.SortStableFunc(out, func(a, b player.Player) int {
		if c := cmp.Compare(m.depth(b.Position), m.depth(a.Position)); c != 0 {
			return c
		}
		return cmp.Compare(b.Points, a.Points)
	})
	return out
}

func (m *Machine) depth(pos int) int {
	t, ok := m.board.Tile(pos)
	if !ok {
		return -1
	}
	return t.Depth
}

// Summarize reports on s. For a game still in progress the duration runs to
// now.
func (m *Machine) Summarize(s State) Summary {
	end := s.EndedAt
	if end.IsZero() {
		end = m.now()
	}
	sum := Summary{
		Prompts:   s.PromptsCompleted,
		Standings: m.Standings(s.Players),
	}
	if !s.StartedAt.IsZero() {
		sum.Duration = end.Sub(s.StartedAt)
	}
	if len(sum.Standings) > 0 {
		sum.Winner = sum.Standings[0]
	}
	return sum
}
