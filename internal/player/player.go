// Package player defines a participant's scoreboard: points, board position,
// streak, credits, and modifiers waiting for their next question.
package player

import (
	"github.com/google/uuid"

	"github.com/abhisek/casetrack/internal/board"
	"github.com/abhisek/casetrack/internal/cases"
)

// Credits are spendable helpers. Counts never go below zero.
type Credits struct {
	Add60      int `json:"add60"`
	GooglePeek int `json:"googlePeek"`
	Hint       int `json:"hint"`
}

// StartingCredits is what every player begins with.
var StartingCredits = Credits{Add60: 2, GooglePeek: 1, Hint: 1}

// Add applies delta and clamps each counter at zero.
func (c Credits) Add(delta Credits) Credits {
	return Credits{
		Add60:      max(c.Add60+delta.Add60, 0),
		GooglePeek: max(c.GooglePeek+delta.GooglePeek, 0),
		Hint:       max(c.Hint+delta.Hint, 0),
	}
}

// Pending holds modifiers that apply to the player's next question only.
type Pending struct {
	ToleranceBoost     bool             `json:"toleranceBoost,omitempty"`
	DifficultyOverride cases.Difficulty `json:"difficultyOverride,omitempty"`
}

// Player is one participant.
type Player struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Points   int        `json:"points"`
	Position int        `json:"position"`
	Streak   int        `json:"streak"`
	Credits  Credits    `json:"credits"`
	Rank     board.Rank `json:"rank"`
	Pending  Pending    `json:"pending"`
}

// New returns a player at the start tile with the starting credits.
func New(name string) Player {
	return Player{
		ID:      uuid.NewString(),
		Name:    name,
		Credits: StartingCredits,
		Rank:    board.RankAssociate,
	}
}

// MoveOn moves the player delta tiles on b and refreshes the rank.
func (p Player) MoveOn(b *board.Board, delta int) Player {
	p.Position = b.Move(p.Position, delta)
	p.Rank = b.Rank(p.Position)
	return p
}

// PlaceOn puts the player on pos and refreshes the rank.
func (p Player) PlaceOn(b *board.Board, pos int) Player {
	if _, ok := b.Tile(pos); !ok {
		pos = 0
	}
	p.Position = pos
	p.Rank = b.Rank(pos)
	return p
}
