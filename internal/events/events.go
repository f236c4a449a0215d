// Package events holds the career event deck: cards a player draws when they
// land on an event tile, and the rules for applying their outcomes.
package events

import (
	"github.com/abhisek/casetrack/internal/board"
	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/player"
	"github.com/abhisek/casetrack/internal/random"
)

// Type classifies a card.
type Type string

const (
	TypePositive Type = "positive"
	TypeNegative Type = "negative"
	TypeChoice   Type = "choice"
)

// Outcome is the effect of a card or one of its options.
type Outcome struct {
	Points             int              `json:"points,omitempty"`
	Position           int              `json:"position,omitempty"`
	Credits            player.Credits   `json:"credits,omitzero"`
	ToleranceBoost     bool             `json:"toleranceBoost,omitempty"`
	DifficultyOverride cases.Difficulty `json:"difficultyOverride,omitempty"`
	// SkipToTerminal places the player on the final tile.
	SkipToTerminal bool `json:"skipToTerminal,omitempty"`
}

// Option is one choice on a choice card. A probabilistic option has a
// Probability in (0,1) and resolves to Success or Fail; otherwise Outcome
// applies as is.
type Option struct {
	Text        string   `json:"text"`
	Outcome     *Outcome `json:"outcome,omitempty"`
	Probability float64  `json:"probability,omitempty"`
	Success     Outcome  `json:"success,omitzero"`
	Fail        Outcome  `json:"fail,omitzero"`
}

// Probabilistic reports whether resolving the option needs a random draw.
func (o Option) Probabilistic() bool { return o.Outcome == nil && o.Probability > 0 }

// Resolve returns the option's outcome. A probabilistic option consumes
// exactly one draw from src and succeeds when the draw is below Probability.
func (o Option) Resolve(src *random.Source) Outcome {
	if !o.Probabilistic() {
		if o.Outcome == nil {
			return Outcome{}
		}
		return *o.Outcome
	}
	if src.Float() < o.Probability {
		return o.Success
	}
	return o.Fail
}

// Event is a card.
type Event struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        Type     `json:"type"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	Effect      *Outcome `json:"effect,omitempty"`
	Options     []Option `json:"options,omitempty"`
}

// IsChoice reports whether the player must pick an option.
func (e Event) IsChoice() bool { return len(e.Options) > 0 }

// Apply returns p after the outcome. Points may go negative, credits never
// drop below zero, a pending difficulty override replaces any earlier one, and moves
// stay on the board.
func Apply(p player.Player, o Outcome, b *board.Board) player.Player {
	p.Points += o.Points
	p.Credits = p.Credits.Add(o.Credits)
	if o.ToleranceBoost {
		p.Pending.ToleranceBoost = true
	}
	if o.DifficultyOverride != "" {
		p.Pending.DifficultyOverride = o.DifficultyOverride
	}
	switch {
	case o.SkipToTerminal:
		p = p.PlaceOn(b, b.Terminal())
	case o.Position != 0:
		p = p.MoveOn(b, o.Position)
	}
	return p
}
