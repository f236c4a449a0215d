package play

import (
	"time"

	"github.com/abhisek/casetrack/internal/coach"
	"github.com/abhisek/casetrack/internal/game"
)

// tickMsg is sent every second to run the prompt clock.
type tickMsg time.Time

// advanceMsg fires a timed phase's action. Seq is the state it was
// scheduled for; a newer state ignores it.
type advanceMsg struct {
	Seq    uint64
	Action game.Action
}

// hintMsg delivers coach text for the prompt with the given seed.
type hintMsg struct {
	Seed uint32
	Hint coach.Hint
}

// peekMsg delivers the approach outline for the prompt with the given seed.
type peekMsg struct {
	Seed uint32
	Peek coach.Peek
}
