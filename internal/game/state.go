// Package game is the turn controller: a pure reducer over State plus an
// Engine that serializes actions, persists snapshots, and auto-advances the
// timed phases.
package game

import (
	"slices"
	"time"

	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/events"
	"github.com/abhisek/casetrack/internal/player"
)

// Phase is where the current turn stands.
type Phase string

const (
	PhaseSetup      Phase = "setup"
	PhaseIdle       Phase = "idle"
	PhaseChoice     Phase = "choice"
	PhasePrompt     Phase = "prompt"
	PhaseGrading    Phase = "grading"
	PhaseResults    Phase = "results"
	PhaseEvent      Phase = "event"
	PhaseFork       Phase = "fork"
	PhaseTransition Phase = "transition"
	PhaseEnd        Phase = "end"
)

// SessionLength bounds how long a game runs.
type SessionLength string

const (
	SessionShort    SessionLength = "short"
	SessionStandard SessionLength = "standard"
)

// ShortSessionRounds is the number of full rounds a short session lasts.
const ShortSessionRounds = 8

// RecentEventsKept is how many drawn event IDs are remembered.
const RecentEventsKept = 5

const (
	MinPlayers       = 2
	MaxPlayers       = 4
	DefaultTimerSecs = 75
)

// Settings are chosen at setup.
type Settings struct {
	TimerSecs int           `json:"timerSecs"`
	Session   SessionLength `json:"session"`
}

// Normalize replaces unsupported values with defaults.
func (s Settings) Normalize() Settings {
	switch s.TimerSecs {
	case 60, 75, 90:
	default:
		s.TimerSecs = DefaultTimerSecs
	}
	if s.Session != SessionShort {
		s.Session = SessionStandard
	}
	return s
}

// Grading is the stored result of the last answer, consumed by
// APPLY_GRADING and shown in the results phase.
type Grading struct {
	Points        int     `json:"points"`
	SevereMiss    bool    `json:"severeMiss"`
	Answer        float64 `json:"answer"`
	Choice        int     `json:"choice"`
	Truth         float64 `json:"truth"`
	RelativeError float64 `json:"relativeError"`
	TimedOut      bool    `json:"timedOut,omitempty"`
	Boosted       bool    `json:"boosted,omitempty"`
	// Moved is the board movement applied by APPLY_GRADING.
	Moved int  `json:"moved"`
	Bonus bool `json:"bonus,omitempty"`
}

// ActiveEvent is the card being played. Outcome is nil until resolved.
type ActiveEvent struct {
	ID      string          `json:"id"`
	Outcome *events.Outcome `json:"outcome,omitempty"`
	// Option is the chosen option index, or -1 for a simple card.
	Option int `json:"option"`
}

// Resolved reports whether the card's effect has been applied.
func (a *ActiveEvent) Resolved() bool { return a != nil && a.Outcome != nil }

// Fork is a pending branch choice.
type Fork struct {
	From    int   `json:"from"`
	Options []int `json:"options"`
}

// State is a full, serializable game.
type State struct {
	ID               string                `json:"id"`
	Players          []player.Player       `json:"players"`
	TurnIndex        int                   `json:"turnIndex"`
	Phase            Phase                 `json:"phase"`
	Prompt           *cases.PromptInstance `json:"prompt,omitempty"`
	Settings         Settings              `json:"settings"`
	StartedAt        time.Time             `json:"startedAt,omitzero"`
	EndedAt          time.Time             `json:"endedAt,omitzero"`
	PromptStartedAt  time.Time             `json:"promptStartedAt,omitzero"`
	PromptsCompleted int                   `json:"promptsCompleted"`
	ChosenDifficulty cases.Difficulty      `json:"chosenDifficulty,omitempty"`
	LastGrading      *Grading              `json:"lastGrading,omitempty"`
	ActiveEvent      *ActiveEvent          `json:"activeEvent,omitempty"`
	Fork             *Fork                 `json:"fork,omitempty"`
	RecentEvents     []string              `json:"recentEvents,omitempty"`
	// RNG is the event generator state, carried across snapshots.
	RNG uint32 `json:"rng"`
	// Seq increases on every transition that changes the state.
	Seq uint64 `json:"seq"`
}

// Fresh returns a game waiting for players.
func Fresh() State {
	return State{Phase: PhaseSetup, Settings: Settings{}.Normalize()}
}

// Current returns the player whose turn it is.
func (s State) Current() (player.Player, bool) {
	if s.TurnIndex < 0 || s.TurnIndex >= len(s.Players) {
		return player.Player{}, false
	}
	return s.Players[s.TurnIndex], true
}

// Deadline is when the open prompt's clock runs out, or zero outside the
// prompt phase.
func (s State) Deadline() time.Time {
	if s.Phase != PhasePrompt || s.Prompt == nil || s.PromptStartedAt.IsZero() {
		return time.Time{}
	}
	return s.PromptStartedAt.Add(time.Duration(s.Prompt.TotalTime()) * time.Second)
}

// clone copies every reference the reducer may mutate.
func (s State) clone() State {
	s.Players = slices.Clone(s.Players)
	s.RecentEvents = slices.Clone(s.RecentEvents)
	if s.Prompt != nil {
		p := *s.Prompt
		s.Prompt = &p
	}
	if s.LastGrading != nil {
		g := *s.LastGrading
		s.LastGrading = &g
	}
	if s.ActiveEvent != nil {
		a := *s.ActiveEvent
		s.ActiveEvent = &a
	}
	if s.Fork != nil {
		f := Fork{From: s.Fork.From, Options: slices.Clone(s.Fork.Options)}
		s.Fork = &f
	}
	return s
}
