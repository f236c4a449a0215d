package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/events"
)

// Action is an input to the reducer. Kind is the wire name shared by the
// HTTP API, the WebSocket stream, and the stored turn log.
type Action interface {
	Kind() string
}

type (
	StartGame struct {
		Players  []string `json:"players"`
		Settings Settings `json:"settings"`
	}
	StartTurn        struct{}
	ChooseDifficulty struct {
		Difficulty cases.Difficulty `json:"difficulty"`
	}
	// SubmitAnswer carries Answer for numeric prompts and Choice (zero-based)
	// for multiple choice.
	SubmitAnswer struct {
		Answer float64 `json:"answer"`
		Choice int     `json:"choice"`
	}
	ExpireTimer  struct{}
	ApplyGrading struct{}
	ShowResults  struct{}
	// ResolveEvent applies Outcome, or the card's own effect when nil.
	ResolveEvent struct {
		Outcome *events.Outcome `json:"outcome,omitempty"`
	}
	ChooseEventOption struct {
		Index int `json:"index"`
	}
	ContinueEvent  struct{}
	ChooseForkPath struct {
		Target int `json:"target"`
	}
	EndTurn       struct{}
	UseAdd60      struct{}
	UseGooglePeek struct{}
	UseHint       struct{}
	ResetGame     struct{}
)

func (StartGame) Kind() string         { return "START_GAME" }
func (StartTurn) Kind() string         { return "START_TURN" }
func (ChooseDifficulty) Kind() string  { return "CHOOSE_DIFFICULTY" }
func (SubmitAnswer) Kind() string      { return "SUBMIT_ANSWER" }
func (ExpireTimer) Kind() string       { return "EXPIRE_TIMER" }
func (ApplyGrading) Kind() string      { return "APPLY_GRADING" }
func (ShowResults) Kind() string       { return "SHOW_RESULTS" }
func (ResolveEvent) Kind() string      { return "RESOLVE_EVENT" }
func (ChooseEventOption) Kind() string { return "CHOOSE_EVENT_OPTION" }
func (ContinueEvent) Kind() string     { return "CONTINUE_EVENT" }
func (ChooseForkPath) Kind() string    { return "CHOOSE_FORK_PATH" }
func (EndTurn) Kind() string           { return "END_TURN" }
func (UseAdd60) Kind() string          { return "USE_ADD60" }
func (UseGooglePeek) Kind() string     { return "USE_GOOGLE_PEEK" }
func (UseHint) Kind() string           { return "USE_HINT" }
func (ResetGame) Kind() string         { return "RESET_GAME" }

// ErrUnknownAction is returned by DecodeAction for an unrecognized kind.
var ErrUnknownAction = errors.New("unknown action")

var actionTypes = map[string]func() Action{
	"START_GAME":          func() Action { return &StartGame{} },
	"START_TURN":          func() Action { return &StartTurn{} },
	"CHOOSE_DIFFICULTY":   func() Action { return &ChooseDifficulty{} },
	"SUBMIT_ANSWER":       func() Action { return &SubmitAnswer{} },
	"EXPIRE_TIMER":        func() Action { return &ExpireTimer{} },
	"APPLY_GRADING":       func() Action { return &ApplyGrading{} },
	"SHOW_RESULTS":        func() Action { return &ShowResults{} },
	"RESOLVE_EVENT":       func() Action { return &ResolveEvent{} },
	"CHOOSE_EVENT_OPTION": func() Action { return &ChooseEventOption{} },
	"CONTINUE_EVENT":      func() Action { return &ContinueEvent{} },
	"CHOOSE_FORK_PATH":    func() Action { return &ChooseForkPath{} },
	"END_TURN":            func() Action { return &EndTurn{} },
	"USE_ADD60":           func() Action { return &UseAdd60{} },
	"USE_GOOGLE_PEEK":     func() Action { return &UseGooglePeek{} },
	"USE_HINT":            func() Action { return &UseHint{} },
	"RESET_GAME":          func() Action { return &ResetGame{} },
}

// ActionKinds lists every wire name.
func ActionKinds() []string {
	return []string{
		"START_GAME", "START_TURN", "CHOOSE_DIFFICULTY", "SUBMIT_ANSWER",
		"EXPIRE_TIMER", "APPLY_GRADING", "SHOW_RESULTS", "RESOLVE_EVENT",
		"CHOOSE_EVENT_OPTION", "CONTINUE_EVENT", "CHOOSE_FORK_PATH", "END_TURN",
		"USE_ADD60", "USE_GOOGLE_PEEK", "USE_HINT", "RESET_GAME",
	}
}

// DecodeAction builds the action named kind from its JSON payload. An empty
// or null payload leaves every field at its zero value.
func DecodeAction(kind string, payload json.RawMessage) (Action, error) {
	mk, ok := actionTypes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, kind)
	}
	ptr := mk()
	if len(payload) > 0 && string(payload) != "null" {
		if err := json.Unmarshal(payload, ptr); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", kind, err)
		}
	}
	return deref(ptr), nil
}

// deref turns the decoding pointer back into the value type the reducer
// switches on.
func deref(a Action) Action {
	switch v := a.(type) {
	case *StartGame:
		return *v
	case *StartTurn:
		return *v
	case *ChooseDifficulty:
		return *v
	case *SubmitAnswer:
		return *v
	case *ExpireTimer:
		return *v
	case *ApplyGrading:
		return *v
	case *ShowResults:
		return *v
	case *ResolveEvent:
		return *v
	case *ChooseEventOption:
		return *v
	case *ContinueEvent:
		return *v
	case *ChooseForkPath:
		return *v
	case *EndTurn:
		return *v
	case *UseAdd60:
		return *v
	case *UseGooglePeek:
		return *v
	case *UseHint:
		return *v
	case *ResetGame:
		return *v
	}
	return a
}

// Envelope is the wire form of an action.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode wraps a in an Envelope.
func Encode(a Action) (Envelope, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s: %w", a.Kind(), err)
	}
	if string(b) == "{}" {
		b = nil
	}
	return Envelope{Type: a.Kind(), Payload: b}, nil
}

// Decode is DecodeAction on the envelope's fields.
func (e Envelope) Decode() (Action, error) {
	return DecodeAction(e.Type, e.Payload)
}
