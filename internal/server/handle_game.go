package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/game"
)

func handleGameState(e *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, e.State())
	}
}

// handleAction applies one action envelope. A no-op answers 409 with the
// unchanged state.
func handleAction(e *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var env game.Envelope
		if err := readJSON(r, &env); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		s, changed, err := dispatch(r, e, env)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !changed {
			writeJSON(w, http.StatusConflict, s)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func handleReset(e *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := e.Dispatch(r.Context(), game.ResetGame{})
		writeJSON(w, http.StatusOK, s)
	}
}

// answerInput is the typed form of SUBMIT_ANSWER: the raw text a player
// entered, parsed against the current prompt.
type answerInput struct {
	Input *string `json:"input"`
}

// dispatch decodes env and runs it on e. A SUBMIT_ANSWER carrying "input"
// is parsed against the prompt in view and dispatched only if the game has
// not moved on since.
func dispatch(r *http.Request, e *game.Engine, env game.Envelope) (game.State, bool, error) {
	if env.Type == (game.SubmitAnswer{}).Kind() && len(env.Payload) > 0 {
		var in answerInput
		if err := json.Unmarshal(env.Payload, &in); err == nil && in.Input != nil {
			cur := e.State()
			if cur.Prompt == nil {
				return cur, false, nil
			}
			ans, err := cases.ParseAnswer(*in.Input, cur.Prompt.Decision)
			if err != nil {
				return cur, false, fmt.Errorf("invalid answer: %w", err)
			}
			s, changed := e.DispatchIf(r.Context(), cur.Seq, game.SubmitAnswer{Answer: ans.Value, Choice: ans.Choice})
			return s, changed, nil
		}
	}

	a, err := env.Decode()
	if err != nil {
		return game.State{}, false, err
	}
	s, changed := e.Dispatch(r.Context(), a)
	return s, changed, nil
}
