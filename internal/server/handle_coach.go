package server

import (
	"net/http"

	"github.com/abhisek/casetrack/internal/coach"
	"github.com/abhisek/casetrack/internal/game"
)

func handleHint(e *game.Engine, c *coach.Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := e.State()
		if s.Prompt == nil || !s.Prompt.HintShown {
			writeError(w, http.StatusConflict, "no hint purchased for the current prompt")
			return
		}
		writeJSON(w, http.StatusOK, c.Hint(r.Context(), s.Prompt))
	}
}

func handlePeek(e *game.Engine, c *coach.Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := e.State()
		if s.Prompt == nil || !s.Prompt.PeekShown {
			writeError(w, http.StatusConflict, "no peek purchased for the current prompt")
			return
		}
		writeJSON(w, http.StatusOK, c.Peek(r.Context(), s.Prompt))
	}
}
