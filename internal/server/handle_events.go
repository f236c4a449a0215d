package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/abhisek/casetrack/internal/game"
)

const ssePingInterval = 30 * time.Second

// handleEvents streams every state change as an SSE "state" event, starting
// with the current state.
func handleEvents(e *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		ch, cancel := e.Subscribe()
		defer cancel()

		send := func(s game.State) {
			data, err := json.Marshal(s)
			if err != nil {
				return
			}
			fmt.Fprintf(w, "event: state\ndata: %s\n\n", data)
			flusher.Flush()
		}
		send(e.State())

		ping := time.NewTicker(ssePingInterval)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case s := <-ch:
				send(s)
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}
