package game

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/abhisek/casetrack/internal/store"
)

// Restore loads the most recent snapshot. A missing, unreadable, or
// inconsistent snapshot yields a fresh game and a logged warning.
func Restore(ctx context.Context, repo store.SnapshotRepo, log *slog.Logger) State {
	if log == nil {
		log = slog.Default()
	}
	if repo == nil {
		return Fresh()
	}
	snap, err := repo.Latest(ctx)
	if err != nil {
		log.Warn("load snapshot failed, starting fresh", "error", err)
		return Fresh()
	}
	if snap == nil {
		return Fresh()
	}
	s, err := Decode(snap.Data)
	if err != nil {
		log.Warn("corrupt snapshot, starting fresh", "snapshot_id", snap.ID, "error", err)
		return Fresh()
	}
	return s
}

// Decode parses a serialized state and checks that it is playable.
func Decode(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	if err := s.check(); err != nil {
		return State{}, err
	}
	return s, nil
}

// check rejects states the reducer could not continue from.
func (s State) check() error {
	switch s.Phase {
	case PhaseSetup:
		return nil
	case PhaseEnd:
	case PhaseIdle, PhaseChoice, PhaseTransition:
	case PhasePrompt, PhaseGrading, PhaseResults:
		if s.Prompt == nil {
			return fmt.Errorf("phase %s without a prompt", s.Phase)
		}
		if s.Phase != PhasePrompt && s.LastGrading == nil {
			return fmt.Errorf("phase %s without a grading", s.Phase)
		}
	case PhaseEvent:
		if s.ActiveEvent == nil {
			return fmt.Errorf("event phase without an event")
		}
	case PhaseFork:
		if s.Fork == nil {
			return fmt.Errorf("fork phase without a fork")
		}
	default:
		return fmt.Errorf("unknown phase %q", s.Phase)
	}
	if len(s.Players) < MinPlayers || len(s.Players) > MaxPlayers {
		return fmt.Errorf("%d players", len(s.Players))
	}
	if s.TurnIndex < 0 || s.TurnIndex >= len(s.Players) {
		return fmt.Errorf("turn index %d out of range", s.TurnIndex)
	}
	return nil
}
