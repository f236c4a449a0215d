package game

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/casetrack/internal/store"
)

// ErrNoChange reports an action whose preconditions did not hold.
var ErrNoChange = errors.New("action had no effect")

// TurnRecorder receives one entry per graded answer. store.EventRepo
// satisfies it.
type TurnRecorder interface {
	AppendTurnEvent(ctx context.Context, data store.TurnEventData) error
}

// EngineOptions configures an Engine. Zero pauses use the defaults; nil
// repos disable persistence.
type EngineOptions struct {
	Snapshots       store.SnapshotRepo
	Events          TurnRecorder
	Logger          *slog.Logger
	GradingPause    time.Duration
	TransitionPause time.Duration
	// SnapshotKeep is how many snapshots survive pruning. Zero keeps all.
	SnapshotKeep    int
	// NoAutoAdvance leaves the grading and transition phases for the caller
	// to advance, as the TUI does with its own ticks.
	NoAutoAdvance   bool
}

const (
	DefaultGradingPause    = 2 * time.Second
	DefaultTransitionPause = 1500 * time.Millisecond
)

// Engine owns the live game. It is the only writer of the state: every
// change goes through Dispatch, which runs the reducer under a mutex,
// persists the result, and notifies subscribers.
type Engine struct {
	m    *Machine
	opts EngineOptions
	log  *slog.Logger

	mu     sync.Mutex
	state  State
	timer  *time.Timer
	closed bool

	subMu sync.RWMutex
	subs  map[chan State]struct{}
}

// NewEngine starts an engine at initial. If initial is in a timed phase the
// auto-advance timer is armed immediately.
func NewEngine(m *Machine, initial State, opts EngineOptions) *Engine {
	if opts.GradingPause <= 0 {
		opts.GradingPause = DefaultGradingPause
	}
	if opts.TransitionPause <= 0 {
		opts.TransitionPause = DefaultTransitionPause
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	e := &Engine{
		m:     m,
		opts:  opts,
		log:   log,
		state: initial,
		subs:  make(map[chan State]struct{}),
	}
	e.mu.Lock()
	e.schedule(initial)
	e.mu.Unlock()
	return e
}

// Machine returns the reducer the engine runs.
func (e *Engine) Machine() *Machine { return e.m }

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Dispatch reduces a over the current state. It reports whether the state
// changed; an action whose preconditions fail is a no-op, not an error.
func (e *Engine) Dispatch(ctx context.Context, a Action) (State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dispatchLocked(ctx, a)
}

// DispatchIf is Dispatch guarded by the expected sequence number. A caller
// holding a stale view of the game gets a no-op.
func (e *Engine) DispatchIf(ctx context.Context, seq uint64, a Action) (State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Seq != seq {
		return e.state, false
	}
	return e.dispatchLocked(ctx, a)
}

// Apply is Dispatch returning ErrNoChange for a no-op.
func (e *Engine) Apply(ctx context.Context, a Action) (State, error) {
	s, changed := e.Dispatch(ctx, a)
	if !changed {
		return s, ErrNoChange
	}
	return s, nil
}

func (e *Engine) dispatchLocked(ctx context.Context, a Action) (State, bool) {
	if e.closed {
		return e.state, false
	}
	prev := e.state
	next := e.m.Reduce(prev, a)
	if next.Seq == prev.Seq {
		e.log.Debug("action ignored", "action", a.Kind(), "phase", prev.Phase, "seq", prev.Seq)
		return prev, false
	}
	e.state = next
	e.log.Debug("transition", "action", a.Kind(), "from", prev.Phase, "to", next.Phase, "seq", next.Seq)

	e.persist(ctx, prev, next)
	e.schedule(next)
	e.publish(next)
	return next, true
}

// persist saves a snapshot and, when an answer was just scored onto the
// board, appends it to the turn log. Failures are logged, never returned.
func (e *Engine) persist(ctx context.Context, prev, next State) {
	if e.opts.Events != nil && prev.Phase == PhaseGrading && next.Phase == PhaseResults {
		if err := e.opts.Events.AppendTurnEvent(ctx, turnEvent(prev, next)); err != nil {
			e.log.Warn("append turn event failed", "game_id", next.ID, "error", err)
		}
	}
	if e.opts.Snapshots == nil {
		return
	}
	data, err := json.Marshal(next)
	if err != nil {
		e.log.Warn("encode snapshot failed", "error", err)
		return
	}
	snap := &store.Snapshot{
		GameID:    next.ID,
		Seq:       next.Seq,
		Phase:     string(next.Phase),
		Timestamp: e.m.now(),
		Data:      data,
	}
	if err := e.opts.Snapshots.Save(ctx, snap); err != nil {
		e.log.Warn("save snapshot failed", "seq", next.Seq, "error", err)
		return
	}
	if keep := e.opts.SnapshotKeep; keep > 0 && next.Seq%uint64(keep) == 0 {
		if err := e.opts.Snapshots.Prune(ctx, keep); err != nil {
			e.log.Warn("prune snapshots failed", "error", err)
		}
	}
}

func turnEvent(prev, next State) store.TurnEventData {
	p := next.Players[prev.TurnIndex]
	d := store.TurnEventData{
		GameID:     next.ID,
		Turn:       next.PromptsCompleted,
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Position:   p.Position,
	}
	if q := next.Prompt; q != nil {
		d.TemplateID = q.TemplateID
		d.Category = string(q.Category)
		d.Difficulty = string(q.Difficulty)
	}
	if g := next.LastGrading; g != nil {
		d.Answer = g.Answer
		if q := next.Prompt; q != nil && q.IsMCQ() {
			d.Answer = float64(g.Choice)
		}
		d.Truth = g.Truth
		d.Points = g.Points
		d.SevereMiss = g.SevereMiss
		d.TimedOut = g.TimedOut
		d.Boosted = g.Boosted
	}
	return d
}

// schedule stops any pending auto-advance and arms a new one for timed
// phases. The callback only fires its action if the game is still at the
// same Seq and Phase.
func (e *Engine) schedule(s State) {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if e.opts.NoAutoAdvance || e.closed {
		return
	}
	var (
		delay time.Duration
		act   Action
	)
	switch s.Phase {
	case PhaseGrading:
		delay, act = e.opts.GradingPause, ApplyGrading{}
	case PhaseTransition:
		delay, act = e.opts.TransitionPause, EndTurn{}
	default:
		return
	}
	seq, phase := s.Seq, s.Phase
	e.timer = time.AfterFunc(delay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.state.Seq != seq || e.state.Phase != phase {
			return
		}
		e.dispatchLocked(context.Background(), act)
	})
}

// Subscribe returns a channel of states published after each transition and
// a function that cancels the subscription. Slow subscribers miss states
// rather than block the engine.
func (e *Engine) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 16)
	e.subMu.Lock()
	e.subs[ch] = struct{}{}
	e.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.subMu.Lock()
			delete(e.subs, ch)
			e.subMu.Unlock()
		})
	}
}

func (e *Engine) publish(s State) {
	e.subMu.RLock()
	defer e.subMu.RUnlock()
	for ch := range e.subs {
		select {
		case ch <- s:
		default:
			// Drop if subscriber is slow.
		}
	}
}

// Close stops the auto-advance timer. Later dispatches are no-ops.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}
