// Package store persists game snapshots, the turn log, and LLM request
// events in SQLite or Postgres.
package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Snapshot is a point-in-time capture of a game. Data is the serialized
// game state; the store does not interpret it.
type Snapshot struct {
	ID        int
	GameID    string
	Seq       uint64
	Phase     string
	Timestamp time.Time
	Data      json.RawMessage
}

// SnapshotRepo manages game state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}

// TurnEventData is one graded answer.
type TurnEventData struct {
	GameID     string
	Turn       int
	PlayerID   string
	PlayerName string
	TemplateID string
	Category   string
	Difficulty string
	Answer     float64
	Truth      float64
	Points     int
	SevereMiss bool
	TimedOut   bool
	Boosted    bool
	// Position is the player's tile after the answer moved them.
	Position int
}

// TurnEvent is a stored TurnEventData.
type TurnEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// PlayerStat aggregates the turn log for one player name across games.
type PlayerStat struct {
	PlayerName   string
	Games        int
	Answers      int
	TotalPoints  int
	PerfectHits  int
	SevereMisses int
	Timeouts     int
}

// AvgPoints is the mean award per answer.
func (p PlayerStat) AvgPoints() float64 {
	if p.Answers == 0 {
		return 0
	}
	return float64(p.TotalPoints) / float64(p.Answers)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage totals LLM calls by purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage totals LLM calls by model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendTurnEvent records a graded answer.
	AppendTurnEvent(ctx context.Context, data TurnEventData) error

	// QueryTurnEvents returns the turn log of one game in sequence order.
	// An empty gameID returns every game.
	QueryTurnEvents(ctx context.Context, gameID string, opts QueryOpts) ([]TurnEvent, error)

	// PlayerStats aggregates the turn log by player name.
	PlayerStats(ctx context.Context) ([]PlayerStat, error)

	// GameCount returns the number of distinct games in the turn log.
	GameCount(ctx context.Context) (int, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose totals tokens and latency per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel totals tokens per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
