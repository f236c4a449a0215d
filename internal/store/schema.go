package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// eventColumns are the fields shared by every event table: a global
// sequence number and a UTC timestamp.
func eventColumns(cols ...*schema.Column) []*schema.Column {
	base := []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	return append(base, cols...)
}

func eventIndexes(table string, cols []*schema.Column, extra ...string) []*schema.Index {
	idx := []*schema.Index{
		{Name: table + "_timestamp", Columns: []*schema.Column{cols[2]}},
	}
	for _, name := range extra {
		for _, c := range cols {
			if c.Name == name {
				idx = append(idx, &schema.Index{Name: table + "_" + name, Columns: []*schema.Column{c}})
			}
		}
	}
	return idx
}

var (
	snapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "game_id", Type: field.TypeString, Size: 64},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "phase", Type: field.TypeString, Size: 32},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    snapshotsColumns,
		PrimaryKey: []*schema.Column{snapshotsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "snapshots_game_id", Columns: []*schema.Column{snapshotsColumns[1]}},
		},
	}

	turnEventsColumns = eventColumns(
		&schema.Column{Name: "game_id", Type: field.TypeString, Size: 64},
		&schema.Column{Name: "turn", Type: field.TypeInt},
		&schema.Column{Name: "player_id", Type: field.TypeString, Size: 64},
		&schema.Column{Name: "player_name", Type: field.TypeString},
		&schema.Column{Name: "template_id", Type: field.TypeString},
		&schema.Column{Name: "category", Type: field.TypeString},
		&schema.Column{Name: "difficulty", Type: field.TypeString, Size: 16},
		&schema.Column{Name: "answer", Type: field.TypeFloat64},
		&schema.Column{Name: "truth", Type: field.TypeFloat64},
		&schema.Column{Name: "points", Type: field.TypeInt},
		&schema.Column{Name: "severe_miss", Type: field.TypeBool},
		&schema.Column{Name: "timed_out", Type: field.TypeBool},
		&schema.Column{Name: "boosted", Type: field.TypeBool},
		&schema.Column{Name: "position", Type: field.TypeInt},
	)
	TurnEventsTable = &schema.Table{
		Name:       "turn_events",
		Columns:    turnEventsColumns,
		PrimaryKey: []*schema.Column{turnEventsColumns[0]},
		Indexes:    eventIndexes("turn_events", turnEventsColumns, "game_id", "player_name"),
	}

	llmRequestEventsColumns = eventColumns(
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	)
	LLMRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    llmRequestEventsColumns,
		PrimaryKey: []*schema.Column{llmRequestEventsColumns[0]},
		Indexes:    eventIndexes("llm_request_events", llmRequestEventsColumns, "provider", "purpose", "success"),
	}

	// globalSequenceColumns back the shared event counter. The table holds
	// exactly one row with id 1.
	globalSequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	GlobalSequenceTable = &schema.Table{
		Name:       "global_sequence",
		Columns:    globalSequenceColumns,
		PrimaryKey: []*schema.Column{globalSequenceColumns[0]},
	}

	// Tables lists every table the store creates.
	Tables = []*schema.Table{
		SnapshotsTable,
		TurnEventsTable,
		LLMRequestEventsTable,
		GlobalSequenceTable,
	}
)
