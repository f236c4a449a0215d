package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendTurnEvent(ctx context.Context, data TurnEventData) error {
	err := r.insertEvent(ctx, TurnEventsTable.Name,
		[]string{"game_id", "turn", "player_id", "player_name", "template_id", "category", "difficulty",
			"answer", "truth", "points", "severe_miss", "timed_out", "boosted", "position"},
		[]any{data.GameID, data.Turn, data.PlayerID, data.PlayerName, data.TemplateID, data.Category, data.Difficulty,
			data.Answer, data.Truth, data.Points, data.SevereMiss, data.TimedOut, data.Boosted, data.Position},
	)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryTurnEvents(ctx context.Context, gameID string, opts QueryOpts) ([]TurnEvent, error) {
	sel := r.s.builder().Select(
		"id", "sequence", "timestamp", "game_id", "turn", "player_id", "player_name", "template_id",
		"category", "difficulty", "answer", "truth", "points", "severe_miss", "timed_out", "boosted", "position",
	).From(entsql.Table(TurnEventsTable.Name))
	if gameID != "" {
		sel.Where(entsql.EQ("game_id", gameID))
	}
	sel = applyOpts(sel, opts).OrderBy(entsql.Asc("sequence"))

	query, args := sel.Query()
	rows, err := r.s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query turn events: %w", err)
	}
	defer rows.Close()

	var out []TurnEvent
	for rows.Next() {
		var e TurnEvent
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.GameID, &e.Turn, &e.PlayerID, &e.PlayerName,
			&e.TemplateID, &e.Category, &e.Difficulty, &e.Answer, &e.Truth, &e.Points, &e.SevereMiss,
			&e.TimedOut, &e.Boosted, &e.Position); err != nil {
			return nil, fmt.Errorf("scan turn event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) PlayerStats(ctx context.Context) ([]PlayerStat, error) {
	t := r.s.builder().Table(TurnEventsTable.Name)
	query, args := r.s.builder().Select(
		t.C("player_name"),
		entsql.As("COUNT(DISTINCT "+t.C("game_id")+")", "games"),
		entsql.As(entsql.Count("*"), "answers"),
		entsql.As("COALESCE("+entsql.Sum(t.C("points"))+", 0)", "total_points"),
		entsql.As("SUM(CASE WHEN "+t.C("points")+" = 4 THEN 1 ELSE 0 END)", "perfect"),
		entsql.As("SUM(CASE WHEN "+t.C("severe_miss")+" THEN 1 ELSE 0 END)", "severe"),
		entsql.As("SUM(CASE WHEN "+t.C("timed_out")+" THEN 1 ELSE 0 END)", "timeouts"),
	).From(t).
		GroupBy(t.C("player_name")).
		OrderBy(entsql.Desc("total_points"), entsql.Asc(t.C("player_name"))).
		Query()

	rows, err := r.s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query player stats: %w", err)
	}
	defer rows.Close()

	var out []PlayerStat
	for rows.Next() {
		var p PlayerStat
		if err := rows.Scan(&p.PlayerName, &p.Games, &p.Answers, &p.TotalPoints, &p.PerfectHits,
			&p.SevereMisses, &p.Timeouts); err != nil {
			return nil, fmt.Errorf("scan player stats: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *eventRepo) GameCount(ctx context.Context) (int, error) {
	t := r.s.builder().Table(TurnEventsTable.Name)
	query, args := r.s.builder().Select("COUNT(DISTINCT " + t.C("game_id") + ")").From(t).Query()
	var n int
	if err := r.s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return n, nil
}
