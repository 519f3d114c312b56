package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const activityTable = "activity_events"

// activityRepo implements ActivityRepo with ent's SQL builder. Timestamps
// are stored as Unix nanoseconds so ordering and range filters stay exact.
type activityRepo struct {
	drv *entsql.Driver
}

func (r *activityRepo) Append(ctx context.Context, e ActivityEvent) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(activityTable).
		Columns("session_id", "username", "action", "subject_kind", "subject_id", "detail", "created_at").
		Values(e.SessionID, e.Username, string(e.Action), e.SubjectKind, e.SubjectID, e.Detail, ts.UnixNano()).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("append activity event: %w", err)
	}
	return nil
}

func (r *activityRepo) Query(ctx context.Context, sessionID string, opts QueryOpts) ([]ActivityEvent, error) {
	preds := []*entsql.Predicate{entsql.EQ("session_id", sessionID)}
	if opts.After > 0 {
		preds = append(preds, entsql.GT("seq", opts.After))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("created_at", opts.From.UnixNano()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("created_at", opts.To.UnixNano()))
	}

	sel := entsql.Dialect(dialect.SQLite).
		Select("seq", "session_id", "username", "action", "subject_kind", "subject_id", "detail", "created_at").
		From(entsql.Table(activityTable)).
		Where(entsql.And(preds...)).
		OrderBy(entsql.Desc("seq"))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		var (
			e      ActivityEvent
			action string
			nanos  int64
		)
		if err := rows.Scan(&e.Sequence, &e.SessionID, &e.Username, &action,
			&e.SubjectKind, &e.SubjectID, &e.Detail, &nanos); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		e.Action = Action(action)
		e.Timestamp = time.Unix(0, nanos)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity events: %w", err)
	}
	return events, nil
}

func (r *activityRepo) Counts(ctx context.Context, sessionID string) (map[Action]int, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("action", entsql.Count("*")).
		From(entsql.Table(activityTable))
	if sessionID != "" {
		sel = sel.Where(entsql.EQ("session_id", sessionID))
	}
	query, args := sel.GroupBy("action").Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("count activity events: %w", err)
	}
	defer rows.Close()

	counts := make(map[Action]int)
	for rows.Next() {
		var (
			action string
			n      int
		)
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("scan activity count: %w", err)
		}
		counts[Action(action)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity counts: %w", err)
	}
	return counts, nil
}

func (r *activityRepo) Purge(ctx context.Context, before time.Time) (int64, error) {
	del := entsql.Dialect(dialect.SQLite).Delete(activityTable)
	if !before.IsZero() {
		del = del.Where(entsql.LT("created_at", before.UnixNano()))
	}
	query, args := del.Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("purge activity events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge activity events: %w", err)
	}
	return n, nil
}
