package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"digipet/internal/domain/digipet"
	"digipet/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO digipet_events (id, action, happiness, nutrition, discipline, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		e.ID,
		string(e.Action),
		e.Happiness,
		e.Nutrition,
		e.Discipline,
		e.OccurredAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventsRepo) List(ctx context.Context, filter events.ListFilter) ([]events.Event, error) {
	query := `SELECT id, action, happiness, nutrition, discipline, occurred_at FROM digipet_events`
	args := []any{}

	if len(filter.Actions) > 0 {
		placeholders := make([]string, 0, len(filter.Actions))
		for _, a := range filter.Actions {
			placeholders = append(placeholders, "?")
			args = append(args, string(a))
		}
		query += " WHERE action IN (" + strings.Join(placeholders, ",") + ")"
	}

	query += " ORDER BY occurred_at DESC, seq DESC LIMIT ?"
	args = append(args, filter.EffectiveLimit())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		var e events.Event
		var action string
		var occurred int64

		if err := rows.Scan(&e.ID, &action, &e.Happiness, &e.Nutrition, &e.Discipline, &occurred); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Action = digipet.Action(action)
		e.OccurredAt = time.Unix(0, occurred).UTC()
		out = append(out, e)
	}

	return out, rows.Err()
}
