package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

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
		INSERT INTO digipet_events (
			id, action,
			happiness, nutrition, discipline,
			occurred_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		e.ID,
		string(e.Action),
		e.Happiness,
		e.Nutrition,
		e.Discipline,
		e.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventsRepo) List(ctx context.Context, filter events.ListFilter) ([]events.Event, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, action,
			happiness, nutrition, discipline,
			occurred_at
		FROM digipet_events
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	// actions filter
	if len(filter.Actions) > 0 {
		placeholders := make([]string, 0, len(filter.Actions))
		for _, a := range filter.Actions {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(a))
			argN++
		}
		sb.WriteString(" AND action IN (" + strings.Join(placeholders, ",") + ")")
	}

	// seq desempata eventos con el mismo occurred_at
	sb.WriteString(" ORDER BY occurred_at DESC, seq DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, filter.EffectiveLimit())

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		var e events.Event
		var action string

		if err := rows.Scan(
			&e.ID,
			&action,
			&e.Happiness,
			&e.Nutrition,
			&e.Discipline,
			&e.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}

		e.Action = digipet.Action(action)
		out = append(out, e)
	}

	return out, rows.Err()
}
