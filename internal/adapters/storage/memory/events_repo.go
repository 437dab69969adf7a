package memory

import (
	"context"
	"errors"
	"sync"

	"digipet/internal/domain/events"
)

type eventRepo struct {
	mu    sync.RWMutex
	items []events.Event // orden de inserción
	ids   map[string]struct{}
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		ids: make(map[string]struct{}),
	}
}

func (r *eventRepo) Create(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.ids[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.ids[e.ID] = struct{}{}
	r.items = append(r.items, e)
	return nil
}

func (r *eventRepo) List(ctx context.Context, filter events.ListFilter) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.EffectiveLimit()
	out := make([]events.Event, 0)

	// Más reciente primero: recorremos al revés el orden de inserción.
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.items[i]
		if !filter.Matches(e.Action) {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}
