package events

import (
	"context"

	"digipet/internal/domain/digipet"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Repository interface {
	Create(ctx context.Context, e Event) error
	// List devuelve los eventos más recientes primero.
	List(ctx context.Context, filter ListFilter) ([]Event, error)
}

type ListFilter struct {
	Actions []digipet.Action
	Limit   int
}

// EffectiveLimit normaliza Limit a (0, MaxLimit]; los repos lo usan tal cual.
func (f ListFilter) EffectiveLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultLimit
	case f.Limit > MaxLimit:
		return MaxLimit
	default:
		return f.Limit
	}
}

// Matches indica si la acción pasa el filtro de acciones.
func (f ListFilter) Matches(a digipet.Action) bool {
	if len(f.Actions) == 0 {
		return true
	}
	for _, want := range f.Actions {
		if a == want {
			return true
		}
	}
	return false
}
