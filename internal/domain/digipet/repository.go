package digipet

import (
	"context"
	"errors"
)

var (
	ErrNoDigipet      = errors.New("no digipet")
	ErrAlreadyHatched = errors.New("digipet already hatched")
)

// Store guarda la única mascota del proceso.
// Get/Update/Delete devuelven ErrNoDigipet si no hay mascota;
// Create devuelve ErrAlreadyHatched si ya hay una.
type Store interface {
	Get(ctx context.Context) (Digipet, error)
	Set(ctx context.Context, d Digipet) error
	Create(ctx context.Context, d Digipet) error
	// Update aplica fn sobre la mascota actual de forma atómica.
	Update(ctx context.Context, fn func(Digipet) Digipet) (Digipet, error)
	Delete(ctx context.Context) (Digipet, error)
}
