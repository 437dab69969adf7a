package memory

import (
	"context"
	"sync"

	"digipet/internal/domain/digipet"
)

// digipetStore guarda la única mascota del proceso. nil = sin mascota.
type digipetStore struct {
	mu sync.RWMutex
	d  *digipet.Digipet
}

func NewDigipetStore() digipet.Store {
	return &digipetStore{}
}

func (s *digipetStore) Get(ctx context.Context) (digipet.Digipet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.d == nil {
		return digipet.Digipet{}, digipet.ErrNoDigipet
	}
	return *s.d, nil
}

func (s *digipetStore) Set(ctx context.Context, d digipet.Digipet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.d = &d
	return nil
}

func (s *digipetStore) Create(ctx context.Context, d digipet.Digipet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.d != nil {
		return digipet.ErrAlreadyHatched
	}
	s.d = &d
	return nil
}

func (s *digipetStore) Update(ctx context.Context, fn func(digipet.Digipet) digipet.Digipet) (digipet.Digipet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.d == nil {
		return digipet.Digipet{}, digipet.ErrNoDigipet
	}
	next := fn(*s.d)
	s.d = &next
	return next, nil
}

func (s *digipetStore) Delete(ctx context.Context) (digipet.Digipet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.d == nil {
		return digipet.Digipet{}, digipet.ErrNoDigipet
	}
	d := *s.d
	s.d = nil
	return d, nil
}
