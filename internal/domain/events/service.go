package events

import (
	"context"
	"errors"
	"time"

	"digipet/internal/domain/digipet"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service implementa digipet.Journal sobre un Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Record(ctx context.Context, action digipet.Action, d digipet.Digipet) error {
	if action == "" {
		return ErrInvalidInput
	}

	e := Event{
		ID:         uuid.NewString(),
		Action:     action,
		Happiness:  d.Happiness,
		Nutrition:  d.Nutrition,
		Discipline: d.Discipline,
		OccurredAt: s.now().UTC(),
	}
	return s.repo.Create(ctx, e)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Event, error) {
	filter.Limit = filter.EffectiveLimit()
	return s.repo.List(ctx, filter)
}
