package digipet

import (
	"context"

	"digipet/internal/platform/logger"
)

// Journal recibe cada acción aplicada con la mascota resultante.
// Lo implementa events.Service; puede ser nil.
type Journal interface {
	Record(ctx context.Context, action Action, d Digipet) error
}

type Service struct {
	store   Store
	journal Journal
	log     logger.Logger
}

func NewService(store Store, journal Journal, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:   store,
		journal: journal,
		log:     log.With(map[string]any{"component": "digipet"}),
	}
}

func (s *Service) Get(ctx context.Context) (Digipet, error) {
	return s.store.Get(ctx)
}

// Set reemplaza la mascota actual (o la crea). Se usa para bootstrap y tests.
func (s *Service) Set(ctx context.Context, d Digipet) error {
	return s.store.Set(ctx, d.Clamp())
}

// Hatch crea la mascota inicial si todavía no hay una.
func (s *Service) Hatch(ctx context.Context) (Digipet, error) {
	d := Initial()
	if err := s.store.Create(ctx, d); err != nil {
		return Digipet{}, err
	}
	s.record(ctx, ActionHatch, d)
	return d, nil
}

func (s *Service) Walk(ctx context.Context) (Digipet, error)   { return s.apply(ctx, ActionWalk) }
func (s *Service) Feed(ctx context.Context) (Digipet, error)   { return s.apply(ctx, ActionFeed) }
func (s *Service) Train(ctx context.Context) (Digipet, error)  { return s.apply(ctx, ActionTrain) }
func (s *Service) Ignore(ctx context.Context) (Digipet, error) { return s.apply(ctx, ActionIgnore) }

// Rehome entrega la mascota; después se puede hacer hatch de nuevo.
func (s *Service) Rehome(ctx context.Context) (Digipet, error) {
	d, err := s.store.Delete(ctx)
	if err != nil {
		return Digipet{}, err
	}
	s.record(ctx, ActionRehome, d)
	return d, nil
}

func (s *Service) apply(ctx context.Context, action Action) (Digipet, error) {
	delta, _ := DeltaOf(action)
	d, err := s.store.Update(ctx, func(cur Digipet) Digipet {
		return cur.Apply(delta)
	})
	if err != nil {
		return Digipet{}, err
	}
	s.record(ctx, action, d)
	return d, nil
}

// record no propaga errores: la mascota es la fuente de verdad, el journal es auditoría.
func (s *Service) record(ctx context.Context, action Action, d Digipet) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, action, d); err != nil {
		s.log.Warn("journal record failed", map[string]any{
			"action": string(action),
			"error":  err.Error(),
		})
	}
}
