package router

import (
	"context"
	"errors"
	"net/http"

	mem "digipet/internal/adapters/storage/memory"
	"digipet/internal/domain/digipet"
	"digipet/internal/domain/events"
	"digipet/internal/middleware"
	"digipet/internal/platform/logger"

	_ "digipet/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcionales: si vienen nil se usan los repos in-memory.
	// Tests pasan Store para sembrar la mascota inicial.
	Store  digipet.Store
	Events events.Repository

	// HatchOnStart crea la mascota inicial si el store está vacío.
	HatchOnStart bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	store := opts.Store
	if store == nil {
		store = mem.NewDigipetStore()
	}
	eventRepo := opts.Events
	if eventRepo == nil {
		eventRepo = mem.NewEventRepo()
	}

	eventsSvc := events.NewService(eventRepo)
	digipetSvc := digipet.NewService(store, eventsSvc, log)

	if opts.HatchOnStart {
		if _, err := digipetSvc.Hatch(context.Background()); err != nil && !errors.Is(err, digipet.ErrAlreadyHatched) {
			log.Error("hatch on start failed", map[string]any{"error": err.Error()})
		}
	}

	digipet.RegisterRoutes(r, digipetSvc)
	events.RegisterRoutes(r, eventsSvc)

	return r
}
