package events

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"digipet/internal/domain/digipet"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/digipet/history", listEventsHandler(svc))
}

// eventResponse representa una entrada del journal devuelta por la API.
type eventResponse struct {
	ID         string         `json:"id"`
	Action     digipet.Action `json:"action"`
	Happiness  int            `json:"happiness"`
	Nutrition  int            `json:"nutrition"`
	Discipline int            `json:"discipline"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type historyResponse struct {
	Events []eventResponse `json:"events"`
}

// listEventsHandler godoc
// @Summary Historial de acciones
// @Description Lista las acciones aplicadas a la mascota, la más reciente primero, con las stats resultantes.
// @Tags events
// @Produce json
// @Param limit query int false "Máximo de eventos a devolver (1-200). Por defecto 50"
// @Param actions query string false "Lista CSV de acciones a incluir (ej: feed,ignore)"
// @Success 200 {object} historyResponse
// @Failure 400 {string} string "acción desconocida"
// @Failure 500 {string} string "internal error"
// @Router /digipet/history [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}

		writeJSON(w, http.StatusOK, historyResponse{Events: out})
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxLimit {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// actions=feed,ignore
	if v := strings.TrimSpace(r.URL.Query().Get("actions")); v != "" {
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			a, err := digipet.ParseAction(p)
			if err != nil {
				return ListFilter{}, err
			}
			filter.Actions = append(filter.Actions, a)
		}
	}

	return filter, nil
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:         e.ID,
		Action:     e.Action,
		Happiness:  e.Happiness,
		Nutrition:  e.Nutrition,
		Discipline: e.Discipline,
		OccurredAt: e.OccurredAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
