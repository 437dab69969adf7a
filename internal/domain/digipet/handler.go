package digipet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	msgWelcome      = "Welcome to Digipet! Check /instructions to learn how to look after your digipet."
	msgInstructions = "You can check out your digipet's stats with /digipet, and add various actions after the /digipet route: /hatch, /walk, /feed, /train, /ignore and /rehome. /digipet/history shows what has happened so far."
	msgHasDigipet   = "Your digipet is waiting for you!"
	msgNoDigipet    = "You don't have a digipet yet! Try hatching one with /digipet/hatch"
	msgHatched      = "You have successfully hatched an adorable new digipet. Just the cutest."
	msgCantHatch    = "You can't hatch a digipet now because you already have one!"
	msgWalked       = "You walked your digipet. It looks happier now!"
	msgFed          = "You fed your digipet. It looks better nourished now!"
	msgTrained      = "You trained your digipet. It looks more disciplined now!"
	msgIgnored      = "You ignored your digipet. It's getting sadder, hungrier and wilder..."
	msgRehomed      = "You have rehomed your digipet. You can hatch a new one with /digipet/hatch"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/", messageHandler(msgWelcome))
	r.Get("/instructions", messageHandler(msgInstructions))

	r.Get("/digipet", getDigipetHandler(svc))
	r.Get("/digipet/hatch", hatchHandler(svc))

	// Acciones sobre la mascota existente
	r.Get("/digipet/walk", actionHandler(svc.Walk, msgWalked))
	r.Get("/digipet/feed", actionHandler(svc.Feed, msgFed))
	r.Get("/digipet/train", actionHandler(svc.Train, msgTrained))
	r.Get("/digipet/ignore", actionHandler(svc.Ignore, msgIgnored))

	r.Get("/digipet/rehome", rehomeHandler(svc))
}

// digipetResponse representa las stats de la mascota devueltas por la API.
type digipetResponse struct {
	Happiness  int `json:"happiness"`
	Nutrition  int `json:"nutrition"`
	Discipline int `json:"discipline"`
}

// stateResponse es la forma común de todas las respuestas de /digipet.
// Digipet es null cuando no hay mascota.
type stateResponse struct {
	Message string           `json:"message"`
	Digipet *digipetResponse `json:"digipet"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func messageHandler(msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: msg})
	}
}

// getDigipetHandler godoc
// @Summary Ver la mascota
// @Description Devuelve las stats actuales de la mascota.
// @Tags digipet
// @Produce json
// @Success 200 {object} stateResponse
// @Failure 404 {object} stateResponse "no hay mascota"
// @Failure 500 {string} string "internal error"
// @Router /digipet [get]
func getDigipetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Get(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stateResponse{Message: msgHasDigipet, Digipet: toDigipetResponse(d)})
	}
}

// hatchHandler godoc
// @Summary Hatch de una mascota nueva
// @Description Crea la mascota inicial (50/50/50). Falla con 409 si ya existe una.
// @Tags digipet
// @Produce json
// @Success 200 {object} stateResponse
// @Failure 409 {object} stateResponse "ya hay mascota"
// @Failure 500 {string} string "internal error"
// @Router /digipet/hatch [get]
func hatchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Hatch(r.Context())
		if errors.Is(err, ErrAlreadyHatched) {
			// Mostramos la mascota existente junto con el rechazo.
			cur, gerr := svc.Get(r.Context())
			resp := stateResponse{Message: msgCantHatch}
			if gerr == nil {
				resp.Digipet = toDigipetResponse(cur)
			}
			writeJSON(w, http.StatusConflict, resp)
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stateResponse{Message: msgHatched, Digipet: toDigipetResponse(d)})
	}
}

// actionHandler godoc
// @Summary Interactuar con la mascota
// @Description walk (+10 happiness, -5 nutrition), feed (+10 nutrition, -5 discipline), train (+10 discipline, -5 happiness), ignore (-10 en todas). Las stats quedan siempre en [0, 100].
// @Tags digipet
// @Produce json
// @Param action path string true "Acción" Enums(walk, feed, train, ignore)
// @Success 200 {object} stateResponse
// @Failure 404 {object} stateResponse "no hay mascota"
// @Failure 500 {string} string "internal error"
// @Router /digipet/{action} [get]
func actionHandler(do func(context.Context) (Digipet, error), msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := do(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stateResponse{Message: msg, Digipet: toDigipetResponse(d)})
	}
}

// rehomeHandler godoc
// @Summary Entregar la mascota
// @Description Elimina la mascota actual; después se puede hacer hatch de nuevo.
// @Tags digipet
// @Produce json
// @Success 200 {object} stateResponse
// @Failure 404 {object} stateResponse "no hay mascota"
// @Failure 500 {string} string "internal error"
// @Router /digipet/rehome [get]
func rehomeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Rehome(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stateResponse{Message: msgRehomed})
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoDigipet):
		writeJSON(w, http.StatusNotFound, stateResponse{Message: msgNoDigipet})
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toDigipetResponse(d Digipet) *digipetResponse {
	return &digipetResponse{
		Happiness:  d.Happiness,
		Nutrition:  d.Nutrition,
		Discipline: d.Discipline,
	}
}

// writeJSON está duplicado intencionalmente en digipet/events
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
