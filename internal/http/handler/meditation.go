package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"noah/internal/auth"
	"noah/internal/meditation"
)

type MeditationHandler struct {
	Svc *meditation.Service
}

func (h *MeditationHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *MeditationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	sessionID := chi.URLParam(r, "id")

	c, err := h.Svc.Complete(r.Context(), uid, sessionID)
	if err != nil {
		if errors.Is(err, meditation.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *MeditationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	st, err := h.Svc.StatsForUser(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
