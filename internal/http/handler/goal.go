package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"noah/internal/auth"
	"noah/internal/goal"
)

type GoalHandler struct {
	Svc *goal.Service
}

type goalDTO struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	Frequency          string     `json:"frequency"`
	Target             int        `json:"target"`
	Progress           int        `json:"progress"`
	ProgressPercentage float64    `json:"progress_percentage"`
	IsCompleted        bool       `json:"is_completed"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
}

func toGoalDTO(g *goal.Goal) goalDTO {
	return goalDTO{
		ID:                 g.ID,
		Title:              g.Title,
		Description:        g.Description,
		Category:           g.Category,
		Frequency:          g.Frequency,
		Target:             g.Target,
		Progress:           g.Progress,
		ProgressPercentage: g.ProgressPercentage(),
		IsCompleted:        g.IsCompleted,
		StartDate:          g.StartDate,
		EndDate:            g.EndDate,
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Category    string     `json:"category"`
		Frequency   string     `json:"frequency"`
		Target      int        `json:"target"`
		EndDate     *time.Time `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.Svc.Create(r.Context(), uid, goal.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    goal.Category(req.Category),
		Frequency:   goal.Frequency(req.Frequency),
		Target:      req.Target,
		EndDate:     req.EndDate,
	})
	if err != nil {
		if errors.Is(err, goal.ErrInvalidInput) {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalDTO(g))
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	rows, err := h.Svc.ListForUser(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]goalDTO, 0, len(rows))
	for _, g := range rows {
		out = append(out, toGoalDTO(g))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *GoalHandler) Progress(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	goalID := chi.URLParam(r, "id")

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.Svc.AddProgress(r.Context(), uid, goalID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, goal.ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, goal.ErrInvalidInput):
			http.Error(w, "invalid input", http.StatusBadRequest)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, toGoalDTO(g))
}
