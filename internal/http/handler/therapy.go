package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"noah/internal/auth"
	"noah/internal/therapy"
)

type TherapyHandler struct {
	Svc *therapy.Service
}

func (h *TherapyHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListExercises(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *TherapyHandler) CompleteExercise(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	exerciseID := chi.URLParam(r, "id")

	var req struct {
		Effectiveness *int `json:"effectiveness"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
	}

	c, err := h.Svc.CompleteExercise(r.Context(), uid, exerciseID, req.Effectiveness)
	if err != nil {
		switch {
		case errors.Is(err, therapy.ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, therapy.ErrInvalidInput):
			http.Error(w, "invalid input", http.StatusBadRequest)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

type thoughtRecordDTO struct {
	ID                    string    `json:"id"`
	Date                  time.Time `json:"date"`
	Situation             string    `json:"situation"`
	AutomaticThoughts     string    `json:"automatic_thoughts"`
	Emotions              []string  `json:"emotions"`
	EmotionIntensities    []int64   `json:"emotion_intensities"`
	EvidenceFor           string    `json:"evidence_for"`
	EvidenceAgainst       string    `json:"evidence_against"`
	BalancedThought       string    `json:"balanced_thought"`
	NewEmotionIntensities []int64   `json:"new_emotion_intensities"`
	EmotionalChange       int       `json:"emotional_change"`
}

func toThoughtRecordDTO(r *therapy.ThoughtRecord) thoughtRecordDTO {
	return thoughtRecordDTO{
		ID:                    r.ID,
		Date:                  r.Date,
		Situation:             r.Situation,
		AutomaticThoughts:     r.AutomaticThoughts,
		Emotions:              []string(r.Emotions),
		EmotionIntensities:    []int64(r.EmotionIntensities),
		EvidenceFor:           r.EvidenceFor,
		EvidenceAgainst:       r.EvidenceAgainst,
		BalancedThought:       r.BalancedThought,
		NewEmotionIntensities: []int64(r.NewEmotionIntensities),
		EmotionalChange:       r.EmotionalChange(),
	}
}

func (h *TherapyHandler) CreateThoughtRecord(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req struct {
		Situation             string   `json:"situation"`
		AutomaticThoughts     string   `json:"automatic_thoughts"`
		Emotions              []string `json:"emotions"`
		EmotionIntensities    []int64  `json:"emotion_intensities"`
		EvidenceFor           string   `json:"evidence_for"`
		EvidenceAgainst       string   `json:"evidence_against"`
		BalancedThought       string   `json:"balanced_thought"`
		NewEmotionIntensities []int64  `json:"new_emotion_intensities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	rec, err := h.Svc.CreateThoughtRecord(r.Context(), uid, therapy.ThoughtRecordInput{
		Situation:             req.Situation,
		AutomaticThoughts:     req.AutomaticThoughts,
		Emotions:              req.Emotions,
		EmotionIntensities:    req.EmotionIntensities,
		EvidenceFor:           req.EvidenceFor,
		EvidenceAgainst:       req.EvidenceAgainst,
		BalancedThought:       req.BalancedThought,
		NewEmotionIntensities: req.NewEmotionIntensities,
	})
	if err != nil {
		if errors.Is(err, therapy.ErrInvalidInput) {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toThoughtRecordDTO(rec))
}

func (h *TherapyHandler) ListThoughtRecords(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	rows, err := h.Svc.ListThoughtRecords(r.Context(), uid, limit)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]thoughtRecordDTO, 0, len(rows))
	for _, rec := range rows {
		out = append(out, toThoughtRecordDTO(rec))
	}
	writeJSON(w, http.StatusOK, out)
}
