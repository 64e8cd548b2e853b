package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"noah/internal/auth"
	"noah/internal/checkin"
)

type CheckInHandler struct {
	Svc *checkin.Service
}

type submitCheckInReq struct {
	Responses map[string]int `json:"responses"`
	Notes     string         `json:"notes"`
}

type checkInDTO struct {
	ID        string            `json:"id"`
	UserID    uint64            `json:"user_id"`
	Timestamp time.Time         `json:"timestamp"`
	Responses checkin.Responses `json:"responses"`
	Notes     *string           `json:"notes"`
	Flags     []string          `json:"flags"`

	// TrendPending is set when the entry was saved but the trend update
	// failed; the flags carry submission-time values only and the next
	// submission will re-evaluate the window.
	TrendPending bool `json:"trend_pending,omitempty"`
}

func toCheckInDTO(c *checkin.CheckIn) checkInDTO {
	return checkInDTO{
		ID:        c.ID,
		UserID:    c.UserID,
		Timestamp: c.Timestamp,
		Responses: c.Responses.Data(),
		Notes:     c.Notes,
		Flags:     []string(c.Flags),
	}
}

func (h *CheckInHandler) Submit(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req submitCheckInReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	responses := make(checkin.Responses, len(req.Responses))
	for k, v := range req.Responses {
		responses[checkin.Question(k)] = v
	}

	entry, err := h.Svc.Submit(r.Context(), uid, responses, req.Notes)

	var verr *checkin.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":        verr.Error(),
			"missing":      verr.Missing,
			"out_of_range": verr.OutOfRange,
		})
		return
	case err != nil && entry == nil:
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	dto := toCheckInDTO(entry)
	if err != nil {
		// Persisted with submission-time flags; only the trend update
		// failed. Report the saved entry rather than losing it, and tell
		// the client the trend evaluation is still outstanding.
		dto.TrendPending = true
	}
	writeJSON(w, http.StatusCreated, dto)
}

func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	rows, err := h.Svc.Recent(r.Context(), uid, limit)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]checkInDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, toCheckInDTO(c))
	}
	writeJSON(w, http.StatusOK, out)
}

type questionDTO struct {
	Key       string `json:"key"`
	Prompt    string `json:"prompt"`
	LowLabel  string `json:"low_label"`
	HighLabel string `json:"high_label"`
}

// Questions serves the fixed catalog the client renders the check-in form
// from. Keys here are exactly the keys Submit validates against.
func (h *CheckInHandler) Questions(w http.ResponseWriter, r *http.Request) {
	qs := checkin.AllQuestions()
	out := make([]questionDTO, 0, len(qs))
	for _, q := range qs {
		out = append(out, questionDTO{
			Key:       string(q),
			Prompt:    q.Prompt(),
			LowLabel:  q.LowLabel(),
			HighLabel: q.HighLabel(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
