package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"noah/internal/auth"
	"noah/internal/journal"
)

type JournalHandler struct {
	Svc *journal.Service
}

type createJournalReq struct {
	Content    string   `json:"content"`
	Prompt     *string  `json:"prompt"`
	Tags       []string `json:"tags"`
	MoodBefore *int     `json:"mood_before"`
	MoodAfter  *int     `json:"mood_after"`
}

type journalEntryDTO struct {
	ID         string    `json:"id"`
	UserID     uint64    `json:"user_id"`
	Timestamp  time.Time `json:"timestamp"`
	Content    string    `json:"content"`
	Prompt     *string   `json:"prompt"`
	Tags       []string  `json:"tags"`
	MoodBefore *int      `json:"mood_before"`
	MoodAfter  *int      `json:"mood_after"`
}

func toJournalDTO(e *journal.Entry) journalEntryDTO {
	return journalEntryDTO{
		ID:         e.ID,
		UserID:     e.UserID,
		Timestamp:  e.Timestamp,
		Content:    e.Content,
		Prompt:     e.Prompt,
		Tags:       []string(e.Tags),
		MoodBefore: e.MoodBefore,
		MoodAfter:  e.MoodAfter,
	}
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createJournalReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	entry, err := h.Svc.Create(r.Context(), uid, journal.CreateInput{
		Content:    req.Content,
		Prompt:     req.Prompt,
		Tags:       req.Tags,
		MoodBefore: req.MoodBefore,
		MoodAfter:  req.MoodAfter,
	})
	if err != nil {
		if errors.Is(err, journal.ErrEmptyContent) || errors.Is(err, journal.ErrInvalidMoodRating) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toJournalDTO(entry))
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
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

	out := make([]journalEntryDTO, 0, len(rows))
	for _, e := range rows {
		out = append(out, toJournalDTO(e))
	}
	writeJSON(w, http.StatusOK, out)
}

type journalAnalyticsDTO struct {
	TotalEntries        int                 `json:"total_entries"`
	MoodImprovementRate float64             `json:"mood_improvement_rate"`
	AverageMoodChange   float64             `json:"average_mood_change"`
	EntriesPerDay       float64             `json:"entries_per_day"`
	MostCommonTags      []journal.TagCount  `json:"most_common_tags"`
	TagCounts           map[string]int      `json:"tag_counts"`
	StartDate           time.Time           `json:"start_date"`
	EndDate             time.Time           `json:"end_date"`
}

func (h *JournalHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}

	a, err := h.Svc.AnalyticsForUser(r.Context(), uid, days)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, journalAnalyticsDTO{
		TotalEntries:        a.TotalEntries,
		MoodImprovementRate: a.MoodImprovementRate,
		AverageMoodChange:   a.AverageMoodChange,
		EntriesPerDay:       a.EntriesPerDay(),
		MostCommonTags:      a.MostCommonTags(),
		TagCounts:           a.TagCounts,
		StartDate:           a.StartDate,
		EndDate:             a.EndDate,
	})
}

func (h *JournalHandler) Prompts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, journal.Prompts())
}
