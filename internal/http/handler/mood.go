package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"noah/internal/auth"
	"noah/internal/mood"
)

type MoodHandler struct {
	Svc *mood.Service
}

type createMoodReq struct {
	Mood       string   `json:"mood"`
	Intensity  int      `json:"intensity"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes"`
	Tags       []string `json:"tags"`
}

type moodEntryDTO struct {
	ID         string    `json:"id"`
	UserID     uint64    `json:"user_id"`
	Timestamp  time.Time `json:"timestamp"`
	Mood       string    `json:"mood"`
	Intensity  int       `json:"intensity"`
	Activities []string  `json:"activities"`
	Notes      *string   `json:"notes"`
	Tags       []string  `json:"tags"`
}

func toMoodDTO(e *mood.Entry) moodEntryDTO {
	return moodEntryDTO{
		ID:         e.ID,
		UserID:     e.UserID,
		Timestamp:  e.Timestamp,
		Mood:       e.Mood,
		Intensity:  e.Intensity,
		Activities: []string(e.Activities),
		Notes:      e.Notes,
		Tags:       []string(e.Tags),
	}
}

func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createMoodReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	activities := make([]mood.Activity, 0, len(req.Activities))
	for _, a := range req.Activities {
		activities = append(activities, mood.Activity(a))
	}

	entry, err := h.Svc.Create(r.Context(), uid, mood.CreateInput{
		Mood:       mood.Mood(req.Mood),
		Intensity:  req.Intensity,
		Activities: activities,
		Notes:      req.Notes,
		Tags:       req.Tags,
	})
	if err != nil {
		if errors.Is(err, mood.ErrInvalidEntry) {
			http.Error(w, "invalid mood entry", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toMoodDTO(entry))
}

func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
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

	out := make([]moodEntryDTO, 0, len(rows))
	for _, e := range rows {
		out = append(out, toMoodDTO(e))
	}
	writeJSON(w, http.StatusOK, out)
}

type moodAnalyticsDTO struct {
	MoodFrequency        map[string]int `json:"mood_frequency"`
	ActivityFrequency    map[string]int `json:"activity_frequency"`
	AverageIntensity     float64        `json:"average_intensity"`
	TotalEntries         int            `json:"total_entries"`
	EntriesPerDay        float64        `json:"entries_per_day"`
	MostFrequentMood     *string        `json:"most_frequent_mood"`
	MostFrequentActivity *string        `json:"most_frequent_activity"`
	Insights             []string       `json:"insights"`
	StartDate            time.Time      `json:"start_date"`
	EndDate              time.Time      `json:"end_date"`
}

func (h *MoodHandler) Analytics(w http.ResponseWriter, r *http.Request) {
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

	dto := moodAnalyticsDTO{
		MoodFrequency:     make(map[string]int, len(a.MoodFrequency)),
		ActivityFrequency: make(map[string]int, len(a.ActivityFrequency)),
		AverageIntensity:  a.AverageIntensity,
		TotalEntries:      a.TotalEntries,
		EntriesPerDay:     a.EntriesPerDay(),
		Insights:          a.Insights(),
		StartDate:         a.StartDate,
		EndDate:           a.EndDate,
	}
	for m, n := range a.MoodFrequency {
		dto.MoodFrequency[string(m)] = n
	}
	for act, n := range a.ActivityFrequency {
		dto.ActivityFrequency[string(act)] = n
	}
	if m, _, ok := a.MostFrequentMood(); ok {
		s := string(m)
		dto.MostFrequentMood = &s
	}
	if act, _, ok := a.MostFrequentActivity(); ok {
		s := string(act)
		dto.MostFrequentActivity = &s
	}

	writeJSON(w, http.StatusOK, dto)
}
