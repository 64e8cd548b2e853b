package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"noah/internal/auth"
	"noah/internal/crisis"
)

type CrisisHandler struct {
	Svc *crisis.Service
}

type safetyPlanReq struct {
	WarningSignals       []string `json:"warning_signals"`
	CopingStrategies     []string `json:"coping_strategies"`
	ReasonsToLive        []string `json:"reasons_to_live"`
	SafeEnvironmentSteps []string `json:"safe_environment_steps"`
	PersonalNotes        *string  `json:"personal_notes"`
}

func (h *CrisisHandler) SaveSafetyPlan(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req safetyPlanReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	plan, err := h.Svc.SaveSafetyPlan(r.Context(), uid, crisis.SafetyPlanInput{
		WarningSignals:       req.WarningSignals,
		CopingStrategies:     req.CopingStrategies,
		ReasonsToLive:        req.ReasonsToLive,
		SafeEnvironmentSteps: req.SafeEnvironmentSteps,
		PersonalNotes:        req.PersonalNotes,
	})
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

func (h *CrisisHandler) GetSafetyPlan(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	plan, err := h.Svc.SafetyPlanForUser(r.Context(), uid)
	if err != nil {
		if errors.Is(err, crisis.ErrNotFound) {
			http.Error(w, "no safety plan yet", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

type contactReq struct {
	Kind                 string  `json:"kind"`
	Name                 string  `json:"name"`
	Relationship         string  `json:"relationship"`
	PhoneNumber          string  `json:"phone_number"`
	AlternatePhoneNumber *string `json:"alternate_phone_number"`
	Email                *string `json:"email"`
	Address              *string `json:"address"`
	Notes                *string `json:"notes"`
	IsAvailable24Hours   bool    `json:"is_available_24_hours"`
}

func (h *CrisisHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req contactReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	c, err := h.Svc.AddContact(r.Context(), uid, crisis.ContactInput{
		Kind:                 crisis.ContactKind(req.Kind),
		Name:                 req.Name,
		Relationship:         req.Relationship,
		PhoneNumber:          req.PhoneNumber,
		AlternatePhoneNumber: req.AlternatePhoneNumber,
		Email:                req.Email,
		Address:              req.Address,
		Notes:                req.Notes,
		IsAvailable24Hours:   req.IsAvailable24Hours,
	})
	if err != nil {
		if errors.Is(err, crisis.ErrInvalidInput) {
			http.Error(w, "name and phone number required", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *CrisisHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	rows, err := h.Svc.ContactsForUser(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *CrisisHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Svc.DeleteContact(r.Context(), uid, id); err != nil {
		if errors.Is(err, crisis.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CrisisHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListResources(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type resourceReq struct {
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	PhoneNumber       *string  `json:"phone_number"`
	Website           *string  `json:"website"`
	Address           *string  `json:"address"`
	AvailabilityHours string   `json:"availability_hours"`
	Languages         []string `json:"languages"`
	Services          []string `json:"services"`
}

// CreateResource is admin-only (enforced by the router).
func (h *CrisisHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req resourceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	res, err := h.Svc.CreateResource(r.Context(), crisis.ResourceInput{
		Name:              req.Name,
		Category:          crisis.ResourceCategory(req.Category),
		Description:       req.Description,
		PhoneNumber:       req.PhoneNumber,
		Website:           req.Website,
		Address:           req.Address,
		AvailabilityHours: req.AvailabilityHours,
		Languages:         req.Languages,
		Services:          req.Services,
	})
	if err != nil {
		if errors.Is(err, crisis.ErrInvalidInput) {
			http.Error(w, "name and a valid category required", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// VerifyResource is admin-only (enforced by the router).
func (h *CrisisHandler) VerifyResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Svc.VerifyResource(r.Context(), id); err != nil {
		if errors.Is(err, crisis.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CrisisHandler) ListHelplines(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListHelplines(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
