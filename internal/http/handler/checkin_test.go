package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"noah/internal/auth"
	"noah/internal/checkin"
	"noah/internal/http/handler"
	"noah/internal/logger"
)

// memStore keeps check-ins in memory, newest first.
type memStore struct {
	entries   []*checkin.CheckIn
	failFlags bool
}

func (s *memStore) Create(ctx context.Context, c *checkin.CheckIn) error {
	s.entries = append([]*checkin.CheckIn{c}, s.entries...)
	return nil
}

func (s *memStore) RecentByUser(ctx context.Context, userID uint64, limit int) ([]*checkin.CheckIn, error) {
	out := make([]*checkin.CheckIn, 0, limit)
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memStore) UpdateFlags(ctx context.Context, id string, flags []checkin.Flag) error {
	if s.failFlags {
		return errors.New("flags write failed")
	}
	for _, e := range s.entries {
		if e.ID == id {
			e.Flags = e.Flags[:0]
			for _, f := range flags {
				e.Flags = append(e.Flags, string(f))
			}
		}
	}
	return nil
}

func newTestServer(t *testing.T) (http.Handler, *auth.JWT) {
	t.Helper()
	return newTestServerWith(t, &memStore{})
}

func newTestServerWith(t *testing.T, store *memStore) (http.Handler, *auth.JWT) {
	t.Helper()

	jwtSvc := auth.NewJWT("test-secret")
	svc := checkin.NewService(store, nil, logger.NewNop())
	h := &handler.CheckInHandler{Svc: svc}

	r := chi.NewRouter()
	r.Route("/checkins", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Post("/", h.Submit)
		r.Get("/", h.List)
		r.Get("/questions", h.Questions)
	})
	return r, jwtSvc
}

func authedRequest(t *testing.T, jwtSvc *auth.JWT, method, target string, body []byte) *http.Request {
	t.Helper()

	token, err := jwtSvc.Sign(1, false)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestSubmitRequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/checkins/", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSubmitComplete(t *testing.T) {
	srv, jwtSvc := newTestServer(t)

	body := []byte(`{"responses":{"sleep":4,"anxiety":4,"mood":4,"energy":4,"focus":4,"appetite":4,"social_connection":4,"motivation":4},"notes":"ok day"}`)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, authedRequest(t, jwtSvc, http.MethodPost, "/checkins/", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var out struct {
		ID    string   `json:"id"`
		Flags []string `json:"flags"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ID == "" {
		t.Fatal("expected an id")
	}
	if len(out.Flags) != 0 {
		t.Fatalf("all-4 submission should carry no flags, got %v", out.Flags)
	}
}

func TestSubmitIncomplete(t *testing.T) {
	srv, jwtSvc := newTestServer(t)

	body := []byte(`{"responses":{"sleep":4}}`)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, authedRequest(t, jwtSvc, http.MethodPost, "/checkins/", body))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var out struct {
		Missing []string `json:"missing"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Missing) != 7 {
		t.Fatalf("expected 7 missing questions, got %v", out.Missing)
	}
}

func TestSubmitTrendWriteFailureReportsPending(t *testing.T) {
	store := &memStore{failFlags: true}
	srv, jwtSvc := newTestServerWith(t, store)

	low := []byte(`{"responses":{"sleep":2,"anxiety":2,"mood":2,"energy":2,"focus":2,"appetite":2,"social_connection":2,"motivation":2}}`)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		srv.ServeHTTP(last, authedRequest(t, jwtSvc, http.MethodPost, "/checkins/", low))
	}

	// The third entry fills the trend window; its flags write fails, so the
	// entry is saved but reported as pending.
	if last.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body=%s", last.Code, last.Body.String())
	}

	var out struct {
		ID           string   `json:"id"`
		Flags        []string `json:"flags"`
		TrendPending bool     `json:"trend_pending"`
	}
	if err := json.Unmarshal(last.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.TrendPending {
		t.Fatal("expected trend_pending on a failed trend write")
	}
	for _, f := range out.Flags {
		if f == string(checkin.FlagDeclining) {
			t.Fatal("trend flag must not appear when its write failed")
		}
	}
	if len(store.entries) != 3 {
		t.Fatalf("all three submissions must persist, got %d", len(store.entries))
	}
}

func TestSubmitSuccessOmitsTrendPending(t *testing.T) {
	srv, jwtSvc := newTestServer(t)

	body := []byte(`{"responses":{"sleep":4,"anxiety":4,"mood":4,"energy":4,"focus":4,"appetite":4,"social_connection":4,"motivation":4}}`)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, authedRequest(t, jwtSvc, http.MethodPost, "/checkins/", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, present := out["trend_pending"]; present {
		t.Fatal("trend_pending must be omitted on full success")
	}
}

func TestQuestionsCatalog(t *testing.T) {
	srv, jwtSvc := newTestServer(t)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, authedRequest(t, jwtSvc, http.MethodGet, "/checkins/questions", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var out []struct {
		Key    string `json:"key"`
		Prompt string `json:"prompt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != len(checkin.AllQuestions()) {
		t.Fatalf("expected %d questions, got %d", len(checkin.AllQuestions()), len(out))
	}
	for _, q := range out {
		if q.Prompt == "" {
			t.Fatalf("question %s has no prompt", q.Key)
		}
	}
}
