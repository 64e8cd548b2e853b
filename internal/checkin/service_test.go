package checkin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"noah/internal/checkin"
	"noah/internal/logger"
)

// fakeStore keeps check-ins in memory, newest first.
type fakeStore struct {
	entries []*checkin.CheckIn

	failRecent      error
	failUpdateFlags error

	flagUpdates int
}

func (s *fakeStore) Create(ctx context.Context, c *checkin.CheckIn) error {
	s.entries = append([]*checkin.CheckIn{c}, s.entries...)
	return nil
}

func (s *fakeStore) RecentByUser(ctx context.Context, userID uint64, limit int) ([]*checkin.CheckIn, error) {
	if s.failRecent != nil {
		return nil, s.failRecent
	}
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

func (s *fakeStore) UpdateFlags(ctx context.Context, id string, flags []checkin.Flag) error {
	if s.failUpdateFlags != nil {
		return s.failUpdateFlags
	}
	s.flagUpdates++
	for _, e := range s.entries {
		if e.ID == id {
			e.Flags = e.Flags[:0]
			for _, f := range flags {
				e.Flags = append(e.Flags, string(f))
			}
			return nil
		}
	}
	return errors.New("no such entry")
}

type fakeAlerts struct {
	calls []string
	fail  error

	reminders    []time.Time
	failReminder error
}

func (a *fakeAlerts) EnqueueCrisisAlert(ctx context.Context, userID uint64, checkInID string) error {
	if a.fail != nil {
		return a.fail
	}
	a.calls = append(a.calls, checkInID)
	return nil
}

func (a *fakeAlerts) EnqueueCheckInReminder(ctx context.Context, userID uint64, runAt time.Time) error {
	if a.failReminder != nil {
		return a.failReminder
	}
	a.reminders = append(a.reminders, runAt)
	return nil
}

func newTestService(store *fakeStore, alerts *fakeAlerts) *checkin.Service {
	svc := checkin.NewService(store, alerts, logger.NewNop())
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }
	return svc
}

func TestSubmitRejectsIncomplete(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeAlerts{})

	r := uniformResponses(3)
	delete(r, checkin.QuestionSleep)

	_, err := svc.Submit(context.Background(), 1, r, "")
	var verr *checkin.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(store.entries) != 0 {
		t.Fatal("incomplete submission must not be persisted")
	}
}

func TestSubmitFirstEntryNoTrend(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeAlerts{})

	entry, err := svc.Submit(context.Background(), 1, uniformResponses(4), "feeling fine")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(entry.Flags) != 0 {
		t.Fatalf("all-4 responses should carry no flags, got %v", entry.Flags)
	}
	if entry.Notes == nil || *entry.Notes != "feeling fine" {
		t.Fatalf("notes not kept: %v", entry.Notes)
	}
	if store.flagUpdates != 0 {
		t.Fatal("one entry is below the trend sample; no flags write expected")
	}
}

func TestSubmitThirdEntryWritesTrend(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeAlerts{})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(ctx, 1, uniformResponses(2), ""); err != nil {
			t.Fatalf("seed submit %d: %v", i, err)
		}
	}
	entry, err := svc.Submit(ctx, 1, uniformResponses(2), "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !entry.HasFlag(checkin.FlagDeclining) {
		t.Fatalf("three all-low entries must mark the newest declining, got %v", entry.Flags)
	}
	// Single-entry flags survive the trend union.
	if !entry.HasFlag(checkin.FlagNeedsAttention) {
		t.Fatalf("submission-time flags must be preserved, got %v", entry.Flags)
	}
	if store.flagUpdates != 1 {
		t.Fatalf("expected exactly one flags write, got %d", store.flagUpdates)
	}
	// Only the newest entry carries the trend flag.
	for _, older := range store.entries[1:] {
		if older.HasFlag(checkin.FlagDeclining) {
			t.Fatalf("older entry %s gained a trend flag", older.ID)
		}
	}
}

func TestSubmitCrisisEnqueuesAlert(t *testing.T) {
	store := &fakeStore{}
	alerts := &fakeAlerts{}
	svc := newTestService(store, alerts)

	entry, err := svc.Submit(context.Background(), 1, uniformResponses(1), "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(alerts.calls) != 1 || alerts.calls[0] != entry.ID {
		t.Fatalf("expected one crisis alert for %s, got %v", entry.ID, alerts.calls)
	}
}

func TestSubmitNoAlertWithoutCrisis(t *testing.T) {
	alerts := &fakeAlerts{}
	svc := newTestService(&fakeStore{}, alerts)

	if _, err := svc.Submit(context.Background(), 1, uniformResponses(3), ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(alerts.calls) != 0 {
		t.Fatalf("no crisis, no alert expected: %v", alerts.calls)
	}
}

func TestSubmitSchedulesNextDayReminder(t *testing.T) {
	alerts := &fakeAlerts{}
	svc := newTestService(&fakeStore{}, alerts)

	entry, err := svc.Submit(context.Background(), 1, uniformResponses(3), "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(alerts.reminders) != 1 {
		t.Fatalf("expected one reminder, got %d", len(alerts.reminders))
	}
	want := entry.Timestamp.Add(24 * time.Hour)
	if !alerts.reminders[0].Equal(want) {
		t.Fatalf("reminder at %v, want %v", alerts.reminders[0], want)
	}
}

func TestSubmitReminderFailureDoesNotFailSubmission(t *testing.T) {
	store := &fakeStore{}
	alerts := &fakeAlerts{failReminder: errors.New("queue down")}
	svc := newTestService(store, alerts)

	if _, err := svc.Submit(context.Background(), 1, uniformResponses(3), ""); err != nil {
		t.Fatalf("reminder failure must not surface: %v", err)
	}
	if len(store.entries) != 1 {
		t.Fatal("entry must still be persisted")
	}
}

func TestSubmitAlertFailureDoesNotFailSubmission(t *testing.T) {
	store := &fakeStore{}
	alerts := &fakeAlerts{fail: errors.New("queue down")}
	svc := newTestService(store, alerts)

	if _, err := svc.Submit(context.Background(), 1, uniformResponses(1), ""); err != nil {
		t.Fatalf("alert failure must not surface: %v", err)
	}
	if len(store.entries) != 1 {
		t.Fatal("entry must still be persisted")
	}
}

func TestSubmitSurfacesTrendFetchError(t *testing.T) {
	store := &fakeStore{failRecent: errors.New("store down")}
	svc := newTestService(store, &fakeAlerts{})

	entry, err := svc.Submit(context.Background(), 1, uniformResponses(3), "")
	if err == nil {
		t.Fatal("expected read error to surface")
	}
	if entry == nil {
		t.Fatal("persisted entry must be returned despite the trend failure")
	}
}

func TestSubmitSurfacesFlagsWriteError(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeAlerts{})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(ctx, 1, uniformResponses(4), ""); err != nil {
			t.Fatalf("seed submit %d: %v", i, err)
		}
	}

	store.failUpdateFlags = errors.New("write refused")
	entry, err := svc.Submit(ctx, 1, uniformResponses(4), "")
	if err == nil {
		t.Fatal("expected write error to surface")
	}
	// The entry keeps its submission-time flags.
	if entry == nil || len(entry.FlagSet()) != 0 {
		t.Fatalf("entry should be returned with submission-time flags only: %+v", entry)
	}
}

func TestSubmitIsolatesUsers(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeAlerts{})
	ctx := context.Background()

	// Two low entries for user 1, then a third for user 2: user 2 has
	// only one entry, so no trend must fire for them.
	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(ctx, 1, uniformResponses(2), ""); err != nil {
			t.Fatalf("seed submit %d: %v", i, err)
		}
	}
	entry, err := svc.Submit(ctx, 2, uniformResponses(2), "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if entry.HasFlag(checkin.FlagDeclining) {
		t.Fatalf("cross-user trend leak: %v", entry.Flags)
	}
}

func TestAnalyzeTrendIdempotent(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeAlerts{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(ctx, 1, uniformResponses(4), ""); err != nil {
			t.Fatalf("seed submit %d: %v", i, err)
		}
	}
	writes := store.flagUpdates

	recent, err := store.RecentByUser(ctx, 1, checkin.TrendWindow)
	if err != nil {
		t.Fatal(err)
	}
	newest, err := svc.AnalyzeTrend(ctx, recent)
	if err != nil {
		t.Fatalf("AnalyzeTrend: %v", err)
	}
	if !newest.HasFlag(checkin.FlagImprovement) {
		t.Fatalf("expected improvement, got %v", newest.Flags)
	}
	if store.flagUpdates != writes {
		t.Fatal("re-running with the flag already set must not write again")
	}
}
