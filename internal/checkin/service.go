package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"noah/internal/logger"
)

// AlertQueue receives the jobs raised by the submit pipeline: crisis
// notifications and the next-day check-in nudge. Implemented by jobs.Repo.
type AlertQueue interface {
	EnqueueCrisisAlert(ctx context.Context, userID uint64, checkInID string) error
	EnqueueCheckInReminder(ctx context.Context, userID uint64, runAt time.Time) error
}

// reminderInterval is how long after a submission the next nudge fires.
const reminderInterval = 24 * time.Hour

// Service runs the submit -> flag -> persist -> trend pipeline. Callers
// must serialize submissions per user; the service does no locking of its
// own, and concurrent same-user submissions race on the flags write.
type Service struct {
	Store  Store
	Alerts AlertQueue
	Log    *logger.Logger

	// Now is injectable for deterministic tests.
	Now func() time.Time
}

func NewService(store Store, alerts AlertQueue, log *logger.Logger) *Service {
	return &Service{Store: store, Alerts: alerts, Log: log, Now: time.Now}
}

// Submit validates and persists a new check-in, then re-evaluates the
// user's trend over the recent window and writes trend flags back onto the
// newest entry.
//
// A nil error means the full pipeline ran. If the trend step fails after
// the entry was persisted, the entry is returned alongside the error: it
// already carries correct submission-time flags, which is a degraded but
// consistent state.
func (s *Service) Submit(ctx context.Context, userID uint64, responses Responses, notes string) (*CheckIn, error) {
	if err := ValidateResponses(responses); err != nil {
		return nil, err
	}

	// Copy so later caller mutation cannot leak into the stored record.
	snapshot := make(Responses, len(responses))
	for q, v := range responses {
		snapshot[q] = v
	}

	flags := EvaluateResponses(snapshot)

	entry := &CheckIn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Timestamp: s.Now(),
		Responses: datatypes.NewJSONType(snapshot),
		Flags:     flagStrings(flags),
	}
	if notes != "" {
		entry.Notes = &notes
	}

	if err := s.Store.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("persist check-in: %w", err)
	}

	if s.Alerts != nil {
		if entry.HasFlag(FlagCrisis) {
			if err := s.Alerts.EnqueueCrisisAlert(ctx, userID, entry.ID); err != nil {
				// The check-in itself is saved; losing the alert job must not
				// fail the submission.
				s.Log.Warn("crisis alert enqueue failed", "user_id", userID, "check_in_id", entry.ID, "err", err)
			}
		}
		if err := s.Alerts.EnqueueCheckInReminder(ctx, userID, entry.Timestamp.Add(reminderInterval)); err != nil {
			s.Log.Warn("reminder enqueue failed", "user_id", userID, "err", err)
		}
	}

	recent, err := s.Store.RecentByUser(ctx, userID, TrendWindow)
	if err != nil {
		return entry, fmt.Errorf("fetch recent check-ins: %w", err)
	}

	updated, err := s.AnalyzeTrend(ctx, recent)
	if err != nil {
		return entry, err
	}
	if updated != nil && updated.ID == entry.ID {
		entry = updated
	}
	return entry, nil
}

// AnalyzeTrend classifies the trend over the supplied newest-first window
// and unions the resulting flag into the newest entry only, writing the
// change back through the store. Fewer than MinTrendSample entries is a
// no-op and returns nil without error.
func (s *Service) AnalyzeTrend(ctx context.Context, recent []*CheckIn) (*CheckIn, error) {
	trend, ok := ClassifyTrend(recent)
	if !ok {
		return nil, nil
	}

	newest := recent[0]
	merged := appendFlag(newest.FlagSet(), trend)
	if len(merged) == len(newest.Flags) {
		// Flag already present, nothing to write.
		return newest, nil
	}

	if err := s.Store.UpdateFlags(ctx, newest.ID, merged); err != nil {
		// Leave the in-memory entry untouched; it still reflects what the
		// store holds.
		return nil, fmt.Errorf("update trend flags: %w", err)
	}
	newest.Flags = flagStrings(merged)
	s.Log.Debug("trend classified", "user_id", newest.UserID, "check_in_id", newest.ID, "trend", string(trend))
	return newest, nil
}

// Recent returns the newest-first window of check-ins for a user.
func (s *Service) Recent(ctx context.Context, userID uint64, limit int) ([]*CheckIn, error) {
	if limit <= 0 || limit > 90 {
		limit = 30
	}
	return s.Store.RecentByUser(ctx, userID, limit)
}
