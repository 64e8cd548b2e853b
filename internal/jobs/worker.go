package jobs

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"gorm.io/gorm"

	"noah/internal/checkin"
	"noah/internal/logger"
)

type Worker struct {
	ID   string
	Repo *Repo
	DB   *gorm.DB
	Log  *logger.Logger
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(800 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				w.Log.Error("worker claim failed", "worker", w.ID, "err", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(job)
		}
	}
}

func (w *Worker) handle(job *Job) {
	switch job.Type {
	case TypeCrisisAlert:
		w.handleCrisisAlert(job)
	case TypeCheckInReminder:
		w.handleCheckInReminder(job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

// handleCrisisAlert surfaces a crisis-flagged check-in to the on-call
// channel. Outbound delivery (push, SMS) is handled by infrastructure
// outside this service; here the alert is structured-logged for the
// monitoring pipeline to pick up.
func (w *Worker) handleCrisisAlert(job *Job) {
	type payload struct {
		CheckInID string `json:"check_in_id"`
	}
	var p payload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		_ = w.Repo.MarkFailed(job.ID, "bad payload")
		return
	}

	var entry checkin.CheckIn
	if err := w.DB.
		Where("id = ? AND user_id = ?", p.CheckInID, job.UserID).
		First(&entry).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			// Check-in was deleted; nothing left to alert on.
			_ = w.Repo.MarkDone(job.ID)
			return
		}
		w.retry(job, "db read error")
		return
	}

	if !entry.HasFlag(checkin.FlagCrisis) {
		// Flags were recomputed since the job was enqueued.
		_ = w.Repo.MarkDone(job.ID)
		return
	}

	w.Log.Warn("CRISIS ALERT",
		"user_id", job.UserID,
		"check_in_id", entry.ID,
		"flags", []string(entry.Flags),
		"submitted_at", entry.Timestamp,
	)
	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) handleCheckInReminder(job *Job) {
	w.Log.Info("check-in reminder due", "user_id", job.UserID)
	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	next := time.Now().Add(backoff(attempts))
	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}

// backoff doubles per attempt, capped at ten minutes.
func backoff(attempts int) time.Duration {
	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	return time.Duration(sec) * time.Second
}
