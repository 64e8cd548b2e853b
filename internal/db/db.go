package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"noah/internal/auth"
	"noah/internal/checkin"
	"noah/internal/community"
	"noah/internal/crisis"
	"noah/internal/goal"
	"noah/internal/jobs"
	"noah/internal/journal"
	"noah/internal/meditation"
	"noah/internal/mood"
	"noah/internal/therapy"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&auth.User{},
		&checkin.CheckIn{},
		&mood.Entry{},
		&journal.Entry{},
		&crisis.SafetyPlan{},
		&crisis.EmergencyContact{},
		&crisis.Resource{},
		&crisis.Helpline{},
		&community.Group{},
		&community.Post{},
		&community.Comment{},
		&community.Report{},
		&meditation.Session{},
		&meditation.Completion{},
		&therapy.Exercise{},
		&therapy.Completion{},
		&therapy.ThoughtRecord{},
		&goal.Goal{},
		&jobs.Job{},
	); err != nil {
		return err
	}

	stmts := []string{
		// Newest-first windows per user drive the trend analyzer and all
		// analytics fetches.
		`create index if not exists idx_check_ins_user_ts on check_ins(user_id, timestamp desc);`,
		`create index if not exists idx_mood_entries_user_ts on mood_entries(user_id, timestamp desc);`,
		`create index if not exists idx_journal_entries_user_ts on journal_entries(user_id, timestamp desc);`,
		`create index if not exists idx_thought_records_user_date on thought_records(user_id, date desc);`,

		// Tag filters (GIN for text[])
		`create index if not exists idx_journal_tags on journal_entries using gin (tags);`,
		`create index if not exists idx_mood_tags on mood_entries using gin (tags);`,

		// Community feeds and moderation queue
		`create index if not exists idx_posts_group_created on community_posts(group_id, created_at desc);`,
		`create index if not exists idx_comments_post_created on comments(post_id, created_at);`,
		`create index if not exists idx_reports_status_created on reports(status, created_at);`,

		// Job queue
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}

// Seed loads the static catalogs (helplines, meditation sessions,
// therapy exercises). Idempotent; runs at every boot.
func Seed(gdb *gorm.DB) error {
	if err := crisis.SeedHelplines(gdb); err != nil {
		return fmt.Errorf("seed helplines: %w", err)
	}
	if err := meditation.Seed(gdb); err != nil {
		return fmt.Errorf("seed meditations: %w", err)
	}
	if err := therapy.Seed(gdb); err != nil {
		return fmt.Errorf("seed therapy exercises: %w", err)
	}
	return nil
}
