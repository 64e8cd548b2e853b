package meditation

import "time"

// Session is a guided meditation in the catalog. Seeded, read-only.
type Session struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"uniqueIndex;not null"`
	Category        string    `gorm:"index;not null"`
	Description     string    `gorm:"type:text;not null;default:''"`
	DurationMinutes int       `gorm:"not null"`
	AudioURL        string    `gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time `gorm:"not null;default:now()"`
}

func (Session) TableName() string { return "meditation_sessions" }

// Completion records one finished listen.
type Completion struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	UserID      uint64    `gorm:"index;not null"`
	SessionID   string    `gorm:"type:uuid;index;not null"`
	CompletedAt time.Time `gorm:"not null"`
}

func (Completion) TableName() string { return "meditation_completions" }

// Stats summarizes a user's practice.
type Stats struct {
	SessionsCompleted int `json:"sessions_completed"`
	TotalMinutes      int `json:"total_minutes"`
}
