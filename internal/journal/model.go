package journal

import (
	"time"

	"github.com/lib/pq"
)

// Entry is one journal record. MoodBefore/MoodAfter are optional 1..5
// self-ratings taken around the writing session.
type Entry struct {
	ID         string         `gorm:"type:uuid;primaryKey"`
	UserID     uint64         `gorm:"index;not null"`
	Timestamp  time.Time      `gorm:"index;not null"`
	Content    string         `gorm:"type:text;not null"`
	Prompt     *string        `gorm:"type:text"`
	Tags       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	MoodBefore *int
	MoodAfter  *int
	CreatedAt  time.Time `gorm:"not null;default:now()"`
}

func (Entry) TableName() string { return "journal_entries" }

// MoodDelta returns after-before when both ratings are present.
func (e *Entry) MoodDelta() (int, bool) {
	if e.MoodBefore == nil || e.MoodAfter == nil {
		return 0, false
	}
	return *e.MoodAfter - *e.MoodBefore, true
}
