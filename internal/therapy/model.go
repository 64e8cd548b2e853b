package therapy

import (
	"time"

	"github.com/lib/pq"
)

// ExerciseType groups the tool catalog by therapeutic approach.
type ExerciseType string

const (
	TypeCBT          ExerciseType = "cbt"
	TypeMindfulness  ExerciseType = "mindfulness"
	TypeCoping       ExerciseType = "coping_strategies"
	TypeStressRelief ExerciseType = "stress_relief"
)

func (t ExerciseType) Valid() bool {
	switch t {
	case TypeCBT, TypeMindfulness, TypeCoping, TypeStressRelief:
		return true
	}
	return false
}

// Exercise is a guided therapeutic exercise in the catalog. Seeded,
// read-only.
type Exercise struct {
	ID                   string         `gorm:"type:uuid;primaryKey"`
	Type                 string         `gorm:"index;not null"`
	Title                string         `gorm:"uniqueIndex;not null"`
	Description          string         `gorm:"type:text;not null;default:''"`
	DurationMinutes      int            `gorm:"not null"`
	Difficulty           string         `gorm:"not null;default:'Beginner'"`
	Category             string         `gorm:"not null;default:''"`
	RecommendedFrequency string         `gorm:"not null;default:'Daily'"`
	Steps                pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Tips                 pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt            time.Time      `gorm:"not null;default:now()"`
}

func (Exercise) TableName() string { return "therapy_exercises" }

// Completion records one finished exercise, optionally with how well it
// worked (1..5).
type Completion struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	UserID        uint64    `gorm:"index;not null"`
	ExerciseID    string    `gorm:"type:uuid;index;not null"`
	Effectiveness *int
	CompletedAt   time.Time `gorm:"not null"`
}

func (Completion) TableName() string { return "therapy_completions" }

// ThoughtRecord is a CBT worksheet: the situation, the automatic thoughts
// it triggered, the emotions rated before and after challenging the
// thought with evidence.
type ThoughtRecord struct {
	ID                    string         `gorm:"type:uuid;primaryKey"`
	UserID                uint64         `gorm:"index;not null"`
	Date                  time.Time      `gorm:"not null"`
	Situation             string         `gorm:"type:text;not null"`
	AutomaticThoughts     string         `gorm:"type:text;not null"`
	Emotions              pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	EmotionIntensities    pq.Int64Array  `gorm:"type:bigint[];not null;default:'{}'"` // 1..10
	EvidenceFor           string         `gorm:"type:text;not null;default:''"`
	EvidenceAgainst       string         `gorm:"type:text;not null;default:''"`
	BalancedThought       string         `gorm:"type:text;not null;default:''"`
	NewEmotionIntensities pq.Int64Array  `gorm:"type:bigint[];not null;default:'{}'"`
	CreatedAt             time.Time      `gorm:"not null;default:now()"`
}

func (ThoughtRecord) TableName() string { return "thought_records" }

// EmotionalChange is how far the average intensity dropped after the
// reframe; positive means relief. Zero when either rating set is empty.
func (r *ThoughtRecord) EmotionalChange() int {
	if len(r.EmotionIntensities) == 0 || len(r.NewEmotionIntensities) == 0 {
		return 0
	}
	var oldSum, newSum int64
	for _, v := range r.EmotionIntensities {
		oldSum += v
	}
	for _, v := range r.NewEmotionIntensities {
		newSum += v
	}
	oldAvg := oldSum / int64(len(r.EmotionIntensities))
	newAvg := newSum / int64(len(r.NewEmotionIntensities))
	return int(oldAvg - newAvg)
}
