package therapy

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidInput = errors.New("invalid input")

const (
	minIntensity = 1
	maxIntensity = 10
)

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}

func (s *Service) ListExercises(ctx context.Context, typ string) ([]*Exercise, error) {
	q := s.DB.WithContext(ctx).Model(&Exercise{})
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	var rows []*Exercise
	err := q.Order("type asc, difficulty asc, title asc").Find(&rows).Error
	return rows, err
}

func (s *Service) CompleteExercise(ctx context.Context, userID uint64, exerciseID string, effectiveness *int) (*Completion, error) {
	if effectiveness != nil && (*effectiveness < 1 || *effectiveness > 5) {
		return nil, ErrInvalidInput
	}

	var ex Exercise
	if err := s.DB.WithContext(ctx).Where("id = ?", exerciseID).First(&ex).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c := &Completion{
		ID:            uuid.NewString(),
		UserID:        userID,
		ExerciseID:    exerciseID,
		Effectiveness: effectiveness,
		CompletedAt:   s.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ThoughtRecordInput carries a CBT worksheet submission.
type ThoughtRecordInput struct {
	Situation             string
	AutomaticThoughts     string
	Emotions              []string
	EmotionIntensities    []int64
	EvidenceFor           string
	EvidenceAgainst       string
	BalancedThought       string
	NewEmotionIntensities []int64
}

// validateThoughtRecord rejects worksheets with no situation or thoughts,
// emotion lists out of step with their ratings, or ratings outside 1..10.
func validateThoughtRecord(in ThoughtRecordInput) error {
	if strings.TrimSpace(in.Situation) == "" || strings.TrimSpace(in.AutomaticThoughts) == "" {
		return ErrInvalidInput
	}
	if len(in.Emotions) == 0 ||
		len(in.EmotionIntensities) != len(in.Emotions) ||
		len(in.NewEmotionIntensities) != len(in.Emotions) {
		return ErrInvalidInput
	}
	for _, set := range [][]int64{in.EmotionIntensities, in.NewEmotionIntensities} {
		for _, v := range set {
			if v < minIntensity || v > maxIntensity {
				return ErrInvalidInput
			}
		}
	}
	return nil
}

func (s *Service) CreateThoughtRecord(ctx context.Context, userID uint64, in ThoughtRecordInput) (*ThoughtRecord, error) {
	if err := validateThoughtRecord(in); err != nil {
		return nil, err
	}

	r := &ThoughtRecord{
		ID:                    uuid.NewString(),
		UserID:                userID,
		Date:                  s.Now(),
		Situation:             strings.TrimSpace(in.Situation),
		AutomaticThoughts:     strings.TrimSpace(in.AutomaticThoughts),
		Emotions:              in.Emotions,
		EmotionIntensities:    in.EmotionIntensities,
		EvidenceFor:           strings.TrimSpace(in.EvidenceFor),
		EvidenceAgainst:       strings.TrimSpace(in.EvidenceAgainst),
		BalancedThought:       strings.TrimSpace(in.BalancedThought),
		NewEmotionIntensities: in.NewEmotionIntensities,
	}
	if err := s.DB.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListThoughtRecords(ctx context.Context, userID uint64, limit int) ([]*ThoughtRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	var rows []*ThoughtRecord
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Seed inserts the built-in exercise catalog. Conflicts on title are
// skipped so re-running at boot is safe.
func Seed(db *gorm.DB) error {
	for _, ex := range []Exercise{
		{
			ID: uuid.NewString(), Type: string(TypeCoping), Title: "Mindful Breathing",
			Description: "A simple but effective technique to center yourself.",
			DurationMinutes: 5, Difficulty: "Beginner", Category: "Stress Management", RecommendedFrequency: "Daily",
			Steps: []string{"Find a quiet space", "Breathe in for 4 counts", "Hold for 4 counts", "Exhale for 4 counts", "Repeat for 5 minutes"},
			Tips:  []string{"Keep your shoulders relaxed", "Count silently"},
		},
		{
			ID: uuid.NewString(), Type: string(TypeCoping), Title: "5-4-3-2-1 Grounding",
			Description: "Use your senses to ground yourself in the present moment.",
			DurationMinutes: 5, Difficulty: "Beginner", Category: "Anxiety Management", RecommendedFrequency: "As needed",
			Steps: []string{"Name 5 things you can see", "Name 4 things you can touch", "Name 3 things you can hear", "Name 2 things you can smell", "Name 1 thing you can taste"},
			Tips:  []string{"Go slowly through each sense", "Say the items out loud if you can"},
		},
		{
			ID: uuid.NewString(), Type: string(TypeCBT), Title: "Thought Challenging",
			Description: "Work through an automatic thought with a structured worksheet.",
			DurationMinutes: 15, Difficulty: "Intermediate", Category: "Cognitive Restructuring", RecommendedFrequency: "Weekly",
			Steps: []string{"Describe the situation", "Write down the automatic thought", "Rate the emotions it brings up", "List evidence for and against the thought", "Write a balanced alternative", "Re-rate the emotions"},
			Tips:  []string{"Be specific about the situation", "Treat the thought as a hypothesis, not a fact"},
		},
		{
			ID: uuid.NewString(), Type: string(TypeCBT), Title: "Behavioral Activation",
			Description: "Plan one small rewarding activity and follow through.",
			DurationMinutes: 10, Difficulty: "Beginner", Category: "Mood Improvement", RecommendedFrequency: "Daily",
			Steps: []string{"Pick one activity you used to enjoy", "Schedule a specific time today", "Do it even if motivation is low", "Note how you felt afterwards"},
			Tips:  []string{"Start smaller than feels necessary", "Action tends to come before motivation"},
		},
		{
			ID: uuid.NewString(), Type: string(TypeStressRelief), Title: "Progressive Muscle Relaxation",
			Description: "Tense and release muscle groups from feet to face.",
			DurationMinutes: 12, Difficulty: "Beginner", Category: "Stress Management", RecommendedFrequency: "Daily",
			Steps: []string{"Lie down or sit comfortably", "Tense your feet for 5 seconds, then release", "Move upward one muscle group at a time", "Finish with your face and jaw", "Notice the difference between tense and relaxed"},
			Tips:  []string{"Do not tense to the point of pain", "Pair each release with an exhale"},
		},
		{
			ID: uuid.NewString(), Type: string(TypeMindfulness), Title: "Mindful Observation",
			Description: "Give one ordinary object your full attention for a few minutes.",
			DurationMinutes: 5, Difficulty: "Beginner", Category: "Mindfulness", RecommendedFrequency: "Daily",
			Steps: []string{"Choose a nearby object", "Study its color, texture and weight", "When your mind wanders, return to the object", "End by noticing how your attention feels"},
			Tips:  []string{"Wandering is normal, returning is the practice"},
		},
	} {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "title"}},
			DoNothing: true,
		}).Create(&ex).Error
		if err != nil {
			return err
		}
	}
	return nil
}
