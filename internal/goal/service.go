package goal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}

type CreateInput struct {
	Title       string
	Description string
	Category    Category
	Frequency   Frequency
	Target      int
	EndDate     *time.Time
}

func (s *Service) Create(ctx context.Context, userID uint64, in CreateInput) (*Goal, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.Target < 1 {
		return nil, ErrInvalidInput
	}
	if !in.Category.Valid() {
		in.Category = CategoryCustom
	}
	if !in.Frequency.Valid() {
		in.Frequency = FrequencyDaily
	}

	g := &Goal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Category:    string(in.Category),
		Frequency:   string(in.Frequency),
		Target:      in.Target,
		StartDate:   s.Now(),
		EndDate:     in.EndDate,
	}
	if err := s.DB.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) ListForUser(ctx context.Context, userID uint64) ([]*Goal, error) {
	var rows []*Goal
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_completed asc, created_at desc").
		Find(&rows).Error
	return rows, err
}

// AddProgress counts delta toward the target and marks the goal completed
// once the target is reached. Progress never goes below zero.
func (s *Service) AddProgress(ctx context.Context, userID uint64, goalID string, delta int) (*Goal, error) {
	if delta == 0 {
		return nil, ErrInvalidInput
	}

	var g Goal
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", goalID, userID).First(&g).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		g.Progress += delta
		if g.Progress < 0 {
			g.Progress = 0
		}
		g.IsCompleted = g.Progress >= g.Target
		g.UpdatedAt = s.Now()

		return tx.Model(&Goal{}).
			Where("id = ?", g.ID).
			Updates(map[string]any{
				"progress":     g.Progress,
				"is_completed": g.IsCompleted,
				"updated_at":   g.UpdatedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}
