package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmptyContent = errors.New("journal content cannot be empty")
var ErrInvalidMoodRating = errors.New("mood ratings must be between 1 and 5")

const DefaultAnalyticsDays = 30

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}

type CreateInput struct {
	Content    string
	Prompt     *string
	Tags       []string
	MoodBefore *int
	MoodAfter  *int
}

func (s *Service) Create(ctx context.Context, userID uint64, in CreateInput) (*Entry, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return nil, ErrEmptyContent
	}
	for _, rating := range []*int{in.MoodBefore, in.MoodAfter} {
		if rating != nil && (*rating < 1 || *rating > 5) {
			return nil, ErrInvalidMoodRating
		}
	}

	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}

	e := &Entry{
		ID:         uuid.NewString(),
		UserID:     userID,
		Timestamp:  s.Now(),
		Content:    in.Content,
		Prompt:     in.Prompt,
		Tags:       tags,
		MoodBefore: in.MoodBefore,
		MoodAfter:  in.MoodAfter,
	}

	if err := s.DB.WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Recent(ctx context.Context, userID uint64, limit int) ([]*Entry, error) {
	if limit <= 0 || limit > 90 {
		limit = 30
	}
	var rows []*Entry
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *Service) AnalyticsForUser(ctx context.Context, userID uint64, days int) (*Analytics, error) {
	if days <= 0 {
		days = DefaultAnalyticsDays
	}
	end := s.Now()
	start := end.AddDate(0, 0, -days)

	var rows []*Entry
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND timestamp > ?", userID, start).
		Order("timestamp asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return Analyze(rows, start, end), nil
}
