package mood

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidEntry = errors.New("invalid mood entry")

// DefaultAnalyticsDays is the window the client asks for by default.
const DefaultAnalyticsDays = 30

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}

type CreateInput struct {
	Mood       Mood
	Intensity  int
	Activities []Activity
	Notes      string
	Tags       []string
}

func (s *Service) Create(ctx context.Context, userID uint64, in CreateInput) (*Entry, error) {
	if !in.Mood.Valid() {
		return nil, ErrInvalidEntry
	}
	if in.Intensity < 1 || in.Intensity > 5 {
		return nil, ErrInvalidEntry
	}

	activities := make([]string, 0, len(in.Activities))
	for _, a := range in.Activities {
		if !a.Valid() {
			return nil, ErrInvalidEntry
		}
		activities = append(activities, string(a))
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
		Mood:       string(in.Mood),
		Intensity:  in.Intensity,
		Activities: activities,
		Tags:       tags,
	}
	if in.Notes != "" {
		e.Notes = &in.Notes
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

// AnalyticsForUser fetches the date-bounded range and aggregates it.
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
