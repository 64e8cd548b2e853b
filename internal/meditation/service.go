package meditation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("not found")

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}

func (s *Service) List(ctx context.Context, category string) ([]*Session, error) {
	q := s.DB.WithContext(ctx).Model(&Session{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var rows []*Session
	err := q.Order("category asc, duration_minutes asc").Find(&rows).Error
	return rows, err
}

func (s *Service) Complete(ctx context.Context, userID uint64, sessionID string) (*Completion, error) {
	var sess Session
	if err := s.DB.WithContext(ctx).Where("id = ?", sessionID).First(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c := &Completion{
		ID:          uuid.NewString(),
		UserID:      userID,
		SessionID:   sessionID,
		CompletedAt: s.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) StatsForUser(ctx context.Context, userID uint64) (*Stats, error) {
	var st Stats
	err := s.DB.WithContext(ctx).Raw(`
		select count(*) as sessions_completed,
		       coalesce(sum(ms.duration_minutes), 0) as total_minutes
		from meditation_completions mc
		join meditation_sessions ms on ms.id = mc.session_id
		where mc.user_id = ?
	`, userID).Scan(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Seed inserts the built-in catalog. Conflicts on title are skipped so
// re-running at boot is safe.
func Seed(db *gorm.DB) error {
	for _, m := range []Session{
		{ID: uuid.NewString(), Title: "Morning Grounding", Category: "mindfulness", Description: "Start the day with a short grounding practice.", DurationMinutes: 5, AudioURL: "/audio/morning-grounding.mp3"},
		{ID: uuid.NewString(), Title: "Box Breathing", Category: "breathing", Description: "Four-count breathing to settle the nervous system.", DurationMinutes: 4, AudioURL: "/audio/box-breathing.mp3"},
		{ID: uuid.NewString(), Title: "Body Scan for Sleep", Category: "sleep", Description: "Progressive relaxation from head to toe.", DurationMinutes: 15, AudioURL: "/audio/body-scan-sleep.mp3"},
		{ID: uuid.NewString(), Title: "Anxiety Reset", Category: "anxiety", Description: "A guided reset for anxious moments.", DurationMinutes: 10, AudioURL: "/audio/anxiety-reset.mp3"},
		{ID: uuid.NewString(), Title: "Loving Kindness", Category: "compassion", Description: "Cultivate warmth toward yourself and others.", DurationMinutes: 12, AudioURL: "/audio/loving-kindness.mp3"},
	} {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "title"}},
			DoNothing: true,
		}).Create(&m).Error
		if err != nil {
			return err
		}
	}
	return nil
}
