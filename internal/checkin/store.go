package checkin

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence surface the service needs. GormStore is the
// real implementation; tests inject fakes.
type Store interface {
	// Create persists a new check-in. Idempotent on ID.
	Create(ctx context.Context, c *CheckIn) error
	// RecentByUser returns up to limit check-ins, newest first.
	RecentByUser(ctx context.Context, userID uint64, limit int) ([]*CheckIn, error)
	// UpdateFlags rewrites only the flags column of one check-in.
	UpdateFlags(ctx context.Context, id string, flags []Flag) error
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Create(ctx context.Context, c *CheckIn) error {
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(c).Error
}

func (s *GormStore) RecentByUser(ctx context.Context, userID uint64, limit int) ([]*CheckIn, error) {
	var rows []*CheckIn
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) UpdateFlags(ctx context.Context, id string, flags []Flag) error {
	return s.DB.WithContext(ctx).
		Model(&CheckIn{}).
		Where("id = ?", id).
		Update("flags", pq.StringArray(flagStrings(flags))).Error
}
