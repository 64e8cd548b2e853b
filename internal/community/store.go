package community

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ModerationStore persists reports and the reported mark on their targets.
// Tx runs fn against a store bound to one transaction, so marking a target
// and filing its report commit together.
type ModerationStore interface {
	Tx(ctx context.Context, fn func(ModerationStore) error) error
	SetTargetReported(ctx context.Context, kind TargetKind, targetID string, reported bool) error
	CreateReport(ctx context.Context, r *Report) error
	GetReport(ctx context.Context, id string) (*Report, error)
	UpdateReportStatus(ctx context.Context, id string, status ReportStatus, adminID uint64, at time.Time) error
	OpenReports(ctx context.Context, limit int) ([]*Report, error)
}

type GormModerationStore struct {
	DB *gorm.DB
}

func (s *GormModerationStore) Tx(ctx context.Context, fn func(ModerationStore) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormModerationStore{DB: tx})
	})
}

// SetTargetReported flips the reported mark; ErrNotFound when the target
// does not exist, which doubles as the existence check when filing.
func (s *GormModerationStore) SetTargetReported(ctx context.Context, kind TargetKind, targetID string, reported bool) error {
	var res *gorm.DB
	switch kind {
	case TargetPost:
		res = s.DB.WithContext(ctx).Model(&Post{}).Where("id = ?", targetID).Update("is_reported", reported)
	case TargetComment:
		res = s.DB.WithContext(ctx).Model(&Comment{}).Where("id = ?", targetID).Update("is_reported", reported)
	default:
		return ErrInvalidInput
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormModerationStore) CreateReport(ctx context.Context, r *Report) error {
	return s.DB.WithContext(ctx).Create(r).Error
}

func (s *GormModerationStore) GetReport(ctx context.Context, id string) (*Report, error) {
	var r Report
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *GormModerationStore) UpdateReportStatus(ctx context.Context, id string, status ReportStatus, adminID uint64, at time.Time) error {
	return s.DB.WithContext(ctx).Model(&Report{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      string(status),
			"resolved_by": adminID,
			"updated_at":  at,
		}).Error
}

func (s *GormModerationStore) OpenReports(ctx context.Context, limit int) ([]*Report, error) {
	var rows []*Report
	err := s.DB.WithContext(ctx).
		Where("status = ?", string(ReportOpen)).
		Order("created_at asc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
