package community

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
	DB      *gorm.DB
	Reports ModerationStore
	Now     func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Reports: &GormModerationStore{DB: db}, Now: time.Now}
}

// --- Groups ---

type CreateGroupInput struct {
	Name        string
	Description string
	Category    string
	Privacy     GroupPrivacy
	Rules       []string
	Tags        []string
}

func (s *Service) CreateGroup(ctx context.Context, userID uint64, in CreateGroupInput) (*Group, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrInvalidInput
	}
	if in.Privacy != PrivacyPublic && in.Privacy != PrivacyPrivate && in.Privacy != PrivacyAnonymous {
		in.Privacy = PrivacyPublic
	}

	g := &Group{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Privacy:     string(in.Privacy),
		Rules:       in.Rules,
		Tags:        in.Tags,
		CreatedBy:   userID,
		MemberCount: 1,
	}
	if err := s.DB.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) ListGroups(ctx context.Context, category string) ([]*Group, error) {
	q := s.DB.WithContext(ctx).Model(&Group{}).Where("privacy <> ?", string(PrivacyPrivate))
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var rows []*Group
	err := q.Order("member_count desc, created_at desc").Limit(50).Find(&rows).Error
	return rows, err
}

// --- Posts ---

type CreatePostInput struct {
	Type        PostType
	Title       string
	Content     string
	Tags        []string
	IsAnonymous bool
}

func (s *Service) CreatePost(ctx context.Context, userID uint64, groupID string, in CreatePostInput) (*Post, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" || in.Content == "" || !in.Type.Valid() {
		return nil, ErrInvalidInput
	}

	var post *Post
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g Group
		if err := tx.Where("id = ?", groupID).First(&g).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		post = &Post{
			ID:          uuid.NewString(),
			GroupID:     groupID,
			AuthorID:    userID,
			Type:        string(in.Type),
			Title:       in.Title,
			Content:     in.Content,
			Tags:        in.Tags,
			IsAnonymous: in.IsAnonymous,
		}
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) ListPosts(ctx context.Context, groupID string, limit int) ([]*Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var rows []*Post
	err := s.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at desc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *Service) LikePost(ctx context.Context, postID string) error {
	res := s.DB.WithContext(ctx).
		Model(&Post{}).
		Where("id = ?", postID).
		Update("like_count", gorm.Expr("like_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Comments ---

type CreateCommentInput struct {
	Content         string
	ParentCommentID *string
	IsAnonymous     bool
}

func (s *Service) CreateComment(ctx context.Context, userID uint64, postID string, in CreateCommentInput) (*Comment, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return nil, ErrInvalidInput
	}

	var comment *Comment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Post
		if err := tx.Where("id = ?", postID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		comment = &Comment{
			ID:              uuid.NewString(),
			PostID:          postID,
			AuthorID:        userID,
			ParentCommentID: in.ParentCommentID,
			Content:         in.Content,
			IsAnonymous:     in.IsAnonymous,
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		return tx.Model(&Post{}).
			Where("id = ?", postID).
			Update("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) ListComments(ctx context.Context, postID string) ([]*Comment, error) {
	var rows []*Comment
	err := s.DB.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&rows).Error
	return rows, err
}

// --- Reports / moderation ---

func (s *Service) Report(ctx context.Context, reporterID uint64, kind TargetKind, targetID, reason string) (*Report, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" || (kind != TargetPost && kind != TargetComment) {
		return nil, ErrInvalidInput
	}

	var report *Report
	err := s.Reports.Tx(ctx, func(st ModerationStore) error {
		// Mark the target reported; also proves it exists.
		if err := st.SetTargetReported(ctx, kind, targetID, true); err != nil {
			return err
		}

		report = &Report{
			ID:         uuid.NewString(),
			ReporterID: reporterID,
			TargetKind: kind,
			TargetID:   targetID,
			Reason:     reason,
			Status:     string(ReportOpen),
		}
		return st.CreateReport(ctx, report)
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Service) OpenReports(ctx context.Context, limit int) ([]*Report, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.Reports.OpenReports(ctx, limit)
}

// ResolveReport closes a report as resolved or dismissed; dismissing also
// clears the reported mark on the target.
func (s *Service) ResolveReport(ctx context.Context, adminID uint64, reportID string, status ReportStatus) error {
	if status != ReportResolved && status != ReportDismissed {
		return ErrInvalidInput
	}

	return s.Reports.Tx(ctx, func(st ModerationStore) error {
		r, err := st.GetReport(ctx, reportID)
		if err != nil {
			return err
		}

		if err := st.UpdateReportStatus(ctx, reportID, status, adminID, s.Now()); err != nil {
			return err
		}

		if status == ReportDismissed {
			// A dismissal means the target is fine; lift the mark.
			return st.SetTargetReported(ctx, r.TargetKind, r.TargetID, false)
		}
		return nil
	})
}
