package community

import (
	"time"

	"github.com/lib/pq"
)

type GroupPrivacy string

const (
	PrivacyPublic    GroupPrivacy = "public"
	PrivacyPrivate   GroupPrivacy = "private"
	PrivacyAnonymous GroupPrivacy = "anonymous"
)

type PostType string

const (
	PostDiscussion PostType = "discussion"
	PostSuccess    PostType = "success_story"
	PostQuestion   PostType = "question"
	PostResource   PostType = "resource"
	PostSupport    PostType = "support"
)

func (t PostType) Valid() bool {
	switch t {
	case PostDiscussion, PostSuccess, PostQuestion, PostResource, PostSupport:
		return true
	}
	return false
}

type Group struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text;not null;default:''"`
	Category    string         `gorm:"index;not null;default:''"`
	Privacy     string         `gorm:"type:text;not null;default:'public'"`
	Rules       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Tags        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedBy   uint64         `gorm:"index;not null"`
	MemberCount int            `gorm:"not null;default:0"`
	IsModerated bool           `gorm:"not null;default:false"`
	CreatedAt   time.Time      `gorm:"not null;default:now()"`
}

func (Group) TableName() string { return "support_groups" }

type Post struct {
	ID           string         `gorm:"type:uuid;primaryKey"`
	GroupID      string         `gorm:"type:uuid;index;not null"`
	AuthorID     uint64         `gorm:"index;not null"`
	Type         string         `gorm:"type:text;not null;default:'discussion'"`
	Title        string         `gorm:"type:text;not null"`
	Content      string         `gorm:"type:text;not null"`
	Tags         pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	IsAnonymous  bool           `gorm:"not null;default:false"`
	LikeCount    int            `gorm:"not null;default:0"`
	CommentCount int            `gorm:"not null;default:0"`
	IsReported   bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"index;not null;default:now()"`
	EditedAt     *time.Time
}

func (Post) TableName() string { return "community_posts" }

type Comment struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	PostID          string    `gorm:"type:uuid;index;not null"`
	AuthorID        uint64    `gorm:"index;not null"`
	ParentCommentID *string   `gorm:"type:uuid"`
	Content         string    `gorm:"type:text;not null"`
	IsAnonymous     bool      `gorm:"not null;default:false"`
	LikeCount       int       `gorm:"not null;default:0"`
	IsReported      bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null;default:now()"`
	EditedAt        *time.Time
}

// ReportStatus drives the admin moderation queue.
type ReportStatus string

const (
	ReportOpen      ReportStatus = "open"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

// TargetKind says what a report points at.
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

type Report struct {
	ID         string     `gorm:"type:uuid;primaryKey"`
	ReporterID uint64     `gorm:"index;not null"`
	TargetKind TargetKind `gorm:"type:text;not null"`
	TargetID   string     `gorm:"type:uuid;index;not null"`
	Reason     string     `gorm:"type:text;not null"`
	Status     string     `gorm:"index;not null;default:'open'"`
	ResolvedBy *uint64
	CreatedAt  time.Time `gorm:"not null;default:now()"`
	UpdatedAt  time.Time `gorm:"not null;default:now()"`
}
