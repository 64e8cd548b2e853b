package crisis

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

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}

// --- Safety plan ---

type SafetyPlanInput struct {
	WarningSignals       []string
	CopingStrategies     []string
	ReasonsToLive        []string
	SafeEnvironmentSteps []string
	PersonalNotes        *string
}

// SaveSafetyPlan upserts the user's single plan.
func (s *Service) SaveSafetyPlan(ctx context.Context, userID uint64, in SafetyPlanInput) (*SafetyPlan, error) {
	plan := &SafetyPlan{
		ID:                   uuid.NewString(),
		UserID:               userID,
		WarningSignals:       cleanList(in.WarningSignals),
		CopingStrategies:     cleanList(in.CopingStrategies),
		ReasonsToLive:        cleanList(in.ReasonsToLive),
		SafeEnvironmentSteps: cleanList(in.SafeEnvironmentSteps),
		PersonalNotes:        in.PersonalNotes,
		UpdatedAt:            s.Now(),
	}

	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"warning_signals", "coping_strategies", "reasons_to_live",
				"safe_environment_steps", "personal_notes", "updated_at",
			}),
		}).
		Create(plan).Error
	if err != nil {
		return nil, err
	}
	return s.SafetyPlanForUser(ctx, userID)
}

func (s *Service) SafetyPlanForUser(ctx context.Context, userID uint64) (*SafetyPlan, error) {
	var plan SafetyPlan
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// --- Emergency contacts ---

type ContactInput struct {
	Kind                 ContactKind
	Name                 string
	Relationship         string
	PhoneNumber          string
	AlternatePhoneNumber *string
	Email                *string
	Address              *string
	Notes                *string
	IsAvailable24Hours   bool
}

func (s *Service) AddContact(ctx context.Context, userID uint64, in ContactInput) (*EmergencyContact, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	if in.Name == "" || in.PhoneNumber == "" {
		return nil, ErrInvalidInput
	}
	if in.Kind != ContactSupport && in.Kind != ContactProfessional {
		in.Kind = ContactSupport
	}

	c := &EmergencyContact{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Kind:                 in.Kind,
		Name:                 in.Name,
		Relationship:         strings.TrimSpace(in.Relationship),
		PhoneNumber:          in.PhoneNumber,
		AlternatePhoneNumber: in.AlternatePhoneNumber,
		Email:                in.Email,
		Address:              in.Address,
		Notes:                in.Notes,
		IsAvailable24Hours:   in.IsAvailable24Hours,
	}
	if err := s.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ContactsForUser(ctx context.Context, userID uint64) ([]*EmergencyContact, error) {
	var rows []*EmergencyContact
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&rows).Error
	return rows, err
}

func (s *Service) DeleteContact(ctx context.Context, userID uint64, id string) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&EmergencyContact{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Resources ---

type ResourceInput struct {
	Name              string
	Category          ResourceCategory
	Description       string
	PhoneNumber       *string
	Website           *string
	Address           *string
	AvailabilityHours string
	Languages         []string
	Services          []string
}

func (s *Service) CreateResource(ctx context.Context, in ResourceInput) (*Resource, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || !in.Category.Valid() {
		return nil, ErrInvalidInput
	}
	r := &Resource{
		ID:                uuid.NewString(),
		Name:              in.Name,
		Category:          string(in.Category),
		Description:       in.Description,
		PhoneNumber:       in.PhoneNumber,
		Website:           in.Website,
		Address:           in.Address,
		AvailabilityHours: in.AvailabilityHours,
		Languages:         cleanList(in.Languages),
		Services:          cleanList(in.Services),
	}
	if err := s.DB.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListResources(ctx context.Context, category string) ([]*Resource, error) {
	q := s.DB.WithContext(ctx).Model(&Resource{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var rows []*Resource
	err := q.Order("is_verified desc, name asc").Find(&rows).Error
	return rows, err
}

func (s *Service) VerifyResource(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).
		Model(&Resource{}).
		Where("id = ?", id).
		Update("is_verified", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Helplines ---

func (s *Service) ListHelplines(ctx context.Context) ([]*Helpline, error) {
	var rows []*Helpline
	err := s.DB.WithContext(ctx).Order("name asc").Find(&rows).Error
	return rows, err
}

// SeedHelplines inserts the built-in directory once. Conflicts on name are
// skipped so re-running at boot is safe.
func SeedHelplines(db *gorm.DB) error {
	text741741 := "741741"
	for _, h := range []Helpline{
		{
			ID:          uuid.NewString(),
			Name:        "988 Suicide & Crisis Lifeline",
			PhoneNumber: "988",
			Description: "Free, confidential support for people in distress, 24/7.",
			Category:    "suicide",
			Languages:   []string{"English", "Spanish"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Crisis Text Line",
			PhoneNumber: "741741",
			SMSNumber:   &text741741,
			Description: "Text HOME to reach a volunteer crisis counselor.",
			Category:    "crisis",
			Languages:   []string{"English", "Spanish"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "SAMHSA National Helpline",
			PhoneNumber: "1-800-662-4357",
			Description: "Treatment referral and information service for mental health and substance use.",
			Category:    "mental_health",
			Languages:   []string{"English", "Spanish"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Veterans Crisis Line",
			PhoneNumber: "988",
			Description: "Dial 988 then press 1. Support for veterans and their families.",
			Category:    "veterans",
			Languages:   []string{"English"},
		},
	} {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&h).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
