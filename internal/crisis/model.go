package crisis

import (
	"time"

	"github.com/lib/pq"
)

// SafetyPlan is one per user, replaced wholesale on save.
type SafetyPlan struct {
	ID                   string         `gorm:"type:uuid;primaryKey"`
	UserID               uint64         `gorm:"uniqueIndex;not null"`
	WarningSignals       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CopingStrategies     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	ReasonsToLive        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	SafeEnvironmentSteps pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	PersonalNotes        *string        `gorm:"type:text"`
	UpdatedAt            time.Time      `gorm:"not null;default:now()"`
	CreatedAt            time.Time      `gorm:"not null;default:now()"`
}

// ContactKind separates personal supporters from professionals.
type ContactKind string

const (
	ContactSupport      ContactKind = "support"
	ContactProfessional ContactKind = "professional"
)

type EmergencyContact struct {
	ID                   string      `gorm:"type:uuid;primaryKey"`
	UserID               uint64      `gorm:"index;not null"`
	Kind                 ContactKind `gorm:"type:text;not null;default:'support'"`
	Name                 string      `gorm:"type:text;not null"`
	Relationship         string      `gorm:"type:text;not null;default:''"`
	PhoneNumber          string      `gorm:"type:text;not null"`
	AlternatePhoneNumber *string     `gorm:"type:text"`
	Email                *string     `gorm:"type:text"`
	Address              *string     `gorm:"type:text"`
	Notes                *string     `gorm:"type:text"`
	IsAvailable24Hours   bool        `gorm:"not null;default:false"`
	CreatedAt            time.Time   `gorm:"not null;default:now()"`
}

// ResourceCategory is the closed directory taxonomy.
type ResourceCategory string

const (
	CategoryEmergency        ResourceCategory = "emergency"
	CategoryMentalHealth     ResourceCategory = "mental_health"
	CategoryAddiction        ResourceCategory = "addiction"
	CategorySuicide          ResourceCategory = "suicide_prevention"
	CategoryDomesticViolence ResourceCategory = "domestic_violence"
	CategoryLGBTQ            ResourceCategory = "lgbtq"
	CategoryVeterans         ResourceCategory = "veterans"
	CategoryYouth            ResourceCategory = "youth"
)

func AllResourceCategories() []ResourceCategory {
	return []ResourceCategory{
		CategoryEmergency, CategoryMentalHealth, CategoryAddiction,
		CategorySuicide, CategoryDomesticViolence, CategoryLGBTQ,
		CategoryVeterans, CategoryYouth,
	}
}

func (c ResourceCategory) Valid() bool {
	for _, v := range AllResourceCategories() {
		if c == v {
			return true
		}
	}
	return false
}

// Resource is a directory entry, world-readable. Admins create and verify.
type Resource struct {
	ID                string         `gorm:"type:uuid;primaryKey"`
	Name              string         `gorm:"type:text;not null"`
	Category          string         `gorm:"index;not null"`
	Description       string         `gorm:"type:text;not null;default:''"`
	PhoneNumber       *string        `gorm:"type:text"`
	Website           *string        `gorm:"type:text"`
	Address           *string        `gorm:"type:text"`
	AvailabilityHours string         `gorm:"type:text;not null;default:''"`
	Languages         pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Services          pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	IsVerified        bool           `gorm:"not null;default:false"`
	CreatedAt         time.Time      `gorm:"not null;default:now()"`
}

// Helpline is a seeded, read-only hotline directory row.
type Helpline struct {
	ID                 string         `gorm:"type:uuid;primaryKey"`
	Name               string         `gorm:"uniqueIndex;not null"`
	PhoneNumber        string         `gorm:"type:text;not null"`
	SMSNumber          *string        `gorm:"type:text"`
	Description        string         `gorm:"type:text;not null;default:''"`
	Category           string         `gorm:"index;not null"`
	IsAvailable24Hours bool           `gorm:"not null;default:true"`
	Languages          pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Website            *string        `gorm:"type:text"`
}
