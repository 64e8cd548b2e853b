package goal

import "time"

type Category string

const (
	CategoryMood       Category = "mood"
	CategoryMeditation Category = "meditation"
	CategoryJournaling Category = "journaling"
	CategorySelfCare   Category = "self_care"
	CategorySocial     Category = "social"
	CategoryExercise   Category = "exercise"
	CategorySleep      Category = "sleep"
	CategoryCustom     Category = "custom"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMood, CategoryMeditation, CategoryJournaling, CategorySelfCare,
		CategorySocial, CategoryExercise, CategorySleep, CategoryCustom:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyCustom  Frequency = "custom"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
		return true
	}
	return false
}

// Goal is a user-defined wellness target counted toward in increments.
type Goal struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	UserID      uint64 `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text;not null;default:''"`
	Category    string `gorm:"not null;default:'custom'"`
	Frequency   string `gorm:"not null;default:'daily'"`
	Target      int    `gorm:"not null"`
	Progress    int    `gorm:"not null;default:0"`
	IsCompleted bool   `gorm:"not null;default:false"`
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time `gorm:"not null;default:now()"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
}

func (Goal) TableName() string { return "goals" }

// ProgressPercentage is progress against target, capped at 100.
func (g *Goal) ProgressPercentage() float64 {
	if g.Target <= 0 {
		return 0
	}
	pct := float64(g.Progress) / float64(g.Target) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
