package mood

import (
	"time"

	"github.com/lib/pq"
)

// Mood is the closed set of primary moods.
type Mood string

const (
	MoodVeryHappy   Mood = "very_happy"
	MoodHappy       Mood = "happy"
	MoodNeutral     Mood = "neutral"
	MoodSad         Mood = "sad"
	MoodVerySad     Mood = "very_sad"
	MoodAnxious     Mood = "anxious"
	MoodAngry       Mood = "angry"
	MoodOverwhelmed Mood = "overwhelmed"
)

func AllMoods() []Mood {
	return []Mood{
		MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad,
		MoodVerySad, MoodAnxious, MoodAngry, MoodOverwhelmed,
	}
}

func (m Mood) Valid() bool {
	for _, v := range AllMoods() {
		if m == v {
			return true
		}
	}
	return false
}

// Label is the display name the client renders.
func (m Mood) Label() string {
	switch m {
	case MoodVeryHappy:
		return "Very Happy"
	case MoodHappy:
		return "Happy"
	case MoodNeutral:
		return "Neutral"
	case MoodSad:
		return "Sad"
	case MoodVerySad:
		return "Very Sad"
	case MoodAnxious:
		return "Anxious"
	case MoodAngry:
		return "Angry"
	case MoodOverwhelmed:
		return "Overwhelmed"
	}
	return string(m)
}

// Activity tags what influenced the mood.
type Activity string

const (
	ActivityExercise    Activity = "exercise"
	ActivityMeditation  Activity = "meditation"
	ActivityTherapy     Activity = "therapy"
	ActivitySocializing Activity = "socializing"
	ActivityWork        Activity = "work"
	ActivityReading     Activity = "reading"
	ActivityNature      Activity = "nature"
	ActivityMusic       Activity = "music"
	ActivityArt         Activity = "art"
	ActivitySleep       Activity = "sleep"
	ActivityMedication  Activity = "medication"
	ActivityJournaling  Activity = "journaling"
)

func AllActivities() []Activity {
	return []Activity{
		ActivityExercise, ActivityMeditation, ActivityTherapy,
		ActivitySocializing, ActivityWork, ActivityReading,
		ActivityNature, ActivityMusic, ActivityArt,
		ActivitySleep, ActivityMedication, ActivityJournaling,
	}
}

func (a Activity) Valid() bool {
	for _, v := range AllActivities() {
		if a == v {
			return true
		}
	}
	return false
}

// Entry is one lightweight mood log. Immutable after creation.
type Entry struct {
	ID         string         `gorm:"type:uuid;primaryKey"`
	UserID     uint64         `gorm:"index;not null"`
	Timestamp  time.Time      `gorm:"index;not null"`
	Mood       string         `gorm:"type:text;not null"`
	Intensity  int            `gorm:"not null"` // 1..5
	Activities pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Notes      *string        `gorm:"type:text"`
	Tags       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt  time.Time      `gorm:"not null;default:now()"`
}

func (Entry) TableName() string { return "mood_entries" }
