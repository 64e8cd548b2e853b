package checkin

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Question is the closed set of daily check-in prompts. Adding a question
// here is the single point of change: validation, scoring and the question
// catalog all iterate AllQuestions.
type Question string

const (
	QuestionSleep            Question = "sleep"
	QuestionAnxiety          Question = "anxiety"
	QuestionMood             Question = "mood"
	QuestionEnergy           Question = "energy"
	QuestionFocus            Question = "focus"
	QuestionAppetite         Question = "appetite"
	QuestionSocialConnection Question = "social_connection"
	QuestionMotivation       Question = "motivation"
)

func AllQuestions() []Question {
	return []Question{
		QuestionSleep,
		QuestionAnxiety,
		QuestionMood,
		QuestionEnergy,
		QuestionFocus,
		QuestionAppetite,
		QuestionSocialConnection,
		QuestionMotivation,
	}
}

// Prompt is the question text shown to the user.
func (q Question) Prompt() string {
	switch q {
	case QuestionSleep:
		return "How well did you sleep?"
	case QuestionAnxiety:
		return "How anxious do you feel?"
	case QuestionMood:
		return "How is your mood?"
	case QuestionEnergy:
		return "How is your energy level?"
	case QuestionFocus:
		return "How is your ability to focus?"
	case QuestionAppetite:
		return "How is your appetite?"
	case QuestionSocialConnection:
		return "How connected do you feel to others?"
	case QuestionMotivation:
		return "How motivated do you feel?"
	}
	return string(q)
}

// LowLabel and HighLabel anchor the 1 and 5 ends of the scale.
func (q Question) LowLabel() string {
	switch q {
	case QuestionSleep:
		return "Poor sleep"
	case QuestionAnxiety:
		return "Very anxious"
	case QuestionMood:
		return "Low mood"
	case QuestionEnergy:
		return "Low energy"
	case QuestionFocus:
		return "Unable to focus"
	case QuestionAppetite:
		return "Poor appetite"
	case QuestionSocialConnection:
		return "Disconnected"
	case QuestionMotivation:
		return "Unmotivated"
	}
	return ""
}

func (q Question) HighLabel() string {
	switch q {
	case QuestionSleep:
		return "Well rested"
	case QuestionAnxiety:
		return "Calm"
	case QuestionMood:
		return "Great mood"
	case QuestionEnergy:
		return "Energetic"
	case QuestionFocus:
		return "Highly focused"
	case QuestionAppetite:
		return "Good appetite"
	case QuestionSocialConnection:
		return "Well connected"
	case QuestionMotivation:
		return "Highly motivated"
	}
	return ""
}

// Flag is a computed risk/trend marker. Never set by the user.
type Flag string

const (
	FlagNeedsAttention Flag = "needs_attention"
	FlagCrisis         Flag = "crisis"
	FlagImprovement    Flag = "improvement"
	FlagConsistent     Flag = "consistent"
	FlagDeclining      Flag = "declining"
)

// Responses maps each answered question to a 1..5 score.
type Responses map[Question]int

const (
	MinScore = 1
	MaxScore = 5
)

// Average over all answered questions. Callers guarantee len > 0 (the
// validator enforces exhaustiveness before anything computes averages).
func (r Responses) Average() float64 {
	sum := 0
	for _, v := range r {
		sum += v
	}
	return float64(sum) / float64(len(r))
}

// CheckIn is one submitted self-report. The record is immutable after
// creation except for Flags, which the trend analyzer rewrites via a
// partial update.
type CheckIn struct {
	ID        string                         `gorm:"type:uuid;primaryKey"`
	UserID    uint64                         `gorm:"index;not null"`
	Timestamp time.Time                      `gorm:"index;not null"`
	Responses datatypes.JSONType[Responses]  `gorm:"type:jsonb;not null"`
	Notes     *string                        `gorm:"type:text"`
	Flags     pq.StringArray                 `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt time.Time                      `gorm:"not null;default:now()"`
}

// FlagSet converts the stored array back to typed flags.
func (c *CheckIn) FlagSet() []Flag {
	out := make([]Flag, 0, len(c.Flags))
	for _, f := range c.Flags {
		out = append(out, Flag(f))
	}
	return out
}

// HasFlag reports whether the stored flags contain f.
func (c *CheckIn) HasFlag(f Flag) bool {
	for _, v := range c.Flags {
		if Flag(v) == f {
			return true
		}
	}
	return false
}
