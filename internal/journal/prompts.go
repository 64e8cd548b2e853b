package journal

// PromptCategory groups guided journal prompts.
type PromptCategory string

const (
	CategorySelfDiscovery PromptCategory = "self_discovery"
	CategoryGratitude     PromptCategory = "gratitude"
	CategoryEmotions      PromptCategory = "emotional_awareness"
	CategoryGoals         PromptCategory = "goals"
	CategoryRelationships PromptCategory = "relationships"
	CategoryReflection    PromptCategory = "daily_reflection"
)

// Prompt is a guided writing prompt with optional follow-ups.
type Prompt struct {
	ID                string         `json:"id"`
	Category          PromptCategory `json:"category"`
	Text              string         `json:"text"`
	FollowUpQuestions []string       `json:"follow_up_questions"`
}

// Prompts is the fixed catalog served to the client. Read-only.
func Prompts() []Prompt {
	return []Prompt{
		{
			ID:       "1",
			Category: CategorySelfDiscovery,
			Text:     "What are three things that make you unique, and how do they contribute to your personal growth?",
			FollowUpQuestions: []string{
				"How have these qualities helped you overcome challenges?",
				"In what ways would you like to further develop these traits?",
				"How do others respond to these unique aspects of your personality?",
			},
		},
		{
			ID:       "2",
			Category: CategoryGratitude,
			Text:     "Describe a recent moment of joy or kindness that you experienced. What made it special?",
			FollowUpQuestions: []string{
				"How did this moment affect your mood for the rest of the day?",
				"What can you do to create more moments like this?",
				"Who would you like to share this experience with?",
			},
		},
		{
			ID:       "3",
			Category: CategoryEmotions,
			Text:     "Think about a strong emotion you felt today. What triggered it, and how did you respond?",
			FollowUpQuestions: []string{
				"How did your body feel during this emotional experience?",
				"What coping strategies did you use, if any?",
				"What would you do differently next time?",
			},
		},
	}
}
