package therapy

import "testing"

func TestEmotionalChange(t *testing.T) {
	r := &ThoughtRecord{
		EmotionIntensities:    []int64{8, 6},
		NewEmotionIntensities: []int64{4, 2},
	}
	if got := r.EmotionalChange(); got != 4 {
		t.Fatalf("EmotionalChange = %d, want 4", got)
	}
}

func TestEmotionalChangeNegativeWhenWorse(t *testing.T) {
	r := &ThoughtRecord{
		EmotionIntensities:    []int64{3},
		NewEmotionIntensities: []int64{7},
	}
	if got := r.EmotionalChange(); got != -4 {
		t.Fatalf("EmotionalChange = %d, want -4", got)
	}
}

func TestEmotionalChangeEmptyRatings(t *testing.T) {
	if got := (&ThoughtRecord{}).EmotionalChange(); got != 0 {
		t.Fatalf("empty ratings EmotionalChange = %d, want 0", got)
	}
	r := &ThoughtRecord{EmotionIntensities: []int64{5}}
	if got := r.EmotionalChange(); got != 0 {
		t.Fatalf("missing re-rating EmotionalChange = %d, want 0", got)
	}
}

func TestValidateThoughtRecord(t *testing.T) {
	valid := ThoughtRecordInput{
		Situation:             "Presentation at work",
		AutomaticThoughts:     "I will embarrass myself",
		Emotions:              []string{"anxious", "ashamed"},
		EmotionIntensities:    []int64{8, 6},
		NewEmotionIntensities: []int64{4, 3},
	}
	if err := validateThoughtRecord(valid); err != nil {
		t.Fatalf("valid worksheet rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*ThoughtRecordInput)
	}{
		{"blank situation", func(in *ThoughtRecordInput) { in.Situation = "  " }},
		{"blank thoughts", func(in *ThoughtRecordInput) { in.AutomaticThoughts = "" }},
		{"no emotions", func(in *ThoughtRecordInput) { in.Emotions = nil }},
		{"ratings out of step", func(in *ThoughtRecordInput) { in.EmotionIntensities = []int64{8} }},
		{"re-ratings out of step", func(in *ThoughtRecordInput) { in.NewEmotionIntensities = []int64{4} }},
		{"rating below scale", func(in *ThoughtRecordInput) { in.EmotionIntensities = []int64{0, 6} }},
		{"rating above scale", func(in *ThoughtRecordInput) { in.NewEmotionIntensities = []int64{4, 11} }},
	}
	for _, tc := range cases {
		in := valid
		tc.mutate(&in)
		if err := validateThoughtRecord(in); err != ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}
