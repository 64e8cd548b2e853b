package mood_test

import (
	"testing"
	"time"

	"noah/internal/mood"
)

var (
	windowStart = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
)

func entry(m mood.Mood, intensity int, activities ...mood.Activity) *mood.Entry {
	acts := make([]string, 0, len(activities))
	for _, a := range activities {
		acts = append(acts, string(a))
	}
	return &mood.Entry{
		UserID:     1,
		Timestamp:  windowStart.Add(24 * time.Hour),
		Mood:       string(m),
		Intensity:  intensity,
		Activities: acts,
	}
}

func TestAnalyzeBasics(t *testing.T) {
	a := mood.Analyze([]*mood.Entry{
		entry(mood.MoodHappy, 4),
		entry(mood.MoodHappy, 2),
	}, windowStart, windowEnd)

	if a.TotalEntries != 2 {
		t.Fatalf("TotalEntries = %d", a.TotalEntries)
	}
	if a.AverageIntensity != 3.0 {
		t.Fatalf("AverageIntensity = %v, want 3.0", a.AverageIntensity)
	}

	m, n, ok := a.MostFrequentMood()
	if !ok || m != mood.MoodHappy || n != 2 {
		t.Fatalf("MostFrequentMood = (%v, %d, %v)", m, n, ok)
	}
}

func TestAnalyzeEmptyWindow(t *testing.T) {
	a := mood.Analyze(nil, windowStart, windowEnd)

	if a.AverageIntensity != 0.0 {
		t.Fatalf("empty window AverageIntensity = %v", a.AverageIntensity)
	}
	if _, _, ok := a.MostFrequentMood(); ok {
		t.Fatal("empty window must not report a most frequent mood")
	}
	if _, _, ok := a.MostFrequentActivity(); ok {
		t.Fatal("empty window must not report a most frequent activity")
	}
	if got := a.EntriesPerDay(); got != 0.0 {
		t.Fatalf("empty window EntriesPerDay = %v", got)
	}
}

func TestAnalyzeActivityCounting(t *testing.T) {
	// One entry with three activities increments all three counters.
	a := mood.Analyze([]*mood.Entry{
		entry(mood.MoodNeutral, 3, mood.ActivityExercise, mood.ActivityMusic, mood.ActivityNature),
		entry(mood.MoodNeutral, 3, mood.ActivityMusic),
	}, windowStart, windowEnd)

	if a.ActivityFrequency[mood.ActivityMusic] != 2 {
		t.Fatalf("music count = %d", a.ActivityFrequency[mood.ActivityMusic])
	}
	if a.ActivityFrequency[mood.ActivityExercise] != 1 {
		t.Fatalf("exercise count = %d", a.ActivityFrequency[mood.ActivityExercise])
	}

	act, n, ok := a.MostFrequentActivity()
	if !ok || act != mood.ActivityMusic || n != 2 {
		t.Fatalf("MostFrequentActivity = (%v, %d, %v)", act, n, ok)
	}
}

func TestAnalyzeTieBreaksFirstEncountered(t *testing.T) {
	a := mood.Analyze([]*mood.Entry{
		entry(mood.MoodSad, 2),
		entry(mood.MoodAnxious, 3),
	}, windowStart, windowEnd)

	m, n, ok := a.MostFrequentMood()
	if !ok || m != mood.MoodSad || n != 1 {
		t.Fatalf("tie must go to first-encountered mood, got (%v, %d, %v)", m, n, ok)
	}
}

func TestEntriesPerDay(t *testing.T) {
	entries := make([]*mood.Entry, 60)
	for i := range entries {
		entries[i] = entry(mood.MoodHappy, 3)
	}
	a := mood.Analyze(entries, windowStart, windowEnd)

	if got := a.EntriesPerDay(); got != 2.0 {
		t.Fatalf("EntriesPerDay = %v, want 2.0 over a 30-day window", got)
	}

	// Sub-day window clamps to one day.
	b := mood.Analyze(entries[:3], windowStart, windowStart.Add(2*time.Hour))
	if got := b.EntriesPerDay(); got != 3.0 {
		t.Fatalf("EntriesPerDay = %v, want 3.0 for a clamped window", got)
	}
}

func TestInsights(t *testing.T) {
	a := mood.Analyze([]*mood.Entry{
		entry(mood.MoodHappy, 4, mood.ActivityExercise),
		entry(mood.MoodHappy, 5),
	}, windowStart, windowEnd)

	insights := a.Insights()
	if len(insights) == 0 {
		t.Fatal("expected insights for a non-empty window")
	}

	if got := mood.Analyze(nil, windowStart, windowEnd).Insights(); len(got) != 0 {
		t.Fatalf("empty window should carry no insights, got %v", got)
	}
}
