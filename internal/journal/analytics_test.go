package journal_test

import (
	"testing"
	"time"

	"noah/internal/journal"
)

var (
	windowStart = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
)

func intp(v int) *int { return &v }

func entry(before, after *int, tags ...string) *journal.Entry {
	return &journal.Entry{
		UserID:     1,
		Timestamp:  windowStart.Add(24 * time.Hour),
		Content:    "wrote something",
		Tags:       tags,
		MoodBefore: before,
		MoodAfter:  after,
	}
}

func TestAnalyzeImprovementRate(t *testing.T) {
	// One improved, one unchanged, one missing a rating: 1 of 3.
	a := journal.Analyze([]*journal.Entry{
		entry(intp(2), intp(4)),
		entry(intp(3), intp(3)),
		entry(nil, intp(5)),
	}, windowStart, windowEnd)

	want := 1.0 / 3.0
	if a.MoodImprovementRate != want {
		t.Fatalf("MoodImprovementRate = %v, want %v", a.MoodImprovementRate, want)
	}
}

func TestAnalyzeAverageMoodChangeIncludesUnratedAsZero(t *testing.T) {
	// Two rated entries sum to +3; the unrated entry stays in the
	// denominator and contributes nothing, so the mean is 3/3.
	a := journal.Analyze([]*journal.Entry{
		entry(intp(2), intp(4)),
		entry(intp(4), intp(5)),
		entry(nil, nil),
	}, windowStart, windowEnd)

	if a.AverageMoodChange != 1.0 {
		t.Fatalf("AverageMoodChange = %v, want 1.0", a.AverageMoodChange)
	}
}

func TestAnalyzeNegativeMoodChange(t *testing.T) {
	a := journal.Analyze([]*journal.Entry{
		entry(intp(4), intp(1)),
	}, windowStart, windowEnd)

	if a.AverageMoodChange != -3.0 {
		t.Fatalf("AverageMoodChange = %v, want -3.0", a.AverageMoodChange)
	}
	if a.MoodImprovementRate != 0.0 {
		t.Fatalf("MoodImprovementRate = %v, want 0.0", a.MoodImprovementRate)
	}
}

func TestAnalyzeEmptyWindow(t *testing.T) {
	a := journal.Analyze(nil, windowStart, windowEnd)

	if a.MoodImprovementRate != 0.0 || a.AverageMoodChange != 0.0 {
		t.Fatalf("empty window must zero all rates: %+v", a)
	}
	if got := a.MostCommonTags(); len(got) != 0 {
		t.Fatalf("empty window MostCommonTags = %v", got)
	}
	if got := a.EntriesPerDay(); got != 0.0 {
		t.Fatalf("empty window EntriesPerDay = %v", got)
	}
}

func TestMostCommonTagsTopFive(t *testing.T) {
	a := journal.Analyze([]*journal.Entry{
		entry(nil, nil, "sleep", "work", "family"),
		entry(nil, nil, "sleep", "work"),
		entry(nil, nil, "sleep", "gratitude"),
		entry(nil, nil, "anxiety", "exercise", "focus"),
	}, windowStart, windowEnd)

	top := a.MostCommonTags()
	if len(top) != 5 {
		t.Fatalf("expected top 5 of 7 tags, got %d", len(top))
	}
	if top[0].Tag != "sleep" || top[0].Count != 3 {
		t.Fatalf("top tag = %+v, want sleep x3", top[0])
	}
	if top[1].Tag != "work" || top[1].Count != 2 {
		t.Fatalf("second tag = %+v, want work x2", top[1])
	}
	// Singles keep first-encountered order.
	if top[2].Tag != "family" {
		t.Fatalf("tie order broken: %+v", top)
	}
}

func TestMoodDelta(t *testing.T) {
	if _, ok := entry(intp(3), nil).MoodDelta(); ok {
		t.Fatal("delta needs both ratings")
	}
	d, ok := entry(intp(2), intp(5)).MoodDelta()
	if !ok || d != 3 {
		t.Fatalf("MoodDelta = (%d, %v), want (3, true)", d, ok)
	}
}
