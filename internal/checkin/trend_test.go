package checkin_test

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"noah/internal/checkin"
)

// entryWithAverage builds a check-in whose per-entry average equals avg.
// avg*8 must land on integers spread across 1..5; uniform scores do.
func entryWithAverage(id string, scores checkin.Responses) *checkin.CheckIn {
	return &checkin.CheckIn{
		ID:        id,
		UserID:    1,
		Timestamp: time.Now(),
		Responses: datatypes.NewJSONType(scores),
	}
}

// mixedResponses yields an average strictly between the given low/high mix.
func mixedResponses(low, high int, lowCount int) checkin.Responses {
	r := make(checkin.Responses)
	for i, q := range checkin.AllQuestions() {
		if i < lowCount {
			r[q] = low
		} else {
			r[q] = high
		}
	}
	return r
}

func TestClassifyTrendInsufficientSample(t *testing.T) {
	entries := []*checkin.CheckIn{
		entryWithAverage("a", uniformResponses(2)),
		entryWithAverage("b", uniformResponses(2)),
	}
	if _, ok := checkin.ClassifyTrend(entries); ok {
		t.Fatal("two entries must not classify")
	}
	if _, ok := checkin.ClassifyTrend(nil); ok {
		t.Fatal("empty input must not classify")
	}
}

func TestClassifyTrendDeclining(t *testing.T) {
	// Averages 2.0, 2.5 and 1.75, all strictly below 3.0.
	entries := []*checkin.CheckIn{
		entryWithAverage("a", uniformResponses(2)),
		entryWithAverage("b", mixedResponses(2, 3, 4)),
		entryWithAverage("c", mixedResponses(1, 2, 2)),
	}
	flag, ok := checkin.ClassifyTrend(entries)
	if !ok || flag != checkin.FlagDeclining {
		t.Fatalf("got (%v, %v), want (declining, true)", flag, ok)
	}
}

func TestClassifyTrendImproving(t *testing.T) {
	entries := []*checkin.CheckIn{
		entryWithAverage("a", uniformResponses(4)),
		entryWithAverage("b", uniformResponses(5)),
		entryWithAverage("c", mixedResponses(3, 4, 4)), // 3.5
	}
	flag, ok := checkin.ClassifyTrend(entries)
	if !ok || flag != checkin.FlagImprovement {
		t.Fatalf("got (%v, %v), want (improvement, true)", flag, ok)
	}
}

func TestClassifyTrendConsistent(t *testing.T) {
	entries := []*checkin.CheckIn{
		entryWithAverage("a", uniformResponses(2)),
		entryWithAverage("b", uniformResponses(4)),
		entryWithAverage("c", uniformResponses(2)),
	}
	flag, ok := checkin.ClassifyTrend(entries)
	if !ok || flag != checkin.FlagConsistent {
		t.Fatalf("got (%v, %v), want (consistent, true)", flag, ok)
	}
}

func TestClassifyTrendExactMidpointIsConsistent(t *testing.T) {
	// An average of exactly 3.0 is neither declining nor improving.
	entries := []*checkin.CheckIn{
		entryWithAverage("a", uniformResponses(3)),
		entryWithAverage("b", uniformResponses(3)),
		entryWithAverage("c", uniformResponses(3)),
	}
	flag, ok := checkin.ClassifyTrend(entries)
	if !ok || flag != checkin.FlagConsistent {
		t.Fatalf("got (%v, %v), want (consistent, true)", flag, ok)
	}
}

func TestClassifyTrendUsesOnlyThreeNewest(t *testing.T) {
	// The fourth (oldest) entry would flip the result if considered.
	entries := []*checkin.CheckIn{
		entryWithAverage("a", uniformResponses(2)),
		entryWithAverage("b", uniformResponses(2)),
		entryWithAverage("c", uniformResponses(2)),
		entryWithAverage("d", uniformResponses(5)),
	}
	flag, ok := checkin.ClassifyTrend(entries)
	if !ok || flag != checkin.FlagDeclining {
		t.Fatalf("got (%v, %v), want (declining, true)", flag, ok)
	}
}
