package checkin_test

import (
	"testing"

	"noah/internal/checkin"
)

// uniformResponses answers every question with the same score.
func uniformResponses(score int) checkin.Responses {
	r := make(checkin.Responses)
	for _, q := range checkin.AllQuestions() {
		r[q] = score
	}
	return r
}

func hasFlag(flags []checkin.Flag, want checkin.Flag) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

func TestEvaluateResponsesNoTriggers(t *testing.T) {
	flags := checkin.EvaluateResponses(uniformResponses(4))
	if len(flags) != 0 {
		t.Fatalf("expected no flags for all-4 responses, got %v", flags)
	}
}

func TestEvaluateResponsesAllOnes(t *testing.T) {
	flags := checkin.EvaluateResponses(uniformResponses(1))

	if !hasFlag(flags, checkin.FlagNeedsAttention) {
		t.Fatalf("expected needs_attention, got %v", flags)
	}
	if !hasFlag(flags, checkin.FlagCrisis) {
		t.Fatalf("expected crisis, got %v", flags)
	}
	if len(flags) != 2 {
		t.Fatalf("needs_attention must not duplicate: got %v", flags)
	}
}

func TestEvaluateResponsesCrisisOnSingleOne(t *testing.T) {
	r := uniformResponses(4)
	r[checkin.QuestionSleep] = 1

	flags := checkin.EvaluateResponses(r)
	if !hasFlag(flags, checkin.FlagCrisis) {
		t.Fatalf("a single score of 1 must raise crisis, got %v", flags)
	}
}

func TestEvaluateResponsesLowMoodOrAnxiety(t *testing.T) {
	for _, q := range []checkin.Question{checkin.QuestionMood, checkin.QuestionAnxiety} {
		r := uniformResponses(4)
		r[q] = 2

		flags := checkin.EvaluateResponses(r)
		if !hasFlag(flags, checkin.FlagNeedsAttention) {
			t.Fatalf("%s=2 must raise needs_attention, got %v", q, flags)
		}
		if hasFlag(flags, checkin.FlagCrisis) {
			t.Fatalf("%s=2 must not raise crisis, got %v", q, flags)
		}
	}
}

func TestEvaluateResponsesLowEnergyAlone(t *testing.T) {
	// A low score outside the critical areas does not flag on its own
	// while the average stays up.
	r := uniformResponses(5)
	r[checkin.QuestionEnergy] = 2

	flags := checkin.EvaluateResponses(r)
	if len(flags) != 0 {
		t.Fatalf("expected no flags, got %v", flags)
	}
}

func TestEvaluateResponsesLowAverage(t *testing.T) {
	flags := checkin.EvaluateResponses(uniformResponses(2))
	if !hasFlag(flags, checkin.FlagNeedsAttention) {
		t.Fatalf("average of 2.0 must raise needs_attention, got %v", flags)
	}
	if hasFlag(flags, checkin.FlagCrisis) {
		t.Fatalf("no score of 1, crisis must not fire: %v", flags)
	}
}

func TestEvaluateResponsesDeterministic(t *testing.T) {
	r := uniformResponses(3)
	r[checkin.QuestionMood] = 1
	r[checkin.QuestionSleep] = 2

	first := checkin.EvaluateResponses(r)
	for i := 0; i < 50; i++ {
		again := checkin.EvaluateResponses(r)
		if len(again) != len(first) {
			t.Fatalf("run %d: got %v, want %v", i, again, first)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: got %v, want %v", i, again, first)
			}
		}
	}
}

func TestResponsesAverage(t *testing.T) {
	r := uniformResponses(3)
	r[checkin.QuestionMood] = 5
	// 7 threes and one five over 8 questions
	want := (7.0*3 + 5) / 8
	if got := r.Average(); got != want {
		t.Fatalf("Average() = %v, want %v", got, want)
	}
}
