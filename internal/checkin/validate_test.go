package checkin_test

import (
	"errors"
	"strings"
	"testing"

	"noah/internal/checkin"
)

func TestValidateResponsesComplete(t *testing.T) {
	if err := checkin.ValidateResponses(uniformResponses(3)); err != nil {
		t.Fatalf("complete submission rejected: %v", err)
	}
}

func TestValidateResponsesMissing(t *testing.T) {
	r := uniformResponses(3)
	delete(r, checkin.QuestionAppetite)
	delete(r, checkin.QuestionFocus)

	err := checkin.ValidateResponses(r)
	if err == nil {
		t.Fatal("expected error for missing questions")
	}

	var verr *checkin.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Missing) != 2 {
		t.Fatalf("expected 2 missing questions, got %v", verr.Missing)
	}
	if !strings.Contains(verr.Error(), "appetite") || !strings.Contains(verr.Error(), "focus") {
		t.Fatalf("error must name the missing questions: %q", verr.Error())
	}
}

func TestValidateResponsesEmpty(t *testing.T) {
	err := checkin.ValidateResponses(checkin.Responses{})

	var verr *checkin.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Missing) != len(checkin.AllQuestions()) {
		t.Fatalf("all questions should be missing, got %d", len(verr.Missing))
	}
}

func TestValidateResponsesOutOfRange(t *testing.T) {
	for _, bad := range []int{0, 6, -1} {
		r := uniformResponses(3)
		r[checkin.QuestionMood] = bad

		err := checkin.ValidateResponses(r)
		var verr *checkin.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("score %d: expected *ValidationError, got %v", bad, err)
		}
		if len(verr.OutOfRange) != 1 || verr.OutOfRange[0] != checkin.QuestionMood {
			t.Fatalf("score %d: got %v", bad, verr.OutOfRange)
		}
	}
}
