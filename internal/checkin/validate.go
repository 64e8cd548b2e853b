package checkin

import (
	"fmt"
	"strings"
)

// ValidationError rejects a submission before anything is persisted or
// scored. Missing and OutOfRange name the offending questions so the
// client can re-prompt.
type ValidationError struct {
	Missing    []Question
	OutOfRange []Question
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("unanswered questions: %s", joinQuestions(e.Missing)))
	}
	if len(e.OutOfRange) > 0 {
		parts = append(parts, fmt.Sprintf("responses out of range: %s", joinQuestions(e.OutOfRange)))
	}
	if len(parts) == 0 {
		return "invalid submission"
	}
	return strings.Join(parts, "; ")
}

func joinQuestions(qs []Question) string {
	ss := make([]string, 0, len(qs))
	for _, q := range qs {
		ss = append(ss, string(q))
	}
	return strings.Join(ss, ", ")
}

// ValidateResponses requires every question in the enumeration to be
// answered with a score in [1,5]. Partial submissions never reach the
// flagging policy.
func ValidateResponses(r Responses) error {
	var verr ValidationError
	for _, q := range AllQuestions() {
		v, ok := r[q]
		if !ok {
			verr.Missing = append(verr.Missing, q)
			continue
		}
		if v < MinScore || v > MaxScore {
			verr.OutOfRange = append(verr.OutOfRange, q)
		}
	}
	if len(verr.Missing) > 0 || len(verr.OutOfRange) > 0 {
		return &verr
	}
	return nil
}
