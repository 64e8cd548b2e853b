package checkin

// Thresholds for the single-entry flagging policy.
const (
	lowAverageThreshold  = 2.0
	lowResponseThreshold = 2
	crisisScore          = 1
)

// EvaluateResponses computes the submission-time flags for one fully
// answered check-in. Pure: no I/O, deterministic regardless of map
// iteration order.
//
//   - average <= 2.0                     -> needs_attention
//   - mood <= 2 or anxiety <= 2         -> needs_attention (same flag, union)
//   - any single response == 1          -> crisis
//
// The result may be empty. Trend flags are handled separately by the
// analyzer, retrospectively.
func EvaluateResponses(r Responses) []Flag {
	var flags []Flag

	if r.Average() <= lowAverageThreshold {
		flags = appendFlag(flags, FlagNeedsAttention)
	}

	// Low scores in the two critical areas flag on their own, whatever
	// the overall average looks like.
	if r[QuestionMood] <= lowResponseThreshold || r[QuestionAnxiety] <= lowResponseThreshold {
		flags = appendFlag(flags, FlagNeedsAttention)
	}

	for _, v := range r {
		if v == crisisScore {
			flags = appendFlag(flags, FlagCrisis)
			break
		}
	}

	return flags
}

// appendFlag unions f into set, keeping first-added order.
func appendFlag(set []Flag, f Flag) []Flag {
	for _, v := range set {
		if v == f {
			return set
		}
	}
	return append(set, f)
}

func flagStrings(flags []Flag) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		out = append(out, string(f))
	}
	return out
}
