package checkin

// Trend analysis window. TrendWindow bounds the fetch; MinTrendSample
// entries must be present before any classification happens.
const (
	TrendWindow    = 7
	MinTrendSample = 3

	trendMidpoint = 3.0
)

// ClassifyTrend looks at the newest-first check-in sequence and classifies
// the direction of the last MinTrendSample entries:
//
//   - all averages < 3.0 -> declining
//   - all averages > 3.0 -> improvement
//   - otherwise          -> consistent
//
// Exactly one trend flag results. With fewer than MinTrendSample entries
// there is nothing to classify and ok is false; that is a defined no-op,
// not an error.
func ClassifyTrend(recent []*CheckIn) (Flag, bool) {
	if len(recent) < MinTrendSample {
		return "", false
	}

	allBelow, allAbove := true, true
	for _, c := range recent[:MinTrendSample] {
		avg := c.Responses.Data().Average()
		if avg >= trendMidpoint {
			allBelow = false
		}
		if avg <= trendMidpoint {
			allAbove = false
		}
	}

	switch {
	case allBelow:
		return FlagDeclining, true
	case allAbove:
		return FlagImprovement, true
	default:
		return FlagConsistent, true
	}
}
