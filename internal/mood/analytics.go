package mood

import (
	"fmt"
	"time"
)

// Analytics is a derived snapshot over a date-bounded set of entries.
// Recomputed on demand, never persisted.
type Analytics struct {
	MoodFrequency     map[Mood]int
	ActivityFrequency map[Activity]int
	AverageIntensity  float64
	TotalEntries      int
	StartDate         time.Time
	EndDate           time.Time

	// Histogram keys in first-encountered order, so ties in "most
	// frequent" resolve deterministically.
	moodOrder     []Mood
	activityOrder []Activity
}

// Analyze aggregates already-fetched entries. Empty input yields zeroed
// rates and means, never NaN.
func Analyze(entries []*Entry, start, end time.Time) *Analytics {
	a := &Analytics{
		MoodFrequency:     make(map[Mood]int),
		ActivityFrequency: make(map[Activity]int),
		TotalEntries:      len(entries),
		StartDate:         start,
		EndDate:           end,
	}

	intensitySum := 0
	for _, e := range entries {
		m := Mood(e.Mood)
		if _, seen := a.MoodFrequency[m]; !seen {
			a.moodOrder = append(a.moodOrder, m)
		}
		a.MoodFrequency[m]++

		for _, raw := range e.Activities {
			act := Activity(raw)
			if _, seen := a.ActivityFrequency[act]; !seen {
				a.activityOrder = append(a.activityOrder, act)
			}
			a.ActivityFrequency[act]++
		}

		intensitySum += e.Intensity
	}

	if len(entries) > 0 {
		a.AverageIntensity = float64(intensitySum) / float64(len(entries))
	}
	return a
}

// MostFrequentMood returns the histogram maximum; ties go to the mood
// encountered first. ok is false on an empty window.
func (a *Analytics) MostFrequentMood() (Mood, int, bool) {
	var best Mood
	bestCount := 0
	for _, m := range a.moodOrder {
		if a.MoodFrequency[m] > bestCount {
			best, bestCount = m, a.MoodFrequency[m]
		}
	}
	return best, bestCount, bestCount > 0
}

func (a *Analytics) MostFrequentActivity() (Activity, int, bool) {
	var best Activity
	bestCount := 0
	for _, act := range a.activityOrder {
		if a.ActivityFrequency[act] > bestCount {
			best, bestCount = act, a.ActivityFrequency[act]
		}
	}
	return best, bestCount, bestCount > 0
}

// EntriesPerDay uses the window size, never less than one day.
func (a *Analytics) EntriesPerDay() float64 {
	days := int(a.EndDate.Sub(a.StartDate).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return float64(a.TotalEntries) / float64(days)
}

// Insights renders short human-readable observations from the aggregates.
func (a *Analytics) Insights() []string {
	var out []string
	if m, n, ok := a.MostFrequentMood(); ok {
		out = append(out, fmt.Sprintf("Your most frequent mood was %s (%d entries).", m.Label(), n))
	}
	if act, n, ok := a.MostFrequentActivity(); ok {
		out = append(out, fmt.Sprintf("You logged %q alongside your mood %d times.", string(act), n))
	}
	if a.TotalEntries > 0 {
		out = append(out, fmt.Sprintf("Average mood intensity over this period: %.1f of 5.", a.AverageIntensity))
	}
	return out
}
