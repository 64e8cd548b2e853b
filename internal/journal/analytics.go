package journal

import (
	"sort"
	"time"
)

// Analytics is the derived journal snapshot for a date-bounded window.
type Analytics struct {
	TotalEntries        int
	MoodImprovementRate float64
	AverageMoodChange   float64
	TagCounts           map[string]int
	StartDate           time.Time
	EndDate             time.Time

	tagOrder []string
}

// TagCount pairs a tag with its occurrence count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Analyze aggregates already-fetched entries.
//
// MoodImprovementRate counts entries where both ratings are present and
// the after rating is strictly higher, over ALL entries in the window:
// entries missing a rating stay in the denominator.
//
// AverageMoodChange likewise divides by the total entry count, so entries
// without both ratings contribute zero to the sum. That pulls the average
// toward zero but matches how the product has always reported the number.
func Analyze(entries []*Entry, start, end time.Time) *Analytics {
	a := &Analytics{
		TotalEntries: len(entries),
		TagCounts:    make(map[string]int),
		StartDate:    start,
		EndDate:      end,
	}

	improved := 0
	totalChange := 0
	for _, e := range entries {
		if delta, ok := e.MoodDelta(); ok {
			if delta > 0 {
				improved++
			}
			totalChange += delta
		}

		for _, tag := range e.Tags {
			if _, seen := a.TagCounts[tag]; !seen {
				a.tagOrder = append(a.tagOrder, tag)
			}
			a.TagCounts[tag]++
		}
	}

	if len(entries) > 0 {
		a.MoodImprovementRate = float64(improved) / float64(len(entries))
		a.AverageMoodChange = float64(totalChange) / float64(len(entries))
	}
	return a
}

// MostCommonTags returns the top five tags by count. Ties keep
// first-encountered order.
func (a *Analytics) MostCommonTags() []TagCount {
	out := make([]TagCount, 0, len(a.tagOrder))
	for _, tag := range a.tagOrder {
		out = append(out, TagCount{Tag: tag, Count: a.TagCounts[tag]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// EntriesPerDay uses the window size, never less than one day.
func (a *Analytics) EntriesPerDay() float64 {
	days := int(a.EndDate.Sub(a.StartDate).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return float64(a.TotalEntries) / float64(days)
}
