package analyzer

import (
	"sort"

	"github.com/quietstack/studypulse/internal/session"
)

// AnalyzeTags ranks tag usage across the records in range. Untagged
// sessions group under "No tag". Entries beyond topN collapse into a single
// gray "Other" entry whose counts, minutes, and percentage sum the tail.
// Percentages across the returned entries sum to 100 (modulo float rounding).
func AnalyzeTags(records []session.Record, r session.DateRange, topN int) []TagUsage {
	filtered := FilterInRange(records, r)
	if len(filtered) == 0 {
		return []TagUsage{}
	}

	byTitle := make(map[string]*TagUsage)
	for _, rec := range filtered {
		title := rec.TagTitle
		if title == "" {
			title = UntaggedTitle
		}
		u := byTitle[title]
		if u == nil {
			u = &TagUsage{Title: title, Color: rec.TagColor}
			byTitle[title] = u
		}
		u.SessionCount++
		u.TotalMinutes += rec.DurationMinutes
	}

	usages := make([]TagUsage, 0, len(byTitle))
	total := float64(len(filtered))
	for _, u := range byTitle {
		u.Percent = float64(u.SessionCount) / total * 100
		usages = append(usages, *u)
	}

	// Rank by minutes, then session count, then title for determinism.
	sort.Slice(usages, func(i, j int) bool {
		a, b := usages[i], usages[j]
		if a.TotalMinutes != b.TotalMinutes {
			return a.TotalMinutes > b.TotalMinutes
		}
		if a.SessionCount != b.SessionCount {
			return a.SessionCount > b.SessionCount
		}
		return a.Title < b.Title
	})

	if topN <= 0 || len(usages) <= topN {
		return usages
	}

	other := TagUsage{Title: OtherTitle, Color: OtherColor}
	for _, u := range usages[topN:] {
		other.SessionCount += u.SessionCount
		other.TotalMinutes += u.TotalMinutes
		other.Percent += u.Percent
	}

	return append(usages[:topN:topN], other)
}
