package session

import (
	"errors"
	"fmt"
	"time"
)

// RangeKind identifies how a DateRange was constructed.
type RangeKind string

// Range kinds.
const (
	RangeLastNDays RangeKind = "last_n_days"
	RangeMonth     RangeKind = "month"
	RangeCustom    RangeKind = "custom"
	RangeAllTime   RangeKind = "all_time"
)

// ErrNotMonthRange is returned by month navigation on a range that was not
// built with ForMonth.
var ErrNotMonthRange = errors.New("range is not a month range")

// allTimeEnd is the sentinel upper bound for AllTime ranges.
var allTimeEnd = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// DateRange is an immutable inclusive time interval. Construct one with
// LastNDays, ForMonth, Custom, or AllTime; the zero value is not valid.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Kind  RangeKind `json:"kind"`

	// Days is set for RangeLastNDays.
	Days int `json:"days,omitempty"`

	// Year and Month are set for RangeMonth.
	Year  int        `json:"year,omitempty"`
	Month time.Month `json:"month,omitempty"`
}

// LastNDays returns a range covering the last n days ending now.
// Values below 1 are clamped to 1.
func LastNDays(n int) DateRange {
	if n < 1 {
		n = 1
	}
	end := time.Now()
	return DateRange{
		Start: end.AddDate(0, 0, -n),
		End:   end,
		Kind:  RangeLastNDays,
		Days:  n,
	}
}

// ForMonth returns a range covering one calendar month in local time.
// Years outside 1970-2100 and months outside 1-12 are rejected.
func ForMonth(year int, month time.Month) (DateRange, error) {
	if year < 1970 || year > 2100 {
		return DateRange{}, fmt.Errorf("year %d out of range", year)
	}
	if month < time.January || month > time.December {
		return DateRange{}, fmt.Errorf("month %d out of range", month)
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return DateRange{
		Start: start,
		End:   end,
		Kind:  RangeMonth,
		Year:  year,
		Month: month,
	}, nil
}

// Custom returns a range with explicit bounds. Start after end is rejected.
func Custom(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, fmt.Errorf("range start %s after end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return DateRange{Start: start, End: end, Kind: RangeCustom}, nil
}

// AllTime returns a range from the Unix epoch to a far-future sentinel.
func AllTime() DateRange {
	return DateRange{
		Start: time.Unix(0, 0),
		End:   allTimeEnd,
		Kind:  RangeAllTime,
	}
}

// Contains reports whether t falls within the range, bounds inclusive.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// DurationInDays returns the span of the range in whole days, minimum 1.
func (r DateRange) DurationInDays() int {
	days := int(r.End.Sub(r.Start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// PreviousMonth returns the range for the month before this one.
// Only valid for ForMonth ranges.
func (r DateRange) PreviousMonth() (DateRange, error) {
	if r.Kind != RangeMonth {
		return DateRange{}, fmt.Errorf("previous month of %s range: %w", r.Kind, ErrNotMonthRange)
	}
	y, m := r.Year, r.Month-1
	if m < time.January {
		y, m = y-1, time.December
	}
	return ForMonth(y, m)
}

// NextMonth returns the range for the month after this one.
// Only valid for ForMonth ranges.
func (r DateRange) NextMonth() (DateRange, error) {
	if r.Kind != RangeMonth {
		return DateRange{}, fmt.Errorf("next month of %s range: %w", r.Kind, ErrNotMonthRange)
	}
	y, m := r.Year, r.Month+1
	if m > time.December {
		y, m = y+1, time.January
	}
	return ForMonth(y, m)
}

// DisplayName returns a human-readable label for the range. The label is a
// pure function of the kind and its metadata, never of the clock.
func (r DateRange) DisplayName() string {
	switch r.Kind {
	case RangeLastNDays:
		if r.Days == 7 {
			return "Last 7 days"
		}
		return fmt.Sprintf("Last %d days", r.Days)
	case RangeMonth:
		return fmt.Sprintf("%s %d", r.Month, r.Year)
	case RangeCustom:
		return fmt.Sprintf("%s – %s",
			r.Start.Format("Jan 2, 2006"), r.End.Format("Jan 2, 2006"))
	case RangeAllTime:
		return "All time"
	}
	return string(r.Kind)
}

// ShortDisplayName returns a compact label suitable for table cells.
func (r DateRange) ShortDisplayName() string {
	switch r.Kind {
	case RangeLastNDays:
		return fmt.Sprintf("%dd", r.Days)
	case RangeMonth:
		return fmt.Sprintf("%s %d", r.Month.String()[:3], r.Year)
	case RangeCustom:
		return fmt.Sprintf("%s–%s",
			r.Start.Format("Jan 2"), r.End.Format("Jan 2"))
	case RangeAllTime:
		return "All"
	}
	return string(r.Kind)
}
