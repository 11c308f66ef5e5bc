package ledger

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type PeriodType string

const (
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
	PeriodCustom  PeriodType = "custom"
)

func (p PeriodType) Valid() bool {
	switch p {
	case PeriodMonthly, PeriodYearly, PeriodCustom:
		return true
	}
	return false
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today is the single-day range containing now.
func Today(now time.Time) DateRange {
	day := Day(now)
	return DateRange{Start: day, End: day}
}

// Week is the Monday-to-Sunday range containing now.
func Week(now time.Time) DateRange {
	day := Day(now)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return DateRange{Start: start, End: start.AddDate(0, 0, 6)}
}

// Month is the calendar month containing now.
func Month(now time.Time) DateRange {
	day := Day(now)
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// Year is the calendar year containing now.
func Year(now time.Time) DateRange {
	day := Day(now)
	start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(1, 0, -1)}
}

// PeriodEnd derives a budget end date for monthly and yearly periods: the last
// day of the month or year that start falls in. Custom periods have no
// derived end and return ok=false.
func PeriodEnd(period PeriodType, start time.Time) (time.Time, bool) {
	switch period {
	case PeriodMonthly:
		return Month(start).End, true
	case PeriodYearly:
		return Year(start).End, true
	}
	return time.Time{}, false
}

// LastMonths returns the n calendar months ending with the month containing
// now, oldest first.
func LastMonths(now time.Time, n int) []DateRange {
	current := Month(now)
	months := make([]DateRange, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := current.Start.AddDate(0, -i, 0)
		months = append(months, DateRange{Start: start, End: start.AddDate(0, 1, -1)})
	}
	return months
}
