package calculator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical calendar date format written by CampTrack.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a stored date cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// Older rows were entered day-first by hand, so those layouts are accepted
// on read as well.
var dateLayouts = []string{
	DateLayout,
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses a stored calendar date and returns midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

const secondsPerDay = 24 * 60 * 60

// daysBetween returns end - start in calendar days. Only the dates count,
// so spans longer than a time.Duration can hold still come out right.
func daysBetween(start, end time.Time) int {
	return int((civilDay(end) - civilDay(start)) / secondsPerDay)
}

func civilDay(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix()
}

// InclusiveDays counts the calendar days covered by start and end, both
// included. A reversed pair counts the same as the ordered one.
func InclusiveDays(start, end time.Time) int {
	d := daysBetween(start, end)
	if d < 0 {
		d = -d
	}
	return d + 1
}

// DateRange lists every day from start to end inclusive, ascending.
// It is empty when end is before start.
func DateRange(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	days := make([]time.Time, 0, daysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DateSpan is an inclusive calendar range.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// ParseSpan parses a stored start/end pair. A reversed pair is swapped.
func ParseSpan(start, end string) (DateSpan, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateSpan{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateSpan{}, err
	}
	if e.Before(s) {
		s, e = e, s
	}
	return DateSpan{Start: s, End: e}, nil
}

// RangesOverlap reports whether two inclusive spans share at least one day.
func RangesOverlap(a, b DateSpan) bool {
	return !(a.End.Before(b.Start) || a.Start.After(b.End))
}
