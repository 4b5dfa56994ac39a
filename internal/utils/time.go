package utils

import (
	"time"

	"github.com/julianstephens/microdiary/internal/constants"
)

// StartOfDay returns midnight of t's calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays returns midnight of the calendar day n days away from t (n may be negative).
// The offset is calendar based, so a day that is 23 or 25 hours long across a DST
// switch still counts as one day.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// AddYears returns midnight of the same calendar day n years away from t.
// February 29 maps to February 28 in non-leap years.
func AddYears(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y+n, m, d, 0, 0, 0, 0, t.Location())
	if target.Month() != m {
		// day overflowed into the next month
		target = time.Date(y+n, m+1, 0, 0, 0, 0, 0, t.Location())
	}
	return target
}

// IsSameDay reports whether a and b fall on the same calendar day.
// Each time is read on its own wall clock; callers pass times already in the user's timezone.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayKey returns the YYYY-MM-DD key of t's calendar day.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// MonthKey returns the YYYY-MM key of t's calendar month.
func MonthKey(t time.Time) string {
	return t.Format(constants.MonthFormat)
}

// DaysBetween returns the number of calendar days from a to b.
// The result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	// Return the date at midnight in the specified timezone
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
