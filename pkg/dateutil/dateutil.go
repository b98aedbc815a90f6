package dateutil

import (
	"fmt"
	"time"
)

// ISODateFormat is the only accepted input format for dates
const ISODateFormat = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// GetWeekNumber returns the ISO week number for the given date
func GetWeekNumber(date time.Time) (year int, week int) {
	year, week = date.ISOWeek()
	return
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// WeekdayFromMonday returns the weekday index counted from Monday
// (0=Monday .. 6=Sunday)
func WeekdayFromMonday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// ParseDate parses a date string in strict YYYY-MM-DD format.
// Any other separator or ordering is rejected.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(ISODateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(ISODateFormat)
}

// DaysBetween returns the inclusive number of calendar days between
// start and end. Returns 0 when start is after end.
func DaysBetween(start, end time.Time) int {
	s := StartOfDay(start)
	e := StartOfDay(end)
	if s.After(e) {
		return 0
	}
	days := 0
	for cur := s; !cur.After(e); cur = cur.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
