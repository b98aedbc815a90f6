// Package almanac builds one combined calendar record per Gregorian
// day: Gregorian decomposition, lunar attributes, solar term and legal
// holiday status.
package almanac

import (
	"time"

	"github.com/diggr909-droid/chinese-calendar-tocsv/pkg/dateutil"
)

// Decade represents the decade-of-month bucket (公历旬)
type Decade int

const (
	DecadeEarly Decade = iota + 1 // day 1-10
	DecadeMid                     // day 11-20
	DecadeLate                    // day 21 to end of month
)

// String returns the Chinese label for the decade bucket
func (d Decade) String() string {
	switch d {
	case DecadeEarly:
		return "上旬"
	case DecadeMid:
		return "中旬"
	case DecadeLate:
		return "下旬"
	}
	return ""
}

// DecadeOf buckets a day-of-month. The last day of any month falls
// into the late bucket regardless of month length.
func DecadeOf(day int) Decade {
	switch {
	case day <= 10:
		return DecadeEarly
	case day <= 20:
		return DecadeMid
	default:
		return DecadeLate
	}
}

// weekdayNames is indexed by weekday-from-Monday (0=Monday .. 6=Sunday)
var weekdayNames = [7]string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// WeekdayName returns the Chinese weekday label for the given date
func WeekdayName(date time.Time) string {
	return weekdayNames[dateutil.WeekdayFromMonday(date)]
}

// DayRecord is one output row: everything known about a single day.
// Records are built, written and discarded one at a time; they are
// never retained as a collection.
type DayRecord struct {
	Date    time.Time
	Year    int
	Month   int
	Day     int
	Decade  Decade
	ISOWeek int
	Weekday string

	LunarYear  int
	LunarMonth int // always positive
	LunarDay   int
	LeapMonth  bool
	Festivals  string // joined festival names, empty if none
	Zodiac     string
	SolarTerm  string // empty when the day is not a solar-term boundary

	Holiday     bool
	Workday     bool
	HolidayName string // empty unless Holiday
}
