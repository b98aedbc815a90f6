package almanac

import (
	"fmt"
	"time"

	"github.com/diggr909-droid/chinese-calendar-tocsv/pkg/dateutil"
)

// Bounds is the inclusive year span the holiday data covers
type Bounds struct {
	MinYear int
	MaxYear int
}

// FormatError reports an input string that is not a YYYY-MM-DD date
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD format", e.Input)
}

// OrderError reports a start date after the end date
type OrderError struct {
	Start time.Time
	End   time.Time
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("start date %s is after end date %s",
		dateutil.FormatDate(e.Start), dateutil.FormatDate(e.End))
}

// RangeError reports a range outside the supported year span
type RangeError struct {
	Start  time.Time
	End    time.Time
	Bounds Bounds
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range %s to %s is outside the supported years [%d, %d]",
		dateutil.FormatDate(e.Start), dateutil.FormatDate(e.End),
		e.Bounds.MinYear, e.Bounds.MaxYear)
}

// ParseRange parses and validates a start/end date pair. Pure
// validation, no side effects: format first, then chronological order,
// then the supported year span.
func ParseRange(startStr, endStr string, bounds Bounds) (start, end time.Time, err error) {
	start, err = time.Parse(dateutil.ISODateFormat, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, &FormatError{Input: startStr}
	}
	end, err = time.Parse(dateutil.ISODateFormat, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, &FormatError{Input: endStr}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, &OrderError{Start: start, End: end}
	}

	if start.Year() < bounds.MinYear || end.Year() > bounds.MaxYear {
		return time.Time{}, time.Time{}, &RangeError{Start: start, End: end, Bounds: bounds}
	}

	return start, end, nil
}
