// Package lunar wraps Gregorian-to-lunar conversion behind a small
// provider interface. The astronomy itself (lunar months, leap-month
// insertion, the 24 solar terms) is delegated to lunar-go and treated
// as a black box.
package lunar

import (
	"container/list"
	"time"

	lunargo "github.com/6tail/lunar-go/calendar"
)

// DayInfo represents the lunar-calendar attributes of one Gregorian day
type DayInfo struct {
	Year      int
	Month     int // always positive, see LeapMonth
	Day       int
	LeapMonth bool
	Zodiac    string

	// Festivals are traditional lunar festivals (e.g. 春节),
	// FolkFestivals the secondary folk ones (e.g. 寒衣节).
	Festivals     []string
	FolkFestivals []string

	// SolarTerm is the solar term starting on this day, empty otherwise
	SolarTerm string
}

// Provider converts a Gregorian date into its lunar attributes
type Provider interface {
	Convert(date time.Time) *DayInfo
}

// Converter implements Provider using lunar-go
type Converter struct{}

// NewConverter creates a new lunar-go backed Converter
func NewConverter() *Converter {
	return &Converter{}
}

// Convert returns the lunar attributes for the given Gregorian date.
// lunar-go encodes a leap month as a negative month number; that sign
// convention is decoded here at the boundary and never leaks outward.
func (c *Converter) Convert(date time.Time) *DayInfo {
	solar := lunargo.NewSolarFromYmd(date.Year(), int(date.Month()), date.Day())
	lunar := solar.GetLunar()

	month := lunar.GetMonth()
	leap := month < 0
	if leap {
		month = -month
	}

	return &DayInfo{
		Year:          lunar.GetYear(),
		Month:         month,
		Day:           lunar.GetDay(),
		LeapMonth:     leap,
		Zodiac:        lunar.GetYearShengXiao(),
		Festivals:     stringsOf(lunar.GetFestivals()),
		FolkFestivals: stringsOf(lunar.GetOtherFestivals()),
		SolarTerm:     lunar.GetJieQi(),
	}
}

// stringsOf flattens the container/list values lunar-go returns
func stringsOf(l *list.List) []string {
	if l == nil || l.Len() == 0 {
		return nil
	}
	out := make([]string, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		if s, ok := e.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
