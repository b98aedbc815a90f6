// Package holiday answers legal-holiday and workday questions for PRC
// dates. The government holiday schedule (rest days plus compensatory
// workdays) comes from the table embedded in lunar-go; days absent from
// the table follow the ordinary Monday-Friday week.
package holiday

import (
	"time"

	"github.com/6tail/lunar-go/HolidayUtil"
	"go.uber.org/zap"

	"github.com/diggr909-droid/chinese-calendar-tocsv/pkg/dateutil"
)

// Detail describes a designated holiday day
type Detail struct {
	Name   string // display name, e.g. 国庆节
	Target string // anchor date of the holiday period, YYYY-MM-DD
}

// Provider answers holiday/workday questions for a specific date
type Provider interface {
	// IsHoliday reports whether the date is a designated rest day
	IsHoliday(date time.Time) bool

	// IsWorkday reports whether the date is a working day, including
	// compensatory weekend workdays
	IsWorkday(date time.Time) bool

	// Detail returns the holiday description for a designated day.
	// ok is false for ordinary days.
	Detail(date time.Time) (Detail, bool)
}

// Schedule implements Provider using the lunar-go holiday table
type Schedule struct {
	logger *zap.Logger
}

// NewSchedule creates a new Schedule instance
func NewSchedule(logger *zap.Logger) *Schedule {
	return &Schedule{logger: logger}
}

// IsHoliday reports whether the date is a designated rest day.
// A table entry marked as work is a compensatory workday, not a holiday.
func (s *Schedule) IsHoliday(date time.Time) bool {
	h := HolidayUtil.GetHoliday(dateutil.FormatDate(date))
	return h != nil && !h.IsWork()
}

// IsWorkday reports whether the date is a working day. Table entries
// decide designated days in either direction; everything else falls
// back to the ordinary Monday-Friday week.
func (s *Schedule) IsWorkday(date time.Time) bool {
	if h := HolidayUtil.GetHoliday(dateutil.FormatDate(date)); h != nil {
		return h.IsWork()
	}
	return dateutil.IsWeekday(date)
}

// Detail returns the holiday description for a designated day
func (s *Schedule) Detail(date time.Time) (Detail, bool) {
	h := HolidayUtil.GetHoliday(dateutil.FormatDate(date))
	if h == nil {
		return Detail{}, false
	}
	s.logger.Debug("Holiday table hit",
		zap.String("date", dateutil.FormatDate(date)),
		zap.String("name", h.GetName()),
		zap.Bool("work", h.IsWork()))
	return Detail{
		Name:   h.GetName(),
		Target: h.GetTarget(),
	}, true
}
