package almanac

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/holiday"
	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/lunar"
	"github.com/diggr909-droid/chinese-calendar-tocsv/pkg/dateutil"
)

// DefaultFestivalSeparator joins festival names in the output
const DefaultFestivalSeparator = ", "

// Generator produces one DayRecord per calendar day in a range
type Generator struct {
	lunar     lunar.Provider
	holidays  holiday.Provider
	separator string
	logger    *zap.Logger
}

// NewGenerator creates a Generator on top of the given providers.
// An empty separator falls back to DefaultFestivalSeparator.
func NewGenerator(lunarProvider lunar.Provider, holidayProvider holiday.Provider, separator string, logger *zap.Logger) *Generator {
	if separator == "" {
		separator = DefaultFestivalSeparator
	}
	return &Generator{
		lunar:     lunarProvider,
		holidays:  holidayProvider,
		separator: separator,
		logger:    logger,
	}
}

// EachDay walks [start, end] inclusive in ascending order and calls fn
// once per day with that day's record. The walk is lazy and restartable:
// every call starts from scratch, no state survives between calls. A
// non-nil error from fn aborts the walk and is returned unchanged.
func (g *Generator) EachDay(start, end time.Time, fn func(*DayRecord) error) error {
	start = dateutil.StartOfDay(start)
	end = dateutil.StartOfDay(end)

	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		rec, err := g.buildRecord(cur)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// buildRecord assembles the record for a single day. Provider panics
// (lunar-go panics on dates outside its tables rather than returning
// errors) are recovered and reported as plain errors.
func (g *Generator) buildRecord(date time.Time) (rec *DayRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("Calendar provider failed",
				zap.String("date", dateutil.FormatDate(date)),
				zap.Any("panic", r))
			rec = nil
			err = fmt.Errorf("calendar lookup failed for %s: %v", dateutil.FormatDate(date), r)
		}
	}()

	_, week := dateutil.GetWeekNumber(date)

	rec = &DayRecord{
		Date:    date,
		Year:    date.Year(),
		Month:   int(date.Month()),
		Day:     date.Day(),
		Decade:  DecadeOf(date.Day()),
		ISOWeek: week,
		Weekday: WeekdayName(date),
	}

	info := g.lunar.Convert(date)
	rec.LunarYear = info.Year
	rec.LunarMonth = info.Month
	rec.LunarDay = info.Day
	rec.LeapMonth = info.LeapMonth
	rec.Zodiac = info.Zodiac
	rec.SolarTerm = info.SolarTerm
	rec.Festivals = g.joinFestivals(info)

	// A designated holiday is never a workday, so skip the second
	// lookup in that case. The converse does not hold: a non-holiday
	// day still has to be queried, it may be a weekend.
	if g.holidays.IsHoliday(date) {
		rec.Holiday = true
		rec.Workday = false
		if detail, ok := g.holidays.Detail(date); ok {
			rec.HolidayName = detail.Name
		}
	} else {
		rec.Workday = g.holidays.IsWorkday(date)
	}

	return rec, nil
}

// joinFestivals merges traditional festivals first, then folk ones
func (g *Generator) joinFestivals(info *lunar.DayInfo) string {
	if len(info.Festivals) == 0 && len(info.FolkFestivals) == 0 {
		return ""
	}
	all := make([]string, 0, len(info.Festivals)+len(info.FolkFestivals))
	all = append(all, info.Festivals...)
	all = append(all, info.FolkFestivals...)
	return strings.Join(all, g.separator)
}
