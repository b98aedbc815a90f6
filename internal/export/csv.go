// Package export serializes day records to a delimited text file the
// way common spreadsheet tools expect it: UTF-8 with a byte-order
// marker and Chinese column headers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/almanac"
	"github.com/diggr909-droid/chinese-calendar-tocsv/pkg/dateutil"
)

// Header is the fixed, ordered column list of the output file
var Header = []string{
	"公历日期",
	"公历年", "公历月", "公历日", "公历旬", "周数", "星期",
	"农历年", "农历月", "农历日", "是否闰月", "农历节日",
	"生肖",
	"节气",
	"是否节假日", "是否工作日", "节日名称",
}

// utf8BOM makes Excel detect the encoding instead of mangling CJK text
const utf8BOM = "\xEF\xBB\xBF"

// WriteError reports a destination that cannot be created or written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// CSVWriter writes day records as CSV rows. Single forward pass, no
// recovery: a failure mid-range leaves the file truncated and fails
// the whole run.
type CSVWriter struct {
	w    *csv.Writer
	path string
}

// NewCSVWriter writes the BOM (when requested) and the header row to w
// and returns a writer for the data rows. path is only used in error
// messages.
func NewCSVWriter(w io.Writer, path string, withBOM bool) (*CSVWriter, error) {
	if withBOM {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return nil, &WriteError{Path: path, Err: err}
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}
	return &CSVWriter{w: cw, path: path}, nil
}

// Write serializes one record as a data row
func (c *CSVWriter) Write(rec *almanac.DayRecord) error {
	row := []string{
		dateutil.FormatDate(rec.Date),
		strconv.Itoa(rec.Year),
		strconv.Itoa(rec.Month),
		strconv.Itoa(rec.Day),
		rec.Decade.String(),
		strconv.Itoa(rec.ISOWeek),
		rec.Weekday,
		strconv.Itoa(rec.LunarYear),
		strconv.Itoa(rec.LunarMonth),
		strconv.Itoa(rec.LunarDay),
		yesNo(rec.LeapMonth),
		rec.Festivals,
		rec.Zodiac,
		rec.SolarTerm,
		yesNo(rec.Holiday),
		yesNo(rec.Workday),
		rec.HolidayName,
	}
	if err := c.w.Write(row); err != nil {
		return &WriteError{Path: c.path, Err: err}
	}
	return nil
}

// Flush flushes buffered rows and reports any deferred write error
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return &WriteError{Path: c.path, Err: err}
	}
	return nil
}

// yesNo renders a boolean as 是/否
func yesNo(b bool) string {
	if b {
		return "是"
	}
	return "否"
}

// CreateFile creates the destination file, making parent directories
// as needed. The caller owns closing the returned file.
func CreateFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &WriteError{Path: path, Err: err}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}
	return f, nil
}

// DefaultPath derives the output file name from the date range:
// <dir>/<start-no-dashes>-<end-no-dashes>_chinese_calendar.csv
func DefaultPath(dir string, start, end time.Time) string {
	name := fmt.Sprintf("%s-%s_chinese_calendar.csv",
		strings.ReplaceAll(dateutil.FormatDate(start), "-", ""),
		strings.ReplaceAll(dateutil.FormatDate(end), "-", ""))
	return filepath.Join(dir, name)
}
