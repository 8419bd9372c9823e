// Package date provides a day-granularity calendar date and the period
// arithmetic used by the dashboard engines (month windows, year buckets,
// rolling day series).
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// datetime layouts accepted by Parse, the date part is kept and the time of day dropped.
var datetimeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

const Day = 24 * time.Hour

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the Date of t in t's own location.
func Of(t time.Time) Date { return New(t.Date()) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Today returns the current date.
func Today() Date { return Of(time.Now()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return New(d.y, d.m+time.Month(i), d.d) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// SameMonth reports whether d and x fall in the same calendar month of the same year.
func (d Date) SameMonth(x Date) bool { return d.y == x.y && d.m == x.m }

// DaysUntil returns the number of days from d to x (negative when x is before d).
func (d Date) DaysUntil(x Date) int { return int(x.time().Sub(d.time()) / Day) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Monthly:
		return New(d.y, d.m, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		return d
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Yearly:
		return New(d.y+1, time.January, 0)
	default:
		return d
	}
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1"
// as well as ISO datetimes, in which case the time of day is dropped.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err == nil {
		return New(on.Date()), nil
	}
	for _, layout := range datetimeFormats {
		if t, err := time.Parse(layout, str); err == nil {
			return New(t.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
