package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar days: "2006-01-02".
const DateLayout = "2006-01-02"

// MonthLayout is the wire format for month keys: "2006-01".
const MonthLayout = "2006-01"

// Date is a calendar day. The embedded time is always midnight UTC so two Dates
// for the same day compare equal with == and work as map keys.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day in the local time zone.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a "2006-01-02" string. Full RFC 3339 timestamps are accepted
// too; only their day part is kept.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err == nil {
		return DateOf(t), nil
	}
	t, err2 := time.Parse(time.RFC3339, s)
	if err2 == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("cannot parse date %q: %w", s, err)
}

// MustDate is ParseDate for literals known to be valid. It panics otherwise.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// AddDays returns the day n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Time.After(o.Time) }

// MonthKey returns the month the day belongs to.
func (d Date) MonthKey() MonthKey {
	return MonthKey(d.Format(MonthLayout))
}

// DayOfWeek returns the upper-case weekday label for d.
func (d Date) DayOfWeek() DayOfWeek {
	return DayOfWeekOf(d.Weekday())
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MonthKey identifies a calendar month as "2006-01".
type MonthKey string

// ParseMonthKey validates a "2006-01" string.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return "", fmt.Errorf("cannot parse month %q: %w", s, err)
	}
	return MonthKey(t.Format(MonthLayout)), nil
}

// Start returns the first day of the month.
func (m MonthKey) Start() Date {
	t, err := time.Parse(MonthLayout, string(m))
	if err != nil {
		return Date{}
	}
	return DateOf(t)
}

// End returns the last day of the month (inclusive).
func (m MonthKey) End() Date {
	start := m.Start()
	if start.IsZero() {
		return Date{}
	}
	return Date{start.AddDate(0, 1, -1)}
}

// Prev returns the month before m.
func (m MonthKey) Prev() MonthKey {
	return Date{m.Start().AddDate(0, -1, 0)}.MonthKey()
}

// Label renders the month for display, e.g. "Jan 2024".
func (m MonthKey) Label() string {
	start := m.Start()
	if start.IsZero() {
		return string(m)
	}
	return start.Format("Jan 2006")
}
