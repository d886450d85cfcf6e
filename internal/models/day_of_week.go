package models

import (
	"fmt"
	"strings"
	"time"
)

// DayOfWeek is the weekday label stored alongside a workout. It is derived from
// the workout's date and never edited on its own.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// DayOfWeekOf maps a time.Weekday to its label.
func DayOfWeekOf(wd time.Weekday) DayOfWeek {
	return DayOfWeek(strings.ToUpper(wd.String()))
}

// ParseDayOfWeek accepts any casing of an English weekday name.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	d := DayOfWeek(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return d, nil
	}
	return "", fmt.Errorf("unknown day of week %q", s)
}

// Weekday maps the label back to a time.Weekday. Unknown labels map to Monday.
func (d DayOfWeek) Weekday() time.Weekday {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if DayOfWeekOf(wd) == d {
			return wd
		}
	}
	return time.Monday
}
