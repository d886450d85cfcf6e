package models

import (
	"encoding/json"
	"testing"
	"time"
)

// TestParseDate verifies date-only and RFC 3339 inputs both collapse to the
// calendar day.
func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  Date
	}{
		{"2024-01-01", NewDate(2024, 1, 1)},
		{"2024-02-29T18:30:00Z", NewDate(2024, 2, 29)},
		{"2024-03-10T23:59:00-05:00", NewDate(2024, 3, 10)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.input)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}

	if _, err := ParseDate("01/02/2024"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

// TestDateJSON verifies dates travel as "YYYY-MM-DD" strings.
func TestDateJSON(t *testing.T) {
	d := NewDate(2024, 1, 2)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-01-02"` {
		t.Errorf("marshal = %s, want \"2024-01-02\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

// TestDateUsableAsMapKey verifies that days built different ways are equal,
// which the day-bucketing code relies on.
func TestDateUsableAsMapKey(t *testing.T) {
	m := map[Date]int{NewDate(2024, 1, 1): 1}
	parsed := MustDate("2024-01-01")
	shifted := NewDate(2023, 12, 31).AddDays(1)
	if m[parsed] != 1 || m[shifted] != 1 {
		t.Errorf("lookups failed: parsed=%d shifted=%d", m[parsed], m[shifted])
	}
}

// TestDateDayOfWeek covers the derived weekday label.
func TestDateDayOfWeek(t *testing.T) {
	if got := MustDate("2024-01-01").DayOfWeek(); got != Monday {
		t.Errorf("2024-01-01 = %s, want MONDAY", got)
	}
	if got := MustDate("2024-01-07").DayOfWeek(); got != Sunday {
		t.Errorf("2024-01-07 = %s, want SUNDAY", got)
	}
}

// TestMonthKey covers month bounds, labels and stepping back across a year.
func TestMonthKey(t *testing.T) {
	m := MustDate("2024-02-15").MonthKey()
	if m != "2024-02" {
		t.Fatalf("MonthKey = %q, want 2024-02", m)
	}
	if got := m.Start(); got != NewDate(2024, 2, 1) {
		t.Errorf("Start = %s", got)
	}
	if got := m.End(); got != NewDate(2024, 2, 29) {
		t.Errorf("End = %s, want leap day", got)
	}
	if got := m.Label(); got != "Feb 2024" {
		t.Errorf("Label = %q", got)
	}
	if got := MonthKey("2024-01").Prev(); got != "2023-12" {
		t.Errorf("Prev = %q, want 2023-12", got)
	}

	if _, err := ParseMonthKey("2024-13"); err == nil {
		t.Error("expected error for month 13")
	}
}

// TestDateOfKeepsLocalDay verifies the calendar day is taken in the time's own
// zone rather than after conversion to UTC.
func TestDateOfKeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	ts := time.Date(2024, 5, 6, 1, 0, 0, 0, loc) // still May 5 in UTC
	if got := DateOf(ts); got != NewDate(2024, 5, 6) {
		t.Errorf("DateOf = %s, want 2024-05-06", got)
	}
}
