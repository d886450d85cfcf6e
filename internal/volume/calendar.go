package volume

import (
	"time"

	"github.com/meltforce/momentum/internal/models"
)

// WeeklyBounds returns the inclusive 7-day range containing ref, starting on
// weekStartsOn. The dashboard uses time.Monday.
func WeeklyBounds(ref models.Date, weekStartsOn time.Weekday) (start, end models.Date) {
	offset := (int(ref.Weekday()) - int(weekStartsOn) + 7) % 7
	start = ref.AddDays(-offset)
	return start, start.AddDays(6)
}

// DaysBetween lists every day from start to end inclusive, ascending.
// It returns nil when end is before start.
func DaysBetween(start, end models.Date) []models.Date {
	if end.Before(start) {
		return nil
	}
	var days []models.Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// LastMonths returns the n months ending with ref's month, newest first.
func LastMonths(ref models.Date, n int) []models.MonthKey {
	if n <= 0 {
		return nil
	}
	months := make([]models.MonthKey, 0, n)
	m := ref.MonthKey()
	for range n {
		months = append(months, m)
		m = m.Prev()
	}
	return months
}

// Reverse returns a reversed copy of s.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// GroupByDate buckets workouts by calendar day. Workouts keep their input
// order within a bucket.
func GroupByDate(workouts []models.Workout) map[models.Date][]models.Workout {
	byDate := make(map[models.Date][]models.Workout)
	for _, w := range workouts {
		byDate[w.Date] = append(byDate[w.Date], w)
	}
	return byDate
}

// GroupByMonth buckets workouts by the month of their date.
func GroupByMonth(workouts []models.Workout) map[models.MonthKey][]models.Workout {
	byMonth := make(map[models.MonthKey][]models.Workout)
	for _, w := range workouts {
		m := w.Date.MonthKey()
		byMonth[m] = append(byMonth[m], w)
	}
	return byMonth
}

// InRange keeps the workouts dated between start and end inclusive.
func InRange(workouts []models.Workout, start, end models.Date) []models.Workout {
	var out []models.Workout
	for _, w := range workouts {
		if w.Date.Before(start) || w.Date.After(end) {
			continue
		}
		out = append(out, w)
	}
	return out
}
