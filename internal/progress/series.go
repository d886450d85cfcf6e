package progress

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/meltforce/momentum/internal/models"
	"github.com/meltforce/momentum/internal/volume"
)

// ExerciseProgress holds both charts of the progress page for one exercise.
type ExerciseProgress struct {
	ExerciseID string                   `json:"exercise_id"`
	From       models.Date              `json:"from"`
	To         models.Date              `json:"to"`
	Strategy   Strategy                 `json:"strategy"`
	Daily      []models.VolumeDataPoint `json:"daily"`
	Monthly    []models.MonthlyVolume   `json:"monthly"` // oldest first

	// Last is the most recent day in Daily, nil when the window has none.
	Last *models.VolumeDataPoint `json:"last,omitempty"`
}

// window is the daily range and month list covered for reference day ref.
func (s *Service) window(ref models.Date) (days []models.Date, months []models.MonthKey) {
	days = volume.DaysBetween(ref.AddDays(-s.opts.DailyDays), ref)
	months = volume.LastMonths(ref, s.opts.Months)
	return days, months
}

// ExerciseProgress builds the daily series (days with no volume left out) and
// the monthly rollup (every month present, oldest first) for exerciseID.
func (s *Service) ExerciseProgress(ctx context.Context, exerciseID string, ref models.Date) (ExerciseProgress, error) {
	days, months := s.window(ref)
	out := ExerciseProgress{
		ExerciseID: exerciseID,
		From:       days[0],
		To:         ref,
		Strategy:   s.opts.Strategy,
	}

	var err error
	switch s.opts.Strategy {
	case StrategyPerDay:
		out.Daily, err = s.dailyPerDay(ctx, exerciseID, days)
		if err != nil {
			return ExerciseProgress{}, err
		}
		out.Monthly, err = s.monthlyPerMonth(ctx, exerciseID, months)
	default:
		out.Daily, out.Monthly, err = s.fromRange(ctx, exerciseID, days, months)
	}
	if err != nil {
		return ExerciseProgress{}, err
	}
	if n := len(out.Daily); n > 0 {
		last := out.Daily[n-1]
		out.Last = &last
	}
	return out, nil
}

// fromRange covers both charts with one date-range call.
func (s *Service) fromRange(ctx context.Context, exerciseID string, days []models.Date, months []models.MonthKey) ([]models.VolumeDataPoint, []models.MonthlyVolume, error) {
	start := days[0]
	if first := months[len(months)-1].Start(); first.Before(start) {
		start = first
	}
	end := months[0].End()
	if last := days[len(days)-1]; last.After(end) {
		end = last
	}

	workouts, err := s.src.ListWorkoutsByDateRange(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching workouts %s..%s: %w", start, end, err)
	}
	s.log.Debug("progress range fetched", "exercise", exerciseID, "start", start.String(), "end", end.String(), "workouts", len(workouts))

	daily := volume.BuildDailySeries(volume.GroupByDate(workouts), exerciseID, days)
	monthly := volume.BuildMonthlySeries(volume.GroupByMonth(workouts), exerciseID, months, true)
	return daily, volume.Reverse(monthly), nil
}

// dailyPerDay asks for each day's volume concurrently. A failed day is logged
// and counted as 0, so it drops out of the series like a rest day.
func (s *Service) dailyPerDay(ctx context.Context, exerciseID string, days []models.Date) ([]models.VolumeDataPoint, error) {
	volumes := make([]float64, len(days))

	var g errgroup.Group
	g.SetLimit(s.opts.FanoutLimit)
	for i, d := range days {
		g.Go(func() error {
			v, err := s.src.WorkoutVolume(ctx, exerciseID, d)
			if err != nil {
				s.log.Warn("day volume unavailable, counting as zero", "exercise", exerciseID, "date", d.String(), "error", err)
				return nil
			}
			volumes[i] = v
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var series []models.VolumeDataPoint
	for i, d := range days {
		if volumes[i] == 0 {
			continue
		}
		series = append(series, models.VolumeDataPoint{Date: d, Volume: volumes[i]})
	}
	return series, nil
}

// monthlyPerMonth makes one range call per month concurrently. A failed
// month is logged and reported as 0.
func (s *Service) monthlyPerMonth(ctx context.Context, exerciseID string, months []models.MonthKey) ([]models.MonthlyVolume, error) {
	buckets := make([][]models.Workout, len(months))

	var g errgroup.Group
	g.SetLimit(s.opts.FanoutLimit)
	for i, m := range months {
		g.Go(func() error {
			ws, err := s.src.ListWorkoutsByDateRange(ctx, m.Start(), m.End())
			if err != nil {
				s.log.Warn("month workouts unavailable, counting as zero", "exercise", exerciseID, "month", string(m), "error", err)
				return nil
			}
			buckets[i] = ws
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byMonth := make(map[models.MonthKey][]models.Workout, len(months))
	for i, m := range months {
		byMonth[m] = buckets[i]
	}
	return volume.Reverse(volume.BuildMonthlySeries(byMonth, exerciseID, months, true)), nil
}
