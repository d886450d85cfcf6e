// Package progress fetches workouts from the API and feeds them through the
// volume engine to build the dashboard, progress and month views.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/meltforce/momentum/internal/config"
	"github.com/meltforce/momentum/internal/models"
	"github.com/meltforce/momentum/internal/volume"
)

// Strategy selects how per-exercise series are fetched.
type Strategy string

const (
	// StrategyRange makes one date-range call and buckets client-side.
	StrategyRange Strategy = "range"
	// StrategyPerDay asks the API for each day's volume separately.
	StrategyPerDay Strategy = "per-day"
)

// ParseStrategy validates a strategy name. Empty means StrategyRange.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyRange:
		return StrategyRange, nil
	case StrategyPerDay:
		return StrategyPerDay, nil
	}
	return "", fmt.Errorf("unknown progress strategy %q (want %q or %q)", s, StrategyRange, StrategyPerDay)
}

// Source is the part of the workout API the service reads from.
type Source interface {
	ListWorkoutsByDateRange(ctx context.Context, start, end models.Date) ([]models.Workout, error)
	WorkoutVolume(ctx context.Context, exerciseID string, date models.Date) (float64, error)
	ListExercises(ctx context.Context) ([]models.Exercise, error)
}

// Options tune the service. Zero fields take the defaults below.
type Options struct {
	Strategy     Strategy
	DailyDays    int          // days before the reference day covered by the daily series
	Months       int          // months in the monthly rollup, including the current one
	FanoutLimit  int          // concurrent calls in the per-day strategy
	WeekStartsOn time.Weekday // zero is Sunday; OptionsFromConfig defaults to Monday
}

const (
	DefaultDailyDays   = 30
	DefaultMonths      = 3
	DefaultFanoutLimit = 8
)

// OptionsFromConfig builds Options from the progress section of the config,
// including its week start (Monday unless configured otherwise).
func OptionsFromConfig(c config.ProgressConfig) (Options, error) {
	strategy, err := ParseStrategy(c.Strategy)
	if err != nil {
		return Options{}, err
	}
	weekStart, err := c.Weekday()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Strategy:     strategy,
		DailyDays:    c.DailyDays,
		Months:       c.Months,
		FanoutLimit:  c.FanoutLimit,
		WeekStartsOn: weekStart,
	}, nil
}

func (o Options) withDefaults() Options {
	if o.Strategy == "" {
		o.Strategy = StrategyRange
	}
	if o.DailyDays <= 0 {
		o.DailyDays = DefaultDailyDays
	}
	if o.Months <= 0 {
		o.Months = DefaultMonths
	}
	if o.FanoutLimit <= 0 {
		o.FanoutLimit = DefaultFanoutLimit
	}
	return o
}

// Service builds progress views. It holds no per-request state and is safe
// for concurrent use.
type Service struct {
	src  Source
	opts Options
	log  *slog.Logger
}

// NewService creates a Service reading from src.
func NewService(src Source, opts Options, log *slog.Logger) *Service {
	return &Service{src: src, opts: opts.withDefaults(), log: log}
}

// Options returns the effective options.
func (s *Service) Options() Options {
	return s.opts
}

// WorkoutSummary is one row of a workout list.
type WorkoutSummary struct {
	ID          string           `json:"id"`
	Date        models.Date      `json:"date"`
	DayOfWeek   models.DayOfWeek `json:"day_of_week"`
	Exercises   int              `json:"exercises"`
	Sets        int              `json:"sets"`
	Volume      float64          `json:"volume"`
	VolumeLabel string           `json:"volume_label"`
}

// Summaries turns workouts into list rows sorted by date, oldest first.
// Workouts on the same day keep their input order.
func Summaries(workouts []models.Workout) []WorkoutSummary {
	rows := make([]WorkoutSummary, 0, len(workouts))
	for _, w := range workouts {
		v := volume.WorkoutVolume(w)
		rows = append(rows, WorkoutSummary{
			ID:          w.ID,
			Date:        w.Date,
			DayOfWeek:   w.Date.DayOfWeek(),
			Exercises:   len(w.Exercises),
			Sets:        volume.TotalSets([]models.Workout{w}),
			Volume:      v,
			VolumeLabel: volume.FormatPounds(v),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}

// Week is the dashboard view of one week.
type Week struct {
	Start       models.Date        `json:"start"`
	End         models.Date        `json:"end"`
	Summary     volume.WeekSummary `json:"summary"`
	VolumeLabel string             `json:"volume_label"`
	Workouts    []WorkoutSummary   `json:"workouts"`
}

// Week fetches the week containing ref and summarizes it.
func (s *Service) Week(ctx context.Context, ref models.Date) (Week, error) {
	start, end := volume.WeeklyBounds(ref, s.opts.WeekStartsOn)
	workouts, err := s.src.ListWorkoutsByDateRange(ctx, start, end)
	if err != nil {
		return Week{}, fmt.Errorf("fetching week of %s: %w", start, err)
	}
	workouts = volume.InRange(workouts, start, end)

	sum := volume.Summarize(workouts)
	return Week{
		Start:       start,
		End:         end,
		Summary:     sum,
		VolumeLabel: volume.FormatPounds(sum.Volume),
		Workouts:    Summaries(workouts),
	}, nil
}

// Month returns the workouts of one calendar month as list rows.
func (s *Service) Month(ctx context.Context, month models.MonthKey) ([]WorkoutSummary, error) {
	workouts, err := s.src.ListWorkoutsByDateRange(ctx, month.Start(), month.End())
	if err != nil {
		return nil, fmt.Errorf("fetching workouts for %s: %w", month, err)
	}
	return Summaries(volume.InRange(workouts, month.Start(), month.End())), nil
}

// Stats is the training stats card: heaviest sets and where the work went.
type Stats struct {
	From            models.Date               `json:"from"`
	To              models.Date               `json:"to"`
	PersonalRecords []volume.PersonalRecord   `json:"personal_records"`
	MuscleGroups    []volume.MuscleGroupCount `json:"muscle_groups"`
	MostTrained     models.MuscleGroup        `json:"most_trained,omitempty"`
}

// Stats covers the configured number of months up to ref.
func (s *Service) Stats(ctx context.Context, ref models.Date) (Stats, error) {
	months := volume.LastMonths(ref, s.opts.Months)
	from := months[len(months)-1].Start()

	workouts, err := s.src.ListWorkoutsByDateRange(ctx, from, ref)
	if err != nil {
		return Stats{}, fmt.Errorf("fetching workouts since %s: %w", from, err)
	}
	exercises, err := s.src.ListExercises(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("fetching exercises: %w", err)
	}

	counts := volume.MuscleGroupCounts(workouts, exercises)
	top, _ := volume.MostTrained(counts)
	return Stats{
		From:            from,
		To:              ref,
		PersonalRecords: volume.PersonalRecords(workouts),
		MuscleGroups:    counts,
		MostTrained:     top,
	}, nil
}

// Dashboard is the landing view.
type Dashboard struct {
	Week  Week  `json:"week"`
	Stats Stats `json:"stats"`
}

// Dashboard combines Week and Stats for ref.
func (s *Service) Dashboard(ctx context.Context, ref models.Date) (Dashboard, error) {
	week, err := s.Week(ctx, ref)
	if err != nil {
		return Dashboard{}, err
	}
	stats, err := s.Stats(ctx, ref)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{Week: week, Stats: stats}, nil
}
