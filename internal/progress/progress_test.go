package progress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/meltforce/momentum/internal/config"
	"github.com/meltforce/momentum/internal/models"
	"github.com/meltforce/momentum/internal/volume"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks from the fan-out.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSource struct {
	workouts  []models.Workout
	exercises []models.Exercise

	rangeErr   error
	failDays   map[models.Date]bool
	failMonths map[models.MonthKey]bool
	delay      time.Duration

	mu          sync.Mutex
	rangeCalls  int
	volumeCalls int
	inflight    int
	maxInflight int
}

func (f *fakeSource) enter() {
	f.mu.Lock()
	f.inflight++
	if f.inflight > f.maxInflight {
		f.maxInflight = f.inflight
	}
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
}

func (f *fakeSource) leave() {
	f.mu.Lock()
	f.inflight--
	f.mu.Unlock()
}

func (f *fakeSource) ListWorkoutsByDateRange(ctx context.Context, start, end models.Date) ([]models.Workout, error) {
	f.enter()
	defer f.leave()
	f.mu.Lock()
	f.rangeCalls++
	f.mu.Unlock()

	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	if f.failMonths[start.MonthKey()] {
		return nil, fmt.Errorf("month %s unavailable", start.MonthKey())
	}
	return volume.InRange(f.workouts, start, end), nil
}

func (f *fakeSource) WorkoutVolume(ctx context.Context, exerciseID string, date models.Date) (float64, error) {
	f.enter()
	defer f.leave()
	f.mu.Lock()
	f.volumeCalls++
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if f.failDays[date] {
		return 0, errors.New("upstream timeout")
	}
	var v float64
	for _, we := range volume.FilterByExercise(volume.GroupByDate(f.workouts)[date], exerciseID) {
		v += volume.ExerciseVolume(we)
	}
	return v, nil
}

func (f *fakeSource) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return f.exercises, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bench(sets ...models.Set) []models.WorkoutExercise {
	return []models.WorkoutExercise{{ExerciseID: "bench", Sets: sets}}
}

// scenarioSource holds the two-day bench example.
func scenarioSource() *fakeSource {
	return &fakeSource{
		workouts: []models.Workout{
			models.NewWorkout(models.MustDate("2024-01-01"), bench(models.Set{Reps: 5, Weight: 100}, models.Set{Reps: 5, Weight: 100})),
			models.NewWorkout(models.MustDate("2024-01-02"), bench(models.Set{Reps: 5, Weight: 110})),
		},
		exercises: []models.Exercise{{ID: "bench", Name: "Bench Press", MuscleGroup: models.MuscleGroupChest}},
	}
}

// ref and opts put 2024-01-01 at the start of the daily window and cover
// January and February in the monthly rollup.
var (
	ref  = models.MustDate("2024-02-15")
	opts = Options{DailyDays: 45, Months: 2, WeekStartsOn: time.Monday}
)

var (
	wantDaily = []models.VolumeDataPoint{
		{Date: models.MustDate("2024-01-01"), Volume: 1000},
		{Date: models.MustDate("2024-01-02"), Volume: 550},
	}
	wantMonthly = []models.MonthlyVolume{
		{Month: "2024-01", Volume: 1550},
		{Month: "2024-02", Volume: 0},
	}
)

// TestExerciseProgressRange checks both charts come from a single range call.
func TestExerciseProgressRange(t *testing.T) {
	src := scenarioSource()
	svc := NewService(src, opts, testLogger())

	got, err := svc.ExerciseProgress(context.Background(), "bench", ref)
	require.NoError(t, err)

	assert.Equal(t, 1, src.rangeCalls)
	assert.Equal(t, 0, src.volumeCalls)
	assert.Equal(t, StrategyRange, got.Strategy)
	assert.Equal(t, models.MustDate("2024-01-01"), got.From)
	assert.Equal(t, wantDaily, got.Daily)
	assert.Equal(t, wantMonthly, got.Monthly)
	require.NotNil(t, got.Last)
	assert.Equal(t, wantDaily[len(wantDaily)-1], *got.Last)
}

// TestExerciseProgressNoLastWithoutVolume checks an empty window has no last
// recorded volume.
func TestExerciseProgressNoLastWithoutVolume(t *testing.T) {
	svc := NewService(scenarioSource(), opts, testLogger())

	got, err := svc.ExerciseProgress(context.Background(), "squat", ref)
	require.NoError(t, err)

	assert.Empty(t, got.Daily)
	assert.Nil(t, got.Last)
}

// TestExerciseProgressStrategiesAgree checks the per-day fallback produces the
// same series as the range strategy.
func TestExerciseProgressStrategiesAgree(t *testing.T) {
	src := scenarioSource()
	o := opts
	o.Strategy = StrategyPerDay
	svc := NewService(src, o, testLogger())

	got, err := svc.ExerciseProgress(context.Background(), "bench", ref)
	require.NoError(t, err)

	assert.Equal(t, 46, src.volumeCalls, "one call per day in the window")
	assert.Equal(t, 2, src.rangeCalls, "one call per month")
	assert.Equal(t, wantDaily, got.Daily)
	assert.Equal(t, wantMonthly, got.Monthly)
}

// TestPerDayFailureCountsAsZero checks a failed day drops out of the series
// without failing the batch.
func TestPerDayFailureCountsAsZero(t *testing.T) {
	src := scenarioSource()
	src.failDays = map[models.Date]bool{models.MustDate("2024-01-02"): true}
	o := opts
	o.Strategy = StrategyPerDay
	svc := NewService(src, o, testLogger())

	got, err := svc.ExerciseProgress(context.Background(), "bench", ref)
	require.NoError(t, err)

	assert.Equal(t, wantDaily[:1], got.Daily)
	require.NotNil(t, got.Last)
	assert.Equal(t, wantDaily[0], *got.Last)
}

// TestPerMonthFailureCountsAsZero checks a failed month stays in the rollup
// with volume 0.
func TestPerMonthFailureCountsAsZero(t *testing.T) {
	src := scenarioSource()
	src.failMonths = map[models.MonthKey]bool{"2024-01": true}
	o := opts
	o.Strategy = StrategyPerDay
	svc := NewService(src, o, testLogger())

	got, err := svc.ExerciseProgress(context.Background(), "bench", ref)
	require.NoError(t, err)

	assert.Equal(t, []models.MonthlyVolume{{Month: "2024-01"}, {Month: "2024-02"}}, got.Monthly)
}

// TestRangeFailureIsError checks the single range call is not silently zeroed.
func TestRangeFailureIsError(t *testing.T) {
	src := scenarioSource()
	src.rangeErr = errors.New("connection refused")
	svc := NewService(src, opts, testLogger())

	_, err := svc.ExerciseProgress(context.Background(), "bench", ref)
	require.Error(t, err)
	assert.ErrorIs(t, err, src.rangeErr)
}

// TestFanoutLimit checks the per-day strategy never exceeds its worker limit.
func TestFanoutLimit(t *testing.T) {
	src := scenarioSource()
	src.delay = 2 * time.Millisecond
	o := opts
	o.Strategy = StrategyPerDay
	o.FanoutLimit = 3
	svc := NewService(src, o, testLogger())

	_, err := svc.ExerciseProgress(context.Background(), "bench", ref)
	require.NoError(t, err)

	assert.LessOrEqual(t, src.maxInflight, 3)
	assert.Greater(t, src.maxInflight, 0)
}

// TestPerDayCancelled checks a cancelled context is reported instead of an
// all-zero series.
func TestPerDayCancelled(t *testing.T) {
	src := scenarioSource()
	o := opts
	o.Strategy = StrategyPerDay
	svc := NewService(src, o, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ExerciseProgress(ctx, "bench", ref)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestWeek checks the dashboard week for a Wednesday reference day.
func TestWeek(t *testing.T) {
	src := scenarioSource()
	src.workouts = append(src.workouts, models.NewWorkout(models.MustDate("2024-01-08"), bench(models.Set{Reps: 1, Weight: 500})))
	svc := NewService(src, opts, testLogger())

	week, err := svc.Week(context.Background(), models.MustDate("2024-01-03"))
	require.NoError(t, err)

	assert.Equal(t, models.MustDate("2024-01-01"), week.Start)
	assert.Equal(t, models.MustDate("2024-01-07"), week.End)
	assert.Equal(t, volume.WeekSummary{Volume: 1550, Sets: 3, Workouts: 2}, week.Summary)
	assert.Equal(t, "1,550 lbs", week.VolumeLabel)
	require.Len(t, week.Workouts, 2)
	assert.Equal(t, 1000.0, week.Workouts[0].Volume)
	assert.Equal(t, models.Monday, week.Workouts[0].DayOfWeek)
}

// TestMonthSortsByDate checks the month view is chronological.
func TestMonthSortsByDate(t *testing.T) {
	src := scenarioSource()
	src.workouts = volume.Reverse(src.workouts)
	svc := NewService(src, opts, testLogger())

	rows, err := svc.Month(context.Background(), "2024-01")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, models.MustDate("2024-01-01"), rows[0].Date)
	assert.Equal(t, "550 lbs", rows[1].VolumeLabel)
	assert.Equal(t, 1, rows[1].Sets)
}

// TestDashboardStats checks records and muscle group counts for the window.
func TestDashboardStats(t *testing.T) {
	svc := NewService(scenarioSource(), opts, testLogger())

	dash, err := svc.Dashboard(context.Background(), models.MustDate("2024-01-03"))
	require.NoError(t, err)

	assert.Equal(t, models.MustDate("2023-12-01"), dash.Stats.From)
	require.Len(t, dash.Stats.PersonalRecords, 1)
	assert.Equal(t, 110.0, dash.Stats.PersonalRecords[0].Weight)
	assert.Equal(t, models.MuscleGroupChest, dash.Stats.MostTrained)
	assert.Equal(t, 2, dash.Week.Summary.Workouts)
}

// TestParseStrategy checks accepted names and the default.
func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{"": StrategyRange, "range": StrategyRange, "per-day": StrategyPerDay} {
		got, err := ParseStrategy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseStrategy("sometimes")
	assert.Error(t, err)
}

// TestConfiguredWeekStartsMonday checks the options the binaries build from
// the default config put a Wednesday in a Monday-to-Sunday week.
func TestConfiguredWeekStartsMonday(t *testing.T) {
	o, err := OptionsFromConfig(config.Default().Progress)
	require.NoError(t, err)

	svc := NewService(scenarioSource(), o, testLogger())
	week, err := svc.Week(context.Background(), models.MustDate("2024-01-03"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", week.Start.String())
	assert.Equal(t, "2024-01-07", week.End.String())
	assert.Equal(t, 2, week.Summary.Workouts)
}
