package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/meltforce/momentum/internal/models"
)

func (c *Client) CreateWorkout(ctx context.Context, w models.Workout) (models.Workout, error) {
	var out models.Workout
	if err := c.do(ctx, http.MethodPost, "/workouts", nil, w.Request(), &out); err != nil {
		return models.Workout{}, err
	}
	out.Normalize()
	return out, nil
}

func (c *Client) GetWorkout(ctx context.Context, id string) (models.Workout, error) {
	var out models.Workout
	if err := c.get(ctx, "/workouts/"+url.PathEscape(id), nil, &out); err != nil {
		return models.Workout{}, err
	}
	out.Normalize()
	return out, nil
}

// ListWorkoutsByDateRange returns the workouts dated start..end inclusive.
func (c *Client) ListWorkoutsByDateRange(ctx context.Context, start, end models.Date) ([]models.Workout, error) {
	params := url.Values{}
	params.Set("startDate", start.String())
	params.Set("endDate", end.String())

	var out []models.Workout
	if err := c.get(ctx, "/workouts/date-range", params, &out); err != nil {
		return nil, err
	}
	normalize(out)
	return out, nil
}

func (c *Client) ListWorkoutsByDayOfWeek(ctx context.Context, day models.DayOfWeek) ([]models.Workout, error) {
	var out []models.Workout
	if err := c.get(ctx, "/workouts/day/"+url.PathEscape(string(day)), nil, &out); err != nil {
		return nil, err
	}
	normalize(out)
	return out, nil
}

func (c *Client) UpdateWorkout(ctx context.Context, id string, w models.Workout) (models.Workout, error) {
	var out models.Workout
	if err := c.do(ctx, http.MethodPut, "/workouts/"+url.PathEscape(id), nil, w.Request(), &out); err != nil {
		return models.Workout{}, err
	}
	out.Normalize()
	return out, nil
}

func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/workouts/"+url.PathEscape(id), nil, nil, nil)
}

// WorkoutVolume returns the volume recorded for one exercise on one day.
// A day without that exercise is 0.
func (c *Client) WorkoutVolume(ctx context.Context, exerciseID string, date models.Date) (float64, error) {
	params := url.Values{}
	params.Set("exerciseId", exerciseID)
	params.Set("date", date.String())

	var out struct {
		Volume float64 `json:"volume"`
	}
	if err := c.get(ctx, "/workouts/volume", params, &out); err != nil {
		return 0, err
	}
	return out.Volume, nil
}

// CopyWorkout duplicates a workout onto targetDate.
func (c *Client) CopyWorkout(ctx context.Context, id string, targetDate models.Date) (models.Workout, error) {
	params := url.Values{}
	params.Set("targetDate", targetDate.String())

	var out models.Workout
	if err := c.do(ctx, http.MethodPost, "/workouts/"+url.PathEscape(id)+"/copy", params, nil, &out); err != nil {
		return models.Workout{}, err
	}
	out.Normalize()
	return out, nil
}

// PreviousWorkout returns the latest workout on day that is dated before
// beforeDate.
func (c *Client) PreviousWorkout(ctx context.Context, day models.DayOfWeek, beforeDate models.Date) (models.Workout, error) {
	params := url.Values{}
	params.Set("beforeDate", beforeDate.String())

	var out models.Workout
	if err := c.get(ctx, "/workouts/previous/"+url.PathEscape(string(day)), params, &out); err != nil {
		return models.Workout{}, err
	}
	out.Normalize()
	return out, nil
}

func normalize(ws []models.Workout) {
	for i := range ws {
		ws[i].Normalize()
	}
}
