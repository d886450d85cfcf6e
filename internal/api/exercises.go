package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/meltforce/momentum/internal/models"
)

// ListExercises returns the user's whole exercise library.
func (c *Client) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	var out []models.Exercise
	if err := c.get(ctx, "/exercises", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListExercisesByMuscleGroup returns the exercises tagged with group.
func (c *Client) ListExercisesByMuscleGroup(ctx context.Context, group models.MuscleGroup) ([]models.Exercise, error) {
	var out []models.Exercise
	if err := c.get(ctx, "/exercises/muscle-group/"+url.PathEscape(string(group)), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetExercise(ctx context.Context, id string) (models.Exercise, error) {
	var out models.Exercise
	if err := c.get(ctx, "/exercises/"+url.PathEscape(id), nil, &out); err != nil {
		return models.Exercise{}, err
	}
	return out, nil
}

func (c *Client) CreateExercise(ctx context.Context, e models.NewExercise) (models.Exercise, error) {
	var out models.Exercise
	if err := c.do(ctx, http.MethodPost, "/exercises", nil, e, &out); err != nil {
		return models.Exercise{}, err
	}
	return out, nil
}

// InitializeExercises asks the API to seed the default library for a new user.
func (c *Client) InitializeExercises(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/exercises/initialize", nil, nil, nil)
}
