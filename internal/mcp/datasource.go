package mcp

import (
	"context"

	"github.com/meltforce/momentum/internal/api"
	"github.com/meltforce/momentum/internal/models"
	"github.com/meltforce/momentum/internal/progress"
)

// DataSource abstracts the workout API for MCP tools. *api.Client satisfies
// it; tests use an in-memory fake.
type DataSource interface {
	progress.Source
	ListExercisesByMuscleGroup(ctx context.Context, group models.MuscleGroup) ([]models.Exercise, error)
	ListTemplates(ctx context.Context) ([]models.Template, error)
	ListSystemTemplates(ctx context.Context) ([]models.Template, error)
	ListCustomTemplates(ctx context.Context) ([]models.Template, error)
}

// Compile-time check: *api.Client satisfies DataSource.
var _ DataSource = (*api.Client)(nil)
