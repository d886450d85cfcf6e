package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/momentum/internal/catalog"
	"github.com/meltforce/momentum/internal/models"
	"github.com/meltforce/momentum/internal/progress"
)

// dateOrToday parses a YYYY-MM-DD argument, defaulting to today.
func (h *handlers) dateOrToday(s string) (models.Date, error) {
	if s == "" {
		return models.DateOf(h.now()), nil
	}
	return models.ParseDate(s)
}

// defaultDateRange returns start/end defaulting to the 7 days ending today.
func (h *handlers) defaultDateRange(startStr, endStr string) (models.Date, models.Date, error) {
	end, err := h.dateOrToday(endStr)
	if err != nil {
		return models.Date{}, models.Date{}, err
	}
	start := end.AddDays(-6)
	if startStr != "" {
		start, err = models.ParseDate(startStr)
		if err != nil {
			return models.Date{}, models.Date{}, err
		}
	}
	if end.Before(start) {
		return models.Date{}, models.Date{}, fmt.Errorf("end %s is before start %s", end, start)
	}
	return start, end, nil
}

// --- Tool definitions ---

var toolGetWeeklySummary = mcp.NewTool("get_weekly_summary",
	mcp.WithDescription("Total volume, set count and workout count for the week containing a date, plus a summary row per workout."),
	mcp.WithString("date", mcp.Description("Any day in the week (YYYY-MM-DD). Defaults to today.")),
)

var toolGetExerciseProgress = mcp.NewTool("get_exercise_progress",
	mcp.WithDescription("Volume progress for one exercise: a daily series over the last days and a monthly rollup, oldest month first. Days without training are omitted from the daily series; months without training report 0."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise id or exact name (case-insensitive, e.g. 'bench press')")),
	mcp.WithString("date", mcp.Description("Reference day (YYYY-MM-DD). Defaults to today.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List exercises in the user's library, optionally filtered by muscle group and a search term over name and description."),
	mcp.WithString("muscle_group", mcp.Description("Muscle group filter. Defaults to all."),
		mcp.Enum("ALL", "CHEST", "BACK", "SHOULDERS", "ARMS", "LEGS", "CORE", "FULL_BODY", "CARDIO", "OTHER")),
	mcp.WithString("query", mcp.Description("Case-insensitive search term")),
)

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Workouts logged between two dates, inclusive. Returns one summary row per workout with exercise, set and volume totals."),
	mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD). Defaults to 6 days before end.")),
	mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD). Defaults to today.")),
	mcp.WithBoolean("include_sets", mcp.Description("Return the full workouts with every set instead of summary rows.")),
)

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List workout templates with their days and recommended sets and reps."),
	mcp.WithString("type", mcp.Description("Template type filter. Defaults to all."), mcp.Enum("all", "system", "custom")),
)

// --- Tool handlers ---

func (h *handlers) getWeeklySummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := h.dateOrToday(req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	week, err := h.progress.Week(ctx, ref)
	if err != nil {
		h.log.Error("mcp get_weekly_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(week)
}

func (h *handlers) getExerciseProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ref, err := h.dateOrToday(req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		h.log.Error("mcp get_exercise_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	lib := catalog.NewLibrary(exercises)
	ex, ok := lib.Get(name)
	if !ok {
		ex, ok = lib.MatchName(name)
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no exercise named %q in the library", name)), nil
	}

	p, err := h.progress.ExerciseProgress(ctx, ex.ID, ref)
	if err != nil {
		h.log.Error("mcp get_exercise_progress", "exercise", ex.ID, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(struct {
		Name string `json:"name"`
		progress.ExerciseProgress
	}{ex.Name, p})
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	group, err := catalog.ParseTab(req.GetString("muscle_group", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var exercises []models.Exercise
	if group == "" {
		exercises, err = h.ds.ListExercises(ctx)
	} else {
		exercises, err = h.ds.ListExercisesByMuscleGroup(ctx, group)
	}
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(catalog.Filter(catalog.Sorted(exercises), group, req.GetString("query", "")))
}

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := h.defaultDateRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date range: " + err.Error()), nil
	}

	workouts, err := h.ds.ListWorkoutsByDateRange(ctx, start, end)
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if req.GetBool("include_sets", false) {
		return jsonResult(workouts)
	}
	return jsonResult(progress.Summaries(workouts))
}

func (h *handlers) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var (
		list []models.Template
		err  error
	)
	switch kind := req.GetString("type", "all"); kind {
	case "", "all":
		list, err = h.ds.ListTemplates(ctx)
	case "system":
		list, err = h.ds.ListSystemTemplates(ctx)
	case "custom":
		list, err = h.ds.ListCustomTemplates(ctx)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown template type %q", kind)), nil
	}
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(list)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
