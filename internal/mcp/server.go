package mcp

import (
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/momentum/internal/progress"
)

// New creates an MCP server with all tools and resources registered. svc must
// read from ds.
func New(ds DataSource, svc *progress.Service, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Momentum", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Momentum workout tracker. Query weekly training summaries, per-exercise volume progress, the exercise library, logged workouts and workout templates. Volume is reps x weight in pounds."),
	)

	h := newHandlers(ds, svc, log)

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWeeklySummary, Handler: h.getWeeklySummary},
		server.ServerTool{Tool: toolGetExerciseProgress, Handler: h.getExerciseProgress},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeeklySummary, Handler: h.weeklySummary},
		server.ServerResource{Resource: resExerciseLibrary, Handler: h.exerciseLibrary},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds       DataSource
	progress *progress.Service
	log      *slog.Logger
	now      func() time.Time
}

func newHandlers(ds DataSource, svc *progress.Service, log *slog.Logger) *handlers {
	return &handlers{ds: ds, progress: svc, log: log, now: time.Now}
}

// --- Resource definitions ---

var resWeeklySummary = mcp.NewResource(
	"momentum://weekly_summary",
	"Weekly Summary",
	mcp.WithResourceDescription("Volume, set and workout totals for the current week, with each workout listed"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseLibrary = mcp.NewResource(
	"momentum://exercise_library",
	"Exercise Library",
	mcp.WithResourceDescription("All exercises in the user's library with muscle groups"),
	mcp.WithMIMEType("application/json"),
)
