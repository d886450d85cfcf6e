package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/momentum/internal/catalog"
	"github.com/meltforce/momentum/internal/models"
)

func (h *handlers) weeklySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	week, err := h.progress.Week(ctx, models.DateOf(h.now()))
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, week)
}

func (h *handlers) exerciseLibrary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, catalog.Sorted(exercises))
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
