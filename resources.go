package main

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

var resCatalog = mcp.NewResource(
	"oura://catalog",
	"Tool Catalog",
	mcp.WithResourceDescription("Every available tool with its Oura API endpoint and date-window strategy"),
	mcp.WithMIMEType("application/json"),
)

// catalogResource renders the operation table so agents can discover which
// upstream endpoint and window each tool maps to.
func (h *handlers) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	type entry struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Endpoint    string `json:"endpoint"`
		Window      string `json:"window"`
	}

	entries := make([]entry, 0, len(operations))
	for _, op := range operations {
		window := "none"
		switch op.window {
		case windowToday:
			window = "today"
		case windowTrailing:
			window = "trailing_days"
		}
		entries = append(entries, entry{
			Name:        op.name,
			Description: op.description,
			Endpoint:    op.endpoint,
			Window:      window,
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
