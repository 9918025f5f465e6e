package main

import (
	"time"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "Oura Ring MCP Server"
	serverVersion = "1.0.0"
)

// NewServer creates an MCP server with every catalog tool and resource
// registered. Tool handlers share only the immutable client and clock, so
// concurrent invocations need no locking.
func NewServer(client *OuraClient) *server.MCPServer {
	return newServer(client, time.Now)
}

// newServer is the injectable-clock variant used by tests.
func newServer(client *OuraClient, now func() time.Time) *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Oura Ring health data server. Query sleep, readiness, activity, stress, resilience, workouts, and VO2 max data for the current day or as multi-day trends."),
	)

	h := &handlers{client: client, now: now}

	tools := make([]server.ServerTool, 0, len(operations))
	for _, op := range operations {
		tools = append(tools, server.ServerTool{Tool: op.tool(), Handler: h.handle(op)})
	}
	s.AddTools(tools...)

	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalogResource},
	)

	return s
}
