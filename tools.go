package main

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// defaultTrendDays is the trailing window length trend tools use when the
// caller does not pass a days argument.
const defaultTrendDays = 30

// windowKind selects how a tool builds its date window.
type windowKind int

const (
	// windowNone sends no date parameters at all.
	windowNone windowKind = iota
	// windowToday queries a single day: start_date = end_date = today.
	windowToday
	// windowTrailing queries the last N days through today, N coming from
	// the optional days argument.
	windowTrailing
)

// operation is one row of the tool catalog: a fixed endpoint, a date-window
// strategy and a post-processing rule. The catalog is defined once at
// startup and immutable afterwards.
type operation struct {
	name        string
	description string
	endpoint    string
	window      windowKind

	// latestOnly extracts the last element of the returned data collection,
	// which the API orders most-recent-last. Workouts are the exception: a
	// day can hold several sessions, so the full collection comes back.
	latestOnly bool
}

var operations = []operation{
	// Current data (today).
	{
		name:        "get_sleep_last_night",
		description: "Get last night's sleep data including duration, sleep stages (deep/light/REM), sleep score, heart rate, and HRV",
		endpoint:    "sleep",
		window:      windowToday,
		latestOnly:  true,
	},
	{
		name:        "get_readiness_today",
		description: "Get today's readiness score and contributors (HRV balance, sleep balance, recovery, activity balance, temperature, heart rate)",
		endpoint:    "daily_readiness",
		window:      windowToday,
		latestOnly:  true,
	},
	{
		name:        "get_activity_today",
		description: "Get today's activity data including steps, calories, activity breakdown (high/medium/low), and MET minutes",
		endpoint:    "daily_activity",
		window:      windowToday,
		latestOnly:  true,
	},
	{
		name:        "get_daily_stress",
		description: "Get today's stress and recovery data including stress/recovery minutes and day summary (stressed/restored/mixed)",
		endpoint:    "daily_stress",
		window:      windowToday,
		latestOnly:  true,
	},
	{
		name:        "get_daily_resilience",
		description: "Get today's resilience level and contributors (sleep recovery, daytime recovery, stress) - your ability to handle stress",
		endpoint:    "daily_resilience",
		window:      windowToday,
		latestOnly:  true,
	},
	{
		name:        "get_workouts_today",
		description: "Get any workouts logged today including type, calories, duration, and intensity",
		endpoint:    "workout",
		window:      windowToday,
	},

	// Trend data (30-day baseline).
	{
		name:        "get_sleep_trends",
		description: "Get sleep data for the last 30 days to compare baseline patterns and detect anomalies",
		endpoint:    "sleep",
		window:      windowTrailing,
	},
	{
		name:        "get_readiness_trends",
		description: "Get readiness data for the last 30 days to understand readiness patterns and baselines",
		endpoint:    "daily_readiness",
		window:      windowTrailing,
	},
	{
		name:        "get_activity_trends",
		description: "Get activity data for the last 30 days to track activity patterns and progress",
		endpoint:    "daily_activity",
		window:      windowTrailing,
	},
	{
		name:        "get_stress_trends",
		description: "Get stress data for the last 30 days to identify stress patterns and trends",
		endpoint:    "daily_stress",
		window:      windowTrailing,
	},
	{
		name:        "get_resilience_trends",
		description: "Get resilience data for the last 30 days to track recovery capacity over time",
		endpoint:    "daily_resilience",
		window:      windowTrailing,
	},
	{
		// Endpoint casing is dictated by the upstream API.
		name:        "get_vo2_max_trends",
		description: "Get VO2 max (cardio capacity) trends for the last 30 days to track fitness progression",
		endpoint:    "vO2_max",
		window:      windowTrailing,
	},

	// Profile.
	{
		name:        "get_personal_info",
		description: "Get the user's personal info including age, sex, height, weight, and email",
		endpoint:    "personal_info",
		window:      windowNone,
	},
}

// handlers holds the dependencies every tool handler closes over. now is
// injectable so tests can pin the clock.
type handlers struct {
	client *OuraClient
	now    func() time.Time
}

// tool builds the MCP tool definition for one catalog row.
func (op operation) tool() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(op.description)}
	if op.window == windowTrailing {
		opts = append(opts, mcp.WithNumber("days",
			mcp.Description("Number of days to look back (default: 30)"),
		))
	}
	return mcp.NewTool(op.name, opts...)
}

// handle builds the generic tool handler for one catalog row. Every upstream
// failure is returned as an error-shaped tool result, never as a handler
// error, so the calling agent reads it as data.
func (h *handlers) handle(op operation) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var window DateWindow
		switch op.window {
		case windowToday:
			window = todayWindow(h.now())
		case windowTrailing:
			days := req.GetInt("days", defaultTrendDays)
			if days < 1 {
				return mcp.NewToolResultError("days must be a positive integer"), nil
			}
			window = trailingWindow(h.now(), days)
		}

		result, err := h.client.Fetch(ctx, op.endpoint, window)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if op.latestOnly {
			if data, ok := result["data"].([]any); ok && len(data) > 0 {
				return toolResultJSON(data[len(data)-1])
			}
		}

		return toolResultJSON(result)
	}
}

// toolResultJSON wraps a payload as a JSON tool result, falling back to an
// error-shaped result when encoding fails.
func toolResultJSON(v any) (*mcp.CallToolResult, error) {
	res, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("failed to encode response: " + err.Error()), nil
	}
	return res, nil
}
