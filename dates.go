package main

import "time"

// dateLayout is the calendar-date format the Oura API expects for
// start_date/end_date query parameters.
const dateLayout = "2006-01-02"

// DateWindow is the (start, end) date pair scoping an upstream query.
// Either field may be empty, in which case the corresponding query
// parameter is omitted from the request entirely.
type DateWindow struct {
	Start string
	End   string
}

// today returns the local calendar date of now in YYYY-MM-DD format.
func today(now time.Time) string {
	return now.Format(dateLayout)
}

// daysAgo returns the local calendar date exactly n days before now.
func daysAgo(now time.Time, n int) string {
	return now.AddDate(0, 0, -n).Format(dateLayout)
}

// todayWindow builds the single-day window used by current-day tools.
func todayWindow(now time.Time) DateWindow {
	d := today(now)
	return DateWindow{Start: d, End: d}
}

// trailingWindow builds the backward-looking window used by trend tools:
// from days before now through today.
func trailingWindow(now time.Time, days int) DateWindow {
	return DateWindow{Start: daysAgo(now, days), End: today(now)}
}
