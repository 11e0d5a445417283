package report

import (
	"context"
	"fmt"
	"io"
)

// statCounts fixes the order and labels of the count lines in the summary.
// "Tasks" labels the all view; the order is part of the output contract.
var statCounts = []struct {
	Label string
	View  string
}{
	{"Inbox", "inbox"},
	{"Today", "today"},
	{"Upcoming", "upcoming"},
	{"Next", "next"},
	{"Someday", "someday"},
	{"Completed", "completed"},
	{"Tasks", "all"},
	{"Subtasks", "subtasks"},
	{"Projects", "projects"},
	{"Repeating", "repeating"},
	{"Nextish", "nextish"},
}

// WriteStats assembles the fixed-layout summary: eleven view counts in
// order, then the oldest and farthest-scheduled tasks as (date, title)
// lines. "Farest" is the label the original tool shipped with; consumers
// parse it, so it stays.
func (e *Executor) WriteStats(ctx context.Context, w io.Writer) error {
	for _, line := range statCounts {
		view, err := Lookup(line.View)
		if err != nil {
			return err
		}
		count, err := e.Count(ctx, view)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-10s: %d\n", line.Label, count); err != nil {
			return fmt.Errorf("stat: write: %w", err)
		}
	}

	extremes := []struct {
		Label string
		View  string
	}{
		{"Oldest", "oldest"},
		{"Farest", "future"},
	}
	for _, line := range extremes {
		view, err := Lookup(line.View)
		if err != nil {
			return err
		}
		row, err := e.First(ctx, view)
		if err != nil {
			return err
		}
		out := fmt.Sprintf("%-10s:", line.Label)
		if row != nil {
			out += " " + row.Date + " " + row.Title
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return fmt.Errorf("stat: write: %w", err)
		}
	}
	return nil
}
