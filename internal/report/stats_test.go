package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteStats_Layout(t *testing.T) {
	e := newTestExecutor(t)

	var buf bytes.Buffer
	if err := e.WriteStats(context.Background(), &buf); err != nil {
		t.Fatalf("WriteStats() failed: %v", err)
	}

	want := "" +
		"Inbox     : 2\n" +
		"Today     : 2\n" +
		"Upcoming  : 2\n" +
		"Next      : 2\n" +
		"Someday   : 3\n" +
		"Completed : 1\n" +
		"Tasks     : 10\n" +
		"Subtasks  : 2\n" +
		"Projects  : 2\n" +
		"Repeating : 1\n" +
		"Nextish   : 5\n" +
		"Oldest    : 2010-01-01 Water plants\n" +
		"Farest    : 2021-06-15 Plan trip\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("stat output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteStats_CountsMatchViews(t *testing.T) {
	e := newTestExecutor(t)

	// Every count line must equal the line count of the raw view output.
	for _, line := range statCounts {
		view, err := Lookup(line.View)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", line.View, err)
		}
		count, err := e.Count(context.Background(), view)
		if err != nil {
			t.Fatalf("Count(%q) failed: %v", line.View, err)
		}
		if got := len(runView(t, e, line.View)); got != count {
			t.Errorf("%s: stat reports %d, view emits %d lines", line.Label, count, got)
		}
	}
}
