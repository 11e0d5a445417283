// Package things defines the record types of the Things 3 database as read
// by this tool.
//
// The database is owned entirely by Things.app. This tool never creates,
// mutates, or deletes a record; each invocation reads a point-in-time
// snapshot. The types here mirror the three tables the report views touch:
// TMTask, TMChecklistItem, and TMArea.
package things

import (
	"fmt"
	"time"
)

// Table names as they appear in the Things database.
const (
	TaskTable          = "TMTask"
	ChecklistItemTable = "TMChecklistItem"
	AreaTable          = "TMArea"
)

// Status is the completion state of a task or checklist item.
// Values other than open and completed are reserved by Things and are
// treated as neither open nor completed.
type Status int

const (
	StatusOpen      Status = 0
	StatusCompleted Status = 3
)

// Start is the scheduling state of a task.
type Start int

const (
	StartNotStarted Start = 0
	StartStarted    Start = 1
	StartPostponed  Start = 2
)

// Type discriminates to-do items from projects.
type Type int

const (
	TypeTask    Type = 0
	TypeProject Type = 1
)

// Task is a row of TMTask: either a to-do item or a project, discriminated
// by Type. Optional columns are pointers; nil means NULL.
type Task struct {
	UUID    string
	Title   string
	Trashed bool
	Status  Status
	Start   Start
	Type    Type

	// Area and Project reference TMArea.uuid and TMTask.uuid respectively.
	// A project reference must point at a Task of TypeProject, and a
	// project never has a project of its own.
	Area    *string
	Project *string

	// Timestamps are epoch seconds.
	StartDate            *int64
	DueDate              *int64
	CreationDate         *int64
	UserModificationDate *int64

	// RecurrenceRule is an opaque blob; presence marks a repeating task.
	RecurrenceRule *string

	// TodayIndex is the manual ordering rank within the today/next lists,
	// maintained by Things.app.
	TodayIndex int
}

// Validate checks the enum-valued fields against the values Things writes.
func (t *Task) Validate() error {
	if t.UUID == "" {
		return fmt.Errorf("uuid is required")
	}
	switch t.Start {
	case StartNotStarted, StartStarted, StartPostponed:
	default:
		return fmt.Errorf("invalid start value %d", t.Start)
	}
	switch t.Type {
	case TypeTask, TypeProject:
	default:
		return fmt.Errorf("invalid type value %d", t.Type)
	}
	if t.Type == TypeProject && t.Project != nil {
		return fmt.Errorf("project %s must not have a parent project", t.UUID)
	}
	return nil
}

// ChecklistItem is a row of TMChecklistItem: a checklist line belonging to
// a task. An item counts as open only when both the item and its owning
// task are open.
type ChecklistItem struct {
	UUID                 string
	Title                string
	Status               Status
	Task                 *string
	CreationDate         *int64
	UserModificationDate *int64
}

// Area is a row of TMArea: a named grouping referenced by tasks.
type Area struct {
	UUID  string
	Title string
}

// FormatDate renders epoch seconds as a YYYY-MM-DD calendar date in UTC,
// matching SQLite's date(x,'unixepoch').
func FormatDate(epoch int64) string {
	return time.Unix(epoch, 0).UTC().Format("2006-01-02")
}
