package report

import (
	"errors"
	"fmt"

	"github.com/brc75/things.sh/internal/things"
)

// ErrUnknownView is returned by Lookup for a name outside the catalog.
var ErrUnknownView = errors.New("unknown view")

// View is one fixed query definition: source (with joins), predicate,
// projection, ordering, and an optional row limit. Views are pure values;
// the executor compiles them to parameterized SQL.
type View struct {
	Name    string
	From    string
	Columns []string
	Where   Predicate
	OrderBy []string
	Limit   int

	// Dated marks a two-column (date, title) projection. Plain views
	// project the title only.
	Dated bool
}

func dateCol(column string) string {
	return "date(" + column + ",'unixepoch')"
}

// Join sources shared by several views.
const (
	taskWithParent = things.TaskTable + " t LEFT OUTER JOIN " + things.TaskTable + " parent ON t.project = parent.uuid"
	itemWithOwner  = things.ChecklistItemTable + " c LEFT OUTER JOIN " + things.TaskTable + " t ON c.task = t.uuid"
)

// catalog holds every view by canonical name. The definitions reproduce
// the original tool's queries exactly; changing a predicate here changes
// what users see, so treat the table as frozen behavior.
var catalog = map[string]View{
	"inbox": {
		Name:    "inbox",
		From:    things.TaskTable,
		Columns: []string{"title"},
		Where:   And(NotTrashed, IsTask, NotStarted, IsOpen),
	},
	"today": {
		Name:    "today",
		From:    things.TaskTable,
		Columns: []string{"title"},
		Where:   And(NotTrashed, IsOpen, IsTask, IsStarted, HasStartDate),
		OrderBy: []string{"startDate", "todayIndex"},
	},
	"upcoming": {
		Name:    "upcoming",
		From:    things.TaskTable,
		Columns: []string{"title"},
		Where:   And(NotTrashed, IsOpen, IsTask, IsPostponed, Or(HasStartDate, HasRecurrence)),
		OrderBy: []string{"startDate", "todayIndex"},
	},
	"next": {
		Name:    "next",
		From:    taskWithParent,
		Columns: []string{"t.title"},
		Where: And(
			Eq("t.trashed", 0),
			Eq("t.type", int(things.TypeTask)),
			Eq("t.status", int(things.StatusOpen)),
			Eq("t.start", int(things.StartStarted)),
			Or(NotNull("t.area"), Eq("parent.start", int(things.StartStarted))),
		),
		OrderBy: []string{"t.todayIndex"},
	},
	"someday": {
		Name:    "someday",
		From:    things.TaskTable,
		Columns: []string{"title"},
		Where:   And(NotTrashed, IsTask, IsPostponed, IsOpen),
	},
	"completed": {
		Name:    "completed",
		From:    things.TaskTable,
		Columns: []string{"title"},
		Where:   And(NotTrashed, IsTask, IsCompleted),
	},
	"nextish": {
		Name:    "nextish",
		From:    things.TaskTable,
		Columns: []string{"title"},
		Where:   And(NotTrashed, IsStarted, IsOpen, IsTask),
	},
	"all": {
		Name:    "all",
		From:    things.TaskTable,
		Columns: []string{"title"},
		Where:   And(NotTrashed, IsOpen, IsTask),
	},
	"subtasks": {
		Name:    "subtasks",
		From:    itemWithOwner,
		Columns: []string{"c.title"},
		Where: And(
			Eq("c.status", int(things.StatusOpen)),
			Eq("t.status", int(things.StatusOpen)),
		),
	},
	"old": {
		Name:    "old",
		From:    things.TaskTable,
		Columns: []string{dateCol("creationDate"), "title"},
		Where:   And(NotTrashed, IsOpen, IsStarted),
		OrderBy: []string{"creationDate"},
		Limit:   20,
		Dated:   true,
	},
	"oldest": {
		Name:    "oldest",
		From:    things.TaskTable,
		Columns: []string{dateCol("creationDate"), "title"},
		Where:   And(NotTrashed, IsOpen, IsStarted),
		OrderBy: []string{"creationDate"},
		Limit:   1,
		Dated:   true,
	},
	"due": {
		Name:    "due",
		From:    things.TaskTable,
		Columns: []string{dateCol("dueDate"), "title"},
		Where:   And(NotTrashed, IsOpen, HasDueDate),
		OrderBy: []string{"dueDate"},
		Limit:   20,
		Dated:   true,
	},
	"future": {
		Name:    "future",
		From:    things.TaskTable,
		Columns: []string{dateCol("startDate"), "title"},
		Where:   And(NotTrashed, IsOpen, HasStartDate),
		OrderBy: []string{"startDate DESC"},
		Limit:   1,
		Dated:   true,
	},
	"repeating": {
		Name:    "repeating",
		From:    things.TaskTable,
		Columns: []string{"title"},
		Where:   And(NotTrashed, IsOpen, IsPostponed, HasRecurrence),
		OrderBy: []string{"creationDate"},
	},
	"projects": {
		Name:    "projects",
		From:    things.TaskTable,
		Columns: []string{"title"},
		Where:   And(NotTrashed, IsOpen, IsProject),
		OrderBy: []string{"creationDate"},
	},
}

// aliases maps alternate command names to catalog entries.
var aliases = map[string]string{
	"anytime": "next",
}

// ViewNames lists every canonical view, in the order the CLI presents them.
var ViewNames = []string{
	"inbox", "today", "upcoming", "next", "someday", "completed", "all",
	"nextish", "subtasks", "old", "oldest", "due", "future", "repeating",
	"projects",
}

// Lookup resolves a view name, following aliases.
func Lookup(name string) (View, error) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	view, ok := catalog[name]
	if !ok {
		return View{}, fmt.Errorf("%w %q", ErrUnknownView, name)
	}
	return view, nil
}

// Aliases returns the alternate names for a canonical view.
func Aliases(name string) []string {
	var out []string
	for alias, canonical := range aliases {
		if canonical == name {
			out = append(out, alias)
		}
	}
	return out
}
