// Package storetest builds throwaway Things databases for tests.
//
// The production store never writes, so the DDL and seeding live here,
// outside the read path. The schema is the subset of the Things tables the
// report views read; columns keep their original names.
package storetest

import (
	"database/sql"
	"fmt"

	"github.com/brc75/things.sh/internal/things"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const schema = `
CREATE TABLE TMTask (
	uuid TEXT PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	trashed INTEGER NOT NULL DEFAULT 0,
	status INTEGER NOT NULL DEFAULT 0,
	start INTEGER NOT NULL DEFAULT 0,
	type INTEGER NOT NULL DEFAULT 0,
	area TEXT,
	project TEXT,
	startDate INTEGER,
	dueDate INTEGER,
	creationDate INTEGER,
	userModificationDate INTEGER,
	recurrenceRule TEXT,
	todayIndex INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE TMChecklistItem (
	uuid TEXT PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	status INTEGER NOT NULL DEFAULT 0,
	task TEXT,
	creationDate INTEGER,
	userModificationDate INTEGER
);

CREATE TABLE TMArea (
	uuid TEXT PRIMARY KEY,
	title TEXT NOT NULL DEFAULT ''
);
`

// Fixture is the content of a seeded test database.
type Fixture struct {
	Tasks []things.Task
	Items []things.ChecklistItem
	Areas []things.Area
}

// Create writes a new Things database at path containing the fixture.
// The file must not already exist.
func Create(path string, fx Fixture) error {
	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return fmt.Errorf("open fixture database: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("create fixture schema: %w", err)
	}

	for i := range fx.Tasks {
		task := &fx.Tasks[i]
		if err := task.Validate(); err != nil {
			return fmt.Errorf("invalid fixture task: %w", err)
		}
		_, err := conn.Exec(`
			INSERT INTO TMTask (
				uuid, title, trashed, status, start, type, area, project,
				startDate, dueDate, creationDate, userModificationDate,
				recurrenceRule, todayIndex
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			task.UUID,
			task.Title,
			boolToInt(task.Trashed),
			int(task.Status),
			int(task.Start),
			int(task.Type),
			task.Area,
			task.Project,
			task.StartDate,
			task.DueDate,
			task.CreationDate,
			task.UserModificationDate,
			task.RecurrenceRule,
			task.TodayIndex,
		)
		if err != nil {
			return fmt.Errorf("insert fixture task %s: %w", task.UUID, err)
		}
	}

	for i := range fx.Items {
		item := &fx.Items[i]
		_, err := conn.Exec(`
			INSERT INTO TMChecklistItem (
				uuid, title, status, task, creationDate, userModificationDate
			) VALUES (?, ?, ?, ?, ?, ?)`,
			item.UUID,
			item.Title,
			int(item.Status),
			item.Task,
			item.CreationDate,
			item.UserModificationDate,
		)
		if err != nil {
			return fmt.Errorf("insert fixture checklist item %s: %w", item.UUID, err)
		}
	}

	for _, area := range fx.Areas {
		if _, err := conn.Exec(`INSERT INTO TMArea (uuid, title) VALUES (?, ?)`, area.UUID, area.Title); err != nil {
			return fmt.Errorf("insert fixture area %s: %w", area.UUID, err)
		}
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ptr returns a pointer to v. Fixture literals use it for nullable columns.
func Ptr[T any](v T) *T { return &v }
