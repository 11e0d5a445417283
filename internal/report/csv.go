package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/brc75/things.sh/internal/things"
)

// Header is a fixed literal; spreadsheet imports of the original tool's
// output key on it byte for byte.
const csvHeader = `Title;"Creation Date";"Modification Date";"Due Date";"Start Date";Project;Area`

// csvTasks projects every open task with its parent project and area
// titles resolved through left outer joins, so tasks without either still
// produce a row with empty fields.
var csvTasks = View{
	Name: "csv-tasks",
	From: things.TaskTable + " t" +
		" LEFT OUTER JOIN " + things.TaskTable + " parent ON t.project = parent.uuid" +
		" LEFT OUTER JOIN " + things.AreaTable + " a ON t.area = a.uuid",
	Columns: []string{
		"t.title",
		dateCol("t.creationDate"),
		dateCol("t.userModificationDate"),
		dateCol("t.dueDate"),
		dateCol("t.startDate"),
		"parent.title",
		"a.title",
	},
	Where: And(
		Eq("t.trashed", 0),
		Eq("t.status", int(things.StatusOpen)),
		Eq("t.type", int(things.TypeTask)),
	),
}

// csvItems projects open checklist items of open tasks, appended after the
// task block without a second header.
var csvItems = View{
	Name:    "csv-items",
	From:    itemWithOwner,
	Columns: []string{"c.title", dateCol("c.creationDate"), dateCol("c.userModificationDate"), "t.title"},
	Where: And(
		Eq("c.status", int(things.StatusOpen)),
		Eq("t.status", int(things.StatusOpen)),
	),
}

// WriteCSV emits the semicolon-separated export: a header line, one row
// per open task, then one row per open checklist item. Every row carries
// the full seven columns. Checklist rows place the owning task's title in
// the Project column and leave Due Date, Start Date, and Area empty.
func (e *Executor) WriteCSV(ctx context.Context, w io.Writer) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return fmt.Errorf("csv: write: %w", err)
	}

	if err := e.writeCSVBlock(ctx, w, csvTasks, func(fields []string) []string {
		return fields
	}); err != nil {
		return err
	}

	return e.writeCSVBlock(ctx, w, csvItems, func(fields []string) []string {
		// title, created, modified -> title, created, modified, due,
		// start, project (owner), area
		return []string{fields[0], fields[1], fields[2], "", "", fields[3], ""}
	})
}

func (e *Executor) writeCSVBlock(ctx context.Context, w io.Writer, v View, widen func([]string) []string) error {
	rows, err := e.query(ctx, v)
	if err != nil {
		return err
	}
	defer rows.Close()

	scanned := make([]sql.NullString, len(v.Columns))
	dest := make([]any, len(v.Columns))
	for i := range scanned {
		dest[i] = &scanned[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("view %s: scan: %w", v.Name, err)
		}
		fields := make([]string, len(scanned))
		for i, s := range scanned {
			fields[i] = s.String
		}
		if _, err := fmt.Fprintln(w, strings.Join(widen(fields), ";")); err != nil {
			return fmt.Errorf("view %s: write: %w", v.Name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("view %s: %w", v.Name, err)
	}
	return nil
}
