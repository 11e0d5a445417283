package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/brc75/things.sh/internal/store"
)

// Executor binds view definitions to a store and streams the projected
// rows. It never mutates the store; every query compiles once from the
// catalog's declarative definition with bound parameters.
type Executor struct {
	store *store.Store
	trace *log.Logger
}

// NewExecutor creates an executor over an open store.
func NewExecutor(st *store.Store) *Executor {
	return &Executor{store: st}
}

// SetTrace installs a logger that records each compiled statement before
// it runs. Nil disables tracing.
func (e *Executor) SetTrace(l *log.Logger) {
	e.trace = l
}

// compile turns a view definition into a single SELECT statement with its
// bound parameters. The limit, when present, is a parameter too and is
// applied after ordering.
func compile(v View) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(v.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(v.From)

	args := append([]any(nil), v.Where.Args()...)
	if where := v.Where.SQL(); where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if len(v.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(v.OrderBy, ", "))
	}
	if v.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, v.Limit)
	}
	return b.String(), args
}

func (e *Executor) query(ctx context.Context, v View) (*sql.Rows, error) {
	query, args := compile(v)
	if e.trace != nil {
		e.trace.Printf("view %s: %s %v", v.Name, query, args)
	}
	rows, err := e.store.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", v.Name, err)
	}
	return rows, nil
}

// Run executes a view and writes one line per row to w: the title for
// plain views, tab-separated date and title for dated ones. It returns
// the number of rows written. On error no further rows are emitted.
func (e *Executor) Run(ctx context.Context, v View, w io.Writer) (int, error) {
	rows, err := e.query(ctx, v)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var line string
		if v.Dated {
			var date sql.NullString
			var title string
			if err := rows.Scan(&date, &title); err != nil {
				return n, fmt.Errorf("view %s: scan: %w", v.Name, err)
			}
			line = date.String + "\t" + title
		} else {
			if err := rows.Scan(&line); err != nil {
				return n, fmt.Errorf("view %s: scan: %w", v.Name, err)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return n, fmt.Errorf("view %s: write: %w", v.Name, err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("view %s: %w", v.Name, err)
	}
	return n, nil
}

// Count reduces a view to its row count. Ordering and limits are ignored;
// the count runs over the view's WHERE clause directly instead of
// re-running the view and counting lines.
func (e *Executor) Count(ctx context.Context, v View) (int, error) {
	var b strings.Builder
	b.WriteString("SELECT COUNT(*) FROM ")
	b.WriteString(v.From)
	if where := v.Where.SQL(); where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	query := b.String()
	if e.trace != nil {
		e.trace.Printf("count %s: %s %v", v.Name, query, v.Where.Args())
	}

	var count int
	err := e.store.QueryRow(ctx, query, v.Where.Args()...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", v.Name, err)
	}
	return count, nil
}

// DatedRow is the (date, title) pair of a dated view's single row.
type DatedRow struct {
	Date  string
	Title string
}

// First reduces a dated view to its first row, or nil when the view is
// empty.
func (e *Executor) First(ctx context.Context, v View) (*DatedRow, error) {
	if !v.Dated {
		return nil, fmt.Errorf("view %s: not a dated view", v.Name)
	}
	v.Limit = 1

	rows, err := e.query(ctx, v)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var date sql.NullString
	var row DatedRow
	if err := rows.Scan(&date, &row.Title); err != nil {
		return nil, fmt.Errorf("view %s: scan: %w", v.Name, err)
	}
	row.Date = date.String
	return &row, rows.Err()
}
