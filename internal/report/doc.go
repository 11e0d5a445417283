// Package report implements the read-only report engine over the Things
// database: the predicate library, the view catalog, the query executor,
// and the statistics aggregator.
//
// # Views
//
// A view is a fixed, named query definition: a source (optionally joined),
// a predicate conjunction, a projection, an ordering, and an optional row
// limit. The catalog maps every command the CLI accepts to one of these
// values. Views are data, not code; the executor compiles them to a single
// parameterized SELECT and streams the rows.
//
// Looking up and running a view:
//
//	view, err := report.Lookup("today")
//	if err != nil {
//	    return err
//	}
//	exec := report.NewExecutor(st)
//	n, err := exec.Run(ctx, view, os.Stdout)
//
// # Reductions
//
// The statistics summary never re-runs a view and counts its lines. Counts
// compile to SELECT COUNT(*) over the same WHERE clause, and the two
// extremal lines (Oldest, Farest) reduce their view to a single row via
// Executor.First.
//
// # Guarantees
//
//   - No query text is built from user input; all values are bound
//     parameters.
//   - The store is never written. Trashed tasks never appear in any view.
//   - A failing query aborts the view's output; no partial rows are
//     followed by a silent truncation.
package report
