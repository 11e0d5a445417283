package report

import (
	"strings"

	"github.com/brc75/things.sh/internal/things"
)

// Predicate is a boolean condition over a record, compiled to a
// parameterized SQL fragment. Predicates are pure values; they compose by
// And/Or only and never interpolate data into the query text.
type Predicate struct {
	expr string
	args []any
}

// Eq builds an equality test on a single column.
func Eq(column string, value any) Predicate {
	return Predicate{expr: column + " = ?", args: []any{value}}
}

// NotNull tests a column for presence.
func NotNull(column string) Predicate {
	return Predicate{expr: column + " IS NOT NULL"}
}

// And joins predicates conjunctively.
func And(ps ...Predicate) Predicate {
	return join(ps, " AND ")
}

// Or joins predicates disjunctively. The result is parenthesized so it can
// sit inside a conjunction.
func Or(ps ...Predicate) Predicate {
	p := join(ps, " OR ")
	if len(ps) > 1 {
		p.expr = "(" + p.expr + ")"
	}
	return p
}

func join(ps []Predicate, sep string) Predicate {
	exprs := make([]string, 0, len(ps))
	var args []any
	for _, p := range ps {
		exprs = append(exprs, p.expr)
		args = append(args, p.args...)
	}
	return Predicate{expr: strings.Join(exprs, sep), args: args}
}

// SQL returns the fragment for a WHERE clause.
func (p Predicate) SQL() string { return p.expr }

// Args returns the bound parameters, in fragment order.
func (p Predicate) Args() []any { return p.args }

// Named predicates over the task table. Views over a single table use
// these bare-column forms; joined views qualify columns explicitly with
// the same constructors.
var (
	NotTrashed  = Eq("trashed", 0)
	IsOpen      = Eq("status", int(things.StatusOpen))
	IsCompleted = Eq("status", int(things.StatusCompleted))
	NotStarted  = Eq("start", int(things.StartNotStarted))
	IsStarted   = Eq("start", int(things.StartStarted))
	IsPostponed = Eq("start", int(things.StartPostponed))
	IsTask      = Eq("type", int(things.TypeTask))
	IsProject   = Eq("type", int(things.TypeProject))

	HasStartDate  = NotNull("startDate")
	HasDueDate    = NotNull("dueDate")
	HasRecurrence = NotNull("recurrenceRule")
)
