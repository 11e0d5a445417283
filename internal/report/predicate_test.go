package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPredicate_Eq(t *testing.T) {
	p := Eq("status", 3)
	if got := p.SQL(); got != "status = ?" {
		t.Errorf("SQL() = %q, want %q", got, "status = ?")
	}
	if diff := cmp.Diff([]any{3}, p.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}
}

func TestPredicate_NotNull(t *testing.T) {
	p := NotNull("startDate")
	if got := p.SQL(); got != "startDate IS NOT NULL" {
		t.Errorf("SQL() = %q, want %q", got, "startDate IS NOT NULL")
	}
	if len(p.Args()) != 0 {
		t.Errorf("Args() = %v, want none", p.Args())
	}
}

func TestPredicate_Compose(t *testing.T) {
	tests := []struct {
		name     string
		pred     Predicate
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "conjunction",
			pred:     And(NotTrashed, IsTask, IsOpen),
			wantSQL:  "trashed = ? AND type = ? AND status = ?",
			wantArgs: []any{0, 0, 0},
		},
		{
			name:     "disjunction is parenthesized",
			pred:     Or(HasStartDate, HasRecurrence),
			wantSQL:  "(startDate IS NOT NULL OR recurrenceRule IS NOT NULL)",
			wantArgs: nil,
		},
		{
			name:     "disjunction inside conjunction",
			pred:     And(NotTrashed, Or(NotNull("area"), Eq("parent.start", 1))),
			wantSQL:  "trashed = ? AND (area IS NOT NULL OR parent.start = ?)",
			wantArgs: []any{0, 1},
		},
		{
			name:     "single-element or has no parens",
			pred:     Or(IsOpen),
			wantSQL:  "status = ?",
			wantArgs: []any{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred.SQL(); got != tt.wantSQL {
				t.Errorf("SQL() = %q, want %q", got, tt.wantSQL)
			}
			if diff := cmp.Diff(tt.wantArgs, tt.pred.Args()); diff != "" {
				t.Errorf("Args() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
