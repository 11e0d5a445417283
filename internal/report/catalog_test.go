package report

import (
	"errors"
	"testing"
)

func TestLookup_KnownViews(t *testing.T) {
	for _, name := range ViewNames {
		view, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if view.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, view.Name)
		}
		if len(view.Columns) == 0 || view.From == "" {
			t.Errorf("Lookup(%q) returned an incomplete view: %+v", name, view)
		}
	}
}

func TestLookup_Alias(t *testing.T) {
	next, err := Lookup("next")
	if err != nil {
		t.Fatalf("Lookup(next) failed: %v", err)
	}
	anytime, err := Lookup("anytime")
	if err != nil {
		t.Fatalf("Lookup(anytime) failed: %v", err)
	}
	if anytime.Name != next.Name {
		t.Errorf("anytime resolves to %q, want %q", anytime.Name, next.Name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("bogus")
	if !errors.Is(err, ErrUnknownView) {
		t.Fatalf("Lookup(bogus) = %v, want ErrUnknownView", err)
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		view      string
		wantSQL   string
		wantNArgs int
	}{
		{
			view:      "inbox",
			wantSQL:   "SELECT title FROM TMTask WHERE trashed = ? AND type = ? AND start = ? AND status = ?",
			wantNArgs: 4,
		},
		{
			view: "due",
			wantSQL: "SELECT date(dueDate,'unixepoch'), title FROM TMTask" +
				" WHERE trashed = ? AND status = ? AND dueDate IS NOT NULL" +
				" ORDER BY dueDate LIMIT ?",
			wantNArgs: 3, // trashed, status, limit
		},
		{
			view: "next",
			wantSQL: "SELECT t.title FROM TMTask t LEFT OUTER JOIN TMTask parent ON t.project = parent.uuid" +
				" WHERE t.trashed = ? AND t.type = ? AND t.status = ? AND t.start = ?" +
				" AND (t.area IS NOT NULL OR parent.start = ?)" +
				" ORDER BY t.todayIndex",
			wantNArgs: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			view, err := Lookup(tt.view)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tt.view, err)
			}
			query, args := compile(view)
			if query != tt.wantSQL {
				t.Errorf("compile(%q) =\n%q\nwant\n%q", tt.view, query, tt.wantSQL)
			}
			if len(args) != tt.wantNArgs {
				t.Errorf("compile(%q) bound %d args, want %d", tt.view, len(args), tt.wantNArgs)
			}
		})
	}
}

func TestCatalog_LimitsAndOrder(t *testing.T) {
	for name, want := range map[string]int{"old": 20, "due": 20, "oldest": 1, "future": 1} {
		view, _ := Lookup(name)
		if view.Limit != want {
			t.Errorf("%s limit = %d, want %d", name, view.Limit, want)
		}
	}
	for _, name := range []string{"today", "upcoming", "next", "old", "oldest", "due", "future", "repeating", "projects"} {
		view, _ := Lookup(name)
		if len(view.OrderBy) == 0 {
			t.Errorf("%s has no ordering", name)
		}
	}
}
