package main

import (
	"log"
	"os"

	"github.com/brc75/things.sh/internal/config"
	"github.com/brc75/things.sh/internal/report"
	"github.com/brc75/things.sh/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newRootCmd builds the full command tree. main and the tests each build
// their own tree so no flag state leaks between runs.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "things [command]",
		Short: "Read-only reports over the Things database",
		Long: `Simple read-only command line interface to the Things database.

Every command is a fixed view: a filter, sort, and projection over the
tasks, checklist items, and areas Things.app maintains. Rows print one
per line to standard output. Nothing is ever written to the database.

The database is found at the standard Things container path; set the
THINGSDB environment variable, the --db flag, or the db key in
~/.config/things/config.yaml to point somewhere else.

Examples:
  things inbox                # unscheduled open tasks
  things today                # tasks scheduled for today, in list order
  things due --limit 5        # the five most urgent due dates
  things stat                 # counts for every view, plus extremes
  things csv > backup.csv     # semicolon-separated export

Exit codes:
  0  success, or usage text for an unknown command
  1  the embedded query engine failed to initialize
  2  the database file is missing or unreadable`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No command, or one we don't know: usage on stdout, exit 0.
			return cmd.Help()
		},
	}

	root.PersistentFlags().String("db", "", "path to the Things database (overrides THINGSDB)")
	root.PersistentFlags().Bool("trace", false, "log each compiled query to stderr")

	for _, name := range report.ViewNames {
		root.AddCommand(newViewCmd(name))
	}
	root.AddCommand(newCSVCmd())
	root.AddCommand(newStatCmd())
	return root
}

// openEngine resolves configuration, opens the store read-only, and wires
// an executor with optional query tracing. The caller closes the store.
func openEngine(cmd *cobra.Command) (*store.Store, *report.Executor, error) {
	v := config.New()
	if err := v.BindPFlag(config.KeyDB, cmd.Root().PersistentFlags().Lookup("db")); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	exec := report.NewExecutor(st)
	if cfg.TraceLog != "" {
		exec.SetTrace(log.New(&lumberjack.Logger{
			Filename:   cfg.TraceLog,
			MaxSize:    10, // MB
			MaxBackups: 3,
		}, "[things] ", log.LstdFlags))
	} else if trace, _ := cmd.Root().PersistentFlags().GetBool("trace"); trace {
		exec.SetTrace(log.New(os.Stderr, "[things] ", log.LstdFlags))
	}
	return st, exec, nil
}
