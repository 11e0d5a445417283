package main

import (
	"github.com/brc75/things.sh/internal/report"
	"github.com/spf13/cobra"
)

var viewShort = map[string]string{
	"inbox":     "Open tasks not yet scheduled",
	"today":     "Tasks scheduled for today, in list order",
	"upcoming":  "Postponed tasks with a start date or recurrence",
	"next":      "Started tasks ready to pick up",
	"someday":   "Open tasks postponed to someday",
	"completed": "Completed tasks",
	"all":       "Every open task",
	"nextish":   "Every started open task",
	"subtasks":  "Open checklist items of open tasks",
	"old":       "The oldest started tasks, oldest first",
	"oldest":    "The single oldest started task",
	"due":       "The most urgent tasks with a due date",
	"future":    "The task scheduled farthest out",
	"repeating": "Postponed repeating tasks",
	"projects":  "Open projects, oldest first",
}

func newViewCmd(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     name,
		Aliases: report.Aliases(name),
		Short:   viewShort[name],
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, exec, err := openEngine(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			view, err := report.Lookup(name)
			if err != nil {
				return err
			}
			if f := cmd.Flags().Lookup("limit"); f != nil && f.Changed {
				limit, err := cmd.Flags().GetInt("limit")
				if err != nil {
					return err
				}
				view.Limit = limit
			}

			_, err = exec.Run(cmd.Context(), view, cmd.OutOrStdout())
			return err
		},
	}

	if view, err := report.Lookup(name); err == nil && view.Limit > 1 {
		cmd.Flags().Int("limit", view.Limit, "maximum number of rows")
	}
	return cmd
}
