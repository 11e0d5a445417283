package main

import (
	"github.com/spf13/cobra"
)

func newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "Summary counts for every view, plus the oldest and farthest tasks",
		Long: `Print a fixed-layout summary of the whole database.

Each line is one view reduced to its row count, followed by the oldest
started task and the task scheduled farthest into the future:

  Inbox     : 2
  Today     : 4
  ...
  Oldest    : 2010-01-01 Water plants
  Farest    : 2021-06-15 Plan trip`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, exec, err := openEngine(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			return exec.WriteStats(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
