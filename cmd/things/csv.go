package main

import (
	"github.com/spf13/cobra"
)

func newCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csv",
		Short: "Export open tasks and checklist items as semicolon-separated values",
		Long: `Export the open part of the database in CSV form.

The first line is the fixed header; task rows follow, then checklist
item rows without a repeated header. Fields are separated by semicolons
and dates are rendered as YYYY-MM-DD. Pipe to a file for spreadsheets:

  things csv > things.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, exec, err := openEngine(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			return exec.WriteCSV(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
