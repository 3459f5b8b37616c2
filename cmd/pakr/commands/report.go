package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the report of the most recent run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.LastReport()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report == nil {
				fmt.Fprintln(out, "no run recorded")
				return nil
			}

			fmt.Fprintf(out, "last run: %s\n", report.StartedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "  %d command(s), %d failed, took %s\n", report.Total, report.Failed(), report.Duration)
			for _, failure := range report.Failures {
				fmt.Fprintf(out, "  command %d (%s): %v\n", failure.Index+1, failure.Kind, failure.Err)
			}
			return nil
		},
	}
}
