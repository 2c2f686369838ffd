package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cexcal-dev/cexcal/internal/render"
	"github.com/cexcal-dev/cexcal/internal/stats"
	"github.com/cexcal-dev/cexcal/internal/terminal"
)

func newStatsCommand(opts *globalOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-exchange listing counts for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, m, err := monthFlag(month)
			if err != nil {
				return err
			}
			_, svc, err := opts.loadIndex(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.MonthHeader(year, m))
			terminal.WriteStats(out, stats.Aggregate(svc.All(), year, m))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month (YYYY-MM, default current)")

	return cmd
}
