package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cexcal-dev/cexcal/internal/terminal"
	"github.com/cexcal-dev/cexcal/internal/widget"
)

func newShowCommand(opts *globalOptions) *cobra.Command {
	var month string
	var exchange string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the month calendar and its stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, m, err := monthFlag(month)
			if err != nil {
				return err
			}
			cfg, svc, err := opts.loadIndex(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("exchange") {
				exchange = cfg.View.Exchange
			}

			w := widget.New(svc, widget.WithExchange(exchange))
			w.GoTo(year, m)
			page := w.Render()

			out := cmd.OutOrStdout()
			terminal.WriteMonth(out, page)
			fmt.Fprintln(out)
			terminal.WriteStats(out, page.Stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show (YYYY-MM, default current)")
	cmd.Flags().StringVar(&exchange, "exchange", "", "only show listings on this exchange")

	return cmd
}
