package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cexcal-dev/cexcal/internal/datekey"
	"github.com/cexcal-dev/cexcal/internal/terminal"
	"github.com/cexcal-dev/cexcal/internal/widget"
)

func newDayCommand(opts *globalOptions) *cobra.Command {
	var exchange string

	cmd := &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Print the listings of one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !datekey.Valid(key) {
				return fmt.Errorf("invalid date key %q", key)
			}
			_, svc, err := opts.loadIndex(cmd)
			if err != nil {
				return err
			}

			w := widget.New(svc, widget.WithExchange(exchange))
			w.SelectDay(key)
			terminal.WriteModal(cmd.OutOrStdout(), *w.Render().Modal)
			return nil
		},
	}

	cmd.Flags().StringVar(&exchange, "exchange", "", "only show listings on this exchange")

	return cmd
}
