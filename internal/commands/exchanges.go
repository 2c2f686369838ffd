package commands

import (
	"github.com/spf13/cobra"

	"github.com/cexcal-dev/cexcal/internal/terminal"
)

func newExchangesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exchanges",
		Short: "List the exchanges in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := opts.loadIndex(cmd)
			if err != nil {
				return err
			}
			terminal.WriteExchanges(cmd.OutOrStdout(), svc.Exchanges())
			return nil
		},
	}
}
