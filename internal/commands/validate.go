package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cexcal-dev/cexcal/internal/dataset"
	"github.com/cexcal-dev/cexcal/internal/listings"
)

func newValidateCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every dataset record for a valid date and type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			ls, err := dataset.Load(cfg.Data.Path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			svc := listings.NewService(ls)
			verrs := svc.Validate()
			for _, ve := range verrs {
				fmt.Fprintln(out, ve.Error())
			}
			if len(verrs) > 0 {
				return fmt.Errorf("%s: %d invalid records", cfg.Data.Path, len(verrs))
			}

			fmt.Fprintf(out, "%s: %d listings OK\n", cfg.Data.Path, svc.Len())
			return nil
		},
	}
}
