package commands

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cexcal-dev/cexcal/internal/export"
	"github.com/cexcal-dev/cexcal/internal/model"
)

func newExportCommand(opts *globalOptions) *cobra.Command {
	var format string
	var month string
	var exchange string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a month of listings as ICS, CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(export.Formats, format) {
				return fmt.Errorf("unsupported export format %q (want %s)", format, strings.Join(export.Formats, ", "))
			}
			year, m, err := monthFlag(month)
			if err != nil {
				return err
			}
			_, svc, err := opts.loadIndex(cmd)
			if err != nil {
				return err
			}

			p := export.Params{Year: year, Month: m, Exchange: exchange, Stamp: time.Now()}
			selected := export.Select(svc.All(), p)

			if output == "" {
				return export.Write(cmd.OutOrStdout(), format, p, selected)
			}
			return writeExportFile(output, format, p, selected)
		},
	}

	cmd.Flags().StringVar(&format, "format", "ics", "export format (ics, csv, json)")
	cmd.Flags().StringVar(&month, "month", "", "month (YYYY-MM, default current)")
	cmd.Flags().StringVar(&exchange, "exchange", "", "only export listings on this exchange")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func writeExportFile(path, format string, p export.Params, listings []model.Listing) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing export file: %w", cerr)
		}
	}()

	if err := export.Write(f, format, p, listings); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Infof("exported %d listings to %s", len(listings), path)
	return nil
}
