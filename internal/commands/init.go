package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cexcal-dev/cexcal/internal/config"
	"github.com/cexcal-dev/cexcal/internal/dataset"
)

func newInitCommand() *cobra.Command {
	var format string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a cexcal project with a sample dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, format, force)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "sample dataset format (json or csv)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}

func runInit(out io.Writer, dir, format string, force bool) error {
	if dataset.DefaultRegistry().Get(format) == nil {
		return fmt.Errorf("unsupported dataset format %q", format)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	cfg.Data.Path = strings.TrimSuffix(cfg.Data.Path, filepath.Ext(cfg.Data.Path)) + "." + format
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	sample := dataset.Sample()
	if err := dataset.Save(filepath.Join(dir, cfg.Data.Path), sample); err != nil {
		return fmt.Errorf("writing sample dataset: %w", err)
	}

	fmt.Fprintf(out, "Initialized cexcal project at %s (%d sample listings)\n", dir, len(sample))
	return nil
}
