package commands

import (
	"fmt"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cexcal-dev/cexcal/internal/buildinfo"
	"github.com/cexcal-dev/cexcal/internal/config"
	"github.com/cexcal-dev/cexcal/internal/datekey"
	"github.com/cexcal-dev/cexcal/internal/listings"
)

// dotEnvFile is read from the working directory before the config.
const dotEnvFile = ".env"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	dataPath   string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "cexcal",
		Short:   "Calendar of centralized exchange token listings",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.FileName, "config file")
	flags.StringVar(&opts.dataPath, "data", "", "listing dataset (.json or .csv), overrides the config")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCommand(),
		newShowCommand(opts),
		newDayCommand(opts),
		newStatsCommand(opts),
		newExchangesCommand(opts),
		newValidateCommand(opts),
		newExportCommand(opts),
		newServeCommand(opts),
	)

	return rootCmd
}

// loadConfig resolves the effective configuration: .env, then the config
// file, then CEXCAL_* variables, then flags. A relative dataset path in the
// config file is taken relative to the file's directory.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.Data.Path) {
		cfg.Data.Path = filepath.Join(filepath.Dir(o.configPath), cfg.Data.Path)
	}
	config.ApplyEnv(cfg)

	if o.dataPath != "" {
		cfg.Data.Path = o.dataPath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)
	return cfg, nil
}

// loadIndex loads the configured dataset.
func (o *globalOptions) loadIndex(cmd *cobra.Command) (*config.Config, *listings.Service, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	svc, err := listings.Load(cfg.Data.Path, cfg.Data.Strict)
	if err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

// monthFlag parses a --month value, defaulting to the current month.
func monthFlag(value string) (int, time.Month, error) {
	if value == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	year, month, err := datekey.ParseMonth(value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month: %w", err)
	}
	return year, month, nil
}
