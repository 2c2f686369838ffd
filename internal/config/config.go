package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "cexcal.yaml"

// Environment overrides, applied after the file is read.
const (
	EnvData     = "CEXCAL_DATA"
	EnvStrict   = "CEXCAL_STRICT"
	EnvAddr     = "CEXCAL_ADDR"
	EnvLogLevel = "CEXCAL_LOG_LEVEL"
)

// Config represents the top-level cexcal.yaml configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	View   ViewConfig   `yaml:"view"`
}

// DataConfig locates the listing dataset.
type DataConfig struct {
	Path   string `yaml:"path"`   // .json or .csv
	Strict bool   `yaml:"strict"` // reject datasets with invalid records
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ViewConfig sets the initial view.
type ViewConfig struct {
	Exchange string `yaml:"exchange,omitempty"`
}

// Load reads a cexcal.yaml file from disk. Fields missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, falling back to Default when the file does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("config %s not found, using defaults", path)
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path: "data/cex_listings.json",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadDotEnv loads variables from a .env file into the environment. A
// missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s file: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with CEXCAL_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvData); v != "" {
		cfg.Data.Path = v
	}
	if v := os.Getenv(EnvStrict); v != "" {
		cfg.Data.Strict = v == "1" || v == "true"
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}
