package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "teller.yaml"

// Environment variables that override the config file.
const (
	EnvDataFile    = "TELLER_DATA_FILE"
	EnvAuditFile   = "TELLER_AUDIT_FILE"
	EnvAuditOn     = "TELLER_AUDIT_ENABLED"
	EnvLogLevel    = "TELLER_LOG_LEVEL"
	EnvLogFormat   = "TELLER_LOG_FORMAT"
	EnvLoadOnStart = "TELLER_LOAD_ON_START"
)

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Data  DataConfig  `yaml:"data"`
	Shell ShellConfig `yaml:"shell"`
	Audit AuditConfig `yaml:"audit"`
	Log   LogConfig   `yaml:"log"`
}

// DataConfig locates the accounts file.
type DataConfig struct {
	File string `yaml:"file"`
}

// ShellConfig controls the interactive session.
type ShellConfig struct {
	LoadOnStart bool `yaml:"load_on_start"`
	SaveOnExit  bool `yaml:"save_on_exit"`
}

// AuditConfig controls the audit log.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Load reads a teller.yaml file from disk. Keys missing from the file keep
// their default values.
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

// LoadOrDefault is Load, but a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
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

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			File: "accounts.txt",
		},
		Shell: ShellConfig{
			LoadOnStart: false,
			SaveOnExit:  true,
		},
		Audit: AuditConfig{
			Enabled: false,
			File:    "logs/audit-log.csv",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with any TELLER_* variables present in the
// environment.
func (cfg *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvDataFile); ok && v != "" {
		cfg.Data.File = v
	}
	if v, ok := os.LookupEnv(EnvAuditFile); ok && v != "" {
		cfg.Audit.File = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Log.Format = v
	}
	if v, ok := os.LookupEnv(EnvAuditOn); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvAuditOn, err)
		}
		cfg.Audit.Enabled = b
	}
	if v, ok := os.LookupEnv(EnvLoadOnStart); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvLoadOnStart, err)
		}
		cfg.Shell.LoadOnStart = b
	}
	return nil
}
