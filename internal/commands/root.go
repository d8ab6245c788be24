package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/accounts"
	"github.com/teller-dev/teller/internal/auditlog"
	"github.com/teller-dev/teller/internal/buildinfo"
	"github.com/teller-dev/teller/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	dataFile   string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it starts the interactive shell.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "teller",
		Short:   "Console bank account manager",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.FileName, "config file")
	flags.StringVar(&a.dataFile, "data", "", "accounts file (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newShellCommand(a))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCreateCommand(a))
	rootCmd.AddCommand(newDepositCommand(a))
	rootCmd.AddCommand(newWithdrawCommand(a))
	rootCmd.AddCommand(newListCommand(a))

	return rootCmd
}

// setup resolves configuration with precedence flags > environment > file >
// defaults, then builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if a.dataFile != "" {
		cfg.Data.File = a.dataFile
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// loadStore reads the configured accounts file. A missing file gives an
// empty store.
func (a *app) loadStore() (*accounts.Store, error) {
	store := accounts.NewStore(a.logger)
	if _, err := store.Load(a.cfg.Data.File); err != nil {
		return nil, err
	}
	return store, nil
}

// writeAudit appends entries to the audit log when it is enabled. Failures
// are logged, never returned.
func (a *app) writeAudit(entries []auditlog.Entry) {
	if !a.cfg.Audit.Enabled || len(entries) == 0 {
		return
	}
	if err := auditlog.Append(a.cfg.Audit.File, entries); err != nil {
		a.logger.Warn("failed to write audit log", "path", a.cfg.Audit.File, "error", err)
	}
}

func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
