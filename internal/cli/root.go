// Package cli wires the calculator together behind a cobra command:
// configuration, logging, the storage backend, the command registry, and
// the interactive loop.
package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tally-cli/tally/internal/calc"
	"github.com/tally-cli/tally/internal/command"
	"github.com/tally-cli/tally/internal/config"
	"github.com/tally-cli/tally/internal/history"
	"github.com/tally-cli/tally/internal/logging"
	"github.com/tally-cli/tally/internal/repl"
	"github.com/tally-cli/tally/internal/repo"
)

// RootOptions holds global flags for the tally command.
type RootOptions struct {
	Storage    string
	DataPath   string
	ConfigFile string
	Verbose    bool
}

// NewRootCommand creates the root command. Running it starts the
// interactive calculator loop.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "tally - interactive decimal calculator",
		Long: `An interactive calculator with exact decimal arithmetic and a
persistent calculation history. Type "help" at the prompt to list the
available commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Storage, "storage", "", "storage backend (csv|memory|sqlite)")
	cmd.Flags().StringVar(&opts.DataPath, "data", "", "path to the history file (csv and sqlite backends)")
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "path to a YAML config file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "load configuration", err)
	}

	// Flags win over environment and file.
	if opts.Storage != "" {
		cfg.Storage = opts.Storage
	}
	if opts.DataPath != "" {
		cfg.DataPath = opts.DataPath
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return WrapExitError(ExitCommandError, "configure logging", err)
	}
	defer logger.Sync()

	repository, err := newRepository(cfg, logger)
	if err != nil {
		// Unrecoverable storage failure during initialization is the one
		// fatal error in the system.
		return WrapExitError(ExitCommandError, "initialize storage", err)
	}
	defer repository.Close()

	logger.Info("storage configured",
		zap.String("kind", cfg.Storage),
		zap.String("path", cfg.DataPath),
	)

	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	hist := history.NewService(repository, logger)
	registry := command.NewRegistry(out, logger)
	repl.RegisterBuiltins(registry, hist, calc.SystemClock{}, in, out, logger)

	return repl.New(registry, in, out, logger).Run()
}

// newRepository constructs the backend selected by the configuration.
func newRepository(cfg config.Config, logger *zap.Logger) (repo.Repository, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return repo.NewMemory(), nil
	case config.StorageSQLite:
		return repo.NewSQLite(cfg.DataPath)
	case config.StorageCSV:
		return repo.NewCSV(cfg.DataPath, logger)
	}
	return nil, fmt.Errorf("unknown storage kind %q", cfg.Storage)
}
