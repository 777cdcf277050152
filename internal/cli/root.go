// Package cli implements the advent command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/paths"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errSystem marks failures outside the user's input: unreadable files,
// unwritable directories, broken config.
var errSystem = errors.New("system error")

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	inputDir  string
	verbose   bool
}

var flags rootFlags

// session holds what PersistentPreRunE resolves for the running command.
type session struct {
	configDir string
	config    types.Config
	logger    *zap.Logger
}

var current = session{logger: zap.NewNop()}

// NewRootCmd creates the top-level "advent" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "advent",
		Short: "Solve the day 1 through 16 holiday programming puzzles",
		Long: "advent reads a puzzle input file, runs both parts of the day's solver\n" +
			"and prints the two answers.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.inputDir, "input-dir", "", "puzzle input directory (default: ./inputs)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// setup resolves the config directory, loads config.yaml and builds the
// logger. The version command needs none of it.
func setup(cmd *cobra.Command, args []string) error {
	current = session{logger: zap.NewNop()}
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("%w: resolve config dir: %w", errSystem, err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("%w: %w", errSystem, err)
	}

	logger, err := newLogger(cmd, cfg.LogLevel, flags.verbose)
	if err != nil {
		return fmt.Errorf("%w: initialize logger: %w", errSystem, err)
	}

	current = session{configDir: configDir, config: cfg, logger: logger}
	logger.Debug("config loaded",
		zap.String("config_dir", configDir),
		zap.Int("workers", cfg.Workers),
		zap.String("log_level", cfg.LogLevel))
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	_ = current.logger.Sync()
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status: 2 for system
// and config failures, 1 for everything the user can fix in their input.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errSystem), errors.Is(err, types.ErrInvalidConfig):
		return exitSysError
	default:
		return exitUserError
	}
}
