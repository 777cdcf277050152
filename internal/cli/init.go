package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/advent/internal/paths"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config and input directories",
		Long:  "Create the configuration directory with a default config.yaml, then create the input directory.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := current.configDir

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("%w: create config directory: %w", errSystem, err)
	}

	configPath := filepath.Join(configDir, configFileExt)
	wrote, err := writeConfigIfMissing(configPath, flags.inputDir)
	if err != nil {
		return fmt.Errorf("%w: write config: %w", errSystem, err)
	}

	inputDir, err := paths.ResolveInputDir(flags.inputDir, current.config.InputDir)
	if err != nil {
		return fmt.Errorf("%w: resolve input dir: %w", errSystem, err)
	}
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		return fmt.Errorf("%w: create input directory: %w", errSystem, err)
	}

	current.logger.Debug("initialized",
		zap.String("config", configPath),
		zap.Bool("config_written", wrote),
		zap.String("input_dir", inputDir))

	fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\nInputs: %s\n", configPath, inputDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether it wrote the file.
func writeConfigIfMissing(path, inputDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if inputDir != "" {
		abs, err := filepath.Abs(inputDir)
		if err != nil {
			return false, err
		}
		inputDir = abs
	}
	cfg := types.Config{
		InputDir: inputDir,
		Workers:  0,
		LogLevel: types.DefaultLogLevel,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
