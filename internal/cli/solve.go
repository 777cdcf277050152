package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/paths"
	"github.com/mesh-intelligence/advent/internal/runner"
	"github.com/mesh-intelligence/advent/internal/solvers"
	"github.com/mesh-intelligence/advent/pkg/types"
)

type solveFlags struct {
	jsonMode   bool
	profileDir string
}

func newSolveCmd() *cobra.Command {
	var sf solveFlags
	cmd := &cobra.Command{
		Use:   "solve <day> [input-file]",
		Short: "Solve both parts of one day",
		Long: "Read the input file (default: <input-dir>/dayNN.txt), run part one and\n" +
			"part two of the day's solver and print both answers.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, sf)
		},
	}
	cmd.Flags().BoolVar(&sf.jsonMode, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&sf.profileDir, "profile", "", "write a CPU profile into this directory")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string, sf solveFlags) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: day must be a number, got %q", types.ErrUnknownDay, args[0])
	}

	solver, err := solvers.New(current.config).Get(day)
	if err != nil {
		return err
	}

	path, err := inputPath(day, args)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read input: %w", errSystem, err)
	}
	current.logger.Debug("input read", zap.String("path", path), zap.Int("bytes", len(data)))

	if sf.profileDir != "" {
		if err := os.MkdirAll(sf.profileDir, 0o755); err != nil {
			return fmt.Errorf("%w: create profile dir: %w", errSystem, err)
		}
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(sf.profileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	res, err := runner.New(current.logger).Run(cmd.Context(), solver, string(data))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sf.jsonMode {
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("%w: marshal result: %w", errSystem, err)
		}
		fmt.Fprintln(out, string(b))
		return nil
	}
	fmt.Fprintf(out, "Part one: %s\nPart two: %s\n", res.PartOne, res.PartTwo)
	return nil
}

// inputPath returns the explicit file argument or the day's file in the
// resolved input directory.
func inputPath(day int, args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}
	dir, err := paths.ResolveInputDir(flags.inputDir, current.config.InputDir)
	if err != nil {
		return "", fmt.Errorf("%w: resolve input dir: %w", errSystem, err)
	}
	return paths.InputFile(dir, day), nil
}
