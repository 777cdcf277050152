// Package paths resolves the configuration directory and the puzzle input
// directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative default for the input directory.
const DefaultInputDirName = "inputs"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ADVENT_CONFIG_DIR"
	EnvInputDir  = "ADVENT_INPUT_DIR"
)

const appName = "advent"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/advent (fallback ~/.config/advent)
// macOS:   ~/Library/Application Support/advent
// Windows: %APPDATA%/advent
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > ADVENT_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveInputDir returns the input directory following the precedence chain:
// flag > configYAMLValue > ADVENT_INPUT_DIR env > $(CWD)/inputs.
func ResolveInputDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvInputDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultInputDirName), nil
}

// InputFile returns the conventional input path for a day: dayNN.txt.
func InputFile(inputDir string, day int) string {
	return filepath.Join(inputDir, fmt.Sprintf("day%02d.txt", day))
}
