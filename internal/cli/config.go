package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/advent/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyInputDir = "input_dir"
	cfgKeyWorkers  = "workers"
	cfgKeyLogLevel = "log_level"
)

// loadConfig reads config.yaml from configDir. A missing file or directory
// is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyWorkers, 0)
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		InputDir: v.GetString(cfgKeyInputDir),
		Workers:  v.GetInt(cfgKeyWorkers),
		LogLevel: strings.ToLower(v.GetString(cfgKeyLogLevel)),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// newLogger builds a JSON logger on the command's stderr. verbose forces
// debug level.
func newLogger(cmd *cobra.Command, level string, verbose bool) (*zap.Logger, error) {
	if level == "" {
		level = types.DefaultLogLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}
