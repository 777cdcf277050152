package types

import "fmt"

// Config holds the settings a solve run reads from config.yaml and flags.
type Config struct {
	InputDir string `json:"input_dir" yaml:"input_dir,omitempty"`
	Workers  int    `json:"workers" yaml:"workers"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DefaultLogLevel is used when config.yaml does not name one.
const DefaultLogLevel = LogLevelInfo

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// Validate checks that the Config is well-formed. Failures wrap
// ErrInvalidConfig. An empty LogLevel is accepted and means DefaultLogLevel.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
