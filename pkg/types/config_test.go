package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "negative workers returns ErrInvalidConfig",
			config:  Config{Workers: -1},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown log level returns ErrInvalidConfig",
			config:  Config{LogLevel: "verbose"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "zero workers means GOMAXPROCS",
			config:  Config{Workers: 0, LogLevel: LogLevelInfo},
			wantErr: nil,
		},
		{
			name:    "empty log level is valid at config level",
			config:  Config{InputDir: "/tmp/inputs", Workers: 4},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
