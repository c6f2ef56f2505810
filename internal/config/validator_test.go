package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    string
	}{
		{
			name:      "Defaults",
			setup:     func() {},
			wantError: false,
		},
		{
			name: "Empty Sweep",
			setup: func() {
				viper.Set("max_threads", 0)
			},
			wantError: false,
		},
		{
			name: "Invalid Iterations",
			setup: func() {
				viper.Set("iterations", -1)
			},
			wantError: true,
			errMsg:    "iterations must be positive",
		},
		{
			name: "Negative Max Threads",
			setup: func() {
				viper.Set("max_threads", -2)
			},
			wantError: true,
			errMsg:    "max_threads must not be negative",
		},
		{
			name: "Pinning Without Barrier",
			setup: func() {
				viper.Set("pin_threads", true)
			},
			wantError: true,
			errMsg:    "pin_threads requires start_barrier",
		},
		{
			name: "Multiple Errors",
			setup: func() {
				viper.Set("iterations", 0)
				viper.Set("max_threads", -1)
			},
			wantError: true,
			errMsg:    "max_threads must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			SetDefaults()
			tt.setup()

			err := ValidateConfig()
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateConfig() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if tt.wantError && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateConfig() error = %v, want message containing %q", err, tt.errMsg)
			}
		})
	}
	viper.Reset()
}
