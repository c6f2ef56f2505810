package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after the defaults have been registered.
func ValidateConfig() error {
	var errors []string

	if iterations := viper.GetInt("iterations"); iterations <= 0 {
		errors = append(errors, fmt.Sprintf("iterations must be positive, got: %d", iterations))
	}

	// Zero threads is a valid, empty sweep.
	if maxThreads := viper.GetInt("max_threads"); maxThreads < 0 {
		errors = append(errors, fmt.Sprintf("max_threads must not be negative, got: %d", maxThreads))
	}

	if viper.GetBool("pin_threads") && !viper.GetBool("start_barrier") {
		errors = append(errors, "pin_threads requires start_barrier, pinning cost would otherwise be timed")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
