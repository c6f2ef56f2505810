package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultIterations = 500_000_000
	DefaultMaxThreads = 10
)

// Config is the fixed sweep configuration. StartBarrier, PinThreads and
// Verbose are knobs for library callers and tests; the command line exposes
// none of them, so a plain ctrbench run always has all three off.
type Config struct {
	Iterations   int  `mapstructure:"iterations"`
	MaxThreads   int  `mapstructure:"max_threads"`
	StartBarrier bool `mapstructure:"start_barrier"`
	PinThreads   bool `mapstructure:"pin_threads"`
	Verbose      bool `mapstructure:"verbose"`
}

// SetDefaults registers the default for every key. ctrbench reads no config
// file and binds no environment, so these defaults are the configuration;
// tests override them with viper.Set.
func SetDefaults() {
	viper.SetDefault("iterations", DefaultIterations)
	viper.SetDefault("max_threads", DefaultMaxThreads)
	viper.SetDefault("start_barrier", false)
	viper.SetDefault("pin_threads", false)
	viper.SetDefault("verbose", false)
}

// Load applies the defaults, validates and decodes the configuration.
func Load() (Config, error) {
	SetDefaults()

	if err := ValidateConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}
