// Package config defines the application configuration and its defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Search SearchConfig `mapstructure:"search" yaml:"search"`
}

// LoggerConfig controls the zap logger and its optional rotated file sink.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SearchConfig carries the run parameters for the optimize and refine
// commands.
type SearchConfig struct {
	// TopK is how many best layouts each run retains and prints.
	TopK int `mapstructure:"top_k" yaml:"top_k"`
	// MaxSwaps bounds random swaps per annealing iteration.
	MaxSwaps int `mapstructure:"max_swaps" yaml:"max_swaps"`
	// Generations is how many annealing generations to run; 0 runs until
	// interrupted.
	Generations int `mapstructure:"generations" yaml:"generations"`
	// Depth is the number of simultaneous pair swaps refine enumerates.
	Depth int `mapstructure:"depth" yaml:"depth"`
	// Workers caps concurrent candidate evaluations during refine; 0
	// means one per logical CPU.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// Debug switches detailed per-rule scoring on.
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// Seed fixes the random source for reproducible runs; 0 seeds from
	// the clock.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// SetDefaults initializes default values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "layoutsmith")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)

	v.SetDefault("search.top_k", 1)
	v.SetDefault("search.max_swaps", 3)
	v.SetDefault("search.generations", 1)
	v.SetDefault("search.depth", 1)
	v.SetDefault("search.workers", 0)
	v.SetDefault("search.debug", false)
	v.SetDefault("search.seed", 0)
}

// Validate rejects parameter combinations the search drivers cannot run
// with.
func (c *Config) Validate() error {
	if c.Search.TopK < 1 {
		return fmt.Errorf("search.top_k must be at least 1, got %d", c.Search.TopK)
	}
	if c.Search.MaxSwaps < 1 {
		return fmt.Errorf("search.max_swaps must be at least 1, got %d", c.Search.MaxSwaps)
	}
	if c.Search.Generations < 0 {
		return fmt.Errorf("search.generations must not be negative, got %d", c.Search.Generations)
	}
	if c.Search.Depth < 0 {
		return fmt.Errorf("search.depth must not be negative, got %d", c.Search.Depth)
	}
	return nil
}

// NewDefaultConfig returns a configuration populated with defaults only.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults always unmarshal; reaching this is a programming error.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}
