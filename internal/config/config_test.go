package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	want := &Config{
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "console",
			ServiceName: "layoutsmith",
			MaxSize:     50,
			MaxBackups:  3,
			MaxAge:      14,
			Compress:    true,
		},
		Search: SearchConfig{
			TopK:        1,
			MaxSwaps:    3,
			Generations: 1,
			Depth:       1,
		},
	}
	if diff := cmp.Diff(want, NewDefaultConfig()); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestSetDefaultsRespectsOverrides(t *testing.T) {
	v := viper.New()
	v.Set("search.top_k", 7)
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	assert.Equal(t, 7, cfg.Search.TopK)
	assert.Equal(t, 3, cfg.Search.MaxSwaps)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "Defaults", mutate: func(*Config) {}},
		{name: "ZeroGenerationsRunsForever", mutate: func(c *Config) { c.Search.Generations = 0 }},
		{name: "ZeroDepthIsIdentity", mutate: func(c *Config) { c.Search.Depth = 0 }},
		{name: "TopKTooSmall", mutate: func(c *Config) { c.Search.TopK = 0 }, wantErr: "top_k"},
		{name: "MaxSwapsTooSmall", mutate: func(c *Config) { c.Search.MaxSwaps = 0 }, wantErr: "max_swaps"},
		{name: "NegativeGenerations", mutate: func(c *Config) { c.Search.Generations = -1 }, wantErr: "generations"},
		{name: "NegativeDepth", mutate: func(c *Config) { c.Search.Depth = -2 }, wantErr: "depth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
