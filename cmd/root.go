// Package cmd wires the CLI: flag parsing, configuration, and the search
// drivers behind each subcommand.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/layoutsmith/internal/config"
	"github.com/xkilldash9x/layoutsmith/internal/observability"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "layoutsmith",
	Short: "Layoutsmith searches for ergonomic keyboard layouts",
	Long: `Layoutsmith scores keyboard layouts against a text corpus using a
catalog of ergonomic penalty rules and searches the layout space with
simulated annealing (optimize) or exhaustive neighborhood climbing
(refine).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Assigned here rather than in the rootCmd literal to avoid an
	// initialization cycle: initializeConfig refers back to rootCmd.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			return err
		}

		var c config.Config
		if err := viper.Unmarshal(&c); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = &c

		if cfg.Search.Debug && cfg.Logger.Level == "info" {
			cfg.Logger.Level = "debug"
		}
		observability.InitializeLogger(cfg.Logger)
		observability.GetLogger().Debug("starting layoutsmith", zap.String("version", Version))
		return nil
	}
}

// Execute runs the root command with a signal-aware context.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		observability.GetLogger().Error("command failed", zap.Error(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./layoutsmith.yaml)")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed (0 seeds from the clock)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "detailed per-rule scoring and debug logging")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// initializeConfig reads the config file and environment variables into
// viper, on top of the compiled-in defaults.
func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("layoutsmith")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("LAYOUTSMITH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and env vars apply.
	}

	if err := viper.BindPFlag("search.seed", rootCmd.PersistentFlags().Lookup("seed")); err != nil {
		return err
	}
	if err := viper.BindPFlag("search.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return err
	}
	return nil
}
