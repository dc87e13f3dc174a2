package cmd

import (
	"os"
	"strings"

	cmdconfig "github.com/Iron-Ham/ethicsim/internal/cmd/config"
	"github.com/Iron-Ham/ethicsim/internal/config"
	"github.com/Iron-Ham/ethicsim/internal/event"
	"github.com/Iron-Ham/ethicsim/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ethicsim",
	Short: "AI ethics debate simulator",
	Long: `ethicsim puts AI agents with different ethical frameworks in a scripted
debate about a real-world dilemma, then scores their arguments and recommends
a policy.

Run without arguments to open the interactive terminal UI, or use the
headless commands to list the catalog and play a debate to stdout.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/ethicsim/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	cmdconfig.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/" + config.AppName)
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(config.EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	// e.g., ETHICSIM_DEBATE_TICK_INTERVAL_MS for debate.tick_interval_ms
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the file logger described by cfg, or a no-op logger when
// logging is disabled.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

// logEvents records every bus event at debug level.
func logEvents(bus *event.Bus, logger *logging.Logger) string {
	return bus.SubscribeAll(func(e event.Event) {
		logger.Debug("event", "event_type", e.EventType())
	})
}

// exportDir is where the TUI writes transcripts: the working directory when
// it can be resolved.
func exportDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
