package cmd

import (
	"fmt"

	"github.com/Iron-Ham/ethicsim/internal/config"
	"github.com/Iron-Ham/ethicsim/internal/event"
	"github.com/Iron-Ham/ethicsim/internal/store"
	"github.com/Iron-Ham/ethicsim/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var watchConfig bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive simulator",
	Long: `Open the interactive terminal UI.

The UI walks through the same pages as the browser app: onboarding, scenario
selection, agent configuration, the live debate and the results.

With --watch-config, edits to the config file are applied while the UI is
running. A new tick interval, seed or minimum agent count takes effect from
the next debate; a new theme applies immediately.`,
	RunE: runTUI,
}

func init() {
	runCmd.Flags().BoolVar(&watchConfig, "watch-config", false, "reload the config file when it changes")
	rootCmd.AddCommand(runCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logger.Close() }()

	bus := event.NewBus(event.WithLogger(logger))
	logEvents(bus, logger)

	st := store.New(bus, logger, store.WithMinAgents(cfg.Debate.MinAgents))
	app := tui.New(tui.Options{
		Store:     st,
		Bus:       bus,
		Logger:    logger,
		Config:    cfg,
		ExportDir: exportDir(),
	})

	if watchConfig {
		if viper.ConfigFileUsed() == "" {
			logger.Warn("config watch skipped: no config file in use")
		} else {
			config.Watch(viper.GetViper(), app.ApplyConfig, func(err error) {
				logger.Warn("config reload rejected", "error", err.Error())
			})
			logger.Info("watching config file", "path", viper.ConfigFileUsed())
		}
	}

	logger.Info("tui started", "theme", cfg.TUI.Theme, "tick_interval_ms", cfg.Debate.TickIntervalMs)
	return app.Run()
}
