package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// AppName names the config directory and the environment prefix.
const AppName = "ethicsim"

// EnvPrefix is the prefix for environment overrides, e.g. ETHICSIM_DEBATE_SEED.
const EnvPrefix = "ETHICSIM"

// Config represents the complete ethicsim configuration
type Config struct {
	Debate  DebateConfig  `mapstructure:"debate" yaml:"debate"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// DebateConfig controls debate playback
type DebateConfig struct {
	// TickIntervalMs is the delay between revealed messages in milliseconds (default: 2000)
	TickIntervalMs int `mapstructure:"tick_interval_ms" yaml:"tick_interval_ms"`
	// Seed seeds the score random source; 0 seeds from the clock
	Seed int64 `mapstructure:"seed" yaml:"seed"`
	// MinAgents is the fewest agents a debate may start with (default: 2, min: 2, max: 5)
	MinAgents int `mapstructure:"min_agents" yaml:"min_agents"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is the color theme. Options: "default", "mono"
	Theme string `mapstructure:"theme" yaml:"theme"`
	// WrapWidth is the width chat bubbles wrap at; 0 follows the terminal width
	WrapWidth int `mapstructure:"wrap_width" yaml:"wrap_width"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging to a file is enabled (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory holding the log file. Empty means the config directory.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 5)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 2)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Debate: DebateConfig{
			TickIntervalMs: 2000,
			Seed:           0,
			MinAgents:      2,
		},
		TUI: TUIConfig{
			Theme:     "default",
			WrapWidth: 0,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// TickInterval returns the reveal delay as a time.Duration
func (c *DebateConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// ResolveDir returns the log directory, falling back to ConfigDir
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return ConfigDir()
}

// YAML renders the configuration as a YAML document
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Debate defaults
	viper.SetDefault("debate.tick_interval_ms", defaults.Debate.TickIntervalMs)
	viper.SetDefault("debate.seed", defaults.Debate.Seed)
	viper.SetDefault("debate.min_agents", defaults.Debate.MinAgents)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.wrap_width", defaults.TUI.WrapWidth)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
