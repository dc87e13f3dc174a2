package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Debate.TickIntervalMs != 2000 {
		t.Errorf("Debate.TickIntervalMs = %d, want 2000", cfg.Debate.TickIntervalMs)
	}
	if cfg.Debate.TickInterval() != 2*time.Second {
		t.Errorf("Debate.TickInterval() = %v, want 2s", cfg.Debate.TickInterval())
	}
	if cfg.Debate.MinAgents != 2 {
		t.Errorf("Debate.MinAgents = %d, want 2", cfg.Debate.MinAgents)
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default() should validate, got %v", errs)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got, want := ConfigDir(), "/custom/config/ethicsim"; got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, _ := os.UserHomeDir()
		if got, want := ConfigDir(), filepath.Join(home, ".config", "ethicsim"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got, want := ConfigFile(), "/custom/config/ethicsim/config.yaml"; got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestLoggingResolveDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	cfg := Default()
	if got := cfg.Logging.ResolveDir(); got != "/xdg/ethicsim" {
		t.Errorf("ResolveDir() = %q, want config dir", got)
	}
	cfg.Logging.Dir = "/var/log/ethicsim"
	if got := cfg.Logging.ResolveDir(); got != "/var/log/ethicsim" {
		t.Errorf("ResolveDir() = %q, want explicit dir", got)
	}
}

func TestGet(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg := Get()
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_FallsBackOnInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("debate.tick_interval_ms", -1)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject a negative tick interval")
	}
	if got := Get().Debate.TickIntervalMs; got != 2000 {
		t.Errorf("Get() should fall back to defaults, got tick %d", got)
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func newFileViper(t *testing.T, path string) *viper.Viper {
	t.Helper()
	v := viper.New()
	defaults := Default()
	v.SetDefault("debate.tick_interval_ms", defaults.Debate.TickIntervalMs)
	v.SetDefault("debate.min_agents", defaults.Debate.MinAgents)
	v.SetDefault("tui.theme", defaults.TUI.Theme)
	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}
	return v
}

func TestLoadFrom_File(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
debate:
  tick_interval_ms: 500
  seed: 42
tui:
  theme: mono
  wrap_width: 72
logging:
  level: debug
`)
	cfg, err := LoadFrom(newFileViper(t, path))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	want := Default()
	want.Debate.TickIntervalMs = 500
	want.Debate.Seed = 42
	want.TUI.Theme = "mono"
	want.TUI.WrapWidth = 72
	want.Logging.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_Env(t *testing.T) {
	t.Setenv("ETHICSIM_DEBATE_SEED", "99")

	v := viper.New()
	v.SetDefault("debate.tick_interval_ms", 2000)
	v.SetDefault("debate.seed", 0)
	v.SetDefault("debate.min_agents", 2)
	v.SetDefault("logging.max_size_mb", 5)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Debate.Seed != 99 {
		t.Errorf("Debate.Seed = %d, want 99 from the environment", cfg.Debate.Seed)
	}
}

func TestYAML(t *testing.T) {
	out, err := Default().YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	var back Config
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(*Default(), back); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(out), "tick_interval_ms: 2000") {
		t.Errorf("YAML() output missing tick interval:\n%s", out)
	}
}

func TestHandleChange(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "debate:\n  tick_interval_ms: 1000\n")
	v := newFileViper(t, path)

	var got []*Config
	var errs []error
	onChange := func(c *Config) { got = append(got, c) }
	onError := func(err error) { errs = append(errs, err) }

	writeConfig(t, dir, "debate:\n  tick_interval_ms: 250\n")
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	handleChange(v, fsnotify.Event{Name: path, Op: fsnotify.Write}, onChange, onError)

	writeConfig(t, dir, "debate:\n  tick_interval_ms: -5\n")
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	handleChange(v, fsnotify.Event{Name: path, Op: fsnotify.Write}, onChange, onError)

	handleChange(v, fsnotify.Event{Name: path, Op: fsnotify.Chmod}, onChange, onError)

	if len(got) != 1 || got[0].Debate.TickIntervalMs != 250 {
		t.Errorf("onChange calls = %+v, want one with tick 250", got)
	}
	if len(errs) != 1 {
		t.Errorf("onError calls = %d, want 1", len(errs))
	}
}
