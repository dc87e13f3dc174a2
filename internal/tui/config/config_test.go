package config

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	v := viper.New()
	for k, val := range defaultValues() {
		v.SetDefault(k, val)
	}
	return New(v, filepath.Join(t.TempDir(), "config.yaml"))
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// selectKey moves the cursor onto key.
func selectKey(t *testing.T, m Model, key string) Model {
	t.Helper()
	for ci, cat := range m.categories {
		for ii, item := range cat.Items {
			if item.Key == key {
				m.categoryIndex = ci
				m.itemIndex = ii
				return m
			}
		}
	}
	t.Fatalf("no item for key %s", key)
	return m
}

func TestCategoriesCoverDefaults(t *testing.T) {
	defaults := defaultValues()
	seen := 0
	for _, cat := range Categories() {
		for _, item := range cat.Items {
			if _, ok := defaults[item.Key]; !ok {
				t.Errorf("item %s has no default", item.Key)
			}
			if item.Type == TypeSelect && len(item.Options) == 0 {
				t.Errorf("select item %s has no options", item.Key)
			}
			seen++
		}
	}
	if seen != len(defaults) {
		t.Errorf("categories list %d items, defaults have %d", seen, len(defaults))
	}
}

func TestNavigationWraps(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "up")
	last := len(m.categories) - 1
	if m.categoryIndex != last || m.itemIndex != len(m.categories[last].Items)-1 {
		t.Errorf("up from first item = (%d,%d), want last item", m.categoryIndex, m.itemIndex)
	}

	m = press(t, m, "down")
	if m.categoryIndex != 0 || m.itemIndex != 0 {
		t.Errorf("down from last item = (%d,%d), want (0,0)", m.categoryIndex, m.itemIndex)
	}

	m = press(t, m, "tab")
	if m.categoryIndex != 1 || m.itemIndex != 0 {
		t.Errorf("tab = (%d,%d), want (1,0)", m.categoryIndex, m.itemIndex)
	}
}

func TestToggleBoolSaves(t *testing.T) {
	m := newTestModel(t)
	m = selectKey(t, m, "logging.enabled")

	m = press(t, m, " ")
	if m.v.GetBool("logging.enabled") {
		t.Error("logging.enabled should be toggled off")
	}
	if !m.Modified() {
		t.Error("Modified() = false after toggle")
	}

	saved := viper.New()
	saved.SetConfigFile(m.path)
	if err := saved.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}
	if saved.GetBool("logging.enabled") {
		t.Error("saved file should have logging.enabled false")
	}
}

func TestEditIntRejectsInvalid(t *testing.T) {
	m := newTestModel(t)
	m = selectKey(t, m, "debate.min_agents")

	m = press(t, m, "enter")
	if !m.editing {
		t.Fatal("enter on int item should start editing")
	}

	m.textInput.SetValue("9")
	m = press(t, m, "enter")
	if !m.editing {
		t.Error("invalid value should keep the editor open")
	}
	if !strings.Contains(m.errorMsg, "debate.min_agents") {
		t.Errorf("errorMsg = %q, want mention of debate.min_agents", m.errorMsg)
	}
	if got := m.v.GetInt("debate.min_agents"); got != 2 {
		t.Errorf("min_agents = %d, want unchanged 2", got)
	}

	m.textInput.SetValue("abc")
	m = press(t, m, "enter")
	if m.errorMsg != "expected integer value" {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}

	m.textInput.SetValue("3")
	m = press(t, m, "enter")
	if m.editing {
		t.Error("valid value should close the editor")
	}
	if got := m.v.GetInt("debate.min_agents"); got != 3 {
		t.Errorf("min_agents = %d, want 3", got)
	}
}

func TestSelectTheme(t *testing.T) {
	m := newTestModel(t)
	m = selectKey(t, m, "tui.theme")

	m = press(t, m, "enter", "down", "enter")
	if got := m.v.GetString("tui.theme"); got != "mono" {
		t.Errorf("theme = %q, want mono", got)
	}
}

func TestResetToDefault(t *testing.T) {
	m := newTestModel(t)
	m = selectKey(t, m, "debate.tick_interval_ms")
	m.v.Set("debate.tick_interval_ms", 500)

	m = press(t, m, "r")
	if got := m.v.GetInt("debate.tick_interval_ms"); got != 2000 {
		t.Errorf("tick_interval_ms = %d, want 2000", got)
	}
	if !strings.HasPrefix(m.infoMsg, "Reset ") {
		t.Errorf("infoMsg = %q", m.infoMsg)
	}
}

func TestViewRendersItems(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"[ Debate ]", "Tick Interval (ms)", "not created"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
