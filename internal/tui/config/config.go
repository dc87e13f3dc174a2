// Package config provides the interactive configuration editor behind
// "ethicsim config edit".
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/config"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// Item types
const (
	TypeString = "string"
	TypeBool   = "bool"
	TypeInt    = "int"
	TypeSelect = "select"
)

// ConfigItem represents a single configuration item
type ConfigItem struct {
	Key         string
	Label       string
	Description string
	Type        string   // TypeString, TypeBool, TypeInt or TypeSelect
	Options     []string // For select type
}

// Category represents a group of config items
type Category struct {
	Name  string
	Items []ConfigItem
}

// Categories returns the editable settings grouped by section.
func Categories() []Category {
	return []Category{
		{
			Name: "Debate",
			Items: []ConfigItem{
				{
					Key:         "debate.tick_interval_ms",
					Label:       "Tick Interval (ms)",
					Description: "Delay between revealed debate messages",
					Type:        TypeInt,
				},
				{
					Key:         "debate.seed",
					Label:       "Score Seed",
					Description: "Seed for the score random source (0 = seed from the clock)",
					Type:        TypeInt,
				},
				{
					Key:         "debate.min_agents",
					Label:       "Minimum Agents",
					Description: "Fewest agents a debate may start with",
					Type:        TypeInt,
				},
			},
		},
		{
			Name: "TUI",
			Items: []ConfigItem{
				{
					Key:         "tui.theme",
					Label:       "Theme",
					Description: "Color theme",
					Type:        TypeSelect,
					Options:     config.ValidThemes(),
				},
				{
					Key:         "tui.wrap_width",
					Label:       "Wrap Width",
					Description: "Column at which chat bubbles wrap (0 = terminal width)",
					Type:        TypeInt,
				},
			},
		},
		{
			Name: "Logging",
			Items: []ConfigItem{
				{
					Key:         "logging.enabled",
					Label:       "Enabled",
					Description: "Write a debug log file",
					Type:        TypeBool,
				},
				{
					Key:         "logging.level",
					Label:       "Level",
					Description: "Minimum level written to the log",
					Type:        TypeSelect,
					Options:     config.ValidLogLevels(),
				},
				{
					Key:         "logging.dir",
					Label:       "Directory",
					Description: "Directory for the log file (empty = config directory)",
					Type:        TypeString,
				},
				{
					Key:         "logging.max_size_mb",
					Label:       "Max Size (MB)",
					Description: "Log size that triggers rotation",
					Type:        TypeInt,
				},
				{
					Key:         "logging.max_backups",
					Label:       "Max Backups",
					Description: "Rotated log files to keep",
					Type:        TypeInt,
				},
			},
		},
	}
}

// defaultValues maps each editable key to its default.
func defaultValues() map[string]any {
	d := config.Default()
	return map[string]any{
		"debate.tick_interval_ms": d.Debate.TickIntervalMs,
		"debate.seed":             d.Debate.Seed,
		"debate.min_agents":       d.Debate.MinAgents,
		"tui.theme":               d.TUI.Theme,
		"tui.wrap_width":          d.TUI.WrapWidth,
		"logging.enabled":         d.Logging.Enabled,
		"logging.level":           d.Logging.Level,
		"logging.dir":             d.Logging.Dir,
		"logging.max_size_mb":     d.Logging.MaxSizeMB,
		"logging.max_backups":     d.Logging.MaxBackups,
	}
}

// Model is the Bubbletea model for the interactive config UI
type Model struct {
	v              *viper.Viper
	path           string
	categories     []Category
	categoryIndex  int
	itemIndex      int
	width          int
	height         int
	editing        bool
	textInput      textinput.Model
	selectIndex    int // For select-type options
	errorMsg       string
	infoMsg        string
	quitting       bool
	configModified bool
}

// New creates a config editor over v that saves to path.
func New(v *viper.Viper, path string) Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	return Model{
		v:          v,
		path:       path,
		categories: Categories(),
		textInput:  ti,
	}
}

// Modified reports whether any change was written.
func (m Model) Modified() bool {
	return m.configModified
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Clear messages on any key
		m.errorMsg = ""
		m.infoMsg = ""

		if m.editing {
			return m.handleEditingKeypress(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			m.itemIndex--
			if m.itemIndex < 0 {
				m.categoryIndex = (m.categoryIndex - 1 + len(m.categories)) % len(m.categories)
				m.itemIndex = len(m.categories[m.categoryIndex].Items) - 1
			}

		case "down", "j":
			m.itemIndex++
			if m.itemIndex >= len(m.categories[m.categoryIndex].Items) {
				m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
				m.itemIndex = 0
			}

		case "tab":
			m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
			m.itemIndex = 0

		case "shift+tab":
			m.categoryIndex = (m.categoryIndex - 1 + len(m.categories)) % len(m.categories)
			m.itemIndex = 0

		case "enter", " ":
			item := m.currentItem()
			switch item.Type {
			case TypeBool:
				if err := m.apply(item.Key, !m.v.GetBool(item.Key)); err != nil {
					m.errorMsg = err.Error()
					return m, nil
				}
				m.saveConfig()
			case TypeSelect:
				m.editing = true
				m.selectIndex = m.getCurrentSelectIndex()
			default:
				m.editing = true
				m.textInput.SetValue(m.getDisplayValue(item))
				m.textInput.Focus()
			}

		case "r":
			m.resetCurrentToDefault()
		}
	}

	return m, nil
}

func (m Model) handleEditingKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.currentItem()

	switch msg.String() {
	case "esc":
		m.editing = false
		m.textInput.SetValue("")
		return m, nil

	case "enter":
		var value string
		if item.Type == TypeSelect {
			value = item.Options[m.selectIndex]
		} else {
			value = strings.TrimSpace(m.textInput.Value())
		}
		if err := m.validateAndSet(item, value); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.saveConfig()
		m.editing = false
		m.textInput.SetValue("")
		return m, nil

	case "up", "k":
		if item.Type == TypeSelect {
			m.selectIndex = (m.selectIndex - 1 + len(item.Options)) % len(item.Options)
			return m, nil
		}

	case "down", "j":
		if item.Type == TypeSelect {
			m.selectIndex = (m.selectIndex + 1) % len(item.Options)
			return m, nil
		}
	}

	if item.Type != TypeSelect {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Header.Width(m.width - 4).Render("Ethics Simulator Configuration"))
	b.WriteString("\n\n")

	configPath := m.v.ConfigFileUsed()
	if configPath == "" {
		configPath = m.path + " (not created)"
	}
	b.WriteString(styles.Muted.Render(fmt.Sprintf("Config file: %s", configPath)))
	b.WriteString("\n\n")

	for ci, cat := range m.categories {
		isActiveCategory := ci == m.categoryIndex

		catStyle := styles.Muted.Bold(true)
		if isActiveCategory {
			catStyle = styles.Primary.Bold(true)
		}
		b.WriteString(catStyle.Render(fmt.Sprintf("[ %s ]", cat.Name)))
		b.WriteString("\n")

		for ii, item := range cat.Items {
			b.WriteString(m.renderItem(item, isActiveCategory && ii == m.itemIndex))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(m.renderEditOverlay())
	} else {
		b.WriteString(styles.Muted.Render(m.currentItem().Description))
		b.WriteString("\n")
	}

	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.Error.Bold(true).Render("Error: " + m.errorMsg))
	}
	if m.infoMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.Secondary.Render(m.infoMsg))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderItem(item ConfigItem, selected bool) string {
	value := m.getDisplayValue(item)
	if value == "" {
		value = "(unset)"
	}

	paddedLabel := fmt.Sprintf("%-25s", item.Label)

	if selected {
		cursor := styles.Secondary.Render(">")
		labelStyled := styles.Text.Bold(true).Render(paddedLabel)
		valueStyled := styles.Primary.Render(value)
		return fmt.Sprintf("  %s %s  %s", cursor, labelStyled, valueStyled)
	}
	return fmt.Sprintf("    %s  %s", styles.Muted.Render(paddedLabel), styles.Text.Render(value))
}

func (m Model) renderEditOverlay() string {
	item := m.currentItem()

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.PrimaryColor).
		Padding(1, 2).
		Width(50)

	var content strings.Builder
	if item.Type == TypeSelect {
		fmt.Fprintf(&content, "Select %s:\n\n", item.Label)
		for i, opt := range item.Options {
			if i == m.selectIndex {
				content.WriteString(styles.TabActive.Render(" > "+opt+" ") + "\n")
			} else {
				content.WriteString(styles.TabInactive.Render("   "+opt+" ") + "\n")
			}
		}
		content.WriteString("\n" + styles.Muted.Render("j/k or arrows to select, enter to confirm, esc to cancel"))
	} else {
		fmt.Fprintf(&content, "Edit %s:\n\n", item.Label)
		content.WriteString(m.textInput.View())
		content.WriteString("\n\n" + styles.Muted.Render("enter to save, esc to cancel"))
	}

	return "\n" + borderStyle.Render(content.String())
}

func (m Model) renderHelp() string {
	keyStyle := styles.HelpKey

	if m.editing {
		return styles.HelpBar.Render(
			keyStyle.Render("enter") + " save  " +
				keyStyle.Render("esc") + " cancel",
		)
	}

	return styles.HelpBar.Render(
		keyStyle.Render("j/k") + " navigate  " +
			keyStyle.Render("tab") + " next category  " +
			keyStyle.Render("enter/space") + " edit  " +
			keyStyle.Render("r") + " reset  " +
			keyStyle.Render("q") + " quit",
	)
}

func (m Model) currentItem() ConfigItem {
	return m.categories[m.categoryIndex].Items[m.itemIndex]
}

func (m Model) getDisplayValue(item ConfigItem) string {
	switch item.Type {
	case TypeBool:
		return strconv.FormatBool(m.v.GetBool(item.Key))
	case TypeInt:
		return strconv.FormatInt(m.v.GetInt64(item.Key), 10)
	default:
		return m.v.GetString(item.Key)
	}
}

func (m Model) getCurrentSelectIndex() int {
	item := m.currentItem()
	if i := slices.Index(item.Options, m.v.GetString(item.Key)); i >= 0 {
		return i
	}
	return 0
}

func (m *Model) validateAndSet(item ConfigItem, value string) error {
	switch item.Type {
	case TypeInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("expected integer value")
		}
		return m.apply(item.Key, n)
	case TypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("expected true or false")
		}
		return m.apply(item.Key, b)
	case TypeSelect:
		if !slices.Contains(item.Options, value) {
			return fmt.Errorf("invalid option: %s", value)
		}
		return m.apply(item.Key, value)
	default:
		return m.apply(item.Key, value)
	}
}

// apply sets key to value and keeps it only if the whole config still
// validates.
func (m *Model) apply(key string, value any) error {
	previous := m.v.Get(key)
	m.v.Set(key, value)
	if _, err := config.LoadFrom(m.v); err != nil {
		m.v.Set(key, previous)
		return err
	}
	return nil
}

func (m *Model) saveConfig() {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to create config directory: %v", err)
		return
	}

	if err := m.v.WriteConfigAs(m.path); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to save config: %v", err)
		return
	}

	m.infoMsg = "Saved!"
	m.configModified = true
}

func (m *Model) resetCurrentToDefault() {
	item := m.currentItem()
	if defaultVal, ok := defaultValues()[item.Key]; ok {
		m.v.Set(item.Key, defaultVal)
		m.saveConfig()
		m.infoMsg = fmt.Sprintf("Reset %s to default", item.Label)
	}
}

// Run starts the interactive config UI over the global viper instance.
func Run() error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = config.ConfigFile()
	}
	p := tea.NewProgram(New(viper.GetViper(), path), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
