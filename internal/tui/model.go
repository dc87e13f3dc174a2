// Package tui is the interactive terminal front end. It renders the home,
// scenario, agent, debate and results pages, routes keys into store and
// sequencer operations, and drives debate reveals with tea.Tick.
package tui

import (
	"time"

	"github.com/Iron-Ham/ethicsim/internal/config"
	"github.com/Iron-Ham/ethicsim/internal/debate"
	"github.com/Iron-Ham/ethicsim/internal/event"
	"github.com/Iron-Ham/ethicsim/internal/logging"
	"github.com/Iron-Ham/ethicsim/internal/store"
	"github.com/Iron-Ham/ethicsim/internal/tui/keymap"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Layout constants
const (
	ScoreboardWidth    = 34 // Fixed scoreboard width on the debate page
	ScoreboardMinWidth = 90 // Below this terminal width the scoreboard is hidden

	// Rows taken by the breadcrumb, notice line and help bar
	ChromeHeight = 6
	// Rows taken by the debate header above the chat viewport
	DebateHeaderHeight = 6

	scenarioCardHeight = 7
	agentCardHeight    = 8
	listChromeHeight   = 12

	noticeTTL = 4 * time.Second
)

// Options configures a Model.
type Options struct {
	Store  *store.Store
	Bus    *event.Bus
	Logger *logging.Logger
	Config *config.Config
	// NewRandom builds the score source for each debate. Defaults to a
	// source seeded from Config.Debate.Seed.
	NewRandom func() debate.RandomSource
	// ExportDir is where transcripts are written. Defaults to the working
	// directory.
	ExportDir string
}

// Model is the Bubbletea model for the TUI.
type Model struct {
	store     *store.Store
	bus       *event.Bus
	logger    *logging.Logger
	cfg       *config.Config
	newRandom func() debate.RandomSource
	exportDir string

	keys keymap.KeyMap
	help help.Model

	notices      *noticeQueue
	subscription string
	notice       *event.NotificationEvent
	noticeID     int

	width  int
	height int

	// Scenario page
	scenarioCursor int
	scenarioOffset int
	searching      bool
	search         textinput.Model
	form           customForm

	// Agent page
	agentCursor int
	agentOffset int

	// Debate and results pages
	seq            *debate.Sequencer
	interval       time.Duration
	reveals        []debate.Reveal
	result         *debate.Result
	showTranscript bool
	spinner        spinner.Model
	viewport       viewport.Model

	quitting bool
}

// NewModel creates a Model over the given store. Store is required; the
// other options have defaults.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	newRandom := opts.NewRandom
	if newRandom == nil {
		seed := cfg.Debate.Seed
		newRandom = func() debate.RandomSource { return debate.NewRandom(seed) }
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))

	search := textinput.New()
	search.Placeholder = "Search scenarios..."
	search.CharLimit = 100
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Primary

	m := Model{
		store:     opts.Store,
		bus:       opts.Bus,
		logger:    logger.With("component", "tui"),
		cfg:       cfg,
		newRandom: newRandom,
		exportDir: exportDir,
		keys:      keymap.Default(),
		help:      help.New(),
		notices:   &noticeQueue{},
		search:    search,
		form:      newCustomForm(),
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		interval:  cfg.Debate.TickInterval(),
	}
	if m.bus != nil {
		m.subscription = event.On(m.bus, event.TypeNotification, m.notices.handle)
	}
	return m
}

// Close abandons any running debate and detaches from the bus.
func (m Model) Close() {
	if m.seq != nil {
		m.seq.Cancel()
	}
	if m.bus != nil && m.subscription != "" {
		m.bus.Unsubscribe(m.subscription)
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// mode maps the current page and input focus to a key mode.
func (m Model) mode() keymap.Mode {
	switch m.store.Page() {
	case store.PageScenario:
		if m.store.CustomFormOpen() {
			return keymap.ModeCustomForm
		}
		if m.searching {
			return keymap.ModeSearch
		}
		return keymap.ModeScenarios
	case store.PageAgentConfig:
		return keymap.ModeAgents
	case store.PageDebate:
		return keymap.ModeDebate
	case store.PageResults:
		return keymap.ModeResults
	default:
		return keymap.ModeHome
	}
}

// scenarioLimit is how many scenario cards fit on screen.
func (m Model) scenarioLimit() int {
	return max((m.height-ChromeHeight-listChromeHeight)/scenarioCardHeight, 1)
}

// agentLimit is how many agent cards fit on screen.
func (m Model) agentLimit() int {
	return max((m.height-ChromeHeight-listChromeHeight)/agentCardHeight, 1)
}

// chatWidth is the wrap width for chat bubbles.
func (m Model) chatWidth() int {
	w := m.viewport.Width
	if ww := m.cfg.TUI.WrapWidth; ww > 0 && ww < w {
		return ww
	}
	return w
}

// resize fits the viewport to the current page.
func (m *Model) resize() {
	width := m.width
	height := m.height - ChromeHeight
	if m.store.Page() == store.PageDebate {
		height -= DebateHeaderHeight
		if m.width >= ScoreboardMinWidth {
			width -= ScoreboardWidth + 1
		}
	}
	m.viewport.Width = max(width, 20)
	m.viewport.Height = max(height, 3)
	m.help.Width = m.width
}
