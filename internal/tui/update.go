package tui

import (
	"slices"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/debate"
	"github.com/Iron-Ham/ethicsim/internal/event"
	"github.com/Iron-Ham/ethicsim/internal/store"
	"github.com/Iron-Ham/ethicsim/internal/tui/keymap"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/Iron-Ham/ethicsim/internal/tui/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	cmd = tea.Batch(cmd, m.flushNotices())
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshViewport()
		return nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case revealTickMsg:
		if m.seq == nil || msg.runID != m.seq.ID() {
			return nil
		}
		return m.advance()

	case spinner.TickMsg:
		if !m.playing() {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = nil
		}
		return nil

	case configChangedMsg:
		m.applyConfig(msg)
		return nil
	}
	return nil
}

// flushNotices shows the newest queued notification and schedules its
// removal.
func (m *Model) flushNotices() tea.Cmd {
	items := m.notices.drain()
	if len(items) == 0 {
		return nil
	}
	latest := items[len(items)-1]
	m.notice = &latest
	m.noticeID++
	return clearNotice(m.noticeID, noticeTTL)
}

func (m *Model) applyConfig(msg configChangedMsg) {
	if msg.cfg == nil {
		return
	}
	m.cfg = msg.cfg
	seed := msg.cfg.Debate.Seed
	m.newRandom = func() debate.RandomSource { return debate.NewRandom(seed) }
	minAgents := m.store.SetMinAgents(msg.cfg.Debate.MinAgents)
	styles.SetActiveTheme(styles.ThemeName(msg.cfg.TUI.Theme))
	m.spinner.Style = styles.Primary
	m.logger.Info("configuration reloaded",
		"tick_interval_ms", msg.cfg.Debate.TickIntervalMs,
		"min_agents", minAgents,
		"theme", msg.cfg.TUI.Theme,
	)
	m.refreshViewport()
}

func (m *Model) handleKeypress(msg tea.KeyMsg) tea.Cmd {
	mode := m.mode()

	if key.Matches(msg, m.keys.QuitBinding(mode)) {
		m.quitting = true
		m.abandonDebate()
		return tea.Quit
	}
	if !mode.Typing() && key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	switch mode {
	case keymap.ModeHome:
		return m.handleHomeKey(msg)
	case keymap.ModeScenarios:
		return m.handleScenarioKey(msg)
	case keymap.ModeSearch:
		return m.handleSearchKey(msg)
	case keymap.ModeCustomForm:
		return m.handleFormKey(msg)
	case keymap.ModeAgents:
		return m.handleAgentKey(msg)
	case keymap.ModeDebate:
		return m.handleDebateKey(msg)
	case keymap.ModeResults:
		return m.handleResultsKey(msg)
	}
	return nil
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.PrevStep):
		m.store.SetStep(m.store.Step() - 1)
	case key.Matches(msg, m.keys.NextStep):
		m.store.SetStep(m.store.Step() + 1)
	case key.Matches(msg, m.keys.Begin):
		m.enterScenarios()
	}
	return nil
}

// enterScenarios resets the filters and list position and shows the
// scenario page.
func (m *Model) enterScenarios() {
	m.store.EnterScenarioSelection()
	m.search.SetValue("")
	m.searching = false
	m.scenarioCursor = 0
	m.scenarioOffset = 0
}

func (m *Model) handleScenarioKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveScenarioCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveScenarioCursor(1)
	case key.Matches(msg, m.keys.Select):
		m.selectScenario()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m.search.Focus()
	case key.Matches(msg, m.keys.NextCategory):
		m.cycleCategory(1)
	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleCategory(-1)
	case key.Matches(msg, m.keys.NewScenario):
		m.form = newCustomForm()
		if !m.store.CustomFormOpen() {
			m.store.ToggleCustomForm()
		}
		return textinput.Blink
	case key.Matches(msg, m.keys.Back):
		m.store.SetPage(store.PageHome)
	}
	return nil
}

func (m *Model) moveScenarioCursor(delta int) {
	n := len(m.store.FilteredScenarios())
	if n == 0 {
		m.scenarioCursor = 0
		return
	}
	m.scenarioCursor = min(max(m.scenarioCursor+delta, 0), n-1)
	m.scenarioOffset = view.ScrollOffset(m.scenarioCursor, m.scenarioOffset, m.scenarioLimit())
}

func (m *Model) resetScenarioCursor() {
	m.scenarioCursor = 0
	m.scenarioOffset = 0
}

func (m *Model) selectScenario() {
	list := m.store.FilteredScenarios()
	if m.scenarioCursor < 0 || m.scenarioCursor >= len(list) {
		return
	}
	if err := m.store.SetScenario(list[m.scenarioCursor].ID); err != nil {
		m.logger.Error("select scenario", "error", err.Error())
		return
	}
	m.agentCursor = 0
	m.agentOffset = 0
	m.store.SetPage(store.PageAgentConfig)
}

func (m *Model) cycleCategory(delta int) {
	categories := catalog.FilterCategories()
	idx := slices.Index(categories, m.store.Category())
	idx = (idx + delta + len(categories)) % len(categories)
	m.store.SetCategory(categories[idx])
	m.resetScenarioCursor()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ConfirmSearch):
		m.searching = false
		m.search.Blur()
		return nil
	case key.Matches(msg, m.keys.ClearSearch):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.store.SetSearch("")
		m.resetScenarioCursor()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.store.SearchTerm() {
		m.store.SetSearch(m.search.Value())
		m.resetScenarioCursor()
	}
	return cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.CancelForm):
		if m.store.CustomFormOpen() {
			m.store.ToggleCustomForm()
		}
		m.form = newCustomForm()
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case msg.Type == tea.KeyEnter:
		if m.form.last() {
			return m.submitForm()
		}
		return m.form.move(1)
	case key.Matches(msg, m.keys.NextField):
		return m.form.move(1)
	case key.Matches(msg, m.keys.PrevField):
		return m.form.move(-1)
	case isChoice(m.form.focus) && msg.Type == tea.KeyLeft:
		m.form.cycle(-1)
		return nil
	case isChoice(m.form.focus) && msg.Type == tea.KeyRight:
		m.form.cycle(1)
		return nil
	}
	return m.form.update(msg)
}

func (m *Model) submitForm() tea.Cmd {
	created, err := m.store.AddCustomScenario(m.form.values())
	if err != nil {
		// The store already told the user what is missing.
		return nil
	}
	m.form = newCustomForm()

	// Put the cursor on the new card if the current filters show it.
	list := m.store.FilteredScenarios()
	if idx := slices.IndexFunc(list, func(sc catalog.Scenario) bool { return sc.ID == created.ID }); idx >= 0 {
		m.scenarioCursor = idx
		m.scenarioOffset = view.ScrollOffset(idx, m.scenarioOffset, m.scenarioLimit())
	}
	return nil
}

func (m *Model) handleAgentKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveAgentCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveAgentCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		if _, err := m.store.ToggleAgent(m.agentCursor); err != nil {
			m.logger.Error("toggle agent", "index", m.agentCursor, "error", err.Error())
		}
	case key.Matches(msg, m.keys.Customize):
		m.store.Notify(event.NotificationInfo, store.MsgAgentCustomize)
	case key.Matches(msg, m.keys.StartDebate):
		req, err := m.store.StartDebate()
		if err != nil {
			// Refusals are surfaced by the store as notifications.
			return nil
		}
		m.prepareDebate(req)
	case key.Matches(msg, m.keys.Back):
		m.store.SetPage(store.PageScenario)
	}
	return nil
}

func (m *Model) moveAgentCursor(delta int) {
	m.agentCursor = min(max(m.agentCursor+delta, 0), catalog.AgentCount-1)
	m.agentOffset = view.ScrollOffset(m.agentCursor, m.agentOffset, m.agentLimit())
}

func (m *Model) handleDebateKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Play):
		return m.startPlayback()
	case key.Matches(msg, m.keys.Leave):
		m.abandonDebate()
		m.store.SetPage(store.PageAgentConfig)
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Transcript):
		m.showTranscript = !m.showTranscript
		m.refreshViewport()
		m.viewport.GotoTop()
		return nil
	case key.Matches(msg, m.keys.NewDebate):
		m.abandonDebate()
		m.enterScenarios()
		return nil
	case key.Matches(msg, m.keys.Home):
		m.abandonDebate()
		m.store.SetPage(store.PageHome)
		return nil
	case key.Matches(msg, m.keys.Export):
		m.exportTranscript()
		return nil
	case key.Matches(msg, m.keys.ExportPDF):
		m.store.Notify(event.NotificationInfo, store.MsgPDFExport)
		return nil
	case key.Matches(msg, m.keys.Share):
		m.store.Notify(event.NotificationInfo, store.MsgShareCopied)
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}
