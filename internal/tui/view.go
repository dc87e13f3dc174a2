package tui

import (
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/store"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/Iron-Ham/ethicsim/internal/tui/view"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	page := m.store.Page()
	var b strings.Builder

	b.WriteString(view.RenderBreadcrumb(page, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.renderPage(page))
	b.WriteString("\n")

	if m.notice != nil {
		b.WriteString(view.RenderNotice(m.notice.Level, m.notice.Message, m.width))
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpBar.Render(m.help.View(m.keys.For(m.mode()))))

	return b.String()
}

func (m Model) renderPage(page store.Page) string {
	switch page {
	case store.PageScenario:
		return m.renderScenarios()
	case store.PageAgentConfig:
		return m.renderAgents()
	case store.PageDebate:
		return m.renderDebate()
	case store.PageResults:
		return m.renderResults()
	default:
		return view.RenderHome(m.store.Step(), m.width)
	}
}

func (m Model) renderScenarios() string {
	state := view.ScenarioListState{
		Scenarios:   m.store.FilteredScenarios(),
		Cursor:      m.scenarioCursor,
		Offset:      m.scenarioOffset,
		Limit:       m.scenarioLimit(),
		Categories:  catalog.FilterCategories(),
		Category:    m.store.Category(),
		SearchInput: m.search.View(),
		Width:       m.width,
	}
	if m.store.CustomFormOpen() {
		state.Form = view.RenderCustomForm(m.form.rows(), m.width)
	}
	return view.RenderScenarioList(state)
}

func (m Model) renderAgents() string {
	state := view.AgentListState{
		Agents:    catalog.Agents(),
		Selected:  m.store.SelectedAgents(),
		Cursor:    m.agentCursor,
		Offset:    m.agentOffset,
		Limit:     m.agentLimit(),
		MinAgents: m.store.MinAgents(),
		Width:     m.width,
	}
	if sc, ok := m.store.SelectedScenario(); ok {
		state.Scenario = &sc
	}
	return view.RenderAgents(state)
}

func (m Model) renderDebate() string {
	if m.seq == nil {
		return styles.Muted.Render("No debate prepared.")
	}

	header := view.RenderDebateHeader(view.DebateHeaderState{
		Scenario: m.seq.Scenario(),
		Reveals:  m.reveals,
		Total:    m.seq.TotalMessages(),
		State:    m.seq.State(),
		Spinner:  m.spinner.View(),
		Width:    m.width,
	})

	chat := m.viewport.View()
	if m.width >= ScoreboardMinWidth {
		board := view.RenderScoreboard(m.seq.Agents(), m.reveals, ScoreboardWidth)
		chat = lipgloss.JoinHorizontal(lipgloss.Top, chat, " ", board)
	}
	return header + "\n\n" + chat
}

func (m Model) renderResults() string {
	if m.result == nil {
		return styles.Muted.Render("No results yet.")
	}
	return m.viewport.View()
}
