package view

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/muesli/reflow/wordwrap"
)

// AgentListState holds what the agent configuration page needs to render.
type AgentListState struct {
	Scenario *catalog.Scenario
	Agents   []catalog.Agent
	Selected []int
	Cursor   int
	// Offset and Limit select the visible cards; Limit 0 shows all.
	Offset    int
	Limit     int
	MinAgents int
	Width     int
}

// Ready reports whether enough agents are selected to start.
func (s AgentListState) Ready() bool {
	return len(s.Selected) >= s.MinAgents
}

// RenderAgents renders the agent configuration page.
func RenderAgents(s AgentListState) string {
	wrap := max(s.Width-4, 20)
	var b strings.Builder

	b.WriteString(styles.Title.Render("Configure AI Agents"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Select and customize the AI agents that will participate in your ethical debate."))
	b.WriteString("\n\n")

	if s.Scenario != nil {
		b.WriteString(styles.Primary.Render("Selected Scenario: " + s.Scenario.Title))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render(wordwrap.String(s.Scenario.Description, wrap)))
		b.WriteString("\n\n")
	}

	status := "✓ Ready to proceed"
	if !s.Ready() {
		status = fmt.Sprintf("Select at least %d agents", s.MinAgents)
	}
	fmt.Fprintf(&b, "👥 Available Agents  %s\n", styles.TabActive.Render(fmt.Sprintf("%d selected", len(s.Selected))))
	b.WriteString(styles.Muted.Render(fmt.Sprintf("Minimum %d agents required • %s", s.MinAgents, status)))
	b.WriteString("\n\n")

	start, end := Window(len(s.Agents), s.Offset, s.Limit)
	if start > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(renderAgentCard(s.Agents[i], slices.Contains(s.Selected, i), i == s.Cursor, s.Width))
		b.WriteString("\n")
	}
	if end < len(s.Agents) {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↓ %d more", len(s.Agents)-end)))
		b.WriteString("\n")
	}

	b.WriteString(renderAgentSummary(s))
	return b.String()
}

func renderAgentCard(agent catalog.Agent, selected, focused bool, width int) string {
	inner := max(width-6, 20)
	var b strings.Builder

	check := styles.Muted.Render("[ ]")
	if selected {
		check = styles.Secondary.Render("[x]")
	}
	fmt.Fprintf(&b, "%s %s %s  %s\n", check, agent.Avatar, styles.Text.Bold(true).Render(agent.Name), styles.ToneBadge("", agent.Role))
	b.WriteString(wordwrap.String(agent.EthicalStance, inner))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Ethical Framework: ") + agent.Framework)
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Personality: ") + wordwrap.String(agent.Personality, inner))

	card := styles.Card
	if focused {
		card = styles.CardActive
	}
	return card.Width(max(width-2, 0)).Render(b.String())
}

func renderAgentSummary(s AgentListState) string {
	var b strings.Builder
	b.WriteString(styles.Primary.Bold(true).Render("⚙️ Debate Configuration Summary"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Active Participants (%d):\n", len(s.Selected))
	for _, idx := range s.Selected {
		agent, err := catalog.AgentAt(idx)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "  %s %s - %s\n", agent.Avatar, agent.Name, agent.Role)
	}
	if s.Ready() {
		b.WriteString(styles.Secondary.Render("Ready to start the ethical debate simulation"))
	} else {
		b.WriteString(styles.Warning.Render(fmt.Sprintf("Select at least %d agents to enable debate", s.MinAgents)))
	}
	return b.String()
}
