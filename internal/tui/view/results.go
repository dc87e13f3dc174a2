package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/debate"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/charmbracelet/glamour"
)

// ResultsMarkdown summarizes a completed debate as markdown.
func ResultsMarkdown(agents []int, r debate.Result) string {
	winner := r.Winner()
	var b strings.Builder

	b.WriteString("# Debate Results & Analysis\n\n")
	fmt.Fprintf(&b, "## %s %s Won!\n\n", winner.Avatar, winner.Name)
	fmt.Fprintf(&b, "**%s** · Final Score: **%s/10**\n\n", winner.Role, FormatScore(r.WinnerScore))
	b.WriteString("Best argued position based on Clarity, Evidence, Ethics, and Persuasion metrics.\n\n")

	b.WriteString("## 📊 Agent Scores\n\n")
	b.WriteString("| Agent | Role | Score |\n")
	b.WriteString("|---|---|---|\n")
	for _, idx := range agents {
		agent, err := catalog.AgentAt(idx)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "| %s %s | %s | %s |\n", agent.Avatar, agent.Name, agent.Role, FormatScore(r.Scores[idx]))
	}
	b.WriteString("\n")

	b.WriteString("## 📋 Recommended Policy\n\n")
	b.WriteString(r.Policy)
	b.WriteString("\n")
	return b.String()
}

// TranscriptMarkdown renders every revealed message grouped by round.
func TranscriptMarkdown(rounds []debate.Round) string {
	var b strings.Builder
	b.WriteString("# 📝 Full Transcript\n\n")
	for _, round := range rounds {
		fmt.Fprintf(&b, "## %s\n\n", round.Title)
		for _, msg := range round.Messages {
			agent, err := catalog.AgentAt(msg.AgentIndex)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "**%s %s** (score %s): %s\n\n", agent.Avatar, agent.Name, FormatScore(msg.Score), msg.Text)
		}
	}
	return b.String()
}

// MarkdownStyle picks the glamour style matching the active theme.
func MarkdownStyle() string {
	if styles.ActiveTheme() == styles.ThemeMono {
		return "ascii"
	}
	return "dark"
}

// RenderMarkdown renders md for the terminal at width. If glamour fails the
// raw markdown is returned.
func RenderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(MarkdownStyle()),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
