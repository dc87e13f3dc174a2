package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/debate"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/Iron-Ham/ethicsim/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ArenaPlaceholder is shown before playback starts.
const ArenaPlaceholder = "💬 Debate Arena\n\nPress enter to begin the simulation. Watch as AI agents present " +
	"their arguments, counterpoints, and rebuttals across three rounds."

const progressWidth = 24

// DebateHeaderState holds what the debate header needs to render.
type DebateHeaderState struct {
	Scenario catalog.Scenario
	Reveals  []debate.Reveal
	Total    int
	State    debate.State
	// Spinner is the rendered spinner frame shown while revealing.
	Spinner string
	Width   int
}

// CurrentRound returns the title of the round in progress, defaulting to
// the first round before anything is revealed.
func CurrentRound(reveals []debate.Reveal) string {
	for i := len(reveals) - 1; i >= 0; i-- {
		if reveals[i].OpensRound() {
			return reveals[i].RoundTitle
		}
	}
	stages := debate.Stages()
	return fmt.Sprintf("Round %d: %s", stages[0].Number, stages[0].Title)
}

// RenderDebateHeader renders the scenario, round indicator and progress bar.
func RenderDebateHeader(s DebateHeaderState) string {
	var b strings.Builder

	inner := max(s.Width-4, 20)
	b.WriteString(styles.Title.Render(util.Truncate(s.Scenario.Title, inner)))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(util.ClampLines(wordwrap.String(s.Scenario.Description, inner), 2, inner)))
	b.WriteString("\n\n")

	var control string
	switch s.State {
	case debate.StateAwaitingStart:
		control = styles.HelpKey.Render("enter") + " ▶ Start Debate"
	case debate.StateRevealing:
		control = s.Spinner + " Debate in Progress..."
	case debate.StateComplete:
		control = styles.Secondary.Render("✓ Debate complete")
	case debate.StateCanceled:
		control = styles.Warning.Render("Debate canceled")
	}

	b.WriteString(styles.Primary.Bold(true).Render(CurrentRound(s.Reveals)))
	b.WriteString("  ")
	b.WriteString(ProgressBar(len(s.Reveals), s.Total, progressWidth))
	b.WriteString("  ")
	b.WriteString(control)
	return b.String()
}

// ProgressBar renders done/total as a fixed-width bar.
func ProgressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	done = min(max(done, 0), total)
	filled := done * width / total
	bar := styles.Primary.Render(strings.Repeat("█", filled)) +
		styles.Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// FormatScore renders whole scores without decimals and others with one.
func FormatScore(score float64) string {
	if score == math.Trunc(score) {
		return fmt.Sprintf("%.0f", score)
	}
	return fmt.Sprintf("%.1f", score)
}

// RenderChat renders the revealed messages as chat bubbles wrapped at width.
// Round titles are inserted before the first message of each round.
func RenderChat(reveals []debate.Reveal, width int) string {
	if len(reveals) == 0 {
		return styles.Muted.Render(wordwrap.String(ArenaPlaceholder, max(width, 20)))
	}

	wrap := max(width-4, 20)
	var b strings.Builder
	for _, r := range reveals {
		if r.OpensRound() {
			b.WriteString(styles.RoundTitle.Render(r.RoundTitle))
			b.WriteString("\n")
		}
		b.WriteString(r.Agent.Avatar + " " + styles.BubbleAgent.Render(r.Agent.Name))
		b.WriteString(" ")
		b.WriteString(styles.Score.Render("(" + FormatScore(r.Message.Score) + ")"))
		b.WriteString("\n")
		b.WriteString(styles.BubbleText.Render(wordwrap.String(r.Message.Text, wrap-3)))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// LatestScores returns the most recent displayed score per agent.
func LatestScores(reveals []debate.Reveal) map[int]float64 {
	scores := make(map[int]float64)
	for _, r := range reveals {
		scores[r.Message.AgentIndex] = r.Message.Score
	}
	return scores
}

// RenderScoreboard renders the participating agents with their latest score
// and the round overview.
func RenderScoreboard(agents []int, reveals []debate.Reveal, width int) string {
	scores := LatestScores(reveals)
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Participating Agents"))
	b.WriteString("\n")
	for _, idx := range agents {
		agent, err := catalog.AgentAt(idx)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", agent.Avatar, styles.Text.Render(agent.Name))
		fmt.Fprintf(&b, "   %s\n", styles.Muted.Render(agent.Role))
		fmt.Fprintf(&b, "   %s\n", styles.Score.Render("Score: "+FormatScore(scores[idx])))
	}

	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render("Round Overview"))
	b.WriteString("\n")
	for _, st := range debate.Stages() {
		fmt.Fprintf(&b, "%s %s\n", styles.Primary.Render(fmt.Sprintf("%d", st.Number)), st.Title)
		fmt.Fprintf(&b, "  %s\n", styles.Muted.Render(st.Description))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderColor).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}
