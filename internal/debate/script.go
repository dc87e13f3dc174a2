package debate

import (
	"fmt"
	"math"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/errors"
)

// MinAgents is the fewest agents a debate can be scripted for.
const MinAgents = 2

// Round titles, in order.
var roundTitles = [3]string{
	"Round 1: Opening Arguments",
	"Round 2: Rebuttals",
	"Round 3: Closing Position",
}

// Stage summarizes one round for overview panels.
type Stage struct {
	Number      int
	Title       string
	Description string
}

// Stages returns the round overview shown beside a debate.
func Stages() []Stage {
	return []Stage{
		{Number: 1, Title: "Opening Arguments", Description: "Sequential opening positions"},
		{Number: 2, Title: "Rebuttals", Description: "Targeted counterarguments"},
		{Number: 3, Title: "Closing Position", Description: "Final policy proposals"},
	}
}

// Phrase banks are indexed by the speaking agent's catalog index.
var (
	openingPriorities = [catalog.AgentCount]string{
		"public safety and regulatory compliance",
		"individual rights and privacy",
		"sustainable business innovation",
		"community well-being",
		"technical feasibility",
	}
	openingReplies = [catalog.AgentCount]string{
		"a balanced approach is needed",
		"fundamental rights must never be compromised",
		"innovation drives long-term value",
		"grassroots solutions work best",
		"technical limitations require honest discussion",
	}
	openingSyntheses = [catalog.AgentCount]string{
		"maintaining institutional trust",
		"protecting vulnerable populations",
		"creating sustainable solutions",
		"ensuring democratic participation",
		"implementing viable systems",
	}
	rebuttals = [catalog.AgentCount]string{
		"the data suggests a different approach",
		"rights cannot be traded for convenience",
		"practical implementation requires flexibility",
		"participation levels show strong community support",
		"technical standards exist for good reason",
	}
	closings = [catalog.AgentCount]string{
		"Establish clear regulatory frameworks with stakeholder oversight and regular review cycles",
		"Enshrine individual consent requirements with independent auditing mechanisms",
		"Create innovation-friendly rules that balance growth with accountability",
		"Implement community-centered governance structures with transparent decision-making",
		"Develop technical standards that are both rigorous and practically deployable",
	}
	emphases = [catalog.AgentCount]string{
		"regulatory stability",
		"rights protection",
		"practical innovation",
		"community needs",
		"technical rigor",
	}
)

// Fixed scores.
const (
	openingScore    = 7
	replyScore      = 8
	closingScore    = 8
	rebuttalBase    = 6
	rebuttalSpread  = 3
	aggregateBase   = 7
	aggregateSpread = 3
)

// Speakers per round.
const (
	openingSpeakers  = 3
	rebuttalSpeakers = 3
	closingSpeakers  = 2
)

// Round one slots.
const (
	slotOpening = iota
	slotReply
	slotSynthesis
)

// ValidateAgents checks that agents is a usable debate line-up: at least
// MinAgents entries, all valid catalog indices, no duplicates.
func ValidateAgents(agents []int) error {
	if len(agents) < MinAgents {
		return errors.NewValidationError(
			fmt.Sprintf("Please select at least %d agents to start the debate.", MinAgents),
		).WithField("agents").WithValue(len(agents)).WithCause(errors.ErrNotEnoughAgents)
	}
	seen := make(map[int]bool, len(agents))
	for _, idx := range agents {
		if !catalog.ValidAgentIndex(idx) {
			return errors.NewValidationError("agent index out of range").WithField("agents").WithValue(idx)
		}
		if seen[idx] {
			return errors.NewValidationError("agent selected twice").WithField("agents").WithValue(idx)
		}
		seen[idx] = true
	}
	return nil
}

// GenerateScript builds the three rounds for the given agent selection.
// Round one gives the first three agents a slot each, round two gives the
// first three a rebuttal scored 6 + 3*rng, and round three gives the first two
// a closing statement. Phrases are chosen by catalog index, not by position.
func GenerateScript(agents []int, rng RandomSource) ([]Round, error) {
	if err := ValidateAgents(agents); err != nil {
		return nil, err
	}

	rounds := make([]Round, len(roundTitles))
	for i, title := range roundTitles {
		rounds[i] = Round{Number: i + 1, Title: title}
	}

	for pos, idx := range head(agents, openingSpeakers) {
		rounds[0].Messages = append(rounds[0].Messages, openingMessage(pos, idx))
	}
	for _, idx := range head(agents, rebuttalSpeakers) {
		rounds[1].Messages = append(rounds[1].Messages, Message{
			Round:      2,
			AgentIndex: idx,
			Text: fmt.Sprintf("I respectfully challenge the previous argument because %s. "+
				"Let me present evidence supporting my position...", rebuttals[idx]),
			Score: rebuttalBase + rng.Float64()*rebuttalSpread,
		})
	}
	for _, idx := range head(agents, closingSpeakers) {
		rounds[2].Messages = append(rounds[2].Messages, Message{
			Round:      3,
			AgentIndex: idx,
			Text: fmt.Sprintf("In closing, my proposed policy recommendation is: %s. "+
				"This approach addresses the core concerns we've discussed.", closings[idx]),
			Score: closingScore,
		})
	}
	return rounds, nil
}

func openingMessage(slot, idx int) Message {
	msg := Message{Round: 1, AgentIndex: idx}
	switch slot {
	case slotOpening:
		msg.Text = fmt.Sprintf("As the %s, I believe we must prioritize %s. "+
			"This scenario requires careful consideration of multiple stakeholder interests.",
			catalog.MustAgent(idx).Role, openingPriorities[idx])
		msg.Score = openingScore
	case slotReply:
		msg.Text = fmt.Sprintf("While I respect that perspective, the evidence clearly shows that %s. "+
			"We cannot ignore the implications for those most affected.", openingReplies[idx])
		msg.Score = replyScore
	case slotSynthesis:
		msg.Text = fmt.Sprintf("Excellent points from both perspectives. From my standpoint, the critical factor is %s. "+
			"We need a framework that serves all parties effectively.", openingSyntheses[idx])
		msg.Score = openingScore
	}
	return msg
}

func head(agents []int, n int) []int {
	return agents[:min(n, len(agents))]
}

// SelectWinner returns the index in order with the highest score. Ties go to
// the index that comes first in order. It returns -1 for an empty order.
func SelectWinner(order []int, scores map[int]float64) int {
	if len(order) == 0 {
		return -1
	}
	winner := order[0]
	for _, idx := range order[1:] {
		if scores[idx] > scores[winner] {
			winner = idx
		}
	}
	return winner
}

// PolicyRecommendation renders the recommendation text for a winning agent.
func PolicyRecommendation(winnerIndex int) string {
	return fmt.Sprintf("Based on the debate consensus, the recommended approach combines %s's emphasis on %s "+
		"with acknowledgment of alternative perspectives. "+
		"Implementation should include stakeholder monitoring and adaptive governance mechanisms.",
		catalog.MustAgent(winnerIndex).Role, emphases[winnerIndex])
}

// Aggregate draws a fresh score of 7 + 3*rng for every agent, rounded to one
// decimal, and picks the winner. The draws do not depend on the transcript.
func Aggregate(agents []int, rng RandomSource, transcript []Message) Result {
	scores := make(map[int]float64, len(agents))
	for _, idx := range agents {
		scores[idx] = roundTenth(aggregateBase + rng.Float64()*aggregateSpread)
	}
	winner := SelectWinner(agents, scores)
	return Result{
		WinnerIndex: winner,
		WinnerScore: scores[winner],
		Scores:      scores,
		Policy:      PolicyRecommendation(winner),
		Transcript:  append([]Message(nil), transcript...),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
