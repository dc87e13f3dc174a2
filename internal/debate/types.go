package debate

import (
	"github.com/Iron-Ham/ethicsim/internal/catalog"
)

// State is the playback state of a Sequencer.
type State string

const (
	// StateAwaitingStart indicates nothing has been revealed yet.
	StateAwaitingStart State = "awaiting_start"

	// StateRevealing indicates at least one message has been revealed.
	StateRevealing State = "revealing"

	// StateComplete indicates the result has been aggregated.
	StateComplete State = "complete"

	// StateCanceled indicates the run was abandoned before completion.
	StateCanceled State = "canceled"
)

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateCanceled
}

// Message is one scripted statement.
type Message struct {
	Round      int     `json:"round" yaml:"round"`
	AgentIndex int     `json:"agent_index" yaml:"agent_index"`
	Text       string  `json:"text" yaml:"text"`
	Score      float64 `json:"score" yaml:"score"`
}

// Round is one phase of the debate.
type Round struct {
	Number   int       `json:"number" yaml:"number"`
	Title    string    `json:"title" yaml:"title"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// Reveal is a single message becoming visible.
type Reveal struct {
	// Sequence is the 0-based position of the message in the whole run.
	Sequence int
	// RoundTitle is set only on the first message of a round.
	RoundTitle string
	Message    Message
	Agent      catalog.Agent
}

// OpensRound reports whether the reveal starts a new round.
func (r Reveal) OpensRound() bool {
	return r.RoundTitle != ""
}

// Result is the aggregated outcome of a completed run.
type Result struct {
	WinnerIndex int             `json:"winner_index" yaml:"winner_index"`
	WinnerScore float64         `json:"winner_score" yaml:"winner_score"`
	Scores      map[int]float64 `json:"scores" yaml:"scores"`
	Policy      string          `json:"policy_recommendation" yaml:"policy_recommendation"`
	Transcript  []Message       `json:"transcript" yaml:"transcript"`
}

// Winner returns the winning agent.
func (r Result) Winner() catalog.Agent {
	return catalog.MustAgent(r.WinnerIndex)
}

// Step is the outcome of one Sequencer transition. Exactly one of Reveal and
// Result is set.
type Step struct {
	Reveal *Reveal
	Result *Result
}

// Done reports whether the step carries the final result.
func (s Step) Done() bool {
	return s.Result != nil
}
