package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a "category.action" identifier.
	EventType() string
	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypePageChanged      = "page.changed"
	TypeScenarioSelected = "scenario.selected"
	TypeScenarioCreated  = "scenario.created"
	TypeAgentToggled     = "agent.toggled"
	TypeAgentsSelected   = "agent.selection_set"
	TypeStepChanged      = "onboarding.step_changed"
	TypeCustomFormToggle = "scenario.form_toggled"
	TypeFilterChanged    = "filter.changed"
	TypeDebateStarted    = "debate.started"
	TypeRoundStarted     = "debate.round_started"
	TypeMessageRevealed  = "debate.message_revealed"
	TypeDebateCompleted  = "debate.completed"
	TypeDebateCanceled   = "debate.canceled"
	TypeNotification     = "notification.shown"
)

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{eventType: eventType, timestamp: time.Now()}
}

// -----------------------------------------------------------------------------
// Navigation and selection
// -----------------------------------------------------------------------------

// PageChangedEvent is emitted whenever the current page is set.
type PageChangedEvent struct {
	baseEvent
	From string
	To   string
}

// NewPageChangedEvent creates a PageChangedEvent.
func NewPageChangedEvent(from, to string) PageChangedEvent {
	return PageChangedEvent{baseEvent: newBaseEvent(TypePageChanged), From: from, To: to}
}

// ScenarioSelectedEvent is emitted when a scenario becomes the active one.
type ScenarioSelectedEvent struct {
	baseEvent
	ScenarioID string
	Title      string
}

// NewScenarioSelectedEvent creates a ScenarioSelectedEvent.
func NewScenarioSelectedEvent(scenarioID, title string) ScenarioSelectedEvent {
	return ScenarioSelectedEvent{baseEvent: newBaseEvent(TypeScenarioSelected), ScenarioID: scenarioID, Title: title}
}

// ScenarioCreatedEvent is emitted when a user-defined scenario is appended.
type ScenarioCreatedEvent struct {
	baseEvent
	ScenarioID string
	Title      string
	Category   string
}

// NewScenarioCreatedEvent creates a ScenarioCreatedEvent.
func NewScenarioCreatedEvent(scenarioID, title, category string) ScenarioCreatedEvent {
	return ScenarioCreatedEvent{
		baseEvent:  newBaseEvent(TypeScenarioCreated),
		ScenarioID: scenarioID,
		Title:      title,
		Category:   category,
	}
}

// AgentToggledEvent is emitted when an agent is added to or removed from the selection.
type AgentToggledEvent struct {
	baseEvent
	AgentIndex int
	Selected   bool  // true if the agent is now selected
	Selection  []int // selection after the toggle, in selection order
}

// NewAgentToggledEvent creates an AgentToggledEvent.
func NewAgentToggledEvent(index int, selected bool, selection []int) AgentToggledEvent {
	return AgentToggledEvent{
		baseEvent:  newBaseEvent(TypeAgentToggled),
		AgentIndex: index,
		Selected:   selected,
		Selection:  selection,
	}
}

// AgentsSelectedEvent is emitted when the whole selection is replaced.
type AgentsSelectedEvent struct {
	baseEvent
	Selection []int
}

// NewAgentsSelectedEvent creates an AgentsSelectedEvent.
func NewAgentsSelectedEvent(selection []int) AgentsSelectedEvent {
	return AgentsSelectedEvent{baseEvent: newBaseEvent(TypeAgentsSelected), Selection: selection}
}

// StepChangedEvent is emitted whenever the onboarding step is set, clamped
// value included.
type StepChangedEvent struct {
	baseEvent
	Requested int
	Step      int
}

// NewStepChangedEvent creates a StepChangedEvent.
func NewStepChangedEvent(requested, step int) StepChangedEvent {
	return StepChangedEvent{baseEvent: newBaseEvent(TypeStepChanged), Requested: requested, Step: step}
}

// CustomFormToggledEvent is emitted when the custom scenario form opens or closes.
type CustomFormToggledEvent struct {
	baseEvent
	Open bool
}

// NewCustomFormToggledEvent creates a CustomFormToggledEvent.
func NewCustomFormToggledEvent(open bool) CustomFormToggledEvent {
	return CustomFormToggledEvent{baseEvent: newBaseEvent(TypeCustomFormToggle), Open: open}
}

// FilterChangedEvent is emitted when the search term or category filter changes.
type FilterChangedEvent struct {
	baseEvent
	SearchTerm string
	Category   string
	Matches    int
}

// NewFilterChangedEvent creates a FilterChangedEvent.
func NewFilterChangedEvent(searchTerm, category string, matches int) FilterChangedEvent {
	return FilterChangedEvent{
		baseEvent:  newBaseEvent(TypeFilterChanged),
		SearchTerm: searchTerm,
		Category:   category,
		Matches:    matches,
	}
}

// -----------------------------------------------------------------------------
// Debate playback
// -----------------------------------------------------------------------------

// DebateStartedEvent is emitted with the first reveal of a run, when it
// leaves the awaiting-start state.
type DebateStartedEvent struct {
	baseEvent
	RunID      string
	ScenarioID string
	Agents     []int
	Messages   int // total scripted messages
}

// NewDebateStartedEvent creates a DebateStartedEvent.
func NewDebateStartedEvent(runID, scenarioID string, agents []int, messages int) DebateStartedEvent {
	return DebateStartedEvent{
		baseEvent:  newBaseEvent(TypeDebateStarted),
		RunID:      runID,
		ScenarioID: scenarioID,
		Agents:     agents,
		Messages:   messages,
	}
}

// RoundStartedEvent is emitted together with the first message of each round.
type RoundStartedEvent struct {
	baseEvent
	RunID string
	Round int // 1-based
	Title string
}

// NewRoundStartedEvent creates a RoundStartedEvent.
func NewRoundStartedEvent(runID string, round int, title string) RoundStartedEvent {
	return RoundStartedEvent{baseEvent: newBaseEvent(TypeRoundStarted), RunID: runID, Round: round, Title: title}
}

// MessageRevealedEvent is emitted for every revealed debate message.
type MessageRevealedEvent struct {
	baseEvent
	RunID      string
	Round      int
	Sequence   int // 0-based position in the whole transcript
	AgentIndex int
	Score      float64
	Text       string
}

// NewMessageRevealedEvent creates a MessageRevealedEvent.
func NewMessageRevealedEvent(runID string, round, sequence, agentIndex int, score float64, text string) MessageRevealedEvent {
	return MessageRevealedEvent{
		baseEvent:  newBaseEvent(TypeMessageRevealed),
		RunID:      runID,
		Round:      round,
		Sequence:   sequence,
		AgentIndex: agentIndex,
		Score:      score,
		Text:       text,
	}
}

// DebateCompletedEvent is emitted once, after result aggregation.
type DebateCompletedEvent struct {
	baseEvent
	RunID       string
	WinnerIndex int
	WinnerScore float64
}

// NewDebateCompletedEvent creates a DebateCompletedEvent.
func NewDebateCompletedEvent(runID string, winnerIndex int, winnerScore float64) DebateCompletedEvent {
	return DebateCompletedEvent{
		baseEvent:   newBaseEvent(TypeDebateCompleted),
		RunID:       runID,
		WinnerIndex: winnerIndex,
		WinnerScore: winnerScore,
	}
}

// DebateCanceledEvent is emitted when playback is abandoned before completion.
type DebateCanceledEvent struct {
	baseEvent
	RunID    string
	Revealed int // messages revealed before cancellation
}

// NewDebateCanceledEvent creates a DebateCanceledEvent.
func NewDebateCanceledEvent(runID string, revealed int) DebateCanceledEvent {
	return DebateCanceledEvent{baseEvent: newBaseEvent(TypeDebateCanceled), RunID: runID, Revealed: revealed}
}

// -----------------------------------------------------------------------------
// Notifications
// -----------------------------------------------------------------------------

// NotificationLevel classifies a user notification.
type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationWarning NotificationLevel = "warning"
)

// NotificationEvent carries a fire-and-forget message for the user.
type NotificationEvent struct {
	baseEvent
	Level   NotificationLevel
	Message string
}

// NewNotificationEvent creates a NotificationEvent.
func NewNotificationEvent(level NotificationLevel, message string) NotificationEvent {
	return NotificationEvent{baseEvent: newBaseEvent(TypeNotification), Level: level, Message: message}
}
