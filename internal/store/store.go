package store

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/errors"
	"github.com/Iron-Ham/ethicsim/internal/event"
	"github.com/Iron-Ham/ethicsim/internal/logging"
)

// Page identifies one of the application's views.
type Page string

const (
	PageHome        Page = "home"
	PageScenario    Page = "scenario"
	PageAgentConfig Page = "agentConfig"
	PageDebate      Page = "debate"
	PageResults     Page = "results"
)

// Pages returns the known pages in navigation order.
func Pages() []Page {
	return []Page{PageHome, PageScenario, PageAgentConfig, PageDebate, PageResults}
}

// DefaultMinAgents is the fewest agents a debate may start with.
const DefaultMinAgents = 2

// Notification texts surfaced through the bus.
const (
	MsgScenarioCreated   = "Custom scenario created! You can now select it."
	MsgFillAllFields     = "Please fill in all fields."
	MsgNotEnoughAgents   = "Please select at least %d agents to start the debate."
	MsgNoScenario        = "Please select a scenario first."
	MsgAgentCustomize    = "Agent customization coming soon!"
	MsgPDFExport         = "PDF export functionality - Coming soon! Download debate results as PDF."
	MsgShareCopied       = "Debate link copied to clipboard!"
	customScenarioPrefix = "custom-"
)

// defaultSelection is the agent selection a fresh store starts with.
var defaultSelection = []int{0, 1, 2, 3}

// State is a point-in-time copy of everything the store holds.
type State struct {
	Page             Page
	Scenarios        []catalog.Scenario
	SelectedScenario *catalog.Scenario
	SelectedAgents   []int
	Step             int
	SearchTerm       string
	Category         string
	CustomFormOpen   bool
}

// Store is the single owner of navigation and selection state.
// It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	bus    *event.Bus
	logger *logging.Logger
	caser  cases.Caser // guarded by mu; a Caser is not safe for concurrent use

	page           Page
	scenarios      []catalog.Scenario
	selectedID     string
	agents         []int
	step           int
	stepCount      int
	search         string
	category       string
	customFormOpen bool
	minAgents      int
	newID          func() string
}

// Option configures a Store.
type Option func(*Store)

// WithScenarios replaces the built-in scenarios the store is seeded with.
func WithScenarios(scenarios []catalog.Scenario) Option {
	return func(s *Store) {
		s.scenarios = make([]catalog.Scenario, len(scenarios))
		for i, sc := range scenarios {
			s.scenarios[i] = sc.Clone()
		}
	}
}

// WithMinAgents sets the minimum number of agents StartDebate requires.
// Values below DefaultMinAgents are ignored.
func WithMinAgents(n int) Option {
	return func(s *Store) {
		if n >= DefaultMinAgents {
			s.minAgents = n
		}
	}
}

// WithIDGenerator overrides how custom scenario IDs are generated.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithStepCount overrides the number of onboarding steps. Values below 1 are ignored.
func WithStepCount(n int) Option {
	return func(s *Store) {
		if n >= 1 {
			s.stepCount = n
		}
	}
}

// New creates a Store on the home page, seeded with the built-in scenarios
// and the default agent selection. bus and logger may be nil.
func New(bus *event.Bus, logger *logging.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = logging.NopLogger()
	}
	s := &Store{
		bus:       bus,
		logger:    logger,
		caser:     cases.Lower(language.Und),
		page:      PageHome,
		scenarios: catalog.BuiltinScenarios(),
		agents:    slices.Clone(defaultSelection),
		stepCount: catalog.StepCount(),
		category:  catalog.AllCategories,
		minAgents: DefaultMinAgents,
		newID:     func() string { return customScenarioPrefix + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) publish(events ...event.Event) {
	for _, e := range events {
		s.bus.Publish(e)
	}
}

// Notify publishes a user notification.
func (s *Store) Notify(level event.NotificationLevel, message string) {
	s.publish(event.NewNotificationEvent(level, message))
}

// ReportError surfaces err as a notification. User-facing errors are shown
// verbatim at a level matching their severity; any other error is logged and
// shown as a generic message.
func (s *Store) ReportError(err error) {
	if err == nil {
		return
	}
	if !errors.IsUserFacing(err) {
		s.logger.Error("unexpected error", "error", err.Error())
		s.Notify(event.NotificationWarning, errors.UserMessage(err))
		return
	}
	s.Notify(notificationLevel(errors.GetSeverity(err)), errors.UserMessage(err))
}

func notificationLevel(sev errors.Severity) event.NotificationLevel {
	if sev >= errors.SeverityWarning {
		return event.NotificationWarning
	}
	return event.NotificationInfo
}

// -----------------------------------------------------------------------------
// Navigation
// -----------------------------------------------------------------------------

// Page returns the current page.
func (s *Store) Page() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// SetPage sets the current page. Any value is accepted.
func (s *Store) SetPage(page Page) {
	s.mu.Lock()
	from := s.page
	s.page = page
	s.mu.Unlock()

	s.logger.Debug("page changed", "from", string(from), "to", string(page))
	s.publish(event.NewPageChangedEvent(string(from), string(page)))
}

// EnterScenarioSelection clears the search and category filters and moves to
// the scenario page. The scenario list is left untouched.
func (s *Store) EnterScenarioSelection() {
	s.mu.Lock()
	s.search = ""
	s.category = catalog.AllCategories
	matches := len(s.filteredLocked())
	s.mu.Unlock()

	s.publish(event.NewFilterChangedEvent("", catalog.AllCategories, matches))
	s.SetPage(PageScenario)
}

// Step returns the current onboarding step.
func (s *Store) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// StepCount returns the number of onboarding steps.
func (s *Store) StepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepCount
}

// SetStep stores n clamped into [0, StepCount()-1] and returns the stored value.
func (s *Store) SetStep(n int) int {
	s.mu.Lock()
	s.step = min(max(n, 0), s.stepCount-1)
	step := s.step
	s.mu.Unlock()

	s.publish(event.NewStepChangedEvent(n, step))
	return step
}

// -----------------------------------------------------------------------------
// Scenarios
// -----------------------------------------------------------------------------

// Scenarios returns every scenario, built-in first, in insertion order.
func (s *Store) Scenarios() []catalog.Scenario {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneScenarios(s.scenarios)
}

// Scenario looks up a scenario by ID.
func (s *Store) Scenario(id string) (catalog.Scenario, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return catalog.Scenario{}, false
	}
	return s.scenarios[idx].Clone(), true
}

// SetScenario makes the scenario with the given ID the active one. The
// scenario must already be in the store.
func (s *Store) SetScenario(id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return errors.NewNotFoundError("scenario", id)
	}
	s.selectedID = id
	title := s.scenarios[idx].Title
	s.mu.Unlock()

	s.logger.WithScenario(id).Info("scenario selected", "title", title)
	s.publish(event.NewScenarioSelectedEvent(id, title))
	return nil
}

// SelectedScenario returns the active scenario, if any.
func (s *Store) SelectedScenario() (catalog.Scenario, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return catalog.Scenario{}, false
	}
	idx := s.indexLocked(s.selectedID)
	if idx < 0 {
		return catalog.Scenario{}, false
	}
	return s.scenarios[idx].Clone(), true
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.scenarios, func(sc catalog.Scenario) bool {
		return sc.ID == id
	})
}

// -----------------------------------------------------------------------------
// Filtering
// -----------------------------------------------------------------------------

// SearchTerm returns the normalized search term.
func (s *Store) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Category returns the selected category filter.
func (s *Store) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// SetSearch stores the lower-cased search term.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	s.search = s.caser.String(term)
	search, category := s.search, s.category
	matches := len(s.filteredLocked())
	s.mu.Unlock()

	s.publish(event.NewFilterChangedEvent(search, category, matches))
}

// SetCategory stores the category filter. catalog.AllCategories matches
// every scenario.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	s.category = category
	search := s.search
	matches := len(s.filteredLocked())
	s.mu.Unlock()

	s.publish(event.NewFilterChangedEvent(search, category, matches))
}

// FilteredScenarios returns, in store order, the scenarios whose category
// matches the category filter and whose title or description contains the
// search term, ignoring case.
func (s *Store) FilteredScenarios() []catalog.Scenario {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneScenarios(s.filteredLocked())
}

func (s *Store) filteredLocked() []catalog.Scenario {
	out := make([]catalog.Scenario, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		if s.category != catalog.AllCategories && sc.Category != s.category {
			continue
		}
		if !strings.Contains(s.caser.String(sc.Title), s.search) &&
			!strings.Contains(s.caser.String(sc.Description), s.search) {
			continue
		}
		out = append(out, sc)
	}
	return out
}

// -----------------------------------------------------------------------------
// Custom scenarios
// -----------------------------------------------------------------------------

// CustomFormOpen reports whether the custom scenario form is shown.
func (s *Store) CustomFormOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customFormOpen
}

// ToggleCustomForm flips the custom scenario form and returns the new state.
func (s *Store) ToggleCustomForm() bool {
	s.mu.Lock()
	s.customFormOpen = !s.customFormOpen
	open := s.customFormOpen
	s.mu.Unlock()

	s.publish(event.NewCustomFormToggledEvent(open))
	return open
}

// ScenarioFields is the raw input of the custom scenario form.
type ScenarioFields struct {
	Title        string
	Description  string
	Category     string
	Difficulty   string
	Participants string // comma separated role names
}

// ParseParticipants splits a comma separated list, trims every entry and
// drops the empty ones.
func ParseParticipants(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AddCustomScenario validates the form fields, appends a new scenario with a
// fresh ID and returns it. On success the custom form is closed. A missing
// field yields a *errors.ValidationError and leaves the store unchanged.
func (s *Store) AddCustomScenario(fields ScenarioFields) (catalog.Scenario, error) {
	sc, err := buildScenario(fields)
	if err != nil {
		s.logger.Warn("custom scenario rejected", "error", err.Error())
		s.ReportError(err)
		return catalog.Scenario{}, err
	}

	s.mu.Lock()
	sc.ID = s.newID()
	s.scenarios = append(s.scenarios, sc)
	wasOpen := s.customFormOpen
	s.customFormOpen = false
	created := sc.Clone()
	s.mu.Unlock()

	s.logger.WithScenario(created.ID).Info("custom scenario created",
		"title", created.Title,
		"category", created.Category,
		"participants", len(created.Participants),
	)
	s.publish(event.NewScenarioCreatedEvent(created.ID, created.Title, created.Category))
	if wasOpen {
		s.publish(event.NewCustomFormToggledEvent(false))
	}
	s.Notify(event.NotificationInfo, MsgScenarioCreated)
	return created, nil
}

func buildScenario(fields ScenarioFields) (catalog.Scenario, error) {
	sc := catalog.Scenario{
		Title:        strings.TrimSpace(fields.Title),
		Description:  strings.TrimSpace(fields.Description),
		Category:     strings.TrimSpace(fields.Category),
		Difficulty:   catalog.Difficulty(strings.TrimSpace(fields.Difficulty)),
		Participants: ParseParticipants(fields.Participants),
	}

	required := []struct {
		name  string
		empty bool
	}{
		{"title", sc.Title == ""},
		{"description", sc.Description == ""},
		{"category", sc.Category == ""},
		{"difficulty", sc.Difficulty == ""},
		{"participants", len(sc.Participants) == 0},
	}
	for _, r := range required {
		if r.empty {
			return catalog.Scenario{}, errors.NewValidationError(MsgFillAllFields).WithField(r.name)
		}
	}
	if !sc.Difficulty.Valid() {
		return catalog.Scenario{}, errors.NewValidationError("Unknown difficulty.").
			WithField("difficulty").
			WithValue(string(sc.Difficulty))
	}
	return sc, nil
}

// -----------------------------------------------------------------------------
// Agents
// -----------------------------------------------------------------------------

// SelectedAgents returns the selected agent indices in selection order.
func (s *Store) SelectedAgents() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.agents)
}

// IsAgentSelected reports whether the agent at idx is selected.
func (s *Store) IsAgentSelected(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.agents, idx)
}

// ToggleAgent adds idx to the selection if absent and removes it otherwise.
// It returns whether idx is selected afterwards. Indices outside the agent
// catalog are rejected.
func (s *Store) ToggleAgent(idx int) (bool, error) {
	if !catalog.ValidAgentIndex(idx) {
		return false, errors.NewValidationError("agent index out of range").
			WithField("agent").
			WithValue(idx)
	}

	s.mu.Lock()
	pos := slices.Index(s.agents, idx)
	selected := pos < 0
	if selected {
		s.agents = append(s.agents, idx)
	} else {
		s.agents = slices.Delete(s.agents, pos, pos+1)
	}
	selection := slices.Clone(s.agents)
	s.mu.Unlock()

	s.publish(event.NewAgentToggledEvent(idx, selected, selection))
	return selected, nil
}

// SetAgents replaces the selection. Duplicates are dropped, keeping the first
// occurrence; an out-of-range index rejects the whole call.
func (s *Store) SetAgents(indices []int) error {
	next := make([]int, 0, len(indices))
	for _, idx := range indices {
		if !catalog.ValidAgentIndex(idx) {
			return errors.NewValidationError("agent index out of range").
				WithField("agent").
				WithValue(idx)
		}
		if !slices.Contains(next, idx) {
			next = append(next, idx)
		}
	}

	s.mu.Lock()
	s.agents = next
	s.mu.Unlock()

	s.publish(event.NewAgentsSelectedEvent(slices.Clone(next)))
	return nil
}

// MinAgents returns the minimum number of agents a debate needs.
func (s *Store) MinAgents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minAgents
}

// SetMinAgents changes the minimum StartDebate requires from now on. Values
// below DefaultMinAgents are ignored; the result is the minimum in effect.
func (s *Store) SetMinAgents(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n >= DefaultMinAgents {
		s.minAgents = n
	}
	return s.minAgents
}

// -----------------------------------------------------------------------------
// Debate hand-off
// -----------------------------------------------------------------------------

// DebateRequest is what the sequencer needs to start a run.
type DebateRequest struct {
	Scenario catalog.Scenario
	Agents   []int
}

// StartDebate checks the preconditions for a debate and, when they hold,
// moves to the debate page and returns a snapshot of the selection. It fails
// with a *errors.ValidationError when no scenario is selected or fewer than
// MinAgents agents are.
func (s *Store) StartDebate() (DebateRequest, error) {
	s.mu.Lock()
	idx := s.indexLocked(s.selectedID)
	agents := slices.Clone(s.agents)
	minAgents := s.minAgents
	var sc catalog.Scenario
	if idx >= 0 {
		sc = s.scenarios[idx].Clone()
	}
	s.mu.Unlock()

	if idx < 0 {
		err := errors.NewValidationError(MsgNoScenario).WithField("scenario")
		s.ReportError(err)
		return DebateRequest{}, err
	}
	if len(agents) < minAgents {
		msg := notEnoughAgentsMessage(minAgents)
		err := errors.NewValidationError(msg).
			WithField("agents").
			WithValue(len(agents)).
			WithCause(errors.ErrNotEnoughAgents)
		s.logger.WithScenario(sc.ID).Warn("debate refused", "agents", len(agents), "min_agents", minAgents)
		s.ReportError(err)
		return DebateRequest{}, err
	}

	s.SetPage(PageDebate)
	return DebateRequest{Scenario: sc, Agents: agents}, nil
}

func notEnoughAgentsMessage(n int) string {
	return fmt.Sprintf(MsgNotEnoughAgents, n)
}

// -----------------------------------------------------------------------------
// Snapshot
// -----------------------------------------------------------------------------

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Page:           s.page,
		Scenarios:      cloneScenarios(s.scenarios),
		SelectedAgents: slices.Clone(s.agents),
		Step:           s.step,
		SearchTerm:     s.search,
		Category:       s.category,
		CustomFormOpen: s.customFormOpen,
	}
	if idx := s.indexLocked(s.selectedID); idx >= 0 {
		sc := s.scenarios[idx].Clone()
		st.SelectedScenario = &sc
	}
	return st
}

func cloneScenarios(in []catalog.Scenario) []catalog.Scenario {
	out := make([]catalog.Scenario, len(in))
	for i, sc := range in {
		out[i] = sc.Clone()
	}
	return out
}
