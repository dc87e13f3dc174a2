package debate

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/errors"
	"github.com/Iron-Ham/ethicsim/internal/event"
	"github.com/Iron-Ham/ethicsim/internal/logging"
)

// Sequencer reveals a scripted debate one message at a time and aggregates
// the result once the script is exhausted.
type Sequencer struct {
	mu       sync.Mutex
	id       string
	scenario catalog.Scenario
	agents   []int
	rounds   []Round
	rng      RandomSource
	bus      *event.Bus
	logger   *logging.Logger

	state    State
	round    int // index into rounds of the next message
	msg      int // index into rounds[round].Messages of the next message
	revealed []Message
	result   *Result

	done     chan struct{} // closed on completion or cancellation
	doneOnce sync.Once
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithRandom sets the random source for score draws.
func WithRandom(rng RandomSource) Option {
	return func(s *Sequencer) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithBus publishes playback events on bus.
func WithBus(bus *event.Bus) Option {
	return func(s *Sequencer) {
		s.bus = bus
	}
}

// WithLogger sets the logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRunID overrides the generated run ID.
func WithRunID(id string) Option {
	return func(s *Sequencer) {
		if id != "" {
			s.id = id
		}
	}
}

// NewSequencer scripts a debate for scenario with the given agents, in
// selection order. It refuses to start with fewer than MinAgents agents,
// returning a *errors.ValidationError. The run waits in StateAwaitingStart
// until the first Next.
func NewSequencer(scenario catalog.Scenario, agents []int, opts ...Option) (*Sequencer, error) {
	s := &Sequencer{
		id:       uuid.NewString(),
		scenario: scenario.Clone(),
		agents:   slices.Clone(agents),
		logger:   logging.NopLogger(),
		state:    StateAwaitingStart,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRandom(0)
	}
	s.logger = s.logger.WithRun(s.id).WithScenario(scenario.ID)

	rounds, err := GenerateScript(s.agents, s.rng)
	if err != nil {
		s.logger.Warn("debate refused", "agents", len(agents), "error", err.Error())
		return nil, fmt.Errorf("debate: %w", err)
	}
	s.rounds = rounds

	s.logger.Info("debate scripted", "agents", s.agents, "messages", s.TotalMessages())
	return s, nil
}

// ID returns the run identifier.
func (s *Sequencer) ID() string {
	return s.id
}

// Scenario returns the scenario being debated.
func (s *Sequencer) Scenario() catalog.Scenario {
	return s.scenario.Clone()
}

// Agents returns the participating agent indices in selection order.
func (s *Sequencer) Agents() []int {
	return slices.Clone(s.agents)
}

// Rounds returns a copy of the full script.
func (s *Sequencer) Rounds() []Round {
	out := make([]Round, len(s.rounds))
	for i, r := range s.rounds {
		r.Messages = slices.Clone(r.Messages)
		out[i] = r
	}
	return out
}

// TotalMessages returns the number of scripted messages.
func (s *Sequencer) TotalMessages() int {
	n := 0
	for _, r := range s.rounds {
		n += len(r.Messages)
	}
	return n
}

// State returns the current playback state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Revealed returns the messages revealed so far, in order.
func (s *Sequencer) Revealed() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.revealed)
}

// Result returns the aggregated result once the run is complete.
func (s *Sequencer) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return cloneResult(*s.result), true
}

// Done returns a channel closed when the run completes or is canceled.
func (s *Sequencer) Done() <-chan struct{} {
	return s.done
}

// Next performs one transition. While messages remain it reveals the next
// one; once they are exhausted it aggregates the result, exactly once, and
// returns it on this and every later call. After Cancel it returns
// errors.ErrCanceled.
func (s *Sequencer) Next() (Step, error) {
	var events []event.Event

	s.mu.Lock()
	switch s.state {
	case StateCanceled:
		s.mu.Unlock()
		return Step{}, errors.ErrCanceled
	case StateComplete:
		res := cloneResult(*s.result)
		s.mu.Unlock()
		return Step{Result: &res}, nil
	case StateAwaitingStart:
		events = append(events, event.NewDebateStartedEvent(
			s.id, s.scenario.ID, slices.Clone(s.agents), s.TotalMessages(),
		))
	}

	// Skip rounds that scripted no messages.
	for s.round < len(s.rounds) && s.msg >= len(s.rounds[s.round].Messages) {
		s.round++
		s.msg = 0
	}

	if s.round >= len(s.rounds) {
		res := Aggregate(s.agents, s.rng, s.revealed)
		s.result = &res
		s.state = StateComplete
		s.mu.Unlock()

		s.finish()
		s.logger.Info("debate completed", "winner", res.WinnerIndex, "winner_score", res.WinnerScore)
		events = append(events, event.NewDebateCompletedEvent(s.id, res.WinnerIndex, res.WinnerScore))
		for _, e := range events {
			s.bus.Publish(e)
		}
		out := cloneResult(res)
		return Step{Result: &out}, nil
	}

	round := s.rounds[s.round]
	msg := round.Messages[s.msg]
	reveal := &Reveal{
		Sequence: len(s.revealed),
		Message:  msg,
		Agent:    catalog.MustAgent(msg.AgentIndex),
	}
	if s.msg == 0 {
		reveal.RoundTitle = round.Title
		events = append(events, event.NewRoundStartedEvent(s.id, round.Number, round.Title))
	}
	events = append(events, event.NewMessageRevealedEvent(
		s.id, msg.Round, reveal.Sequence, msg.AgentIndex, msg.Score, msg.Text,
	))

	s.revealed = append(s.revealed, msg)
	s.msg++
	s.state = StateRevealing
	s.mu.Unlock()

	for _, e := range events {
		s.bus.Publish(e)
	}
	return Step{Reveal: reveal}, nil
}

// Cancel abandons the run. It is a no-op once the run is complete or already
// canceled, and reports whether this call canceled the run.
func (s *Sequencer) Cancel() bool {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return false
	}
	s.state = StateCanceled
	revealed := len(s.revealed)
	s.mu.Unlock()

	s.finish()
	s.logger.Info("debate canceled", "revealed", revealed)
	s.bus.Publish(event.NewDebateCanceledEvent(s.id, revealed))
	return true
}

func (s *Sequencer) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

// Play drives the run to completion on clock: the first message is revealed
// immediately, each later transition happens interval after the previous
// reveal, and the result arrives one interval after the last message. fn is
// called for every step, the final one included.
//
// Play returns errors.ErrCanceled when ctx is done or Cancel is called. The
// pending timer is stopped before returning.
func (s *Sequencer) Play(ctx context.Context, clock Clock, interval time.Duration, fn func(Step)) (*Result, error) {
	if fn == nil {
		fn = func(Step) {}
	}
	for {
		step, err := s.Next()
		if err != nil {
			return nil, err
		}
		fn(step)
		if step.Done() {
			return step.Result, nil
		}

		timer := clock.NewTimer(interval)
		select {
		case <-timer.C():
		case <-ctx.Done():
			timer.Stop()
			s.Cancel()
			return nil, fmt.Errorf("%w: %w", errors.ErrCanceled, ctx.Err())
		case <-s.done:
			timer.Stop()
			if s.State() == StateCanceled {
				return nil, errors.ErrCanceled
			}
		}
	}
}

func cloneResult(r Result) Result {
	scores := make(map[int]float64, len(r.Scores))
	for k, v := range r.Scores {
		scores[k] = v
	}
	r.Scores = scores
	r.Transcript = slices.Clone(r.Transcript)
	return r
}
