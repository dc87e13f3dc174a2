package event

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/Iron-Ham/ethicsim/internal/logging"
)

// Handler is a function that handles an event.
type Handler func(Event)

const wildcard = "*"

type subscription struct {
	id      string
	handler Handler
}

// Bus is a synchronous pub-sub event bus. Store mutations and sequencer
// steps are published on it; the TUI and the headless commands subscribe.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[string][]subscription // eventType -> subscriptions
	nextID        atomic.Uint64
	logger        *logging.Logger
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithLogger reports recovered handler panics to logger instead of the
// standard logger.
func WithLogger(logger *logging.Logger) BusOption {
	return func(b *Bus) {
		b.logger = logger
	}
}

// NewBus creates a new event bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subscriptions: make(map[string][]subscription),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for a specific event type and returns a
// subscription ID for Unsubscribe.
func (b *Bus) Subscribe(eventType string, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := fmt.Sprintf("sub-%d", b.nextID.Add(1))
	b.subscriptions[eventType] = append(b.subscriptions[eventType], subscription{id: id, handler: handler})
	return id
}

// SubscribeAll registers a handler that receives every published event.
func (b *Bus) SubscribeAll(handler Handler) string {
	return b.Subscribe(wildcard, handler)
}

// On subscribes fn to eventType and hands it events already asserted to T.
// Events of any other concrete type are skipped.
//
//	event.On(bus, event.TypeNotification, func(n event.NotificationEvent) {
//	    show(n.Message)
//	})
func On[T Event](b *Bus, eventType string, fn func(T)) string {
	return b.Subscribe(eventType, func(e Event) {
		if typed, ok := e.(T); ok {
			fn(typed)
		}
	})
}

// Unsubscribe removes a subscription by ID.
// Returns true if the subscription was found and removed.
func (b *Bus) Unsubscribe(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, subs := range b.subscriptions {
		idx := -1
		for i, sub := range subs {
			if sub.id == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		if len(subs) == 1 {
			delete(b.subscriptions, eventType)
		} else {
			b.subscriptions[eventType] = append(subs[:idx:idx], subs[idx+1:]...)
		}
		return true
	}
	return false
}

// Publish dispatches an event to the handlers subscribed to its type, then
// to wildcard handlers, each group in registration order. Publishing on a nil
// Bus is a no-op so components can run without one.
//
// Handlers run on the publishing goroutine and may publish or subscribe
// themselves; the handler lists are copied before dispatch.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}

	b.mu.RLock()
	specific := append([]subscription(nil), b.subscriptions[event.EventType()]...)
	all := append([]subscription(nil), b.subscriptions[wildcard]...)
	b.mu.RUnlock()

	for _, sub := range specific {
		b.dispatch(sub, event)
	}
	for _, sub := range all {
		b.dispatch(sub, event)
	}
}

// dispatch calls one handler. A panicking handler is logged and skipped so
// the remaining handlers still see the event.
func (b *Bus) dispatch(sub subscription, event Event) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if b.logger != nil {
			b.logger.Error("event handler panicked",
				"event_type", event.EventType(),
				"subscription", sub.id,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			return
		}
		log.Printf("ERROR: event handler %s panicked for event %s: %v\n%s",
			sub.id, event.EventType(), r, debug.Stack())
	}()
	sub.handler(event)
}

// Clear removes all subscriptions.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions = make(map[string][]subscription)
}

// SubscriptionCount returns the total number of active subscriptions.
func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, subs := range b.subscriptions {
		count += len(subs)
	}
	return count
}
