// Package event provides a synchronous pub-sub bus that decouples the
// selection store and the debate sequencer from whoever renders or records
// what they do.
//
// The store and the sequencer publish one event per state change. The TUI
// and the headless debate command subscribe to the ones they render; the
// command wiring subscribes a wildcard handler that logs every event.
//
// # Event Categories
//
// Navigation and selection:
//   - [PageChangedEvent] ("page.changed")
//   - [ScenarioSelectedEvent] ("scenario.selected")
//   - [ScenarioCreatedEvent] ("scenario.created")
//   - [AgentToggledEvent] ("agent.toggled")
//   - [AgentsSelectedEvent] ("agent.selection_set")
//   - [StepChangedEvent] ("onboarding.step_changed")
//   - [CustomFormToggledEvent] ("scenario.form_toggled")
//   - [FilterChangedEvent] ("filter.changed")
//
// Debate playback:
//   - [DebateStartedEvent] ("debate.started")
//   - [RoundStartedEvent] ("debate.round_started")
//   - [MessageRevealedEvent] ("debate.message_revealed")
//   - [DebateCompletedEvent] ("debate.completed")
//   - [DebateCanceledEvent] ("debate.canceled")
//
// User notifications:
//   - [NotificationEvent] ("notification.shown")
//
// # Usage
//
//	bus := event.NewBus()
//	bus.Subscribe(event.TypeNotification, func(e event.Event) {
//	    n := e.(event.NotificationEvent)
//	    showBanner(n.Message)
//	})
//	bus.SubscribeAll(func(e event.Event) {
//	    logger.Debug("event", "event_type", e.EventType())
//	})
//
// # Thread Safety
//
// [Bus] is safe for concurrent use. Handlers run synchronously on the
// publishing goroutine; a panicking handler is recovered and does not stop
// delivery to the remaining handlers.
package event
