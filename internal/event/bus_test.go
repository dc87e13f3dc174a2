package event

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/Iron-Ham/ethicsim/internal/logging"
)

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus()

	called := false
	id := bus.Subscribe(TypePageChanged, func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("SubscriptionCount() = %d, want 1", bus.SubscriptionCount())
	}
	if called {
		t.Error("handler should not run before an event is published")
	}
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus()

	var received Event
	bus.Subscribe(TypePageChanged, func(e Event) {
		received = e
	})

	bus.Publish(NewPageChangedEvent("home", "scenario"))

	changed, ok := received.(PageChangedEvent)
	if !ok {
		t.Fatalf("received %T, want PageChangedEvent", received)
	}
	if changed.From != "home" || changed.To != "scenario" {
		t.Errorf("got %q -> %q, want home -> scenario", changed.From, changed.To)
	}
	if changed.Timestamp().IsZero() {
		t.Error("Timestamp() should be set")
	}
}

func TestBus_PublishOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.SubscribeAll(func(e Event) { order = append(order, "all") })
	bus.Subscribe(TypeNotification, func(e Event) { order = append(order, "first") })
	bus.Subscribe(TypeNotification, func(e Event) { order = append(order, "second") })

	bus.Publish(NewNotificationEvent(NotificationInfo, "hi"))

	want := []string{"first", "second", "all"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestBus_NilPublish(t *testing.T) {
	var bus *Bus
	bus.Publish(NewNotificationEvent(NotificationInfo, "ignored"))
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	count := 0
	keep := bus.Subscribe(TypeAgentToggled, func(e Event) { count++ })
	drop := bus.Subscribe(TypeAgentToggled, func(e Event) { count += 100 })

	if !bus.Unsubscribe(drop) {
		t.Fatal("Unsubscribe should report success")
	}
	if bus.Unsubscribe(drop) {
		t.Error("second Unsubscribe should report failure")
	}

	bus.Publish(NewAgentToggledEvent(1, true, []int{1}))
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	bus.Unsubscribe(keep)
	if bus.SubscriptionCount() != 0 {
		t.Errorf("SubscriptionCount() = %d, want 0", bus.SubscriptionCount())
	}
}

func TestBus_Clear(t *testing.T) {
	bus := NewBus()
	bus.Subscribe("a", func(Event) {})
	bus.SubscribeAll(func(Event) {})
	bus.Clear()
	if bus.SubscriptionCount() != 0 {
		t.Errorf("SubscriptionCount() = %d, want 0", bus.SubscriptionCount())
	}
}

func TestBus_HandlerPanicRecovery(t *testing.T) {
	bus := NewBus()

	reached := false
	bus.Subscribe(TypeDebateCanceled, func(e Event) { panic("boom") })
	bus.Subscribe(TypeDebateCanceled, func(e Event) { reached = true })

	bus.Publish(NewDebateCanceledEvent("run", 2))

	if !reached {
		t.Error("handler after a panicking handler should still run")
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(TypeMessageRevealed, func(e Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			bus.Publish(NewMessageRevealedEvent("run", 1, n, 0, 7, "text"))
		}(i)
	}
	wg.Wait()

	if count != 50 {
		t.Errorf("count = %d, want 50", count)
	}
}

func TestBus_UniqueIDs(t *testing.T) {
	bus := NewBus()
	seen := make(map[string]bool)
	for range 100 {
		id := bus.Subscribe("x", func(Event) {})
		if seen[id] {
			t.Fatalf("duplicate subscription ID %q", id)
		}
		seen[id] = true
	}
}

func TestBus_PanicLoggedToLogger(t *testing.T) {
	var buf bytes.Buffer
	bus := NewBus(WithLogger(logging.NewWriterLogger(&buf, "debug")))

	bus.Subscribe(TypeDebateCanceled, func(e Event) { panic("boom") })
	bus.Publish(NewDebateCanceledEvent("run", 2))

	out := buf.String()
	for _, want := range []string{"event handler panicked", TypeDebateCanceled, "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestOn(t *testing.T) {
	bus := NewBus()

	var got []string
	id := On(bus, TypeNotification, func(n NotificationEvent) {
		got = append(got, n.Message)
	})
	// A wildcard-typed subscription only sees matching concrete types.
	var pages int
	On(bus, wildcard, func(PageChangedEvent) { pages++ })

	bus.Publish(NewNotificationEvent(NotificationWarning, "careful"))
	bus.Publish(NewPageChangedEvent("home", "scenario"))

	if len(got) != 1 || got[0] != "careful" {
		t.Errorf("got %v, want [careful]", got)
	}
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}

	if !bus.Unsubscribe(id) {
		t.Fatal("Unsubscribe() = false")
	}
	bus.Publish(NewNotificationEvent(NotificationInfo, "ignored"))
	if len(got) != 1 {
		t.Errorf("handler ran after Unsubscribe: %v", got)
	}
}
