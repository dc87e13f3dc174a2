package tui

import (
	"sync"

	"github.com/Iron-Ham/ethicsim/internal/event"
)

// noticeQueue collects notification events published on the bus. Handlers
// run synchronously inside Update, so events are queued and drained once
// Update is done rather than sent back into the program.
type noticeQueue struct {
	mu    sync.Mutex
	items []event.NotificationEvent
}

func (q *noticeQueue) handle(n event.NotificationEvent) {
	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()
}

func (q *noticeQueue) drain() []event.NotificationEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}
