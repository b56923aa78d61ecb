package services

import (
	"sync"

	"github.com/Mrco45/FLEXFINAL/internal/models"
)

// OrderEventType identifies what happened to the orders collection.
type OrderEventType string

const (
	OrderSnapshot OrderEventType = "snapshot"
	OrderCreated  OrderEventType = "created"
	OrderUpdated  OrderEventType = "updated"
	OrderDeleted  OrderEventType = "deleted"
)

// OrderEvent is pushed to live subscribers on every mutation. A snapshot
// event carries the full ordered list; incremental events carry one order,
// or just the ID for deletions.
type OrderEvent struct {
	Type   OrderEventType `json:"type"`
	Order  *models.Order  `json:"order,omitempty"`
	Orders []models.Order `json:"orders,omitempty"`
	ID     string         `json:"id,omitempty"`
}

// orderHub fans mutation events out to subscribers. Sends never block: a
// subscriber that cannot keep up misses events rather than stalling writes.
type orderHub struct {
	mu   sync.Mutex
	subs map[chan OrderEvent]struct{}
}

func newOrderHub() *orderHub {
	return &orderHub{subs: make(map[chan OrderEvent]struct{})}
}

// subscribe registers a new subscriber channel. The returned cancel func
// removes the subscription and closes the channel.
func (h *orderHub) subscribe(buffer int) (chan OrderEvent, func()) {
	ch := make(chan OrderEvent, buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

func (h *orderHub) broadcast(ev OrderEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
