package notify

import (
	"sync"

	"credo-app-go/internal/domain/recognition"
	"credo-app-go/pkg/logger"
)

// Hub fans newly created recognitions out to the current observer set.
// Delivery is at-most-once: there is no queue, no replay, and an observer
// registered after a publish never sees that event.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscriber
	log    logger.Logger
}

type subscriber struct {
	id int
	fn func(recognition.Recognition)
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{log: log}
}

// Subscribe registers fn for future broadcasts and returns the function that
// removes it. Calling the returned function more than once is a no-op.
func (h *Hub) Subscribe(fn func(recognition.Recognition)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs = append(h.subs, subscriber{id: id, fn: fn})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.remove(id)
		})
	}
}

// Publish invokes every registered observer in registration order. An
// observer panic is contained so it cannot reach the create path.
func (h *Hub) Publish(rec recognition.Recognition) {
	h.mu.RLock()
	subs := make([]subscriber, len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	for _, sub := range subs {
		h.deliver(sub, rec)
	}
}

func (h *Hub) deliver(sub subscriber, rec recognition.Recognition) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("notify: observer panicked", "observer_id", sub.id, "panic", r)
		}
	}()
	sub.fn(rec)
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, sub := range h.subs {
		if sub.id == id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

// Len reports the current observer count.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
