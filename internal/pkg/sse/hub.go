package sse

import (
	"sync"
)

// Event is a server-sent event addressed to a single user. A user may hold
// several open streams (tabs); each gets its own copy.
type Event struct {
	UserID string
	Event  string
	Data   interface{}
}

// Hub fans events out to the open streams of each user.
type Hub struct {
	mu      sync.RWMutex
	streams map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		streams: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe opens a stream for userID. The returned cleanup must be called
// when the client disconnects; it closes the channel.
func (h *Hub) Subscribe(userID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.streams[userID] == nil {
		h.streams[userID] = make(map[chan Event]struct{})
	}
	h.streams[userID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.streams[userID], ch)
		close(ch)
		if len(h.streams[userID]) == 0 {
			delete(h.streams, userID)
		}
	}

	return ch, cleanup
}

// Publish delivers the event to every open stream of userID. Streams whose
// buffer is full are skipped so a stalled client never blocks the publisher.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.streams[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}
