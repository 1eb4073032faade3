package realtime

import (
	"sync"
)

// Hub maps channel names to the clients subscribed to them. Delivery is
// at-most-once relative to the membership at broadcast time: a client
// that unsubscribes mid-broadcast may or may not see the event, a client
// with a full send buffer is skipped.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{channels: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Subscribe(c *Client, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.channels[channel]
	if !ok {
		set = make(map[*Client]struct{})
		h.channels[channel] = set
	}
	set[c] = struct{}{}
	c.channels[channel] = struct{}{}
}

func (h *Hub) Unsubscribe(c *Client, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c, channel)
}

// RemoveClient drops the client from every channel it is subscribed to.
func (h *Hub) RemoveClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for channel := range c.channels {
		h.dropLocked(c, channel)
	}
}

func (h *Hub) dropLocked(c *Client, channel string) {
	delete(c.channels, channel)
	if set, ok := h.channels[channel]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.channels, channel)
		}
	}
}

// Broadcast delivers ev to every subscriber of channel. Clients whose
// send buffer is full lose the event rather than stall the rest.
func (h *Hub) Broadcast(channel string, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.channels[channel] {
		select {
		case c.send <- ev:
		default:
		}
	}
}

func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channel])
}
