package realtime

import (
	"sync"

	"smartduka/models"
)

// Event kinds carried on an order topic.
const (
	EventStatusUpdate  = "status-update"
	EventTelemetryPing = "telemetry-ping"
)

// Event is a best-effort, at-most-once broadcast payload. No ordering
// guarantee beyond publish order on a single topic.
type Event struct {
	Event     string               `json:"event"`
	NewStatus string               `json:"newStatus,omitempty"`
	Ping      *models.DeliveryPing `json:"ping,omitempty"`
}

// Broadcaster is the realtime channel contract. Consumers subscribe to
// an order-id topic and must call the cancel func on teardown.
type Broadcaster interface {
	Publish(topic string, ev Event)
	Subscribe(topic string) (<-chan Event, func())
}

// Hub is an in-memory Broadcaster. Slow subscribers lose events rather
// than block the publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

func (h *Hub) Publish(topic string, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[topic] {
		select {
		case ch <- ev:
		default:
			// subscriber is not keeping up; drop
		}
	}
}

func (h *Hub) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[chan Event]struct{})
	}
	h.subs[topic][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.subs[topic]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
				if len(set) == 0 {
					delete(h.subs, topic)
				}
			}
		}
	}
	return ch, cancel
}
