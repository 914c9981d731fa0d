package realtime

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"smartduka/models"
)

// Simulator publishes synthetic delivery pings for an order on a fixed
// cadence while a tracking session is live. It stands in for a real
// driver telemetry feed.
type Simulator struct {
	hub      Broadcaster
	interval time.Duration

	mu      sync.Mutex
	running map[string]context.CancelFunc
}

const defaultPingInterval = 2 * time.Second

// Nairobi CBD, where simulated missions start.
const (
	baseLat = -1.286389
	baseLng = 36.817223
)

func NewSimulator(hub Broadcaster, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = defaultPingInterval
	}
	return &Simulator{
		hub:      hub,
		interval: interval,
		running:  make(map[string]context.CancelFunc),
	}
}

// Start begins publishing pings for the order. The simulation outlives
// the request that started it; Stop or StopAll tears it down. A second
// Start for the same order is a no-op.
func (s *Simulator) Start(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.running[orderID]; ok {
		return
	}
	runCtx, cancel := context.WithCancel(context.Background())
	s.running[orderID] = cancel
	go s.run(runCtx, orderID)
}

// Stop cancels the ticker for the order. No-op if not running.
func (s *Simulator) Stop(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cancel, ok := s.running[orderID]; ok {
		cancel()
		delete(s.running, orderID)
	}
}

// StopAll tears down every running simulation; called on shutdown.
func (s *Simulator) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, cancel := range s.running {
		cancel()
		delete(s.running, id)
	}
}

func (s *Simulator) run(ctx context.Context, orderID string) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var seq int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case <-ctx.Done():
				return
			default:
			}
			seq++
			step := float64(seq)
			ping := &models.DeliveryPing{
				Seq:       seq,
				OrderID:   orderID,
				Latitude:  baseLat + step*0.0005,
				Longitude: baseLng + step*0.0008,
				Heading:   45 + math.Sin(step)*5,
				Speed:     40 + rand.Float64()*20,
				CreatedAt: time.Now(),
			}
			s.hub.Publish(orderID, Event{Event: EventTelemetryPing, Ping: ping})
		}
	}
}
