package mq

import (
	"context"
	"encoding/json"
	"log"

	"smartduka/rdx"
	"smartduka/realtime"
)

const statusChannel = "order-status-events"

// StatusEvent is the wire shape published on the Redis channel.
type StatusEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// Folder applies a status event to whatever owns the order. Events for
// unknown order ids must be discarded, not errored.
type Folder interface {
	Fold(ctx context.Context, orderID, status string)
}

// EmitStatus publishes an order status change to Redis. Best-effort:
// failures are logged, never surfaced to the caller.
func EmitStatus(ctx context.Context, orderID, status string) {
	data, err := json.Marshal(StatusEvent{OrderID: orderID, Status: status})
	if err != nil {
		log.Printf("[EmitStatus] marshal failed: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, statusChannel, data).Err(); err != nil {
		log.Printf("[EmitStatus] publish failed for %s: %v", orderID, err)
	}
}

// StartStatusWorker consumes status events from Redis, re-broadcasts
// them into the hub for live tracking views and folds them into order
// state. Runs until the subscription closes.
func StartStatusWorker(ctx context.Context, hub realtime.Broadcaster, folder Folder) {
	sub := rdx.Conn.Subscribe(ctx, statusChannel)
	defer sub.Close()
	ch := sub.Channel()

	// the subscribe ctx only covers the initial command; closing the
	// subscription is what ends the message channel on shutdown
	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	log.Println("[StatusWorker] Listening for order status events...")

	for msg := range ch {
		var event StatusEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[StatusWorker] Failed to parse event: %v", err)
			continue
		}

		hub.Publish(event.OrderID, realtime.Event{
			Event:     realtime.EventStatusUpdate,
			NewStatus: event.Status,
		})
		if folder != nil {
			folder.Fold(ctx, event.OrderID, event.Status)
		}
	}
}
