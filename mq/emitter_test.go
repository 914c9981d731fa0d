package mq

import (
	"context"
	"testing"
	"time"

	"smartduka/realtime"
)

func TestStatusWorkerStopsOnContextCancel(t *testing.T) {
	hub := realtime.NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		StartStatusWorker(ctx, hub, nil)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker still running after context cancel")
	}
}
