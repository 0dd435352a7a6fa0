package queue

import (
	"net"
	"testing"
	"time"
)

// A broker that accepts connections but never speaks AMQP must not
// stall callers: Publish only enqueues, the worker owns the dial.
func TestPublishDoesNotBlockOnStalledBroker(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	p := NewPublisher("amqp://guest:guest@" + ln.Addr().String() + "/")

	start := time.Now()
	for i := 0; i < publishBuffer*2; i++ {
		p.Publish(ReservationCreated, ReservationEvent{ReservationID: uint(i + 1)})
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("enqueueing %d events took %v, want well under 2s", publishBuffer*2, elapsed)
	}
}

func TestPublishDropsOnFullBuffer(t *testing.T) {
	// No worker drains this queue, so everything past the buffer must
	// fall into the drop branch instead of blocking.
	p := &Publisher{queue: make(chan envelope, 2)}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			p.Publish(ReservationCancelled, ReservationEvent{ReservationID: uint(i + 1)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full buffer")
	}

	if got := len(p.queue); got != 2 {
		t.Fatalf("queued events = %d, want 2", got)
	}
}
