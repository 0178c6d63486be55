package event

import (
	"sync"
	"testing"
)

// TestQueueBasic tests basic push and consume operations
func TestQueueBasic(t *testing.T) {
	q := NewQueue()

	q.Push(Event{Type: EventDragStart, Label: "A", Frame: 1})
	q.Push(Event{Type: EventDragEnter, Label: "A", Target: "slot2", Frame: 2})
	q.Push(Event{Type: EventDrop, Label: "A", Target: "slot2", Slot: 2, Frame: 3})

	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	// FIFO order
	want := []EventType{EventDragStart, EventDragEnter, EventDrop}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], ev.Type)
		}
	}

	if again := q.Consume(); len(again) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(again))
	}
}

// TestQueueConcurrent tests concurrent push operations from multiple goroutines
func TestQueueConcurrent(t *testing.T) {
	q := NewQueue()
	numGoroutines := 8
	eventsPerGoroutine := 16

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				q.Push(Event{Type: EventDragEnter, Frame: int64(id*100 + j)})
			}
		}(i)
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != numGoroutines*eventsPerGoroutine {
		t.Fatalf("Expected %d events, got %d", numGoroutines*eventsPerGoroutine, len(events))
	}

	seen := make(map[int64]bool)
	for _, ev := range events {
		if seen[ev.Frame] {
			t.Errorf("Duplicate frame %d", ev.Frame)
		}
		seen[ev.Frame] = true
	}
}

// TestQueueOverflow verifies oldest events are dropped when full
func TestQueueOverflow(t *testing.T) {
	q := NewQueue()
	total := QueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventDragEnter, Frame: int64(i)})
	}

	if q.Len() != QueueSize {
		t.Errorf("Expected Len %d, got %d", QueueSize, q.Len())
	}

	events := q.Consume()
	if len(events) != QueueSize {
		t.Fatalf("Expected %d events, got %d", QueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest retained frame 10, got %d", events[0].Frame)
	}
	if events[len(events)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, events[len(events)-1].Frame)
	}
}

// TestQueueReuseAfterOverflow verifies consumed slots are released for the next lap
func TestQueueReuseAfterOverflow(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(Event{Type: EventDragEnter, Frame: int64(i)})
	}
	if got := len(q.Consume()); got != QueueSize {
		t.Fatalf("Expected %d events, got %d", QueueSize, got)
	}

	for i := 0; i < 3; i++ {
		q.Push(Event{Type: EventDrop, Frame: int64(1000 + i)})
	}
	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events after overflow, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(1000+i) {
			t.Errorf("Event %d: expected frame %d, got %d", i, 1000+i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue")
	}
}

// TestQueueConsumeDuringOverflow runs the consumer against a producer that laps it
func TestQueueConsumeDuringOverflow(t *testing.T) {
	q := NewQueue()
	total := QueueSize * 64

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			q.Push(Event{Type: EventDragEnter, Frame: int64(i)})
		}
	}()

	consumed := 0
	running := true
	for running {
		select {
		case <-done:
			running = false
		default:
		}
		for _, ev := range q.Consume() {
			if ev.Frame < 0 || ev.Frame >= int64(total) {
				t.Fatalf("Unexpected frame %d", ev.Frame)
			}
			consumed++
		}
	}
	consumed += len(q.Consume())

	if consumed > total {
		t.Errorf("Consumed %d events, more than the %d pushed", consumed, total)
	}
	if q.Len() != 0 {
		t.Errorf("Expected drained queue, Len %d", q.Len())
	}
}

func TestEventNames(t *testing.T) {
	for _, et := range []EventType{EventDragStart, EventDragEnter, EventDragExit, EventDrop, EventDragCancel, EventDropRejected} {
		name := GetEventName(et)
		back, ok := GetEventType(name)
		if !ok || back != et {
			t.Errorf("Name round trip failed for %d: %q -> %d", et, name, back)
		}
	}
	if EventNone.String() != "EventNone" {
		t.Errorf("Expected EventNone, got %q", EventNone.String())
	}
}
