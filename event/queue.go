package event

import "sync/atomic"

const (
	// QueueSize must be a power of two
	QueueSize = 256
	slotMask  = QueueSize - 1
)

// Queue is a lock-free ring of lifecycle events with many producers and one consumer
// A slot is readable only once its ready flag is set, so Drain never sees a torn write
// When full, the oldest unread events are dropped
type Queue struct {
	ring  [QueueSize]Event
	ready [QueueSize]atomic.Bool
	read  atomic.Uint64 // next index to consume
	write atomic.Uint64 // next index to claim
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push claims the next slot and publishes ev into it
// Safe for concurrent producers
func (q *Queue) Push(ev Event) {
	var claimed uint64
	for {
		claimed = q.write.Load()
		if q.write.CompareAndSwap(claimed, claimed+1) {
			break
		}
	}

	i := claimed & slotMask
	q.ring[i] = ev
	q.ready[i].Store(true) // after the write

	// Skip the reader past anything this push overwrote
	end := claimed + 1
	if r := q.read.Load(); end-r > QueueSize {
		q.read.CompareAndSwap(r, end-QueueSize)
	}
}

// Consume returns every published event in FIFO order
// Stops at the first slot whose producer has not finished; it is picked up next call
// Single consumer only
func (q *Queue) Consume() []Event {
	for {
		r := q.read.Load()
		w := q.write.Load()
		if w == r {
			return nil
		}
		if w-r > QueueSize {
			q.read.CompareAndSwap(r, w-QueueSize)
			continue
		}

		out := make([]Event, 0, w-r)
		for n := range w - r {
			i := (r + n) & slotMask
			if !q.ready[i].Load() {
				break
			}
			out = append(out, q.ring[i])
		}

		// An overflowing Push moved the reader; the copy may hold overwritten slots
		if !q.read.CompareAndSwap(r, r+uint64(len(out))) {
			continue
		}
		for n := range uint64(len(out)) {
			q.ready[(r+n)&slotMask].Store(false)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
}

// Len returns the approximate number of unread events
func (q *Queue) Len() int {
	r, w := q.read.Load(), q.write.Load()
	if w <= r {
		return 0
	}
	return int(min(w-r, QueueSize))
}
