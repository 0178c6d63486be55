package dnd

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/dropchain/event"
)

// Observer receives every lifecycle event after target listeners ran
type Observer interface {
	Observe(ev event.Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(ev event.Event)

// Observe calls f(ev)
func (f ObserverFunc) Observe(ev event.Event) { f(ev) }

type options struct {
	logger    zerolog.Logger
	queue     *event.Queue
	observers []Observer
}

// Option configures a Coordinator
type Option func(*options)

// WithLogger sets the structured logger; defaults to a no-op logger
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithEventQueue mirrors lifecycle events into q for a consumer on another goroutine
func WithEventQueue(q *event.Queue) Option {
	return func(o *options) { o.queue = q }
}

// WithObserver adds a synchronous lifecycle observer
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}
