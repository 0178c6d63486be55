// Package session models the single in-flight drag
//
// Transitions:
//
//	Idle --Begin--> Dragging --Commit--> Dropping --Reset--> Idle
//	                         --Cancel--> Cancelled --Reset--> Idle
//
// Any other call fails with a StateError; a second Begin while a drag exists
// fails with ErrSessionAlreadyActive instead of queuing.
package session

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/dropchain/core"
)

// NoSlot marks a payload that did not originate from any root slot
const NoSlot = -1

// Session is the drag state for payload type T
// Not safe for concurrent use
type Session[T any] struct {
	id      uuid.UUID
	label   string
	payload T
	origin  int
	pointer core.Point
	hovered string
	hover   bool
	state   State
}

// New returns an idle session
func New[T any]() *Session[T] {
	return &Session[T]{origin: NoSlot}
}

// Begin starts a drag of payload labeled label from origin slot at pos
func (s *Session[T]) Begin(label string, payload T, origin int, pos core.Point) error {
	if s.state != StateIdle {
		return ErrSessionAlreadyActive
	}
	s.id = uuid.New()
	s.label = label
	s.payload = payload
	s.origin = origin
	s.pointer = pos
	s.hovered = ""
	s.hover = false
	s.state = StateDragging
	return nil
}

// Move records a new pointer position
func (s *Session[T]) Move(pos core.Point) error {
	if s.state != StateDragging {
		return &StateError{Op: "move", State: s.state}
	}
	s.pointer = pos
	return nil
}

// Hover records the hit-test result for the current pointer
// Returns the previously hovered key and whether the hovered target changed
func (s *Session[T]) Hover(key string, ok bool) (prev string, hadPrev bool, changed bool, err error) {
	if s.state != StateDragging {
		return "", false, false, &StateError{Op: "hover", State: s.state}
	}
	prev, hadPrev = s.hovered, s.hover
	changed = hadPrev != ok || (ok && prev != key)
	if !ok {
		key = ""
	}
	s.hovered, s.hover = key, ok
	return prev, hadPrev, changed, nil
}

// Commit moves Dragging to Dropping
func (s *Session[T]) Commit() error {
	if s.state != StateDragging {
		return &StateError{Op: "commit", State: s.state}
	}
	s.state = StateDropping
	return nil
}

// Cancel moves Dragging to Cancelled
func (s *Session[T]) Cancel() error {
	if s.state != StateDragging {
		return &StateError{Op: "cancel", State: s.state}
	}
	s.state = StateCancelled
	return nil
}

// Reset returns a finished session to Idle and clears the payload
func (s *Session[T]) Reset() error {
	if s.state != StateDropping && s.state != StateCancelled {
		return &StateError{Op: "reset", State: s.state}
	}
	var zero T
	s.id = uuid.Nil
	s.label = ""
	s.payload = zero
	s.origin = NoSlot
	s.pointer = core.Point{}
	s.hovered = ""
	s.hover = false
	s.state = StateIdle
	return nil
}

// State returns the current lifecycle phase
func (s *Session[T]) State() State { return s.state }

// Active reports whether a drag is in flight
func (s *Session[T]) Active() bool { return s.state == StateDragging }

// ID returns the session identifier, uuid.Nil while idle
func (s *Session[T]) ID() uuid.UUID { return s.id }

// Label returns the dragged label
func (s *Session[T]) Label() string { return s.label }

// Payload returns the dragged value
func (s *Session[T]) Payload() T { return s.payload }

// Origin returns the slot the payload came from, NoSlot for fresh payloads
func (s *Session[T]) Origin() int { return s.origin }

// Pointer returns the last recorded pointer position
func (s *Session[T]) Pointer() core.Point { return s.pointer }

// Hovered returns the currently hovered target key
func (s *Session[T]) Hovered() (string, bool) { return s.hovered, s.hover }
