package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionAlreadyActive is returned by Begin while a drag is in flight
	ErrSessionAlreadyActive = errors.New("drag session already active")
	// ErrInvalidState is matched by StateError
	ErrInvalidState = errors.New("invalid session state")
)

// StateError reports a transition attempted from the wrong state
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s while %s: %v", e.Op, e.State, ErrInvalidState)
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}
