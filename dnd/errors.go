package dnd

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/dropchain/session"
	"github.com/lixenwraith/dropchain/target"
)

var (
	// ErrUnknownTarget is matched by UnknownTargetError
	ErrUnknownTarget = errors.New("unknown drop target")
	// ErrUnknownDraggable is returned by PointerDown for unregistered keys
	ErrUnknownDraggable = errors.New("unknown draggable")
	// ErrInvalidSlot is returned for slot indices outside the configured range
	ErrInvalidSlot = errors.New("invalid slot")

	// Re-exported so callers can match every contract violation from this package
	ErrDuplicateKey         = target.ErrDuplicateKey
	ErrSessionAlreadyActive = session.ErrSessionAlreadyActive
	ErrInvalidSessionState  = session.ErrInvalidState
)

// UnknownTargetError reports a target key with no registration or no mapped slot
type UnknownTargetError struct {
	Key string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("target %q: %v", e.Key, ErrUnknownTarget)
}

func (e *UnknownTargetError) Is(target error) bool {
	return target == ErrUnknownTarget
}
