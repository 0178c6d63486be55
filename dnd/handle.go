package dnd

type handleKind uint8

const (
	handleNone handleKind = iota
	handleDraggable
	handleTarget
	handleListener
)

// Handle identifies a registration for Unregister
// Zero value is valid and unregisters nothing
type Handle struct {
	kind handleKind
	key  string
	id   uint64
}

// Key returns the draggable or target key the handle refers to
func (h Handle) Key() string {
	return h.key
}

// Listeners are the per-target callbacks; nil fields are skipped
type Listeners[T any] struct {
	OnEnter func(key string, payload T)
	OnExit  func(key string)
	OnDrop  func(key string, payload T)
}

type listenerEntry[T any] struct {
	id uint64
	l  Listeners[T]
}

type draggable[T any] struct {
	id      uint64
	payload T
}
