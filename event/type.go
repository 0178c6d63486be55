package event

// EventType represents the type of drag lifecycle event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// EventDragStart signals a payload was picked up
	// Trigger: Coordinator.PointerDown
	// Consumer: renderer (hide origin), audio | Target: ""
	EventDragStart

	// EventDragEnter signals the pointer entered a winning drop target
	// Trigger: hit-test change on PointerMove
	// Consumer: target listeners, renderer highlight, audio | Target: entered key
	EventDragEnter

	// EventDragExit signals the previously winning target lost the pointer
	// Trigger: hit-test change, commit, cancel, target unregister
	// Consumer: target listeners, renderer | Target: exited key
	EventDragExit

	// EventDrop signals a committed drop after slots were replaced
	// Trigger: Coordinator.PointerUp with a hovered target
	// Consumer: target listeners, metrics, audio | Target: drop key, Slot: destination
	EventDrop

	// EventDragCancel signals the drag ended without structural change
	// Trigger: PointerUp with no target, Coordinator.Cancel
	// Consumer: metrics, audio | Target: ""
	EventDragCancel

	// EventDropRejected signals a commit that resolved to a target without a slot
	// Trigger: commit failing with UnknownTargetError
	// Consumer: metrics, logs | Target: offending key
	EventDropRejected
)
