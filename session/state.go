package session

// State is the drag session lifecycle phase
type State uint8

const (
	StateIdle      State = iota // No payload in flight
	StateDragging               // Pointer held, target re-evaluated on every move
	StateDropping               // Commit in progress, chain mutation pending
	StateCancelled              // Released without target or cancelled, no mutation
)

// String returns human-readable state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	case StateDropping:
		return "Dropping"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
