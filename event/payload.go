package event

import "github.com/google/uuid"

// NoSlot marks events without a slot
const NoSlot = -1

// Event is a single drag lifecycle notification
// Value type; payload values stay with the coordinator listeners, events carry labels only
type Event struct {
	Type    EventType
	Session uuid.UUID
	Label   string // Dragged label
	Target  string // Drop target key, empty when not applicable
	Slot    int    // Destination (drop) or origin (start) slot, NoSlot otherwise
	Frame   int64  // Pointer event counter at emission
}
