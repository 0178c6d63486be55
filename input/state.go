package input

// ButtonState tracks the primary button between mouse events
// tcell reports motion and release as plain button masks, so press and release
// are derived from transitions of this state
type ButtonState uint8

const (
	StateReleased ButtonState = iota // Awaiting press, motion ignored
	StatePressed                     // Button1 held, motion becomes PointerMove
)
