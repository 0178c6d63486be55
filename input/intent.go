package input

// IntentType discriminates pointer and control actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Pointer intents, forwarded to the coordinator
	IntentPointerDown // Button1 pressed
	IntentPointerMove // Motion while Button1 held
	IntentPointerUp   // Button1 released

	// Control intents
	IntentCancel     // ESC, abandons the active drag
	IntentQuit       // q, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event
)

var intentNames = [...]string{
	IntentNone:        "None",
	IntentPointerDown: "PointerDown",
	IntentPointerMove: "PointerMove",
	IntentPointerUp:   "PointerUp",
	IntentCancel:      "Cancel",
	IntentQuit:        "Quit",
	IntentToggleMute:  "ToggleMute",
	IntentResize:      "Resize",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "Unknown"
}

// Intent represents a parsed semantic action
// Pure data, X/Y are cell coordinates for pointer intents
type Intent struct {
	Type IntentType
	X, Y int
}
