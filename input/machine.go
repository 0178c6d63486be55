package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell events into pointer and control Intents
type Machine struct {
	state  ButtonState
	lastX  int
	lastY  int
	button tcell.ButtonMask
}

// NewMachine creates a machine tracking the primary (left) button
func NewMachine() *Machine {
	return &Machine{button: tcell.Button1}
}

// State returns the tracked button state
func (m *Machine) State() ButtonState {
	return m.state
}

// Reset forgets a held button, e.g. after the drag was cancelled from the keyboard
// The next event carrying Button1 is reported as a fresh press
func (m *Machine) Reset() {
	m.state = StateReleased
}

// Process parses a tcell event and returns an Intent
// Returns nil for events with no meaning to the drag loop
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		return m.processMouse(x, y, ev.Buttons())
	case *tcell.EventKey:
		return m.processKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processMouse(x, y int, buttons tcell.ButtonMask) *Intent {
	held := buttons&m.button != 0
	moved := x != m.lastX || y != m.lastY
	m.lastX, m.lastY = x, y

	switch m.state {
	case StateReleased:
		if held {
			m.state = StatePressed
			return &Intent{Type: IntentPointerDown, X: x, Y: y}
		}
		// Hover motion without a drag
		return nil

	case StatePressed:
		if !held {
			m.state = StateReleased
			return &Intent{Type: IntentPointerUp, X: x, Y: y}
		}
		if moved {
			return &Intent{Type: IntentPointerMove, X: x, Y: y}
		}
	}
	return nil
}

func (m *Machine) processKey(key tcell.Key, r rune) *Intent {
	switch key {
	case tcell.KeyEscape:
		return &Intent{Type: IntentCancel}
	case tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch r {
		case 'q':
			return &Intent{Type: IntentQuit}
		case 'm':
			return &Intent{Type: IntentToggleMute}
		}
	}
	return nil
}
