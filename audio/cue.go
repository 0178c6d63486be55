package audio

import (
	"time"

	"github.com/lixenwraith/dropchain/event"
)

// Cue identifies a short feedback sound
type Cue uint8

const (
	CueNone Cue = iota
	CuePickup
	CueEnter
	CueDrop
	CueCancel
	CueReject
)

// cueSpec describes the tone rendered for a cue
type cueSpec struct {
	freq     float64
	duration time.Duration
	harmonic bool // adds 2nd and 3rd harmonics for a harsher timbre
}

var cueSpecs = [...]cueSpec{
	CuePickup: {freq: 440, duration: 40 * time.Millisecond},
	CueEnter:  {freq: 660, duration: 30 * time.Millisecond},
	CueDrop:   {freq: 880, duration: 90 * time.Millisecond},
	CueCancel: {freq: 220, duration: 80 * time.Millisecond},
	CueReject: {freq: 120, duration: 150 * time.Millisecond, harmonic: true},
}

// CueFor maps a lifecycle event to its cue
// Exit has no cue; it always pairs with an enter, drop or cancel that does
func CueFor(ev event.Event) Cue {
	switch ev.Type {
	case event.EventDragStart:
		return CuePickup
	case event.EventDragEnter:
		return CueEnter
	case event.EventDrop:
		return CueDrop
	case event.EventDragCancel:
		return CueCancel
	case event.EventDropRejected:
		return CueReject
	}
	return CueNone
}
