// Package audio plays short tones for drag lifecycle events
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dropchain/event"
)

const (
	sampleRate              = beep.SampleRate(44100)
	speakerBufferDurationMs = 100
	defaultGain             = 0.2
)

// Player renders cues through a single mixer on the system speaker
// All methods are safe without a working audio device; they become no-ops
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	gain        float64
}

// NewPlayer creates an uninitialized player
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		gain:  defaultGain,
	}
}

// Initialize opens the speaker and starts the mixer
// Repeated calls are no-ops
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues cue on the mixer
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := p.streamer(cue)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Observe plays the cue for ev; lets a Player be attached as a coordinator observer
func (p *Player) Observe(ev event.Event) {
	p.Play(CueFor(ev))
}

// streamer builds the bounded stream for cue, nil for CueNone and unknown cues
func (p *Player) streamer(cue Cue) beep.Streamer {
	if cue == CueNone || int(cue) >= len(cueSpecs) {
		return nil
	}
	spec := cueSpecs[cue]
	tone := NewToneGenerator(sampleRate, spec.freq, spec.harmonic, p.gain)
	return beep.Take(sampleRate.N(spec.duration), tone)
}
