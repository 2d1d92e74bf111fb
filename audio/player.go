// Package audio plays the wheel's tick cues through the system
// speaker. Tones are synthesized, never loaded from disk.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// A short linear attack keeps the 30ms ticks from clicking on
	// their leading edge.
	rampDuration = 2 * time.Millisecond
)

// Player owns the speaker. Opening the audio device is a startup
// precondition; NewPlayer fails if the backend cannot initialize.
// Playback itself is fire-and-forget.
type Player struct {
	mu          sync.Mutex
	master      float64
	enabled     bool
	initialized bool
}

// NewPlayer opens the speaker with a 100ms buffer.
func NewPlayer(cfg Options) (*Player, error) {
	p := &Player{
		master:  cfg.MasterVolume,
		enabled: cfg.Enabled,
	}
	if !cfg.Enabled {
		return p, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	p.initialized = true
	return p, nil
}

// Close shuts the speaker down.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// Enabled reports whether ticks will be audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.initialized
}

// PlayTick queues one sine tick at the given frequency and gain for
// the given duration and returns immediately; the speaker drains it
// on its own goroutine.
func (p *Player) PlayTick(freq, gain float64, duration time.Duration) {
	p.mu.Lock()
	enabled := p.enabled && p.initialized
	master := p.master
	p.mu.Unlock()

	if !enabled {
		return
	}

	tone := newTone(freq, gain*master)
	speaker.Play(beep.Take(sampleRate.N(duration), tone))
}

// tone streams an amplitude-scaled sine wave with a short attack
// ramp. It never ends on its own; beep.Take bounds it.
type tone struct {
	freq float64
	gain float64
	pos  int
}

func newTone(freq, gain float64) *tone {
	return &tone{freq: freq, gain: gain}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	ramp := sampleRate.N(rampDuration)

	for i := range samples {
		ts := float64(t.pos) / float64(sampleRate)
		v := t.gain * math.Sin(2*math.Pi*t.freq*ts)

		if ramp > 0 && t.pos < ramp {
			v *= float64(t.pos) / float64(ramp)
		}

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
