package spin

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/spinwheel/wheel"
)

// State is the wheel's lifecycle phase.
type State uint8

const (
	// StateIdle: not spinning. A winner from the previous spin may
	// still be on display.
	StateIdle State = iota
	// StateSpinning: the engine is advancing the rotation.
	StateSpinning
	// StateSettled: the spin completed this frame and the winner was
	// latched. Collapses back to Idle on the next Advance.
	StateSettled
)

// TickParams carries the randomized parameters of one tick cue. The
// audio collaborator decides how (or whether) to play it.
type TickParams struct {
	Freq     float64
	Gain     float64
	Duration time.Duration
}

// TickFunc receives a tick cue. It must not block the frame loop.
type TickFunc func(TickParams)

const (
	tickFreqMin = 550.0
	tickFreqMax = 650.0
	tickGainMin = 0.0005
	tickGainMax = 0.0015

	// TickDuration is the fixed length of one tick cue.
	TickDuration = 30 * time.Millisecond
)

// Controller drives one wheel: it forwards spin requests to the
// engine, detects segment-boundary crossings to fire ticks, and
// latches the winning label when the spin settles. All methods run on
// the frame loop; nothing here is safe for concurrent use.
type Controller struct {
	wheel  *wheel.Wheel
	engine *Engine
	rng    *rand.Rand
	tick   TickFunc

	state     State
	lastIndex int // -1 when no segment recorded this spin

	winner    string
	hasWinner bool
}

// NewController wires a wheel to a fresh engine. tick may be nil for a
// silent controller (tests, muted runs).
func NewController(w *wheel.Wheel, rng *rand.Rand, duration time.Duration, tick TickFunc) *Controller {
	c := &Controller{
		wheel:     w,
		engine:    NewEngine(rng, duration),
		rng:       rng,
		tick:      tick,
		state:     StateIdle,
		lastIndex: -1,
	}
	// Start at a random resting angle so the first spin's outcome is
	// not pinned to the segment order.
	c.engine.current = rng.Float64() * 2 * math.Pi
	return c
}

// Wheel returns the wheel this controller drives.
func (c *Controller) Wheel() *wheel.Wheel {
	return c.wheel
}

// RequestSpin starts a spin unless one is already running, in which
// case it is ignored outright: no target change, no tracker reset.
// Starting a spin clears the displayed winner.
func (c *Controller) RequestSpin() bool {
	if !c.engine.Start() {
		return false
	}
	c.state = StateSpinning
	c.winner = ""
	c.hasWinner = false
	c.lastIndex = -1
	return true
}

// Advance runs one frame: advances the rotation, re-resolves the
// segment under the pointer, fires a tick on each boundary crossing,
// and latches the winner when the engine reports completion. The very
// first segment recorded in a spin never ticks; there is no prior
// segment to have crossed from.
func (c *Controller) Advance(dt time.Duration) {
	if c.state == StateSettled {
		c.state = StateIdle
	}
	if c.state != StateSpinning {
		return
	}

	rotation, done := c.engine.Advance(dt)
	index, seg := c.wheel.SegmentAt(rotation)

	if c.lastIndex < 0 {
		c.lastIndex = index
	} else if index != c.lastIndex {
		c.lastIndex = index
		c.emitTick()
	}

	if done {
		c.winner = seg.Label
		c.hasWinner = true
		c.state = StateSettled
	}
}

func (c *Controller) emitTick() {
	if c.tick == nil {
		return
	}
	c.tick(TickParams{
		Freq:     tickFreqMin + c.rng.Float64()*(tickFreqMax-tickFreqMin),
		Gain:     tickGainMin + c.rng.Float64()*(tickGainMax-tickGainMin),
		Duration: TickDuration,
	})
}

// Rotation returns the current accumulated rotation.
func (c *Controller) Rotation() float64 {
	return c.engine.Rotation()
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	return c.state
}

// Spinning reports whether a spin is running.
func (c *Controller) Spinning() bool {
	return c.state == StateSpinning
}

// Current returns the segment under the pointer right now.
func (c *Controller) Current() (int, wheel.Segment) {
	return c.wheel.SegmentAt(c.engine.Rotation())
}

// Winner returns the latched winning label of the last completed
// spin, if any.
func (c *Controller) Winner() (string, bool) {
	return c.winner, c.hasWinner
}
