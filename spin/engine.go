// Package spin animates a wheel: it owns rotation state, picks
// randomized spin targets, eases the rotation toward them over time,
// and runs the Idle/Spinning/Settled lifecycle that latches a winner
// and fires segment-crossing ticks.
package spin

import (
	"math"
	"math/rand"
	"time"
)

const (
	// Frame deltas are clamped so a frame-rate hitch or a window
	// losing focus cannot teleport the animation forward.
	maxFrameDelta = 100 * time.Millisecond

	minExtraTurns   = 10.0
	extraTurnsRange = 4.0
)

// Engine advances a single wheel's rotation. The rotation accumulates
// across spins and is never normalized here; only the hit-test folds
// it into [0, 2π). float64 headroom covers any realistic session.
type Engine struct {
	rng *rand.Rand

	current  float64
	start    float64
	target   float64
	elapsed  time.Duration
	duration time.Duration
	spinning bool
}

// NewEngine creates an engine with the given spin duration. The
// generator is owned by the caller and must not be shared across
// goroutines; the engine runs on the frame loop only.
func NewEngine(rng *rand.Rand, duration time.Duration) *Engine {
	return &Engine{rng: rng, duration: duration}
}

// Start begins a new spin from the current resting angle. The target
// always sits at least 10 full turns past the start, plus a random
// offset in [0, 2π), so the landing segment cannot be read off the
// start angle. Returns false without touching state if a spin is
// already running.
func (e *Engine) Start() bool {
	if e.spinning {
		return false
	}

	extraTurns := minExtraTurns + e.rng.Float64()*extraTurnsRange
	offset := e.rng.Float64() * 2 * math.Pi

	e.start = e.current
	e.target = e.current + extraTurns*2*math.Pi + offset
	e.elapsed = 0
	e.spinning = true
	return true
}

// Advance moves the animation forward by dt and returns the new
// rotation. done is true exactly once, on the frame the spin
// completes; at that moment the rotation equals the target exactly.
// Advancing while idle is a no-op.
func (e *Engine) Advance(dt time.Duration) (rotation float64, done bool) {
	if !e.spinning {
		return e.current, false
	}

	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	e.elapsed += dt

	t := float64(e.elapsed) / float64(e.duration)
	if t >= 1 {
		t = 1
	}

	// Quintic ease-out: fast launch, long smooth deceleration.
	eased := 1 - math.Pow(1-t, 5)
	e.current = e.start + eased*(e.target-e.start)

	if t >= 1 {
		e.current = e.target
		e.spinning = false
		return e.current, true
	}
	return e.current, false
}

// Rotation returns the current accumulated rotation in radians.
func (e *Engine) Rotation() float64 {
	return e.current
}

// Spinning reports whether a spin is in progress.
func (e *Engine) Spinning() bool {
	return e.spinning
}

// Target returns the rotation the running (or last) spin lands on.
func (e *Engine) Target() float64 {
	return e.target
}
