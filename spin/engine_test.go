package spin

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

// TestStartMinimumTravel verifies every spin target sits at least ten
// full turns past the start.
func TestStartMinimumTravel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		e := NewEngine(rng, 5*time.Second)
		e.current = (rng.Float64() - 0.5) * 1000

		if !e.Start() {
			t.Fatal("Expected Start to succeed on idle engine")
		}
		travel := e.Target() - e.start
		if travel < 10*2*math.Pi {
			t.Errorf("Expected travel >= 20π, got %v", travel)
		}
		if travel >= 15*2*math.Pi {
			t.Errorf("Expected travel < 30π, got %v", travel)
		}
	}
}

// TestAdvanceLandsExactlyOnTarget verifies the easing boundary: once
// elapsed reaches the duration the rotation equals the target exactly
// and completion is reported exactly once.
func TestAdvanceLandsExactlyOnTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	e := NewEngine(rng, 200*time.Millisecond)
	e.Start()
	target := e.Target()

	var completions int
	for i := 0; i < 100; i++ {
		_, done := e.Advance(50 * time.Millisecond)
		if done {
			completions++
		}
	}

	if completions != 1 {
		t.Errorf("Expected exactly one completion, got %d", completions)
	}
	if e.Rotation() != target {
		t.Errorf("Expected rotation to equal target %v exactly, got %v", target, e.Rotation())
	}
	if e.Spinning() {
		t.Error("Expected engine to be idle after completion")
	}
}

// TestAdvanceClampsFrameDelta verifies a huge frame delta (window
// focus gap) is treated as 100ms, not as the real elapsed time.
func TestAdvanceClampsFrameDelta(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := NewEngine(rng, 5*time.Second)
	e.Start()

	_, done := e.Advance(time.Hour)
	if done {
		t.Error("Expected clamped delta to leave the spin running")
	}
	if e.elapsed != maxFrameDelta {
		t.Errorf("Expected elapsed %v, got %v", maxFrameDelta, e.elapsed)
	}
}

func TestAdvanceWhileIdleIsNoOp(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	e := NewEngine(rng, time.Second)
	e.current = 7.5

	rot, done := e.Advance(time.Second)
	if rot != 7.5 || done {
		t.Errorf("Expected idle advance to return (7.5,false), got (%v,%v)", rot, done)
	}
}

// TestRotationAccumulatesAcrossSpins verifies a second spin starts
// from the previous resting angle; rotation is never reset.
func TestRotationAccumulatesAcrossSpins(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	e := NewEngine(rng, 50*time.Millisecond)

	e.Start()
	for e.Spinning() {
		e.Advance(10 * time.Millisecond)
	}
	first := e.Rotation()

	e.Start()
	if e.start != first {
		t.Errorf("Expected second spin to start at %v, got %v", first, e.start)
	}
	for e.Spinning() {
		e.Advance(10 * time.Millisecond)
	}
	if e.Rotation() <= first {
		t.Errorf("Expected rotation to keep growing, got %v after %v", e.Rotation(), first)
	}
}

// TestEaseOutMonotonic verifies rotation never moves backwards during
// a spin.
func TestEaseOutMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	e := NewEngine(rng, time.Second)
	e.Start()

	prev := e.Rotation()
	for e.Spinning() {
		rot, _ := e.Advance(7 * time.Millisecond)
		if rot < prev {
			t.Fatalf("Expected monotonic rotation, went from %v to %v", prev, rot)
		}
		prev = rot
	}
}

func TestStartWhileSpinningFails(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := NewEngine(rng, time.Second)

	if !e.Start() {
		t.Fatal("Expected first Start to succeed")
	}
	target := e.Target()
	if e.Start() {
		t.Error("Expected Start to fail while spinning")
	}
	if e.Target() != target {
		t.Errorf("Expected target unchanged, got %v instead of %v", e.Target(), target)
	}
}
