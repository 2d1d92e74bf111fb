package audio

import (
	"math"
	"testing"
	"time"
)

// TestToneAmplitudeBounded verifies the synthesized tick never exceeds
// its gain; ticks are meant to be very quiet.
func TestToneAmplitudeBounded(t *testing.T) {
	gain := 0.001
	tone := newTone(600, gain)

	buf := make([][2]float64, 4096)
	n, ok := tone.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected full buffer, got n=%d ok=%v", n, ok)
	}

	for i, s := range buf {
		if math.Abs(s[0]) > gain || math.Abs(s[1]) > gain {
			t.Fatalf("Sample %d exceeds gain: %v", i, s)
		}
		if s[0] != s[1] {
			t.Fatalf("Expected mono signal duplicated to both channels at %d", i)
		}
	}
}

// TestToneAttackRamp verifies the tone fades in from silence instead
// of starting at full amplitude.
func TestToneAttackRamp(t *testing.T) {
	tone := newTone(600, 1.0)

	buf := make([][2]float64, sampleRate.N(rampDuration))
	tone.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("Expected first sample to be silent, got %v", buf[0][0])
	}

	// A raw 600Hz sine would reach ~0.9 amplitude within the first
	// 2ms; the ramp must keep early samples well below that.
	for i := 0; i < len(buf)/4; i++ {
		if math.Abs(buf[i][0]) > 0.3 {
			t.Fatalf("Expected ramped sample %d to stay small, got %v", i, buf[i][0])
		}
	}
}

func TestToneStreamsForever(t *testing.T) {
	tone := newTone(600, 0.5)
	buf := make([][2]float64, 512)
	for i := 0; i < 100; i++ {
		if n, ok := tone.Stream(buf); n != len(buf) || !ok {
			t.Fatalf("Expected tone to keep streaming, got n=%d ok=%v", n, ok)
		}
	}
	if tone.Err() != nil {
		t.Errorf("Expected nil Err, got %v", tone.Err())
	}
}

func TestDisabledPlayerSkipsSpeaker(t *testing.T) {
	p, err := NewPlayer(Options{Enabled: false, MasterVolume: 1})
	if err != nil {
		t.Fatalf("Expected disabled player to construct without audio device, got %v", err)
	}
	if p.Enabled() {
		t.Error("Expected disabled player to report Enabled=false")
	}
	// Must be a no-op, not a crash, without speaker init.
	p.PlayTick(600, 0.001, 30*time.Millisecond)
	p.Close()
}

func TestLoadOptionsEnvOverrides(t *testing.T) {
	t.Setenv("SPINWHEEL_AUDIO_ENABLED", "false")
	t.Setenv("SPINWHEEL_MASTER_VOLUME", "50")

	opts := LoadOptions()
	if opts.Enabled {
		t.Error("Expected audio disabled via env")
	}
	if opts.MasterVolume != 0.5 {
		t.Errorf("Expected master volume 0.5, got %v", opts.MasterVolume)
	}
}

func TestLoadOptionsIgnoresGarbage(t *testing.T) {
	t.Setenv("SPINWHEEL_AUDIO_ENABLED", "maybe")
	t.Setenv("SPINWHEEL_MASTER_VOLUME", "loud")

	opts := LoadOptions()
	if !opts.Enabled || opts.MasterVolume != 1.0 {
		t.Errorf("Expected defaults for unparsable env values, got %+v", opts)
	}
}

func TestLoadOptionsClampsVolume(t *testing.T) {
	t.Setenv("SPINWHEEL_MASTER_VOLUME", "250")
	if opts := LoadOptions(); opts.MasterVolume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %v", opts.MasterVolume)
	}

	t.Setenv("SPINWHEEL_MASTER_VOLUME", "-3")
	if opts := LoadOptions(); opts.MasterVolume != 0 {
		t.Errorf("Expected volume clamped to 0, got %v", opts.MasterVolume)
	}
}
