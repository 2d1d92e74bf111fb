package audio

import (
	"os"
	"strconv"
)

// Options controls tick playback.
type Options struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0, scales every tick's gain
}

// DefaultOptions returns audio enabled at full volume.
func DefaultOptions() Options {
	return Options{Enabled: true, MasterVolume: 1.0}
}

// LoadOptions reads overrides from environment variables.
// SPINWHEEL_AUDIO_ENABLED accepts strconv booleans;
// SPINWHEEL_MASTER_VOLUME is 0-100.
func LoadOptions() Options {
	opts := DefaultOptions()

	if enabled := os.Getenv("SPINWHEEL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			opts.Enabled = val
		}
	}

	if volume := os.Getenv("SPINWHEEL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			opts.MasterVolume = float64(val) / 100.0
			if opts.MasterVolume < 0 {
				opts.MasterVolume = 0
			}
			if opts.MasterVolume > 1 {
				opts.MasterVolume = 1
			}
		}
	}

	return opts
}
