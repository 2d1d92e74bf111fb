// Package config loads the wheel's YAML configuration. Every failure
// mode falls back to defaults: a missing or unparsable file yields the
// all-defaults config, an absent field its documented default, and an
// unusable segment list the default five numbered segments. Nothing
// here is ever fatal.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SegmentSpec is one configured segment. Color is an optional hex
// string ("#RRGGBB" or "RRGGBB").
type SegmentSpec struct {
	Label  string `yaml:"label"`
	Weight uint   `yaml:"weight"`
	Color  string `yaml:"color"`
}

// Config mirrors the YAML document. Optional fields are pointers so
// "absent" is distinguishable from an explicit zero.
type Config struct {
	SpinDurationMs     float64       `yaml:"spin_duration_ms"`
	CenterColor        *string       `yaml:"center_color"`
	CenterRadiusRatio  *float64      `yaml:"center_radius_ratio"`
	WinnerMessage      *string       `yaml:"winner_message"`
	WinnerFontSize     *float64      `yaml:"winner_font_size"`
	LabelFontSize      *float64      `yaml:"label_font_size"`
	ShowSegmentBorders *bool         `yaml:"show_segments_borders"`
	Segments           []SegmentSpec `yaml:"segments"`
}

// Resolved is the config after defaulting, with concrete values only.
type Resolved struct {
	SpinDuration       time.Duration
	CenterColor        string
	CenterRadiusRatio  float64
	WinnerMessage      string
	WinnerFontSize     float64
	LabelFontSize      float64
	ShowSegmentBorders bool
	Segments           []SegmentSpec
}

// Default returns the stock configuration: a five-segment equal wheel
// with numbered labels and a five second spin.
func Default() Config {
	segments := make([]SegmentSpec, 0, 5)
	for i := 1; i <= 5; i++ {
		segments = append(segments, SegmentSpec{Label: fmt.Sprintf("%d", i), Weight: 1})
	}
	return Config{
		SpinDurationMs:     5000,
		CenterColor:        ptr("#202020"),
		CenterRadiusRatio:  ptr(0.25),
		WinnerMessage:      ptr("Winner:\n{label}"),
		WinnerFontSize:     ptr(40.0),
		LabelFontSize:      ptr(20.0),
		ShowSegmentBorders: ptr(true),
		Segments:           segments,
	}
}

// Load reads a config file. An empty path, a read failure, or a YAML
// error all produce the default config; per spec the wheel always
// starts.
func Load(path string) Config {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config: read %s: %v (using defaults)", path, err)
		return Default()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("config: parse %s: %v (using defaults)", path, err)
		return Default()
	}
	return cfg
}

// Resolve applies per-field defaults and range clamps.
func (c Config) Resolve() Resolved {
	def := Default()

	r := Resolved{
		SpinDuration:       durationMs(c.SpinDurationMs, def.SpinDurationMs),
		CenterColor:        orString(c.CenterColor, *def.CenterColor),
		CenterRadiusRatio:  orFloat(c.CenterRadiusRatio, *def.CenterRadiusRatio),
		WinnerMessage:      orString(c.WinnerMessage, *def.WinnerMessage),
		WinnerFontSize:     orFloat(c.WinnerFontSize, *def.WinnerFontSize),
		LabelFontSize:      orFloat(c.LabelFontSize, *def.LabelFontSize),
		ShowSegmentBorders: orBool(c.ShowSegmentBorders, *def.ShowSegmentBorders),
		Segments:           c.Segments,
	}

	if r.CenterRadiusRatio < 0 {
		r.CenterRadiusRatio = 0
	} else if r.CenterRadiusRatio > 0.8 {
		r.CenterRadiusRatio = 0.8
	}

	if len(r.Segments) == 0 || totalWeight(r.Segments) == 0 {
		r.Segments = def.Segments
	}
	return r
}

// RenderWinner substitutes the winning label into the winner template.
// The label goes in verbatim; no escaping.
func (r Resolved) RenderWinner(label string) string {
	return strings.ReplaceAll(r.WinnerMessage, "{label}", label)
}

func totalWeight(segs []SegmentSpec) uint {
	var total uint
	for _, s := range segs {
		total += s.Weight
	}
	return total
}

func durationMs(ms, fallback float64) time.Duration {
	if ms <= 0 {
		ms = fallback
	}
	return time.Duration(ms * float64(time.Millisecond))
}

func orString(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func orFloat(p *float64, fallback float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}

func orBool(p *bool, fallback bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}

func ptr[T any](v T) *T {
	return &v
}
