// Package wheel holds the immutable segment model of a prize wheel and
// the angular hit-test that maps a rotation to the segment under the
// fixed pointer.
package wheel

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

// PointerAngle is where the pointer marker sits in screen coordinates:
// 1.5π points "up" with 0 at east and angles increasing clockwise
// (screen Y grows downward).
const PointerAngle = 1.5 * math.Pi

// SegmentSpec is the input for one segment. Color is an optional hex
// string; anything that does not parse falls back to a color derived
// from the label.
type SegmentSpec struct {
	Label  string
	Weight uint
	Color  string
}

// Segment is one weighted wedge. Immutable after New.
type Segment struct {
	Label  string
	Weight uint
	Color  tcell.Color
}

// Wheel is an ordered sequence of segments laid out consecutively
// around the circle, each claiming an arc proportional to its weight.
type Wheel struct {
	segments    []Segment
	totalWeight uint
}

// New builds a wheel from specs, preserving order. Specs with an
// explicit parseable color keep it, the rest get a deterministic color
// derived from their label. A wheel whose weights sum to zero has no
// defined geometry and is rejected.
func New(specs []SegmentSpec) (*Wheel, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("wheel needs at least one segment")
	}

	w := &Wheel{segments: make([]Segment, 0, len(specs))}
	for _, s := range specs {
		color, ok := ParseHex(s.Color)
		if !ok {
			color = DeriveColor(s.Label)
		}
		w.segments = append(w.segments, Segment{
			Label:  s.Label,
			Weight: s.Weight,
			Color:  color,
		})
		w.totalWeight += s.Weight
	}

	if w.totalWeight == 0 {
		return nil, fmt.Errorf("total segment weight is zero")
	}
	return w, nil
}

// Segments returns the ordered segment list.
func (w *Wheel) Segments() []Segment {
	return w.segments
}

// Len returns the segment count.
func (w *Wheel) Len() int {
	return len(w.segments)
}

// TotalWeight returns the sum of all segment weights.
func (w *Wheel) TotalWeight() uint {
	return w.totalWeight
}

// ArcWidth returns the angular width of segment i in radians.
// Zero-weight segments yield zero-width (degenerate) arcs.
func (w *Wheel) ArcWidth(i int) float64 {
	return 2 * math.Pi * float64(w.segments[i].Weight) / float64(w.totalWeight)
}

// Arc returns the start angle and width of segment i in the wheel's
// local frame, where segment 0 starts at angle 0.
func (w *Wheel) Arc(i int) (start, width float64) {
	for j := 0; j < i; j++ {
		start += w.ArcWidth(j)
	}
	return start, w.ArcWidth(i)
}

// SegmentAtArc resolves a local-frame angle to the segment whose
// half-open interval [cursor, cursor+width) contains it. Rounding may
// leave the accumulated cursor short of 2π, so an unmatched angle
// falls back to the last segment, making the lookup total.
func (w *Wheel) SegmentAtArc(local float64) (int, Segment) {
	local = Mod2Pi(local)

	cursor := 0.0
	for i, seg := range w.segments {
		width := w.ArcWidth(i)
		if local >= cursor && local < cursor+width {
			return i, seg
		}
		cursor += width
	}

	last := len(w.segments) - 1
	return last, w.segments[last]
}

// SegmentAt resolves which segment sits under the fixed pointer for a
// wheel rotated by rotation radians. The rotation may be any real
// number; it is normalized here and only here.
func (w *Wheel) SegmentAt(rotation float64) (int, Segment) {
	return w.SegmentAtArc(PointerAngle - Mod2Pi(rotation))
}

// Mod2Pi maps any angle into [0, 2π) using the Euclidean remainder,
// so the result is non-negative for negative inputs too.
func Mod2Pi(angle float64) float64 {
	m := math.Mod(angle, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m
}
