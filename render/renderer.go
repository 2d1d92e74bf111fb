// Package render draws the wheel onto a tcell screen: weighted wedges
// in segment colors, a center disc, the pointer marker, per-segment
// labels, and the winner overlay.
package render

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spinwheel/wheel"
)

// Terminal cells are roughly twice as tall as wide; vertical distances
// are scaled by this factor so the wheel comes out round.
const cellAspect = 2.0

// Cells this close to a wedge boundary (in column units) are drawn as
// border when borders are enabled.
const borderThickness = 0.75

// Options is the fixed visual configuration of a renderer.
type Options struct {
	CenterColor       tcell.Color
	CenterRadiusRatio float64
	ShowBorders       bool
	ShowLabels        bool
	ShowWinner        bool
}

// Layout is the wheel's placement on screen, in cells. Radius is in
// column units; rows span half as much.
type Layout struct {
	CX, CY int
	Radius float64
}

// Contains reports whether a cell lies inside the wheel's disc.
func (l Layout) Contains(x, y int) bool {
	dx := float64(x - l.CX)
	dy := float64(y-l.CY) * cellAspect
	return math.Hypot(dx, dy) <= l.Radius
}

// Renderer draws one wheel per frame.
type Renderer struct {
	screen tcell.Screen
	opts   Options
	layout Layout
}

// New creates a renderer for the given screen.
func New(screen tcell.Screen, opts Options) *Renderer {
	return &Renderer{screen: screen, opts: opts}
}

// Layout returns the placement computed by the last Draw.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// FitLayout centers the wheel and sizes it to the screen, reserving a
// row above for the pointer marker.
func FitLayout(width, height int) Layout {
	cx := width / 2
	cy := height / 2
	radius := math.Min(float64(width)/2-1, (float64(height)/2-1.5)*cellAspect)
	if radius < 1 {
		radius = 1
	}
	return Layout{CX: cx, CY: cy, Radius: radius}
}

// Draw renders one frame: the wheel at its current rotation, the
// pointer tinted with the segment it points into, and the winner
// overlay when a winner is set. winner is the already-templated text;
// pass "" while no winner is on display.
func (r *Renderer) Draw(w *wheel.Wheel, rotation float64, winner string) {
	r.screen.Clear()
	width, height := r.screen.Size()
	r.layout = FitLayout(width, height)

	r.drawDisc(w, rotation)
	if r.opts.ShowLabels {
		r.drawLabels(w, rotation)
	}
	r.drawPointer(w, rotation)
	if r.opts.ShowWinner && winner != "" {
		r.drawWinner(winner)
	}

	r.screen.Show()
}

// drawDisc fills every cell inside the wheel with its segment color,
// the center disc, or the border shade.
func (r *Renderer) drawDisc(w *wheel.Wheel, rotation float64) {
	l := r.layout
	inner := l.Radius * r.opts.CenterRadiusRatio

	// Cumulative wedge boundaries in the wheel's local frame.
	bounds := make([]float64, w.Len()+1)
	for i := 0; i < w.Len(); i++ {
		bounds[i+1] = bounds[i] + w.ArcWidth(i)
	}

	minX := l.CX - int(l.Radius) - 1
	maxX := l.CX + int(l.Radius) + 1
	minY := l.CY - int(l.Radius/cellAspect) - 1
	maxY := l.CY + int(l.Radius/cellAspect) + 1

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x - l.CX)
			dy := float64(y-l.CY) * cellAspect
			dist := math.Hypot(dx, dy)
			if dist > l.Radius {
				continue
			}

			if dist <= inner {
				r.setCell(x, y, r.opts.CenterColor)
				continue
			}

			local := wheel.Mod2Pi(math.Atan2(dy, dx) - rotation)
			idx, seg := w.SegmentAtArc(local)

			if r.opts.ShowBorders && dist > 0 && nearBoundary(local, bounds[idx], bounds[idx+1], dist) {
				r.setCell(x, y, tcell.ColorBlack)
				continue
			}
			r.setCell(x, y, seg.Color)
		}
	}
}

// nearBoundary reports whether a point at the given arc position and
// radius sits within the border thickness of either wedge edge.
func nearBoundary(local, start, end, dist float64) bool {
	margin := borderThickness / dist
	return local-start < margin || end-local < margin
}

func (r *Renderer) setCell(x, y int, bg tcell.Color) {
	r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
}

// drawLabels places each non-degenerate segment's label at mid-arc,
// mid-radius, dark or light per the wedge's brightness.
func (r *Renderer) drawLabels(w *wheel.Wheel, rotation float64) {
	l := r.layout
	inner := l.Radius * r.opts.CenterRadiusRatio
	textRadius := inner + (l.Radius-inner)*0.5

	start := 0.0
	for i, seg := range w.Segments() {
		width := w.ArcWidth(i)
		if width == 0 {
			continue
		}
		mid := rotation + start + width/2
		start += width

		x := l.CX + int(textRadius*math.Cos(mid))
		y := l.CY + int(textRadius*math.Sin(mid)/cellAspect)

		fg := tcell.ColorWhite
		if wheel.IsBright(seg.Color) {
			fg = tcell.ColorBlack
		}
		style := tcell.StyleDefault.Foreground(fg).Background(seg.Color)
		r.drawText(x-len(seg.Label)/2, y, seg.Label, style)
	}
}

// drawPointer draws the fixed marker one row above the wheel, tinted
// with the color of the segment currently under it.
func (r *Renderer) drawPointer(w *wheel.Wheel, rotation float64) {
	_, seg := w.SegmentAt(rotation)
	l := r.layout

	y := l.CY - int(l.Radius/cellAspect) - 1
	style := tcell.StyleDefault.Foreground(seg.Color)
	r.screen.SetContent(l.CX, y, '▼', nil, style)
}

// drawWinner centers the templated winner message over the wheel.
func (r *Renderer) drawWinner(text string) {
	width, height := r.screen.Size()
	lines := strings.Split(text, "\n")
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorBlack).
		Bold(true)

	top := height/2 - len(lines)/2
	for i, line := range lines {
		r.drawText(width/2-len(line)/2, top+i, line, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
