package wheel

import (
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a 6-hex-digit color, with or without a leading '#',
// case insensitive. Any other length or a non-hex character reports
// false rather than an error: a bad spec just means "no explicit
// color" and the caller derives one instead.
func ParseHex(s string) (tcell.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return tcell.ColorDefault, false
	}

	var rgb [3]int32
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return tcell.ColorDefault, false
		}
		rgb[i] = int32(hi<<4 | lo)
	}
	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// DeriveColor produces a stable pseudo-random color for a label. The
// label hash seeds a private generator, so the same label maps to the
// same color on every run regardless of process-random state. Hue is
// drawn over the full circle while saturation and value stay in a
// narrow vivid band so derived segments remain readable.
func DeriveColor(label string) tcell.Color {
	h := fnv.New64a()
	h.Write([]byte(label))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	hue := rng.Float64() * 360.0
	sat := 0.7 + rng.Float64()*0.2
	val := 0.8 + rng.Float64()*0.15

	c := colorful.Hsv(hue, sat, val)
	return tcell.NewRGBColor(
		int32(c.R*255),
		int32(c.G*255),
		int32(c.B*255),
	)
}

// Luma returns the perceived brightness of an RGB color in [0,255].
func Luma(c tcell.Color) float64 {
	r, g, b := c.RGB()
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// IsBright reports whether text drawn over c should be dark.
func IsBright(c tcell.Color) bool {
	return Luma(c) > 128.0
}
