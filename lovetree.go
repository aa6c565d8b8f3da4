package lovetree

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque Color from 0-255 channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

var (
	// ColorBark is the fill used for branches and the footer line.
	ColorBark = RGB(35, 31, 32)
	// ColorSeed is the default seed color.
	ColorSeed = RGB(190, 26, 37)
	// ColorPaper is the flash color shown once the composite is frozen.
	ColorPaper = RGB(255, 255, 238)
)

// RGBA implements color.Color (premultiplied, 16-bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	a8 := clamp01(c.A)
	r = uint32(clamp01(c.R)*a8*0xffff + 0.5)
	g = uint32(clamp01(c.G)*a8*0xffff + 0.5)
	b = uint32(clamp01(c.B)*a8*0xffff + 0.5)
	a = uint32(a8*0xffff + 0.5)
	return
}

var _ color.Color = Color{}

// String formats the color as rgb(r, g, b), or rgba when not opaque.
func (c Color) String() string {
	r := int(math.Round(clamp01(c.R) * 255))
	g := int(math.Round(clamp01(c.G) * 255))
	b := int(math.Round(clamp01(c.B) * 255))
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor accepts "#rrggbb", "rgb(r, g, b)" or "rgba(r, g, b, a)".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Color{cf.R, cf.G, cf.B, 1}, nil
	case strings.HasPrefix(s, "rgba("):
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		c := RGB(uint8(clampInt(r, 0, 255)), uint8(clampInt(g, 0, 255)), uint8(clampInt(b, 0, 255)))
		c.A = clamp01(a)
		return c, nil
	case strings.HasPrefix(s, "rgb("):
		var r, g, b int
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return RGB(uint8(clampInt(r, 0, 255)), uint8(clampInt(g, 0, 255)), uint8(clampInt(b, 0, 255))), nil
	}
	return Color{}, fmt.Errorf("parse color %q: unsupported format", s)
}

// Vec2 is a 2D point or offset. Every operation returns a new value.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * n.
func (v Vec2) Scale(n float64) Vec2 { return Vec2{v.X * n, v.Y * n} }

// Div returns v / n. Division by zero yields non-finite components.
func (v Vec2) Div(n float64) Vec2 { return Vec2{v.X / n, v.Y / n} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// pixels converts r to whole pixels, truncating the origin toward zero the
// way canvas pixel APIs do.
func (r Rect) pixels() image.Rectangle {
	x, y := int(r.X), int(r.Y)
	return image.Rect(x, y, x+int(r.Width), y+int(r.Height))
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// randInt returns an integer in [lo, hi], both inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
