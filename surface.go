package lovetree

import (
	"image"
	"io"
)

// Surface is the fixed-size raster every engine component draws onto.
// Transform calls apply to subsequent path operations until the matching
// Pop. Pixel operations (ClearRect, Capture, Put, AlphaAt) ignore the
// transform and address device pixels directly.
type Surface interface {
	Width() int
	Height() int

	Push()
	Pop()
	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(angle float64)

	FillPath(path []Vec2, style Style)
	FillCircle(center Vec2, radius float64, style Style)
	StrokePath(path []Vec2, style Style)
	FillText(s string, x, y float64, style Style)

	ClearRect(r Rect)
	Capture(r Rect) *image.RGBA
	Put(block *image.RGBA, x, y float64)
	AlphaAt(x, y float64) uint8

	Image() *image.RGBA
	EncodePNG(w io.Writer) error
}

// Typeface selects the font used by FillText.
type Typeface uint8

const (
	TypefaceMono Typeface = iota // Go Mono
	TypefaceSans                 // Go Regular
)

// Style carries per-draw paint state. Zero values default to an opaque fill,
// a one pixel line and 12pt mono text.
type Style struct {
	Color Color
	// Alpha multiplies Color.A. Zero means 1.
	Alpha float64
	// LineWidth is the stroke width in user units. Zero means 1.
	LineWidth float64
	// RoundCaps selects round caps and joins for strokes.
	RoundCaps bool
	// ShadowBlur draws a soft halo of ShadowColor this many pixels wide
	// beneath circle fills.
	ShadowBlur  float64
	ShadowColor Color
	// FontSize in points. Zero means 12.
	FontSize float64
	Typeface Typeface
}

func (s Style) alpha() float64 {
	if s.Alpha == 0 {
		return 1
	}
	return s.Alpha
}
