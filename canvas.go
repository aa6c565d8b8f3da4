package lovetree

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is a CPU raster Surface backed by a gg context drawing straight
// into an *image.RGBA. Pixel reads see every completed draw immediately.
type Canvas struct {
	img   *image.RGBA
	dc    *gg.Context
	faces map[faceKey]font.Face
}

type faceKey struct {
	typeface Typeface
	size     float64
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Canvas{
		img:   img,
		dc:    gg.NewContextForRGBA(img),
		faces: make(map[faceKey]font.Face),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Push saves the current transform.
func (c *Canvas) Push() { c.dc.Push() }

// Pop restores the transform saved by the matching Push.
func (c *Canvas) Pop() { c.dc.Pop() }

// Translate moves the origin by (x, y).
func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

// Scale scales user space by (sx, sy).
func (c *Canvas) Scale(sx, sy float64) { c.dc.Scale(sx, sy) }

// Rotate rotates user space by angle radians.
func (c *Canvas) Rotate(angle float64) { c.dc.Rotate(angle) }

func (c *Canvas) setPaint(col Color, alpha float64) {
	c.dc.SetRGBA(col.R, col.G, col.B, clamp01(col.A*alpha))
}

func (c *Canvas) tracePath(path []Vec2) {
	c.dc.ClearPath()
	for i, p := range path {
		if i == 0 {
			c.dc.MoveTo(p.X, p.Y)
			continue
		}
		c.dc.LineTo(p.X, p.Y)
	}
}

// FillPath fills the closed polygon through path.
func (c *Canvas) FillPath(path []Vec2, style Style) {
	if len(path) < 3 || !finitePath(path) {
		return
	}
	c.tracePath(path)
	c.dc.ClosePath()
	c.setPaint(style.Color, style.alpha())
	c.dc.Fill()
}

// FillCircle fills a disc, with an optional halo underneath.
// Non-finite geometry draws nothing.
func (c *Canvas) FillCircle(center Vec2, radius float64, style Style) {
	if !finite(center.X) || !finite(center.Y) || !finite(radius) {
		return
	}
	if style.ShadowBlur > 0 {
		c.dc.ClearPath()
		c.dc.DrawCircle(center.X, center.Y, radius+style.ShadowBlur)
		c.setPaint(style.ShadowColor, style.alpha()*0.35)
		c.dc.Fill()
	}
	c.dc.ClearPath()
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.setPaint(style.Color, style.alpha())
	c.dc.Fill()
}

// StrokePath strokes the open polyline through path.
func (c *Canvas) StrokePath(path []Vec2, style Style) {
	if len(path) < 2 || !finitePath(path) {
		return
	}
	width := style.LineWidth
	if width == 0 {
		width = 1
	}
	c.dc.SetLineWidth(width)
	if style.RoundCaps {
		c.dc.SetLineCapRound()
		c.dc.SetLineJoinRound()
	} else {
		c.dc.SetLineCapButt()
		c.dc.SetLineJoinBevel()
	}
	c.tracePath(path)
	c.setPaint(style.Color, style.alpha())
	c.dc.Stroke()
}

// FillText draws s with its baseline starting at (x, y). Text is skipped
// silently when the embedded font cannot be parsed.
func (c *Canvas) FillText(s string, x, y float64, style Style) {
	size := style.FontSize
	if size == 0 {
		size = 12
	}
	face, err := c.face(style.Typeface, size)
	if err != nil {
		return
	}
	c.dc.SetFontFace(face)
	c.setPaint(style.Color, style.alpha())
	c.dc.DrawString(s, x, y)
}

func (c *Canvas) face(tf Typeface, size float64) (font.Face, error) {
	key := faceKey{tf, size}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	f, err := loadFace(tf, size)
	if err != nil {
		return nil, err
	}
	c.faces[key] = f
	return f, nil
}

// ClearRect sets every pixel touched by r to transparent black.
func (c *Canvas) ClearRect(r Rect) {
	px := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	).Intersect(c.img.Rect)
	draw.Draw(c.img, px, image.Transparent, image.Point{}, draw.Src)
}

// Capture copies the pixels under r into a new block. Areas outside the
// canvas come back transparent.
func (c *Canvas) Capture(r Rect) *image.RGBA {
	px := r.pixels()
	block := image.NewRGBA(image.Rect(0, 0, px.Dx(), px.Dy()))
	draw.Draw(block, block.Bounds(), c.img, px.Min, draw.Src)
	return block
}

// Put writes block at (x, y), replacing the pixels underneath.
func (c *Canvas) Put(block *image.RGBA, x, y float64) {
	at := image.Pt(int(x), int(y))
	r := image.Rectangle{Min: at, Max: at.Add(block.Rect.Size())}
	draw.Draw(c.img, r, block, block.Rect.Min, draw.Src)
}

// AlphaAt returns the alpha of the pixel containing (x, y), or 0 outside.
func (c *Canvas) AlphaAt(x, y float64) uint8 {
	p := image.Pt(int(math.Floor(x)), int(math.Floor(y)))
	if !p.In(c.img.Rect) {
		return 0
	}
	return c.img.RGBAAt(p.X, p.Y).A
}

// Image returns the backing image. It aliases the canvas.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode canvas: %w", err)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finitePath(path []Vec2) bool {
	for _, p := range path {
		if !finite(p.X) || !finite(p.Y) {
			return false
		}
	}
	return true
}

var (
	monoFont = sync.OnceValues(func() (*truetype.Font, error) { return truetype.Parse(gomono.TTF) })
	sansFont = sync.OnceValues(func() (*truetype.Font, error) { return truetype.Parse(goregular.TTF) })
)

// loadFace builds a font face from the embedded Go fonts.
func loadFace(tf Typeface, size float64) (font.Face, error) {
	parse := monoFont
	if tf == TypefaceSans {
		parse = sansFont
	}
	f, err := parse()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
