package lovetree

const (
	seedMinScale   = 0.2
	seedDotRadius  = 5
	seedClearReach = 26
	seedExitMargin = 20
)

// Seed is the clickable heart icon that gates the animation. The heart and
// the dot under it start at the same point but move independently: the
// heart shrinks in place, then the dot falls off the bottom of the surface.
type Seed struct {
	surface Surface
	heart   seedHeart
	dot     seedDot
}

type seedHeart struct {
	point  Vec2
	color  Color
	scale  float64
	figure *HeartCurve
}

type seedDot struct {
	point  Vec2
	color  Color
	scale  float64
	radius float64
}

// NewSeed creates a seed anchored at point.
func NewSeed(s Surface, point Vec2, scale float64, c Color, figure *HeartCurve) *Seed {
	return &Seed{
		surface: s,
		heart:   seedHeart{point: point, color: c, scale: scale, figure: figure},
		dot:     seedDot{point: point, color: c, scale: scale, radius: seedDotRadius},
	}
}

// HeartPoint returns the heart icon's anchor.
func (sd *Seed) HeartPoint() Vec2 { return sd.heart.point }

// HeartScale returns the heart icon's current scale.
func (sd *Seed) HeartScale() float64 { return sd.heart.scale }

// DotPoint returns the falling dot's position.
func (sd *Seed) DotPoint() Vec2 { return sd.dot.point }

// Figure returns the shared heart outline.
func (sd *Seed) Figure() *HeartCurve { return sd.heart.figure }

// Draw paints the heart icon and its "click here" label.
func (sd *Seed) Draw() {
	sd.drawHeart()
	sd.drawLabel()
}

// Hit reports whether (x, y) lands on a fully opaque pixel. The test reads
// the surface, so it only matches what was last drawn there.
func (sd *Seed) Hit(x, y float64) bool {
	return sd.surface.AlphaAt(x, y) == 255
}

// CanScale reports whether the heart is still above its minimum scale.
func (sd *Seed) CanScale() bool {
	return sd.heart.scale > seedMinScale
}

// Scale redraws the dot and heart, then multiplies the heart's scale by f.
func (sd *Seed) Scale(f float64) {
	sd.clear()
	sd.drawDot()
	sd.drawHeart()
	sd.heart.scale *= f
}

// CanMove reports whether the dot is still on (or just below) the surface.
func (sd *Seed) CanMove() bool {
	return sd.dot.point.Y < float64(sd.surface.Height())+seedExitMargin
}

// Move redraws the dot at its current position, then offsets it by (dx, dy).
func (sd *Seed) Move(dx, dy float64) {
	sd.clear()
	sd.drawDot()
	sd.dot.point = sd.dot.point.Add(Vec2{dx, dy})
}

func (sd *Seed) drawHeart() {
	s := sd.surface
	s.Push()
	s.Translate(sd.heart.point.X, sd.heart.point.Y)
	s.FillPath(sd.heart.figure.Outline(sd.heart.scale), Style{Color: sd.heart.color})
	s.Pop()
}

func (sd *Seed) drawDot() {
	s := sd.surface
	s.Push()
	s.Translate(sd.dot.point.X, sd.dot.point.Y)
	s.Scale(sd.dot.scale, sd.dot.scale)
	s.FillCircle(Vec2{}, sd.dot.radius, Style{Color: sd.dot.color})
	s.Pop()
}

func (sd *Seed) drawLabel() {
	s := sd.surface
	style := Style{Color: sd.heart.color}
	s.Push()
	s.Translate(sd.heart.point.X, sd.heart.point.Y)
	s.Scale(sd.heart.scale, sd.heart.scale)
	s.StrokePath([]Vec2{{0, 0}, {15, 15}, {60, 15}}, style)
	s.Scale(0.75, 0.75)
	style.FontSize = 10
	style.Typeface = TypefaceSans
	s.FillText("click here", 23, 16, style)
	s.Pop()
}

// clear erases the square around the dot that covers both the dot and the
// heart drawn above it.
func (sd *Seed) clear() {
	h := seedClearReach * sd.dot.scale
	p := sd.dot.point
	sd.surface.ClearRect(Rect{X: p.X - h, Y: p.Y - h, Width: 4 * h, Height: 4 * h})
}
