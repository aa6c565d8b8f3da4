package lovetree

// Footer is the ground line that widens from the center each time it is
// drawn until it reaches its full width.
type Footer struct {
	surface Surface
	point   Vec2
	width   float64
	height  float64
	speed   float64
	length  float64
}

// NewFooter anchors a footer centered on x at the bottom edge of s.
func NewFooter(s Surface, x, width, height, speed float64) *Footer {
	return &Footer{
		surface: s,
		point:   Vec2{x, float64(s.Height()) - height/2},
		width:   width,
		height:  height,
		speed:   speed,
	}
}

// Length returns the current drawn length.
func (f *Footer) Length() float64 { return f.length }

// Anchor returns the center of the line.
func (f *Footer) Anchor() Vec2 { return f.point }

// Draw strokes the line at its current length, then lengthens it by speed,
// never past width. Safe to call every frame.
func (f *Footer) Draw() {
	half := f.length / 2
	s := f.surface
	s.Push()
	s.Translate(f.point.X, f.point.Y)
	s.StrokePath([]Vec2{{0, 0}, {half, 0}, {-half, 0}}, Style{
		Color:     ColorBark,
		LineWidth: f.height,
		RoundCaps: true,
	})
	s.Pop()
	if f.length < f.width {
		f.length = min(f.length+f.speed, f.width)
	}
}
