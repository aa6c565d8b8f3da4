package lovetree

const (
	bloomStartScale = 0.1
	bloomScaleStep  = 0.1
	driftSpin       = 0.05
	driftMargin     = 20
)

// BloomMode selects which of the two lifecycles a Bloom follows. A bloom
// never changes mode.
type BloomMode uint8

const (
	// BloomFlowering grows in place from a small scale and retires once its
	// scale passes 1.
	BloomFlowering BloomMode = iota
	// BloomDrifting eases toward a target while spinning and retires once it
	// leaves the visible area.
	BloomDrifting
)

func (m BloomMode) String() string {
	switch m {
	case BloomFlowering:
		return "flowering"
	case BloomDrifting:
		return "drifting"
	default:
		return "unknown"
	}
}

// Bloom is a single heart-shaped petal.
type Bloom struct {
	mode   BloomMode
	pos    Vec2
	color  Color
	alpha  float64
	angle  float64
	scale  float64
	figure *HeartCurve

	// Drifting only.
	target Vec2
	speed  float64
}

// NewFlowerBloom creates a bloom on the flowering track at its starting scale.
func NewFlowerBloom(pos Vec2, figure *HeartCurve, c Color, alpha, angle float64) *Bloom {
	return &Bloom{
		mode:   BloomFlowering,
		pos:    pos,
		color:  c,
		alpha:  alpha,
		angle:  angle,
		scale:  bloomStartScale,
		figure: figure,
	}
}

// NewDriftBloom creates a full-size bloom on the drifting track. speed is the
// number of remaining easing steps toward target.
func NewDriftBloom(pos Vec2, figure *HeartCurve, c Color, angle float64, target Vec2, speed float64) *Bloom {
	return &Bloom{
		mode:   BloomDrifting,
		pos:    pos,
		color:  c,
		alpha:  1,
		angle:  angle,
		scale:  1,
		figure: figure,
		target: target,
		speed:  speed,
	}
}

// Mode returns the bloom's lifecycle track.
func (b *Bloom) Mode() BloomMode { return b.mode }

// Position returns the bloom's current anchor.
func (b *Bloom) Position() Vec2 { return b.pos }

// Scale returns the current scale factor.
func (b *Bloom) Scale() float64 { return b.scale }

// Angle returns the current rotation in radians.
func (b *Bloom) Angle() float64 { return b.angle }

// Alpha returns the bloom's opacity.
func (b *Bloom) Alpha() float64 { return b.alpha }

// Color returns the bloom's fill color.
func (b *Bloom) Color() Color { return b.color }

// Target returns the drift target and remaining easing steps. Both are zero
// for flowering blooms.
func (b *Bloom) Target() (Vec2, float64) { return b.target, b.speed }

// Draw paints the bloom at its current transform.
func (b *Bloom) Draw(s Surface) {
	s.Push()
	s.Translate(b.pos.X, b.pos.Y)
	s.Scale(b.scale, b.scale)
	s.Rotate(b.angle)
	s.FillPath(b.figure.Outline(1), Style{Color: b.color, Alpha: b.alpha})
	s.Pop()
}

// Flower draws the bloom and grows it one step. It reports whether the bloom
// has retired.
func (b *Bloom) Flower(s Surface) bool {
	b.Draw(s)
	b.scale += bloomScaleStep
	return b.scale > 1
}

// Drift retires the bloom if it has left the area above height, otherwise
// draws it and eases it one step toward its target. It reports whether the
// bloom has retired.
func (b *Bloom) Drift(s Surface, height float64) bool {
	if b.pos.X < -driftMargin || b.pos.Y > height+driftMargin {
		return true
	}
	if b.speed == 0 {
		return false
	}
	b.Draw(s)
	b.pos = b.target.Sub(b.pos).Div(b.speed).Add(b.pos)
	b.angle += driftSpin
	b.speed--
	return false
}

// Advance runs one tick of whichever lifecycle the bloom follows.
func (b *Bloom) Advance(s Surface, height float64) bool {
	switch b.mode {
	case BloomFlowering:
		return b.Flower(s)
	case BloomDrifting:
		return b.Drift(s, height)
	default:
		return true
	}
}
