package lovetree

import "math"

// HeartCurve is a fixed outline sampled from the parametric heart
//
//	x = 16 sin³t
//	y = 13 cos t - 5 cos 2t - 2 cos 3t - cos 4t
//
// It is immutable after construction and shared by the seed icon and every
// bloom. Spatial placement does not use it; see InsideHeart.
type HeartCurve struct {
	points []Vec2
	unit   []Vec2
}

// NewHeartCurve samples the outline once.
func NewHeartCurve() *HeartCurve {
	var points []Vec2
	for i := 10.0; i < 30; i += 0.2 {
		t := i / math.Pi
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		points = append(points, Vec2{x, y})
	}
	h := &HeartCurve{points: points}
	h.unit = h.outline(1)
	return h
}

// Len returns the number of sampled points.
func (h *HeartCurve) Len() int {
	return len(h.points)
}

// At returns the i-th point multiplied by scale. i must be in [0, Len()).
func (h *HeartCurve) At(i int, scale float64) Vec2 {
	return h.points[i].Scale(scale)
}

// Outline returns the closed fill path for the icon at the given scale,
// anchored at the origin with y flipped to screen orientation. The unit
// outline is shared and must not be modified.
func (h *HeartCurve) Outline(scale float64) []Vec2 {
	if scale == 1 {
		return h.unit
	}
	return h.outline(scale)
}

func (h *HeartCurve) outline(scale float64) []Vec2 {
	path := make([]Vec2, 0, len(h.points)+1)
	path = append(path, Vec2{})
	for i := range h.points {
		p := h.At(i, scale)
		path = append(path, Vec2{p.X, -p.Y})
	}
	return path
}
