package lovetree

// Bezier evaluates the quadratic bezier through control points p1, p2, p3
// at parameter t.
func Bezier(p1, p2, p3 Vec2, t float64) Vec2 {
	u := 1 - t
	return p1.Scale(u * u).Add(p2.Scale(2 * t * u)).Add(p3.Scale(t * t))
}

// InsideHeart reports whether (x, y) lies strictly inside the implicit heart
//
//	(x² + y² - 1)³ - x²y³ < 0
//
// after normalizing both coordinates by r. The curve is mirror-symmetric in x
// and y grows upward, so callers flip screen coordinates before testing.
func InsideHeart(x, y, r float64) bool {
	nx, ny := x/r, y/r
	q := nx*nx + ny*ny - 1
	return q*q*q-nx*nx*ny*ny*ny < 0
}
