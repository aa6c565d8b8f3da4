package lovetree

import (
	"math"
	"testing"
)

func TestBezierEndpoints(t *testing.T) {
	p1, p2, p3 := Vec2{535, 680}, Vec2{570, 250}, Vec2{500, 200}
	if got := Bezier(p1, p2, p3, 0); got != p1 {
		t.Errorf("Bezier(t=0) = %v, want %v", got, p1)
	}
	if got := Bezier(p1, p2, p3, 1); got != p3 {
		t.Errorf("Bezier(t=1) = %v, want %v", got, p3)
	}
}

func TestBezierMidpoint(t *testing.T) {
	got := Bezier(Vec2{0, 0}, Vec2{50, 100}, Vec2{100, 0}, 0.5)
	if math.Abs(got.X-50) > 1e-9 || math.Abs(got.Y-50) > 1e-9 {
		t.Errorf("Bezier(t=0.5) = %v, want (50, 50)", got)
	}
}

func TestInsideHeart(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 0, 0, true},
		{"upper lobe", 120, 100, true},
		{"far right", 500, 0, false},
		{"below tip", 0, -300, false},
		{"above cleft", 0, 260, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsideHeart(tt.x, tt.y, 240); got != tt.want {
				t.Errorf("InsideHeart(%v, %v, 240) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestInsideHeartMirrorSymmetric(t *testing.T) {
	for x := -300.0; x <= 300; x += 17 {
		for y := -300.0; y <= 300; y += 13 {
			if InsideHeart(x, y, 240) != InsideHeart(-x, y, 240) {
				t.Fatalf("asymmetric at (%v, %v)", x, y)
			}
		}
	}
}

func TestInsideHeartScalesWithRadius(t *testing.T) {
	if InsideHeart(150, 0, 100) {
		t.Error("(150, 0) should be outside radius 100")
	}
	if !InsideHeart(150, 0, 200) {
		t.Error("(150, 0) should be inside radius 200")
	}
}
