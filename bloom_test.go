package lovetree

import (
	"math"
	"testing"
)

func TestBloomFlowerRetiresAfterTenSteps(t *testing.T) {
	s := NewCanvas(100, 100)
	b := NewFlowerBloom(Vec2{50, 50}, NewHeartCurve(), ColorSeed, 1, 0)
	for k := 1; k <= 9; k++ {
		if b.Flower(s) {
			t.Fatalf("retired after %d steps", k)
		}
		want := 0.1 + 0.1*float64(k)
		if d := b.Scale() - want; d > 1e-9 || d < -1e-9 {
			t.Errorf("step %d: scale = %v, want %v", k, b.Scale(), want)
		}
	}
	if !b.Flower(s) {
		t.Error("bloom should retire on the tenth step")
	}
}

func TestBloomDraws(t *testing.T) {
	s := NewCanvas(100, 100)
	b := NewDriftBloom(Vec2{50, 50}, NewHeartCurve(), ColorSeed, 0, Vec2{50, 50}, 10)
	b.Draw(s)
	if s.AlphaAt(50, 48) != 255 {
		t.Error("bloom interior should be opaque")
	}
}

func TestBloomDriftRetiresOffscreen(t *testing.T) {
	s := NewCanvas(200, 200)
	b := NewDriftBloom(Vec2{100, 100}, NewHeartCurve(), ColorSeed, 0, Vec2{-100, 240}, 50)
	for i := 0; i < 100; i++ {
		if b.Drift(s, 200) {
			if i < 1 {
				t.Fatal("retired before moving")
			}
			return
		}
	}
	t.Fatal("bloom never left the surface")
}

func TestBloomDriftEases(t *testing.T) {
	s := NewCanvas(200, 200)
	b := NewDriftBloom(Vec2{100, 100}, NewHeartCurve(), ColorSeed, 0, Vec2{0, 200}, 4)
	b.Drift(s, 200)
	if p := b.Position(); p != (Vec2{75, 125}) {
		t.Errorf("position = %v, want (75, 125)", p)
	}
	if a := b.Angle(); a != 0.05 {
		t.Errorf("angle = %v, want 0.05", a)
	}
	if _, speed := b.Target(); speed != 3 {
		t.Errorf("speed = %v, want 3", speed)
	}
}

func TestBloomDriftStallsInside(t *testing.T) {
	s := NewCanvas(200, 200)
	b := NewDriftBloom(Vec2{100, 100}, NewHeartCurve(), ColorSeed, 0, Vec2{50, 150}, 3)
	for i := 0; i < 10; i++ {
		if b.Drift(s, 200) {
			t.Fatal("a bloom resting inside the surface should not retire")
		}
	}
	if p := b.Position(); math.Abs(p.X-50) > 1e-9 || math.Abs(p.Y-150) > 1e-9 {
		t.Errorf("position = %v, want the target", p)
	}
}

func TestBloomAdvanceDispatch(t *testing.T) {
	s := NewCanvas(100, 100)
	f := NewFlowerBloom(Vec2{50, 50}, NewHeartCurve(), ColorSeed, 1, 0)
	f.Advance(s, 100)
	if f.Scale() <= 0.1 {
		t.Error("flowering bloom should grow")
	}
	d := NewDriftBloom(Vec2{-50, 50}, NewHeartCurve(), ColorSeed, 0, Vec2{}, 10)
	if !d.Advance(s, 100) {
		t.Error("drifting bloom left of the surface should retire")
	}
	if f.Mode().String() != "flowering" || d.Mode().String() != "drifting" {
		t.Error("unexpected mode names")
	}
}
