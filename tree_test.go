package lovetree

import (
	"testing"
)

// smallConfig is a 200×200 scene with a short trunk, one child and a handful
// of blooms so whole runs finish in a few hundred ticks.
func smallConfig() Config {
	return Config{
		Width:    200,
		Height:   200,
		RandSeed: 7,
		Seed:     SeedConfig{X: 100, Y: 100, Color: ColorSeed, Scale: 2},
		Bloom:    BloomConfig{Count: 6, Width: 200, Height: 200, Radius: 60},
		Footer:   FooterConfig{Width: 200, Height: 4, Speed: 20},
		Move:     MoveConfig{X: 20, Width: 120, Height: 200, ToX: 60},
		Branches: []BranchDef{{
			Start: Vec2{100, 200}, Control: Vec2{105, 150}, End: Vec2{100, 110}, Radius: 8, Length: 10,
			Children: []BranchDef{
				{Start: Vec2{100, 140}, Control: Vec2{120, 130}, End: Vec2{140, 120}, Radius: 3, Length: 5},
			},
		}},
	}
}

func newSmallTree(t *testing.T) *Tree {
	t.Helper()
	cfg := smallConfig()
	return NewTree(NewCanvas(cfg.Width, cfg.Height), cfg)
}

func TestNewTreeFillsPool(t *testing.T) {
	tr := newSmallTree(t)
	if tr.Dormant() != 6 {
		t.Errorf("Dormant = %d, want 6", tr.Dormant())
	}
	if len(tr.Branches()) != 1 {
		t.Errorf("branches = %d, want 1", len(tr.Branches()))
	}
	if tr.Seed() == nil || tr.Footer() == nil {
		t.Fatal("seed and footer should be built")
	}
	if got := tr.Footer().Anchor().X; got != 100 {
		t.Errorf("footer anchor x = %v, want 100", got)
	}
}

func TestTreeGrowCompletesOnSameCall(t *testing.T) {
	s := NewCanvas(1100, 680)
	tr := NewTree(s, Config{Width: 1100, Height: 680, RandSeed: 1, Bloom: BloomConfig{Count: 1}})
	tr.AddBranches([]BranchDef{{
		Start: Vec2{535, 680}, Control: Vec2{570, 250}, End: Vec2{500, 200}, Radius: 30, Length: 100,
		Children: []BranchDef{{Start: Vec2{540, 500}, Control: Vec2{455, 417}, End: Vec2{340, 400}, Radius: 13, Length: 100}},
	}})

	for i := 0; i < 100; i++ {
		tr.Grow()
	}
	if len(tr.Branches()) != 1 || tr.Branches()[0].Def().Length != 100 || tr.Branches()[0].Step() != 100 {
		t.Fatal("root should still be growing after 100 calls")
	}

	tr.Grow()
	bs := tr.Branches()
	if len(bs) != 1 {
		t.Fatalf("branches = %d, want 1 (the child)", len(bs))
	}
	if bs[0].Def().Radius != 13 || bs[0].Step() != 0 {
		t.Errorf("active branch = radius %v step %d, want the fresh child", bs[0].Def().Radius, bs[0].Step())
	}
	if !tr.CanGrow() {
		t.Error("CanGrow should be true while the child grows")
	}
}

func TestTreeGrowPreservesOrder(t *testing.T) {
	tr := NewTree(NewCanvas(100, 100), Config{Width: 100, Height: 100, RandSeed: 1, Bloom: BloomConfig{Count: 1}})
	tr.AddBranches([]BranchDef{
		{Start: Vec2{10, 10}, End: Vec2{20, 20}, Radius: 1, Length: 2},
		{Start: Vec2{30, 30}, End: Vec2{40, 40}, Radius: 2, Length: 10},
		{Start: Vec2{50, 50}, End: Vec2{60, 60}, Radius: 3, Length: 10},
	})
	for i := 0; i < 3; i++ {
		tr.Grow()
	}
	bs := tr.Branches()
	if len(bs) != 2 {
		t.Fatalf("branches = %d, want 2", len(bs))
	}
	if bs[0].Def().Radius != 2 || bs[1].Def().Radius != 3 {
		t.Errorf("order = [%v %v], want [2 3]", bs[0].Def().Radius, bs[1].Def().Radius)
	}
}

func TestTreeGrowUntilDone(t *testing.T) {
	tr := newSmallTree(t)
	calls := 0
	for tr.CanGrow() {
		tr.Grow()
		calls++
		if calls > 1000 {
			t.Fatal("tree never finished growing")
		}
	}
	// 11 calls for the trunk, 6 for the child.
	if calls != 17 {
		t.Errorf("calls = %d, want 17", calls)
	}
}

func TestTreeFlower(t *testing.T) {
	tr := newSmallTree(t)
	if tr.CanFlower() {
		t.Fatal("CanFlower should be false before any bloom is promoted")
	}

	tr.Flower(2)
	if len(tr.Blooms()) != 2 || tr.Dormant() != 4 {
		t.Fatalf("active=%d dormant=%d, want 2 and 4", len(tr.Blooms()), tr.Dormant())
	}
	if !tr.CanFlower() {
		t.Error("CanFlower should be true with active blooms")
	}

	calls := 1
	for tr.CanFlower() {
		tr.Flower(2)
		calls++
		if calls > 100 {
			t.Fatal("flowering never finished")
		}
	}
	if tr.Dormant() != 0 {
		t.Errorf("Dormant = %d, want 0", tr.Dormant())
	}
	if len(tr.Blooms()) != 0 {
		t.Errorf("active = %d, want 0", len(tr.Blooms()))
	}
}

func TestTreeFlowerMoreThanPool(t *testing.T) {
	tr := newSmallTree(t)
	tr.Flower(100)
	if tr.Dormant() != 0 || len(tr.Blooms()) != 6 {
		t.Errorf("active=%d dormant=%d, want 6 and 0", len(tr.Blooms()), tr.Dormant())
	}
}

func TestTreeJumpAlwaysHasDrift(t *testing.T) {
	tr := newSmallTree(t)
	for i := 0; i < 500; i++ {
		tr.Jump()
		n := tr.countActive(BloomDrifting)
		if n < 1 {
			t.Fatalf("jump %d: no drifting blooms", i)
		}
	}
	for _, b := range tr.Blooms() {
		if b.Mode() != BloomDrifting {
			t.Errorf("bloom mode = %v, want drifting", b.Mode())
		}
	}
}

func TestTreeJumpSpawnsOneOrTwo(t *testing.T) {
	tr := newSmallTree(t)
	tr.Jump()
	if n := len(tr.Blooms()); n < 1 || n > 2 {
		t.Errorf("blooms after first jump = %d, want 1 or 2", n)
	}
	for _, b := range tr.Blooms() {
		target, speed := b.Target()
		if target.X < -100 || target.X > 600 {
			t.Errorf("target x = %v, want in [-100, 600]", target.X)
		}
		if target.Y != 240 {
			t.Errorf("target y = %v, want 240", target.Y)
		}
		if speed < 200 || speed > 300 {
			t.Errorf("speed = %v, want in [200, 300]", speed)
		}
	}
}

func TestCreateBloomInsideHeart(t *testing.T) {
	tr := NewTree(NewCanvas(1100, 680), Config{Width: 1100, Height: 680, RandSeed: 99, Bloom: BloomConfig{Count: 1}})
	for i := 0; i < 200; i++ {
		b := tr.CreateBloom(1080, 650, 240)
		p := b.Position()
		if !InsideHeart(p.X-540, 650-(650-40)/2-p.Y, 240) {
			t.Fatalf("bloom at %v is outside the heart", p)
		}
		if p.X < 20 || p.X > 1060 || p.Y < 20 || p.Y > 630 {
			t.Fatalf("bloom at %v is outside the box", p)
		}
		if p.X != float64(int(p.X)) || p.Y != float64(int(p.Y)) {
			t.Fatalf("bloom at %v is not on integer coordinates", p)
		}
		if b.Scale() != 0.1 {
			t.Errorf("scale = %v, want 0.1", b.Scale())
		}
		if a := b.Alpha(); a < 0.3 || a > 1 {
			t.Errorf("alpha = %v, want in [0.3, 1]", a)
		}
		if c := b.Color(); c.R != 1 || c.A != 1 {
			t.Errorf("color = %v, want full red channel", c)
		}
	}
}

func TestTreeDeterministicWithSeed(t *testing.T) {
	a := newSmallTree(t)
	b := newSmallTree(t)
	for i := 0; i < 3; i++ {
		pa := a.CreateBloom(200, 200, 60).Position()
		pb := b.CreateBloom(200, 200, 60).Position()
		if pa != pb {
			t.Fatalf("placement %d differs: %v vs %v", i, pa, pb)
		}
	}
}
