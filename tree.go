package lovetree

import (
	"math"
	"math/rand/v2"
)

const (
	bloomEdge       = 20 // placement keeps this far inside the bounding box
	driftMinActive  = 3
	driftTargetMinX = -100
	driftTargetMaxX = 600
	driftTargetDrop = 40 // targets sit this far below the surface
	driftMinSpeed   = 200
	driftMaxSpeed   = 300
)

// Tree owns the seed, footer, branches, blooms and snapshots for one
// animation and draws them all onto a single surface. Each exported tick
// operation runs to completion; callers decide when to invoke the next one.
type Tree struct {
	surface Surface
	cfg     Config
	rng     *rand.Rand
	figure  *HeartCurve

	seed   *Seed
	footer *Footer

	branches []*Branch
	blooms   []*Bloom // active, either track
	pool     []*Bloom // dormant flowering blooms

	records map[string]*SnapshotRecord
}

// NewTree resolves cfg and builds the seed, footer, root branches and the
// dormant bloom pool.
func NewTree(s Surface, cfg Config) *Tree {
	cfg = cfg.resolve()
	t := &Tree{
		surface: s,
		cfg:     cfg,
		rng:     rand.New(rand.NewPCG(cfg.RandSeed, cfg.RandSeed^0x9e3779b97f4a7c15)),
		figure:  NewHeartCurve(),
		records: make(map[string]*SnapshotRecord),
	}
	t.seed = NewSeed(s, Vec2{cfg.Seed.X, cfg.Seed.Y}, cfg.Seed.Scale, cfg.Seed.Color, t.figure)
	t.footer = NewFooter(s, cfg.Seed.X, cfg.Footer.Width, cfg.Footer.Height, cfg.Footer.Speed)
	t.AddBranches(cfg.Branches)

	t.pool = make([]*Bloom, 0, cfg.Bloom.Count)
	for i := 0; i < cfg.Bloom.Count; i++ {
		t.pool = append(t.pool, t.CreateBloom(cfg.Bloom.Width, cfg.Bloom.Height, cfg.Bloom.Radius))
	}
	return t
}

// Surface returns the surface the tree draws on.
func (t *Tree) Surface() Surface { return t.surface }

// Config returns the resolved configuration.
func (t *Tree) Config() Config { return t.cfg }

// Seed returns the seed icon.
func (t *Tree) Seed() *Seed { return t.seed }

// Footer returns the ground line.
func (t *Tree) Footer() *Footer { return t.footer }

// Figure returns the shared heart outline.
func (t *Tree) Figure() *HeartCurve { return t.figure }

// Branches returns the active branches. The slice must not be modified.
func (t *Tree) Branches() []*Branch { return t.branches }

// Blooms returns the active blooms. The slice must not be modified.
func (t *Tree) Blooms() []*Bloom { return t.blooms }

// Dormant returns how many flowering blooms are still waiting in the pool.
func (t *Tree) Dormant() int { return len(t.pool) }

// AddBranches instantiates defs as new active branches at step 0.
func (t *Tree) AddBranches(defs []BranchDef) {
	for _, d := range defs {
		t.branches = append(t.branches, NewBranch(d))
	}
}

// CanGrow reports whether any branch is still active.
func (t *Tree) CanGrow() bool {
	return len(t.branches) > 0
}

// Grow advances every active branch by exactly one step. Branches that
// complete are removed and their children join the active set, starting on
// the next call.
func (t *Tree) Grow() {
	kept := t.branches[:0]
	var sprouts []BranchDef
	for _, b := range t.branches {
		switch b.Grow(t.surface) {
		case BranchGrowing:
			kept = append(kept, b)
		case BranchCompleted:
			sprouts = append(sprouts, b.def.Children...)
		}
	}
	clear(t.branches[len(kept):])
	t.branches = kept
	t.AddBranches(sprouts)
}

// CanFlower reports whether any flowering bloom is still active.
func (t *Tree) CanFlower() bool {
	return t.countActive(BloomFlowering) > 0
}

// Flower promotes up to n dormant blooms into the active set, then advances
// every active bloom once.
func (t *Tree) Flower(n int) {
	n = min(n, len(t.pool))
	t.blooms = append(t.blooms, t.pool[:n]...)
	t.pool = t.pool[n:]
	t.advanceBlooms()
}

// Jump advances every active bloom once, then tops up the drifting petals:
// while fewer than three remain, one or two new ones are spawned, so the
// loop always has something to draw.
func (t *Tree) Jump() {
	t.advanceBlooms()
	if t.countActive(BloomDrifting) >= driftMinActive {
		return
	}
	w, h := t.cfg.Bloom.Width, t.cfg.Bloom.Height
	n := randInt(t.rng, 1, 2)
	for i := 0; i < n; i++ {
		t.blooms = append(t.blooms, t.createDriftBloom(w/2+w, h, t.cfg.Bloom.Radius))
	}
}

func (t *Tree) advanceBlooms() {
	height := float64(t.surface.Height())
	kept := t.blooms[:0]
	for _, b := range t.blooms {
		if !b.Advance(t.surface, height) {
			kept = append(kept, b)
		}
	}
	clear(t.blooms[len(kept):])
	t.blooms = kept
}

func (t *Tree) countActive(mode BloomMode) int {
	n := 0
	for _, b := range t.blooms {
		if b.mode == mode {
			n++
		}
	}
	return n
}

// PlaceInHeart draws integer points uniformly from the box
// [20, width-20]×[20, height-20] until one falls inside the heart of the
// given radius centered on the box. It does not return if the heart leaves
// no room inside the box.
func (t *Tree) PlaceInHeart(width, height, radius float64) Vec2 {
	for {
		x := float64(randInt(t.rng, bloomEdge, int(width)-bloomEdge))
		y := float64(randInt(t.rng, bloomEdge, int(height)-bloomEdge))
		if InsideHeart(x-width/2, height-(height-2*bloomEdge)/2-y, radius) {
			return Vec2{x, y}
		}
	}
}

// CreateBloom builds a flowering bloom with a random warm color, opacity and
// angle at a point inside the heart region of the box.
func (t *Tree) CreateBloom(width, height, radius float64) *Bloom {
	pos := t.PlaceInHeart(width, height, radius)
	return NewFlowerBloom(pos, t.figure, t.petalColor(), Range{0.3, 1}.Random(t.rng), t.petalAngle())
}

func (t *Tree) createDriftBloom(width, height, radius float64) *Bloom {
	pos := t.PlaceInHeart(width, height, radius)
	target := Vec2{
		X: float64(randInt(t.rng, driftTargetMinX, driftTargetMaxX)),
		Y: float64(t.surface.Height() + driftTargetDrop),
	}
	speed := float64(randInt(t.rng, driftMinSpeed, driftMaxSpeed))
	return NewDriftBloom(pos, t.figure, t.petalColor(), t.petalAngle(), target, speed)
}

func (t *Tree) petalColor() Color {
	return RGB(255, uint8(randInt(t.rng, 0, 255)), uint8(randInt(t.rng, 0, 255)))
}

func (t *Tree) petalAngle() float64 {
	return Range{0, 2 * math.Pi}.Random(t.rng)
}
