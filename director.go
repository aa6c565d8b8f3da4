package lovetree

import (
	"context"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/draw"
)

// Phase is a stage of the animation. Phases run strictly in order.
type Phase uint8

const (
	PhaseSeed    Phase = iota // seed drawn, waiting for the gate
	PhaseShrink               // heart icon shrinking
	PhaseDescend              // dot falling off the surface, footer widening
	PhaseGrow                 // branches growing
	PhaseFlower               // blooms opening
	PhaseMove                 // finished tree sliding right as a sprite
	PhaseFlash                // still frozen into the background
	PhaseLoop                 // petals drifting forever
)

var phaseNames = [...]string{"seed", "shrink", "descend", "grow", "flower", "move", "flash", "loop"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// ParsePhase returns the phase with the given name.
func ParsePhase(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), true
		}
	}
	return 0, false
}

const (
	seedShrinkFactor = 0.95
	seedFallStep     = 2
	flowersPerTick   = 2
	moveKey          = "p1"
	restKey          = "p2"
)

// DirectorOptions configures a Director.
type DirectorOptions struct {
	// Logger receives phase transitions. Nil uses log.Default().
	Logger *log.Logger
	// Debug logs per-phase statistics at debug level.
	Debug bool
	// Now supplies wall time for the overlay clock. Nil uses time.Now.
	Now func() time.Time
	// ScreenshotDir is where queued screenshots are written. Default
	// "screenshots".
	ScreenshotDir string
}

// Director drives a Tree through every phase on fixed tick intervals. It is
// not safe for concurrent use; one goroutine owns it and calls Update, Click
// and Hover.
type Director struct {
	tree    *Tree
	gate    *Gate
	overlay *Overlay
	log     *log.Logger
	debug   bool
	now     func() time.Time

	phase       Phase
	acc         time.Duration
	seedDrawn   bool
	moveStarted bool
	background  *image.RGBA
	flashAlpha  float64
	flashFade   *TweenGroup
	frames      uint64
	stats       phaseStats

	screenshotDir   string
	screenshotQueue []string
}

// NewDirector wraps tree in a director that starts in PhaseSeed.
func NewDirector(tree *Tree, opts DirectorOptions) *Director {
	cfg := tree.Config()
	d := &Director{
		tree:          tree,
		gate:          &Gate{},
		overlay:       NewOverlay(tree.Surface().Width(), tree.Surface().Height(), cfg.Overlay, cfg.Timing),
		log:           opts.Logger,
		debug:         opts.Debug,
		now:           opts.Now,
		screenshotDir: opts.ScreenshotDir,
	}
	if d.log == nil {
		d.log = log.Default()
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.screenshotDir == "" {
		d.screenshotDir = "screenshots"
	}
	d.stats.reset(d.now())
	return d
}

// Tree returns the driven tree.
func (d *Director) Tree() *Tree { return d.tree }

// Gate returns the gate that releases the seed phase.
func (d *Director) Gate() *Gate { return d.gate }

// Overlay returns the text layer.
func (d *Director) Overlay() *Overlay { return d.overlay }

// Phase returns the current phase.
func (d *Director) Phase() Phase { return d.phase }

// Frames returns how many times Update has been called.
func (d *Director) Frames() uint64 { return d.frames }

// Background returns the still frozen at the end of PhaseMove, or nil.
func (d *Director) Background() *image.RGBA { return d.background }

// FlashAlpha returns the opacity of the paper flash over the background.
func (d *Director) FlashAlpha() float64 { return d.flashAlpha }

// Hover reports whether (x, y) is over the seed while it still accepts
// clicks.
func (d *Director) Hover(x, y float64) bool {
	if d.gate.IsOpen() || d.phase != PhaseSeed || !d.seedDrawn {
		return false
	}
	seed := d.tree.Seed()
	return seed != nil && seed.Hit(x, y)
}

// Click offers a pointer press at (x, y). The first press that lands on the
// seed opens the gate; every later press is ignored. It reports whether this
// press opened the gate.
func (d *Director) Click(x, y float64) bool {
	if !d.Hover(x, y) {
		return false
	}
	if !d.gate.Open() {
		return false
	}
	d.log.Info("seed accepted", "x", x, "y", y)
	return true
}

// SeedTarget returns a point that hits the seed icon while it is drawn.
func (d *Director) SeedTarget() Vec2 {
	seed := d.tree.Seed()
	if seed == nil {
		return Vec2{}
	}
	return seed.HeartPoint().Add(Vec2{4, 2}.Scale(seed.HeartScale()))
}

// Update advances wall time by dt and runs every phase tick that falls due.
func (d *Director) Update(dt time.Duration) {
	d.frames++
	d.overlay.Update(dt, d.now())
	if d.flashFade != nil && !d.flashFade.Done {
		d.flashFade.Update(float32(dt.Seconds()))
	}

	d.acc += dt
	for {
		iv := d.interval()
		if d.acc < iv {
			return
		}
		d.acc -= iv
		d.tick()
	}
}

// Run drives the director in real time at the given interval until ctx is
// done, then returns ctx.Err().
func (d *Director) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Update(interval)
		}
	}
}

func (d *Director) interval() time.Duration {
	t := d.tree.Config().Timing
	switch d.phase {
	case PhaseLoop:
		return t.LoopTick
	case PhaseFlash:
		return t.Flash
	default:
		return t.Tick
	}
}

// tick runs one step of the current phase. A phase whose predicate has
// already gone false hands over to the next phase within the same tick.
func (d *Director) tick() {
	d.stats.ticks++
	for !d.step() {
	}
}

// step runs the current phase once. It returns false when it only moved to
// the next phase without drawing.
func (d *Director) step() bool {
	t := d.tree
	seed, foot := t.Seed(), t.Footer()

	switch d.phase {
	case PhaseSeed:
		if seed == nil || foot == nil {
			d.enter(PhaseGrow)
			return false
		}
		if !d.seedDrawn {
			seed.Draw()
			d.seedDrawn = true
		}
		if d.gate.IsOpen() {
			d.enter(PhaseShrink)
		}
		return true

	case PhaseShrink:
		if !seed.CanScale() {
			d.enter(PhaseDescend)
			return false
		}
		seed.Scale(seedShrinkFactor)
		return true

	case PhaseDescend:
		if !seed.CanMove() {
			d.enter(PhaseGrow)
			return false
		}
		seed.Move(0, seedFallStep)
		foot.Draw()
		return true

	case PhaseGrow:
		t.Grow()
		if !t.CanGrow() {
			d.enter(PhaseFlower)
		}
		return true

	case PhaseFlower:
		t.Flower(flowersPerTick)
		if !t.CanFlower() {
			d.enter(PhaseMove)
		}
		return true

	case PhaseMove:
		m := t.Config().Move
		if !d.moveStarted {
			t.Snapshot(moveKey, m.X, m.Y, m.Width, m.Height)
			d.moveStarted = true
		}
		if t.Move(moveKey, m.ToX, m.ToY) {
			d.drawFooter()
			return true
		}
		d.drawFooter()
		t.Snapshot(restKey, m.ToX, m.ToY, m.Width, m.Height)
		d.freeze()
		d.enter(PhaseFlash)
		return true

	case PhaseFlash:
		d.overlay.Start(d.now())
		d.enter(PhaseLoop)
		return false

	case PhaseLoop:
		s := t.Surface()
		s.ClearRect(Rect{Width: float64(s.Width()), Height: float64(s.Height())})
		t.Jump()
		d.drawFooter()
		return true
	}
	return true
}

func (d *Director) drawFooter() {
	if f := d.tree.Footer(); f != nil {
		f.Draw()
	}
}

// freeze copies the finished surface into the background still and starts
// the paper flash.
func (d *Director) freeze() {
	src := d.tree.Surface().Image()
	d.background = image.NewRGBA(src.Rect)
	draw.Draw(d.background, src.Rect, src, src.Rect.Min, draw.Src)

	d.flashAlpha = 1
	flash := float32(d.tree.Config().Timing.Flash.Seconds())
	d.flashFade = TweenValue(&d.flashAlpha, 0, flash, ease.InQuad)
}

func (d *Director) enter(p Phase) {
	d.logPhase(p)
	d.phase = p
	d.stats.reset(d.now())
}

// Composite flattens the page color, the background still, the flash, the
// live surface and the overlay into one image.
func (d *Director) Composite() *image.RGBA {
	src := d.tree.Surface().Image()
	out := image.NewRGBA(src.Rect)
	draw.Draw(out, out.Rect, image.NewUniform(ColorPaper), image.Point{}, draw.Src)
	if d.background != nil {
		draw.Draw(out, out.Rect, d.background, d.background.Rect.Min, draw.Over)
	}
	if d.flashAlpha > 0 {
		flash := ColorPaper
		flash.A = d.flashAlpha
		draw.Draw(out, out.Rect, image.NewUniform(flash), image.Point{}, draw.Over)
	}
	draw.Draw(out, out.Rect, src, src.Rect.Min, draw.Over)
	if d.overlay.Alpha() > 0 {
		ov := d.overlay.Canvas().Image()
		draw.Draw(out, out.Rect, ov, ov.Rect.Min, draw.Over)
	}
	return out
}
