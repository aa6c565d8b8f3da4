package lovetree

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

var testClock = time.Date(2024, 2, 14, 9, 30, 0, 0, time.UTC)

func newSmallDirector(t *testing.T) *Director {
	t.Helper()
	return NewDirector(newSmallTree(t), DirectorOptions{
		Logger:        log.New(&bytes.Buffer{}),
		Now:           func() time.Time { return testClock },
		ScreenshotDir: t.TempDir(),
	})
}

func TestParsePhase(t *testing.T) {
	for p := PhaseSeed; p <= PhaseLoop; p++ {
		got, ok := ParsePhase(p.String())
		if !ok || got != p {
			t.Errorf("ParsePhase(%q) = %v, %v", p.String(), got, ok)
		}
	}
	if _, ok := ParsePhase("bloom"); ok {
		t.Error("unknown name should not parse")
	}
	if Phase(99).String() != "unknown" {
		t.Error("out of range phase should be unknown")
	}
}

func TestDirectorWaitsForGate(t *testing.T) {
	d := newSmallDirector(t)
	tick := d.Tree().Config().Timing.Tick
	p := d.SeedTarget()

	if d.Hover(p.X, p.Y) {
		t.Fatal("seed is not drawn before the first tick")
	}
	for i := 0; i < 50; i++ {
		d.Update(tick)
	}
	if d.Phase() != PhaseSeed {
		t.Fatalf("phase = %v without a click, want seed", d.Phase())
	}
	if !d.Hover(p.X, p.Y) {
		t.Error("seed should be hoverable once drawn")
	}
	if d.Click(5, 5) {
		t.Error("a click off the seed should be ignored")
	}
	if !d.Click(p.X, p.Y) {
		t.Fatal("a click on the seed should open the gate")
	}
	if d.Click(p.X, p.Y) {
		t.Error("a second click should be ignored")
	}

	d.Update(tick)
	if d.Phase() != PhaseShrink {
		t.Errorf("phase = %v, want shrink", d.Phase())
	}
	if d.Hover(p.X, p.Y) {
		t.Error("hover should be off once the gate is open")
	}
}

func TestDirectorRunsEveryPhase(t *testing.T) {
	d := newSmallDirector(t)
	tick := d.Tree().Config().Timing.Tick

	d.Update(tick)
	p := d.SeedTarget()
	d.Click(p.X, p.Y)

	seen := map[Phase]bool{}
	last := d.Phase()
	flash := 0.0
	for i := 0; i < 5000 && d.Phase() != PhaseLoop; i++ {
		d.Update(tick)
		if d.Phase() < last {
			t.Fatalf("phase went back from %v to %v", last, d.Phase())
		}
		last = d.Phase()
		seen[last] = true
		if last == PhaseFlash {
			flash = max(flash, d.FlashAlpha())
		}
	}
	if d.Phase() != PhaseLoop {
		t.Fatalf("phase = %v, want loop", d.Phase())
	}
	for _, ph := range []Phase{PhaseShrink, PhaseDescend, PhaseGrow, PhaseFlower, PhaseMove, PhaseFlash} {
		if !seen[ph] {
			t.Errorf("phase %v never observed", ph)
		}
	}

	tr := d.Tree()
	if tr.CanGrow() || tr.Dormant() != 0 {
		t.Error("growth and flowering should be finished")
	}
	rec, err := tr.Record(restKey)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Anchor != (Vec2{60, 0}) {
		t.Errorf("rest anchor = %v, want (60, 0)", rec.Anchor)
	}
	if d.Background() == nil {
		t.Error("background should be frozen")
	}
	if flash <= 0 {
		t.Error("flash should cover the still while it fades")
	}
	if !d.Overlay().Started() {
		t.Error("overlay should start with the loop")
	}
}

func TestDirectorLoopKeepsPetals(t *testing.T) {
	d := newSmallDirector(t)
	if _, err := RunHeadless(context.Background(), d, HeadlessOptions{LoopFrames: 50}); err != nil {
		t.Fatal(err)
	}
	loopTick := d.Tree().Config().Timing.LoopTick
	for i := 0; i < 100; i++ {
		d.Update(loopTick)
		if len(d.Tree().Blooms()) == 0 {
			t.Fatalf("tick %d: no blooms in the loop", i)
		}
	}
	if d.FlashAlpha() > 0.001 {
		t.Errorf("flash alpha = %v, want faded out", d.FlashAlpha())
	}
}

func TestDirectorAccumulatesTicks(t *testing.T) {
	d := newSmallDirector(t)
	d.Update(4 * time.Millisecond)
	if d.Hover(d.SeedTarget().X, d.SeedTarget().Y) {
		t.Fatal("no tick should have run yet")
	}
	d.Update(6 * time.Millisecond)
	if !d.Hover(d.SeedTarget().X, d.SeedTarget().Y) {
		t.Error("the first tick should run once 10ms accumulate")
	}
	if d.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", d.Frames())
	}
}

func TestDirectorLogsPhases(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	d := NewDirector(newSmallTree(t), DirectorOptions{
		Logger: logger,
		Debug:  true,
		Now:    func() time.Time { return testClock },
	})
	d.Update(10 * time.Millisecond)
	p := d.SeedTarget()
	d.Click(p.X, p.Y)
	d.Update(10 * time.Millisecond)

	out := buf.String()
	for _, want := range []string{"seed accepted", "phase done", "to=shrink"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDirectorRunStopsOnCancel(t *testing.T) {
	d := newSmallDirector(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := d.Run(ctx, time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
	if d.Frames() == 0 {
		t.Error("Run should have updated at least once")
	}
}

func TestComposite(t *testing.T) {
	d := newSmallDirector(t)
	img := d.Composite()
	c := img.RGBAAt(0, 0)
	if c.R != 255 || c.G != 255 || c.B != 238 || c.A != 255 {
		t.Errorf("empty composite = %v, want paper", c)
	}

	d.Update(d.Tree().Config().Timing.Tick)
	p := d.SeedTarget()
	c = d.Composite().RGBAAt(int(p.X), int(p.Y))
	if c.R != 190 || c.G != 26 || c.B != 37 {
		t.Errorf("seed pixel = %v, want seed color", c)
	}
}
