package lovetree

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// TPS is the update rate. Default 100, one update per 10ms tick.
	TPS int
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
}

// Run opens a window sized to the director's surface and plays the animation
// until the window is closed.
func Run(d *Director, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "lovetree"
	}
	if cfg.TPS == 0 {
		cfg.TPS = 100
	}
	s := d.Tree().Surface()
	ebiten.SetWindowSize(s.Width(), s.Height())
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(newGame(d, cfg)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// game adapts a Director to ebiten.Game. The surface and overlay are CPU
// images; each frame uploads them into GPU images of the same size.
type game struct {
	d   *Director
	cfg RunConfig
	w   int
	h   int

	layer      *ebiten.Image
	overlay    *ebiten.Image
	background *ebiten.Image
	flash      *ebiten.Image

	pointer pointerInput
}

func newGame(d *Director, cfg RunConfig) *game {
	s := d.Tree().Surface()
	w, h := s.Width(), s.Height()
	flash := ebiten.NewImage(w, h)
	flash.Fill(ColorPaper)
	return &game{
		d:       d,
		cfg:     cfg,
		w:       w,
		h:       h,
		layer:   ebiten.NewImage(w, h),
		overlay: ebiten.NewImage(w, h),
		flash:   flash,
	}
}

// Update forwards pointer input, then advances the director by one frame.
func (g *game) Update() error {
	g.pointer.update(g.d)
	g.d.Update(time.Second / time.Duration(ebiten.TPS()))
	g.d.FlushScreenshots()
	return nil
}

// Draw stacks page color, frozen background, flash, live surface and
// overlay, in that order.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorPaper)

	if bg := g.d.Background(); bg != nil {
		if g.background == nil {
			g.background = ebiten.NewImageFromImage(bg)
		}
		screen.DrawImage(g.background, nil)
	}

	if a := g.d.FlashAlpha(); a > 0 {
		var op ebiten.DrawImageOptions
		op.ColorScale.ScaleAlpha(float32(a))
		screen.DrawImage(g.flash, &op)
	}

	g.layer.WritePixels(g.d.Tree().Surface().Image().Pix)
	screen.DrawImage(g.layer, nil)

	if ov := g.d.Overlay(); ov.Alpha() > 0 {
		g.overlay.WritePixels(ov.Canvas().Image().Pix)
		screen.DrawImage(g.overlay, nil)
	}

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout keeps the logical screen at the surface size.
func (g *game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

// pointerInput turns mouse and touch presses into Director clicks and keeps
// the cursor shape in sync with Director.Hover.
type pointerInput struct {
	touchIDs []ebiten.TouchID
	hovering bool
}

func (p *pointerInput) update(d *Director) {
	mx, my := ebiten.CursorPosition()
	hover := d.Hover(float64(mx), float64(my))
	if hover != p.hovering {
		p.hovering = hover
		if hover {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		d.Click(float64(mx), float64(my))
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		d.Click(float64(tx), float64(ty))
	}
}
