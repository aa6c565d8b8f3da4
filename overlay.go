package lovetree

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// Overlay is the text layer beside the tree: the two names, the message
// lines and a running clock. It draws on its own canvas, refreshes the clock
// on a fixed cadence, and is unaffected by anything drawn on the main
// surface.
type Overlay struct {
	cfg    OverlayConfig
	timing TimingConfig
	canvas *Canvas

	started bool
	since   time.Time
	wait    time.Duration
	acc     time.Duration
	clock   string

	alpha  float64
	offset Vec2
	fade   *TweenGroup
	slide  *TweenGroup
}

// NewOverlay creates a hidden overlay of the given size.
func NewOverlay(w, h int, cfg OverlayConfig, timing TimingConfig) *Overlay {
	return &Overlay{
		cfg:    cfg,
		timing: timing,
		canvas: NewCanvas(w, h),
	}
}

// Canvas returns the overlay's own layer.
func (o *Overlay) Canvas() *Canvas { return o.canvas }

// Alpha returns the current opacity of the layer.
func (o *Overlay) Alpha() float64 { return o.alpha }

// Started reports whether Start has been called.
func (o *Overlay) Started() bool { return o.started }

// Clock returns the most recently rendered elapsed-time text.
func (o *Overlay) Clock() string { return o.clock }

// Start shows the overlay at now. The text fades in after the configured
// delay. Later calls do nothing.
func (o *Overlay) Start(now time.Time) {
	if o.started {
		return
	}
	o.started = true
	o.since = o.cfg.Since
	if o.since.IsZero() {
		o.since = now
	}
	o.wait = o.timing.OverlayDelay
	o.offset = Vec2{0, 12}
	o.refresh(now)
}

// Update advances the fade and refreshes the clock whenever a full
// OverlayTick has elapsed.
func (o *Overlay) Update(dt time.Duration, now time.Time) {
	if !o.started {
		return
	}
	if o.wait > 0 {
		o.wait -= dt
		if o.wait > 0 {
			return
		}
		fade := float32(o.timing.OverlayFade.Seconds())
		o.fade = TweenValue(&o.alpha, 1, fade, ease.OutQuad)
		o.slide = TweenPoint(&o.offset, Vec2{}, fade, ease.OutQuad)
	}

	dirty := false
	for _, g := range []*TweenGroup{o.fade, o.slide} {
		if g != nil && !g.Done {
			g.Update(float32(dt.Seconds()))
			dirty = true
		}
	}

	o.acc += dt
	if o.acc >= o.timing.OverlayTick {
		o.acc %= o.timing.OverlayTick
		o.refresh(now)
		return
	}
	if dirty {
		o.draw()
	}
}

func (o *Overlay) refresh(now time.Time) {
	o.clock = FormatElapsed(now.Sub(o.since))
	o.draw()
}

func (o *Overlay) draw() {
	c := o.canvas
	c.ClearRect(Rect{Width: float64(c.Width()), Height: float64(c.Height())})
	if o.alpha <= 0 {
		return
	}
	style := Style{Color: o.cfg.Color, Alpha: o.alpha, Typeface: TypefaceSans, FontSize: 16}

	c.Push()
	c.Translate(o.offset.X, o.offset.Y)
	if o.cfg.Names[0] != "" || o.cfg.Names[1] != "" {
		title := style
		title.FontSize = 24
		c.FillText(o.cfg.Names[0]+" & "+o.cfg.Names[1], 40, 48, title)
	}
	for i, line := range o.cfg.Lines {
		c.FillText(line, 40, 96+float64(i)*44, style)
	}
	c.FillText(o.clock, 40, float64(c.Height())-60, style)
	c.Pop()
}

// FormatElapsed renders d as whole days, hours, minutes and seconds.
// Negative durations count as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%d days %d hours %d minutes %d seconds", days, hours, minutes, seconds)
}
