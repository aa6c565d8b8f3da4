package lovetree

import (
	"errors"
	"fmt"
	"image"
)

const (
	defaultMoveSpeed = 10
	moveSpeedDecay   = 0.95
	minMoveSpeed     = 2
)

// ErrUnknownSnapshot is returned when no snapshot exists under a key.
var ErrUnknownSnapshot = errors.New("unknown snapshot")

// SnapshotRecord is a captured block of pixels that can be slid across the
// surface as an opaque sprite.
type SnapshotRecord struct {
	Block  *image.RGBA
	Anchor Vec2
	Width  float64
	Height float64
	// Speed is the step size for the next Move. Zero means the default.
	Speed float64
}

// Snapshot captures the w×h rectangle at (x, y) under key, replacing any
// earlier capture with the same key.
func (t *Tree) Snapshot(key string, x, y, w, h float64) {
	r := Rect{X: x, Y: y, Width: w, Height: h}
	t.records[key] = &SnapshotRecord{
		Block:  t.surface.Capture(r),
		Anchor: Vec2{x, y},
		Width:  w,
		Height: h,
	}
}

// Record returns a copy of the snapshot stored under key.
func (t *Tree) Record(key string) (SnapshotRecord, error) {
	rec, ok := t.records[key]
	if !ok {
		return SnapshotRecord{}, fmt.Errorf("record %q: %w", key, ErrUnknownSnapshot)
	}
	return *rec, nil
}

// SetSpeed sets the step size of the next Move for key.
func (t *Tree) SetSpeed(key string, speed float64) error {
	rec, ok := t.records[key]
	if !ok {
		return fmt.Errorf("set speed %q: %w", key, ErrUnknownSnapshot)
	}
	rec.Speed = speed
	return nil
}

// DrawSnapshot writes the block stored under key back at its anchor.
func (t *Tree) DrawSnapshot(key string) {
	rec, ok := t.records[key]
	if !ok {
		return
	}
	t.surface.Put(rec.Block, rec.Anchor.X, rec.Anchor.Y)
}

// Move slides the block stored under key one step toward (x, y): each axis
// advances by the current speed without passing the target, the old
// rectangle is cleared before the block is written at its new anchor, and
// the speed decays by 5% down to a floor of 2. It reports whether either
// axis is still short of the target. Unknown keys do nothing.
func (t *Tree) Move(key string, x, y float64) bool {
	rec, ok := t.records[key]
	if !ok {
		return false
	}
	speed := rec.Speed
	if speed == 0 {
		speed = defaultMoveSpeed
	}

	i := min(rec.Anchor.X+speed, x)
	j := min(rec.Anchor.Y+speed, y)

	t.surface.ClearRect(Rect{X: rec.Anchor.X, Y: rec.Anchor.Y, Width: rec.Width, Height: rec.Height})
	t.surface.Put(rec.Block, i, j)

	rec.Anchor = Vec2{i, j}
	rec.Speed = max(speed*moveSpeedDecay, minMoveSpeed)
	return i < x || j < y
}
