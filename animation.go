package lovetree

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; values are written straight into the target fields.
//
// There is no global animation manager: owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenValue animates *field to the target value over duration seconds.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenPoint animates both components of *p to the target over duration
// seconds.
func TweenPoint(p *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(p.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(to.Y), duration, fn)
	g.fields[0] = &p.X
	g.fields[1] = &p.Y
	return g
}
