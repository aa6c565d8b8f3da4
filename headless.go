package lovetree

import (
	"context"
	"errors"
	"time"
)

// ErrFrameLimit is returned by RunHeadless when MaxFrames runs out first.
var ErrFrameLimit = errors.New("frame limit reached")

// HeadlessOptions controls RunHeadless.
type HeadlessOptions struct {
	// Script drives the run. Without one the seed is clicked as soon as it
	// is drawn and the run ends LoopFrames frames into PhaseLoop.
	Script     *ScriptRunner
	LoopFrames int
	// FrameDelta is the simulated time per frame. Default Timing.Tick.
	FrameDelta time.Duration
	// MaxFrames bounds the run. Default 200000.
	MaxFrames uint64
}

// HeadlessResult summarizes a finished headless run.
type HeadlessResult struct {
	Frames      uint64
	Phase       Phase
	Screenshots []string
}

// RunHeadless advances d frame by frame as fast as it can, without a window.
// It stops when the script (or the default ending) is done, when ctx is
// canceled, or when MaxFrames is reached.
func RunHeadless(ctx context.Context, d *Director, opts HeadlessOptions) (HeadlessResult, error) {
	dt := opts.FrameDelta
	if dt == 0 {
		dt = d.Tree().Config().Timing.Tick
	}
	limit := opts.MaxFrames
	if limit == 0 {
		limit = 200000
	}

	var res HeadlessResult
	loopFrames := 0
	for {
		if err := ctx.Err(); err != nil {
			res.Frames, res.Phase = d.Frames(), d.Phase()
			return res, err
		}
		if d.Frames() >= limit {
			res.Frames, res.Phase = d.Frames(), d.Phase()
			return res, ErrFrameLimit
		}

		if opts.Script != nil {
			opts.Script.Step(d)
		} else if d.Phase() == PhaseSeed {
			p := d.SeedTarget()
			d.Click(p.X, p.Y)
		}

		d.Update(dt)
		res.Screenshots = append(res.Screenshots, d.FlushScreenshots()...)

		if opts.Script != nil {
			if opts.Script.Done() {
				break
			}
			continue
		}
		if d.Phase() == PhaseLoop {
			loopFrames++
			if loopFrames > opts.LoopFrames {
				break
			}
		}
	}
	res.Frames, res.Phase = d.Frames(), d.Phase()
	return res, nil
}
