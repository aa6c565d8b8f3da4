package lovetree

import "time"

// phaseStats tracks how long the current phase has been running.
type phaseStats struct {
	ticks int
	start time.Time
}

func (s *phaseStats) reset(now time.Time) {
	s.ticks = 0
	s.start = now
}

// logPhase reports the transition into next. In debug mode it also logs what
// the finished phase cost and what the tree holds now.
func (d *Director) logPhase(next Phase) {
	if d.debug {
		t := d.tree
		d.log.Debug("phase done",
			"phase", d.phase,
			"ticks", d.stats.ticks,
			"elapsed", d.now().Sub(d.stats.start).Round(time.Millisecond),
			"branches", len(t.Branches()),
			"blooms", len(t.Blooms()),
			"dormant", t.Dormant(),
		)
	}
	d.log.Info("phase", "from", d.phase, "to", next)
}
