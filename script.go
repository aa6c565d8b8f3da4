package lovetree

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Phase  string  `json:"phase,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences clicks, waits and screenshots across frames for
// unattended runs. Call Step once per frame before Director.Update.
//
// Supported actions:
//
//	{"action": "click", "x": 540, "y": 344}
//	{"action": "clickSeed"}
//	{"action": "wait", "frames": 30}
//	{"action": "until", "phase": "loop"}
//	{"action": "screenshot", "label": "grown"}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a ScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if st.Action != "until" {
			continue
		}
		if _, ok := ParsePhase(st.Phase); !ok {
			return nil, fmt.Errorf("parse script: step %d: unknown phase %q", i, st.Phase)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *ScriptRunner) Step(d *Director) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	if st.Action == "until" {
		// ParsePhase succeeded at load time.
		p, _ := ParsePhase(st.Phase)
		if d.Phase() < p {
			return
		}
	}
	r.cursor++

	switch st.Action {
	case "screenshot":
		d.Screenshot(st.Label)
	case "click":
		d.Click(st.X, st.Y)
	case "clickSeed":
		p := d.SeedTarget()
		d.Click(p.X, p.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
