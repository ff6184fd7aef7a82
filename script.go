package gesture

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action   string    `yaml:"action"`
	ID       ContactID `yaml:"id,omitempty"`
	IDs      []int     `yaml:"ids,omitempty"`
	X        float64   `yaml:"x,omitempty"`
	Y        float64   `yaml:"y,omitempty"`
	FromX    float64   `yaml:"fromX,omitempty"`
	FromY    float64   `yaml:"fromY,omitempty"`
	ToX      float64   `yaml:"toX,omitempty"`
	ToY      float64   `yaml:"toY,omitempty"`
	FromDist float64   `yaml:"fromDist,omitempty"`
	ToDist   float64   `yaml:"toDist,omitempty"`
	Steps    int       `yaml:"steps,omitempty"`
	Frames   int       `yaml:"frames,omitempty"`
	Duration float32   `yaml:"duration,omitempty"`
}

// script is the top-level structure of a gesture script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

var errNoSteps = errors.New("no steps")

// ScriptRunner replays a gesture script through a Controller's inject queue,
// one step per frame once the queue has drained. Attach it with
// Controller.SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML or JSON gesture script:
//
//	steps:
//	  - {action: start, id: 1, x: 100, y: 100}
//	  - {action: move, id: 1, x: 140, y: 100}
//	  - {action: end, id: 1, x: 140, y: 100}
//	  - {action: pinch, ids: [1, 2], x: 400, y: 300, fromDist: 100, toDist: 200, steps: 5}
//	  - {action: wait, frames: 10}
//	  - {action: reset, duration: 0.25}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", errNoSteps)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "start", "move", "end", "cancel", "drag", "wait", "reset":
		return nil
	case "pinch":
		if len(st.IDs) != 2 || st.IDs[0] == st.IDs[1] {
			return fmt.Errorf("pinch needs two distinct ids, got %v", st.IDs)
		}
		return nil
	case "":
		return errors.New("missing action")
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// SetScriptRunner attaches a ScriptRunner. Its step method is called from
// Update before input is processed each frame.
func (c *Controller) SetScriptRunner(runner *ScriptRunner) {
	c.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Controller.update.
func (r *ScriptRunner) step(c *Controller) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
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
	r.cursor++

	switch st.Action {
	case "start":
		c.InjectStart(st.ID, st.X, st.Y)
	case "move":
		c.InjectMove(st.ID, st.X, st.Y)
	case "end":
		c.InjectEnd(st.ID, st.X, st.Y)
	case "cancel":
		c.InjectCancel(st.ID, st.X, st.Y)
	case "drag":
		c.InjectDrag(st.ID, Vec2{X: st.FromX, Y: st.FromY}, Vec2{X: st.ToX, Y: st.ToY}, st.Steps)
	case "pinch":
		c.InjectPinch(ContactID(st.IDs[0]), ContactID(st.IDs[1]),
			Vec2{X: st.X, Y: st.Y}, st.FromDist, st.ToDist, st.Steps)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "reset":
		c.ResetView(st.Duration, ease.OutCubic)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
