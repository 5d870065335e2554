package reveal

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// NodeState is one element in a Snapshot.
type NodeState struct {
	Name    string   `json:"name"`
	Classes []string `json:"classes,omitempty"`
	Alpha   float64  `json:"alpha"`
}

// Snapshot records the document's reveal state at one frame.
type Snapshot struct {
	Label  string      `json:"label"`
	Scroll float64     `json:"scroll"`
	Nodes  []NodeState `json:"nodes"`
}

// TestRunner sequences injected viewport events and snapshots across frames
// for automated testing. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a TestRunner ready to be
// attached to a Scene via SetTestRunner.
//
//	{"steps": [
//		{"action": "scroll", "y": 400},
//		{"action": "sweep", "fromY": 400, "toY": 0, "frames": 10},
//		{"action": "wheel", "y": -50},
//		{"action": "resize", "width": 800, "height": 600},
//		{"action": "rotate"},
//		{"action": "wait", "frames": 10},
//		{"action": "snapshot", "label": "after-scroll"}
//	]}
func LoadScript(jsonData []byte) (*TestRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "scroll", "sweep", "wheel", "resize", "rotate", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: sc.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before injected events are processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Snapshots returns the snapshots taken so far.
func (s *Scene) Snapshots() []Snapshot {
	return s.snapshots
}

// Snapshot records the classes and alpha of every node that carries trigger
// metadata or classes.
func (s *Scene) Snapshot(label string) Snapshot {
	snap := Snapshot{Label: label, Scroll: s.camera.Y}
	s.root.Walk(func(n *Node) bool {
		if n.HasAttr(AttrTrigger) || len(n.classes) > 0 {
			snap.Nodes = append(snap.Nodes, NodeState{
				Name:    n.Name,
				Classes: append([]string(nil), n.classes...),
				Alpha:   n.Alpha,
			})
		}
		return true
	})
	s.snapshots = append(s.snapshots, snap)
	return snap
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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
	case "snapshot":
		s.Snapshot(st.Label)
	case "scroll":
		s.InjectScroll(st.Y)
	case "sweep":
		s.InjectScrollSweep(st.FromY, st.ToY, st.Frames)
	case "wheel":
		s.InjectWheel(st.Y)
	case "resize":
		s.InjectResize(st.Width, st.Height)
	case "rotate":
		s.InjectRotate()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
