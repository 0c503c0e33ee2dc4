package tactile

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a stroke script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Points []Point `json:"points,omitempty"`
	Ms     int     `json:"ms,omitempty"`
}

// strokeScript is the top-level JSON structure for a stroke script.
type strokeScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a parsed stroke script: a sequence of press/move/release/cancel/
// wait steps replayed onto a SyntheticSurface. Useful for demos and
// integration tests that want recorded interactions instead of hand-written
// event sequences.
//
// Wait steps advance the surface's synthetic clock, so classification that
// depends on event timestamps (swipe speed, double-tap gaps) is
// deterministic. The wall-clock long-press timer is not affected.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON stroke script.
func LoadScript(data []byte) (*Script, error) {
	var script strokeScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse stroke script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse stroke script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "cancel", "wait":
		default:
			return nil, fmt.Errorf("parse stroke script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: script.Steps}, nil
}

// Run replays the script onto the surface.
func (sc *Script) Run(s *SyntheticSurface) {
	for _, st := range sc.steps {
		switch st.Action {
		case "press":
			if len(st.Points) > 0 {
				s.PressPoints(st.Points...)
			} else {
				s.Press(st.X, st.Y)
			}
		case "move":
			if len(st.Points) > 0 {
				s.MovePoints(st.Points...)
			} else {
				s.Move(st.X, st.Y)
			}
		case "release":
			if len(st.Points) > 0 {
				s.ReleasePoints(st.Points...)
			} else {
				s.Release(st.X, st.Y)
			}
		case "cancel":
			s.CancelStroke()
		case "wait":
			s.Advance(time.Duration(st.Ms) * time.Millisecond)
		}
	}
}
