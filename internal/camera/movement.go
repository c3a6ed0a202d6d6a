package camera

import (
	"fmt"

	"glscenes/internal/input"
	"glscenes/internal/xform"
)

// Intent is the movement requested by the held keys. Each axis is -1, 0 or
// +1; opposing keys cancel.
type Intent struct {
	Forward int
	Left    int
	Up      int
}

// IntentFrom reads W/S, A/D and Space/Shift.
func IntentFrom(keys input.Keys) Intent {
	return Intent{
		Forward: keys.Axis(input.KeyW, input.KeyS),
		Left:    keys.Axis(input.KeyA, input.KeyD),
		Up:      keys.Axis(input.KeySpace, input.KeyShift),
	}
}

func (i Intent) active() int {
	n := 0
	for _, v := range [...]int{i.Forward, i.Left, i.Up} {
		if v != 0 {
			n++
		}
	}
	return n
}

// Policy decides how simultaneous axes combine.
type Policy int

const (
	// NormalizedDiagonal rescales combined movement to unit length so that
	// diagonal motion is no faster than axis-aligned motion.
	NormalizedDiagonal Policy = iota
	// RawAxisSum adds each axis independently.
	RawAxisSum
)

func (p Policy) String() string {
	switch p {
	case NormalizedDiagonal:
		return "normalized-diagonal"
	case RawAxisSum:
		return "raw-axis-sum"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "normalized-diagonal":
		return NormalizedDiagonal, nil
	case "raw-axis-sum":
		return RawAxisSum, nil
	}
	return 0, fmt.Errorf("unknown movement policy %q", s)
}

// Direction converts an intent into a world-space direction for the current
// orientation. Forward follows the view including pitch; up is world up.
func (s State) Direction(in Intent, p Policy) (xform.Vec3, error) {
	d := s.Forward().Mul(float64(in.Forward)).
		Add(s.Left().Mul(float64(in.Left))).
		Add(up.Mul(float64(in.Up)))
	if p == NormalizedDiagonal && in.active() > 1 {
		return xform.Normalize(d)
	}
	return d, nil
}

// Advance moves the camera by speed·dt along the intent's direction and
// returns the new state.
func Advance(s State, in Intent, dt, speed float64, p Policy) (State, error) {
	d, err := s.Direction(in, p)
	if err != nil {
		return s, fmt.Errorf("movement direction: %w", err)
	}
	s.Position = s.Position.Add(d.Mul(speed * dt))
	return s, nil
}
