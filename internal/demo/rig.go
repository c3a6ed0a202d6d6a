package demo

import (
	"github.com/go-gl/mathgl/mgl64"

	"glscenes/internal/camera"
	"glscenes/internal/config"
	"glscenes/internal/frame"
	"glscenes/internal/input"
	"glscenes/internal/xform"
)

var startPose = camera.State{
	Position: xform.Vec3{-800, 1700, 2000},
	Yaw:      -0.4,
	Pitch:    -0.8,
}

// rig is the first-person camera shared by the walking scenes. It turns
// input events into camera state.
type rig struct {
	state       camera.State
	lens        frame.Lens
	speed       float64
	sensitivity float64
	policy      camera.Policy

	keys    input.Keys
	capture camera.Capture
}

// newRig uses policy unless cfg names one.
func newRig(cfg config.Camera, policy camera.Policy) (*rig, error) {
	if cfg.Policy != "" {
		p, err := camera.ParsePolicy(cfg.Policy)
		if err != nil {
			return nil, err
		}
		policy = p
	}
	return &rig{
		state:       startPose,
		lens:        frame.Lens{FOV: mgl64.DegToRad(cfg.FOV), Near: cfg.Near},
		speed:       cfg.Speed,
		sensitivity: cfg.Sensitivity,
		policy:      policy,
		keys:        input.Keys{},
	}, nil
}

func (r *rig) Handle(e input.Event) {
	switch e := e.(type) {
	case input.KeyDown, input.KeyUp:
		r.keys.Apply(e)
	case input.CaptureChanged:
		r.capture.Set(e.Captured)
	case input.PointerMove:
		r.state = r.capture.Move(r.state, e.DX, e.DY, r.sensitivity)
	}
}

func (r *rig) WantsPointerCapture() bool {
	return true
}

func (r *rig) Status() string {
	if r.capture.Captured() {
		return "WASD Space Shift to move, Esc to release"
	}
	return "Click to capture mouse, move with WASD Shift Space"
}

func (r *rig) advance(dt float64) error {
	next, err := camera.Advance(r.state, camera.IntentFrom(r.keys), dt, r.speed, r.policy)
	if err != nil {
		return err
	}
	r.state = next
	return nil
}

func (r *rig) view(s frame.Surface) (frame.View, error) {
	return frame.Compose(r.state, r.lens, frame.Aspect(s))
}
