package demo

import (
	"math"

	"glscenes/internal/camera"
	"glscenes/internal/config"
	"glscenes/internal/frame"
	"glscenes/internal/mesh"
	"glscenes/internal/xform"
)

var floorModel = xform.Multiply(
	xform.RotationZ(math.Pi),
	xform.Scale(xform.Vec3{100, 1, 100}),
)

// walk is a free-flying camera over a checkered floor.
type walk struct {
	*rig
}

func newWalk(cfg config.Config) (frame.Scene, error) {
	r, err := newRig(cfg.Camera, camera.NormalizedDiagonal)
	if err != nil {
		return nil, err
	}
	return &walk{rig: r}, nil
}

func (w *walk) Setup(d frame.Device) error {
	if err := d.LoadProgram(floorVertexShader, floorFragmentShader); err != nil {
		return err
	}
	if err := d.LoadMesh(mesh.Floor()); err != nil {
		return err
	}
	d.Enable(frame.DepthTest)
	return nil
}

func (w *walk) Update(_, dt float64) error {
	return w.advance(dt)
}

func (w *walk) Draw(s frame.Surface) error {
	v, err := w.view(s)
	if err != nil {
		return err
	}
	s.SetMatrix4(v.MVP(floorModel))
	s.DrawTriangles(0, 6)
	return nil
}
