package demo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"glscenes/internal/camera"
	"glscenes/internal/config"
	"glscenes/internal/frame"
	"glscenes/internal/mesh"
	"glscenes/internal/xform"
)

const (
	gridSize      = 50
	gridSpacing   = 200
	focusDistance = 1000
	// focusRate is the focus point's orbit speed in degrees per second.
	focusRate = 100
	fVertices = 96
)

var worldUp = xform.Vec3{0, 1, 0}

// floating flies the camera over a grid of Fs. Every other F turns to face
// a focus point that orbits the origin, and the focus F faces the camera.
type floating struct {
	*rig
	now float64
}

func newFloating(cfg config.Config) (frame.Scene, error) {
	r, err := newRig(cfg.Camera, camera.RawAxisSum)
	if err != nil {
		return nil, err
	}
	return &floating{rig: r}, nil
}

func (f *floating) Setup(d frame.Device) error {
	if err := d.LoadProgram(colorVertexShader, colorFragmentShader); err != nil {
		return err
	}
	if err := d.LoadMesh(mesh.LetterF3D()); err != nil {
		return err
	}
	d.Enable(frame.CullFace)
	d.Enable(frame.DepthTest)
	return nil
}

func (f *floating) Update(now, dt float64) error {
	f.now = now
	return f.advance(dt)
}

// FocusPoint is where the facing Fs look at time now (seconds) with the
// camera at height cameraY.
func FocusPoint(now, cameraY float64) xform.Vec3 {
	angle := mgl64.DegToRad(now * focusRate)
	return xform.Vec3{
		math.Sin(angle) * focusDistance,
		-cameraY / 2,
		math.Cos(angle) * focusDistance,
	}
}

// gridModel is the model matrix of the F in cell (xi, zi).
func gridModel(xi, zi int, focus xform.Vec3) (xform.Mat4, error) {
	x := float64((xi - gridSize/2) * gridSpacing)
	z := float64((zi - gridSize/2) * gridSpacing)
	flip := xform.RotationZ(math.Pi)

	if (xi+zi)%2 == 0 {
		return xform.Multiply(flip, xform.Translation(xform.Vec3{x - 50, -75, z - 15})), nil
	}
	face, err := xform.TargetTo(xform.Vec3{x - 25, -38, z - 8}, focus, worldUp)
	if err != nil {
		return xform.Mat4{}, err
	}
	return xform.Chain(flip, face, xform.Translation(xform.Vec3{-25, -37, -7})), nil
}

func (f *floating) Draw(s frame.Surface) error {
	v, err := f.view(s)
	if err != nil {
		return err
	}
	focus := FocusPoint(f.now, f.state.Position.Y())

	for xi := 0; xi < gridSize; xi++ {
		for zi := 0; zi < gridSize; zi++ {
			model, err := gridModel(xi, zi, focus)
			if err != nil {
				return err
			}
			s.SetMatrix4(v.MVP(model))
			s.DrawTriangles(0, fVertices)
		}
	}

	face, err := xform.TargetTo(xform.Vec3{-focus[0], -focus[1], focus[2]}, f.state.Position, worldUp)
	if err != nil {
		return err
	}
	s.SetMatrix4(v.MVP(xform.Multiply(face, xform.RotationZ(math.Pi))))
	s.DrawTriangles(0, fVertices)
	return nil
}
