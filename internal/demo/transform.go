package demo

import (
	"github.com/go-gl/mathgl/mgl64"

	"glscenes/internal/config"
	"glscenes/internal/frame"
	"glscenes/internal/input"
	"glscenes/internal/mesh"
	"glscenes/internal/xform"
)

// transform2D draws a flat F whose translation, rotation and scale are set
// by sliders.
type transform2D struct {
	model xform.Transform2D
	color xform.Vec4

	tx, ty, sx, sy, rot *input.Slider
	panel               *input.Panel
}

func newTransform(config.Config) (frame.Scene, error) {
	s := &transform2D{
		model: xform.NewTransform2D(),
		color: xform.Vec4{0.2, 0.6, 0.9, 1},
		tx:    &input.Slider{Name: "Translate X", Min: 0, Max: 600, Step: 5, Value: 300},
		ty:    &input.Slider{Name: "Translate Y", Min: 0, Max: 600, Step: 5, Value: 300},
		sx:    &input.Slider{Name: "Scale X", Min: -5, Max: 5, Step: 0.01, Value: 1},
		sy:    &input.Slider{Name: "Scale Y", Min: -5, Max: 5, Step: 0.01, Value: 1},
		rot:   &input.Slider{Name: "Rotation", Min: 0, Max: 360, Step: 1},
	}
	s.panel = input.NewPanel(s.tx, s.ty, s.rot, s.sx, s.sy)
	s.sync()
	return s, nil
}

func (s *transform2D) sync() {
	s.model.Translation = xform.Vec2{s.tx.Value, s.ty.Value}
	s.model.Rotation = mgl64.DegToRad(s.rot.Value)
	s.model.Scale = xform.Vec2{s.sx.Value, s.sy.Value}
}

func (s *transform2D) Handle(e input.Event) {
	if _, ok := s.panel.Handle(e); ok {
		s.sync()
	}
}

func (s *transform2D) Status() string {
	return s.panel.Label()
}

func (s *transform2D) Setup(d frame.Device) error {
	if err := d.LoadProgram(flatVertexShader, flatFragmentShader); err != nil {
		return err
	}
	return d.LoadMesh(mesh.LetterF2D())
}

func (s *transform2D) Update(_, _ float64) error {
	return nil
}

func (s *transform2D) Draw(surf frame.Surface) error {
	w, h := surf.DrawableSize()
	proj, err := xform.Projection2D(float64(w), float64(h))
	if err != nil {
		return err
	}
	surf.SetMatrix3(xform.Multiply2D(proj, s.model.Matrix()))
	surf.SetColor(s.color)
	surf.DrawTriangles(0, 18)
	return nil
}
