package demo

import (
	"github.com/go-gl/mathgl/mgl64"

	"glscenes/internal/config"
	"glscenes/internal/frame"
	"glscenes/internal/input"
	"glscenes/internal/mesh"
	"glscenes/internal/xform"
)

var threedeeLens = frame.Lens{FOV: mgl64.DegToRad(90), Near: 1, Far: 2000}

// threedee draws one solid F in perspective, posed by sliders.
type threedee struct {
	model xform.Transform

	translate, rotate, scale [3]*input.Slider
	panel                    *input.Panel
}

func newThreedee(config.Config) (frame.Scene, error) {
	s := &threedee{}
	start := xform.Transform{
		Translation: xform.Vec3{0, 0, -400},
		Rotation:    xform.Vec3{0.2, 3.4, 3.4},
		Scale:       xform.Vec3{1, 1, 1},
	}

	var sliders []*input.Slider
	for i, axis := range []string{"X", "Y", "Z"} {
		s.translate[i] = &input.Slider{Name: "Translate " + axis, Min: -600, Max: 600, Step: 5, Value: start.Translation[i]}
		s.rotate[i] = &input.Slider{Name: "Rotate " + axis, Min: 0, Max: 360, Step: 1, Value: mgl64.RadToDeg(start.Rotation[i])}
		s.scale[i] = &input.Slider{Name: "Scale " + axis, Min: -5, Max: 5, Step: 0.01, Value: start.Scale[i]}
	}
	s.translate[2].Min, s.translate[2].Max = -1200, -1
	sliders = append(sliders, s.translate[:]...)
	sliders = append(sliders, s.rotate[:]...)
	sliders = append(sliders, s.scale[:]...)

	s.panel = input.NewPanel(sliders...)
	s.sync()
	return s, nil
}

func (s *threedee) sync() {
	for i := 0; i < 3; i++ {
		s.model.Translation[i] = s.translate[i].Value
		s.model.Rotation[i] = mgl64.DegToRad(s.rotate[i].Value)
		s.model.Scale[i] = s.scale[i].Value
	}
}

func (s *threedee) Handle(e input.Event) {
	if _, ok := s.panel.Handle(e); ok {
		s.sync()
	}
}

func (s *threedee) Status() string {
	return s.panel.Label()
}

func (s *threedee) Setup(d frame.Device) error {
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

func (s *threedee) Update(_, _ float64) error {
	return nil
}

func (s *threedee) Draw(surf frame.Surface) error {
	proj, err := threedeeLens.Projection(frame.Aspect(surf))
	if err != nil {
		return err
	}
	surf.SetMatrix4(xform.Multiply(proj, s.model.Matrix()))
	surf.DrawTriangles(0, 96)
	return nil
}
