package demo

import (
	"math/rand"

	"glscenes/internal/config"
	"glscenes/internal/frame"
	"glscenes/internal/mesh"
	"glscenes/internal/xform"
)

const (
	bounceStep = 3
	bounceSize = 200
)

// Position is the ping-pong offset after count steps across span pixels.
// It starts at span, runs down to 0 and back. A non-positive span has no
// room to move and stays at 0.
func Position(count, span int) int {
	if span <= 0 {
		return 0
	}
	p := count%(2*span) - span
	if p < 0 {
		return -p
	}
	return p
}

// bounce moves a square back and forth across the drawable area.
type bounce struct {
	count int
	color xform.Vec4
}

func newBounce(config.Config) (frame.Scene, error) {
	return &bounce{color: xform.Vec4{rand.Float64(), rand.Float64(), rand.Float64(), 1}}, nil
}

func (b *bounce) Setup(d frame.Device) error {
	if err := d.LoadProgram(flatVertexShader, flatFragmentShader); err != nil {
		return err
	}
	return d.LoadMesh(mesh.UnitQuad())
}

func (b *bounce) Update(_, _ float64) error {
	b.count += bounceStep
	return nil
}

// offset is the square's top-left corner on a surface of the given size.
func (b *bounce) offset(width, height int) xform.Vec2 {
	return xform.Vec2{
		float64(Position(b.count, width-bounceSize)),
		float64(Position(b.count, height-bounceSize)),
	}
}

func (b *bounce) Draw(s frame.Surface) error {
	w, h := s.DrawableSize()
	proj, err := xform.Projection2D(float64(w), float64(h))
	if err != nil {
		return err
	}
	s.SetMatrix3(xform.Chain2D(
		proj,
		xform.Translation2D(b.offset(w, h)),
		xform.Scale2D(xform.Vec2{bounceSize, bounceSize}),
	))
	s.SetColor(b.color)
	s.DrawTriangles(0, 6)
	return nil
}
