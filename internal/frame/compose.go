package frame

import (
	"fmt"

	"glscenes/internal/camera"
	"glscenes/internal/xform"
)

// Lens describes the perspective projection. A zero Far puts the far plane
// at infinity.
type Lens struct {
	FOV  float64
	Near float64
	Far  float64
}

func (l Lens) Projection(aspect float64) (xform.Mat4, error) {
	if l.Far == 0 {
		return xform.InfinitePerspective(l.FOV, aspect, l.Near)
	}
	return xform.Perspective(l.FOV, aspect, l.Near, l.Far)
}

// View holds the camera transforms of one frame. Every object drawn in the
// frame uses the same View.
type View struct {
	Projection     xform.Mat4
	View           xform.Mat4
	ViewProjection xform.Mat4
}

func Compose(cam camera.State, lens Lens, aspect float64) (View, error) {
	view, err := cam.View()
	if err != nil {
		return View{}, fmt.Errorf("camera view: %w", err)
	}
	proj, err := lens.Projection(aspect)
	if err != nil {
		return View{}, fmt.Errorf("projection: %w", err)
	}
	return View{
		Projection:     proj,
		View:           view,
		ViewProjection: xform.Multiply(proj, view),
	}, nil
}

// MVP is ViewProjection·model.
func (v View) MVP(model xform.Mat4) xform.Mat4 {
	return xform.Multiply(v.ViewProjection, model)
}
