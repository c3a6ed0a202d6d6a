// Package frame drives a scene once per display refresh and composes the
// per-frame camera transforms.
package frame

import (
	"glscenes/internal/mesh"
	"glscenes/internal/xform"
)

// Surface is the per-frame side of the rendering handle.
type Surface interface {
	DrawableSize() (width, height int)
	Clear()
	SetMatrix3(m xform.Mat3)
	SetMatrix4(m xform.Mat4)
	SetColor(c xform.Vec4)
	DrawTriangles(first, count int)
}

type Feature int

const (
	CullFace Feature = iota
	DepthTest
)

// Device adds the one-time setup a scene performs before its first frame.
type Device interface {
	Surface
	LoadProgram(vertexSource, fragmentSource string) error
	LoadMesh(m mesh.Mesh) error
	Enable(f Feature)
}

// Scheduler invokes fn before the next repaint with the current time in
// seconds.
type Scheduler interface {
	RequestFrame(fn func(now float64))
}

type Scene interface {
	Setup(d Device) error
	// Update advances time-varying state; dt is zero on the first frame.
	Update(now, dt float64) error
	Draw(s Surface) error
}

// Aspect reports width/height of the surface, or 1 before it has a size.
func Aspect(s Surface) float64 {
	w, h := s.DrawableSize()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float64(w) / float64(h)
}
