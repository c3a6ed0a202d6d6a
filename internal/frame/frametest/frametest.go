// Package frametest provides in-memory frame collaborators for tests.
package frametest

import (
	"glscenes/internal/frame"
	"glscenes/internal/mesh"
	"glscenes/internal/xform"
)

// Draw is one recorded DrawTriangles call with the uniforms bound at the
// time.
type Draw struct {
	First, Count int
	Matrix3      xform.Mat3
	Matrix4      xform.Mat4
	Color        xform.Vec4
}

// Device records everything a scene asks of the renderer.
type Device struct {
	Width, Height int

	Programs []string
	Meshes   []mesh.Mesh
	Features []frame.Feature
	Clears   int
	Draws    []Draw

	// ProgramErr is returned from LoadProgram when set.
	ProgramErr error

	m3    xform.Mat3
	m4    xform.Mat4
	color xform.Vec4
}

var _ frame.Device = (*Device)(nil)

func NewDevice(width, height int) *Device {
	return &Device{Width: width, Height: height}
}

func (d *Device) DrawableSize() (int, int) { return d.Width, d.Height }

func (d *Device) Clear() { d.Clears++ }

func (d *Device) SetMatrix3(m xform.Mat3) { d.m3 = m }

func (d *Device) SetMatrix4(m xform.Mat4) { d.m4 = m }

func (d *Device) SetColor(c xform.Vec4) { d.color = c }

func (d *Device) DrawTriangles(first, count int) {
	d.Draws = append(d.Draws, Draw{First: first, Count: count, Matrix3: d.m3, Matrix4: d.m4, Color: d.color})
}

func (d *Device) LoadProgram(vertex, fragment string) error {
	if d.ProgramErr != nil {
		return d.ProgramErr
	}
	d.Programs = append(d.Programs, vertex)
	return nil
}

func (d *Device) LoadMesh(m mesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	d.Meshes = append(d.Meshes, m)
	return nil
}

func (d *Device) Enable(f frame.Feature) { d.Features = append(d.Features, f) }

// Reset forgets recorded draws.
func (d *Device) Reset() {
	d.Draws = d.Draws[:0]
}

// Scheduler holds at most one pending callback and runs it on Step.
type Scheduler struct {
	pending func(float64)
}

func (s *Scheduler) RequestFrame(fn func(now float64)) { s.pending = fn }

func (s *Scheduler) Pending() bool { return s.pending != nil }

// Step runs the pending callback at time now and reports whether one was
// pending.
func (s *Scheduler) Step(now float64) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(now)
	return true
}
