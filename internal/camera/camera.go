// Package camera holds the first-person camera state and the pure rules
// that move and orient it.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"glscenes/internal/xform"
)

// PitchLimit keeps the view basis away from the poles.
var PitchLimit = mgl64.DegToRad(89.9)

var up = xform.Vec3{0, 1, 0}

type State struct {
	Position xform.Vec3
	Yaw      float64
	Pitch    float64
}

// Look turns the camera by a pointer delta: moving right turns right (yaw
// decreases), moving down looks down. Pitch is clamped to ±PitchLimit.
func (s State) Look(dx, dy, sensitivity float64) State {
	s.Yaw -= dx * sensitivity
	s.Pitch = ClampPitch(s.Pitch - dy*sensitivity)
	return s
}

func ClampPitch(p float64) float64 {
	return math.Max(-PitchLimit, math.Min(PitchLimit, p))
}

// Orientation is RotationY(yaw)·RotationX(pitch).
func (s State) Orientation() xform.Mat4 {
	return xform.Multiply(xform.RotationY(s.Yaw), xform.RotationX(s.Pitch))
}

// World places the camera in the scene: Translation(position)·Orientation.
func (s State) World() xform.Mat4 {
	return xform.Multiply(xform.Translation(s.Position), s.Orientation())
}

// View is the inverse of World.
func (s State) View() (xform.Mat4, error) {
	return xform.Invert(s.World())
}

func (s State) Forward() xform.Vec3 {
	return xform.TransformPoint(s.Orientation(), xform.Vec3{0, 0, -1})
}

func (s State) Left() xform.Vec3 {
	return xform.TransformPoint(s.Orientation(), xform.Vec3{-1, 0, 0})
}
