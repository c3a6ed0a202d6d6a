package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func Identity2D() Mat3 {
	return mgl64.Ident3()
}

func Translation2D(v Vec2) Mat3 {
	return mgl64.Translate2D(v[0], v[1])
}

// Rotation2D rotates counter-clockwise in a Y-up frame. Under Projection2D
// pixel space is Y-down, so positive angles appear clockwise on screen.
func Rotation2D(angle float64) Mat3 {
	return mgl64.HomogRotate2D(angle)
}

func Scale2D(v Vec2) Mat3 {
	return mgl64.Scale2D(v[0], v[1])
}

func Multiply2D(a, b Mat3) Mat3 {
	return a.Mul3(b)
}

func Chain2D(ms ...Mat3) Mat3 {
	out := mgl64.Ident3()
	for _, m := range ms {
		out = out.Mul3(m)
	}
	return out
}

// Projection2D maps pixel coordinates (origin top-left, Y down) of a
// width×height surface to clip space (-1..1, Y up).
func Projection2D(width, height float64) (Mat3, error) {
	if !(width > 0) || !(height > 0) {
		return Mat3{}, ErrInvalidProjection
	}
	return Mat3{
		2 / width, 0, 0,
		0, -2 / height, 0,
		-1, 1, 1,
	}, nil
}

func Invert2D(m Mat3) (Mat3, error) {
	bound := 1.0
	for i := 0; i < 3; i++ {
		bound *= m.Col(i).Len()
	}
	if singular(m.Det(), bound) {
		return Mat3{}, ErrNotInvertible
	}
	k := 1 / math.Cbrt(bound)
	return m.Mul(k).Inv().Mul(k), nil
}

func TransformPoint2D(m Mat3, p Vec2) Vec2 {
	v := m.Mul3x1(p.Vec3(1))
	if v[2] != 0 && v[2] != 1 {
		return v.Vec2().Mul(1 / v[2])
	}
	return v.Vec2()
}
