// Package xform builds and composes homogeneous 2D (Mat3) and 3D (Mat4)
// transforms.
//
// Matrices are column-major, the layout OpenGL expects. Multiply(a, b)
// returns a·b: b is applied to a point first, then a.
package xform

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type (
	Vec2 = mgl64.Vec2
	Vec3 = mgl64.Vec3
	Vec4 = mgl64.Vec4
	Mat3 = mgl64.Mat3
	Mat4 = mgl64.Mat4
)

var (
	ErrNotInvertible     = errors.New("xform: matrix is not invertible")
	ErrDegenerate        = errors.New("xform: degenerate basis")
	ErrInvalidProjection = errors.New("xform: invalid projection parameters")
)

// A matrix is treated as singular when |det| is at or below this fraction
// of the product of its column lengths. That product bounds |det|
// (Hadamard), so the test does not depend on the matrix's scale.
const invertEpsilon = 1e-12

// Vectors shorter than this cannot be normalized.
const lengthEpsilon = 1e-12

func Identity() Mat4 {
	return mgl64.Ident4()
}

func Translation(v Vec3) Mat4 {
	return mgl64.Translate3D(v[0], v[1], v[2])
}

// RotationX rotates counter-clockwise about +X when looking from +X toward
// the origin.
func RotationX(angle float64) Mat4 {
	return mgl64.HomogRotate3DX(angle)
}

func RotationY(angle float64) Mat4 {
	return mgl64.HomogRotate3DY(angle)
}

func RotationZ(angle float64) Mat4 {
	return mgl64.HomogRotate3DZ(angle)
}

// Scale returns a diagonal scale matrix. Negative factors mirror an axis;
// zero factors collapse it and leave the matrix non-invertible.
func Scale(v Vec3) Mat4 {
	return mgl64.Scale3D(v[0], v[1], v[2])
}

func Multiply(a, b Mat4) Mat4 {
	return a.Mul4(b)
}

// Chain multiplies left to right, so the last matrix is applied first.
func Chain(ms ...Mat4) Mat4 {
	out := mgl64.Ident4()
	for _, m := range ms {
		out = out.Mul4(m)
	}
	return out
}

// Perspective returns a right-handed projection with a finite far plane.
func Perspective(fovY, aspect, near, far float64) (Mat4, error) {
	if err := checkFrustum(fovY, aspect, near); err != nil {
		return Mat4{}, err
	}
	if !(far > near) {
		return Mat4{}, ErrInvalidProjection
	}
	return mgl64.Perspective(fovY, aspect, near, far), nil
}

// InfinitePerspective is Perspective with the far plane at infinity.
func InfinitePerspective(fovY, aspect, near float64) (Mat4, error) {
	if err := checkFrustum(fovY, aspect, near); err != nil {
		return Mat4{}, err
	}
	f := 1 / math.Tan(fovY/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -1, -1,
		0, 0, -2 * near, 0,
	}, nil
}

func checkFrustum(fovY, aspect, near float64) error {
	switch {
	case !(near > 0), !(aspect > 0):
		return ErrInvalidProjection
	case !(fovY > 0 && fovY < math.Pi):
		return ErrInvalidProjection
	}
	return nil
}

// TargetTo returns the world matrix of an object placed at position whose
// -Z axis faces target.
func TargetTo(position, target, up Vec3) (Mat4, error) {
	z, x, y, err := basis(position, target, up)
	if err != nil {
		return Mat4{}, err
	}
	return Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		position[0], position[1], position[2], 1,
	}, nil
}

// LookAt returns the view matrix of an eye looking at target. It is the
// inverse of TargetTo(eye, target, up).
func LookAt(eye, target, up Vec3) (Mat4, error) {
	z, x, y, err := basis(eye, target, up)
	if err != nil {
		return Mat4{}, err
	}
	return Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}, nil
}

// basis returns the orthonormal axes shared by LookAt and TargetTo: z points
// from target back toward eye.
func basis(eye, target, up Vec3) (z, x, y Vec3, err error) {
	z, err = Normalize(eye.Sub(target))
	if err != nil {
		return z, x, y, err
	}
	x, err = Normalize(up.Cross(z))
	if err != nil {
		return z, x, y, err
	}
	return z, x, z.Cross(x), nil
}

func Invert(m Mat4) (Mat4, error) {
	bound := 1.0
	for i := 0; i < 4; i++ {
		bound *= m.Col(i).Len()
	}
	if singular(m.Det(), bound) {
		return Mat4{}, ErrNotInvertible
	}
	// mgl64 gives up below |det| 1e-20, so invert at unit scale.
	k := 1 / math.Pow(bound, 1.0/4)
	return m.Mul(k).Inv().Mul(k), nil
}

func singular(det, bound float64) bool {
	return math.IsNaN(det) || math.Abs(det) <= invertEpsilon*bound
}

func TransformPoint(m Mat4, p Vec3) Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] != 0 && v[3] != 1 {
		return v.Vec3().Mul(1 / v[3])
	}
	return v.Vec3()
}

func Normalize(v Vec3) (Vec3, error) {
	l := v.Len()
	if l <= lengthEpsilon || math.IsNaN(l) {
		return Vec3{}, ErrDegenerate
	}
	return v.Mul(1 / l), nil
}
