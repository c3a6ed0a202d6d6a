package xform

// Transform is the per-object translation, Euler rotation (radians) and
// scale of a model. It is edited directly by UI controls.
type Transform struct {
	Translation Vec3
	Rotation    Vec3
	Scale       Vec3
}

func NewTransform() Transform {
	return Transform{Scale: Vec3{1, 1, 1}}
}

// Matrix is T·Rx·Ry·Rz·S.
func (t Transform) Matrix() Mat4 {
	return Chain(
		Translation(t.Translation),
		RotationX(t.Rotation[0]),
		RotationY(t.Rotation[1]),
		RotationZ(t.Rotation[2]),
		Scale(t.Scale),
	)
}

type Transform2D struct {
	Translation Vec2
	Rotation    float64
	Scale       Vec2
}

func NewTransform2D() Transform2D {
	return Transform2D{Scale: Vec2{1, 1}}
}

// Matrix is T·R·S.
func (t Transform2D) Matrix() Mat3 {
	return Chain2D(
		Translation2D(t.Translation),
		Rotation2D(t.Rotation),
		Scale2D(t.Scale),
	)
}
