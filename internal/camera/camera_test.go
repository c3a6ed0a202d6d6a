package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glscenes/internal/input"
	"glscenes/internal/xform"
)

const tol = 1e-9

func assertVec3(t *testing.T, want, got xform.Vec3, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta)
}

func TestPitchClamp(t *testing.T) {
	s := State{}
	for i := 0; i < 200; i++ {
		s = s.Look(0, -1, 0.01)
	}
	assert.Equal(t, PitchLimit, s.Pitch)

	for i := 0; i < 500; i++ {
		s = s.Look(0, 1, 0.01)
		assert.GreaterOrEqual(t, s.Pitch, -PitchLimit)
	}
	assert.Equal(t, -PitchLimit, s.Pitch)

	// one big step lands exactly on the boundary
	assert.Equal(t, PitchLimit, State{}.Look(0, -1e6, 1).Pitch)
	assert.Less(t, PitchLimit, math.Pi/2)
}

func TestLookYaw(t *testing.T) {
	s := State{Yaw: -0.4}.Look(10, 0, 0.01)
	assert.InDelta(t, -0.5, s.Yaw, tol)
	assert.Zero(t, s.Pitch)
}

func TestViewIsInverseOfWorld(t *testing.T) {
	s := State{Position: xform.Vec3{-800, 1700, 2000}, Yaw: -0.4, Pitch: -0.8}
	view, err := s.View()
	require.NoError(t, err)

	// the camera's own position ends up at the origin
	p := xform.TransformPoint(view, s.Position)
	assertVec3(t, xform.Vec3{}, p, 1e-6)

	id, prod := xform.Identity(), xform.Multiply(view, s.World())
	assert.InDeltaSlice(t, id[:], prod[:], 1e-9)

	// a point straight ahead lands on -Z
	ahead := xform.TransformPoint(view, s.Position.Add(s.Forward().Mul(10)))
	assertVec3(t, xform.Vec3{0, 0, -10}, ahead, 1e-6)
}

func TestDirectionBasis(t *testing.T) {
	s := State{}
	assertVec3(t, xform.Vec3{0, 0, -1}, s.Forward(), tol)
	assertVec3(t, xform.Vec3{-1, 0, 0}, s.Left(), tol)

	s.Yaw = math.Pi / 2
	// turned left by 90°, forward now points down -X
	assertVec3(t, xform.Vec3{-1, 0, 0}, s.Forward(), tol)
}

func TestDiagonalNormalized(t *testing.T) {
	s := State{Yaw: 0.7, Pitch: -0.3}
	in := Intent{Forward: 1, Left: 1}

	next, err := Advance(s, in, 1, 1, NormalizedDiagonal)
	require.NoError(t, err)
	assert.InDelta(t, 1, next.Position.Len(), tol)

	raw, err := Advance(State{Yaw: 0.7}, in, 1, 1, RawAxisSum)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, raw.Position.Len(), tol)
}

func TestSingleAxisNotRescaled(t *testing.T) {
	s := State{Position: xform.Vec3{1, 2, 3}}
	next, err := Advance(s, Intent{Up: -1}, 0.5, 4, NormalizedDiagonal)
	require.NoError(t, err)
	assertVec3(t, xform.Vec3{1, 0, 3}, next.Position, tol)

	// no intent, no movement
	same, err := Advance(s, Intent{}, 10, 100, NormalizedDiagonal)
	require.NoError(t, err)
	assert.Equal(t, s, same)
}

func TestAdvanceIsPure(t *testing.T) {
	s := State{Position: xform.Vec3{0, 0, 0}}
	_, err := Advance(s, Intent{Forward: 1}, 1, 5, RawAxisSum)
	require.NoError(t, err)
	assert.Equal(t, xform.Vec3{}, s.Position)
}

func TestIntentFrom(t *testing.T) {
	keys := input.Keys{}
	keys.Apply(input.KeyDown{Key: input.KeyW})
	keys.Apply(input.KeyDown{Key: input.KeyD})
	keys.Apply(input.KeyDown{Key: input.KeyShift})
	assert.Equal(t, Intent{Forward: 1, Left: -1, Up: -1}, IntentFrom(keys))

	keys.Apply(input.KeyDown{Key: input.KeyS})
	assert.Equal(t, 0, IntentFrom(keys).Forward)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("raw-axis-sum")
	require.NoError(t, err)
	assert.Equal(t, RawAxisSum, p)
	assert.Equal(t, "raw-axis-sum", p.String())

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, NormalizedDiagonal, p)

	_, err = ParsePolicy("diagonal")
	assert.Error(t, err)
}

func TestCapture(t *testing.T) {
	var c Capture
	s := State{Yaw: 1}

	assert.Equal(t, s, c.Move(s, 50, 50, 0.01))

	c.Set(true)
	moved := c.Move(s, 50, 0, 0.01)
	assert.InDelta(t, 0.5, moved.Yaw, tol)

	c.Set(false)
	assert.False(t, c.Captured())
	assert.Equal(t, moved, c.Move(moved, 50, 50, 0.01))
}
