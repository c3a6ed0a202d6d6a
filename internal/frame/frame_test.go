package frame_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glscenes/internal/camera"
	"glscenes/internal/frame"
	"glscenes/internal/frame/frametest"
	"glscenes/internal/xform"
)

type scene struct {
	setupErr  error
	updateErr error
	updates   [][2]float64
	draws     int
}

func (s *scene) Setup(d frame.Device) error {
	if s.setupErr != nil {
		return s.setupErr
	}
	return d.LoadProgram("vs", "fs")
}

func (s *scene) Update(now, dt float64) error {
	s.updates = append(s.updates, [2]float64{now, dt})
	return s.updateErr
}

func (s *scene) Draw(surf frame.Surface) error {
	s.draws++
	surf.DrawTriangles(0, 3)
	return nil
}

func TestDriverLoop(t *testing.T) {
	sc := &scene{}
	dev := frametest.NewDevice(640, 480)
	sched := &frametest.Scheduler{}
	d := frame.NewDriver(sc, dev, sched, nil)

	require.NoError(t, d.Start(context.Background()))
	assert.Len(t, dev.Programs, 1)

	for _, now := range []float64{1.0, 1.5, 1.75} {
		require.True(t, sched.Step(now))
	}
	assert.Equal(t, [][2]float64{{1.0, 0}, {1.5, 0.5}, {1.75, 0.25}}, sc.updates)
	assert.Equal(t, 3, sc.draws)
	assert.Equal(t, 3, dev.Clears)
	assert.Equal(t, frame.Stats{Frames: 3, LastDelta: 0.25}, d.Stats())

	// always rescheduled while running
	assert.True(t, sched.Pending())
	assert.NoError(t, d.Err())
}

func TestDriverCancel(t *testing.T) {
	sc := &scene{}
	sched := &frametest.Scheduler{}
	ctx, cancel := context.WithCancel(context.Background())
	d := frame.NewDriver(sc, frametest.NewDevice(1, 1), sched, nil)
	require.NoError(t, d.Start(ctx))

	sched.Step(0)
	cancel()
	sched.Step(1)

	assert.False(t, sched.Pending())
	assert.Len(t, sc.updates, 1)
	assert.ErrorIs(t, d.Err(), context.Canceled)
	<-d.Done()
}

func TestDriverSetupFailure(t *testing.T) {
	boom := errors.New("compile vertex shader")
	sched := &frametest.Scheduler{}
	d := frame.NewDriver(&scene{setupErr: boom}, frametest.NewDevice(1, 1), sched, nil)

	err := d.Start(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, sched.Pending())
	assert.ErrorIs(t, d.Err(), boom)
}

func TestDriverUpdateFailureStops(t *testing.T) {
	sc := &scene{updateErr: xform.ErrNotInvertible}
	sched := &frametest.Scheduler{}
	d := frame.NewDriver(sc, frametest.NewDevice(1, 1), sched, nil)
	require.NoError(t, d.Start(context.Background()))

	sched.Step(0)
	assert.False(t, sched.Pending())
	assert.Zero(t, sc.draws)
	assert.ErrorIs(t, d.Err(), xform.ErrNotInvertible)
}

func TestCompose(t *testing.T) {
	cam := camera.State{Position: xform.Vec3{-800, 1700, 2000}, Yaw: -0.4, Pitch: -0.8}
	lens := frame.Lens{FOV: math.Pi / 3, Near: 1}

	v, err := frame.Compose(cam, lens, 16.0/9)
	require.NoError(t, err)

	proj, err := xform.InfinitePerspective(math.Pi/3, 16.0/9, 1)
	require.NoError(t, err)
	view, err := cam.View()
	require.NoError(t, err)

	assert.Equal(t, proj, v.Projection)
	assert.Equal(t, view, v.View)
	assert.Equal(t, xform.Multiply(proj, view), v.ViewProjection)

	model := xform.Translation(xform.Vec3{5, 0, 0})
	assert.Equal(t, xform.Multiply(v.ViewProjection, model), v.MVP(model))
}

func TestComposeErrors(t *testing.T) {
	_, err := frame.Compose(camera.State{}, frame.Lens{FOV: 1, Near: 0}, 1)
	assert.ErrorIs(t, err, xform.ErrInvalidProjection)

	_, err = frame.Compose(camera.State{}, frame.Lens{FOV: 1, Near: 1, Far: 2000}, 0)
	assert.ErrorIs(t, err, xform.ErrInvalidProjection)
}

func TestAspect(t *testing.T) {
	assert.Equal(t, 2.0, frame.Aspect(frametest.NewDevice(200, 100)))
	assert.Equal(t, 1.0, frame.Aspect(frametest.NewDevice(0, 100)))
}
