package frame

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Stats struct {
	Frames    int
	LastDelta float64
}

// Driver runs a scene on a Scheduler. It is not safe for concurrent use:
// the scheduler, input handlers and the driver share one thread of control.
type Driver struct {
	scene     Scene
	device    Device
	scheduler Scheduler
	log       *zap.Logger

	ctx     context.Context
	last    float64
	started bool
	stats   Stats

	err  error
	done chan struct{}
}

func NewDriver(scene Scene, device Device, scheduler Scheduler, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{
		scene:     scene,
		device:    device,
		scheduler: scheduler,
		log:       log,
		done:      make(chan struct{}),
	}
}

// Start sets the scene up and schedules the first frame. A setup failure is
// fatal and nothing is scheduled. The loop keeps rescheduling itself until
// ctx is cancelled or a frame fails.
func (d *Driver) Start(ctx context.Context) error {
	if err := d.scene.Setup(d.device); err != nil {
		err = fmt.Errorf("scene setup: %w", err)
		d.stop(err)
		return err
	}
	d.ctx = ctx
	d.scheduler.RequestFrame(d.tick)
	return nil
}

func (d *Driver) tick(now float64) {
	if err := d.ctx.Err(); err != nil {
		d.stop(err)
		return
	}

	dt := 0.0
	if d.started {
		dt = now - d.last
	}
	d.started = true
	d.last = now

	if err := d.scene.Update(now, dt); err != nil {
		d.fail("update", err)
		return
	}
	d.device.Clear()
	if err := d.scene.Draw(d.device); err != nil {
		d.fail("draw", err)
		return
	}

	d.stats.Frames++
	d.stats.LastDelta = dt
	d.scheduler.RequestFrame(d.tick)
}

func (d *Driver) fail(stage string, err error) {
	err = fmt.Errorf("frame %d %s: %w", d.stats.Frames, stage, err)
	d.log.Error("frame failed", zap.Error(err))
	d.stop(err)
}

func (d *Driver) stop(err error) {
	select {
	case <-d.done:
		return
	default:
	}
	d.err = err
	close(d.done)
}

// Done is closed once the loop has stopped.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Err reports why the loop stopped, or nil while it is running.
func (d *Driver) Err() error {
	select {
	case <-d.done:
		return d.err
	default:
		return nil
	}
}

func (d *Driver) Stats() Stats {
	return d.stats
}
