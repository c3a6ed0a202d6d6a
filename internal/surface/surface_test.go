package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// window has a framebuffer built by the floor rule at ratio, as a platform
// creates it.
type window struct {
	w, h   int
	ratio  float64
	dw, dh int
}

func (w *window) Size() (int, int) { return w.w, w.h }

func (w *window) FramebufferSize() (int, int) { return DrawableSize(w.w, w.h, w.ratio) }

func (w *window) SetDrawableSize(x, y int) { w.dw, w.dh = x, y }

func TestFit(t *testing.T) {
	cases := []struct {
		name         string
		w, h         int
		ratio        float64
		wantW, wantH int
	}{
		{"standard", 1280, 720, 1, 1280, 720},
		{"retina", 1280, 720, 2, 2560, 1440},
		{"fractional", 1001, 667, 1.25, 1251, 833},
		{"fractional down", 333, 517, 1.5, 499, 775},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			win := &window{w: c.w, h: c.h, ratio: c.ratio}
			gw, gh := Fit(win)
			assert.Equal(t, c.wantW, gw)
			assert.Equal(t, c.wantH, gh)
			assert.Equal(t, c.wantW, win.dw)
			assert.Equal(t, c.wantH, win.dh)
		})
	}
}

func TestFitCoversFramebuffer(t *testing.T) {
	// the drawable is the framebuffer itself, never recomputed from the
	// window size, so no row or column is left unpainted
	for width := 100; width < 3000; width++ {
		win := &window{w: width, h: width/2 + 1, ratio: 1.5}
		fw, fh := win.FramebufferSize()
		gw, gh := Fit(win)
		if !assert.Equal(t, fw, gw, "window width %d", width) ||
			!assert.Equal(t, fh, gh, "window height %d", win.h) {
			return
		}
	}

	// a window at 157 with a 235 framebuffer would lose a column to
	// floor(157 × 235/157)
	fixed := &fixedWindow{w: 157, h: 100, fw: 235, fh: 150}
	gw, gh := Fit(fixed)
	assert.Equal(t, 235, gw)
	assert.Equal(t, 150, gh)
}

type fixedWindow struct {
	w, h, fw, fh int
	dw, dh       int
}

func (w *fixedWindow) Size() (int, int) { return w.w, w.h }

func (w *fixedWindow) FramebufferSize() (int, int) { return w.fw, w.fh }

func (w *fixedWindow) SetDrawableSize(x, y int) { w.dw, w.dh = x, y }

func TestFitFollowsLowDPIFramebuffer(t *testing.T) {
	// a platform that ignores the low-DPI request still hands out a 2x
	// framebuffer; drawing fills all of it
	win := &fixedWindow{w: 1280, h: 720, fw: 2560, fh: 1440}
	gw, gh := Fit(win)
	assert.Equal(t, 2560, gw)
	assert.Equal(t, 1440, gh)
	assert.Equal(t, 2560, win.dw)
	assert.Equal(t, 1440, win.dh)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 2.0, Ratio(&fixedWindow{w: 1280, h: 720, fw: 2560, fh: 1440}))
	assert.Equal(t, 1.0, Ratio(&fixedWindow{w: 800, h: 600, fw: 800, fh: 600}))
	assert.Equal(t, 1.0, Ratio(&fixedWindow{}))
}

func TestDrawableSizeFloors(t *testing.T) {
	w, h := DrawableSize(1001, 667, 1.25)
	assert.Equal(t, int(math.Floor(1001*1.25)), w)
	assert.Equal(t, int(math.Floor(667*1.25)), h)
}

func TestPixelRatio(t *testing.T) {
	assert.Equal(t, 1.0, PixelRatio(false, 3))
	assert.Equal(t, 3.0, PixelRatio(true, 3))
	assert.Equal(t, 1.0, PixelRatio(true, -1))
	assert.Equal(t, 1.0, PixelRatio(true, math.Inf(1)))
}
