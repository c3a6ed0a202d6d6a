// Package surface sizes the drawable area of a window to fill it.
package surface

import "math"

// Window is the part of a platform window the sizing rule needs.
type Window interface {
	// Size is the window size in screen coordinates.
	Size() (width, height int)
	// FramebufferSize is the size in pixels of what the context draws into.
	FramebufferSize() (width, height int)
	SetDrawableSize(width, height int)
}

// PixelRatio is the reported ratio on hiDPI surfaces, and 1 otherwise or
// when the platform reports nothing usable.
func PixelRatio(hiDPI bool, reported float64) float64 {
	if hiDPI && reported > 0 && !math.IsInf(reported, 0) {
		return reported
	}
	return 1
}

// DrawableSize is floor(size × ratio) on each axis. Platforms create the
// framebuffer of a hiDPI window this way.
func DrawableSize(width, height int, ratio float64) (int, int) {
	return int(math.Floor(float64(width) * ratio)), int(math.Floor(float64(height) * ratio))
}

// Ratio is the pixel ratio the framebuffer of w shows, or 1 before it has a
// size.
func Ratio(w Window) float64 {
	ww, _ := w.Size()
	fw, _ := w.FramebufferSize()
	if ww <= 0 {
		return 1
	}
	return PixelRatio(true, float64(fw)/float64(ww))
}

// Fit sizes the drawable area of w to its whole framebuffer and returns the
// result. Call it at startup and whenever the framebuffer is resized.
func Fit(w Window) (int, int) {
	width, height := w.FramebufferSize()
	w.SetDrawableSize(width, height)
	return width, height
}
