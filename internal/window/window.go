// Package window hosts a scene in a GLFW window. The window schedules
// frames, delivers input and sizes the drawable area.
package window

import (
	"context"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"glscenes/internal/config"
	"glscenes/internal/frame"
	"glscenes/internal/input"
	"glscenes/internal/surface"
)

// DrawableSink receives the drawable size whenever it changes.
type DrawableSink interface {
	SetDrawableSize(width, height int)
}

type Window struct {
	win   *glfw.Window
	log   *zap.Logger
	title string

	sink     DrawableSink
	handler  func(input.Event)
	status   func() string
	pending  func(now float64)
	setTitle func(string)

	fps   int
	shown string

	captureEnabled bool
	captured       bool
	cursorKnown    bool
	cursorX        float64
	cursorY        float64
}

var (
	_ frame.Scheduler = (*Window)(nil)
	_ surface.Window  = (*Window)(nil)
)

// Open creates the window and makes its GL 4.1 core context current. It
// must be called from the main OS thread.
func Open(cfg config.Window, log *zap.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// The framebuffer follows the pixel-ratio rule; the drawable is taken
	// from it as is.
	glfw.WindowHint(glfw.ScaleToMonitor, hint(cfg.HiDPI))
	glfw.WindowHint(glfw.CocoaRetinaFramebuffer, hint(cfg.HiDPI))

	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{
		win:      win,
		log:      log,
		title:    cfg.Title,
		setTitle: win.SetTitle,
	}
	win.SetKeyCallback(w.onKey)
	win.SetCursorPosCallback(w.onCursor)
	win.SetMouseButtonCallback(w.onMouseButton)
	win.SetFocusCallback(w.onFocus)
	win.SetFramebufferSizeCallback(func(*glfw.Window, int, int) { w.fit() })
	return w, nil
}

// Attach connects the renderer that draws into the window and sizes it.
func (w *Window) Attach(sink DrawableSink) {
	w.sink = sink
	w.fit()
}

// OnInput sets the function that receives input events.
func (w *Window) OnInput(fn func(input.Event)) {
	w.handler = fn
}

// OnStatus sets a function whose result is appended to the title. The
// title follows it after every input event.
func (w *Window) OnStatus(fn func() string) {
	w.status = fn
	w.updateTitle()
}

// EnablePointerCapture lets a click on the window capture the pointer for
// mouse-look.
func (w *Window) EnablePointerCapture(enabled bool) {
	w.captureEnabled = enabled
	if !enabled {
		w.release()
	}
}

func (w *Window) RequestFrame(fn func(now float64)) {
	w.pending = fn
}

func (w *Window) Size() (int, int) {
	return w.win.GetSize()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) SetDrawableSize(width, height int) {
	if w.sink != nil {
		w.sink.SetDrawableSize(width, height)
	}
}

// Run processes events and frames until the window is closed, ctx is
// cancelled or nothing requests another frame.
func (w *Window) Run(ctx context.Context) error {
	frames := 0
	lastFPS := glfw.GetTime()

	for !w.win.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Input handlers run to completion before the frame observes them.
		glfw.PollEvents()

		fn := w.pending
		if fn == nil {
			return nil
		}
		w.pending = nil

		now := glfw.GetTime()
		fn(now)
		w.win.SwapBuffers()

		frames++
		if now-lastFPS >= 1.0 {
			w.fps = frames
			w.updateTitle()
			w.log.Debug("fps", zap.Int("frames", frames))
			frames = 0
			lastFPS = now
		}
	}
	return nil
}

func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) statusText() string {
	if w.status == nil {
		return ""
	}
	return w.status()
}

func (w *Window) titleText() string {
	t := fmt.Sprintf("%s | FPS: %d", w.title, w.fps)
	if w.shown != "" {
		t += " | " + w.shown
	}
	return t
}

func (w *Window) updateTitle() {
	w.shown = w.statusText()
	if w.setTitle != nil {
		w.setTitle(w.titleText())
	}
}

func (w *Window) fit() {
	width, height := surface.Fit(w)
	w.log.Debug("drawable resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float64("pixel_ratio", surface.Ratio(w)))
}

func (w *Window) emit(e input.Event) {
	if w.handler == nil {
		return
	}
	w.handler(e)
	if w.statusText() != w.shown {
		w.updateTitle()
	}
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	name := keyName(key)
	if name == "" || action == glfw.Repeat {
		return
	}
	if action == glfw.Press {
		if name == input.KeyEsc && w.captured {
			w.release()
			return
		}
		w.emit(input.KeyDown{Key: name})
		return
	}
	w.emit(input.KeyUp{Key: name})
}

func (w *Window) onCursor(_ *glfw.Window, x, y float64) {
	if w.cursorKnown {
		w.emit(input.PointerMove{DX: x - w.cursorX, DY: y - w.cursorY})
	}
	w.cursorX, w.cursorY, w.cursorKnown = x, y, true
}

func (w *Window) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press || !w.captureEnabled || w.captured {
		return
	}
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		w.win.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	w.captured = true
	w.cursorKnown = false
	w.log.Debug("pointer captured")
	w.emit(input.CaptureChanged{Captured: true})
}

func (w *Window) onFocus(_ *glfw.Window, focused bool) {
	if !focused {
		w.release()
	}
}

func (w *Window) release() {
	if !w.captured {
		return
	}
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	w.captured = false
	w.cursorKnown = false
	w.log.Debug("pointer released")
	w.emit(input.CaptureChanged{Captured: false})
}

func hint(on bool) int {
	if on {
		return glfw.True
	}
	return glfw.False
}

func keyName(key glfw.Key) string {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return string(rune('a' + key - glfw.KeyA))
	case key >= glfw.Key0 && key <= glfw.Key9:
		return string(rune('0' + key - glfw.Key0))
	}
	switch key {
	case glfw.KeySpace:
		return input.KeySpace
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return input.KeyShift
	case glfw.KeyTab:
		return input.KeyTab
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyRight:
		return input.KeyRight
	case glfw.KeyEscape:
		return input.KeyEsc
	}
	return ""
}
