// Package input carries keyboard, pointer and slider events from the window
// to the active scene.
package input

// Key names. Printable keys use their lower-case character.
const (
	KeyW     = "w"
	KeyA     = "a"
	KeyS     = "s"
	KeyD     = "d"
	KeySpace = " "
	KeyShift = "shift"
	KeyTab   = "tab"
	KeyLeft  = "left"
	KeyRight = "right"
	KeyEsc   = "escape"
)

type Event interface {
	isEvent()
}

type KeyDown struct{ Key string }

type KeyUp struct{ Key string }

// PointerMove reports relative cursor motion in screen pixels.
type PointerMove struct{ DX, DY float64 }

// CaptureChanged reports that the environment captured or released the
// pointer.
type CaptureChanged struct{ Captured bool }

type SliderChanged struct {
	Name  string
	Value float64
}

func (KeyDown) isEvent()        {}
func (KeyUp) isEvent()          {}
func (PointerMove) isEvent()    {}
func (CaptureChanged) isEvent() {}
func (SliderChanged) isEvent()  {}

// Handler is implemented by scenes that react to input. Handle runs to
// completion before the next frame observes its effects.
type Handler interface {
	Handle(e Event)
}

// Keys is the set of currently held keys.
type Keys map[string]bool

func (k Keys) Apply(e Event) {
	switch e := e.(type) {
	case KeyDown:
		k[e.Key] = true
	case KeyUp:
		delete(k, e.Key)
	}
}

func (k Keys) Held(key string) bool {
	return k[key]
}

// Axis returns +1, -1 or 0 from a pair of opposing keys.
func (k Keys) Axis(positive, negative string) int {
	v := 0
	if k[positive] {
		v++
	}
	if k[negative] {
		v--
	}
	return v
}
