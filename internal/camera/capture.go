package camera

// Capture tracks whether the pointer is captured for mouse-look. Motion is
// only applied while captured.
type Capture struct {
	captured bool
}

func (c *Capture) Set(captured bool) {
	c.captured = captured
}

func (c *Capture) Captured() bool {
	return c.captured
}

func (c *Capture) Move(s State, dx, dy, sensitivity float64) State {
	if !c.captured {
		return s
	}
	return s.Look(dx, dy, sensitivity)
}
