package input

import (
	"fmt"
	"math"
)

// Slider is a range control. Values outside [Min, Max] are clamped.
type Slider struct {
	Name  string
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

func (s *Slider) Set(v float64) {
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

func (s *Slider) step() float64 {
	if s.Step > 0 {
		return s.Step
	}
	return 1
}

// Panel drives a list of sliders from the keyboard: tab selects the next
// slider, left and right step the selected one.
type Panel struct {
	sliders  []*Slider
	selected int
}

func NewPanel(sliders ...*Slider) *Panel {
	for _, s := range sliders {
		s.Set(s.Value)
	}
	return &Panel{sliders: sliders}
}

func (p *Panel) Selected() *Slider {
	if len(p.sliders) == 0 {
		return nil
	}
	return p.sliders[p.selected]
}

// Handle consumes key presses and slider changes and reports the resulting
// clamped value, if any.
func (p *Panel) Handle(e Event) (SliderChanged, bool) {
	if set, ok := e.(SliderChanged); ok {
		return p.set(set.Name, set.Value)
	}
	down, ok := e.(KeyDown)
	if !ok || len(p.sliders) == 0 {
		return SliderChanged{}, false
	}
	s := p.sliders[p.selected]
	switch down.Key {
	case KeyTab:
		p.selected = (p.selected + 1) % len(p.sliders)
		return SliderChanged{}, false
	case KeyLeft:
		s.Set(s.Value - s.step())
	case KeyRight:
		s.Set(s.Value + s.step())
	default:
		return SliderChanged{}, false
	}
	return SliderChanged{Name: s.Name, Value: s.Value}, true
}

func (p *Panel) set(name string, v float64) (SliderChanged, bool) {
	for _, s := range p.sliders {
		if s.Name == name {
			s.Set(v)
			return SliderChanged{Name: s.Name, Value: s.Value}, true
		}
	}
	return SliderChanged{}, false
}

func (p *Panel) Label() string {
	s := p.Selected()
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%s: %g [%g..%g] (tab: next, ←/→: adjust)", s.Name, s.Value, s.Min, s.Max)
}
