// Package mesh holds the static vertex data the scenes upload once at
// startup.
package mesh

import "fmt"

// Attribute is one vertex attribute stream. Exactly one of Floats or Bytes
// is set; Size is the number of components per vertex.
type Attribute struct {
	Name       string
	Size       int
	Floats     []float32
	Bytes      []uint8
	Normalized bool
}

func (a Attribute) Len() int {
	if a.Floats != nil {
		return len(a.Floats)
	}
	return len(a.Bytes)
}

type Mesh struct {
	Attributes []Attribute
	Count      int
}

func (m Mesh) Validate() error {
	if m.Count <= 0 {
		return fmt.Errorf("mesh: vertex count %d", m.Count)
	}
	for _, a := range m.Attributes {
		if (a.Floats == nil) == (a.Bytes == nil) {
			return fmt.Errorf("mesh: attribute %q needs exactly one of float or byte data", a.Name)
		}
		if a.Size <= 0 || a.Len() != m.Count*a.Size {
			return fmt.Errorf("mesh: attribute %q has %d values, want %d×%d", a.Name, a.Len(), m.Count, a.Size)
		}
	}
	return nil
}

// UnitQuad is two triangles covering (0,0)-(1,1).
func UnitQuad() Mesh {
	return Mesh{
		Attributes: []Attribute{{
			Name: "a_position",
			Size: 2,
			Floats: []float32{
				0, 0, 1, 0, 0, 1,
				0, 1, 1, 0, 1, 1,
			},
		}},
		Count: 6,
	}
}

// LetterF2D is a flat F in pixel units, 100 wide and 150 tall.
func LetterF2D() Mesh {
	return Mesh{
		Attributes: []Attribute{{
			Name: "a_position",
			Size: 2,
			Floats: []float32{
				// left column
				0, 0, 30, 0, 0, 150,
				0, 150, 30, 0, 30, 150,

				// top rung
				30, 0, 100, 0, 30, 30,
				30, 30, 100, 0, 100, 30,

				// middle rung
				30, 60, 67, 60, 30, 90,
				30, 90, 67, 60, 67, 90,
			},
		}},
		Count: 18,
	}
}

// Floor is a 100×100 panel on the XZ plane. The checkerboard is computed
// in the fragment shader from the position.
func Floor() Mesh {
	return Mesh{
		Attributes: []Attribute{{
			Name: "a_position",
			Size: 3,
			Floats: []float32{
				0, 0, 0,
				100, 0, 0,
				0, 0, 100,
				100, 0, 0,
				100, 0, 100,
				0, 0, 100,
			},
		}},
		Count: 6,
	}
}
