package mesh

type rgb [3]uint8

// face is two triangles sharing one colour.
type face struct {
	color rgb
	verts [6][3]float32
}

var (
	front = rgb{200, 70, 120}
	back  = rgb{80, 70, 200}
)

var letterF = []face{
	// left column front
	{front, [6][3]float32{{0, 0, 0}, {0, 150, 0}, {30, 0, 0}, {0, 150, 0}, {30, 150, 0}, {30, 0, 0}}},
	// top rung front
	{front, [6][3]float32{{30, 0, 0}, {30, 30, 0}, {100, 0, 0}, {30, 30, 0}, {100, 30, 0}, {100, 0, 0}}},
	// middle rung front
	{front, [6][3]float32{{30, 60, 0}, {30, 90, 0}, {67, 60, 0}, {30, 90, 0}, {67, 90, 0}, {67, 60, 0}}},
	// left column back
	{back, [6][3]float32{{0, 0, 30}, {30, 0, 30}, {0, 150, 30}, {0, 150, 30}, {30, 0, 30}, {30, 150, 30}}},
	// top rung back
	{back, [6][3]float32{{30, 0, 30}, {100, 0, 30}, {30, 30, 30}, {30, 30, 30}, {100, 0, 30}, {100, 30, 30}}},
	// middle rung back
	{back, [6][3]float32{{30, 60, 30}, {67, 60, 30}, {30, 90, 30}, {30, 90, 30}, {67, 60, 30}, {67, 90, 30}}},
	// top
	{rgb{70, 200, 210}, [6][3]float32{{0, 0, 0}, {100, 0, 0}, {100, 0, 30}, {0, 0, 0}, {100, 0, 30}, {0, 0, 30}}},
	// top rung right
	{rgb{200, 200, 70}, [6][3]float32{{100, 0, 0}, {100, 30, 0}, {100, 30, 30}, {100, 0, 0}, {100, 30, 30}, {100, 0, 30}}},
	// under top rung
	{rgb{210, 100, 70}, [6][3]float32{{30, 30, 0}, {30, 30, 30}, {100, 30, 30}, {30, 30, 0}, {100, 30, 30}, {100, 30, 0}}},
	// between top rung and middle
	{rgb{210, 160, 70}, [6][3]float32{{30, 30, 0}, {30, 60, 30}, {30, 30, 30}, {30, 30, 0}, {30, 60, 0}, {30, 60, 30}}},
	// top of middle rung
	{rgb{70, 180, 210}, [6][3]float32{{30, 60, 0}, {67, 60, 30}, {30, 60, 30}, {30, 60, 0}, {67, 60, 0}, {67, 60, 30}}},
	// right of middle rung
	{rgb{100, 70, 210}, [6][3]float32{{67, 60, 0}, {67, 90, 30}, {67, 60, 30}, {67, 60, 0}, {67, 90, 0}, {67, 90, 30}}},
	// bottom of middle rung
	{rgb{76, 210, 100}, [6][3]float32{{30, 90, 0}, {30, 90, 30}, {67, 90, 30}, {30, 90, 0}, {67, 90, 30}, {67, 90, 0}}},
	// right of bottom
	{rgb{140, 210, 80}, [6][3]float32{{30, 90, 0}, {30, 150, 30}, {30, 90, 30}, {30, 90, 0}, {30, 150, 0}, {30, 150, 30}}},
	// bottom
	{rgb{90, 130, 110}, [6][3]float32{{0, 150, 0}, {0, 150, 30}, {30, 150, 30}, {0, 150, 0}, {30, 150, 30}, {30, 150, 0}}},
	// left side
	{rgb{160, 160, 220}, [6][3]float32{{0, 0, 0}, {0, 0, 30}, {0, 150, 30}, {0, 0, 0}, {0, 150, 30}, {0, 150, 0}}},
}

// LetterF3D is a solid F, 100 wide, 150 tall and 30 deep, with a colour per
// face. Y grows downward, so scenes flip it with a 180° Z rotation.
func LetterF3D() Mesh {
	n := len(letterF) * 6
	pos := make([]float32, 0, n*3)
	col := make([]uint8, 0, n*3)
	for _, f := range letterF {
		for _, v := range f.verts {
			pos = append(pos, v[:]...)
			col = append(col, f.color[:]...)
		}
	}
	return Mesh{
		Attributes: []Attribute{
			{Name: "a_position", Size: 3, Floats: pos},
			{Name: "a_color", Size: 3, Bytes: col, Normalized: true},
		},
		Count: n,
	}
}
