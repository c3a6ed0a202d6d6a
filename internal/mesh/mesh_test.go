package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshesValid(t *testing.T) {
	for name, m := range map[string]Mesh{
		"quad":  UnitQuad(),
		"f2d":   LetterF2D(),
		"f3d":   LetterF3D(),
		"floor": Floor(),
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, m.Validate())
		})
	}
}

func TestLetterF3D(t *testing.T) {
	m := LetterF3D()
	assert.Equal(t, 16*6, m.Count)

	pos := m.Attributes[0].Floats
	lo, hi := [3]float32{}, [3]float32{}
	for i := 0; i < len(pos); i += 3 {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], pos[i+k])
			hi[k] = max(hi[k], pos[i+k])
		}
	}
	assert.Equal(t, [3]float32{0, 0, 0}, lo)
	assert.Equal(t, [3]float32{100, 150, 30}, hi)

	col := m.Attributes[1]
	assert.True(t, col.Normalized)
	assert.Equal(t, []uint8{200, 70, 120}, col.Bytes[:3])
	assert.Equal(t, []uint8{160, 160, 220}, col.Bytes[len(col.Bytes)-3:])
}

func TestValidateRejects(t *testing.T) {
	bad := Mesh{Attributes: []Attribute{{Name: "a_position", Size: 2, Floats: []float32{0, 0, 1}}}, Count: 2}
	assert.Error(t, bad.Validate())

	both := Mesh{Attributes: []Attribute{{Name: "a", Size: 1, Floats: []float32{0}, Bytes: []uint8{0}}}, Count: 1}
	assert.Error(t, both.Validate())

	assert.Error(t, Mesh{}.Validate())
}
