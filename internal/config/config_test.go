package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValid(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseOverlaysDefaults(t *testing.T) {
	c, err := Parse(strings.NewReader(`
scene: camera
window:
  width: 800
  hidpi: false
camera:
  policy: raw-axis-sum
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, "camera", c.Scene)
	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, 720, c.Window.Height)
	assert.False(t, c.Window.HiDPI)
	assert.Equal(t, 60.0, c.Camera.FOV)
	assert.Equal(t, "raw-axis-sum", c.Camera.Policy)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"zero width": "window: {width: 0}",
		"near":       "camera: {near: 0}",
		"fov":        "camera: {fov: 180}",
		"speed":      "camera: {speed: -1}",
		"policy":     "camera: {policy: sideways}",
		"level":      "log: {level: loud}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse(strings.NewReader("windw: {width: 3}"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glscenes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene: bounce\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bounce", c.Scene)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "configs", "glscenes.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
