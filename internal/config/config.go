// Package config loads the YAML settings shared by all scenes.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"glscenes/internal/camera"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Scene  string `yaml:"scene"`
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Log    Log    `yaml:"log"`
}

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	HiDPI      bool   `yaml:"hidpi"`
	VSync      bool   `yaml:"vsync"`
}

type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	// Speed is in world units per second.
	Speed       float64 `yaml:"speed"`
	Sensitivity float64 `yaml:"sensitivity"`
	// Policy overrides the scene's movement policy when set.
	Policy string `yaml:"policy"`
}

type Log struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

func Default() Config {
	return Config{
		Scene: "floating",
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "glscenes",
			HiDPI:  true,
			VSync:  true,
		},
		Camera: Camera{
			FOV:         60,
			Near:        1,
			Speed:       1000,
			Sensitivity: 0.01,
		},
		Log: Log{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		c := Default()
		return c, c.Validate()
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case !(c.Camera.FOV > 0 && c.Camera.FOV < 180):
		return fmt.Errorf("%w: camera fov %g outside (0, 180)", ErrInvalid, c.Camera.FOV)
	case !(c.Camera.Near > 0):
		return fmt.Errorf("%w: camera near %g must be positive", ErrInvalid, c.Camera.Near)
	case c.Camera.Speed < 0:
		return fmt.Errorf("%w: negative camera speed", ErrInvalid)
	}
	if c.Camera.Policy != "" {
		if _, err := camera.ParsePolicy(c.Camera.Policy); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
