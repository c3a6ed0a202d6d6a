// Package demo holds the runnable scenes and the registry that selects one
// by name.
package demo

import (
	"errors"
	"fmt"
	"slices"

	"glscenes/internal/config"
	"glscenes/internal/frame"
)

var ErrUnknownScene = errors.New("unknown scene")

// PointerCapturer is implemented by scenes that look around with the
// pointer. The window captures the pointer on click for them.
type PointerCapturer interface {
	WantsPointerCapture() bool
}

// Statuser is implemented by scenes with a status line worth showing in the
// window title.
type Statuser interface {
	Status() string
}

type constructor func(cfg config.Config) (frame.Scene, error)

var registry = map[string]constructor{
	"bounce":    newBounce,
	"transform": newTransform,
	"threedee":  newThreedee,
	"camera":    newWalk,
	"floating":  newFloating,
}

// New builds the named scene from cfg.
func New(name string, cfg config.Config) (frame.Scene, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, Names())
	}
	scene, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return scene, nil
}

// Names lists the registered scenes in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
