package gui

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/plexus/internal/field"
)

var ErrUnknownBackend = errors.New("gui: unknown backend")

// Backend is a desktop window that hosts a simulator. Run blocks until the
// window is closed.
//
// raylib and ebiten each link their own GLFW, so a binary carries exactly
// one of them: raylib by default, ebiten with the ebiten build tag.
type Backend interface {
	Name() string
	Run(sim *field.Simulator, opts Options) error
}

var backends = map[string]Backend{}

func register(b Backend) { backends[b.Name()] = b }

func Lookup(name string) (Backend, error) {
	if name == "" {
		name = DefaultBackend
	}
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownBackend, name, Names())
	}
	return b, nil
}

func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run opens a window with the named backend.
func Run(backend string, sim *field.Simulator, opts Options) error {
	b, err := Lookup(backend)
	if err != nil {
		return err
	}
	return b.Run(sim, opts.withDefaults())
}
