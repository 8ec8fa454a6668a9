package colorspace

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownColorspace is returned when a requested name is absent from
// a registry.
var ErrUnknownColorspace = errors.New("unknown colorspace")

// Registry is a set of colorspaces addressable by name. The zero value
// is not usable; call NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	spaces map[string]Colorspace
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{spaces: make(map[string]Colorspace)}
}

// Register adds a colorspace, replacing any previous entry of the same
// name.
func (r *Registry) Register(c Colorspace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spaces[c.Name()] = c
}

// Get returns the named colorspace or an error wrapping
// ErrUnknownColorspace.
func (r *Registry) Get(name string) (Colorspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.spaces[name]
	if !ok {
		return Colorspace{}, fmt.Errorf("%w: %q", ErrUnknownColorspace, name)
	}
	return c, nil
}

// Names lists the registered colorspace names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.spaces))
	for name := range r.spaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Default returns the registry holding the built-in colorspaces.
func Default() *Registry { return defaultRegistry }

// Get looks a colorspace up in the default registry.
func Get(name string) (Colorspace, error) { return defaultRegistry.Get(name) }

// Names lists the default registry contents.
func Names() []string { return defaultRegistry.Names() }

// Register adds a colorspace to the default registry.
func Register(c Colorspace) { defaultRegistry.Register(c) }
