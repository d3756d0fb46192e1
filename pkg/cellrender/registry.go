package cellrender

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRenderer is returned by Get when no renderer is registered under a name.
var ErrUnknownRenderer = errors.New("unknown cell renderer")

// Registry holds named cell renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a registry with the built-in renderers.
func NewRegistry() *Registry {
	r := &Registry{renderers: make(map[string]Renderer)}
	r.Register("SimpleCell", SimpleCell)
	r.Register("TreeCell", TreeCell)
	r.Register("Number", Number)
	return r
}

// Register adds or replaces a renderer.
func (r *Registry) Register(name string, renderer Renderer) {
	r.renderers[name] = renderer
}

// Get returns the renderer registered under name.
func (r *Registry) Get(name string) (Renderer, error) {
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
	return renderer, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
