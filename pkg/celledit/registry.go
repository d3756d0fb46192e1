package celledit

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEditor is returned by Create when no factory is registered under a name.
var ErrUnknownEditor = errors.New("unknown cell editor")

// Factory builds an editor for a cell event.
type Factory func(ev *CellEvent) Editor

// Registry maps editor names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a registry with the built-in editors.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("textfield", NewTextField)
	r.Register("number", NewNumberField)
	r.Register("external", func(ev *CellEvent) Editor { return NewExternal("", ev) })
	return r
}

// Register adds or replaces a factory.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Create builds a new editor instance for ev.
func (r *Registry) Create(name string, ev *CellEvent) (Editor, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEditor, name)
	}
	return f(ev), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
