// Package grid is the terminal data grid host. It owns the renderer and
// editor registries and the event canvas, and reaches its data only through
// the bound data model.
package grid

import (
	"fmt"

	"github.com/dkoosis/fogrid/pkg/canvas"
	"github.com/dkoosis/fogrid/pkg/cellrender"
	"github.com/dkoosis/fogrid/pkg/celledit"
	"github.com/dkoosis/fogrid/pkg/datamodel"
)

// Grid is a data grid bound to one provider at a time.
type Grid struct {
	*Adapter

	renderers *cellrender.Registry
	editors   *celledit.Registry
	canvas    *canvas.Canvas
	theme     cellrender.Theme
	warned    *datamodel.WarnedSet
}

// Option configures a Grid.
type Option func(*Grid)

// WithTheme sets the cell theme.
func WithTheme(theme cellrender.Theme) Option {
	return func(g *Grid) { g.theme = theme }
}

// WithWarnedSet replaces the process-wide warning set, mainly for tests.
func WithWarnedSet(w *datamodel.WarnedSet) Option {
	return func(g *Grid) { g.warned = w }
}

// WithCanvas delivers events to an existing canvas.
func WithCanvas(c *canvas.Canvas) Option {
	return func(g *Grid) { g.canvas = c }
}

// New creates a grid bound to the default provider.
func New(opts ...Option) *Grid {
	g := &Grid{
		renderers: cellrender.NewRegistry(),
		editors:   celledit.NewRegistry(),
		canvas:    canvas.New(),
		theme:     cellrender.DefaultTheme(),
		warned:    datamodel.DefaultWarned,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Adapter = NewAdapter(g, g.canvas, g.editors, g.warned)
	g.Bind(Options{})
	return g
}

// CellRenderers returns the renderer registry.
func (g *Grid) CellRenderers() *cellrender.Registry { return g.renderers }

// CellEditors returns the editor registry.
func (g *Grid) CellEditors() *celledit.Registry { return g.editors }

// Canvas returns the event surface provider notifications are delivered to.
func (g *Grid) Canvas() *canvas.Canvas { return g.canvas }

// Theme returns the cell theme.
func (g *Grid) Theme() cellrender.Theme { return g.theme }

// SetTheme replaces the cell theme.
func (g *Grid) SetTheme(theme cellrender.Theme) { g.theme = theme }

// EditorFor resolves an editor for the cell at (col, row) through the data
// model's editor hook. Committing the editor writes through SetValue, or fails
// with celledit.ErrReadOnly when the provider does not implement it.
func (g *Grid) EditorFor(col, row int, editorName string) (celledit.Editor, error) {
	m := g.Model()
	schema := m.GetSchema()
	ev := &celledit.CellEvent{
		Col:   col,
		Row:   row,
		Value: m.GetValue(col, row),
		Commit: func(v any) error {
			if !m.Provides("SetValue") {
				return fmt.Errorf("%w: row %d, column %d", celledit.ErrReadOnly, row+1, col+1)
			}
			m.SetValue(col, row, v)
			return nil
		},
	}
	if col >= 0 && col < len(schema) {
		ev.Column = schema[col].Name
	}
	return m.GetCellEditorAt(col, row, editorName, ev)
}

// EditorName picks the editor for a column: "number" for numeric columns,
// "textfield" otherwise.
func (g *Grid) EditorName(col int) string {
	schema := g.Schema()
	if col >= 0 && col < len(schema) && schema[col].Type == "number" {
		return "number"
	}
	return "textfield"
}
