package datamodel

import (
	"errors"

	"github.com/dkoosis/fogrid/pkg/cellrender"
	"github.com/dkoosis/fogrid/pkg/celledit"
)

// EditorRegistry creates cell editors by name.
type EditorRegistry interface {
	Create(name string, ev *celledit.CellEvent) (celledit.Editor, error)
}

var (
	errNoRendererHost = errors.New("cell render config has no host")
	errNoEditors      = errors.New("no cell editor registry")
)

// InstallHooks fills GetCell and GetCellEditorAt with registry lookups when
// the provider does not resolve renderers or editors itself.
func InstallHooks(m *Model, editors EditorRegistry) {
	Bind(m, Model{
		GetCell: defaultGetCell,
		GetCellEditorAt: func(_, _ int, editorName string, ev *celledit.CellEvent) (celledit.Editor, error) {
			if editors == nil {
				return nil, errNoEditors
			}
			return editors.Create(editorName, ev)
		},
	}, false)
}

// defaultGetCell returns the renderer registered under rendererName on the
// host that issued the render.
func defaultGetCell(cfg *cellrender.Config, rendererName string) (cellrender.Renderer, error) {
	if cfg == nil || cfg.Host == nil {
		return nil, errNoRendererHost
	}
	return cfg.Host.CellRenderers().Get(rendererName)
}
