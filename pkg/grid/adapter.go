package grid

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/dkoosis/fogrid/pkg/datamodel"
	"github.com/dkoosis/fogrid/pkg/datamodel/local"
)

// Options selects the provider Bind attaches.
type Options struct {
	// Provider is a ready-made provider instance. It wins over New.
	Provider any
	// New constructs the provider when Provider is nil.
	New func() any
	// Metadata seeds the provider's metadata store. Nil means empty.
	Metadata datamodel.MetadataStore
}

// DefaultProvider constructs the provider used when Options names none.
var DefaultProvider = func() any { return local.New() }

// Adapter owns the bound data model and forwards the grid's data access to it.
type Adapter struct {
	host    any
	sink    datamodel.Sink
	editors datamodel.EditorRegistry
	warned  *datamodel.WarnedSet

	provider any
	model    *datamodel.Model
}

// NewAdapter creates an unbound adapter. host is what the deprecated
// Model.Grid accessor returns; sink receives bridged provider events;
// editors backs the default editor hook. A nil warned uses
// datamodel.DefaultWarned.
func NewAdapter(host any, sink datamodel.Sink, editors datamodel.EditorRegistry, warned *datamodel.WarnedSet) *Adapter {
	if warned == nil {
		warned = datamodel.DefaultWarned
	}
	return &Adapter{host: host, sink: sink, editors: editors, warned: warned}
}

// Bind attaches the provider selected by opts and reports whether the active
// provider changed. Binding the instance that is already active does nothing.
func (a *Adapter) Bind(opts Options) bool {
	p := resolveProvider(opts)
	if a.model != nil && sameInstance(p, a.provider) {
		return false
	}

	m := datamodel.NewModel(p)
	provided := m.Capabilities()

	datamodel.InjectFallbacks(m, a.sink)
	datamodel.InstallHooks(m, a.editors)
	m.SetMetadataStore(opts.Metadata)
	datamodel.InstallDeprecations(m, a.host, a.warned)
	datamodel.InstallCharMapAliases(m.DrillDownCharMap())

	a.provider, a.model = p, m
	datamodel.Logger().Debug("data model bound",
		zap.String("provider", fmt.Sprintf("%T", p)),
		zap.Strings("provided", provided))
	return true
}

func resolveProvider(opts Options) any {
	switch {
	case opts.Provider != nil:
		return opts.Provider
	case opts.New != nil:
		return opts.New()
	default:
		return DefaultProvider()
	}
}

// sameInstance reports reference identity. Only pointer-like values have an
// identity; any other value is a fresh instance each time it is bound.
func sameInstance(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return !va.IsNil() && va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

// Model returns the bound data model.
func (a *Adapter) Model() *datamodel.Model { return a.model }

// Provider returns the bound provider.
func (a *Adapter) Provider() any { return a.provider }

func (a *Adapter) Schema() datamodel.Schema { return a.model.GetSchema() }

func (a *Adapter) SetSchema(schema datamodel.Schema) { a.model.SetSchema(schema) }

// DrillDownCharMap returns the provider's drill-down characters, or nil.
func (a *Adapter) DrillDownCharMap() *datamodel.CharMap { return a.model.DrillDownCharMap() }

func (a *Adapter) IsDrillDown(col int) bool { return a.model.IsDrillDown(col) }

func (a *Adapter) Click(row int) bool { return a.model.Click(row) }

// CellClicked reports whether a click on (col, row) was consumed: col must be
// a drill-down column and the provider must report a state change.
func (a *Adapter) CellClicked(col, row int) bool {
	return a.IsDrillDown(col) && a.Click(row)
}

// Reindex asks the provider to rebuild its row index.
func (a *Adapter) Reindex() { a.model.Apply() }

func (a *Adapter) RowCount() int { return a.model.GetRowCount() }

func (a *Adapter) Row(row int) datamodel.Row { return a.model.GetRow(row) }

func (a *Adapter) Data() []datamodel.Row { return a.model.GetData() }
