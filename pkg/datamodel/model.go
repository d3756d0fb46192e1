package datamodel

import (
	"reflect"
	"slices"

	"github.com/dkoosis/fogrid/pkg/cellrender"
	"github.com/dkoosis/fogrid/pkg/celledit"
)

// Column describes one schema column.
type Column struct {
	Name   string `yaml:"name" json:"name"`
	Header string `yaml:"header,omitempty" json:"header,omitempty"`
	Type   string `yaml:"type,omitempty" json:"type,omitempty"` // "string", "number"
}

// Schema is the ordered column list of a data model.
type Schema []Column

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Row is one record keyed by column name.
type Row map[string]any

// Reserved row keys a tree-shaped provider sets so renderers can draw the
// drill-down column. ExpandedKey is absent on leaf rows.
const (
	DepthKey    = "__DEPTH"
	ExpandedKey = "__EXPANDED"
)

// Depth returns the tree depth recorded on the row.
func (r Row) Depth() int {
	d, _ := r[DepthKey].(int)
	return d
}

// Expandable reports whether the row has children, and whether they are shown.
func (r Row) Expandable() (expandable, expanded bool) {
	v, ok := r[ExpandedKey].(bool)
	return ok, v
}

// RowMetadata holds per-row properties such as height or selection state.
type RowMetadata map[string]any

// MetadataStore maps row index to row metadata.
type MetadataStore map[int]RowMetadata

// DispatchFunc sends a named notification from a provider to the host.
type DispatchFunc func(name string, detail any) error

// Capability interfaces. A provider implements whichever subset it supports.
type (
	SchemaGetter interface {
		GetSchema() Schema
	}
	SchemaSetter interface {
		SetSchema(Schema)
	}
	ColumnCounter interface {
		GetColumnCount() int
	}
	DrillDowner interface {
		IsDrillDown(col int) bool
	}
	Clicker interface {
		Click(row int) bool
	}
	Applier interface {
		Apply()
	}
	RowCounter interface {
		GetRowCount() int
	}
	RowGetter interface {
		GetRow(row int) Row
	}
	DataGetter interface {
		GetData() []Row
	}
	ValueGetter interface {
		GetValue(col, row int) any
	}
	ValueSetter interface {
		SetValue(col, row int, v any)
	}
	MetadataStoreGetter interface {
		GetMetadataStore() MetadataStore
	}
	MetadataStoreSetter interface {
		SetMetadataStore(MetadataStore)
	}
	RowMetadataGetter interface {
		GetRowMetadata(row int, create bool) RowMetadata
	}
	RowMetadataSetter interface {
		SetRowMetadata(row int, md RowMetadata)
	}
	CellResolver interface {
		GetCell(cfg *cellrender.Config, rendererName string) (cellrender.Renderer, error)
	}
	CellEditorResolver interface {
		GetCellEditorAt(col, row int, editorName string, ev *celledit.CellEvent) (celledit.Editor, error)
	}
	EventDispatcher interface {
		DispatchEvent(name string, detail any) error
	}
)

// DispatcherAware providers receive the host-bound dispatch function at bind time.
type DispatcherAware interface {
	SetDispatcher(DispatchFunc)
}

// DrillDownCharMapper providers own a drill-down character map.
type DrillDownCharMapper interface {
	DrillDownCharMap() *CharMap
}

// LegacyDataSource is implemented by providers that still expose a dataSource
// property. It is never called; its presence only triggers a warning.
type LegacyDataSource interface {
	DataSource() any
}

// Provider is the complete data provider contract. Providers are not required
// to implement all of it.
type Provider interface {
	SchemaGetter
	SchemaSetter
	DrillDowner
	Clicker
	Applier
	RowCounter
	RowGetter
	DataGetter
	MetadataStoreSetter
}

// Model is the normalized capability surface of a provider. Each exported
// field is one capability slot; after the grid binds a provider every slot is
// populated.
type Model struct {
	// Install binds further capabilities onto this model (see Bind).
	Install func(source any, overwrite bool)

	GetSchema        func() Schema
	SetSchema        func(Schema)
	GetColumnCount   func() int
	IsDrillDown      func(col int) bool
	Click            func(row int) bool
	Apply            func()
	GetRowCount      func() int
	GetRow           func(row int) Row
	GetData          func() []Row
	GetValue         func(col, row int) any
	SetValue         func(col, row int, v any)
	GetMetadataStore func() MetadataStore
	SetMetadataStore func(MetadataStore)
	GetRowMetadata   func(row int, create bool) RowMetadata
	SetRowMetadata   func(row int, md RowMetadata)
	GetCell          func(cfg *cellrender.Config, rendererName string) (cellrender.Renderer, error)
	GetCellEditorAt  func(col, row int, editorName string, ev *celledit.CellEvent) (celledit.Editor, error)
	DispatchEvent    DispatchFunc

	provider any
	provided []string
	charMap  *CharMap
	metadata MetadataStore
	grid     any
	warned   *WarnedSet
}

// NewModel wraps provider, capturing the capabilities it implements.
func NewModel(provider any) *Model {
	m := &Model{provider: provider}
	Bind(m, provider, false)
	m.provided = m.Capabilities()
	if cm, ok := provider.(DrillDownCharMapper); ok {
		m.charMap = cm.DrillDownCharMap()
	}
	return m
}

// Provider returns the wrapped provider.
func (m *Model) Provider() any { return m.provider }

// Provides reports whether the provider itself implements the named slot,
// rather than a fallback or hook filling it later.
func (m *Model) Provides(slot string) bool { return slices.Contains(m.provided, slot) }

// DrillDownCharMap returns the provider's drill-down character map, or nil.
func (m *Model) DrillDownCharMap() *CharMap { return m.charMap }

// Capabilities returns the names of the populated slots in declaration order.
func (m *Model) Capabilities() []string {
	v := reflect.ValueOf(m).Elem()
	t := v.Type()
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type.Kind() != reflect.Func {
			continue
		}
		if !v.Field(i).IsNil() {
			names = append(names, f.Name)
		}
	}
	return names
}

// Capture reads the capabilities provider implements into a detached Model.
func Capture(provider any) Model {
	var m Model
	if p, ok := provider.(SchemaGetter); ok {
		m.GetSchema = p.GetSchema
	}
	if p, ok := provider.(SchemaSetter); ok {
		m.SetSchema = p.SetSchema
	}
	if p, ok := provider.(ColumnCounter); ok {
		m.GetColumnCount = p.GetColumnCount
	}
	if p, ok := provider.(DrillDowner); ok {
		m.IsDrillDown = p.IsDrillDown
	}
	if p, ok := provider.(Clicker); ok {
		m.Click = p.Click
	}
	if p, ok := provider.(Applier); ok {
		m.Apply = p.Apply
	}
	if p, ok := provider.(RowCounter); ok {
		m.GetRowCount = p.GetRowCount
	}
	if p, ok := provider.(RowGetter); ok {
		m.GetRow = p.GetRow
	}
	if p, ok := provider.(DataGetter); ok {
		m.GetData = p.GetData
	}
	if p, ok := provider.(ValueGetter); ok {
		m.GetValue = p.GetValue
	}
	if p, ok := provider.(ValueSetter); ok {
		m.SetValue = p.SetValue
	}
	if p, ok := provider.(MetadataStoreGetter); ok {
		m.GetMetadataStore = p.GetMetadataStore
	}
	if p, ok := provider.(MetadataStoreSetter); ok {
		m.SetMetadataStore = p.SetMetadataStore
	}
	if p, ok := provider.(RowMetadataGetter); ok {
		m.GetRowMetadata = p.GetRowMetadata
	}
	if p, ok := provider.(RowMetadataSetter); ok {
		m.SetRowMetadata = p.SetRowMetadata
	}
	if p, ok := provider.(CellResolver); ok {
		m.GetCell = p.GetCell
	}
	if p, ok := provider.(CellEditorResolver); ok {
		m.GetCellEditorAt = p.GetCellEditorAt
	}
	if p, ok := provider.(EventDispatcher); ok {
		m.DispatchEvent = p.DispatchEvent
	}
	return m
}
