// Package local provides the default in-memory data provider: a tree of rows
// whose first column drills down into child rows.
//
// The provider implements only part of the datamodel contract. Metadata
// storage, cell value access, and renderer/editor resolution are supplied by
// the grid's fallbacks and hooks.
package local

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/fogrid/pkg/datamodel"
)

// Node is one row of the tree.
type Node struct {
	Values   datamodel.Row
	Children []*Node
	Expanded bool
}

// Provider is an in-memory, optionally tree-shaped data provider.
type Provider struct {
	schema   datamodel.Schema
	roots    []*Node
	visible  []visibleRow
	charMap  *datamodel.CharMap
	dispatch datamodel.DispatchFunc
}

type visibleRow struct {
	node  *Node
	depth int
}

// New creates an empty provider. It is the grid's default provider.
func New() *Provider {
	return NewTree(nil, nil)
}

// NewRows creates a flat provider.
func NewRows(schema datamodel.Schema, rows []datamodel.Row) *Provider {
	roots := make([]*Node, len(rows))
	for i, r := range rows {
		roots[i] = &Node{Values: r}
	}
	return NewTree(schema, roots)
}

// NewTree creates a provider over the given root nodes.
func NewTree(schema datamodel.Schema, roots []*Node) *Provider {
	p := &Provider{
		schema:  normalizeSchema(schema),
		roots:   roots,
		charMap: datamodel.DefaultCharMap(),
	}
	p.reindex()
	return p
}

// SetDispatcher receives the host-bound dispatch function.
func (p *Provider) SetDispatcher(fn datamodel.DispatchFunc) { p.dispatch = fn }

// DrillDownCharMap returns the provider's drill-down characters.
func (p *Provider) DrillDownCharMap() *datamodel.CharMap { return p.charMap }

func (p *Provider) GetSchema() datamodel.Schema { return p.schema }

func (p *Provider) SetSchema(schema datamodel.Schema) {
	p.schema = normalizeSchema(schema)
	p.notify(datamodel.EventDataSchemaChanged, p.schema)
}

// IsDrillDown reports whether col is the tree column of a tree-shaped dataset.
func (p *Provider) IsDrillDown(col int) bool {
	return col == 0 && p.isTree()
}

// Click toggles the expansion of a row with children and reindexes.
// It reports whether the row's state changed.
func (p *Provider) Click(row int) bool {
	if row < 0 || row >= len(p.visible) {
		return false
	}
	n := p.visible[row].node
	if len(n.Children) == 0 {
		return false
	}
	n.Expanded = !n.Expanded
	p.Apply()
	return true
}

// Apply rebuilds the visible row index, bracketed by reindex notifications.
func (p *Provider) Apply() {
	p.notify(datamodel.EventDataPreReindex, nil)
	p.reindex()
	p.notify(datamodel.EventDataPostReindex, len(p.visible))
}

// ExpandAll expands or collapses every row with children.
func (p *Provider) ExpandAll(expanded bool) {
	walk(p.roots, func(n *Node) {
		if len(n.Children) > 0 {
			n.Expanded = expanded
		}
	})
	p.Apply()
}

func (p *Provider) GetRowCount() int { return len(p.visible) }

// GetRow returns a copy of the visible row with its tree state recorded
// under datamodel.DepthKey and datamodel.ExpandedKey.
func (p *Provider) GetRow(row int) datamodel.Row {
	if row < 0 || row >= len(p.visible) {
		return nil
	}
	v := p.visible[row]
	out := make(datamodel.Row, len(v.node.Values)+2)
	for k, val := range v.node.Values {
		out[k] = val
	}
	out[datamodel.DepthKey] = v.depth
	if len(v.node.Children) > 0 {
		out[datamodel.ExpandedKey] = v.node.Expanded
	}
	return out
}

func (p *Provider) GetData() []datamodel.Row {
	rows := make([]datamodel.Row, len(p.visible))
	for i := range p.visible {
		rows[i] = p.GetRow(i)
	}
	return rows
}

// SetValue stores v in the named column of a visible row.
func (p *Provider) SetValue(col, row int, v any) {
	if col < 0 || col >= len(p.schema) || row < 0 || row >= len(p.visible) {
		return
	}
	n := p.visible[row].node
	if n.Values == nil {
		n.Values = datamodel.Row{}
	}
	n.Values[p.schema[col].Name] = v
	p.notify(datamodel.EventDataChanged, map[string]int{"col": col, "row": row})
}

func (p *Provider) isTree() bool {
	for _, n := range p.roots {
		if len(n.Children) > 0 {
			return true
		}
	}
	return false
}

func (p *Provider) reindex() {
	p.visible = p.visible[:0]
	var add func(nodes []*Node, depth int)
	add = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			p.visible = append(p.visible, visibleRow{node: n, depth: depth})
			if n.Expanded {
				add(n.Children, depth+1)
			}
		}
	}
	add(p.roots, 0)
}

func (p *Provider) notify(name string, detail any) {
	if p.dispatch == nil {
		return
	}
	// Names are constants from the accepted set; an error here is a bug.
	if err := p.dispatch(name, detail); err != nil {
		panic(err)
	}
}

func walk(nodes []*Node, fn func(*Node)) {
	for _, n := range nodes {
		fn(n)
		walk(n.Children, fn)
	}
}

// normalizeSchema fills in missing headers from column names:
// "unit_price" becomes "Unit Price".
func normalizeSchema(schema datamodel.Schema) datamodel.Schema {
	out := make(datamodel.Schema, len(schema))
	caser := cases.Title(language.English)
	for i, c := range schema {
		if c.Header == "" {
			c.Header = caser.String(strings.NewReplacer("_", " ", "-", " ").Replace(c.Name))
		}
		out[i] = c
	}
	return out
}
