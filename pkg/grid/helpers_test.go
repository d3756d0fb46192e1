package grid

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dkoosis/fogrid/pkg/cellrender"
	"github.com/dkoosis/fogrid/pkg/datamodel"
	"github.com/dkoosis/fogrid/pkg/datamodel/local"
)

// newTestGrid returns a plain-themed grid with its own warning set.
func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	return New(WithTheme(cellrender.PlainTheme()), WithWarnedSet(datamodel.NewWarnedSet()))
}

func observeWarnings(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	datamodel.SetLogger(zap.New(core))
	t.Cleanup(func() { datamodel.SetLogger(zap.NewNop()) })
	return logs
}

func fruitRows() *local.Provider {
	return local.NewRows(
		datamodel.Schema{{Name: "name"}, {Name: "qty", Type: "number"}},
		[]datamodel.Row{
			{"name": "apple", "qty": 3},
			{"name": "kiwi", "qty": 12},
		},
	)
}

func fruitTree() *local.Provider {
	return local.NewTree(
		datamodel.Schema{{Name: "name"}},
		[]*local.Node{{
			Values:   datamodel.Row{"name": "fruit"},
			Children: []*local.Node{{Values: datamodel.Row{"name": "apple"}}},
		}},
	)
}

// clickProvider records clicks and answers drill-down queries from a fixed set.
type clickProvider struct {
	drill   map[int]bool
	changed bool
	clicks  []int
}

func (p *clickProvider) IsDrillDown(col int) bool { return p.drill[col] }

func (p *clickProvider) Click(row int) bool {
	p.clicks = append(p.clicks, row)
	return p.changed
}

// singleCellProvider drills down on one column and changes state on one row.
type singleCellProvider struct {
	drillCol, changeRow int
}

func (p *singleCellProvider) IsDrillDown(col int) bool { return col == p.drillCol }

func (p *singleCellProvider) Click(row int) bool { return row == p.changeRow }

// readOnlyProvider serves rows but cannot store values.
type readOnlyProvider struct {
	schema datamodel.Schema
	rows   []datamodel.Row
}

func (p *readOnlyProvider) GetSchema() datamodel.Schema { return p.schema }

func (p *readOnlyProvider) GetRowCount() int { return len(p.rows) }

func (p *readOnlyProvider) GetRow(row int) datamodel.Row { return p.rows[row] }

// legacyProvider still exposes the old dataSource property.
type legacyProvider struct{}

func (legacyProvider) DataSource() any { return nil }

// mapProvider is a provider of an uncomparable type.
type mapProvider map[string]int

func (p mapProvider) GetRowCount() int { return len(p) }

// valueProvider is a comparable provider passed by value.
type valueProvider struct{ rows int }

func (p valueProvider) GetRowCount() int { return p.rows }

func (valueProvider) DataSource() any { return nil }

func keyField(key string) zap.Field {
	return zap.String("key", key)
}
