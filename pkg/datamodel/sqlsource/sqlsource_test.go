package sqlsource

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fogrid/pkg/datamodel"
)

func seed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE sales (region TEXT, units INTEGER, price REAL)`,
		`INSERT INTO sales VALUES ('North', 10, 2.5), ('South', 4, 1.25)`,
		`CREATE TABLE empty (id INTEGER)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

func TestLoad_ReadsSchemaAndRows(t *testing.T) {
	ctx := context.Background()
	db, err := Open(seed(t))
	require.NoError(t, err)
	defer db.Close()

	p, err := Load(ctx, db, "sales")
	require.NoError(t, err)

	assert.Equal(t, "sales", p.Table())
	assert.Equal(t, datamodel.Schema{
		{Name: "region", Type: "string"},
		{Name: "units", Type: "number"},
		{Name: "price", Type: "number"},
	}, p.GetSchema())
	require.Equal(t, 2, p.GetRowCount())
	assert.Equal(t, "North", p.GetRow(0)["region"])
	assert.EqualValues(t, 4, p.GetRow(1)["units"])
	assert.Nil(t, p.GetRow(2))
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()
	db, err := Open(seed(t))
	require.NoError(t, err)
	defer db.Close()

	_, err = Load(ctx, db, "missing")
	assert.ErrorContains(t, err, "not found")

	_, err = Load(ctx, db, `sales"; DROP TABLE sales; --`)
	assert.ErrorContains(t, err, "not found")

	_, err = Load(ctx, db, "")
	assert.ErrorContains(t, err, "required")

	p, err := Load(ctx, db, "sales")
	require.NoError(t, err)
	assert.Equal(t, 2, p.GetRowCount(), "sales survives a hostile table name")
}

func TestLoad_QuotesIdentifiers(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "odd.db"))
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE "odd ""names""" ("a""b" TEXT, "select" TEXT)`,
		`INSERT INTO "odd ""names""" VALUES ('x', 'y')`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}

	names, err := Tables(ctx, db)
	require.NoError(t, err)
	require.Equal(t, []string{`odd "names"`}, names)

	p, err := Load(ctx, db, names[0])
	require.NoError(t, err)
	assert.Equal(t, datamodel.Schema{
		{Name: `a"b`, Type: "string"},
		{Name: "select", Type: "string"},
	}, p.GetSchema())
	assert.Equal(t, datamodel.Row{`a"b`: "x", "select": "y"}, p.GetRow(0))
}

func TestTables(t *testing.T) {
	db, err := Open(seed(t))
	require.NoError(t, err)
	defer db.Close()

	names, err := Tables(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "sales"}, names)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestProvider_FallbacksCompleteTheContract(t *testing.T) {
	db, err := Open(seed(t))
	require.NoError(t, err)
	defer db.Close()
	p, err := Load(context.Background(), db, "sales")
	require.NoError(t, err)

	m := datamodel.NewModel(p)
	datamodel.InjectFallbacks(m, nil)

	assert.Len(t, m.GetData(), 2)
	assert.False(t, m.IsDrillDown(0))
	assert.False(t, m.Click(0))
	assert.Equal(t, 3, m.GetColumnCount())
	assert.Equal(t, "South", m.GetValue(0, 1))
}
