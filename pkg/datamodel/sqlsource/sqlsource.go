// Package sqlsource provides a read-only data provider over a SQLite table.
//
// The provider only answers schema and row queries; the grid's fallbacks
// supply drill-down, click, reindex, bulk data, and metadata handling.
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/dkoosis/fogrid/pkg/datamodel"
)

// Provider holds the rows of one table, loaded by Load.
type Provider struct {
	table  string
	schema datamodel.Schema
	rows   []datamodel.Row
}

// Open opens the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// Tables lists the user tables in db.
func Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Load reads the schema and every row of table.
func Load(ctx context.Context, db *sql.DB, table string) (*Provider, error) {
	if table == "" {
		return nil, fmt.Errorf("table name is required")
	}
	schema, err := loadSchema(ctx, db, table)
	if err != nil {
		return nil, err
	}
	if len(schema) == 0 {
		return nil, fmt.Errorf("table %q not found", table)
	}
	rows, err := loadRows(ctx, db, table, schema)
	if err != nil {
		return nil, err
	}
	return &Provider{table: table, schema: schema, rows: rows}, nil
}

// Table returns the source table name.
func (p *Provider) Table() string { return p.table }

func (p *Provider) GetSchema() datamodel.Schema { return p.schema }

func (p *Provider) GetRowCount() int { return len(p.rows) }

func (p *Provider) GetRow(row int) datamodel.Row {
	if row < 0 || row >= len(p.rows) {
		return nil
	}
	return p.rows[row]
}

func loadSchema(ctx context.Context, db *sql.DB, table string) (datamodel.Schema, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+quoteIdent(table)+")")
	if err != nil {
		return nil, fmt.Errorf("read schema of %s: %w", table, err)
	}
	defer rows.Close()

	var schema datamodel.Schema
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("read schema of %s: %w", table, err)
		}
		schema = append(schema, datamodel.Column{Name: name, Type: columnType(colType)})
	}
	return schema, rows.Err()
}

func loadRows(ctx context.Context, db *sql.DB, table string, schema datamodel.Schema) ([]datamodel.Row, error) {
	names := make([]string, len(schema))
	for i, c := range schema {
		names[i] = quoteIdent(c.Name)
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), quoteIdent(table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read rows of %s: %w", table, err)
	}
	defer rows.Close()

	var out []datamodel.Row
	values := make([]any, len(schema))
	ptrs := make([]any, len(schema))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("read rows of %s: %w", table, err)
		}
		r := make(datamodel.Row, len(schema))
		for i, c := range schema {
			if b, ok := values[i].([]byte); ok {
				r[c.Name] = string(b)
			} else {
				r[c.Name] = values[i]
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// quoteIdent quotes a SQLite identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// columnType maps SQLite type affinity to a schema column type.
func columnType(declared string) string {
	t := strings.ToUpper(declared)
	switch {
	case strings.Contains(t, "INT"), strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"),
		strings.Contains(t, "DOUB"), strings.Contains(t, "NUMERIC"), strings.Contains(t, "DECIMAL"):
		return "number"
	default:
		return "string"
	}
}
