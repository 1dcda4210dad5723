package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql"
)

// catalogQueries holds the dialect specific catalog statements. Every
// columns query yields (name, data type, column type, is nullable,
// default); every foreign keys query yields (column, referenced table,
// referenced column).
type catalogQueries struct {
	schema      string // current schema query, empty for unscoped dialects
	hasTable    string
	columns     string
	foreignKeys string
}

var catalogs = map[string]catalogQueries{
	dialect.MySQL: {
		schema: "SELECT DATABASE()",
		hasTable: `SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES
WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?`,
		columns: `SELECT COLUMN_NAME, DATA_TYPE, COLUMN_TYPE, IS_NULLABLE, COLUMN_DEFAULT
FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
ORDER BY ORDINAL_POSITION`,
		foreignKeys: `SELECT COLUMN_NAME, REFERENCED_TABLE_NAME, REFERENCED_COLUMN_NAME
FROM INFORMATION_SCHEMA.KEY_COLUMN_USAGE
WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ? AND REFERENCED_TABLE_NAME IS NOT NULL
ORDER BY ORDINAL_POSITION`,
	},
	dialect.Postgres: {
		schema: "SELECT current_schema()",
		hasTable: `SELECT COUNT(*) FROM information_schema.tables
WHERE table_schema = $1 AND table_name = $2`,
		columns: `SELECT column_name, data_type, udt_name, is_nullable, column_default
FROM information_schema.columns
WHERE table_schema = $1 AND table_name = $2
ORDER BY ordinal_position`,
		foreignKeys: `SELECT kcu.column_name, ccu.table_name, ccu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
JOIN information_schema.constraint_column_usage ccu
  ON ccu.constraint_name = tc.constraint_name AND ccu.table_schema = tc.table_schema
WHERE tc.constraint_type = 'FOREIGN KEY' AND tc.table_schema = $1 AND tc.table_name = $2
ORDER BY kcu.ordinal_position`,
	},
	dialect.SQLite: {
		hasTable: "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		columns: `SELECT name, type, type, CASE WHEN "notnull" = 1 OR pk > 0 THEN 'NO' ELSE 'YES' END, dflt_value
FROM pragma_table_info(?)
ORDER BY cid`,
		foreignKeys: `SELECT "from", "table", "to" FROM pragma_foreign_key_list(?) ORDER BY id, seq`,
	},
}

// CatalogInspector reads table metadata with direct catalog queries.
type CatalogInspector struct {
	drv *sql.Driver
	q   catalogQueries
	cur string // resolved current schema
}

// NewCatalogInspector returns a CatalogInspector for the dialect of drv.
func NewCatalogInspector(drv *sql.Driver) (*CatalogInspector, error) {
	q, ok := catalogs[drv.Dialect()]
	if !ok {
		return nil, fmt.Errorf("catalog: unsupported dialect %q", drv.Dialect())
	}
	return &CatalogInspector{drv: drv, q: q}, nil
}

// HasTable implements Inspector.
func (c *CatalogInspector) HasTable(ctx context.Context, name string) (bool, error) {
	args, err := c.args(ctx, name)
	if err != nil {
		return false, err
	}
	var n int
	if err := c.drv.QueryRowContext(ctx, c.q.hasTable, args...).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Columns implements Inspector.
func (c *CatalogInspector) Columns(ctx context.Context, table string) ([]Column, error) {
	args, err := c.args(ctx, table)
	if err != nil {
		return nil, err
	}
	rows, err := c.drv.QueryContext(ctx, c.q.columns, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cols []Column
	for rows.Next() {
		var (
			name, dataType, nullable string
			columnType, def          sql.NullString
		)
		if err := rows.Scan(&name, &dataType, &columnType, &nullable, &def); err != nil {
			return nil, err
		}
		col := Column{
			Name:    name,
			Type:    catalogType(dataType, columnType.String),
			NotNull: strings.EqualFold(nullable, "NO"),
		}
		if def.Valid {
			v := def.String
			col.Default = &v
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

// ForeignKeys implements Inspector.
func (c *CatalogInspector) ForeignKeys(ctx context.Context, table string) ([]ForeignKey, error) {
	args, err := c.args(ctx, table)
	if err != nil {
		return nil, err
	}
	rows, err := c.drv.QueryContext(ctx, c.q.foreignKeys, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var fks []ForeignKey
	for rows.Next() {
		var (
			fk     ForeignKey
			refCol sql.NullString
		)
		if err := rows.Scan(&fk.Column, &fk.RefTable, &refCol); err != nil {
			return nil, err
		}
		fk.RefColumn = refCol.String
		fks = append(fks, fk)
	}
	return fks, rows.Err()
}

// args returns the query arguments scoping a catalog query to table.
func (c *CatalogInspector) args(ctx context.Context, table string) ([]any, error) {
	if c.q.schema == "" {
		return []any{table}, nil
	}
	if c.cur == "" {
		var cur sql.NullString
		if err := c.drv.QueryRowContext(ctx, c.q.schema).Scan(&cur); err != nil {
			return nil, err
		}
		if !cur.Valid || cur.String == "" {
			return nil, fmt.Errorf("catalog: no database selected")
		}
		c.cur = cur.String
	}
	return []any{c.cur, table}, nil
}

// catalogType prefers the full column type when it carries information
// the bare data type lacks, such as MySQL's tinyint(1) booleans.
func catalogType(dataType, columnType string) string {
	if t := NormalizeType(columnType); t == "boolean" {
		return t
	}
	return NormalizeType(dataType)
}
