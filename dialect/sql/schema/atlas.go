package schema

import (
	"context"
	"fmt"

	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	atlas "ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql"
)

// AtlasInspector reads table metadata through an atlas schema inspector.
type AtlasInspector struct {
	insp atlas.Inspector
}

// NewAtlasInspector opens the atlas driver matching the dialect of drv.
func NewAtlasInspector(drv *sql.Driver) (*AtlasInspector, error) {
	var (
		insp atlas.Inspector
		err  error
	)
	switch drv.Dialect() {
	case dialect.MySQL:
		insp, err = mysql.Open(drv)
	case dialect.Postgres:
		insp, err = postgres.Open(drv)
	case dialect.SQLite:
		insp, err = sqlite.Open(drv)
	default:
		return nil, fmt.Errorf("atlas: unsupported dialect %q", drv.Dialect())
	}
	if err != nil {
		return nil, err
	}
	return &AtlasInspector{insp: insp}, nil
}

// HasTable implements Inspector.
func (a *AtlasInspector) HasTable(ctx context.Context, name string) (bool, error) {
	t, err := a.table(ctx, name)
	if err != nil {
		return false, err
	}
	return t != nil, nil
}

// Columns implements Inspector.
func (a *AtlasInspector) Columns(ctx context.Context, table string) ([]Column, error) {
	t, err := a.table(ctx, table)
	if err != nil || t == nil {
		return nil, err
	}
	cols := make([]Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		col := Column{
			Name:    c.Name,
			Type:    atlasType(c.Type),
			NotNull: c.Type != nil && !c.Type.Null,
		}
		if v, ok := exprString(c.Default); ok {
			col.Default = &v
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// ForeignKeys implements Inspector.
func (a *AtlasInspector) ForeignKeys(ctx context.Context, table string) ([]ForeignKey, error) {
	t, err := a.table(ctx, table)
	if err != nil || t == nil {
		return nil, err
	}
	var fks []ForeignKey
	for _, fk := range t.ForeignKeys {
		if fk.RefTable == nil {
			continue
		}
		for i, c := range fk.Columns {
			k := ForeignKey{Column: c.Name, RefTable: fk.RefTable.Name}
			if i < len(fk.RefColumns) {
				k.RefColumn = fk.RefColumns[i].Name
			}
			fks = append(fks, k)
		}
	}
	return fks, nil
}

// table inspects the connected schema, limited to the given table.
// A nil table and nil error mean the table does not exist.
func (a *AtlasInspector) table(ctx context.Context, name string) (*atlas.Table, error) {
	s, err := a.insp.InspectSchema(ctx, "", &atlas.InspectOptions{Tables: []string{name}})
	switch {
	case atlas.IsNotExistError(err):
		return nil, nil
	case err != nil:
		return nil, err
	}
	t, ok := s.Table(name)
	if !ok {
		return nil, nil
	}
	return t, nil
}

// atlasType maps the typed atlas column model to the normalized vocabulary.
func atlasType(ct *atlas.ColumnType) string {
	if ct == nil {
		return ""
	}
	switch t := ct.Type.(type) {
	case *atlas.BoolType:
		return "boolean"
	case *atlas.JSONType:
		return "json"
	case *atlas.IntegerType:
		return NormalizeType(t.T)
	case *atlas.DecimalType:
		return NormalizeType(t.T)
	case *atlas.FloatType:
		return NormalizeType(t.T)
	case *atlas.TimeType:
		return NormalizeType(t.T)
	case *atlas.StringType:
		return NormalizeType(t.T)
	case *atlas.BinaryType:
		return NormalizeType(t.T)
	case *atlas.EnumType:
		return "enum"
	case *atlas.UUIDType:
		return "uuid"
	}
	return NormalizeType(ct.Raw)
}

func exprString(x atlas.Expr) (string, bool) {
	switch x := x.(type) {
	case *atlas.Literal:
		return x.V, true
	case *atlas.RawExpr:
		return x.X, true
	}
	return "", false
}
