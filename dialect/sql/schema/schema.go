// Package schema resolves column and foreign-key metadata of a table.
//
// Two Inspector implementations exist. AtlasInspector reads the typed
// column model of ariga.io/atlas; CatalogInspector queries the
// information schema (or SQLite pragmas) directly. NewInspector picks
// one when it is constructed and keeps it for the whole run.
package schema

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql"
)

// Column describes one table column.
type Column struct {
	Name    string
	Type    string  // normalized, see NormalizeType
	NotNull bool
	Default *string // nil when the column has no default
}

// HasDefault reports whether the column declares a default value.
func (c Column) HasDefault() bool { return c.Default != nil }

// Class returns the type class of the column.
func (c Column) Class() TypeClass { return ClassOf(c.Type) }

// ForeignKey is a single local column referencing another table.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Table is the introspected shape of one table.
type Table struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Inspector resolves table metadata.
type Inspector interface {
	// HasTable reports whether the table exists in the current database.
	HasTable(ctx context.Context, name string) (bool, error)
	// Columns returns the table columns in ordinal order.
	Columns(ctx context.Context, table string) ([]Column, error)
	// ForeignKeys returns one entry per referencing column.
	ForeignKeys(ctx context.Context, table string) ([]ForeignKey, error)
}

// InspectTable loads columns and foreign keys of the named table.
func InspectTable(ctx context.Context, insp Inspector, name string) (*Table, error) {
	cols, err := insp.Columns(ctx, name)
	if err != nil {
		return nil, err
	}
	fks, err := insp.ForeignKeys(ctx, name)
	if err != nil {
		return nil, err
	}
	return &Table{Name: name, Columns: cols, ForeignKeys: fks}, nil
}

// InspectOption configures NewInspector.
type InspectOption func(*inspectConfig)

type inspectConfig struct {
	catalogOnly bool
	log         *zap.Logger
}

// WithCatalogOnly skips the atlas inspector and queries the catalog directly.
func WithCatalogOnly() InspectOption {
	return func(c *inspectConfig) {
		c.catalogOnly = true
	}
}

// WithLogger sets the logger used to report the inspector choice.
func WithLogger(l *zap.Logger) InspectOption {
	return func(c *inspectConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// NewInspector returns an AtlasInspector for drv, or a CatalogInspector
// when atlas cannot serve the dialect or WithCatalogOnly is given.
func NewInspector(drv *sql.Driver, opts ...InspectOption) (Inspector, error) {
	cfg := &inspectConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.catalogOnly {
		a, err := NewAtlasInspector(drv)
		if err == nil {
			cfg.log.Debug("using atlas inspector", zap.String("dialect", drv.Dialect()))
			return a, nil
		}
		cfg.log.Info("atlas inspector unavailable, falling back to catalog queries",
			zap.String("dialect", drv.Dialect()), zap.Error(err))
	}
	c, err := NewCatalogInspector(drv)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return c, nil
}
