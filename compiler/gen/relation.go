package gen

import (
	"strings"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql/schema"
)

// BelongsTo is the only relation kind inferred from foreign keys.
const BelongsTo = "belongsTo"

// Relation describes a model relation implied by a foreign key.
type Relation struct {
	Kind         string `json:"type"`
	Name         string `json:"name"`
	Model        string `json:"model"`
	ForeignTable string `json:"foreign_table"`
	LocalKey     string `json:"local_key"`
}

// InferRelations maps each foreign key to a belongsTo relation. The result
// follows the order of fks. Keys with an empty referenced table are skipped,
// duplicate local columns keep the first key, and accessor names that would
// collide fall back to the camelCase of the whole local column.
func InferRelations(fks []schema.ForeignKey) []Relation {
	var (
		rels  = make([]Relation, 0, len(fks))
		cols  = make(map[string]bool, len(fks))
		names = make(map[string]bool, len(fks))
	)
	for _, fk := range fks {
		if fk.RefTable == "" || fk.Column == "" || cols[fk.Column] {
			continue
		}
		cols[fk.Column] = true
		name := AccessorName(fk.Column)
		if names[name] {
			name = camel(fk.Column)
		}
		names[name] = true
		rels = append(rels, Relation{
			Kind:         BelongsTo,
			Name:         name,
			Model:        studly(singular(fk.RefTable)),
			ForeignTable: fk.RefTable,
			LocalKey:     fk.Column,
		})
	}
	return rels
}

// AccessorName returns the relation accessor of a local key column.
//
//	user_id           => user
//	parent_category_id => parentCategory
//	parent            => parent
func AccessorName(column string) string {
	if base := strings.TrimSuffix(column, "_id"); base != "" {
		return camel(base)
	}
	return camel(column)
}

// relationNames returns the accessor names of rels.
func relationNames(rels []Relation) []string {
	names := make([]string, len(rels))
	for i, r := range rels {
		names[i] = r.Name
	}
	return names
}

// relationsLiteral converts rels into an ordered PHP array.
func relationsLiteral(rels []Relation) phpArray {
	arr := make(phpArray, 0, len(rels))
	for _, r := range rels {
		arr = append(arr, phpEntry{Value: phpArray{
			{Key: "type", Value: r.Kind},
			{Key: "name", Value: r.Name},
			{Key: "model", Value: r.Model},
			{Key: "foreign_table", Value: r.ForeignTable},
			{Key: "local_key", Value: r.LocalKey},
		}})
	}
	return arr
}

// describe renders rels for log output.
func describe(rels []Relation) string {
	parts := make([]string, len(rels))
	for i, r := range rels {
		parts[i] = r.Name + "->" + r.Model
	}
	return strings.Join(parts, ", ")
}
