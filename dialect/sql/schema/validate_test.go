package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTable(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		r := ValidateTable(&Table{
			Name:        "products",
			Columns:     []Column{{Name: "id", Type: "int"}, {Name: "category_id", Type: "int"}},
			ForeignKeys: []ForeignKey{{Column: "category_id", RefTable: "categories", RefColumn: "id"}},
		})
		assert.False(t, r.HasErrors())
		assert.False(t, r.HasWarnings())
		assert.Equal(t, "No issues found", r.String())
	})

	t.Run("no columns", func(t *testing.T) {
		r := ValidateTable(&Table{Name: "ghosts"})
		assert.True(t, r.HasErrors())
		assert.Contains(t, r.String(), "table has no columns")
	})

	t.Run("missing id and duplicate column", func(t *testing.T) {
		r := ValidateTable(&Table{
			Name:    "tags",
			Columns: []Column{{Name: "name"}, {Name: "name"}},
		})
		assert.True(t, r.HasWarnings())
		assert.True(t, r.HasErrors())
		assert.Contains(t, r.String(), "tags: table has no id column")
		assert.Contains(t, r.String(), "tags.name: duplicate column name")
	})

	t.Run("foreign key problems", func(t *testing.T) {
		r := ValidateTable(&Table{
			Name:        "posts",
			Columns:     []Column{{Name: "id"}, {Name: "user_id"}},
			ForeignKeys: []ForeignKey{{Column: "author_id", RefTable: "users"}, {Column: "user_id"}},
		})
		assert.Len(t, r.Errors, 1)
		assert.Contains(t, r.Errors[0].Error(), `non-existent column "author_id"`)
		assert.Len(t, r.Warnings, 1)
		assert.Equal(t, "posts.user_id: foreign key has no referenced table", r.Warnings[0].Error())
	})
}
