package gen

import (
	"regexp"
	"slices"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql/schema"
)

// StructuralColumns are managed by the framework and never receive
// validation rules, casts or fillable entries.
var StructuralColumns = []string{"id", "created_at", "updated_at", "deleted_at", "remember_token"}

// cappedRe matches string columns that get a max:255 length cap.
var cappedRe = regexp.MustCompile(`(^|_)(name|title|slug|email|username)$`)

// Rule holds the validation tokens of one column.
type Rule struct {
	Column string
	Tokens []string
}

// RuleSet is an ordered list of column rules.
type RuleSet []Rule

// StoreRules synthesizes create-time rules. A column is required when it
// is not nullable and has no default, else nullable.
func StoreRules(cols []schema.Column) RuleSet {
	return synthesize(cols, func(c schema.Column) string {
		if c.NotNull && !c.HasDefault() {
			return "required"
		}
		return "nullable"
	})
}

// UpdateRules synthesizes partial-update rules. Every column is optional.
func UpdateRules(cols []schema.Column) RuleSet {
	return synthesize(cols, func(schema.Column) string { return "sometimes" })
}

func synthesize(cols []schema.Column, presence func(schema.Column) string) RuleSet {
	rs := make(RuleSet, 0, len(cols))
	for _, c := range cols {
		if isStructural(c.Name) {
			continue
		}
		tokens := []string{presence(c), typeToken(c.Class())}
		if tokens[1] == "string" && cappedRe.MatchString(c.Name) {
			tokens = append(tokens, "max:255")
		}
		rs = append(rs, Rule{Column: c.Name, Tokens: tokens})
	}
	return rs
}

// typeToken returns the single type rule of a class.
func typeToken(class schema.TypeClass) string {
	switch class {
	case schema.ClassInteger:
		return "integer"
	case schema.ClassBoolean:
		return "boolean"
	case schema.ClassDecimal:
		return "numeric"
	case schema.ClassDate, schema.ClassDateTime:
		return "date"
	case schema.ClassJSON:
		return "array"
	default:
		return "string"
	}
}

// Get returns the tokens of the named column.
func (rs RuleSet) Get(column string) ([]string, bool) {
	for _, r := range rs {
		if r.Column == column {
			return r.Tokens, true
		}
	}
	return nil, false
}

// Columns returns the ruled columns in order.
func (rs RuleSet) Columns() []string {
	cols := make([]string, len(rs))
	for i, r := range rs {
		cols[i] = r.Column
	}
	return cols
}

// PHP renders the rule set as a PHP array literal whose closing bracket
// is indented by indent.
//
//	[
//	    'name' => ['required', 'string', 'max:255'],
//	    'price' => ['required', 'numeric'],
//	]
func (rs RuleSet) PHP(indent string) string {
	arr := make(phpArray, len(rs))
	for i, r := range rs {
		arr[i] = phpEntry{Key: r.Column, Value: r.Tokens}
	}
	return arr.PHP(indent)
}

func isStructural(column string) bool {
	return slices.Contains(StructuralColumns, column)
}

// castOf returns the model cast of a column, or "" when it has none.
func castOf(class schema.TypeClass) string {
	switch class {
	case schema.ClassInteger:
		return "integer"
	case schema.ClassBoolean:
		return "boolean"
	case schema.ClassDecimal:
		return "float"
	case schema.ClassDate:
		return "date"
	case schema.ClassDateTime:
		return "datetime"
	case schema.ClassJSON:
		return "array"
	default:
		return ""
	}
}

// fillableColumns returns the mass-assignable columns.
func fillableColumns(cols []schema.Column, sensitive []string) []string {
	var out []string
	for _, c := range cols {
		if isStructural(c.Name) || slices.Contains(sensitive, c.Name) {
			continue
		}
		out = append(out, c.Name)
	}
	return out
}

// castsLiteral returns the casts of the non-structural columns.
func castsLiteral(cols []schema.Column) phpArray {
	var arr phpArray
	for _, c := range cols {
		if isStructural(c.Name) {
			continue
		}
		if cast := castOf(c.Class()); cast != "" {
			arr = append(arr, phpEntry{Key: c.Name, Value: cast})
		}
	}
	return arr
}
