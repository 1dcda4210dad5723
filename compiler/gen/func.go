package gen

import (
	"path"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var versionCaser = cases.Title(language.Und, cases.NoLower)

// snake converts the given name into snake_case.
//
//	Username       => username
//	FullName       => full_name
//	HTTPCode       => http_code
//	ProductCategory => product_category
func snake(s string) string {
	var (
		b     strings.Builder
		runes = []rune(s)
	)
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if r == '-' || r == ' ' {
			r = '_'
		}
		if unicode.IsUpper(r) {
			if i > 0 && runes[i-1] != '_' {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// studly converts the given name into StudlyCase.
//
//	product        => Product
//	order_item     => OrderItem
//	parent-category => ParentCategory
func studly(s string) string {
	return inflect.Camelize(s)
}

// camel converts the given name into camelCase.
//
//	ProductCategory => productCategory
//	parent_id       => parentId
func camel(s string) string {
	return inflect.CamelizeDownFirst(s)
}

// kebab converts the given name into kebab-case.
func kebab(s string) string {
	return strings.ReplaceAll(snake(s), "_", "-")
}

// plural pluralizes the last word of a snake_case name. The inflection
// rules only match lowercase words.
//
//	order_item => order_items
//	person     => people
func plural(s string) string {
	i := strings.LastIndexByte(s, '_') + 1
	return s[:i] + inflect.Pluralize(strings.ToLower(s[i:]))
}

func singular(s string) string {
	return inflect.Singularize(s)
}

// ModelName normalizes a model argument into its studly class base name.
// Namespaced names and file names are accepted.
//
//	App\Models\Product => Product
//	app/Models/order_item.php => OrderItem
func ModelName(arg string) string {
	arg = strings.TrimSpace(arg)
	arg = strings.ReplaceAll(arg, `\`, "/")
	arg = strings.TrimSuffix(path.Base(arg), ".php")
	if arg == "." || arg == "/" {
		return ""
	}
	return studly(arg)
}

// TableName returns the conventional table name of a model.
//
//	Product   => products
//	OrderItem => order_items
//	Category  => categories
//	Person    => people
func TableName(model string) string {
	return plural(snake(studly(model)))
}

// routeSegment returns the URL segment of a resource.
//
//	OrderItem => order-items
func routeSegment(model string) string {
	return kebab(TableName(model))
}

// versionDir returns the controller sub-namespace of an API version.
//
//	v1 => V1
func versionDir(version string) string {
	return versionCaser.String(version)
}

// modelClass returns the fully qualified class of a model.
func modelClass(ns, model string) string {
	return `\` + strings.Trim(ns, `\`) + `\` + model
}
