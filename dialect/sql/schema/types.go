package schema

import "strings"

// TypeClass groups normalized column types by how generated code treats them.
type TypeClass uint8

// Type classes, in match priority order.
const (
	ClassString TypeClass = iota
	ClassInteger
	ClassBoolean
	ClassDecimal
	ClassDate
	ClassDateTime
	ClassJSON
)

var classNames = [...]string{
	ClassString:   "string",
	ClassInteger:  "integer",
	ClassBoolean:  "boolean",
	ClassDecimal:  "decimal",
	ClassDate:     "date",
	ClassDateTime: "datetime",
	ClassJSON:     "json",
}

// String implements fmt.Stringer.
func (c TypeClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

var (
	integerTypes  = set("int", "tinyint", "smallint", "mediumint", "bigint")
	booleanTypes  = set("boolean")
	decimalTypes  = set("decimal", "numeric", "float", "double", "real", "money")
	dateTypes     = set("date")
	dateTimeTypes = set("datetime", "timestamp")
	jsonTypes     = set("json")
)

// ClassOf returns the class of a normalized type. Integer-like types
// are matched first, then boolean, decimal, date, date-time and json.
func ClassOf(typ string) TypeClass {
	switch {
	case integerTypes[typ]:
		return ClassInteger
	case booleanTypes[typ]:
		return ClassBoolean
	case decimalTypes[typ]:
		return ClassDecimal
	case dateTypes[typ]:
		return ClassDate
	case dateTimeTypes[typ]:
		return ClassDateTime
	case jsonTypes[typ]:
		return ClassJSON
	default:
		return ClassString
	}
}

var typeAliases = map[string]string{
	"integer":                     "int",
	"int4":                        "int",
	"serial":                      "int",
	"int2":                        "smallint",
	"smallserial":                 "smallint",
	"int8":                        "bigint",
	"bigserial":                   "bigint",
	"bool":                        "boolean",
	"character varying":           "varchar",
	"character":                   "char",
	"bpchar":                      "char",
	"timestamp without time zone": "timestamp",
	"timestamp with time zone":    "timestamp",
	"timestamptz":                 "timestamp",
	"time without time zone":      "time",
	"time with time zone":         "time",
	"double precision":            "double",
	"float8":                      "double",
	"float4":                      "real",
	"jsonb":                       "json",
}

// NormalizeType maps a raw database type to the lowercase vocabulary
// shared by both inspectors: arguments and sign modifiers are dropped
// and dialect aliases are folded, so "INT(11) UNSIGNED" becomes "int"
// and "character varying(255)" becomes "varchar". MySQL's tinyint(1)
// is reported as "boolean".
func NormalizeType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return ""
	}
	if t == "tinyint(1)" || strings.HasPrefix(t, "tinyint(1) ") {
		return "boolean"
	}
	if i := strings.IndexByte(t, '('); i >= 0 {
		if j := strings.IndexByte(t[i:], ')'); j >= 0 {
			t = t[:i] + " " + t[i+j+1:]
		} else {
			t = t[:i]
		}
	}
	fields := strings.Fields(t)
	kept := fields[:0]
	for _, f := range fields {
		switch f {
		case "unsigned", "signed", "zerofill":
		default:
			kept = append(kept, f)
		}
	}
	t = strings.Join(kept, " ")
	if a, ok := typeAliases[t]; ok {
		return a
	}
	return t
}

func set(vs ...string) map[string]bool {
	m := make(map[string]bool, len(vs))
	for _, v := range vs {
		m[v] = true
	}
	return m
}
