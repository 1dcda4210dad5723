package gen

import (
	"fmt"
	"strconv"
	"strings"
)

const phpIndent = "    "

// phpArray is an ordered PHP array literal. Entries with an empty key
// are list elements.
type phpArray []phpEntry

type phpEntry struct {
	Key   string
	Value any
}

// PHP renders the array as a multi-line short array literal. Inner lines
// are indented one level deeper than indent; the closing bracket is at indent.
func (a phpArray) PHP(indent string) string {
	if len(a) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	inner := indent + phpIndent
	for _, e := range a {
		b.WriteString(inner)
		if e.Key != "" {
			b.WriteString(phpQuote(e.Key))
			b.WriteString(" => ")
		}
		b.WriteString(phpValue(e.Value, inner))
		b.WriteString(",\n")
	}
	b.WriteString(indent)
	b.WriteString("]")
	return b.String()
}

// phpList builds a multi-line list literal from vs.
func phpList(vs []string) phpArray {
	arr := make(phpArray, len(vs))
	for i, v := range vs {
		arr[i] = phpEntry{Value: v}
	}
	return arr
}

// phpValue renders a scalar, a string slice or a nested literal.
// String slices render inline.
func phpValue(v any, indent string) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return phpQuote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = phpQuote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case interface{ PHP(string) string }:
		return v.PHP(indent)
	default:
		return phpQuote(fmt.Sprint(v))
	}
}

// phpQuote returns s as a single-quoted PHP string.
func phpQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
