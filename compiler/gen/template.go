package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// placeholderRe matches {{key}} and {{key|modifier}} tokens.
var placeholderRe = regexp.MustCompile(`\{\{\s*([\w|]+)\s*\}\}`)

// Context is the placeholder mapping of one generation run.
// It is immutable once built.
type Context struct {
	values map[string]any
}

// NewContext copies values into a new Context. Values may be strings,
// string slices, relations or fmt.Stringer implementations.
func NewContext(values map[string]any) Context {
	return Context{values: maps.Clone(values)}
}

// Lookup returns the rendered value of key.
func (c Context) Lookup(key string) (string, bool) {
	v, ok := c.values[key]
	if !ok {
		return "", false
	}
	switch v := v.(type) {
	case string:
		return v, true
	case []string:
		return strings.Join(v, ", "), true
	case []Relation:
		return strings.Join(relationNames(v), ", "), true
	case fmt.Stringer:
		return v.String(), true
	case nil:
		return "", true
	default:
		return fmt.Sprint(v), true
	}
}

// Render substitutes every bare {{key}} token of tpl with its context
// value. Unknown keys render empty. Pipe-qualified tokens are left
// verbatim; resolve them with a Mutator before rendering.
func Render(tpl string, ctx Context) string {
	return placeholderRe.ReplaceAllStringFunc(tpl, func(tok string) string {
		key := placeholderRe.FindStringSubmatch(tok)[1]
		if strings.Contains(key, "|") {
			return tok
		}
		v, _ := ctx.Lookup(key)
		return v
	})
}

// Unresolved returns the pipe-qualified tokens still present in s,
// in order of appearance.
func Unresolved(s string) []string {
	var toks []string
	for _, m := range placeholderRe.FindAllStringSubmatch(s, -1) {
		if strings.Contains(m[1], "|") {
			toks = append(toks, m[0])
		}
	}
	return toks
}

// Mutator rewrites a stub before the generic rendering pass.
type Mutator func(string) string

// Mutate applies the mutators to tpl in order.
func Mutate(tpl string, mutators ...Mutator) string {
	for _, m := range mutators {
		tpl = m(tpl)
	}
	return tpl
}

// ReplaceJSON resolves {{key|json}} tokens with the JSON encoding of v.
// Slashes and HTML characters are not escaped.
func ReplaceJSON(key string, v any) Mutator {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// Unencodable values leave the token unresolved.
		return func(s string) string { return s }
	}
	encoded := strings.TrimSuffix(buf.String(), "\n")
	re := modifierRe(key, "json")
	return func(s string) string {
		return re.ReplaceAllLiteralString(s, encoded)
	}
}

// ReplaceLiteral resolves {{key|php}} tokens with v rendered as a PHP
// literal. Multi-line literals are aligned with the line holding the token.
func ReplaceLiteral(key string, v any) Mutator {
	re := modifierRe(key, "php")
	return func(s string) string {
		locs := re.FindAllStringIndex(s, -1)
		if len(locs) == 0 {
			return s
		}
		var (
			b    strings.Builder
			last int
		)
		for _, loc := range locs {
			b.WriteString(s[last:loc[0]])
			b.WriteString(phpValue(v, lineIndent(s, loc[0])))
			last = loc[1]
		}
		b.WriteString(s[last:])
		return b.String()
	}
}

// ReplaceRules resolves {{rules|php}} with the given rule set.
func ReplaceRules(rs RuleSet) Mutator {
	return ReplaceLiteral("rules", rs)
}

func modifierRe(key, modifier string) *regexp.Regexp {
	return regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(key) + `\|` + modifier + `\s*\}\}`)
}

// lineIndent returns the leading whitespace of the line containing offset i.
func lineIndent(s string, i int) string {
	start := strings.LastIndexByte(s[:i], '\n') + 1
	end := start
	for end < i && (s[end] == ' ' || s[end] == '\t') {
		end++
	}
	return s[start:end]
}
