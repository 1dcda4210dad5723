package gen

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql/schema"
)

// Eloquent imports inserted by the patcher.
const (
	softDeletesImport = `Illuminate\Database\Eloquent\SoftDeletes`
	hasFactoryImport  = `Illuminate\Database\Eloquent\Factories\HasFactory`
)

var (
	namespaceRe = regexp.MustCompile(`(?m)^namespace\s+[^;{]+;[ \t]*(?:\r?\n)?`)
	classRe     = regexp.MustCompile(`(?m)^(?:(?:final|abstract|readonly)\s+)*class\s+\w+[^{;]*\{[ \t]*(?:\r?\n)?`)
	importRe    = regexp.MustCompile(`(?m)^use\s+[^;]+;[ \t]*$`)
	traitLineRe = regexp.MustCompile(`^[ \t]*use\s+[^;]+;[ \t]*\r?\n`)
	// A docblock annotating the trait line below it, as in Laravel 11 models.
	traitDocRe = regexp.MustCompile(`^[ \t]*/\*\*(?:[^*]|\*+[^*/])*\*+/[ \t]*\r?\n[ \t]*use\s+[^;]+;[ \t]*\r?\n`)
)

// anchors are the offsets of a model source the patcher edits around.
// A negative offset marks a missing anchor.
type anchors struct {
	namespaceEnd int // just after the namespace statement
	classStart   int // first byte of the class declaration
	bodyStart    int // just after the line opening the class body
	traitsEnd    int // just after the leading trait block of the body
	bodyEnd      int // offset of the final closing brace
}

func scan(src string) anchors {
	a := anchors{namespaceEnd: -1, classStart: -1, bodyStart: -1, traitsEnd: -1, bodyEnd: -1}
	if loc := namespaceRe.FindStringIndex(src); loc != nil {
		a.namespaceEnd = loc[1]
	}
	loc := classRe.FindStringIndex(src)
	if loc == nil {
		return a
	}
	end := strings.LastIndexByte(src, '}')
	if end < loc[1] {
		return a
	}
	a.classStart, a.bodyStart, a.bodyEnd = loc[0], loc[1], end
	a.traitsEnd = a.bodyStart
	for {
		body := src[a.traitsEnd:a.bodyEnd]
		m := traitLineRe.FindStringIndex(body)
		if m == nil {
			m = traitDocRe.FindStringIndex(body)
		}
		if m == nil || m[0] != 0 {
			break
		}
		a.traitsEnd += m[1]
	}
	return a
}

func (a anchors) hasImports() bool { return a.namespaceEnd >= 0 && a.classStart >= a.namespaceEnd }
func (a anchors) hasBody() bool    { return a.bodyStart >= 0 && a.bodyEnd >= a.bodyStart }

// ModelPatch describes the inputs of a model source patch.
type ModelPatch struct {
	Namespace string // model namespace, e.g. App\Models
	Columns   []schema.Column
	Relations []Relation
	Sensitive []string
}

// PatchModel applies every missing mutation to src and returns the
// result together with the names of the applied mutations. Each
// mutation is gated by a presence check, so patching the output again
// returns it unchanged. A mutation whose anchors are missing is skipped.
func PatchModel(src string, p ModelPatch) (string, []string) {
	var applied []string
	apply := func(name string, ok bool) {
		if ok {
			applied = append(applied, name)
		}
	}
	if hasColumn(p.Columns, "deleted_at") {
		var ok bool
		src, ok = ensureTrait(src, softDeletesImport)
		apply("soft-deletes", ok)
	}
	var ok bool
	src, ok = ensureTrait(src, hasFactoryImport)
	apply("factory", ok)

	// Properties are inserted at the same anchor, so the later one lands first.
	if casts := castsLiteral(p.Columns); len(casts) > 0 && !hasMember(src, `protected $casts`, `function casts(`) {
		src, ok = insertMember(src, "    protected $casts = "+casts.PHP(phpIndent)+";\n")
		apply("casts", ok)
	}
	if !hasMember(src, `protected $fillable`) {
		fillable := phpList(fillableColumns(p.Columns, p.Sensitive))
		src, ok = insertMember(src, "    protected $fillable = "+fillable.PHP(phpIndent)+";\n")
		apply("fillable", ok)
	}
	ns := p.Namespace
	if ns == "" {
		ns = DefaultModelNamespace
	}
	for _, r := range p.Relations {
		if strings.Contains(src, "function "+r.Name+"(") {
			continue
		}
		src, ok = insertMethod(src, belongsToMethod(ns, r))
		apply("relation:"+r.Name, ok)
	}
	return src, applied
}

// PatchModelFile patches the model source at path in place and returns
// the applied mutations. A missing file is not an error. The file is
// left untouched when nothing changed.
func PatchModelFile(path string, p ModelPatch) ([]string, error) {
	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	out, applied := PatchModel(string(src), p)
	if len(applied) == 0 {
		return nil, nil
	}
	if err := writeAtomic(path, []byte(out)); err != nil {
		return nil, NewGenerationError("model", path, "cannot write model", err)
	}
	return applied, nil
}

// ensureTrait imports fqcn and adds the trait to the class body.
// It reports whether the source changed.
func ensureTrait(src, fqcn string) (string, bool) {
	a := scan(src)
	if !a.hasImports() || !a.hasBody() {
		return src, false
	}
	name := fqcn[strings.LastIndexByte(fqcn, '\\')+1:]
	changed := false
	if !strings.Contains(src[:a.classStart], "use "+fqcn+";") {
		src = insertImport(src, a, "use "+fqcn+";")
		a, changed = scan(src), true
	}
	usage := regexp.MustCompile(`(?m)^[ \t]*use\s+[^;]*\b` + name + `\b[^;]*;`)
	if !usage.MatchString(src[a.bodyStart:a.bodyEnd]) {
		line := "    use " + name + ";\n"
		if rest := src[a.traitsEnd:]; !strings.HasPrefix(rest, "\n") && !startsWithBrace(rest) && a.traitsEnd == a.bodyStart {
			line += "\n"
		}
		src = src[:a.traitsEnd] + line + src[a.traitsEnd:]
		changed = true
	}
	return src, changed
}

// insertImport adds line after the last import preceding the class, or
// after the namespace statement when there is none.
func insertImport(src string, a anchors, line string) string {
	region := src[a.namespaceEnd:a.classStart]
	if locs := importRe.FindAllStringIndex(region, -1); len(locs) > 0 {
		at := a.namespaceEnd + locs[len(locs)-1][1]
		return src[:at] + "\n" + line + src[at:]
	}
	return src[:a.namespaceEnd] + "\n" + line + "\n" + src[a.namespaceEnd:]
}

// insertMember adds a property block after the leading trait block.
func insertMember(src, block string) (string, bool) {
	a := scan(src)
	if !a.hasBody() {
		return src, false
	}
	rest := src[a.traitsEnd:]
	if a.traitsEnd > a.bodyStart {
		block = "\n" + block
	}
	if !strings.HasPrefix(rest, "\n") && !startsWithBrace(rest) {
		block += "\n"
	}
	return src[:a.traitsEnd] + block + rest, true
}

// insertMethod adds method before the final closing brace.
func insertMethod(src, method string) (string, bool) {
	a := scan(src)
	if !a.hasBody() {
		return src, false
	}
	head := strings.TrimRight(src[:a.bodyEnd], " \t\r\n")
	sep := "\n\n"
	if strings.HasSuffix(head, "{") {
		sep = "\n"
	}
	return head + sep + method + "\n" + src[a.bodyEnd:], true
}

func belongsToMethod(ns string, r Relation) string {
	return fmt.Sprintf("    public function %s()\n    {\n        return $this->belongsTo(%s::class, %s);\n    }",
		r.Name, modelClass(ns, r.Model), phpQuote(r.LocalKey))
}

func hasMember(src string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(src, n) {
			return true
		}
	}
	return false
}

func hasColumn(cols []schema.Column, name string) bool {
	for _, c := range cols {
		if c.Name == name {
			return true
		}
	}
	return false
}

func startsWithBrace(s string) bool {
	return strings.HasPrefix(strings.TrimLeft(s, " \t\r\n"), "}")
}
