package gen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql/schema"
)

// Scaffolder generates the CRUD artifacts of a model.
// Concurrent Generate calls are serialized because they share the route file.
type Scaffolder struct {
	cfg     *Config
	insp    schema.Inspector
	workers int
	mu      sync.Mutex
}

// NewScaffolder creates a Scaffolder reading table metadata through insp.
func NewScaffolder(insp schema.Inspector, opts ...Option) (*Scaffolder, error) {
	if insp == nil {
		return nil, NewConfigError("Inspector", nil, "inspector cannot be nil")
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Scaffolder{cfg: cfg, insp: insp, workers: runtime.GOMAXPROCS(0)}, nil
}

// WithWorkers sets the number of stubs rendered in parallel.
func (s *Scaffolder) WithWorkers(n int) *Scaffolder {
	if n > 0 {
		s.workers = n
	}
	return s
}

// Config returns the scaffolder configuration.
func (s *Scaffolder) Config() *Config { return s.cfg }

// Result summarizes one generation run.
type Result struct {
	RunID       string
	Model       string
	Table       string
	Relations   []Relation
	ModelPatch  []string // applied model mutations
	Planned     []string // every planned path, in write order
	Written     []string // paths written, empty on dry runs
	Skipped     []Skip
	RoutesAdded bool
	Warnings    []string
	DryRun      bool
	Metrics     WriterMetrics
}

// Generate introspects table, renders every artifact of model and
// writes them. When table is empty the conventional table name is used.
// Introspection errors are returned as they are; a missing table
// returns ErrTableNotFound. If a write fails, the returned Result lists
// the files already written.
func (s *Scaffolder) Generate(ctx context.Context, model, table string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, res, err := s.plan(ctx, model, table)
	if err != nil {
		return nil, err
	}
	log := s.logger(res)
	if s.cfg.DryRun {
		log.Info("dry run planned", zap.Int("files", len(plan.Files)), zap.Int("skipped", len(plan.Skipped)))
		return res, nil
	}
	written, m, err := plan.Apply(ctx)
	res.Written, res.Metrics = written, m
	if err != nil {
		log.Error("generation stopped", zap.Strings("written", written), zap.Error(err))
		return res, err
	}
	log.Info("scaffold generated",
		zap.Int("files", m.FilesWritten),
		zap.Int64("bytes", m.TotalBytes),
		zap.Bool("routes_added", res.RoutesAdded),
		zap.String("relations", describe(res.Relations)),
	)
	return res, nil
}

// Plan renders every artifact of model without writing anything.
func (s *Scaffolder) Plan(ctx context.Context, model, table string) (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan, _, err := s.plan(ctx, model, table)
	return plan, err
}

func (s *Scaffolder) logger(res *Result) *zap.Logger {
	return s.cfg.logger().With(
		zap.String("run_id", res.RunID),
		zap.String("model", res.Model),
		zap.String("table", res.Table),
	)
}

// run carries the derived state of one generation.
type run struct {
	cfg       *Config
	model     string
	table     *schema.Table
	relations []Relation
	store     RuleSet
	update    RuleSet
	fillable  []string
	casts     phpArray
	ctx       Context
}

func (r *run) columnNames() []string {
	names := make([]string, len(r.table.Columns))
	for i, c := range r.table.Columns {
		names[i] = c.Name
	}
	return names
}

// visible returns the columns exposed by resources and exports.
func (r *run) visible() []string {
	var cols []string
	for _, c := range r.table.Columns {
		if !r.cfg.IsSensitive(c.Name) {
			cols = append(cols, c.Name)
		}
	}
	return cols
}

func (r *run) context() Context {
	return NewContext(map[string]any{
		"model":          r.model,
		"var":            camel(r.model),
		"param":          snake(r.model),
		"table":          r.table.Name,
		"route":          routeSegment(r.model),
		"version":        r.cfg.APIVersion,
		"versionDir":     versionDir(r.cfg.APIVersion),
		"namespace":      strings.Trim(r.cfg.ModelNamespace, `\`),
		"modelClass":     strings.TrimPrefix(modelClass(r.cfg.ModelNamespace, r.model), `\`),
		"columns":        r.columnNames(),
		"visible":        r.visible(),
		"fillable":       r.fillable,
		"relations":      r.relations,
		"sensitive":      r.cfg.Sensitive,
		"softDeletes":    strconv.FormatBool(hasColumn(r.table.Columns, "deleted_at")),
		"exportView":     r.cfg.ExportView,
		"exportViewPath": strings.ReplaceAll(r.cfg.ExportView, ".", "/"),
		"cacheTTL":       strconv.Itoa(r.cfg.CacheTTL),
	})
}

func (s *Scaffolder) plan(ctx context.Context, model, table string) (*Plan, *Result, error) {
	model = ModelName(model)
	if model == "" {
		return nil, nil, NewConfigError("Model", nil, "model name cannot be empty")
	}
	if table == "" {
		table = TableName(model)
	}
	if !sql.ValidIdentifier(table) {
		return nil, nil, NewConfigError("Table", table, "invalid table name")
	}
	res := &Result{RunID: uuid.NewString(), Model: model, Table: table, DryRun: s.cfg.DryRun}
	log := s.logger(res)

	ok, err := s.insp.HasTable(ctx, table)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	t, err := schema.InspectTable(ctx, s.insp, table)
	if err != nil {
		return nil, nil, err
	}
	vr := schema.ValidateTable(t)
	for _, e := range append(vr.Errors, vr.Warnings...) {
		res.Warnings = append(res.Warnings, e.Error())
		log.Warn("table check", zap.String("issue", e.Error()))
	}

	r := &run{
		cfg:       s.cfg,
		model:     model,
		table:     t,
		relations: InferRelations(t.ForeignKeys),
		store:     StoreRules(t.Columns),
		update:    UpdateRules(t.Columns),
		fillable:  fillableColumns(t.Columns, s.cfg.Sensitive),
		casts:     castsLiteral(t.Columns),
	}
	r.ctx = r.context()
	res.Relations = r.relations

	plan := &Plan{Root: s.cfg.Root}
	if err := s.planModel(plan, r, res); err != nil {
		return nil, nil, err
	}
	if err := s.planArtifacts(ctx, plan, r, log); err != nil {
		return nil, nil, err
	}
	if err := s.planRoutes(plan, r, res); err != nil {
		return nil, nil, err
	}
	res.Planned = plan.Paths()
	res.Skipped = plan.Skipped
	for _, sk := range plan.Skipped {
		log.Debug("artifact skipped", zap.String("kind", sk.Kind), zap.String("path", sk.Path), zap.String("reason", sk.Reason))
	}
	return plan, res, nil
}

func (s *Scaffolder) planModel(plan *Plan, r *run, res *Result) error {
	rel := filepath.Join(s.cfg.ModelsDir, r.model+".php")
	src, err := os.ReadFile(filepath.Join(s.cfg.Root, rel))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		plan.skip("model", rel, ReasonMissingFile)
		return nil
	case err != nil:
		return NewGenerationError("model", rel, "cannot read model", err)
	}
	if !scan(string(src)).hasBody() {
		res.Warnings = append(res.Warnings, rel+": class body not found, model left unchanged")
		return nil
	}
	out, applied := PatchModel(string(src), ModelPatch{
		Namespace: s.cfg.ModelNamespace,
		Columns:   r.table.Columns,
		Relations: r.relations,
		Sensitive: s.cfg.Sensitive,
	})
	if len(applied) > 0 {
		plan.add("model", rel, []byte(out))
		res.ModelPatch = applied
	}
	return nil
}

// rendered is the outcome of one artifact.
type rendered struct {
	path    string
	content []byte
	reason  string // non-empty when skipped
}

func (s *Scaffolder) planArtifacts(ctx context.Context, plan *Plan, r *run, log *zap.Logger) error {
	stubs := s.cfg.Stubs
	if stubs == nil {
		stubs = os.DirFS(filepath.Join(s.cfg.Root, s.cfg.StubsDir))
	}
	out := make([]rendered, len(Artifacts))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)
	for i, a := range Artifacts {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := s.render(stubs, a, r)
			if err != nil {
				return err
			}
			if toks := Unresolved(string(o.content)); len(toks) > 0 {
				log.Warn("unresolved stub tokens", zap.String("stub", a.Stub), zap.Strings("tokens", toks))
			}
			out[i] = o
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for i, o := range out {
		if o.reason != "" {
			plan.skip(Artifacts[i].Kind, o.path, o.reason)
			continue
		}
		plan.add(Artifacts[i].Kind, o.path, o.content)
	}
	return nil
}

func (s *Scaffolder) render(stubs fs.FS, a Artifact, r *run) (rendered, error) {
	target := filepath.FromSlash(Render(a.Target, r.ctx))
	tpl, err := fs.ReadFile(stubs, a.Stub)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return rendered{path: target, reason: ReasonMissingStub}, nil
	case err != nil:
		return rendered{}, NewGenerationError("stub", a.Stub, "cannot read stub", err)
	}
	if a.Once && exists(filepath.Join(s.cfg.Root, target)) {
		return rendered{path: target, reason: ReasonPreserved}, nil
	}
	content := Render(Mutate(string(tpl), a.mutators(r)...), r.ctx)
	return rendered{path: target, content: []byte(content)}, nil
}

func (s *Scaffolder) planRoutes(plan *Plan, r *run, res *Result) error {
	content, err := readRoutes(filepath.Join(s.cfg.Root, s.cfg.RouteFile))
	if err != nil {
		return NewGenerationError("routes", s.cfg.RouteFile, "", err)
	}
	out, changed := appendRoutes(content, r.model, s.cfg.Routes())
	if changed {
		plan.add("routes", s.cfg.RouteFile, []byte(out))
		res.RoutesAdded = true
	}
	return nil
}
