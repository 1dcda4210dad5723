package gen

// Artifact is one stub rendered per run.
type Artifact struct {
	// Kind names the artifact in plans and logs.
	Kind string
	// Stub is the template file name inside the stubs directory.
	Stub string
	// Target is the output path template, relative to the project root.
	Target string
	// Once artifacts are written only when the target is absent.
	Once bool
	// Rules selects the rule set embedded as {{rules|php}}.
	Rules func(r *run) RuleSet
}

// Artifacts lists the generated files in write order.
var Artifacts = []Artifact{
	{Kind: "resource", Stub: "resource.stub", Target: "app/Http/Resources/{{model}}Resource.php"},
	{
		Kind:   "request.store",
		Stub:   "request.store.stub",
		Target: "app/Http/Requests/{{model}}/Store{{model}}Request.php",
		Rules:  func(r *run) RuleSet { return r.store },
	},
	{
		Kind:   "request.update",
		Stub:   "request.update.stub",
		Target: "app/Http/Requests/{{model}}/Update{{model}}Request.php",
		Rules:  func(r *run) RuleSet { return r.update },
	},
	{Kind: "repository", Stub: "repository.stub", Target: "app/Repositories/{{model}}Repository.php"},
	{Kind: "service", Stub: "service.stub", Target: "app/Services/{{model}}Service.php"},
	{Kind: "service.custom", Stub: "service.custom.stub", Target: "app/Services/{{model}}ServiceExtension.php", Once: true},
	{Kind: "policy", Stub: "policy.stub", Target: "app/Policies/{{model}}Policy.php"},
	{Kind: "controller", Stub: "controller.stub", Target: "app/Http/Controllers/Api/{{versionDir}}/{{model}}Controller.php"},
	{Kind: "trait.query", Stub: "trait.query.stub", Target: "app/Http/Controllers/Api/{{versionDir}}/Concerns/BuildsDynamicQueries.php", Once: true},
	{Kind: "export.excel", Stub: "export.excel.stub", Target: "app/Exports/{{model}}Export.php"},
	{Kind: "export.pdf.view", Stub: "export.pdf.view.stub", Target: "resources/views/{{exportViewPath}}.blade.php", Once: true},
	{Kind: "tests.feature", Stub: "tests.feature.stub", Target: "tests/Feature/Api/{{versionDir}}/{{model}}ControllerTest.php"},
}

// mutators returns the structured-token resolvers applied to the stub of a.
func (a Artifact) mutators(r *run) []Mutator {
	ms := []Mutator{
		ReplaceJSON("relations", r.relations),
		ReplaceLiteral("relations", relationsLiteral(r.relations)),
		ReplaceJSON("columns", r.columnNames()),
		ReplaceLiteral("fillable", phpList(r.fillable)),
		ReplaceLiteral("casts", r.casts),
		ReplaceLiteral("sensitive", phpList(r.cfg.Sensitive)),
		ReplaceLiteral("visible", phpList(r.visible())),
	}
	if a.Rules != nil {
		ms = append(ms, ReplaceRules(a.Rules(r)))
	}
	return ms
}
