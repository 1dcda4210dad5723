// Package gen renders the CRUD scaffold of a Laravel model from the
// metadata of its backing table.
//
// # Architecture
//
// One generation run follows this flow:
//
//	Table metadata (dialect/sql/schema)
//	        ↓
//	   InferRelations, StoreRules, UpdateRules
//	        ↓
//	   PatchModel (app/Models/<Model>.php)
//	        ↓
//	   Render each stub into a Plan
//	        ↓
//	   appendRoutes (routes/api.php)
//	        ↓
//	   Plan.Apply (atomic writes)
//
// Nothing is written until the whole plan has been rendered, so an
// introspection or render failure leaves the project untouched.
//
// # Templates
//
// Stubs use {{key}} placeholders resolved from a Context. Structured
// values are requested with a pipe suffix, such as {{rules|php}} or
// {{relations|json}}, and are resolved by Mutator functions before the
// generic pass. Unknown bare keys render empty; pipe tokens without a
// mutator are left verbatim and reported by Unresolved.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigError: invalid options or arguments
//   - GenerationError: stub, model, route or write failures
//
// A missing table is reported with ErrTableNotFound.
// Introspection errors are returned unwrapped.
//
//	res, err := s.Generate(ctx, "Product", "")
//	if gen.IsTableNotFound(err) {
//	    // run the migration first
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	s, err := gen.NewScaffolder(insp,
//	    gen.WithRoot("/srv/shop"),
//	    gen.WithAPIVersion("v2"),
//	    gen.WithMiddleware("auth:sanctum"),
//	)
//
// # Code Organization
//
//   - config.go: Config type and defaults
//   - option.go: functional options
//   - errors.go: structured error types
//   - func.go: naming helpers
//   - relation.go: foreign key to relation inference
//   - rules.go: validation rules and casts
//   - php.go: PHP literal rendering
//   - template.go: placeholder rendering and mutators
//   - patch.go: idempotent model patching
//   - routes.go: route registration
//   - artifact.go: artifact table
//   - writer.go: plans and atomic writes
//   - generate.go: Scaffolder
//   - stubs.go: embedded default stubs
package gen
