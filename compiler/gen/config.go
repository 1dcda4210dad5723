package gen

import (
	"io/fs"
	"slices"

	"go.uber.org/zap"
)

// Defaults used by NewConfig.
const (
	DefaultAPIVersion     = "v1"
	DefaultRouteMarker    = "// [crud-generator] add-below"
	DefaultStubsDir       = "stubs/dynamic"
	DefaultRouteFile      = "routes/api.php"
	DefaultModelsDir      = "app/Models"
	DefaultModelNamespace = `App\Models`
	DefaultExportView     = "exports.table"
	DefaultCacheTTL       = 60
)

// DefaultMiddleware is attached to every generated route.
var DefaultMiddleware = []string{"auth:sanctum", "throttle:api"}

// DefaultSensitive lists the columns that never appear in
// generated resources or exports.
var DefaultSensitive = []string{
	"password",
	"remember_token",
	"two_factor_secret",
	"two_factor_recovery_codes",
	"api_token",
}

// Config holds the global configuration for scaffold generation.
type Config struct {
	// Root is the Laravel project root. All other paths are relative to it.
	Root string

	// APIVersion is the route prefix and controller sub-namespace, e.g. "v1".
	APIVersion string

	// RouteMarker is the line inside the route file below which route
	// blocks are inserted.
	RouteMarker string

	// Middleware is attached to every generated route.
	Middleware []string

	// Sensitive columns are excluded from resources and exports.
	Sensitive []string

	// StubsDir holds the artifact templates.
	StubsDir string

	// Stubs overrides StubsDir when set, e.g. with DefaultStubs.
	Stubs fs.FS

	// RouteFile is the route file patched with new route blocks.
	RouteFile string

	// ModelsDir holds the model source files.
	ModelsDir string

	// ModelNamespace is the PHP namespace of the model classes.
	ModelNamespace string

	// ExportView is the dotted blade view name rendered by PDF exports.
	ExportView string

	// CacheTTL is the repository cache lifetime in seconds.
	CacheTTL int

	// DryRun renders every artifact without touching the filesystem.
	DryRun bool

	// Logger receives structured diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Defaults returns a Config populated with the default settings.
func Defaults() *Config {
	return &Config{
		Root:           ".",
		APIVersion:     DefaultAPIVersion,
		RouteMarker:    DefaultRouteMarker,
		Middleware:     slices.Clone(DefaultMiddleware),
		Sensitive:      slices.Clone(DefaultSensitive),
		StubsDir:       DefaultStubsDir,
		RouteFile:      DefaultRouteFile,
		ModelsDir:      DefaultModelsDir,
		ModelNamespace: DefaultModelNamespace,
		ExportView:     DefaultExportView,
		CacheTTL:       DefaultCacheTTL,
		Logger:         zap.NewNop(),
	}
}

// RouteConfig groups the settings that shape generated routes.
type RouteConfig struct {
	File       string
	Marker     string
	Version    string
	Middleware []string
}

// Routes returns the grouped route settings.
func (c *Config) Routes() RouteConfig {
	return RouteConfig{
		File:       c.RouteFile,
		Marker:     c.RouteMarker,
		Version:    c.APIVersion,
		Middleware: c.Middleware,
	}
}

// IsSensitive reports whether the column is excluded from outward facing artifacts.
func (c *Config) IsSensitive(column string) bool {
	return slices.Contains(c.Sensitive, column)
}

// logger returns the configured logger, never nil.
func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
