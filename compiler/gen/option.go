package gen

import (
	"errors"
	"io/fs"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Option configures code generation.
type Option func(*Config) error

var versionRe = regexp.MustCompile(`^v[0-9][0-9a-z]*$`)

// WithRoot sets the Laravel project root.
func WithRoot(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Root", nil, "project root cannot be empty")
		}
		c.Root = dir
		return nil
	}
}

// WithAPIVersion sets the route prefix and controller sub-namespace.
// For example: "v1" produces api/v1/... routes and Api\V1 controllers.
func WithAPIVersion(version string) Option {
	return func(c *Config) error {
		version = strings.ToLower(strings.TrimSpace(version))
		if !versionRe.MatchString(version) {
			return NewConfigError("APIVersion", version, "version must look like v1, v2, v2beta")
		}
		c.APIVersion = version
		return nil
	}
}

// WithRouteMarker sets the anchor line used when appending routes.
func WithRouteMarker(marker string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(marker) == "" {
			return NewConfigError("RouteMarker", nil, "route marker cannot be empty")
		}
		c.RouteMarker = strings.TrimSpace(marker)
		return nil
	}
}

// WithMiddleware replaces the middleware attached to generated routes.
// Passing no values disables route middleware.
func WithMiddleware(middleware ...string) Option {
	return func(c *Config) error {
		c.Middleware = nil
		for _, m := range middleware {
			if m = strings.TrimSpace(m); m != "" {
				c.Middleware = append(c.Middleware, m)
			}
		}
		return nil
	}
}

// WithSensitive replaces the list of columns hidden from outward facing artifacts.
func WithSensitive(columns ...string) Option {
	return func(c *Config) error {
		c.Sensitive = append([]string(nil), columns...)
		return nil
	}
}

// WithStubsDir sets the stub directory, relative to the project root.
func WithStubsDir(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("StubsDir", nil, "stubs directory cannot be empty")
		}
		c.StubsDir = dir
		return nil
	}
}

// WithStubs reads the artifact templates from fsys instead of StubsDir.
func WithStubs(fsys fs.FS) Option {
	return func(c *Config) error {
		if fsys == nil {
			return NewConfigError("Stubs", nil, "stub filesystem cannot be nil")
		}
		c.Stubs = fsys
		return nil
	}
}

// WithRouteFile sets the route file, relative to the project root.
func WithRouteFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("RouteFile", nil, "route file cannot be empty")
		}
		c.RouteFile = path
		return nil
	}
}

// WithModelsDir sets the models directory, relative to the project root.
func WithModelsDir(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("ModelsDir", nil, "models directory cannot be empty")
		}
		c.ModelsDir = dir
		return nil
	}
}

// WithModelNamespace sets the PHP namespace of the model classes.
func WithModelNamespace(ns string) Option {
	return func(c *Config) error {
		ns = strings.Trim(ns, `\ `)
		if ns == "" {
			return NewConfigError("ModelNamespace", nil, "model namespace cannot be empty")
		}
		c.ModelNamespace = ns
		return nil
	}
}

// WithExportView sets the dotted blade view used by PDF exports.
// For example: "exports.table" renders resources/views/exports/table.blade.php.
func WithExportView(view string) Option {
	return func(c *Config) error {
		view = strings.Trim(view, ". ")
		if view == "" || strings.ContainsAny(view, `/\`) {
			return NewConfigError("ExportView", view, "view must be a dotted blade name")
		}
		c.ExportView = view
		return nil
	}
}

// WithCacheTTL sets the repository cache lifetime in seconds.
func WithCacheTTL(seconds int) Option {
	return func(c *Config) error {
		if seconds < 0 {
			return NewConfigError("CacheTTL", seconds, "cache ttl cannot be negative")
		}
		c.CacheTTL = seconds
		return nil
	}
}

// WithDryRun toggles planning without writing.
func WithDryRun(dry bool) Option {
	return func(c *Config) error {
		c.DryRun = dry
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Config) error {
		if log == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = log
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := Defaults()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
