package gen

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	c := Defaults()

	assert.Equal(t, ".", c.Root)
	assert.Equal(t, "v1", c.APIVersion)
	assert.Equal(t, "// [crud-generator] add-below", c.RouteMarker)
	assert.Equal(t, []string{"auth:sanctum", "throttle:api"}, c.Middleware)
	assert.Equal(t, DefaultSensitive, c.Sensitive)
	assert.Equal(t, "stubs/dynamic", c.StubsDir)
	assert.Equal(t, "routes/api.php", c.RouteFile)
	assert.Equal(t, "exports.table", c.ExportView)
	assert.Equal(t, 60, c.CacheTTL)
	assert.NotNil(t, c.Logger)

	t.Run("defaults are not shared", func(t *testing.T) {
		c.Middleware[0] = "changed"
		assert.Equal(t, "auth:sanctum", Defaults().Middleware[0])
	})
}

func TestWithAPIVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"v1", "v1", false},
		{"V2", "v2", false},
		{" v2beta ", "v2beta", false},
		{"1", "", true},
		{"version1", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := Defaults()
			err := WithAPIVersion(tt.input)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				assert.Equal(t, "v1", c.APIVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.APIVersion)
		})
	}
}

func TestWithMiddleware(t *testing.T) {
	t.Run("replaces middleware", func(t *testing.T) {
		c := Defaults()
		require.NoError(t, WithMiddleware("auth:sanctum", " ", "verified")(c))
		assert.Equal(t, []string{"auth:sanctum", "verified"}, c.Middleware)
	})

	t.Run("no values disables middleware", func(t *testing.T) {
		c := Defaults()
		require.NoError(t, WithMiddleware()(c))
		assert.Empty(t, c.Middleware)
	})
}

func TestWithModelNamespace(t *testing.T) {
	c := Defaults()
	require.NoError(t, WithModelNamespace(`\Domain\Shop\Models\`)(c))
	assert.Equal(t, `Domain\Shop\Models`, c.ModelNamespace)

	err := WithModelNamespace(`\`)(c)
	assert.True(t, IsConfigError(err))
}

func TestWithExportView(t *testing.T) {
	c := Defaults()
	require.NoError(t, WithExportView("reports.grid")(c))
	assert.Equal(t, "reports.grid", c.ExportView)

	assert.Error(t, WithExportView("reports/grid")(c))
	assert.Error(t, WithExportView("")(c))
}

func TestEmptyValueOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"root", WithRoot("")},
		{"marker", WithRouteMarker("  ")},
		{"stubs dir", WithStubsDir("")},
		{"stubs", WithStubs(nil)},
		{"route file", WithRouteFile("")},
		{"models dir", WithModelsDir("")},
		{"logger", WithLogger(nil)},
		{"cache ttl", WithCacheTTL(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opt(Defaults())
			require.Error(t, err)
			assert.True(t, IsConfigError(err))
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Run("applies options over defaults", func(t *testing.T) {
		log := zap.NewExample()
		stubs := fstest.MapFS{}
		c, err := NewConfig(
			WithRoot("/srv/shop"),
			WithRouteMarker("// generated routes"),
			WithSensitive("secret"),
			WithStubs(stubs),
			WithDryRun(true),
			WithLogger(log),
		)

		require.NoError(t, err)
		assert.Equal(t, "/srv/shop", c.Root)
		assert.Equal(t, "// generated routes", c.RouteMarker)
		assert.Equal(t, []string{"secret"}, c.Sensitive)
		assert.True(t, c.DryRun)
		assert.Same(t, log, c.Logger)
		assert.Equal(t, "v1", c.APIVersion)
	})

	t.Run("returns first error", func(t *testing.T) {
		_, err := NewConfig(WithRoot(""), WithAPIVersion("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Root")
	})

	t.Run("ApplyAll collects every error", func(t *testing.T) {
		err := Defaults().ApplyAll(WithRoot(""), WithAPIVersion("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Root")
		assert.Contains(t, err.Error(), "APIVersion")
	})

	t.Run("MustNewConfig panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewConfig(WithRoot("")) })
	})
}

func TestConfigRoutes(t *testing.T) {
	c := MustNewConfig(WithAPIVersion("v2"), WithRouteFile("routes/admin.php"))

	rc := c.Routes()

	assert.Equal(t, "routes/admin.php", rc.File)
	assert.Equal(t, DefaultRouteMarker, rc.Marker)
	assert.Equal(t, "v2", rc.Version)
	assert.Equal(t, DefaultMiddleware, rc.Middleware)
}

func TestConfigIsSensitive(t *testing.T) {
	c := Defaults()
	assert.True(t, c.IsSensitive("password"))
	assert.True(t, c.IsSensitive("api_token"))
	assert.False(t, c.IsSensitive("name"))
}
