package gen

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStubs(t *testing.T) {
	stubs := DefaultStubs()

	for _, a := range Artifacts {
		t.Run(a.Kind, func(t *testing.T) {
			b, err := fs.ReadFile(stubs, a.Stub)
			require.NoError(t, err)
			assert.NotEmpty(t, b)
		})
	}

	t.Run("request stubs embed rules", func(t *testing.T) {
		for _, name := range []string{"request.store.stub", "request.update.stub"} {
			b, err := fs.ReadFile(stubs, name)
			require.NoError(t, err)
			assert.Contains(t, string(b), "{{rules|php}}")
		}
	})

	t.Run("json tokens outside php strings", func(t *testing.T) {
		quoted := regexp.MustCompile(`'[^'\n]*\{\{\s*\w+\|json\s*\}\}[^'\n]*'`)
		for _, a := range Artifacts {
			b, err := fs.ReadFile(stubs, a.Stub)
			require.NoError(t, err)
			assert.False(t, quoted.Match(b), a.Stub)
		}
	})
}

func TestPublishStubs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "stubs", "dynamic")

	res, err := PublishStubs(dir, false)
	require.NoError(t, err)
	assert.Len(t, res.Written, len(Artifacts))
	assert.Empty(t, res.Preserved)

	custom := filepath.Join(dir, "policy.stub")
	require.NoError(t, os.WriteFile(custom, []byte("custom"), 0o644))

	t.Run("existing stubs preserved", func(t *testing.T) {
		res, err := PublishStubs(dir, false)
		require.NoError(t, err)
		assert.Empty(t, res.Written)
		assert.Len(t, res.Preserved, len(Artifacts))

		b, err := os.ReadFile(custom)
		require.NoError(t, err)
		assert.Equal(t, "custom", string(b))
	})

	t.Run("force overwrites", func(t *testing.T) {
		res, err := PublishStubs(dir, true)
		require.NoError(t, err)
		assert.Len(t, res.Written, len(Artifacts))

		b, err := os.ReadFile(custom)
		require.NoError(t, err)
		assert.NotEqual(t, "custom", string(b))
	})

	t.Run("empty dir", func(t *testing.T) {
		_, err := PublishStubs("", false)
		assert.True(t, IsConfigError(err))
	})
}
