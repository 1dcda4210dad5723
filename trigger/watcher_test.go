package trigger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/compiler/gen"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql/schema"
)

const modelSource = `<?php

namespace App\Models;

use Illuminate\Database\Eloquent\Model;

class %s extends Model
{
}
`

func writeModel(t *testing.T, dir, model string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, model+".php"), []byte(fmt.Sprintf(modelSource, model)), 0o644))
}

func waitCall(t *testing.T, ch <-chan call, want call) {
	t.Helper()
	select {
	case c := <-ch:
		require.Equal(t, want, c)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for %s", want.model)
	}
}

// startWatcher runs a watcher over dir and returns a func stopping it.
func startWatcher(t *testing.T, dir string, g *fakeGenerator) func() {
	t.Helper()
	w, err := NewWatcher(dir, NewListener(g, nil), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop")
		}
		_ = w.Close()
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGenerator{entered: make(chan call, 4)}
	w, err := NewWatcher(dir, NewListener(g, nil), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "helpers.php"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Product.php"), []byte("<?php\n"), 0o644))

	select {
	case c := <-g.entered:
		assert.Equal(t, call{"Product", "products"}, c)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for Product.php")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Len(t, g.Calls(), 1)
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), NewListener(&fakeGenerator{}, nil), nil)
	assert.Error(t, err)
}

func TestWatcherIgnoresPatchedModel(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGenerator{entered: make(chan call, 4)}
	g.hook = func(model string) {
		_, err := gen.PatchModelFile(filepath.Join(dir, model+".php"), gen.ModelPatch{
			Namespace: gen.DefaultModelNamespace,
			Columns:   []schema.Column{{Name: "name", Type: "varchar", NotNull: true}},
		})
		assert.NoError(t, err)
	}
	stop := startWatcher(t, dir, g)

	writeModel(t, dir, "Product")
	waitCall(t, g.entered, call{"Product", "products"})
	// Events are handled in order, so a second Product run would come first.
	writeModel(t, dir, "Order")
	waitCall(t, g.entered, call{"Order", "orders"})
	stop()

	assert.Equal(t, []call{{"Product", "products"}, {"Order", "orders"}}, g.Calls())
	src, err := os.ReadFile(filepath.Join(dir, "Product.php"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "$fillable")
}

func TestWatcherExistingAndRecreatedModels(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "Category")
	g := &fakeGenerator{entered: make(chan call, 4)}
	stop := startWatcher(t, dir, g)

	tmp := filepath.Join(dir, ".Category.php.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("<?php\n"), 0o644))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, "Category.php")))
	writeModel(t, dir, "Tag")
	waitCall(t, g.entered, call{"Tag", "tags"})

	require.NoError(t, os.Remove(filepath.Join(dir, "Tag.php")))
	writeModel(t, dir, "Tag")
	waitCall(t, g.entered, call{"Tag", "tags"})
	stop()

	assert.Equal(t, []call{{"Tag", "tags"}, {"Tag", "tags"}}, g.Calls())
}
