package trigger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/compiler/gen"
)

type call struct {
	model string
	table string
}

// fakeGenerator records calls and returns a fixed outcome.
type fakeGenerator struct {
	mu      sync.Mutex
	calls   []call
	err     error
	hook    func(model string)
	entered chan call
	release chan struct{}
}

func (f *fakeGenerator) Generate(_ context.Context, model, table string) (*gen.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{model, table})
	f.mu.Unlock()
	if f.hook != nil {
		f.hook(model)
	}
	if f.entered != nil {
		f.entered <- call{model, table}
	}
	if f.release != nil {
		<-f.release
	}
	res := &gen.Result{RunID: "run-1", Model: model, Table: table, Written: []string{"app/Http/Resources/" + model + "Resource.php"}}
	if f.err != nil {
		return res, f.err
	}
	return res, nil
}

func (f *fakeGenerator) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func TestListenerHandle(t *testing.T) {
	t.Run("generates for successful event", func(t *testing.T) {
		g := &fakeGenerator{}
		core, logs := observer.New(zap.InfoLevel)

		rep := NewListener(g, zap.New(core)).Handle(context.Background(), Event{Model: `App\Models\OrderItem`, Success: true})

		assert.Equal(t, Generated, rep.Outcome)
		assert.Equal(t, "OrderItem", rep.Model)
		assert.Equal(t, "order_items", rep.Table)
		require.NotNil(t, rep.Result)
		assert.Equal(t, []call{{"OrderItem", "order_items"}}, g.Calls())
		assert.Equal(t, 1, logs.FilterMessage("scaffold done").Len())
	})

	t.Run("unsuccessful event is a no-op", func(t *testing.T) {
		g := &fakeGenerator{}

		rep := NewListener(g, nil).Handle(context.Background(), Event{Model: "Product"})

		assert.Equal(t, Skipped, rep.Outcome)
		assert.Empty(t, g.Calls())
	})

	t.Run("empty model is a no-op", func(t *testing.T) {
		g := &fakeGenerator{}

		rep := NewListener(g, nil).Handle(context.Background(), Event{Model: " ", Success: true})

		assert.Equal(t, Skipped, rep.Outcome)
		assert.Empty(t, g.Calls())
	})

	t.Run("missing table is logged", func(t *testing.T) {
		g := &fakeGenerator{err: fmt.Errorf("%w: products", gen.ErrTableNotFound)}
		core, logs := observer.New(zap.DebugLevel)

		rep := NewListener(g, zap.New(core)).Handle(context.Background(), Event{Model: "Product", Success: true})

		assert.Equal(t, Skipped, rep.Outcome)
		assert.Equal(t, "table not found", rep.Reason)
		entries := logs.FilterLevelExact(zapcore.WarnLevel).All()
		require.Len(t, entries, 1)
		assert.Equal(t, "products", entries[0].ContextMap()["table"])
	})

	t.Run("generator error is swallowed", func(t *testing.T) {
		g := &fakeGenerator{err: errors.New("disk full")}
		core, logs := observer.New(zap.DebugLevel)

		rep := NewListener(g, zap.New(core)).Handle(context.Background(), Event{Model: "Product", Success: true})

		assert.Equal(t, Failed, rep.Outcome)
		assert.Equal(t, "disk full", rep.Reason)
		assert.NotNil(t, rep.Result)
		assert.Equal(t, 1, logs.FilterMessage("scaffold failed").Len())
	})
}
