package trigger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// modelFileRe matches model class files such as Product.php.
var modelFileRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*\.php$`)

// Watcher fires a successful Event for every model file created in a directory.
// A file fires once: replacing an existing model file, as the model patcher
// does with its atomic rename, is not a creation. Removing the file re-arms it.
type Watcher struct {
	dir  string
	l    *Listener
	log  *zap.Logger
	fw   *fsnotify.Watcher
	seen map[string]struct{}
}

// NewWatcher watches dir and hands new model files to l.
func NewWatcher(dir string, l *Listener, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("trigger: create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("trigger: watch %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("trigger: read %s: %w", dir, err)
	}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if modelFileRe.MatchString(e.Name()) {
			seen[e.Name()] = struct{}{}
		}
	}
	return &Watcher{dir: dir, l: l, log: log, fw: fw, seen: seen}, nil
}

// Run processes file events until ctx is done or the watcher is closed.
// Events are handled one at a time.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Info("watching models", zap.String("dir", w.dir))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if !modelFileRe.MatchString(name) {
				continue
			}
			switch {
			case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
				delete(w.seen, name)
				continue
			case !ev.Has(fsnotify.Create):
				continue
			}
			if _, ok := w.seen[name]; ok {
				w.log.Debug("model file replaced, ignored", zap.String("file", name))
				continue
			}
			w.seen[name] = struct{}{}
			w.l.Handle(ctx, Event{Model: strings.TrimSuffix(name, ".php"), Success: true})
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
