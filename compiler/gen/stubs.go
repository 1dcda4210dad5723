package gen

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

//go:embed stubs/*.stub
var stubFS embed.FS

// DefaultStubs returns the built-in artifact templates.
func DefaultStubs() fs.FS {
	sub, err := fs.Sub(stubFS, "stubs")
	if err != nil {
		panic(err)
	}
	return sub
}

// PublishResult lists the stubs written and preserved by PublishStubs.
type PublishResult struct {
	Written   []string
	Preserved []string
}

// PublishStubs copies the built-in templates into dir. Existing files
// are preserved unless force is set.
func PublishStubs(dir string, force bool) (*PublishResult, error) {
	if dir == "" {
		return nil, NewConfigError("StubsDir", nil, "stubs directory cannot be empty")
	}
	stubs := DefaultStubs()
	entries, err := fs.ReadDir(stubs, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded stubs: %w", err)
	}
	res := &PublishResult{}
	var errs []error
	for _, e := range entries {
		target := filepath.Join(dir, e.Name())
		if !force && exists(target) {
			res.Preserved = append(res.Preserved, e.Name())
			continue
		}
		data, err := fs.ReadFile(stubs, e.Name())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := writeAtomic(target, data); err != nil {
			errs = append(errs, NewGenerationError("stub", target, "cannot publish stub", err))
			continue
		}
		res.Written = append(res.Written, e.Name())
	}
	return res, errors.Join(errs...)
}
