package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Skip reasons recorded in a Plan.
const (
	ReasonMissingStub = "missing stub"
	ReasonPreserved   = "preserved"
	ReasonMissingFile = "missing file"
)

// FileOp is one rendered file of a plan. Path is relative to the project root.
type FileOp struct {
	Kind    string
	Path    string
	Content []byte
}

// Skip records an artifact that is not written and why.
type Skip struct {
	Kind   string
	Path   string
	Reason string
}

// Plan is the complete set of files one run writes. Nothing touches the
// filesystem until Apply is called.
type Plan struct {
	Root    string
	Files   []FileOp
	Skipped []Skip
}

// WriterMetrics tracks what Apply wrote.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
}

func (p *Plan) add(kind, path string, content []byte) {
	p.Files = append(p.Files, FileOp{Kind: kind, Path: path, Content: content})
}

func (p *Plan) skip(kind, path, reason string) {
	p.Skipped = append(p.Skipped, Skip{Kind: kind, Path: path, Reason: reason})
}

// Paths returns the relative paths of the planned files in order.
func (p *Plan) Paths() []string {
	paths := make([]string, len(p.Files))
	for i, f := range p.Files {
		paths[i] = f.Path
	}
	return paths
}

// Apply writes the planned files in order, each one atomically. It stops
// at the first failure and returns the paths written so far together
// with a GenerationError naming the failed file.
func (p *Plan) Apply(ctx context.Context) ([]string, WriterMetrics, error) {
	var (
		written []string
		m       WriterMetrics
	)
	for _, f := range p.Files {
		if err := ctx.Err(); err != nil {
			return written, m, NewGenerationError("write", f.Path, "canceled", err)
		}
		if err := writeAtomic(filepath.Join(p.Root, f.Path), f.Content); err != nil {
			return written, m, NewGenerationError("write", f.Path, "", err)
		}
		written = append(written, f.Path)
		m.FilesWritten++
		m.TotalBytes += int64(len(f.Content))
	}
	return written, m, nil
}

// writeAtomic replaces path with data through a temporary file in the
// same directory, creating parent directories as needed.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// exists reports whether path names an existing file or directory.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
