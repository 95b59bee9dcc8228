package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

const (
	resultDirPerm  = 0o755
	resultFilePerm = 0o644
)

// WriteOutcome describes what a write did to the destination.
type WriteOutcome struct {
	Path        m.Path
	Overwritten bool
	// Diff is a unified diff against the previous content; empty when the
	// file is new or unchanged.
	Diff string
}

// ResultWriter persists generated files.
type ResultWriter interface {
	// Write creates missing parent directories, then writes content,
	// replacing any existing file at path.
	Write(ctx context.Context, path m.Path, content []byte) (WriteOutcome, error)

	// CreateIfAbsent creates path with content only if nothing exists there.
	// It reports whether the file was created.
	CreateIfAbsent(ctx context.Context, path m.Path, content []byte) (bool, error)
}

// LocalResultWriter implements ResultWriter on the local disk.
type LocalResultWriter struct{}

// NewLocalResultWriter constructs a LocalResultWriter.
func NewLocalResultWriter() *LocalResultWriter {
	return &LocalResultWriter{}
}

// Write implements ResultWriter.
func (w *LocalResultWriter) Write(ctx context.Context, path m.Path, content []byte) (WriteOutcome, error) {
	if err := ctx.Err(); err != nil {
		return WriteOutcome{}, err
	}

	target := string(path)
	outcome := WriteOutcome{Path: path}

	if err := os.MkdirAll(filepath.Dir(target), resultDirPerm); err != nil {
		return outcome, fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	// #nosec G304 - target is derived from the workspace test root
	previous, err := os.ReadFile(target)
	switch {
	case err == nil:
		outcome.Overwritten = true
		outcome.Diff = unifiedDiff(target, string(previous), string(content))
	case !errors.Is(err, os.ErrNotExist):
		return outcome, fmt.Errorf("failed to read existing %s: %w", target, err)
	}

	if err := os.WriteFile(target, content, resultFilePerm); err != nil {
		return outcome, fmt.Errorf("failed to write %s: %w", target, err)
	}

	return outcome, nil
}

// CreateIfAbsent implements ResultWriter using an exclusive create, so two
// callers racing on the same path create it at most once.
func (w *LocalResultWriter) CreateIfAbsent(ctx context.Context, path m.Path, content []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	target := string(path)
	if err := os.MkdirAll(filepath.Dir(target), resultDirPerm); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	// #nosec G304 - target is derived from the workspace test root
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, resultFilePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}

		return false, fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(target)

		return false, fmt.Errorf("failed to write %s: %w", target, err)
	}

	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close %s: %w", target, err)
	}

	return true, nil
}

func unifiedDiff(name, before, after string) string {
	if before == after {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name + " (previous)",
		ToFile:   name,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return text
}
