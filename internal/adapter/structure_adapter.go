package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

// DefaultStructureExcludes are directory names left out of structure snapshots.
var DefaultStructureExcludes = []string{"node_modules", ".git", "__pycache__", "venv", ".venv", ".env", ".idea", ".vscode"}

// defaultStructureMaxEntries bounds the snapshot so large trees do not
// overwhelm the prompt.
const defaultStructureMaxEntries = 2000

const truncatedMarker = "... (truncated)\n"

// StructureAdapter renders a textual directory tree of a workspace.
type StructureAdapter interface {
	Snapshot(ctx context.Context, root m.Path) (string, error)
}

// LocalStructureAdapter draws trees from the local disk.
type LocalStructureAdapter struct {
	exclude    map[string]struct{}
	maxEntries int
}

// StructureOption configures a LocalStructureAdapter.
type StructureOption func(*LocalStructureAdapter)

// WithStructureExcludes replaces the excluded directory names.
func WithStructureExcludes(names ...string) StructureOption {
	return func(a *LocalStructureAdapter) {
		a.exclude = make(map[string]struct{}, len(names))
		for _, n := range names {
			a.exclude[n] = struct{}{}
		}
	}
}

// WithStructureMaxEntries limits the number of rendered entries. Zero or less disables the limit.
func WithStructureMaxEntries(n int) StructureOption {
	return func(a *LocalStructureAdapter) {
		a.maxEntries = n
	}
}

// NewLocalStructureAdapter constructs a LocalStructureAdapter.
func NewLocalStructureAdapter(opts ...StructureOption) *LocalStructureAdapter {
	a := &LocalStructureAdapter{maxEntries: defaultStructureMaxEntries}
	WithStructureExcludes(DefaultStructureExcludes...)(a)

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Snapshot renders root as a tree using box-drawing prefixes, one entry per line.
func (a *LocalStructureAdapter) Snapshot(ctx context.Context, root m.Path) (string, error) {
	var b strings.Builder

	state := &snapshotState{}
	if err := a.render(ctx, &b, string(root), "", state); err != nil {
		return "", err
	}

	return b.String(), nil
}

type snapshotState struct {
	count     int
	truncated bool
}

func (a *LocalStructureAdapter) render(ctx context.Context, b *strings.Builder, dir, prefix string, state *snapshotState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	visible := entries[:0]
	for _, e := range entries {
		if _, skip := a.exclude[e.Name()]; skip && e.IsDir() {
			continue
		}

		visible = append(visible, e)
	}

	for i, e := range visible {
		if state.truncated {
			return nil
		}

		if a.maxEntries > 0 && state.count >= a.maxEntries {
			state.truncated = true
			b.WriteString(prefix + truncatedMarker)

			return nil
		}

		state.count++

		last := i == len(visible)-1
		marker, childPrefix := "├── ", prefix+"│   "
		if last {
			marker, childPrefix = "└── ", prefix+"    "
		}

		b.WriteString(prefix + marker + e.Name() + "\n")

		if e.IsDir() {
			// Unreadable subdirectories are shown as leaves.
			_ = a.render(ctx, b, filepath.Join(dir, e.Name()), childPrefix, state)
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}

	return nil
}
