package domain

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"testgenie.dev/pkg/testgenie/internal/adapter"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

// DefaultDetectionSkipDirs are never descended into while counting sources.
var DefaultDetectionSkipDirs = []string{".git", ".hg", ".svn"}

// ProjectTypeDetector infers the dominant language of a workspace.
type ProjectTypeDetector interface {
	// Detect counts source files per supported type across all roots and
	// returns the type with the most files. Ties go to the earlier type in
	// m.SupportedProjectTypes. Zero files yields m.Undetected.
	Detect(ctx context.Context, roots []m.Path) (m.Detection, error)
}

type projectTypeDetector struct {
	fsAdapter adapter.SourceFSAdapter
	skipDirs  map[string]struct{}
}

// NewProjectTypeDetector constructs a detector. skipDirs replaces
// DefaultDetectionSkipDirs when given.
func NewProjectTypeDetector(fsAdapter adapter.SourceFSAdapter, skipDirs ...string) ProjectTypeDetector {
	if len(skipDirs) == 0 {
		skipDirs = DefaultDetectionSkipDirs
	}

	skip := make(map[string]struct{}, len(skipDirs))
	for _, dir := range skipDirs {
		skip[strings.ToLower(dir)] = struct{}{}
	}

	return &projectTypeDetector{fsAdapter: fsAdapter, skipDirs: skip}
}

func (d *projectTypeDetector) Detect(ctx context.Context, roots []m.Path) (m.Detection, error) {
	perRoot := make([]map[m.ProjectType]int, len(roots))

	g, gctx := errgroup.WithContext(ctx)

	for i, root := range roots {
		g.Go(func() error {
			counts, err := d.countRoot(gctx, root)
			if err != nil {
				return err
			}

			perRoot[i] = counts

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.Detection{Type: m.Undetected}, err
	}

	total := make(map[m.ProjectType]int)

	for _, counts := range perRoot {
		for pt, n := range counts {
			total[pt] += n
		}
	}

	detection := m.Detection{Type: m.Undetected, Counts: total}
	best := 0

	for _, pt := range m.SupportedProjectTypes() {
		if total[pt] > best {
			best = total[pt]
			detection.Type = pt
		}
	}

	slog.Debug("Detected project type", "type", detection.Type.String(), "counts", total)

	return detection, nil
}

func (d *projectTypeDetector) countRoot(ctx context.Context, root m.Path) (map[m.ProjectType]int, error) {
	counts := make(map[m.ProjectType]int)

	err := d.fsAdapter.Walk(ctx, root, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable path", "path", filePath, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			if _, skip := d.skipDirs[strings.ToLower(info.Name())]; skip && filePath != string(root) {
				return filepath.SkipDir
			}

			return nil
		}

		if pt, ok := m.ProjectTypeForExtension(filepath.Ext(filePath)); ok {
			counts[pt]++
		}

		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		slog.Warn("Skipping workspace root", "root", root, "error", err)
	}

	return counts, nil
}
