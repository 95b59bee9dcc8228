package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

func writeTestFile(t *testing.T, root, rel, content string) m.Path {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", rel, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}

	return m.Path(path)
}

func relPaths(files []m.SourceFile) []string {
	rels := make([]string, 0, len(files))
	for _, f := range files {
		rels = append(rels, string(f.RelPath))
	}

	return rels
}

// initGitWorkspace returns a temp dir that is the root of a fresh git worktree.
func initGitWorkspace(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	if _, err := git.PlainInit(root, false); err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}

	return root
}
