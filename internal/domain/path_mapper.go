package domain

import (
	"path"
	"path/filepath"
	"strings"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

// MapTestPath derives where the test for source is written:
// <root>/tests/<source dir>/<base><suffix><ext>.
//
// It performs no I/O and depends only on source.Root, source.RelPath and pt.
// Parent and volume segments are dropped from the relative path so the result
// never leaves the test root.
func MapTestPath(source m.SourceFile, pt m.ProjectType) m.TestPathMapping {
	rel := sanitizeRelPath(string(source.RelPath))
	dir, file := path.Split(rel)
	base := strings.TrimSuffix(file, path.Ext(file))

	testDir := filepath.Join(string(source.Root), m.TestRootDir, filepath.FromSlash(dir))
	testFile := filepath.Join(testDir, pt.TestFileName(base))

	return m.TestPathMapping{
		TestDirPath:  m.Path(testDir),
		TestFilePath: m.Path(testFile),
	}
}

// TestRoot returns the directory that holds every generated test of root.
func TestRoot(root m.Path) m.Path {
	return m.Path(filepath.Join(string(root), m.TestRootDir))
}

func sanitizeRelPath(rel string) string {
	rel = strings.ReplaceAll(rel, `\`, "/")

	segments := strings.Split(rel, "/")
	kept := segments[:0]

	for i, seg := range segments {
		switch {
		case seg == "", seg == ".", seg == "..":
			continue
		case i == 0 && strings.HasSuffix(seg, ":"):
			continue
		}

		kept = append(kept, seg)
	}

	return strings.Join(kept, "/")
}
