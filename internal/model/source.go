package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// SourceFile is a read-only snapshot of a discovered source file.
type SourceFile struct {
	Root    Path // workspace root the file was found under
	Path    Path // absolute path
	RelPath Path // path relative to Root, slash separated
	Type    ProjectType
	Content []byte
}

// ImportReference is a raw import specifier found in source text.
type ImportReference struct {
	Specifier string
}

// ResolvedImport is an import specifier mapped to a file on disk.
type ResolvedImport struct {
	Specifier string
	Path      Path
	Content   []byte
}

// GenerationTask is the context assembled for a single generation request.
type GenerationTask struct {
	Source    SourceFile
	Imports   []ResolvedImport
	Structure string
}

// TestRootDir is the directory under each workspace root that holds generated tests.
const TestRootDir = "tests"

// TestPathMapping is the destination of a generated test file.
type TestPathMapping struct {
	TestDirPath  Path
	TestFilePath Path
}
