package domain

import (
	"context"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"testgenie.dev/pkg/testgenie/internal/adapter"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

// ImportResolver extracts import specifiers from source text and maps them to
// files inside the workspace so their content can be given to the generator.
type ImportResolver interface {
	// FindImports returns every import specifier in text, in order of
	// appearance. Duplicates are kept.
	FindImports(text string) []m.ImportReference

	// Resolve maps each distinct specifier to the first existing file under
	// roots. Unresolved or unreadable specifiers are omitted.
	Resolve(ctx context.Context, refs []m.ImportReference, roots []m.Path, pt m.ProjectType) []m.ResolvedImport
}

var (
	importLine     = regexp.MustCompile(`^\s*import\s+(?:static\s+)?([\w.]+)`)
	fromImportLine = regexp.MustCompile(`^\s*from\s+([\w.]+)\s+import\s+\S`)
)

type importResolver struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewImportResolver constructs an ImportResolver that checks candidates
// through fsAdapter.
func NewImportResolver(fsAdapter adapter.SourceFSAdapter) ImportResolver {
	return &importResolver{fsAdapter: fsAdapter}
}

func (r *importResolver) FindImports(text string) []m.ImportReference {
	var refs []m.ImportReference

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")

		match := fromImportLine.FindStringSubmatch(line)
		if match == nil {
			match = importLine.FindStringSubmatch(line)
		}

		if match == nil {
			continue
		}

		refs = append(refs, m.ImportReference{Specifier: match[1]})
	}

	return refs
}

func (r *importResolver) Resolve(ctx context.Context, refs []m.ImportReference, roots []m.Path, pt m.ProjectType) []m.ResolvedImport {
	if !pt.ResolvesImports() {
		return nil
	}

	seen := make(map[string]struct{}, len(refs))

	var resolved []m.ResolvedImport

	for _, ref := range refs {
		if ctx.Err() != nil {
			break
		}

		if _, ok := seen[ref.Specifier]; ok {
			continue
		}

		seen[ref.Specifier] = struct{}{}

		if imp, ok := r.resolveOne(ctx, ref.Specifier, roots, pt); ok {
			resolved = append(resolved, imp)
		}
	}

	return resolved
}

func (r *importResolver) resolveOne(ctx context.Context, specifier string, roots []m.Path, pt m.ProjectType) (m.ResolvedImport, bool) {
	candidates := importCandidates(specifier, pt)
	if len(candidates) == 0 {
		return m.ResolvedImport{}, false
	}

	for _, base := range r.lookupBases(ctx, roots, pt) {
		for _, candidate := range candidates {
			full := r.fsAdapter.JoinPath(ctx, string(base), filepath.FromSlash(candidate))

			info, err := r.fsAdapter.FileInfo(ctx, full)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}

			content, err := r.fsAdapter.ReadFile(ctx, full)
			if err != nil {
				slog.Warn("Skipping unreadable import", "specifier", specifier, "path", full, "error", err)
				continue
			}

			return m.ResolvedImport{Specifier: specifier, Path: full, Content: content}, true
		}
	}

	return m.ResolvedImport{}, false
}

// lookupBases returns each root followed by the type's import roots under it.
func (r *importResolver) lookupBases(ctx context.Context, roots []m.Path, pt m.ProjectType) []m.Path {
	bases := make([]m.Path, 0, len(roots)*(1+len(pt.ImportRoots())))
	for _, root := range roots {
		bases = append(bases, root)

		for _, dir := range pt.ImportRoots() {
			bases = append(bases, r.fsAdapter.JoinPath(ctx, string(root), filepath.FromSlash(dir)))
		}
	}

	return bases
}

// importCandidates lists the slash-separated relative paths a specifier may
// live at: the module file itself, then the package init file.
func importCandidates(specifier string, pt m.ProjectType) []string {
	modulePath := strings.ReplaceAll(strings.Trim(specifier, "."), ".", "/")
	if modulePath == "" {
		return nil
	}

	candidates := []string{modulePath + pt.Extension()}

	if init := pt.PackageInit(); init != "" {
		candidates = append(candidates, modulePath+"/"+init)
	}

	return candidates
}
