package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"testgenie.dev/pkg/testgenie/internal/adapter"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

// Default discovery rules.
var (
	DefaultExcludedDirs = []string{
		"test", "tests", "models", "schemas", "__pycache__", "node_modules",
		"dist", "venv", ".venv", "target", "build", "migrations", "templates",
		"static", "config", "docs", "conda", "env", "envs", "environments",
		"conda-envs", ".conda", ".conda-envs", ".env", ".envs", ".environments",
		".git", "__tests__", "coverage",
	}

	DefaultExcludedFiles = []string{
		"__init__.py", "run.py", "main.py", "application.py", "app.py",
		"wsgi.py", "manage.py", "settings.py", "urls.py", "config.py",
		"setup.py", "conftest.py",
		"test_*.py", "*_test.py", "*.test.*", "*.spec.*",
	}

	DefaultIncludeKeywords = []string{
		"repository", "repositories", "service", "services",
		"util", "utils", "helper", "helpers", "routes",
	}
)

// ExclusionRuleSet decides which directories and files are never candidates.
// Name patterns use path.Match syntax and match case-insensitively.
type ExclusionRuleSet struct {
	dirs     []string
	files    []string
	patterns []*regexp.Regexp
}

// NewExclusionRuleSet validates the glob patterns and compiles the path
// regular expressions.
func NewExclusionRuleSet(dirs, files, pathPatterns []string) (ExclusionRuleSet, error) {
	rules := ExclusionRuleSet{
		dirs:  lowerAll(dirs),
		files: lowerAll(files),
	}

	for _, glob := range append(append([]string{}, rules.dirs...), rules.files...) {
		if _, err := path.Match(glob, ""); err != nil {
			return ExclusionRuleSet{}, fmt.Errorf("invalid exclude pattern %q: %w", glob, err)
		}
	}

	for _, pattern := range pathPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return ExclusionRuleSet{}, fmt.Errorf("invalid exclude regex %q: %w", pattern, err)
		}

		rules.patterns = append(rules.patterns, re)
	}

	return rules, nil
}

// DefaultExclusionRuleSet returns the built-in rules without path patterns.
func DefaultExclusionRuleSet() ExclusionRuleSet {
	rules, _ := NewExclusionRuleSet(DefaultExcludedDirs, DefaultExcludedFiles, nil)
	return rules
}

// WithPatterns returns a copy of the rules extended by extra path regexes.
func (r ExclusionRuleSet) WithPatterns(pathPatterns ...string) (ExclusionRuleSet, error) {
	extended, err := NewExclusionRuleSet(nil, nil, pathPatterns)
	if err != nil {
		return ExclusionRuleSet{}, err
	}

	extended.dirs = r.dirs
	extended.files = r.files
	extended.patterns = append(append([]*regexp.Regexp{}, r.patterns...), extended.patterns...)

	return extended, nil
}

// ExcludesDir reports whether a directory with this name is pruned.
func (r ExclusionRuleSet) ExcludesDir(name string) bool {
	return matchesAny(r.dirs, strings.ToLower(name))
}

// ExcludesFile reports whether the file at the slash-separated relative path
// is excluded by its directories, its name or a path pattern.
func (r ExclusionRuleSet) ExcludesFile(relPath string) bool {
	segments := strings.Split(relPath, "/")
	for _, dir := range segments[:len(segments)-1] {
		if r.ExcludesDir(dir) {
			return true
		}
	}

	if matchesAny(r.files, strings.ToLower(segments[len(segments)-1])) {
		return true
	}

	for _, re := range r.patterns {
		if re.MatchString(relPath) {
			return true
		}
	}

	return false
}

// InclusionPolicy keeps only files whose relative path names a testable
// layer. An empty keyword list keeps every file.
type InclusionPolicy struct {
	keywords []string
}

// NewInclusionPolicy creates a policy matching any of keywords.
func NewInclusionPolicy(keywords []string) InclusionPolicy {
	return InclusionPolicy{keywords: lowerAll(keywords)}
}

// DefaultInclusionPolicy returns the policy for DefaultIncludeKeywords.
func DefaultInclusionPolicy() InclusionPolicy {
	return NewInclusionPolicy(DefaultIncludeKeywords)
}

// Includes reports whether relPath contains at least one keyword.
func (p InclusionPolicy) Includes(relPath string) bool {
	if len(p.keywords) == 0 {
		return true
	}

	lower := strings.ToLower(relPath)
	for _, keyword := range p.keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// FileDiscoveryFilter enumerates the source files worth generating tests for.
type FileDiscoveryFilter interface {
	// Discover walks roots in order and returns matching files with their
	// content loaded. exclude adds path regexes on top of the configured rules.
	// An empty result is not an error.
	Discover(ctx context.Context, pt m.ProjectType, roots []m.Path, exclude []string) ([]m.SourceFile, error)
}

type fileDiscoveryFilter struct {
	fsAdapter adapter.SourceFSAdapter
	rules     ExclusionRuleSet
	inclusion InclusionPolicy
}

// NewFileDiscoveryFilter constructs a FileDiscoveryFilter.
func NewFileDiscoveryFilter(fsAdapter adapter.SourceFSAdapter, rules ExclusionRuleSet, inclusion InclusionPolicy) FileDiscoveryFilter {
	return &fileDiscoveryFilter{
		fsAdapter: fsAdapter,
		rules:     rules,
		inclusion: inclusion,
	}
}

func (f *fileDiscoveryFilter) Discover(ctx context.Context, pt m.ProjectType, roots []m.Path, exclude []string) ([]m.SourceFile, error) {
	if !pt.IsDetected() {
		return nil, ErrProjectTypeUndetected
	}

	rules, err := f.rules.WithPatterns(exclude...)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var files []m.SourceFile

	for _, root := range roots {
		found, err := f.discoverRoot(ctx, pt, root, rules, seen)
		if err != nil {
			return nil, err
		}

		files = append(files, found...)
	}

	slog.Debug("Discovered source files", "type", pt.String(), "count", len(files))

	return files, nil
}

func (f *fileDiscoveryFilter) discoverRoot(ctx context.Context, pt m.ProjectType, root m.Path, rules ExclusionRuleSet, seen map[m.Path]struct{}) ([]m.SourceFile, error) {
	var files []m.SourceFile

	err := f.fsAdapter.Walk(ctx, root, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable path", "path", filePath, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			if filePath != string(root) && rules.ExcludesDir(info.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !strings.EqualFold(filepath.Ext(filePath), pt.Extension()) {
			return nil
		}

		rel, err := f.fsAdapter.RelPath(ctx, root, m.Path(filePath))
		if err != nil {
			return nil
		}

		relSlash := filepath.ToSlash(string(rel))
		if rules.ExcludesFile(relSlash) || !f.inclusion.Includes(relSlash) {
			return nil
		}

		if _, ok := seen[m.Path(filePath)]; ok {
			return nil
		}

		content, err := f.fsAdapter.ReadFile(ctx, m.Path(filePath))
		if err != nil {
			slog.Warn("Skipping unreadable source", "path", filePath, "error", err)
			return nil
		}

		seen[m.Path(filePath)] = struct{}{}
		files = append(files, m.SourceFile{
			Root:    root,
			Path:    m.Path(filePath),
			RelPath: m.Path(relSlash),
			Type:    pt,
			Content: content,
		})

		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		slog.Warn("Skipping workspace root", "root", root, "error", err)

		return nil, nil
	}

	return files, nil
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

func lowerAll(values []string) []string {
	lowered := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			lowered = append(lowered, strings.ToLower(v))
		}
	}

	return lowered
}
