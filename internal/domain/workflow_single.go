package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"testgenie.dev/pkg/testgenie/internal/controller"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

const (
	testResultsFileName = "test-results.xml"
	coverageFileName    = "coverage.xml"
	reportsDirName      = "reports"
	reportTimeLayout    = "2006-01-02T15-04-05.000Z"
)

// Unit generates tests for a single source file, using the same mapping,
// cleanup and bootstrap rules as a batch.
func (w *workflow) Unit(ctx context.Context, args UnitArgs) (m.GenerationResult, error) {
	abs, err := filepath.Abs(string(args.File))
	if err != nil {
		return m.GenerationResult{}, fmt.Errorf("failed to resolve %s: %w", args.File, err)
	}

	pt, ok := m.ProjectTypeForExtension(filepath.Ext(abs))
	if !ok {
		return m.GenerationResult{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, args.File)
	}

	source, err := w.loadSource(ctx, m.Path(abs), pt)
	if err != nil {
		return m.GenerationResult{}, err
	}

	report := m.BatchReport{
		RunID:       uuid.NewString(),
		ProjectType: pt,
		Roots:       []m.Path{source.Root},
		StartedAt:   time.Now(),
	}

	if err := w.ui.Start(ctx, controller.WithSingleMode()); err != nil {
		return m.GenerationResult{}, fmt.Errorf("failed to start ui: %w", err)
	}

	results, genErr := w.orchestrator.GenerateTests(ctx, pt, report.Roots, []m.SourceFile{source})

	w.ui.Close(ctx)

	report.Results = results
	report.FinishedAt = time.Now()

	w.saveReport(ctx, report)

	if genErr != nil {
		return m.GenerationResult{}, genErr
	}

	if len(results) == 0 {
		return m.GenerationResult{}, fmt.Errorf("no result for %s", args.File)
	}

	result := results[0]
	if result.Status != m.Success {
		return result, fmt.Errorf("failed to generate tests for %s: %s", args.File, result.Reason)
	}

	w.ui.DisplayMessage(ctx, fmt.Sprintf("Test file written to %s", result.TestFilePath))

	return result, nil
}

func (w *workflow) loadSource(ctx context.Context, path m.Path, pt m.ProjectType) (m.SourceFile, error) {
	content, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	root, err := w.fs.FindWorkspaceRoot(ctx, path)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("%w: %w", ErrNoWorkspace, err)
	}

	rel, err := w.fs.RelPath(ctx, root, path)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("failed to resolve %s relative to %s: %w", path, root, err)
	}

	return m.SourceFile{
		Root:    root,
		Path:    path,
		RelPath: m.Path(filepath.ToSlash(string(rel))),
		Type:    pt,
		Content: content,
	}, nil
}

// API generates an API test file next to an OpenAPI contract.
func (w *workflow) API(ctx context.Context, args APIArgs) (m.Path, error) {
	abs, err := filepath.Abs(string(args.Contract))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", args.Contract, err)
	}

	data, err := w.fs.ReadFile(ctx, m.Path(abs))
	if err != nil {
		return "", fmt.Errorf("failed to read contract: %w", err)
	}

	contract, err := ParseContract(abs, data)
	if err != nil {
		return "", err
	}

	root, err := w.fs.FindWorkspaceRoot(ctx, m.Path(abs))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoWorkspace, err)
	}

	pt := args.ProjectType
	if !pt.IsDetected() {
		detection, err := w.detector.Detect(ctx, []m.Path{root})
		if err != nil {
			return "", fmt.Errorf("failed to detect project type: %w", err)
		}

		if !detection.Type.IsDetected() {
			return "", ErrProjectTypeUndetected
		}

		pt = detection.Type
	}

	structure, err := w.structure.Snapshot(ctx, root)
	if err != nil {
		slog.Warn("Failed to snapshot project structure", "root", root, "error", err)
	}

	w.ui.DisplayMessage(ctx, fmt.Sprintf("Generating %s API tests for %s", pt.Framework(), filepath.Base(abs)))

	raw, err := w.generator.Generate(ctx, BuildAPITestPrompt(pt, contract, structure))
	if err != nil {
		return "", fmt.Errorf("failed to generate API tests: %w", err)
	}

	code := StripAllFences(raw)
	if code == "" {
		return "", ErrEmptyResponse
	}

	target := m.Path(filepath.Join(filepath.Dir(abs), pt.APITestFileName()))
	content := apiTestHeader(pt, filepath.Base(abs)) + withTrailingNewline(code)

	if _, err := w.writer.Write(ctx, target, []byte(content)); err != nil {
		return "", fmt.Errorf("failed to write API tests: %w", err)
	}

	w.ui.DisplayMessage(ctx, fmt.Sprintf("API tests written to %s", target))

	return target, nil
}

func apiTestHeader(pt m.ProjectType, contractName string) string {
	prefix := pt.CommentPrefix()

	return fmt.Sprintf("%s Generated test cases for %s\n%s Using %s\n\n", prefix, contractName, prefix, apiFramework(pt))
}

// Analyze turns a JUnit XML results file into a markdown report under
// <root>/reports.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) (m.Path, error) {
	var paths []m.Path
	if args.Path != "" {
		paths = []m.Path{args.Path}
	}

	roots, err := w.resolveRoots(ctx, paths)
	if err != nil {
		return "", err
	}

	root := roots[0]

	resultsPath := args.Results
	if resultsPath == "" {
		resultsPath = w.fs.JoinPath(ctx, string(root), testResultsFileName)
	}

	results, err := w.fs.ReadFile(ctx, resultsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNoTestResults, resultsPath)
		}

		return "", fmt.Errorf("failed to read test results: %w", err)
	}

	coverage, err := w.readCoverage(ctx, root, args.Coverage)
	if err != nil {
		return "", err
	}

	w.ui.DisplayMessage(ctx, fmt.Sprintf("Analyzing %s", resultsPath))

	raw, err := w.generator.Generate(ctx, BuildAnalysisPrompt(string(results), coverage))
	if err != nil {
		return "", fmt.Errorf("failed to analyze test results: %w", err)
	}

	analysis := CleanGeneratedCode(raw)
	if strings.TrimSpace(analysis) == "" {
		return "", ErrEmptyResponse
	}

	target := w.fs.JoinPath(ctx, string(root), reportsDirName, analysisFileName(time.Now()))
	if _, err := w.writer.Write(ctx, target, []byte(withTrailingNewline(analysis))); err != nil {
		return "", fmt.Errorf("failed to write analysis report: %w", err)
	}

	w.ui.DisplayMessage(ctx, fmt.Sprintf("Analysis report written to %s", target))

	return target, nil
}

// readCoverage loads an explicit coverage file, or coverage.xml from root
// when present.
func (w *workflow) readCoverage(ctx context.Context, root, explicit m.Path) (string, error) {
	if explicit != "" {
		data, err := w.fs.ReadFile(ctx, explicit)
		if err != nil {
			return "", fmt.Errorf("failed to read coverage: %w", err)
		}

		return string(data), nil
	}

	data, err := w.fs.ReadFile(ctx, w.fs.JoinPath(ctx, string(root), coverageFileName))
	if err != nil {
		return "", nil //nolint:nilerr
	}

	return string(data), nil
}

// analysisFileName is test-analysis-<UTC timestamp>.md with ':' and '.'
// replaced by '-'.
func analysisFileName(now time.Time) string {
	stamp := strings.ReplaceAll(now.UTC().Format(reportTimeLayout), ".", "-")

	return "test-analysis-" + stamp + ".md"
}
