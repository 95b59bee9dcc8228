package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"testgenie.dev/pkg/testgenie/internal/adapter"
	"testgenie.dev/pkg/testgenie/internal/controller"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

// ErrHistoryDisabled is returned by History when no report store is configured.
var ErrHistoryDisabled = errors.New("run history is disabled")

// RunTestsMode controls whether the generated tests are run after a batch.
type RunTestsMode int

// Available RunTestsMode values.
const (
	RunTestsAsk RunTestsMode = iota
	RunTestsAlways
	RunTestsNever
)

// ParseRunTestsMode converts "ask", "always" or "never".
func ParseRunTestsMode(value string) (RunTestsMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "ask":
		return RunTestsAsk, nil
	case "always", "yes":
		return RunTestsAlways, nil
	case "never", "no":
		return RunTestsNever, nil
	default:
		return RunTestsAsk, fmt.Errorf("invalid run-tests mode %q (want ask, always or never)", value)
	}
}

// GenerateArgs contains the arguments for a project-wide generation batch.
type GenerateArgs struct {
	Paths    []m.Path
	Exclude  []string
	RunTests RunTestsMode
}

// DetectArgs contains the arguments for a dry run.
type DetectArgs struct {
	Paths   []m.Path
	Exclude []string
}

// UnitArgs contains the arguments for generating tests for one file.
type UnitArgs struct {
	File m.Path
}

// APIArgs contains the arguments for generating API tests from a contract.
// An undetected ProjectType is detected from the contract's workspace.
type APIArgs struct {
	Contract    m.Path
	ProjectType m.ProjectType
}

// RunTestsArgs contains the arguments for running the generated tests.
type RunTestsArgs struct {
	Paths       []m.Path
	ProjectType m.ProjectType
}

// AnalyzeArgs contains the arguments for the test results analysis.
// Empty Results and Coverage fall back to files in the workspace root.
type AnalyzeArgs struct {
	Path     m.Path
	Results  m.Path
	Coverage m.Path
}

// HistoryArgs selects what the history command shows. A RunID (or a unique
// prefix of one) shows that run's results instead of the run list.
type HistoryArgs struct {
	Limit int
	RunID string
}

// Workflow is the entry point for every command.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) (m.BatchReport, error)
	Detect(ctx context.Context, args DetectArgs) error
	Unit(ctx context.Context, args UnitArgs) (m.GenerationResult, error)
	API(ctx context.Context, args APIArgs) (m.Path, error)
	RunTests(ctx context.Context, args RunTestsArgs) error
	Analyze(ctx context.Context, args AnalyzeArgs) (m.Path, error)
	History(ctx context.Context, args HistoryArgs) error
}

// WorkflowDeps lists the collaborators of a Workflow. Store may be nil to
// disable run history.
type WorkflowDeps struct {
	FS           adapter.SourceFSAdapter
	Structure    adapter.StructureAdapter
	Generator    adapter.Generator
	Writer       adapter.ResultWriter
	Runner       adapter.TestRunnerAdapter
	Store        adapter.ReportStore
	UI           controller.UI
	Detector     ProjectTypeDetector
	Discovery    FileDiscoveryFilter
	Orchestrator Orchestrator
}

type workflow struct {
	fs           adapter.SourceFSAdapter
	structure    adapter.StructureAdapter
	generator    adapter.Generator
	writer       adapter.ResultWriter
	runner       adapter.TestRunnerAdapter
	store        adapter.ReportStore
	ui           controller.UI
	detector     ProjectTypeDetector
	discovery    FileDiscoveryFilter
	orchestrator Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(deps WorkflowDeps) Workflow {
	return &workflow{
		fs:           deps.FS,
		structure:    deps.Structure,
		generator:    deps.Generator,
		writer:       deps.Writer,
		runner:       deps.Runner,
		store:        deps.Store,
		ui:           deps.UI,
		detector:     deps.Detector,
		discovery:    deps.Discovery,
		orchestrator: deps.Orchestrator,
	}
}

// Generate runs one batch: detect, discover, generate sequentially, report,
// then optionally run the tests. Fatal preconditions abort before any
// generation request.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) (m.BatchReport, error) {
	pt, roots, files, err := w.prepare(ctx, args.Paths, args.Exclude)
	if err != nil {
		return m.BatchReport{}, err
	}

	report := m.BatchReport{
		RunID:       uuid.NewString(),
		ProjectType: pt,
		Roots:       roots,
		StartedAt:   time.Now(),
	}

	if err := w.ui.Start(ctx, controller.WithBatchMode(len(files))); err != nil {
		return report, fmt.Errorf("failed to start ui: %w", err)
	}

	results, genErr := w.orchestrator.GenerateTests(ctx, pt, roots, files)

	w.ui.Close(ctx)

	report.Results = results
	report.FinishedAt = time.Now()

	w.saveReport(ctx, report)

	if err := w.ui.DisplaySummary(ctx, report); err != nil {
		slog.Warn("Failed to display summary", "error", err)
	}

	if genErr != nil {
		return report, genErr
	}

	if report.Succeeded() > 0 {
		w.offerTestRun(ctx, pt, roots, args.RunTests)
	}

	return report, nil
}

// Detect reports the project type and candidate files without generating.
func (w *workflow) Detect(ctx context.Context, args DetectArgs) error {
	_, _, files, err := w.prepare(ctx, args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	w.ui.DisplayCandidates(ctx, files)

	return nil
}

func (w *workflow) prepare(ctx context.Context, paths []m.Path, exclude []string) (m.ProjectType, []m.Path, []m.SourceFile, error) {
	roots, err := w.resolveRoots(ctx, paths)
	if err != nil {
		return m.Undetected, nil, nil, err
	}

	detection, err := w.detector.Detect(ctx, roots)
	if err != nil {
		return m.Undetected, nil, nil, fmt.Errorf("failed to detect project type: %w", err)
	}

	w.ui.DisplayDetection(ctx, detection, roots)

	if !detection.Type.IsDetected() {
		return m.Undetected, nil, nil, ErrProjectTypeUndetected
	}

	files, err := w.discovery.Discover(ctx, detection.Type, roots, exclude)
	if err != nil {
		return m.Undetected, nil, nil, fmt.Errorf("failed to discover source files: %w", err)
	}

	if len(files) == 0 {
		return m.Undetected, nil, nil, ErrNoRelevantFiles
	}

	return detection.Type, roots, files, nil
}

// resolveRoots turns user paths into absolute workspace roots. Without paths
// the enclosing git worktree (or the working directory) is the only root.
func (w *workflow) resolveRoots(ctx context.Context, paths []m.Path) ([]m.Path, error) {
	if len(paths) == 0 {
		root, err := w.fs.FindWorkspaceRoot(ctx, ".")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoWorkspace, err)
		}

		return []m.Path{root}, nil
	}

	seen := make(map[m.Path]struct{}, len(paths))
	roots := make([]m.Path, 0, len(paths))

	for _, p := range paths {
		abs, err := filepath.Abs(string(p))
		if err != nil {
			slog.Warn("Skipping workspace path", "path", p, "error", err)
			continue
		}

		info, err := w.fs.FileInfo(ctx, m.Path(abs))
		if err != nil || !info.IsDir() {
			slog.Warn("Skipping workspace path that is not a directory", "path", p, "error", err)
			continue
		}

		if _, ok := seen[m.Path(abs)]; ok {
			continue
		}

		seen[m.Path(abs)] = struct{}{}
		roots = append(roots, m.Path(abs))
	}

	if len(roots) == 0 {
		return nil, ErrNoWorkspace
	}

	return roots, nil
}

// offerTestRun runs the tests when asked to. Its outcome is reported to the
// user and never changes the batch result.
func (w *workflow) offerTestRun(ctx context.Context, pt m.ProjectType, roots []m.Path, mode RunTestsMode) {
	switch mode {
	case RunTestsNever:
		return
	case RunTestsAsk:
		ok, err := w.ui.Confirm(ctx, fmt.Sprintf("Run the generated %s tests now?", pt.Framework()))
		if err != nil {
			slog.Warn("Failed to read confirmation", "error", err)
			return
		}

		if !ok {
			return
		}
	case RunTestsAlways:
	}

	if err := w.runAll(ctx, pt, roots); err != nil {
		w.ui.DisplayMessage(ctx, err.Error())
	}
}

// RunTests runs the test suite of every root with the project type's runner.
func (w *workflow) RunTests(ctx context.Context, args RunTestsArgs) error {
	roots, err := w.resolveRoots(ctx, args.Paths)
	if err != nil {
		return err
	}

	pt := args.ProjectType
	if !pt.IsDetected() {
		detection, err := w.detector.Detect(ctx, roots)
		if err != nil {
			return fmt.Errorf("failed to detect project type: %w", err)
		}

		if !detection.Type.IsDetected() {
			return ErrProjectTypeUndetected
		}

		pt = detection.Type
	}

	return w.runAll(ctx, pt, roots)
}

func (w *workflow) runAll(ctx context.Context, pt m.ProjectType, roots []m.Path) error {
	var errs []error

	for _, root := range roots {
		if err := w.runTestsIn(ctx, pt, root); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (w *workflow) runTestsIn(ctx context.Context, pt m.ProjectType, root m.Path) error {
	sourceRoot := w.sourceRoot(ctx, pt, root)
	replacements := map[string]string{
		"{root}":        string(root),
		"{source_root}": string(sourceRoot),
	}

	env := pt.RunEnv()
	for key, value := range env {
		env[key] = substitutePlaceholders(value, replacements)
	}

	steps := pt.RunSteps()
	for i := range steps {
		steps[i].Command = substitutePlaceholders(steps[i].Command, replacements)
	}

	w.ui.DisplayMessage(ctx, fmt.Sprintf("Running %s tests in %s", pt.Framework(), root))

	if _, err := w.runner.Run(ctx, root, steps, env); err != nil {
		slog.Error("Test run failed", "root", root, "error", err)
		return fmt.Errorf("tests failed in %s: %w", root, err)
	}

	w.ui.DisplayMessage(ctx, fmt.Sprintf("Tests passed in %s", root))

	return nil
}

// sourceRoot returns the first conventional source directory that exists
// under root, or root itself.
func (w *workflow) sourceRoot(ctx context.Context, pt m.ProjectType, root m.Path) m.Path {
	for _, dir := range pt.SourceRoots() {
		candidate := w.fs.JoinPath(ctx, string(root), dir)

		info, err := w.fs.FileInfo(ctx, candidate)
		if err == nil && info.IsDir() {
			return candidate
		}
	}

	return root
}

func (w *workflow) saveReport(ctx context.Context, report m.BatchReport) {
	if w.store == nil {
		return
	}

	if _, err := w.store.SaveReport(context.WithoutCancel(ctx), report); err != nil {
		slog.Warn("Failed to save run history", "run", report.RunID, "error", err)
	}
}

// History shows previous runs or the results of one run.
func (w *workflow) History(ctx context.Context, args HistoryArgs) error {
	if w.store == nil {
		return ErrHistoryDisabled
	}

	if args.RunID == "" {
		runs, err := w.store.LoadReports(ctx, args.Limit)
		if err != nil {
			return fmt.Errorf("failed to load run history: %w", err)
		}

		return w.ui.DisplayHistory(ctx, runs)
	}

	run, err := w.findRun(ctx, args.RunID)
	if err != nil {
		return err
	}

	results, err := w.store.LoadResults(ctx, run.RunID)
	if err != nil {
		return fmt.Errorf("failed to load run results: %w", err)
	}

	pt, _ := m.ParseProjectType(run.ProjectType)

	return w.ui.DisplaySummary(ctx, m.BatchReport{
		RunID:       run.RunID,
		ProjectType: pt,
		Roots:       run.Roots,
		Results:     results,
		StartedAt:   run.StartedAt,
		FinishedAt:  run.FinishedAt,
	})
}

func (w *workflow) findRun(ctx context.Context, idPrefix string) (m.RunSummary, error) {
	runs, err := w.store.LoadReports(ctx, 0)
	if err != nil {
		return m.RunSummary{}, fmt.Errorf("failed to load run history: %w", err)
	}

	var matches []m.RunSummary

	for _, run := range runs {
		if run.RunID == idPrefix {
			return run, nil
		}

		if strings.HasPrefix(run.RunID, idPrefix) {
			matches = append(matches, run)
		}
	}

	switch len(matches) {
	case 0:
		return m.RunSummary{}, fmt.Errorf("run %q not found", idPrefix)
	case 1:
		return matches[0], nil
	default:
		return m.RunSummary{}, fmt.Errorf("run id prefix %q is ambiguous (%d runs)", idPrefix, len(matches))
	}
}

func substitutePlaceholders(value string, replacements map[string]string) string {
	for placeholder, replacement := range replacements {
		value = strings.ReplaceAll(value, placeholder, replacement)
	}

	return value
}
