package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"testgenie.dev/pkg/testgenie/internal/adapter"
	"testgenie.dev/pkg/testgenie/internal/controller"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

// Orchestrator generates and writes one test file per discovered source file.
type Orchestrator interface {
	// GenerateTests processes files sequentially in the given order and
	// returns one result per processed file, in the same order. A failure on
	// one file is recorded in its result and never stops the batch. When ctx
	// is cancelled the results gathered so far are returned with ctx.Err().
	GenerateTests(ctx context.Context, pt m.ProjectType, roots []m.Path, files []m.SourceFile) ([]m.GenerationResult, error)
}

type orchestrator struct {
	imports   ImportResolver
	structure adapter.StructureAdapter
	generator adapter.Generator
	writer    adapter.ResultWriter
	ui        controller.UI
}

// NewOrchestrator constructs an Orchestrator from its collaborators.
func NewOrchestrator(
	imports ImportResolver,
	structure adapter.StructureAdapter,
	generator adapter.Generator,
	writer adapter.ResultWriter,
	ui controller.UI,
) Orchestrator {
	return &orchestrator{
		imports:   imports,
		structure: structure,
		generator: generator,
		writer:    writer,
		ui:        ui,
	}
}

func (o *orchestrator) GenerateTests(ctx context.Context, pt m.ProjectType, roots []m.Path, files []m.SourceFile) ([]m.GenerationResult, error) {
	results := make([]m.GenerationResult, 0, len(files))
	bootstrapped := make(map[m.Path]bool)

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		o.ui.DisplayFileStarted(ctx, i, len(files), file)

		result := o.generateOne(ctx, pt, roots, file, bootstrapped)
		results = append(results, result)

		o.ui.DisplayFileCompleted(ctx, i, len(files), result)
	}

	return results, nil
}

func (o *orchestrator) generateOne(ctx context.Context, pt m.ProjectType, roots []m.Path, file m.SourceFile, bootstrapped map[m.Path]bool) (result m.GenerationResult) {
	result = m.GenerationResult{Source: file.Path, Status: m.Failed}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Test generation panicked", "source", file.Path, "panic", r)

			result.Status = m.Failed
			result.Reason = fmt.Sprintf("internal error: %v", r)
		}
	}()

	mapping := MapTestPath(file, pt)
	result.TestFilePath = mapping.TestFilePath

	prompt := BuildUnitTestPrompt(pt, o.buildTask(ctx, pt, roots, file))

	raw, err := o.generator.Generate(ctx, prompt)
	if err != nil {
		return failResult(result, fmt.Errorf("failed to generate tests: %w", err))
	}

	code := CleanGeneratedCode(raw)
	if strings.TrimSpace(code) == "" {
		return failResult(result, ErrEmptyResponse)
	}

	if err := o.ensureBootstrap(ctx, pt, file.Root, bootstrapped); err != nil {
		return failResult(result, err)
	}

	outcome, err := o.writer.Write(ctx, mapping.TestFilePath, []byte(withTrailingNewline(code)))
	if err != nil {
		return failResult(result, fmt.Errorf("failed to write test file: %w", err))
	}

	if outcome.Overwritten {
		slog.Info("Overwrote existing test file", "path", outcome.Path)
	}

	result.Status = m.Success
	result.Content = code
	result.Overwritten = outcome.Overwritten

	return result
}

// buildTask gathers the generation context. Import and structure failures
// degrade the prompt instead of failing the file.
func (o *orchestrator) buildTask(ctx context.Context, pt m.ProjectType, roots []m.Path, file m.SourceFile) m.GenerationTask {
	task := m.GenerationTask{Source: file}

	refs := o.imports.FindImports(string(file.Content))
	task.Imports = o.imports.Resolve(ctx, refs, roots, pt)

	structure, err := o.structure.Snapshot(ctx, file.Root)
	if err != nil {
		slog.Warn("Failed to snapshot project structure", "root", file.Root, "error", err)
	}

	task.Structure = structure

	return task
}

// ensureBootstrap creates the type's bootstrap file under root's test
// directory once per batch. An existing file is left untouched.
func (o *orchestrator) ensureBootstrap(ctx context.Context, pt m.ProjectType, root m.Path, bootstrapped map[m.Path]bool) error {
	bootstrap, ok := pt.Bootstrap()
	if !ok || bootstrapped[root] {
		return nil
	}

	target := m.Path(filepath.Join(string(TestRoot(root)), bootstrap.Name))

	created, err := o.writer.CreateIfAbsent(ctx, target, []byte(bootstrap.Content))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", bootstrap.Name, err)
	}

	if created {
		slog.Info("Created test bootstrap file", "path", target)
	}

	bootstrapped[root] = true

	return nil
}

func failResult(result m.GenerationResult, err error) m.GenerationResult {
	slog.Error("Failed to generate test", "source", result.Source, "error", err)

	result.Status = m.Failed
	result.Reason = err.Error()

	return result
}
