package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

// DefaultTestRunTimeout bounds a whole test-runner command sequence.
const DefaultTestRunTimeout = 30 * time.Minute

// ErrEmptyCommand is returned for a runner step without a command.
var ErrEmptyCommand = errors.New("empty runner command")

// TestRunnerAdapter executes the per-ecosystem test command sequence.
type TestRunnerAdapter interface {
	// Run executes steps in workDir with env merged over the process
	// environment. It returns the combined stdout/stderr output.
	Run(ctx context.Context, workDir m.Path, steps []m.CommandStep, env map[string]string) (output string, err error)
}

// LocalTestRunnerAdapter provides a concrete implementation using os/exec.
type LocalTestRunnerAdapter struct {
	timeout time.Duration
	stream  io.Writer
}

// RunnerOption configures a LocalTestRunnerAdapter.
type RunnerOption func(*LocalTestRunnerAdapter)

// WithRunnerTimeout overrides the default timeout.
func WithRunnerTimeout(d time.Duration) RunnerOption {
	return func(a *LocalTestRunnerAdapter) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithRunnerStream copies command output to w as it is produced.
func WithRunnerStream(w io.Writer) RunnerOption {
	return func(a *LocalTestRunnerAdapter) {
		a.stream = w
	}
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter.
func NewLocalTestRunnerAdapter(opts ...RunnerOption) *LocalTestRunnerAdapter {
	a := &LocalTestRunnerAdapter{timeout: DefaultTestRunTimeout}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run implements TestRunnerAdapter. Steps run in order and the first failing
// step stops the sequence.
func (a *LocalTestRunnerAdapter) Run(ctx context.Context, workDir m.Path, steps []m.CommandStep, env map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var output bytes.Buffer

	environ := mergeEnv(os.Environ(), env)

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return output.String(), err
		}

		if a.shouldSkip(ctx, workDir, step, environ) {
			slog.Debug("Skipping runner step", "command", step.Command)
			continue
		}

		if err := a.runCommand(ctx, workDir, step.Command, environ, &output); err != nil {
			slog.Error("Runner step failed", "command", step.Command, "workDir", workDir, "error", err)
			return output.String(), fmt.Errorf("run %q: %w", step.Command, err)
		}
	}

	return output.String(), nil
}

func (a *LocalTestRunnerAdapter) shouldSkip(ctx context.Context, workDir m.Path, step m.CommandStep, environ []string) bool {
	if step.SkipIfExists != "" {
		if _, err := os.Stat(filepath.Join(string(workDir), filepath.FromSlash(step.SkipIfExists))); err == nil {
			return true
		}
	}

	if step.SkipIfSucceeds != "" {
		if err := a.runCommand(ctx, workDir, step.SkipIfSucceeds, environ, io.Discard); err == nil {
			return true
		}
	}

	return false
}

func (a *LocalTestRunnerAdapter) runCommand(ctx context.Context, workDir m.Path, command string, environ []string, out io.Writer) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("parse command: %w", err)
	}

	if len(args) == 0 {
		return ErrEmptyCommand
	}

	// #nosec G204 - commands come from the built-in runner table or user config
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = string(workDir)
	cmd.Env = environ

	writer := out
	if a.stream != nil && out != io.Discard {
		writer = io.MultiWriter(out, a.stream)
	}

	cmd.Stdout = writer
	cmd.Stderr = writer

	return cmd.Run()
}

// mergeEnv overlays extra on base. Variables ending in PATH are prepended to
// an existing value instead of replacing it.
func mergeEnv(base []string, extra map[string]string) []string {
	merged := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(extra))

	for _, kv := range base {
		key, value, _ := strings.Cut(kv, "=")

		override, ok := extra[key]
		if !ok {
			merged = append(merged, kv)
			continue
		}

		seen[key] = true

		if strings.HasSuffix(key, "PATH") && value != "" {
			override = override + string(os.PathListSeparator) + value
		}

		merged = append(merged, key+"="+override)
	}

	for key, value := range extra {
		if !seen[key] {
			merged = append(merged, key+"="+value)
		}
	}

	return merged
}
