// Package controller provides output adapters for displaying test generation progress and results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeBatch StartMode = iota
	ModeSingle
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithBatchMode starts a progress session for total files.
func WithBatchMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBatch
		c.total = total
	}
}

// WithSingleMode starts a session for one file or one contract.
func WithSingleMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSingle
		c.total = 1
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeBatch}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how the workflow reports progress and asks questions.
// Implementations can use different output methods (simple text, TUI, etc).
//
//nolint:interfacebloat // One method per workflow event keeps the domain unaware of rendering.
type UI interface {
	// Start opens a progress session. Per-file events are only shown while a
	// session is active.
	Start(ctx context.Context, options ...StartOption) error
	// Close ends the session. Calling it without an active session is a no-op.
	Close(ctx context.Context)
	DisplayDetection(ctx context.Context, detection m.Detection, roots []m.Path)
	DisplayCandidates(ctx context.Context, files []m.SourceFile)
	DisplayFileStarted(ctx context.Context, index, total int, file m.SourceFile)
	DisplayFileCompleted(ctx context.Context, index, total int, result m.GenerationResult)
	DisplaySummary(ctx context.Context, report m.BatchReport) error
	DisplayHistory(ctx context.Context, runs []m.RunSummary) error
	DisplayMessage(ctx context.Context, message string)
	// Confirm asks a yes/no question. Anything but an explicit yes is a no.
	Confirm(ctx context.Context, question string) (bool, error)
}

// NewUI returns the TUI for interactive terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
