package controller

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

// SimpleUI implements UI with plain line output on the command's writer.
type SimpleUI struct {
	cmd    *cobra.Command
	active bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start opens a session.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode == ModeBatch {
		s.printf("Generating tests for %d file(s)\n", cfg.total)
	}

	s.active = true

	return nil
}

// Close ends the session.
func (s *SimpleUI) Close(_ context.Context) {
	s.active = false
}

// DisplayDetection prints the detected project type and per-type counts.
func (s *SimpleUI) DisplayDetection(ctx context.Context, detection m.Detection, roots []m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s", renderDetection(detection, roots))
}

// DisplayCandidates prints the files selected for generation.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, files []m.SourceFile) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderCandidatesTable(files))
}

// DisplayFileStarted prints one line per file while a session is active.
func (s *SimpleUI) DisplayFileStarted(ctx context.Context, index, total int, file m.SourceFile) {
	if ctx.Err() != nil || !s.active {
		return
	}

	s.printf("[%d/%d] Generating tests for %s\n", index+1, total, file.RelPath)
}

// DisplayFileCompleted prints the outcome of one file while a session is active.
func (s *SimpleUI) DisplayFileCompleted(ctx context.Context, index, total int, result m.GenerationResult) {
	if ctx.Err() != nil || !s.active {
		return
	}

	if result.Status == m.Success {
		s.printf("[%d/%d] %s -> %s\n", index+1, total, result.Status, result.TestFilePath)
		return
	}

	s.printf("[%d/%d] %s: %s\n", index+1, total, result.Status, result.Reason)
}

// DisplaySummary prints the per-file results table of a batch.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.BatchReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(report))
	s.printf("%s\n", summaryLine(report))

	return nil
}

// DisplayHistory prints previous runs, most recent first.
func (s *SimpleUI) DisplayHistory(ctx context.Context, runs []m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(runs) == 0 {
		s.printf("No runs recorded yet\n")
		return nil
	}

	s.printf("%s", renderHistoryTable(runs))

	return nil
}

// DisplayMessage prints a line of text.
func (s *SimpleUI) DisplayMessage(ctx context.Context, message string) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", message)
}

// Confirm reads one answer line from the command's input.
func (s *SimpleUI) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.printf("%s [y/N]: ", question)

	return readConfirmation(s.cmd)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func readConfirmation(cmd *cobra.Command) (bool, error) {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		// EOF without an answer means no.
		return false, nil //nolint:nilerr
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func renderDetection(detection m.Detection, roots []m.Path) string {
	var b strings.Builder

	for _, root := range roots {
		fmt.Fprintf(&b, "Workspace root: %s\n", root)
	}

	counts := make([]string, 0, len(m.SupportedProjectTypes()))
	for _, pt := range m.SupportedProjectTypes() {
		counts = append(counts, fmt.Sprintf("%s=%d", pt, detection.Counts[pt]))
	}

	fmt.Fprintf(&b, "Source files: %s\n", strings.Join(counts, " "))

	if detection.Type.IsDetected() {
		fmt.Fprintf(&b, "Detected project type: %s (%s)\n", detection.Type, detection.Type.Framework())
	} else {
		b.WriteString("Detected project type: none\n")
	}

	return b.String()
}

func renderCandidatesTable(files []m.SourceFile) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Root", "Source"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, file := range files {
		table.Append([]string{string(file.Root), string(file.RelPath)})
	}

	table.SetFooter([]string{"Total Files", fmt.Sprintf("%d", len(files))})
	table.Render()

	return tableBuffer.String()
}

func renderSummaryTable(report m.BatchReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Status", "Test File / Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, res := range report.Results {
		detail := string(res.TestFilePath)
		if res.Status != m.Success {
			detail = res.Reason
		} else if res.Overwritten {
			detail += " (overwritten)"
		}

		table.Append([]string{string(res.Source), res.Status.String(), detail})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Results)),
		fmt.Sprintf("%d ok", report.Succeeded()),
		fmt.Sprintf("%d failed", report.Failed()),
	})
	table.Render()

	return tableBuffer.String()
}

func summaryLine(report m.BatchReport) string {
	elapsed := report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)
	if elapsed < 0 {
		elapsed = 0
	}

	return fmt.Sprintf("Generated %d of %d test file(s) in %s", report.Succeeded(), len(report.Results), elapsed)
}

func renderHistoryTable(runs []m.RunSummary) string {
	var tableBuffer bytes.Buffer

	sorted := append([]m.RunSummary(nil), runs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.After(sorted[j].StartedAt)
	})

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Started", "Type", "Files", "OK", "Failed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, run := range sorted {
		table.Append([]string{
			shortID(run.RunID),
			run.StartedAt.Local().Format(time.DateTime),
			run.ProjectType,
			fmt.Sprintf("%d", run.Total),
			fmt.Sprintf("%d", run.Succeeded),
			fmt.Sprintf("%d", run.Failed),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func shortID(id string) string {
	const shortLen = 8
	if len(id) > shortLen {
		return id[:shortLen]
	}

	return id
}
