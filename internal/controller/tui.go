package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

const (
	appTitle        = "TestGenie"
	recentLineCount = 5
	progressWidth   = 48
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	cmd    *cobra.Command
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, output: cmd.OutOrStdout()}
}

// Start launches the live progress view. Starting an active session is a no-op.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return nil
	}

	cfg := newStartConfig(options)
	model := newProgressModel(cfg.total, p.terminalWidth())

	p.program = tea.NewProgram(model, tea.WithOutput(p.output), tea.WithInput(nil), tea.WithoutSignalHandler())
	p.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(p.program, p.done)

	return nil
}

// Close stops the progress view and waits for its final frame.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program, p.done = nil, nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(sessionDoneMsg{})
	<-done
}

// DisplayDetection prints the detection result in a box.
func (p *TUI) DisplayDetection(ctx context.Context, detection m.Detection, roots []m.Path) {
	if ctx.Err() != nil {
		return
	}

	p.println(titleStyle.Render(appTitle) + "\n" + boxStyle.Render(strings.TrimRight(renderDetection(detection, roots), "\n")))
}

// DisplayCandidates prints the selected files.
func (p *TUI) DisplayCandidates(ctx context.Context, files []m.SourceFile) {
	if ctx.Err() != nil {
		return
	}

	p.println(renderCandidatesTable(files))
}

// DisplayFileStarted forwards the event to the active progress view.
func (p *TUI) DisplayFileStarted(ctx context.Context, index, total int, file m.SourceFile) {
	if ctx.Err() != nil {
		return
	}

	p.send(fileStartedMsg{index: index, total: total, name: string(file.RelPath)})
}

// DisplayFileCompleted forwards the event to the active progress view.
func (p *TUI) DisplayFileCompleted(ctx context.Context, index, total int, result m.GenerationResult) {
	if ctx.Err() != nil {
		return
	}

	p.send(fileCompletedMsg{index: index, total: total, result: result})
}

// DisplaySummary shows the results table, paging it when it does not fit.
func (p *TUI) DisplaySummary(ctx context.Context, report m.BatchReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newSummaryModel(renderSummaryTable(report), styledSummaryLine(report))
	model.width, model.height = p.terminalSize()

	if !model.needsPagination() {
		p.println(model.View())
		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	p.println(styledSummaryLine(report))

	return nil
}

// DisplayHistory prints previous runs.
func (p *TUI) DisplayHistory(ctx context.Context, runs []m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(runs) == 0 {
		p.println(faintStyle.Render("No runs recorded yet"))
		return nil
	}

	p.println(titleStyle.Render("Run history") + "\n" + renderHistoryTable(runs))

	return nil
}

// DisplayMessage prints a line, above the progress view when one is active.
func (p *TUI) DisplayMessage(ctx context.Context, message string) {
	if ctx.Err() != nil {
		return
	}

	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Println(message)
		return
	}

	p.println(message)
}

// Confirm asks a yes/no question on the command's input.
func (p *TUI) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, _ = fmt.Fprintf(p.output, "%s %s ", titleStyle.Render(question), faintStyle.Render("[y/N]"))

	return readConfirmation(p.cmd)
}

func (p *TUI) send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

func (p *TUI) println(text string) {
	_, _ = fmt.Fprintln(p.output, text)
}

func (p *TUI) terminalSize() (int, int) {
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			return width, height
		}
	}

	return 0, 0
}

func (p *TUI) terminalWidth() int {
	width, _ := p.terminalSize()
	return width
}

func styledSummaryLine(report m.BatchReport) string {
	line := summaryLine(report)
	if report.Failed() > 0 {
		return failureStyle.Render(line)
	}

	return successStyle.Render(line)
}

type (
	fileStartedMsg struct {
		index, total int
		name         string
	}

	fileCompletedMsg struct {
		index, total int
		result       m.GenerationResult
	}

	sessionDoneMsg struct{}
)

// progressModel renders a spinner, a progress bar and the latest results.
type progressModel struct {
	spinner   spinner.Model
	bar       progress.Model
	total     int
	completed int
	failed    int
	current   string
	recent    []string
	finished  bool
}

func newProgressModel(total, width int) progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	barWidth := progressWidth
	if width > 0 && width-4 < barWidth {
		barWidth = max(10, width-4)
	}

	return progressModel{
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth)),
		total:   total,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileStartedMsg:
		pm.current = msg.name
		if msg.total > 0 {
			pm.total = msg.total
		}

		return pm, nil

	case fileCompletedMsg:
		pm.completed++
		pm.recent = append(pm.recent, completedLine(msg.result))

		if msg.result.Status != m.Success {
			pm.failed++
		}

		if len(pm.recent) > recentLineCount {
			pm.recent = pm.recent[len(pm.recent)-recentLineCount:]
		}

		return pm, nil

	case sessionDoneMsg:
		pm.finished = true
		pm.current = ""

		return pm, tea.Quit

	case tea.WindowSizeMsg:
		pm.bar.Width = max(10, min(progressWidth, msg.Width-4))
		return pm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")

	if pm.current != "" {
		fmt.Fprintf(&b, "%s %s\n", pm.spinner.View(), pm.current)
	}

	percent := 0.0
	if pm.total > 0 {
		percent = float64(pm.completed) / float64(pm.total)
	}

	b.WriteString(pm.bar.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("%d/%d done, %d failed", pm.completed, pm.total, pm.failed)))
	b.WriteString("\n")

	for _, line := range pm.recent {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func completedLine(result m.GenerationResult) string {
	if result.Status == m.Success {
		return successStyle.Render("✓ ") + string(result.TestFilePath)
	}

	return failureStyle.Render("✗ ") + fmt.Sprintf("%s: %s", result.Source, result.Reason)
}

// summaryModel pages a rendered summary table that is taller than the terminal.
type summaryModel struct {
	lines    []string
	footer   string
	height   int
	width    int
	offset   int
	quitting bool
}

func newSummaryModel(table, footer string) summaryModel {
	return summaryModel{
		lines:  strings.Split(strings.TrimRight(table, "\n"), "\n"),
		footer: footer,
	}
}

func (sm summaryModel) Init() tea.Cmd {
	return nil
}

func (sm summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm summaryModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		sm.quitting = true
		return sm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		sm.quitting = true
		return sm, tea.Quit
	case "down", "j":
		sm.offset = min(sm.offset+1, sm.maxOffset())
	case "up", "k":
		sm.offset = max(sm.offset-1, 0)
	case "pgdown", " ":
		sm.offset = min(sm.offset+sm.itemsPerPage(), sm.maxOffset())
	case "pgup":
		sm.offset = max(sm.offset-sm.itemsPerPage(), 0)
	case "g", "home":
		sm.offset = 0
	case "G", "end":
		sm.offset = sm.maxOffset()
	}

	return sm, nil
}

// itemsPerPage leaves room for the footer and the help line.
func (sm summaryModel) itemsPerPage() int {
	const reserved = 3

	if sm.height <= reserved {
		return len(sm.lines)
	}

	return sm.height - reserved
}

func (sm summaryModel) maxOffset() int {
	return max(0, len(sm.lines)-sm.itemsPerPage())
}

func (sm summaryModel) needsPagination() bool {
	return sm.height > 0 && len(sm.lines) > sm.itemsPerPage()
}

func (sm summaryModel) View() string {
	if sm.quitting {
		return ""
	}

	end := len(sm.lines)
	if sm.needsPagination() {
		end = min(sm.offset+sm.itemsPerPage(), len(sm.lines))
	}

	start := 0
	if sm.needsPagination() {
		start = sm.offset
	}

	var b strings.Builder

	b.WriteString(strings.Join(sm.lines[start:end], "\n"))
	b.WriteString("\n")
	b.WriteString(sm.footer)

	if sm.needsPagination() {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render(fmt.Sprintf("lines %d-%d of %d  j/k scroll  g/G top/bottom  q quit", start+1, end, len(sm.lines))))
	}

	return b.String()
}
