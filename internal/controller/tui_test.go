package controller

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

func TestProgressModel_Update(t *testing.T) {
	var model tea.Model = newProgressModel(3, 80)

	model, _ = model.Update(fileStartedMsg{index: 0, total: 3, name: "app/services/billing.py"})
	assert.Contains(t, model.View(), "app/services/billing.py")

	model, _ = model.Update(fileCompletedMsg{index: 0, total: 3, result: m.GenerationResult{Status: m.Success, TestFilePath: "tests/billing_test.py"}})
	model, _ = model.Update(fileCompletedMsg{index: 1, total: 3, result: m.GenerationResult{Status: m.Failed, Source: "b.py", Reason: "boom"}})

	view := model.View()
	assert.Contains(t, view, "2/3 done, 1 failed")
	assert.Contains(t, view, "tests/billing_test.py")
	assert.Contains(t, view, "b.py: boom")

	model, cmd := model.Update(sessionDoneMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, model.(progressModel).finished)
	assert.NotContains(t, model.View(), "app/services/billing.py\n")
}

func TestProgressModel_KeepsRecentLines(t *testing.T) {
	var model tea.Model = newProgressModel(10, 0)

	for i := range 8 {
		model, _ = model.Update(fileCompletedMsg{index: i, total: 10, result: m.GenerationResult{
			Status:       m.Success,
			TestFilePath: m.Path(fmt.Sprintf("tests/file%d_test.py", i)),
		}})
	}

	pm := model.(progressModel)
	require.Len(t, pm.recent, recentLineCount)
	assert.Contains(t, pm.recent[0], "file3_test.py")
	assert.Contains(t, pm.recent[recentLineCount-1], "file7_test.py")
	assert.Equal(t, 8, pm.completed)
}

func TestProgressModel_WindowSize(t *testing.T) {
	var model tea.Model = newProgressModel(1, 0)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Equal(t, 16, model.(progressModel).bar.Width)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	assert.Equal(t, progressWidth, model.(progressModel).bar.Width)
}

func summaryTable(lines int) string {
	rows := make([]string, 0, lines)
	for i := range lines {
		rows = append(rows, fmt.Sprintf("row %d", i))
	}

	return strings.Join(rows, "\n") + "\n"
}

func TestSummaryModel_FitsWithoutPagination(t *testing.T) {
	sm := newSummaryModel(summaryTable(3), "footer")
	sm.height = 20

	assert.False(t, sm.needsPagination())
	assert.Equal(t, "row 0\nrow 1\nrow 2\nfooter", sm.View())
}

func TestSummaryModel_Pagination(t *testing.T) {
	var model tea.Model = newSummaryModel(summaryTable(20), "footer")

	model, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	sm := model.(summaryModel)
	require.True(t, sm.needsPagination())
	assert.Equal(t, 5, sm.itemsPerPage())
	assert.Contains(t, sm.View(), "lines 1-5 of 20")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, model.(summaryModel).offset)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 6, model.(summaryModel).offset)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, 15, model.(summaryModel).offset)
	assert.Contains(t, model.View(), "row 19")
	assert.NotContains(t, model.View(), "row 14\n")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 15, model.(summaryModel).offset)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, model.(summaryModel).offset)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, model.(summaryModel).offset)

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Empty(t, model.View())
}

func TestTUI_WithoutSession(t *testing.T) {
	ctx := context.Background()
	cmd, out := newTestCommand("yes\n")
	ui := NewTUI(cmd)

	ui.DisplayFileStarted(ctx, 0, 1, m.SourceFile{RelPath: "a.py"})
	ui.Close(ctx)
	ui.DisplayMessage(ctx, "Tests passed in /w")

	require.NoError(t, ui.DisplaySummary(ctx, m.BatchReport{
		Results: []m.GenerationResult{{Source: "/w/a.py", Status: m.Success, TestFilePath: "/w/tests/a_test.py"}},
	}))
	require.NoError(t, ui.DisplayHistory(ctx, nil))

	ok, err := ui.Confirm(ctx, "Run now?")
	require.NoError(t, err)
	assert.True(t, ok)

	got := out.String()
	assert.NotContains(t, got, "a.py\n[")
	assert.Contains(t, got, "Tests passed in /w\n")
	assert.Contains(t, got, "/w/tests/a_test.py")
	assert.Contains(t, got, "Generated 1 of 1 test file(s)")
	assert.Contains(t, got, "No runs recorded yet")
}

func TestTUI_Session(t *testing.T) {
	ctx := context.Background()
	cmd, out := newTestCommand("")
	ui := NewTUI(cmd)

	require.NoError(t, ui.Start(ctx, WithBatchMode(1)))
	require.NoError(t, ui.Start(ctx, WithBatchMode(1)), "second start is a no-op")

	ui.DisplayFileStarted(ctx, 0, 1, m.SourceFile{RelPath: "app/services/billing.py"})
	ui.DisplayFileCompleted(ctx, 0, 1, m.GenerationResult{Status: m.Success, TestFilePath: "tests/app/services/billing_test.py"})
	ui.Close(ctx)

	assert.Contains(t, out.String(), "1/1 done, 0 failed")
}
