package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"testgenie.dev/pkg/testgenie/internal/domain"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

func TestDetectCmd(t *testing.T) {
	cmd, mockWorkflow := withMockWorkflow(t, newDetectCmd())

	mockWorkflow.EXPECT().Detect(mock.Anything, domain.DetectArgs{
		Paths:   []m.Path{"./svc"},
		Exclude: []string{"fixtures"},
	}).Return(nil)

	cmd.SetArgs([]string{"detect", "--exclude", "fixtures", "./svc"})
	require.NoError(t, cmd.Execute())
}

func TestTestCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want m.ProjectType
	}{
		{name: "detected", args: []string{"test"}, want: m.Undetected},
		{name: "explicit", args: []string{"test", "--language", "java"}, want: m.Java},
		{name: "alias", args: []string{"test", "-l", "js"}, want: m.NodeJS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, mockWorkflow := withMockWorkflow(t, newTestCmd())

			mockWorkflow.EXPECT().RunTests(mock.Anything, mock.MatchedBy(func(args domain.RunTestsArgs) bool {
				return args.ProjectType == tt.want
			})).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestTestCmd_UnknownLanguage(t *testing.T) {
	cmd, mockWorkflow := withMockWorkflow(t, newTestCmd())

	cmd.SetArgs([]string{"test", "--language", "cobol"})
	require.Error(t, cmd.Execute())

	mockWorkflow.AssertNotCalled(t, "RunTests", mock.Anything, mock.Anything)
}

func TestUnitCmd(t *testing.T) {
	cmd, mockWorkflow := withMockWorkflow(t, newUnitCmd())

	mockWorkflow.EXPECT().Unit(mock.Anything, domain.UnitArgs{File: "app/services/billing.py"}).
		Return(m.GenerationResult{Status: m.Success}, nil)

	cmd.SetArgs([]string{"unit", "app/services/billing.py"})
	require.NoError(t, cmd.Execute())
}

func TestUnitCmd_RequiresFile(t *testing.T) {
	cmd, _ := withMockWorkflow(t, newUnitCmd())

	cmd.SetArgs([]string{"unit"})
	require.Error(t, cmd.Execute())
}

func TestUnitCmd_FailedFileIsAnError(t *testing.T) {
	cmd, mockWorkflow := withMockWorkflow(t, newUnitCmd())

	mockWorkflow.EXPECT().Unit(mock.Anything, mock.Anything).
		Return(m.GenerationResult{Status: m.Failed}, errors.New("failed to generate tests for a.py: boom"))

	cmd.SetArgs([]string{"unit", "a.py"})
	require.Error(t, cmd.Execute())
}

func TestAPICmd(t *testing.T) {
	cmd, mockWorkflow := withMockWorkflow(t, newAPICmd())

	mockWorkflow.EXPECT().API(mock.Anything, domain.APIArgs{Contract: "docs/openapi.yaml", ProjectType: m.Python}).
		Return(m.Path("docs/api_tests.py"), nil)

	cmd.SetArgs([]string{"api", "--language", "python", "docs/openapi.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestAnalyzeCmd(t *testing.T) {
	cmd, mockWorkflow := withMockWorkflow(t, newAnalyzeCmd())

	mockWorkflow.EXPECT().Analyze(mock.Anything, domain.AnalyzeArgs{
		Path:     "./svc",
		Results:  "out/junit.xml",
		Coverage: "out/cov.xml",
	}).Return(m.Path("svc/reports/test-analysis.md"), nil)

	cmd.SetArgs([]string{"analyze", "--results", "out/junit.xml", "--coverage", "out/cov.xml", "./svc"})
	require.NoError(t, cmd.Execute())
}

func TestAnalyzeCmd_DefaultsToWorkspace(t *testing.T) {
	cmd, mockWorkflow := withMockWorkflow(t, newAnalyzeCmd())

	mockWorkflow.EXPECT().Analyze(mock.Anything, domain.AnalyzeArgs{}).Return(m.Path("reports/x.md"), nil)

	cmd.SetArgs([]string{"analyze"})
	require.NoError(t, cmd.Execute())
}

func TestHistoryCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.HistoryArgs
	}{
		{name: "defaults", args: []string{"history"}, want: domain.HistoryArgs{Limit: defaultHistoryLimit}},
		{name: "limit", args: []string{"history", "-n", "5"}, want: domain.HistoryArgs{Limit: 5}},
		{name: "one run", args: []string{"history", "--run", "3f2a"}, want: domain.HistoryArgs{Limit: defaultHistoryLimit, RunID: "3f2a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, mockWorkflow := withMockWorkflow(t, newHistoryCmd())

			mockWorkflow.EXPECT().History(mock.Anything, tt.want).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestHistoryCmd_Disabled(t *testing.T) {
	cmd, mockWorkflow := withMockWorkflow(t, newHistoryCmd())

	mockWorkflow.EXPECT().History(mock.Anything, mock.Anything).Return(domain.ErrHistoryDisabled)

	cmd.SetArgs([]string{"history"})
	assert.ErrorIs(t, cmd.Execute(), domain.ErrHistoryDisabled)
}

func TestLanguageFlag(t *testing.T) {
	pt, err := languageFlag("")
	require.NoError(t, err)
	assert.Equal(t, m.Undetected, pt)

	pt, err = languageFlag("JUnit")
	require.NoError(t, err)
	assert.Equal(t, m.Java, pt)

	_, err = languageFlag("ruby")
	assert.Error(t, err)
}
