package cmd

import (
	"github.com/spf13/cobra"

	"testgenie.dev/pkg/testgenie/internal/domain"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

var analyzeResultsFlag string
var analyzeCoverageFlag string

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Write a markdown analysis of the last test run",
		Long: `Read the JUnit XML results (default <root>/test-results.xml) and the
optional coverage report (default <root>/coverage.xml), and write an analysis
to <root>/reports/test-analysis-<timestamp>.md.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var root m.Path
			if len(args) == 1 {
				root = m.Path(args[0])
			}

			_, err := workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Path:     root,
				Results:  m.Path(analyzeResultsFlag),
				Coverage: m.Path(analyzeCoverageFlag),
			})

			return err
		},
	}

	cmd.Flags().StringVar(&analyzeResultsFlag, resultsFlagName, "", "JUnit XML results file")
	cmd.Flags().StringVar(&analyzeCoverageFlag, coverageFlagName, "", "coverage XML file")

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
