package cmd

import (
	"github.com/spf13/cobra"

	"testgenie.dev/pkg/testgenie/internal/domain"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

var testLanguageFlag string

// testCmd represents the test command.
var testCmd = newTestCmd()

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [paths...]",
		Short: "Run the generated tests",
		Long: `Run the test suite of each workspace root with the ecosystem's runner
(pytest, Maven or Jest), installing the runner first when it is missing.

` + pathArgsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := languageFlag(testLanguageFlag)
			if err != nil {
				return err
			}

			return workflow.RunTests(cmd.Context(), domain.RunTestsArgs{
				Paths:       workspacePaths(args),
				ProjectType: pt,
			})
		},
	}

	cmd.Flags().StringVarP(&testLanguageFlag, languageFlagName, "l", "", "project type (python, java or nodejs); detected when empty")

	return cmd
}

func init() {
	rootCmd.AddCommand(testCmd)
}

// languageFlag parses an optional --language value. Empty means detect.
func languageFlag(value string) (m.ProjectType, error) {
	if value == "" {
		return m.Undetected, nil
	}

	return m.ParseProjectType(value)
}
