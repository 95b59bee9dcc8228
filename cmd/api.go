package cmd

import (
	"github.com/spf13/cobra"

	"testgenie.dev/pkg/testgenie/internal/domain"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

var apiLanguageFlag string

// apiCmd represents the api command.
var apiCmd = newAPICmd()

func newAPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api <contract>",
		Short: "Generate API tests from an OpenAPI contract",
		Long: `Generate API tests from an OpenAPI contract (JSON or YAML). The test file
is written next to the contract: api_tests.py, ApiTests.java or api.test.js.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := languageFlag(apiLanguageFlag)
			if err != nil {
				return err
			}

			_, err = workflow.API(cmd.Context(), domain.APIArgs{
				Contract:    m.Path(args[0]),
				ProjectType: pt,
			})

			return err
		},
	}

	cmd.Flags().StringVarP(&apiLanguageFlag, languageFlagName, "l", "", "project type (python, java or nodejs); detected when empty")

	return cmd
}

func init() {
	rootCmd.AddCommand(apiCmd)
}
