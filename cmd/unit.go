package cmd

import (
	"github.com/spf13/cobra"

	"testgenie.dev/pkg/testgenie/internal/domain"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

// unitCmd represents the unit command.
var unitCmd = newUnitCmd()

func newUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unit <file>",
		Short: "Generate tests for a single source file",
		Long: `Generate tests for one source file. The project type comes from the file
extension and the discovery filters are not applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Unit(cmd.Context(), domain.UnitArgs{File: m.Path(args[0])})
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(unitCmd)
}
