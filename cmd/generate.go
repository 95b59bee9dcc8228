package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testgenie.dev/pkg/testgenie/internal/domain"
)

var runTestsFlag string
var yesFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [paths...]",
		Aliases: []string{"gen"},
		Short:   "Generate tests for the whole workspace",
		Long:    generateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := runTestsMode()
			if err != nil {
				return err
			}

			_, err = workflow.Generate(cmd.Context(), domain.GenerateArgs{
				Paths:    workspacePaths(args),
				Exclude:  viper.GetStringSlice(excludeConfigKey),
				RunTests: mode,
			})

			return err
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&runTestsFlag, runTestsFlagName, viper.GetString(runTestsConfigKey), "run the generated tests afterwards: ask, always or never")
	bindFlagToConfig(cmd.Flags().Lookup(runTestsFlagName), runTestsConfigKey)
	cmd.Flags().BoolVarP(&yesFlag, yesFlagName, "y", false, "run the generated tests without asking")
}

// runTestsMode resolves --yes and run_tests into a RunTestsMode.
func runTestsMode() (domain.RunTestsMode, error) {
	if yesFlag {
		return domain.RunTestsAlways, nil
	}

	return domain.ParseRunTestsMode(viper.GetString(runTestsConfigKey))
}
