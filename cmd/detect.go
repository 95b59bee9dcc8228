package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testgenie.dev/pkg/testgenie/internal/domain"
)

// detectCmd represents the detect command.
var detectCmd = newDetectCmd()

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [paths...]",
		Short: "Show the project type and the files that would get tests",
		Long:  detectLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Detect(cmd.Context(), domain.DetectArgs{
				Paths:   workspacePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
