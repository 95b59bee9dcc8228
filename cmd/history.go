package cmd

import (
	"github.com/spf13/cobra"

	"testgenie.dev/pkg/testgenie/internal/domain"
)

var historyLimitFlag int
var historyRunFlag string

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previous generation runs",
		Long: `Show previous generation runs, most recent first. With --run, show the
per-file results of one run; a unique prefix of the run id is enough.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.History(cmd.Context(), domain.HistoryArgs{
				Limit: historyLimitFlag,
				RunID: historyRunFlag,
			})
		},
	}

	cmd.Flags().IntVarP(&historyLimitFlag, limitFlagName, "n", defaultHistoryLimit, "maximum number of runs to list (0 for all)")
	cmd.Flags().StringVar(&historyRunFlag, runFlagName, "", "show the results of this run id")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
