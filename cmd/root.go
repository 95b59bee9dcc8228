// Package cmd provides the root command and CLI setup for testgenie.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"testgenie.dev/pkg/testgenie/internal/adapter"
	"testgenie.dev/pkg/testgenie/internal/controller"
	"testgenie.dev/pkg/testgenie/internal/domain"
	m "testgenie.dev/pkg/testgenie/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var structureAdapter adapter.StructureAdapter
var generator adapter.Generator
var resultWriter adapter.ResultWriter
var testAdapter adapter.TestRunnerAdapter
var reportStore adapter.ReportStore
var detector domain.ProjectTypeDetector
var discovery domain.FileDiscoveryFilter
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// verboseFlag forces debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger("", viper.GetBool(logVerboseKey))
	}

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	structureAdapter = adapter.NewLocalStructureAdapter()
	generator = adapter.NewGeminiGenerator(generatorConfig())
	resultWriter = adapter.NewLocalResultWriter()
	testAdapter = adapter.NewLocalTestRunnerAdapter(
		adapter.WithRunnerTimeout(secondsSetting(runnerTimeoutConfigKey)),
		adapter.WithRunnerStream(rootCmd.OutOrStdout()),
	)

	if viper.GetBool(historyEnabledKey) {
		reportStore = adapter.NewSQLiteReportStore(m.Path(viper.GetString(historyPathKey)))
	}

	detector = domain.NewProjectTypeDetector(fsAdapter, viper.GetStringSlice(detectionSkipDirsKey)...)
	discovery = domain.NewFileDiscoveryFilter(fsAdapter, exclusionRules(), domain.NewInclusionPolicy(viper.GetStringSlice(includeKeywordsKey)))
	orchestrator = domain.NewOrchestrator(
		domain.NewImportResolver(fsAdapter),
		structureAdapter,
		generator,
		resultWriter,
		ui,
	)
	workflow = domain.NewWorkflow(domain.WorkflowDeps{
		FS:           fsAdapter,
		Structure:    structureAdapter,
		Generator:    generator,
		Writer:       resultWriter,
		Runner:       testAdapter,
		Store:        reportStore,
		UI:           ui,
		Detector:     detector,
		Discovery:    discovery,
		Orchestrator: orchestrator,
	})
}

// exclusionRules builds the discovery rules from config, falling back to the
// defaults when a configured glob is invalid.
func exclusionRules() domain.ExclusionRuleSet {
	rules, err := domain.NewExclusionRuleSet(
		viper.GetStringSlice(excludeDirsKey),
		viper.GetStringSlice(excludeFilesKey),
		nil,
	)
	if err != nil {
		slog.Warn("Invalid discovery exclusion config, using defaults", "error", err)
		return domain.DefaultExclusionRuleSet()
	}

	return rules
}

const pathArgsHelp = `Paths are workspace roots. Without paths the roots listed under
"workspace" in testgenie.yaml are used, then the enclosing git worktree
(or the current directory).`

const rootLongDescription = `TestGenie generates unit tests for a whole project. It detects the
dominant ecosystem (Python/pytest, Java/JUnit 5 or Node.js/Jest), selects
the relevant source files, enriches each one with the code it imports and
writes one test file per source file under <root>/tests, mirroring the
source tree.

` + pathArgsHelp

const generateLongDescription = `Generate tests for every relevant source file of the workspace.

Files are processed one at a time. A failure on one file is reported in the
summary and never stops the batch.

` + pathArgsHelp

const detectLongDescription = `Show the detected project type and the source files a generation run
would process, without generating anything.

` + pathArgsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testgenie",
		Short: "Project-wide unit test generator",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files whose relative path matches regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// workspacePaths returns the paths given on the command line, or the
// configured workspace roots.
func workspacePaths(args []string) []m.Path {
	if len(args) > 0 {
		return parsePaths(args)
	}

	return parsePaths(viper.GetStringSlice(workspaceKey))
}
