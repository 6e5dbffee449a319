package commands

import (
	"github.com/spf13/cobra"

	"github.com/benZhai01/vstest/internal/cli"
	"github.com/benZhai01/vstest/internal/config"
	"github.com/benZhai01/vstest/internal/dbprep"
	"github.com/benZhai01/vstest/internal/engine"
	"github.com/benZhai01/vstest/internal/storage"
	"github.com/benZhai01/vstest/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Prepare  *PrepareCommand
	Failures *FailuresCommand
}

// build wires up all dependencies for the given configuration
func build(cfg *config.Config) *Commands {
	console := ui.NewConsole()
	formatter := ui.NewFormatter(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	eng := engine.New(cfg, jsonStorage, formatter)
	dbManager := dbprep.NewDatabaseManager(cfg)
	preparer := dbprep.NewPreparer(cfg, dbManager)
	viewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, eng, preparer, console),
		List:     NewListCommand(cfg, eng, formatter),
		Prepare:  NewPrepareCommand(cfg, preparer),
		Failures: NewFailuresCommand(jsonStorage, viewer),
	}
}

// loadConfig builds the effective configuration from flags, the project file
// and the environment.
func loadConfig(flags *cli.Flags) (*config.Config, error) {
	return config.Load(flags.ProjectPath, flags.ToConfigFlags())
}

// Register registers all commands with cobra
func Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentFlags().StringVar(&flags.ProjectPath, "project-path", "", "Path to the project root (defaults to cwd)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the tests selected by name fragments",
		Long: "Discover PHPUnit test cases across the configured sources and execute the ones whose " +
			"fully-qualified name contains any of the given test name fragments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return build(cfg).Run.Execute(cmd, args)
		},
	}
	runCmd.Flags().StringVar(&flags.Tests, "tests", "", "Comma-separated test name fragments, or a path to a .txt file containing them (escape a literal comma with \\)")
	runCmd.Flags().StringVar(&flags.Filter, "filter", "", "Test case filter expression (incompatible with --tests)")
	runCmd.Flags().StringSliceVarP(&flags.Sources, "source", "s", nil, "Test source directory (repeatable)")
	runCmd.Flags().StringVar(&flags.SettingsPath, "settings", "", "Path to the PHPUnit configuration XML")
	runCmd.Flags().StringVar(&flags.AdapterPath, "adapter-path", "", "Path to the PHPUnit binary")
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of parallel workers")
	runCmd.Flags().BoolVar(&flags.Prepare, "prepare", false, "Prepare worker databases before running")
	_ = runCmd.MarkFlagRequired("tests")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test cases",
		Long:  "Discover and list all PHPUnit test cases in the configured sources without executing them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return build(cfg).List.Execute(cmd, args)
		},
	}
	listCmd.Flags().StringSliceVarP(&flags.Sources, "source", "s", nil, "Test source directory (repeatable)")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test cases instead of test files")
	rootCmd.AddCommand(listCmd)

	prepareCmd := &cobra.Command{
		Use:   "prepare",
		Short: "Prepare isolated worker databases",
		Long:  "Create one test database per worker and run the configured prepare command against each in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return build(cfg).Prepare.Execute(cmd, args)
		},
	}
	prepareCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of parallel workers")
	rootCmd.AddCommand(prepareCmd)

	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View last run's failures interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return build(cfg).Failures.Execute(cmd, args)
		},
	}
	rootCmd.AddCommand(failuresCmd)
}
