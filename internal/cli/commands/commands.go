package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bth/internal/cli"
	"bth/internal/config"
	"bth/internal/harness"
	"bth/internal/history"
	"bth/internal/report"
	"bth/internal/storage"
	"bth/internal/suites"
	"bth/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Report   *ReportCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) (*Commands, error) {
	registry, err := suites.New()
	if err != nil {
		return nil, fmt.Errorf("register suites: %w", err)
	}

	filter := harness.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, jsonStorage)
	reportWriter := report.NewWriter()
	reportScanner := report.NewScanner()
	historyStore := history.NewStore(cfg)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, registry, filter, jsonStorage, formatter, reportWriter, historyStore, failureViewer),
		List:     NewListCommand(cfg, registry, filter, formatter, jsonStorage),
		Report:   NewReportCommand(cfg, formatter, reportScanner),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
		History:  NewHistoryCommand(cfg, historyStore),
	}, nil
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the harness suites",
		Long:  "Execute the registered Bootgen mock test suites across parallel workers",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Keep a config-file verbose override when the flag is unset.
			fileVerbose := cfg.Flags.VerboseChecks
			cfg.Flags = flags.ToConfigFlags()
			cfg.Flags.VerboseChecks = cfg.Flags.VerboseChecks || fileVerbose
			// The bound variable holds the flag default even when -p was
			// never given; only an explicit flag overrides env/file workers.
			if cmd.Flags().Changed("workers") {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "p", config.DefaultWorkers, "Number of suite workers to use")
	runCmd.Flags().StringVarP(&flags.Suite, "suite", "s", "", "Run only the named suite")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'ParseArgs*' or '*BIF*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop dispatching suites after the first failure")
	runCmd.Flags().BoolVarP(&flags.VerboseChecks, "verbose-checks", "v", false, "Print every check as it runs")
	runCmd.Flags().BoolVar(&flags.Record, "record", false, "Record the run into the MySQL history database")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered suites",
		Long:  "List the registered suites and tests without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'ParseArgs*' or '*BIF*')")
	listCmd.Flags().BoolVarP(&flags.ShowTests, "tests", "c", false, "List individual tests instead of suites")
	rootCmd.AddCommand(listCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Show the last run's statistics",
		Long:  "Display the saved run statistics, list saved report files, or re-parse a specific text report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Report.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	reportCmd.Flags().BoolVarP(&flags.All, "all", "a", false, "List all saved report files")
	rootCmd.AddCommand(reportCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long:  "List harness runs recorded to the MySQL history database",
		RunE:  c.History.Execute,
	}
	rootCmd.AddCommand(historyCmd)
}
