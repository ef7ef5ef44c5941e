package commands

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bth/internal/config"
	"bth/internal/domain"
	"bth/internal/harness"
	"bth/internal/history"
	"bth/internal/report"
	"bth/internal/storage"
	"bth/internal/ui"
)

// ErrTestsFailed signals a completed run with at least one failed test.
var ErrTestsFailed = fmt.Errorf("some tests failed")

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	registry  *harness.Registry
	filter    *harness.Filter
	storage   storage.Storage
	formatter *ui.Formatter
	report    *report.Writer
	history   *history.Store
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	registry *harness.Registry,
	filter *harness.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
	reportWriter *report.Writer,
	historyStore *history.Store,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  registry,
		filter:    filter,
		storage:   st,
		formatter: formatter,
		report:    reportWriter,
		history:   historyStore,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := rc.selectSuites()
	if err != nil {
		return err
	}
	if len(suites) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	var totalTests int
	for _, s := range suites {
		totalTests += len(s.Tests)
	}

	color.Cyan("\n╔════════════════════════════════════════════════════════════╗")
	color.Cyan("║           Bootgen Test Harness - Suite Execution           ║")
	color.Cyan("╚════════════════════════════════════════════════════════════╝\n")
	color.White("Suites: %d | Tests: %d | Workers: %d\n", len(suites), totalTests, rc.config.Workers)

	runner := harness.NewRunner(rc.config.Flags.VerboseChecks)
	pool := harness.NewPool(rc.config.Workers, runner)
	if !rc.config.Flags.VerboseChecks {
		pool.SetProgress(ui.NewProgressBar(totalTests))
	}

	results, duration, err := pool.ExecuteWithOptions(suites, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	// Workers finish in arbitrary order; reports stay in registration order.
	order := make(map[string]int, len(suites))
	for i, s := range suites {
		order[s.Name] = i
	}
	sort.SliceStable(results, func(i, j int) bool {
		return order[results[i].Suite] < order[results[j].Suite]
	})

	failures := domain.FailuresOf(results)

	if err := rc.storage.Save(results, failures, duration, rc.config.Workers); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}
	if err := rc.report.WriteFile(rc.config.GetReportPath(), results); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}

	output, err := rc.storage.Load()
	if err != nil {
		return err
	}

	if rc.config.Flags.Record {
		if err := rc.history.RecordRun(output.Meta); err != nil {
			color.Yellow("Warning: could not record run history: %v", err)
		}
	}

	if err := rc.formatter.PrintStats(output); err != nil {
		return err
	}

	if len(failures) > 0 {
		if rc.config.Flags.OpenFailures {
			if err := rc.viewer.View(output); err != nil {
				return err
			}
		}
		return ErrTestsFailed
	}
	return nil
}

// selectSuites applies the -s and -f flags to the registry.
func (rc *RunCommand) selectSuites() ([]harness.Suite, error) {
	all := rc.registry.Suites()

	if name := rc.config.Flags.Suite; name != "" {
		suite, ok := rc.registry.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown suite: %s", name)
		}
		all = []harness.Suite{suite}
	}

	return rc.filter.FilterSuites(all, rc.config.Flags.NameFilter), nil
}
