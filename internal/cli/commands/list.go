package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bth/internal/config"
	"bth/internal/domain"
	"bth/internal/harness"
	"bth/internal/storage"
	"bth/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	registry  *harness.Registry
	filter    *harness.Filter
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	registry *harness.Registry,
	filter *harness.Filter,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  registry,
		filter:    filter,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suites := lc.filter.FilterSuites(lc.registry.Suites(), lc.config.Flags.NameFilter)
	if len(suites) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	infos := make([]domain.SuiteInfo, 0, len(suites))
	for _, s := range suites {
		infos = append(infos, domain.SuiteInfo{Name: s.Name, Tests: s.TestNames()})
	}

	return lc.formatter.PrintSuiteList(infos, lc.config.Flags.ShowTests, lc.lastRunFailures())
}

// lastRunFailures returns "Suite/Test" keys for failures in the saved run,
// if any. A missing results file just means no markers.
func (lc *ListCommand) lastRunFailures() map[string]struct{} {
	output, err := lc.storage.Load()
	if err != nil {
		return nil
	}
	failed := make(map[string]struct{}, len(output.Details))
	for _, f := range output.Details {
		failed[f.Suite+"/"+f.TestName] = struct{}{}
	}
	return failed
}
