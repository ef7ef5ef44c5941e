package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bth/internal/config"
	"bth/internal/report"
	"bth/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	scanner   *report.Scanner
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, formatter *ui.Formatter, scanner *report.Scanner) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		formatter: formatter,
		scanner:   scanner,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.Flags.All {
		return rc.listReports()
	}
	if len(args) == 1 {
		return rc.showTextReport(args[0])
	}
	return rc.formatter.PrintRunStats()
}

// listReports scans the report directory for saved artifacts.
func (rc *ReportCommand) listReports() error {
	reports, err := rc.scanner.Scan(rc.config.GetReportDir())
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		color.Yellow("No saved reports found")
		return nil
	}

	color.Green("Found %d report file(s):\n", len(reports))
	for i, path := range reports {
		if i == len(reports)-1 {
			color.Cyan("└── %s", path)
		} else {
			color.Cyan("├── %s", path)
		}
	}
	return nil
}

// showTextReport re-parses a generated text report and prints its summary.
func (rc *ReportCommand) showTextReport(path string) error {
	summary, err := report.ParseFile(path)
	if err != nil {
		return err
	}

	color.Cyan("Report: %s", path)
	color.White("Generated: %s", summary.Generated)
	color.White("Total Tests: %d", summary.TotalTests)
	color.Green("Passed: %d", summary.Passed)
	color.Red("Failed: %d", summary.Failed)
	fmt.Printf("Success Rate: %.1f%%\n", summary.SuccessRate)

	if len(summary.FailedTests) > 0 {
		fmt.Println()
		color.Red("Failed Tests:")
		for _, name := range summary.FailedTests {
			color.Red("  - %s", name)
		}
	}
	return nil
}
