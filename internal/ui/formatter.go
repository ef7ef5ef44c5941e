package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"bth/internal/config"
	"bth/internal/domain"
	"bth/internal/storage"
)

// Formatter formats and displays run output
type Formatter struct {
	config  *config.Config
	storage storage.Storage
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, st storage.Storage) *Formatter {
	return &Formatter{
		config:  cfg,
		storage: st,
	}
}

// PrintRunStats loads the saved run output and displays its statistics
func (f *Formatter) PrintRunStats() error {
	output, err := f.storage.Load()
	if err != nil {
		return err
	}
	return f.PrintStats(output)
}

// PrintStats displays run statistics as a table plus a failure tree
func (f *Formatter) PrintStats(output *domain.RunOutput) error {
	// Clear terminal screen
	fmt.Print("\033[2J\033[H")

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                 Bootgen Harness Run Statistics                ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Suites")
	color.White("%-27d │\n", meta.TotalSuites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Tests")
	color.Green("%-27d │\n", meta.PassedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Tests")
	color.Red("%-27d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Checks")
	color.Red("%-27d │\n", meta.FailedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d test(s) failed with %d failed check(s)", meta.FailedTests, meta.FailedChecks)
		fmt.Println()
		f.printFailureTree(output.Details)
	}

	return nil
}

// printFailureTree prints failures grouped by suite
func (f *Formatter) printFailureTree(failures []domain.Failure) {
	if len(failures) == 0 {
		return
	}

	suiteMap := make(map[string][]domain.Failure)
	for _, failure := range failures {
		suiteMap[failure.Suite] = append(suiteMap[failure.Suite], failure)
	}

	var suites []string
	for suite := range suiteMap {
		suites = append(suites, suite)
	}
	sort.Strings(suites)

	for i, suite := range suites {
		isLastSuite := i == len(suites)-1
		if isLastSuite {
			color.Cyan("└── %s", suite)
		} else {
			color.Cyan("├── %s", suite)
		}

		suiteFailures := suiteMap[suite]
		for j, failure := range suiteFailures {
			isLastCase := j == len(suiteFailures)-1

			var prefix string
			if isLastSuite {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Printf("%s%s %s\n", prefix, color.RedString(failure.TestName),
				color.YellowString("(%s)", firstLine(failure.Message)))
		}

		if i < len(suites)-1 {
			fmt.Println()
		}
	}
}

// PrintSuiteList prints the registered suites, optionally with test names.
// failedNames is optional; tests in this set are marked with [F] in red
// (from the last saved run).
func (f *Formatter) PrintSuiteList(suites []domain.SuiteInfo, showTests bool, failedNames map[string]struct{}) error {
	if showTests {
		total := 0
		for _, s := range suites {
			total += len(s.Tests)
		}
		color.Green("Found %d suite(s) with %d test(s):\n", len(suites), total)

		for i, suite := range suites {
			isLastSuite := i == len(suites)-1
			if isLastSuite {
				color.Cyan("└── %s", suite.Name)
			} else {
				color.Cyan("├── %s", suite.Name)
			}

			for j, test := range suite.Tests {
				isLastCase := j == len(suite.Tests)-1

				var prefix string
				if isLastSuite {
					if isLastCase {
						prefix = "    └── "
					} else {
						prefix = "    ├── "
					}
				} else {
					if isLastCase {
						prefix = "│   └── "
					} else {
						prefix = "│   ├── "
					}
				}

				failMarker := ""
				if len(failedNames) > 0 {
					if _, ok := failedNames[suite.Name+"/"+test]; ok {
						failMarker = " " + color.RedString("[F]")
					}
				}
				fmt.Printf("%s%s%s\n", prefix, color.YellowString(test), failMarker)
			}

			if i < len(suites)-1 {
				fmt.Println()
			}
		}
	} else {
		color.Green("Found %d suite(s):\n", len(suites))

		for i, suite := range suites {
			line := fmt.Sprintf("%s (%d tests)", suite.Name, len(suite.Tests))
			if i == len(suites)-1 {
				color.Cyan("└── %s", line)
			} else {
				color.Cyan("├── %s", line)
			}
		}
	}

	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
