// Package report generates, re-parses, and locates the harness's
// plain-text run reports.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bth/internal/domain"
)

const divider = "======================================"

// Writer renders run results into the text report format.
type Writer struct{}

// NewWriter creates a new Writer
func NewWriter() *Writer {
	return &Writer{}
}

// Render produces the full text report for a run.
func (w *Writer) Render(suites []domain.SuiteResult, generated time.Time) string {
	var b strings.Builder

	var results []domain.TestResult
	for _, sr := range suites {
		results = append(results, sr.Results...)
	}

	var passed, failed int
	for _, r := range results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}

	b.WriteString(divider + "\n")
	b.WriteString("BOOTGEN UNIT TEST REPORT\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", generated.Format(time.RFC3339))
	fmt.Fprintf(&b, "Total Tests: %d\n", passed+failed)
	fmt.Fprintf(&b, "Passed: %d\n", passed)
	fmt.Fprintf(&b, "Failed: %d\n", failed)
	if passed+failed > 0 {
		rate := float64(passed) / float64(passed+failed) * 100.0
		fmt.Fprintf(&b, "Success Rate: %.1f%%\n", rate)
	}
	b.WriteString("\n")

	b.WriteString("DETAILED TEST RESULTS:\n")
	b.WriteString(divider + "\n")
	for _, r := range results {
		fmt.Fprintf(&b, "Test: %s/%s\n", r.Suite, r.Name)
		status := "PASSED"
		if !r.Passed {
			status = "FAILED"
		}
		fmt.Fprintf(&b, "  Status: %s\n", status)
		fmt.Fprintf(&b, "  Duration: %dms\n", r.Duration.Milliseconds())
		if !r.Passed {
			for _, msg := range r.FailedChecks() {
				fmt.Fprintf(&b, "  Error: %s\n", firstLine(msg))
			}
		}
		b.WriteString("\n")
	}

	if failed > 0 {
		b.WriteString("FAILED TESTS SUMMARY:\n")
		b.WriteString(divider + "\n")
		for _, r := range results {
			if !r.Passed {
				fmt.Fprintf(&b, "- %s/%s\n", r.Suite, r.Name)
			}
		}
		b.WriteString("\n")
	}

	if len(results) > 0 {
		b.WriteString("PERFORMANCE SUMMARY:\n")
		b.WriteString(divider + "\n")

		total := time.Duration(0)
		min := results[0].Duration
		max := results[0].Duration
		for _, r := range results {
			total += r.Duration
			if r.Duration < min {
				min = r.Duration
			}
			if r.Duration > max {
				max = r.Duration
			}
		}
		avg := total / time.Duration(len(results))

		fmt.Fprintf(&b, "Total Execution Time: %dms\n", total.Milliseconds())
		fmt.Fprintf(&b, "Average Test Time: %dms\n", avg.Milliseconds())
		fmt.Fprintf(&b, "Fastest Test: %dms\n", min.Milliseconds())
		fmt.Fprintf(&b, "Slowest Test: %dms\n", max.Milliseconds())
	}

	return b.String()
}

// WriteFile renders the report and writes it to path, creating the
// directory if needed.
func (w *Writer) WriteFile(path string, suites []domain.SuiteResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	content := w.Render(suites, time.Now())
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
