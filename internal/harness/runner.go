package harness

import (
	"fmt"
	"time"

	"bth/internal/domain"
)

// Runner executes one suite's tests sequentially, in registration order.
type Runner struct {
	verbose bool
}

// NewRunner creates a Runner. verbose enables per-check output.
func NewRunner(verbose bool) *Runner {
	return &Runner{verbose: verbose}
}

// RunSuite executes every test in the suite and returns the suite result.
func (r *Runner) RunSuite(s Suite) domain.SuiteResult {
	start := time.Now()
	results := make([]domain.TestResult, 0, len(s.Tests))
	for _, test := range s.Tests {
		results = append(results, r.runTest(s.Name, test))
	}
	return domain.SuiteResult{
		Suite:    s.Name,
		Results:  results,
		Duration: time.Since(start),
	}
}

// runTest executes one test, converting a panic into a recorded failure
// so a broken test cannot take the whole run down.
func (r *Runner) runTest(suite string, test Test) domain.TestResult {
	t := NewT(test.Name, r.verbose)
	start := time.Now()

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				t.Fail(fmt.Sprintf("panic: %v", rec))
			}
		}()
		test.Func(t)
	}()

	return domain.TestResult{
		Suite:    suite,
		Name:     test.Name,
		Passed:   !t.Failed(),
		Checks:   t.Checks(),
		Duration: time.Since(start),
	}
}
