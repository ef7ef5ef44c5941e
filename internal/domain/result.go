package domain

import "time"

// CheckRecord is a single assertion outcome within a test.
type CheckRecord struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// TestResult represents the outcome of executing one registered test.
type TestResult struct {
	Suite    string        // Suite the test belongs to
	Name     string        // Registered test name
	Passed   bool          // Whether every check passed and no panic occurred
	Checks   []CheckRecord // Per-check log, in execution order
	Duration time.Duration // Time taken to execute
}

// FailedChecks returns the messages of the checks that failed.
func (r TestResult) FailedChecks() []string {
	var msgs []string
	for _, c := range r.Checks {
		if !c.Passed {
			msgs = append(msgs, c.Message)
		}
	}
	return msgs
}

// SuiteResult groups the results of one suite run.
type SuiteResult struct {
	Suite    string
	Results  []TestResult
	Duration time.Duration
}

// Passed reports whether every test in the suite passed.
func (s SuiteResult) Passed() bool {
	for _, r := range s.Results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// Counts returns the number of passed and failed tests in the suite.
func (s SuiteResult) Counts() (passed, failed int) {
	for _, r := range s.Results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// RunMeta contains metadata about a full harness run.
type RunMeta struct {
	TotalSuites     int     `json:"total_suites"`
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	FailedChecks    int     `json:"failed_checks"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted output of a harness run.
type RunOutput struct {
	Meta    RunMeta   `json:"meta"`
	Details []Failure `json:"details"`
}
