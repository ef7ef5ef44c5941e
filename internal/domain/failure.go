package domain

// Failure represents a failed test
type Failure struct {
	TestName string   `json:"test_name"`
	Suite    string   `json:"suite"`
	Message  string   `json:"message"`
	Checks   []string `json:"checks"`
	Duration string   `json:"duration"`
	Resolved bool     `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// FailuresOf collects Failure entries from a set of suite results.
func FailuresOf(suites []SuiteResult) []Failure {
	var failures []Failure
	for _, sr := range suites {
		for _, r := range sr.Results {
			if r.Passed {
				continue
			}
			checks := r.FailedChecks()
			msg := "test failed"
			if len(checks) > 0 {
				msg = checks[0]
			}
			failures = append(failures, Failure{
				TestName: r.Name,
				Suite:    sr.Suite,
				Message:  msg,
				Checks:   checks,
				Duration: r.Duration.String(),
			})
		}
	}
	return failures
}
