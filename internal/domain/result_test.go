package domain

import "testing"

func sampleSuiteResults() []SuiteResult {
	return []SuiteResult{
		{
			Suite: "ArgumentParsing",
			Results: []TestResult{
				{Suite: "ArgumentParsing", Name: "ImageFlag", Passed: true,
					Checks: []CheckRecord{{Passed: true, Message: "parsed"}}},
				{Suite: "ArgumentParsing", Name: "OutputFlag", Passed: false,
					Checks: []CheckRecord{
						{Passed: true, Message: "parsed"},
						{Passed: false, Message: "output name wrong"},
						{Passed: false, Message: "arch wrong"},
					}},
			},
		},
		{
			Suite: "BIFProcessing",
			Results: []TestResult{
				{Suite: "BIFProcessing", Name: "ValidFile", Passed: true},
			},
		},
	}
}

func TestSuiteResultCounts(t *testing.T) {
	suites := sampleSuiteResults()

	passed, failed := suites[0].Counts()
	if passed != 1 || failed != 1 {
		t.Errorf("Counts() = %d, %d, want 1, 1", passed, failed)
	}
	if suites[0].Passed() {
		t.Error("suite with a failure reported as passed")
	}
	if !suites[1].Passed() {
		t.Error("clean suite reported as failed")
	}
}

func TestFailedChecks(t *testing.T) {
	failing := sampleSuiteResults()[0].Results[1]

	msgs := failing.FailedChecks()
	if len(msgs) != 2 {
		t.Fatalf("FailedChecks() = %v", msgs)
	}
	if msgs[0] != "output name wrong" || msgs[1] != "arch wrong" {
		t.Errorf("FailedChecks() = %v", msgs)
	}

	passing := sampleSuiteResults()[0].Results[0]
	if got := passing.FailedChecks(); len(got) != 0 {
		t.Errorf("FailedChecks() on passing test = %v", got)
	}
}

func TestFailuresOf(t *testing.T) {
	failures := FailuresOf(sampleSuiteResults())

	if len(failures) != 1 {
		t.Fatalf("FailuresOf = %+v", failures)
	}
	f := failures[0]
	if f.Suite != "ArgumentParsing" || f.TestName != "OutputFlag" {
		t.Errorf("failure identity = %s/%s", f.Suite, f.TestName)
	}
	if f.Message != "output name wrong" {
		t.Errorf("Message = %q, want first failed check", f.Message)
	}
	if len(f.Checks) != 2 {
		t.Errorf("Checks = %v", f.Checks)
	}
	if f.Resolved {
		t.Error("new failure marked resolved")
	}
}

func TestFailuresOfNoFailures(t *testing.T) {
	suites := []SuiteResult{{
		Suite:   "BasicFunctionality",
		Results: []TestResult{{Name: "Run", Passed: true}},
	}}
	if got := FailuresOf(suites); got != nil {
		t.Errorf("FailuresOf = %v, want nil", got)
	}
}
