package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bth/internal/domain"
)

func sampleRun() []domain.SuiteResult {
	return []domain.SuiteResult{
		{
			Suite: "ArgumentParsing",
			Results: []domain.TestResult{
				{
					Suite: "ArgumentParsing", Name: "ImageFlag", Passed: true,
					Duration: 3 * time.Millisecond,
				},
				{
					Suite: "ArgumentParsing", Name: "OutputFlag", Passed: false,
					Duration: 7 * time.Millisecond,
					Checks: []domain.CheckRecord{
						{Passed: true, Message: "parsed without error"},
						{Passed: false, Message: "expected: \"out.bin\", actual: \"\""},
					},
				},
			},
		},
		{
			Suite: "BIFProcessing",
			Results: []domain.TestResult{
				{
					Suite: "BIFProcessing", Name: "ValidFile", Passed: true,
					Duration: 2 * time.Millisecond,
				},
			},
		},
	}
}

func TestWriter_Render(t *testing.T) {
	generated := time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)
	content := NewWriter().Render(sampleRun(), generated)

	wantLines := []string{
		"BOOTGEN UNIT TEST REPORT",
		"Generated: 2023-06-15T10:30:00Z",
		"Total Tests: 3",
		"Passed: 2",
		"Failed: 1",
		"Success Rate: 66.7%",
		"DETAILED TEST RESULTS:",
		"Test: ArgumentParsing/ImageFlag",
		"  Status: PASSED",
		"Test: ArgumentParsing/OutputFlag",
		"  Status: FAILED",
		"  Duration: 7ms",
		`  Error: expected: "out.bin", actual: ""`,
		"FAILED TESTS SUMMARY:",
		"- ArgumentParsing/OutputFlag",
		"PERFORMANCE SUMMARY:",
		"Total Execution Time: 12ms",
		"Average Test Time: 4ms",
		"Fastest Test: 2ms",
		"Slowest Test: 7ms",
	}
	for _, line := range wantLines {
		if !strings.Contains(content, line+"\n") {
			t.Errorf("report missing line %q", line)
		}
	}

	// Passing checks never show up as errors
	if strings.Contains(content, "parsed without error") {
		t.Error("report lists a passing check as an error")
	}
}

func TestWriter_RenderAllPassed(t *testing.T) {
	run := []domain.SuiteResult{{
		Suite: "BasicFunctionality",
		Results: []domain.TestResult{
			{Suite: "BasicFunctionality", Name: "Run", Passed: true, Duration: time.Millisecond},
		},
	}}
	content := NewWriter().Render(run, time.Now())

	if strings.Contains(content, "FAILED TESTS SUMMARY") {
		t.Error("failed summary present with no failures")
	}
	if !strings.Contains(content, "Success Rate: 100.0%") {
		t.Error("missing 100% success rate")
	}
}

func TestWriter_RenderEmpty(t *testing.T) {
	content := NewWriter().Render(nil, time.Now())

	if !strings.Contains(content, "Total Tests: 0") {
		t.Error("missing zero total")
	}
	if strings.Contains(content, "Success Rate") {
		t.Error("success rate printed for empty run")
	}
	if strings.Contains(content, "PERFORMANCE SUMMARY") {
		t.Error("performance summary printed for empty run")
	}
}

func TestWriteFileThenParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "test_report.txt")

	if err := NewWriter().WriteFile(path, sampleRun()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	summary, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if summary.TotalTests != 3 || summary.Passed != 2 || summary.Failed != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.SuccessRate != 66.7 {
		t.Errorf("SuccessRate = %v, want 66.7", summary.SuccessRate)
	}
	if len(summary.FailedTests) != 1 || summary.FailedTests[0] != "ArgumentParsing/OutputFlag" {
		t.Errorf("FailedTests = %v", summary.FailedTests)
	}
	if summary.Generated == "" {
		t.Error("missing generated timestamp")
	}
}

func TestParse_RejectsForeignContent(t *testing.T) {
	_, err := Parse("just some\nrandom text\n")
	if err == nil {
		t.Fatal("expected error for content without the report header")
	}
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()

	mustWrite := func(rel string) {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	mustWrite("test_report.txt")
	mustWrite("test-results.json")
	mustWrite("archive/old_report.txt")
	mustWrite("notes.md")
	mustWrite(".git/ignored_report.txt")

	got, err := NewScanner().Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{
		filepath.Join(root, "archive", "old_report.txt"),
		filepath.Join(root, "test-results.json"),
		filepath.Join(root, "test_report.txt"),
	}
	if len(got) != len(want) {
		t.Fatalf("Scan = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scan[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanner_MissingDir(t *testing.T) {
	if _, err := NewScanner().Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
