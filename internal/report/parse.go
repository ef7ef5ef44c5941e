package report

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Summary is the header block parsed back out of a text report.
type Summary struct {
	Generated   string
	TotalTests  int
	Passed      int
	Failed      int
	SuccessRate float64
	FailedTests []string
}

var summaryLine = regexp.MustCompile(`^(Generated|Total Tests|Passed|Failed|Success Rate):\s*(.+)$`)

// Parse reads a generated text report back into a Summary.
func Parse(content string) (*Summary, error) {
	s := &Summary{}
	seenHeader := false
	inFailedSection := false

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == "BOOTGEN UNIT TEST REPORT" {
			seenHeader = true
			continue
		}
		if strings.HasPrefix(line, "FAILED TESTS SUMMARY:") {
			inFailedSection = true
			continue
		}
		if inFailedSection {
			if strings.HasPrefix(line, "- ") {
				s.FailedTests = append(s.FailedTests, strings.TrimPrefix(line, "- "))
				continue
			}
			if line == "" || strings.HasSuffix(line, ":") {
				inFailedSection = false
			}
			continue
		}

		m := summaryLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[2])
		switch m[1] {
		case "Generated":
			if s.Generated == "" {
				s.Generated = value
			}
		case "Total Tests":
			s.TotalTests, _ = strconv.Atoi(value)
		case "Passed":
			if s.Passed == 0 {
				s.Passed, _ = strconv.Atoi(value)
			}
		case "Failed":
			if s.Failed == 0 {
				s.Failed, _ = strconv.Atoi(value)
			}
		case "Success Rate":
			rate := strings.TrimSuffix(value, "%")
			s.SuccessRate, _ = strconv.ParseFloat(rate, 64)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan report: %w", err)
	}
	if !seenHeader {
		return nil, fmt.Errorf("not a harness report (missing header)")
	}
	return s, nil
}

// ParseFile reads and parses a text report from disk.
func ParseFile(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return Parse(string(data))
}
