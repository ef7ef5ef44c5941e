package harness

import (
	"fmt"

	"github.com/fatih/color"

	"bth/internal/domain"
)

// T records check outcomes for one running test. Check helpers call Pass
// and Fail; the runner reads the log back out afterwards.
type T struct {
	name    string
	checks  []domain.CheckRecord
	verbose bool
}

// NewT creates a recorder for the named test. When verbose is set, every
// check prints a colored [PASS]/[FAIL] line as it happens.
func NewT(name string, verbose bool) *T {
	return &T{name: name, verbose: verbose}
}

// Name returns the running test's name.
func (t *T) Name() string { return t.name }

// Pass records a passed check.
func (t *T) Pass(msg string) {
	t.checks = append(t.checks, domain.CheckRecord{Passed: true, Message: msg})
	if t.verbose {
		color.Green("  [PASS] %s", msg)
	}
}

// Fail records a failed check.
func (t *T) Fail(msg string) {
	t.checks = append(t.checks, domain.CheckRecord{Passed: false, Message: msg})
	if t.verbose {
		color.Red("  [FAIL] %s", msg)
	}
}

// Failf records a failed check with a formatted message.
func (t *T) Failf(format string, args ...any) {
	t.Fail(fmt.Sprintf(format, args...))
}

// Failed reports whether any check failed so far.
func (t *T) Failed() bool {
	for _, c := range t.checks {
		if !c.Passed {
			return true
		}
	}
	return false
}

// Checks returns the check log in execution order.
func (t *T) Checks() []domain.CheckRecord {
	return t.checks
}
