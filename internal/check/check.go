// Package check provides the assertion surface used by the registered
// suites. Every helper records exactly one pass or fail entry on the
// given recorder and never stops the test.
package check

import (
	stdcmp "cmp"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// T is the recorder side the helpers need; *harness.T implements it.
type T interface {
	Pass(msg string)
	Fail(msg string)
}

// NoError passes when err is nil.
func NoError(t T, err error) {
	if err == nil {
		t.Pass("no error returned")
		return
	}
	t.Fail(fmt.Sprintf("unexpected error: %v", err))
}

// Error passes when err is non-nil.
func Error(t T, err error) {
	if err != nil {
		t.Pass(fmt.Sprintf("expected error returned: %v", err))
		return
	}
	t.Fail("expected error not returned")
}

// ErrorContains passes when err is non-nil and its message contains substr.
func ErrorContains(t T, err error, substr string) {
	if err == nil {
		t.Fail(fmt.Sprintf("expected error containing %q, got nil", substr))
		return
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fail(fmt.Sprintf("error %q does not contain %q", err.Error(), substr))
		return
	}
	t.Pass(fmt.Sprintf("error contains %q", substr))
}

// Equal passes when want and got compare equal, reporting a diff otherwise.
func Equal(t T, want, got any) {
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fail(fmt.Sprintf("values differ (-want +got):\n%s", diff))
		return
	}
	t.Pass(fmt.Sprintf("values equal: %v", got))
}

// NotEqual passes when a and b do not compare equal.
func NotEqual(t T, a, b any) {
	if cmp.Equal(a, b) {
		t.Fail(fmt.Sprintf("values should not be equal: %v", a))
		return
	}
	t.Pass(fmt.Sprintf("values not equal: %v != %v", a, b))
}

// True passes when cond holds. desc names the condition in the check log.
func True(t T, cond bool, desc string) {
	if cond {
		t.Pass(desc)
		return
	}
	t.Fail("condition false: " + desc)
}

// False passes when cond does not hold.
func False(t T, cond bool, desc string) {
	if !cond {
		t.Pass("not " + desc)
		return
	}
	t.Fail("condition should be false: " + desc)
}

// Less passes when a < b.
func Less[V stdcmp.Ordered](t T, a, b V, desc string) {
	if a < b {
		t.Pass(fmt.Sprintf("%v < %v (%s)", a, b, desc))
		return
	}
	t.Fail(fmt.Sprintf("%v not < %v (%s)", a, b, desc))
}

// Greater passes when a > b.
func Greater[V stdcmp.Ordered](t T, a, b V, desc string) {
	if a > b {
		t.Pass(fmt.Sprintf("%v > %v (%s)", a, b, desc))
		return
	}
	t.Fail(fmt.Sprintf("%v not > %v (%s)", a, b, desc))
}

// AtMost passes when a <= b.
func AtMost[V stdcmp.Ordered](t T, a, b V, desc string) {
	if a <= b {
		t.Pass(fmt.Sprintf("%v <= %v (%s)", a, b, desc))
		return
	}
	t.Fail(fmt.Sprintf("%v not <= %v (%s)", a, b, desc))
}

// AtLeast passes when a >= b.
func AtLeast[V stdcmp.Ordered](t T, a, b V, desc string) {
	if a >= b {
		t.Pass(fmt.Sprintf("%v >= %v (%s)", a, b, desc))
		return
	}
	t.Fail(fmt.Sprintf("%v not >= %v (%s)", a, b, desc))
}

// StrEqual passes when the strings are byte-for-byte equal.
func StrEqual(t T, want, got string) {
	if want == got {
		t.Pass(fmt.Sprintf("strings equal: %q", got))
		return
	}
	t.Fail(fmt.Sprintf("expected: %q, actual: %q", want, got))
}

// StrNotEqual passes when the strings differ.
func StrNotEqual(t T, a, b string) {
	if a != b {
		t.Pass(fmt.Sprintf("strings not equal: %q != %q", a, b))
		return
	}
	t.Fail(fmt.Sprintf("strings should not be equal: %q", a))
}

// Succeed records an unconditional pass.
func Succeed(t T, desc string) {
	t.Pass(desc)
}

// Failf records an unconditional formatted failure.
func Failf(t T, format string, args ...any) {
	t.Fail(fmt.Sprintf(format, args...))
}
