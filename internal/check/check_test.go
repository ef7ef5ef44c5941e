package check

import (
	"errors"
	"strings"
	"testing"
)

// spy records what the helpers report so the tests can inspect it.
type spy struct {
	passes []string
	fails  []string
}

func (s *spy) Pass(msg string) { s.passes = append(s.passes, msg) }
func (s *spy) Fail(msg string) { s.fails = append(s.fails, msg) }

func (s *spy) one(t *testing.T) (passed bool, msg string) {
	t.Helper()
	if len(s.passes)+len(s.fails) != 1 {
		t.Fatalf("expected exactly one check, got %d passes, %d fails", len(s.passes), len(s.fails))
	}
	if len(s.passes) == 1 {
		return true, s.passes[0]
	}
	return false, s.fails[0]
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name     string
		run      func(T)
		wantPass bool
		wantMsg  string
	}{
		{"NoError nil", func(r T) { NoError(r, nil) }, true, "no error"},
		{"NoError err", func(r T) { NoError(r, errors.New("boom")) }, false, "boom"},
		{"Error err", func(r T) { Error(r, errors.New("boom")) }, true, "boom"},
		{"Error nil", func(r T) { Error(r, nil) }, false, "expected error"},
		{"ErrorContains match", func(r T) { ErrorContains(r, errors.New("file too long"), "too long") }, true, "too long"},
		{"ErrorContains mismatch", func(r T) { ErrorContains(r, errors.New("empty"), "too long") }, false, "does not contain"},
		{"ErrorContains nil", func(r T) { ErrorContains(r, nil, "too long") }, false, "got nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &spy{}
			tt.run(s)
			passed, msg := s.one(t)
			if passed != tt.wantPass {
				t.Errorf("passed = %v, want %v", passed, tt.wantPass)
			}
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	s := &spy{}
	Equal(s, []string{"-image", "a.bif"}, []string{"-image", "a.bif"})
	if passed, _ := s.one(t); !passed {
		t.Error("equal slices reported as different")
	}

	s = &spy{}
	Equal(s, []string{"a"}, []string{"b"})
	passed, msg := s.one(t)
	if passed {
		t.Error("different slices reported as equal")
	}
	if !strings.Contains(msg, "-want +got") {
		t.Errorf("failure lacks diff: %q", msg)
	}
}

func TestNotEqual(t *testing.T) {
	s := &spy{}
	NotEqual(s, 1, 2)
	if passed, _ := s.one(t); !passed {
		t.Error("1 and 2 reported as equal")
	}

	s = &spy{}
	NotEqual(s, "x", "x")
	if passed, _ := s.one(t); passed {
		t.Error("identical values reported as not equal")
	}
}

func TestBoolHelpers(t *testing.T) {
	s := &spy{}
	True(s, 1 < 2, "one is smaller")
	False(s, 2 < 1, "two is smaller")
	if len(s.passes) != 2 || len(s.fails) != 0 {
		t.Fatalf("passes = %v, fails = %v", s.passes, s.fails)
	}

	s = &spy{}
	True(s, false, "never holds")
	False(s, true, "always holds")
	if len(s.fails) != 2 {
		t.Fatalf("fails = %v", s.fails)
	}
	if !strings.Contains(s.fails[0], "never holds") {
		t.Errorf("description missing from %q", s.fails[0])
	}
}

func TestOrderedHelpers(t *testing.T) {
	tests := []struct {
		name     string
		run      func(T)
		wantPass bool
	}{
		{"Less holds", func(r T) { Less(r, 1, 2, "ints") }, true},
		{"Less equal", func(r T) { Less(r, 2, 2, "ints") }, false},
		{"Greater holds", func(r T) { Greater(r, 2.5, 1.5, "floats") }, true},
		{"Greater fails", func(r T) { Greater(r, 1, 2, "ints") }, false},
		{"AtMost boundary", func(r T) { AtMost(r, 2, 2, "ints") }, true},
		{"AtMost fails", func(r T) { AtMost(r, 3, 2, "ints") }, false},
		{"AtLeast boundary", func(r T) { AtLeast(r, 2, 2, "ints") }, true},
		{"AtLeast fails", func(r T) { AtLeast(r, 1, 2, "ints") }, false},
		{"strings ordered", func(r T) { Less(r, "a", "b", "strings") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &spy{}
			tt.run(s)
			if passed, msg := s.one(t); passed != tt.wantPass {
				t.Errorf("passed = %v (%q), want %v", passed, msg, tt.wantPass)
			}
		})
	}
}

func TestStringHelpers(t *testing.T) {
	s := &spy{}
	StrEqual(s, "output.bin", "output.bin")
	StrNotEqual(s, "a.bif", "b.bif")
	if len(s.passes) != 2 {
		t.Fatalf("passes = %v, fails = %v", s.passes, s.fails)
	}

	s = &spy{}
	StrEqual(s, "want", "got")
	passed, msg := s.one(t)
	if passed {
		t.Error("different strings reported as equal")
	}
	if !strings.Contains(msg, `expected: "want"`) || !strings.Contains(msg, `actual: "got"`) {
		t.Errorf("unexpected failure message %q", msg)
	}
}

func TestSucceedAndFailf(t *testing.T) {
	s := &spy{}
	Succeed(s, "reached the end")
	Failf(s, "bad exit code %d", 3)

	if len(s.passes) != 1 || s.passes[0] != "reached the end" {
		t.Errorf("passes = %v", s.passes)
	}
	if len(s.fails) != 1 || s.fails[0] != "bad exit code 3" {
		t.Errorf("fails = %v", s.fails)
	}
}
