package history

import (
	"strings"
	"testing"
)

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"harness_runs", true},
		{"bth_history", true},
		{"Runs2024", true},
		{"", false},
		{"runs;drop table users", false},
		{"run-history", false},
		{"runs history", false},
		{"`runs`", false},
		{strings.Repeat("a", 64), true},
		{strings.Repeat("a", 65), false},
	}
	for _, tt := range tests {
		if got := isValidIdentifier(tt.name); got != tt.want {
			t.Errorf("isValidIdentifier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
