package bootgen

import (
	"errors"
	"strings"
	"testing"
)

func TestNewBIFFile_Validation(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		valid    bool
		wantMsg  string
	}{
		{
			name:     "valid filename",
			filename: "valid.bif",
			valid:    true,
		},
		{
			name:     "empty filename",
			filename: "",
			valid:    false,
			wantMsg:  "empty filename provided",
		},
		{
			name:     "filename too long",
			filename: strings.Repeat("a", MaxBIFNameLen+1) + ".bif",
			valid:    false,
			wantMsg:  "filename too long",
		},
		{
			name:     "invalid pattern",
			filename: "invalid_pattern.bif",
			valid:    false,
			wantMsg:  "invalid filename pattern",
		},
		{
			name:     "exactly at length limit",
			filename: strings.Repeat("a", MaxBIFNameLen),
			valid:    true,
		},
		{
			name:     "single character",
			filename: "a",
			valid:    true,
		},
		{
			name:     "path traversal allowed in mock",
			filename: "../parent.bif",
			valid:    true,
		},
		{
			name:     "spaces and tabs",
			filename: "file with\tspaces.bif",
			valid:    true,
		},
		{
			name:     "unicode",
			filename: "üñíçøðé.bif",
			valid:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bif := NewBIFFile(tt.filename)
			if bif.IsValid() != tt.valid {
				t.Errorf("IsValid() = %v, want %v", bif.IsValid(), tt.valid)
			}
			if got := bif.ErrorMessage(); got != tt.wantMsg {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestBIFFile_Process(t *testing.T) {
	opts := NewOptions()

	t.Run("valid file", func(t *testing.T) {
		bif := NewBIFFile("test.bif")
		if err := bif.Process(opts); err != nil {
			t.Errorf("Process() = %v, want nil", err)
		}
		if !bif.ProcessCalled {
			t.Error("ProcessCalled not set")
		}
	})

	t.Run("invalid file wraps validation sentinel", func(t *testing.T) {
		bif := NewBIFFile("")
		err := bif.Process(opts)
		if err == nil {
			t.Fatal("Process() = nil, want error")
		}
		if !errors.Is(err, ErrEmptyFilename) {
			t.Errorf("Process() = %v, want wrapped ErrEmptyFilename", err)
		}
		if !bif.ProcessCalled {
			t.Error("ProcessCalled not set on failure")
		}
	})

	t.Run("throw pattern", func(t *testing.T) {
		bif := NewBIFFile("throw_error.bif")
		if !bif.IsValid() {
			t.Fatal("throw-pattern file should pass validation")
		}
		err := bif.Process(opts)
		if err == nil || err.Error() != "simulated processing error" {
			t.Errorf("Process() = %v, want simulated processing error", err)
		}
	})
}
