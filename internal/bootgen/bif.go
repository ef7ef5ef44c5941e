package bootgen

import (
	"errors"
	"fmt"
	"strings"
)

// MaxBIFNameLen is the longest filename the mock accepts at construction.
const MaxBIFNameLen = 1000

// Validation messages, matched verbatim by the harness suites.
var (
	ErrEmptyFilename   = errors.New("empty filename provided")
	ErrFilenameTooLong = errors.New("filename too long")
	ErrInvalidPattern  = errors.New("invalid filename pattern")
)

// BIFFile is the mock stand-in for Bootgen's BIF input file object.
// Validation happens at construction; Process reports it as an error.
type BIFFile struct {
	Filename      string
	ProcessCalled bool

	valid         bool
	validationErr error
}

// NewBIFFile creates a BIFFile and validates the filename.
func NewBIFFile(filename string) *BIFFile {
	b := &BIFFile{Filename: filename, valid: true}
	switch {
	case filename == "":
		b.valid = false
		b.validationErr = ErrEmptyFilename
	case len(filename) > MaxBIFNameLen:
		b.valid = false
		b.validationErr = ErrFilenameTooLong
	case strings.Contains(filename, "invalid"):
		b.valid = false
		b.validationErr = ErrInvalidPattern
	}
	return b
}

// Process simulates BIF processing. Invalid files and names containing
// "throw" (the mock's simulated-failure trigger) produce errors.
func (b *BIFFile) Process(opts *Options) error {
	b.ProcessCalled = true

	if !b.valid {
		return fmt.Errorf("cannot process invalid BIF file: %w", b.validationErr)
	}
	if strings.Contains(b.Filename, "throw") {
		return errors.New("simulated processing error")
	}
	return nil
}

// IsValid reports whether construction-time validation passed.
func (b *BIFFile) IsValid() bool { return b.valid }

// ErrorMessage returns the validation message, empty for valid files.
func (b *BIFFile) ErrorMessage() string {
	if b.validationErr == nil {
		return ""
	}
	return b.validationErr.Error()
}
