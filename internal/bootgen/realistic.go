package bootgen

import (
	"errors"
	"fmt"
	"strings"
)

// Limits mirrored from the tool's fixed-size buffers.
const (
	// MaxOutputNameLen is the capacity of the tool's output-filename buffer.
	MaxOutputNameLen = 255
	// MaxProcessNameLen is the longest filename RealisticBIFFile will process.
	MaxProcessNameLen = 10000
)

var (
	// ErrNoBIFFile is returned when a processing step needs a BIF file
	// and none was given on the command line.
	ErrNoBIFFile = errors.New("no BIF file specified")
	// ErrOutputNameTooLong is returned when -o exceeds the output buffer.
	ErrOutputNameTooLong = errors.New("output filename too long")
	// ErrAppClosed is returned when a closed app is run again.
	ErrAppClosed = errors.New("application already closed")
)

// RealisticOptions models the tool's option handling including its
// fixed-buffer limits, so the suites can probe the overflow and
// missing-input paths the forgiving mock hides.
type RealisticOptions struct {
	bifFileName    string
	hasBIFFile     bool
	outputFileName string
	architecture   string

	ParseArgsCalled        bool
	ProcessVerifyKDFCalled bool
	ProcessReadImageCalled bool
}

// NewRealisticOptions creates a RealisticOptions in its zero state.
func NewRealisticOptions() *RealisticOptions {
	return &RealisticOptions{}
}

// ParseArgs scans the argument vector. Unlike Options.ParseArgs it can
// fail: an -o value longer than the output buffer is rejected.
func (o *RealisticOptions) ParseArgs(args []string) error {
	o.ParseArgsCalled = true

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-image":
			if i+1 < len(args) {
				o.bifFileName = args[i+1]
				o.hasBIFFile = true
				i++
			}
		case "-o":
			if i+1 < len(args) {
				if len(args[i+1]) > MaxOutputNameLen {
					return fmt.Errorf("%w: %d bytes exceeds %d byte buffer",
						ErrOutputNameTooLong, len(args[i+1]), MaxOutputNameLen)
				}
				o.outputFileName = args[i+1]
				i++
			}
		case "-arch":
			if i+1 < len(args) {
				o.architecture = args[i+1]
				i++
			}
		}
	}
	return nil
}

// ProcessVerifyKDF fails when no BIF file was given.
func (o *RealisticOptions) ProcessVerifyKDF() error {
	o.ProcessVerifyKDFCalled = true
	if !o.hasBIFFile {
		return ErrNoBIFFile
	}
	return nil
}

// ProcessReadImage marks the image read step.
func (o *RealisticOptions) ProcessReadImage() error {
	o.ProcessReadImageCalled = true
	return nil
}

// BifFilename returns the parsed -image value and whether one was given.
func (o *RealisticOptions) BifFilename() (string, bool) {
	return o.bifFileName, o.hasBIFFile
}

// OutputFilename returns the parsed -o value.
func (o *RealisticOptions) OutputFilename() string { return o.outputFileName }

// Architecture returns the parsed -arch value.
func (o *RealisticOptions) Architecture() string { return o.architecture }

// Reset restores the zero state for reuse between tests.
func (o *RealisticOptions) Reset() {
	*o = RealisticOptions{}
}

// RealisticBIFFile skips construction-time validation and fails during
// Process instead, matching the tool's late-failure behavior.
type RealisticBIFFile struct {
	Filename      string
	ProcessCalled bool
}

// NewRealisticBIFFile creates a RealisticBIFFile without validating.
func NewRealisticBIFFile(filename string) *RealisticBIFFile {
	return &RealisticBIFFile{Filename: filename}
}

// Process fails on a missing filename, names over the processing limit,
// and names containing "crash" (the simulated hard-failure trigger).
func (b *RealisticBIFFile) Process(opts *RealisticOptions) error {
	b.ProcessCalled = true

	name, ok := opts.BifFilename()
	if !ok || name == "" {
		return fmt.Errorf("no BIF filename provided")
	}
	if len(name) > MaxProcessNameLen {
		return fmt.Errorf("filename too long for processing: %d bytes", len(name))
	}
	if strings.Contains(b.Filename, "crash") {
		return errors.New("simulated crash in file processing")
	}
	return nil
}

// RealisticApp drives the realistic variants with error propagation at
// every step and a versioned banner.
type RealisticApp struct {
	Options *RealisticOptions

	Banner string
	closed bool
}

// Version is the banner version stamp.
const Version = "BOOTGEN v2023.1"

// NewRealisticApp creates a RealisticApp with fresh options.
func NewRealisticApp() *RealisticApp {
	return &RealisticApp{Options: NewRealisticOptions()}
}

// DisplayBanner records the versioned banner.
func (a *RealisticApp) DisplayBanner() {
	a.Banner = "Version: " + Version
}

// Run executes the sequence, propagating the first step error.
func (a *RealisticApp) Run(args []string) error {
	if a.closed {
		return ErrAppClosed
	}
	a.DisplayBanner()

	if err := a.Options.ParseArgs(args); err != nil {
		return fmt.Errorf("parse args: %w", err)
	}
	if err := a.Options.ProcessVerifyKDF(); err != nil {
		return fmt.Errorf("verify KDF: %w", err)
	}
	if err := a.Options.ProcessReadImage(); err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	if name, ok := a.Options.BifFilename(); ok && name != "" {
		bif := NewRealisticBIFFile(name)
		if err := bif.Process(a.Options); err != nil {
			return fmt.Errorf("process BIF: %w", err)
		}
	}
	return nil
}

// Close releases the app. Closing twice is safe; running after Close is not.
func (a *RealisticApp) Close() {
	a.closed = true
}
