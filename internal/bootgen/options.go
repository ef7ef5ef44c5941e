// Package bootgen contains mock stand-ins for the external Bootgen
// boot-image tool. The mocks reproduce the tool's public calling sequence
// (ParseArgs, ProcessVerifyKDF, ProcessReadImage, BIFFile.Process) without
// any of its real image, key, or device logic.
package bootgen

// Options models the Bootgen command-line option state.
type Options struct {
	bifFileName    string
	outputFileName string
	architecture   string
	helpRequested  bool
	verboseMode    bool
	arguments      []string

	// Called-markers, used by tests to verify the calling sequence.
	ParseArgsCalled        bool
	ProcessVerifyKDFCalled bool
	ProcessReadImageCalled bool
}

// NewOptions creates an Options in its zero state.
func NewOptions() *Options {
	return &Options{}
}

// ParseArgs scans the argument vector and records the modeled flags.
// args[0] is the program name, as in os.Args. Value flags consume the next
// token only when one is present; the last value seen wins.
func (o *Options) ParseArgs(args []string) {
	o.ParseArgsCalled = true
	o.arguments = append([]string(nil), args...)

	for i := 1; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-image":
			if i+1 < len(args) {
				o.bifFileName = args[i+1]
				i++
			}
		case "-o":
			if i+1 < len(args) {
				o.outputFileName = args[i+1]
				i++
			}
		case "-arch":
			if i+1 < len(args) {
				o.architecture = args[i+1]
				i++
			}
		case "-help", "--help", "-h":
			o.helpRequested = true
		case "-verbose", "-v":
			o.verboseMode = true
		}
	}
}

// ProcessVerifyKDF marks the KDF verification step. The mock never fails.
func (o *Options) ProcessVerifyKDF() {
	o.ProcessVerifyKDFCalled = true
}

// ProcessReadImage marks the image read step. The mock never fails.
func (o *Options) ProcessReadImage() {
	o.ProcessReadImageCalled = true
}

// BifFilename returns the parsed -image value.
func (o *Options) BifFilename() string { return o.bifFileName }

// OutputFilename returns the parsed -o value.
func (o *Options) OutputFilename() string { return o.outputFileName }

// Architecture returns the parsed -arch value.
func (o *Options) Architecture() string { return o.architecture }

// HelpRequested reports whether a help flag was seen.
func (o *Options) HelpRequested() bool { return o.helpRequested }

// VerboseMode reports whether a verbose flag was seen.
func (o *Options) VerboseMode() bool { return o.verboseMode }

// Arguments returns the recorded argument vector.
func (o *Options) Arguments() []string { return o.arguments }

// Reset restores the zero state for reuse between tests.
func (o *Options) Reset() {
	*o = Options{}
}
