package suites

import (
	"bth/internal/bootgen"
	"bth/internal/check"
	"bth/internal/harness"
)

// ArgumentParsing exercises Options.ParseArgs over the modeled flags.
func ArgumentParsing() harness.Suite {
	return harness.Suite{
		Name: "ArgumentParsing",
		Tests: []harness.Test{
			{Name: "ParseArgs_NoArguments", Func: testParseArgsNoArguments},
			{Name: "ParseArgs_ImageArgument", Func: testParseArgsImageArgument},
			{Name: "ParseArgs_OutputArgument", Func: testParseArgsOutputArgument},
			{Name: "ParseArgs_ArchitectureArgument", Func: testParseArgsArchitectureArgument},
			{Name: "ParseArgs_HelpArgument", Func: testParseArgsHelpArgument},
			{Name: "ParseArgs_VerboseArgument", Func: testParseArgsVerboseArgument},
			{Name: "ParseArgs_AllArguments", Func: testParseArgsAllArguments},
			{Name: "ParseArgs_LastValueWins", Func: testParseArgsLastValueWins},
			{Name: "ParseArgs_TrailingValueFlag", Func: testParseArgsTrailingValueFlag},
			{Name: "ParseArgs_Reset", Func: testParseArgsReset},
			{Name: "ProcessMethods", Func: testProcessMethods},
		},
	}
}

func testParseArgsNoArguments(t *harness.T) {
	opts := bootgen.NewOptions()
	opts.ParseArgs([]string{"bootgen"})

	check.True(t, opts.ParseArgsCalled, "parse args called")
	check.Equal(t, 1, len(opts.Arguments()))
	check.StrEqual(t, "bootgen", opts.Arguments()[0])
}

func testParseArgsImageArgument(t *harness.T) {
	opts := bootgen.NewOptions()
	opts.ParseArgs([]string{"bootgen", "-image", "test.bif"})

	check.True(t, opts.ParseArgsCalled, "parse args called")
	check.StrEqual(t, "test.bif", opts.BifFilename())
	check.Equal(t, 3, len(opts.Arguments()))
}

func testParseArgsOutputArgument(t *harness.T) {
	opts := bootgen.NewOptions()
	opts.ParseArgs([]string{"bootgen", "-image", "test.bif", "-o", "output.bin"})

	check.StrEqual(t, "test.bif", opts.BifFilename())
	check.StrEqual(t, "output.bin", opts.OutputFilename())
}

func testParseArgsArchitectureArgument(t *harness.T) {
	opts := bootgen.NewOptions()
	opts.ParseArgs([]string{"bootgen", "-arch", "zynq", "-image", "test.bif"})

	check.StrEqual(t, "zynq", opts.Architecture())
	check.StrEqual(t, "test.bif", opts.BifFilename())
}

func testParseArgsHelpArgument(t *harness.T) {
	for _, flag := range []string{"-help", "--help", "-h"} {
		opts := bootgen.NewOptions()
		opts.ParseArgs([]string{"bootgen", flag})
		check.True(t, opts.HelpRequested(), "help requested via "+flag)
	}
}

func testParseArgsVerboseArgument(t *harness.T) {
	opts := bootgen.NewOptions()
	opts.ParseArgs([]string{"bootgen", "-verbose", "-image", "test.bif"})

	check.True(t, opts.VerboseMode(), "verbose mode set")
	check.StrEqual(t, "test.bif", opts.BifFilename())
}

func testParseArgsAllArguments(t *harness.T) {
	opts := bootgen.NewOptions()
	opts.ParseArgs([]string{"bootgen", "-arch", "versal", "-image", "complex.bif", "-o", "final.bin", "-verbose"})

	check.True(t, opts.ParseArgsCalled, "parse args called")
	check.StrEqual(t, "versal", opts.Architecture())
	check.StrEqual(t, "complex.bif", opts.BifFilename())
	check.StrEqual(t, "final.bin", opts.OutputFilename())
	check.True(t, opts.VerboseMode(), "verbose mode set")
	check.Equal(t, 8, len(opts.Arguments()))
}

func testParseArgsLastValueWins(t *harness.T) {
	opts := bootgen.NewOptions()
	opts.ParseArgs([]string{"bootgen", "-image", "first.bif", "-image", "second.bif"})

	check.StrEqual(t, "second.bif", opts.BifFilename())
}

func testParseArgsTrailingValueFlag(t *harness.T) {
	// A value flag with no value left on the command line is ignored.
	opts := bootgen.NewOptions()
	opts.ParseArgs([]string{"bootgen", "-image"})

	check.True(t, opts.ParseArgsCalled, "parse args called")
	check.StrEqual(t, "", opts.BifFilename())
}

func testParseArgsReset(t *harness.T) {
	opts := bootgen.NewOptions()
	opts.ParseArgs([]string{"bootgen", "-image", "test.bif", "-verbose"})
	check.True(t, opts.ParseArgsCalled, "parse args called")
	check.True(t, opts.VerboseMode(), "verbose mode set")

	opts.Reset()
	check.False(t, opts.ParseArgsCalled, "parse args called after reset")
	check.False(t, opts.VerboseMode(), "verbose mode after reset")
	check.StrEqual(t, "", opts.BifFilename())
}

func testProcessMethods(t *harness.T) {
	opts := bootgen.NewOptions()

	check.False(t, opts.ProcessVerifyKDFCalled, "verify KDF called before processing")
	check.False(t, opts.ProcessReadImageCalled, "read image called before processing")

	opts.ProcessVerifyKDF()
	check.True(t, opts.ProcessVerifyKDFCalled, "verify KDF called")

	opts.ProcessReadImage()
	check.True(t, opts.ProcessReadImageCalled, "read image called")
}
