package suites

import (
	"bth/internal/bootgen"
	"bth/internal/check"
	"bth/internal/harness"
)

// BasicFunctionality exercises the App calling sequence end to end.
func BasicFunctionality() harness.Suite {
	return harness.Suite{
		Name: "BasicFunctionality",
		Tests: []harness.Test{
			{Name: "App_RunWithValidBifFile", Func: testAppRunWithValidBifFile},
			{Name: "App_RunWithoutBifFile", Func: testAppRunWithoutBifFile},
			{Name: "App_RunWithHelpArgument", Func: testAppRunWithHelpArgument},
			{Name: "App_RunWithMultipleArguments", Func: testAppRunWithMultipleArguments},
			{Name: "App_CallingSequence", Func: testAppCallingSequence},
			{Name: "App_ExitCodes", Func: testAppExitCodes},
		},
	}
}

func testAppRunWithValidBifFile(t *harness.T) {
	app := bootgen.NewApp()
	err := app.Run([]string{"bootgen", "-image", "test.bif", "-o", "output.bin"})

	check.NoError(t, err)
	check.True(t, app.DisplayBannerCalled, "banner displayed")
	check.True(t, app.BIF != nil && app.BIF.ProcessCalled, "BIF processed")
}

func testAppRunWithoutBifFile(t *harness.T) {
	app := bootgen.NewApp()
	err := app.Run([]string{"bootgen"})

	check.NoError(t, err)
	check.True(t, app.DisplayBannerCalled, "banner displayed")
	check.True(t, app.BIF == nil, "no BIF file constructed")
}

func testAppRunWithHelpArgument(t *harness.T) {
	app := bootgen.NewApp()
	err := app.Run([]string{"bootgen", "-help"})

	check.NoError(t, err)
	check.True(t, app.DisplayBannerCalled, "banner displayed")
	// Help short-circuits before any processing step.
	check.False(t, app.Options.ProcessVerifyKDFCalled, "verify KDF called in help mode")
	check.False(t, app.Options.ProcessReadImageCalled, "read image called in help mode")
}

func testAppRunWithMultipleArguments(t *harness.T) {
	app := bootgen.NewApp()
	err := app.Run([]string{"bootgen", "-arch", "zynq", "-image", "test.bif", "-o", "output.bin", "-verbose"})

	check.NoError(t, err)
	check.True(t, app.DisplayBannerCalled, "banner displayed")
	check.StrEqual(t, "zynq", app.Options.Architecture())
	check.True(t, app.Options.VerboseMode(), "verbose mode set")
}

func testAppCallingSequence(t *harness.T) {
	app := bootgen.NewApp()
	err := app.Run([]string{"bootgen", "-image", "sequence.bif"})

	check.NoError(t, err)
	check.True(t, app.Options.ParseArgsCalled, "parse args called")
	check.True(t, app.Options.ProcessVerifyKDFCalled, "verify KDF called")
	check.True(t, app.Options.ProcessReadImageCalled, "read image called")
	check.True(t, app.BIF != nil && app.BIF.ProcessCalled, "BIF processed last")
}

func testAppExitCodes(t *harness.T) {
	app := bootgen.NewApp()
	check.Equal(t, 0, bootgen.ExitCode(app.Run([]string{"bootgen", "-help"})))

	failing := bootgen.NewApp()
	check.Equal(t, 1, bootgen.ExitCode(failing.Run([]string{"bootgen", "-image", "throw.bif"})))
}
