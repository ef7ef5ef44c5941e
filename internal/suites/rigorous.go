package suites

import (
	"errors"
	"strings"

	"bth/internal/bootgen"
	"bth/internal/check"
	"bth/internal/harness"
)

// RigorousBugDetection exercises the realistic variants, which keep the
// tool's fixed-buffer limits and late-failure behavior so the harness can
// probe the paths the forgiving mocks hide.
func RigorousBugDetection() harness.Suite {
	return harness.Suite{
		Name: "RigorousBugDetection",
		Tests: []harness.Test{
			{Name: "OutputBufferLimit", Func: testOutputBufferLimit},
			{Name: "MissingBIFFile", Func: testMissingBIFFile},
			{Name: "LongImageNameAccepted", Func: testLongImageNameAccepted},
			{Name: "ProcessNameLimit", Func: testProcessNameLimit},
			{Name: "CrashPattern", Func: testCrashPattern},
			{Name: "RealisticSequence", Func: testRealisticSequence},
			{Name: "RepeatedLifecycle", Func: testRepeatedLifecycle},
			{Name: "BannerVersion", Func: testBannerVersion},
		},
	}
}

func testOutputBufferLimit(t *harness.T) {
	longName := strings.Repeat("a", bootgen.MaxOutputNameLen+5) + ".bif"

	// A long -image value is fine: the BIF name has no fixed buffer.
	app := bootgen.NewRealisticApp()
	check.NoError(t, app.Run([]string{"bootgen", "-image", longName}))

	// A long -o value exceeds the output buffer and is rejected at parse time.
	app2 := bootgen.NewRealisticApp()
	err := app2.Run([]string{"bootgen", "-image", "test.bif", "-o", longName})
	check.Error(t, err)
	check.True(t, errors.Is(err, bootgen.ErrOutputNameTooLong), "output-name sentinel wrapped")
}

func testMissingBIFFile(t *harness.T) {
	opts := bootgen.NewRealisticOptions()

	name, ok := opts.BifFilename()
	check.False(t, ok, "BIF filename present before parsing")
	check.StrEqual(t, "", name)

	err := opts.ProcessVerifyKDF()
	check.True(t, errors.Is(err, bootgen.ErrNoBIFFile), "missing-BIF sentinel returned")
}

func testLongImageNameAccepted(t *harness.T) {
	longName := strings.Repeat("b", 2000) + ".bif"
	opts := bootgen.NewRealisticOptions()

	check.NoError(t, opts.ParseArgs([]string{"bootgen", "-image", longName}))
	name, ok := opts.BifFilename()
	check.True(t, ok, "BIF filename recorded")
	check.Equal(t, len(longName), len(name))
}

func testProcessNameLimit(t *harness.T) {
	longName := strings.Repeat("c", bootgen.MaxProcessNameLen+1)
	opts := bootgen.NewRealisticOptions()
	check.NoError(t, opts.ParseArgs([]string{"bootgen", "-image", longName}))

	bif := bootgen.NewRealisticBIFFile(longName)
	check.ErrorContains(t, bif.Process(opts), "filename too long for processing")
}

func testCrashPattern(t *harness.T) {
	opts := bootgen.NewRealisticOptions()
	check.NoError(t, opts.ParseArgs([]string{"bootgen", "-image", "crash_case.bif"}))

	bif := bootgen.NewRealisticBIFFile("crash_case.bif")
	check.ErrorContains(t, bif.Process(opts), "simulated crash in file processing")
	check.True(t, bif.ProcessCalled, "process attempted before failing")
}

func testRealisticSequence(t *harness.T) {
	app := bootgen.NewRealisticApp()
	err := app.Run([]string{"bootgen", "-image", "test.bif", "-o", "out.bin", "-arch", "zynqmp"})

	check.NoError(t, err)
	check.True(t, app.Options.ParseArgsCalled, "parse args called")
	check.True(t, app.Options.ProcessVerifyKDFCalled, "verify KDF called")
	check.True(t, app.Options.ProcessReadImageCalled, "read image called")
	check.StrEqual(t, "zynqmp", app.Options.Architecture())
}

func testRepeatedLifecycle(t *harness.T) {
	for i := 0; i < 10; i++ {
		app := bootgen.NewRealisticApp()
		_ = app.Run([]string{"bootgen", "-image", "test.bif"})
		app.Close()
		// Closing twice must be safe.
		app.Close()
	}

	// Running a closed app fails instead of reusing freed state.
	app := bootgen.NewRealisticApp()
	app.Close()
	check.True(t, errors.Is(app.Run([]string{"bootgen"}), bootgen.ErrAppClosed),
		"closed app refuses to run")
}

func testBannerVersion(t *harness.T) {
	app := bootgen.NewRealisticApp()
	check.NoError(t, app.Run([]string{"bootgen", "-image", "test.bif"}))
	check.True(t, strings.Contains(app.Banner, bootgen.Version), "banner carries version stamp")
}
