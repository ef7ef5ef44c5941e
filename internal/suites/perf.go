package suites

import (
	"fmt"
	"strings"
	"time"

	"bth/internal/bootgen"
	"bth/internal/check"
	"bth/internal/harness"
)

// PerformanceMemory exercises the mocks under repetition and load. Bounds
// are deliberately generous upper limits so the suite never flakes.
func PerformanceMemory() harness.Suite {
	return harness.Suite{
		Name: "PerformanceMemory",
		Tests: []harness.Test{
			{Name: "Performance_QuickExecution", Func: testPerfQuickExecution},
			{Name: "Performance_MultipleRuns", Func: testPerfMultipleRuns},
			{Name: "Performance_ArgumentParsing", Func: testPerfArgumentParsing},
			{Name: "Performance_BIFFileCreation", Func: testPerfBIFFileCreation},
			{Name: "Memory_RepeatedAppLifecycle", Func: testMemRepeatedAppLifecycle},
			{Name: "Memory_LargeArgumentLists", Func: testMemLargeArgumentLists},
			{Name: "Memory_StringOperations", Func: testMemStringOperations},
			{Name: "Stress_RapidFileProcessing", Func: testStressRapidFileProcessing},
		},
	}
}

func testPerfQuickExecution(t *harness.T) {
	start := time.Now()

	app := bootgen.NewApp()
	_ = app.Run([]string{"bootgen", "-help"})

	elapsed := time.Since(start)
	check.Less(t, elapsed, 5*time.Second, "single run duration")
}

func testPerfMultipleRuns(t *harness.T) {
	start := time.Now()

	for i := 0; i < 100; i++ {
		app := bootgen.NewApp()
		_ = app.Run([]string{"bootgen"})
	}

	elapsed := time.Since(start)
	check.Less(t, elapsed, 10*time.Second, "100 runs duration")
}

func testPerfArgumentParsing(t *harness.T) {
	args := []string{"bootgen", "-arch", "versal", "-image", "large.bif", "-o", "output.bin", "-verbose"}
	opts := bootgen.NewOptions()

	start := time.Now()
	for i := 0; i < 1000; i++ {
		opts.Reset()
		opts.ParseArgs(args)
	}
	elapsed := time.Since(start)

	check.Less(t, elapsed, time.Second, "1000 parses duration")
	check.StrEqual(t, "large.bif", opts.BifFilename())
}

func testPerfBIFFileCreation(t *harness.T) {
	start := time.Now()
	for i := 0; i < 1000; i++ {
		bootgen.NewBIFFile(fmt.Sprintf("test_file_%d.bif", i))
	}
	elapsed := time.Since(start)

	check.Less(t, elapsed, time.Second, "1000 BIF constructions duration")
}

func testMemRepeatedAppLifecycle(t *harness.T) {
	for i := 0; i < 100; i++ {
		app := bootgen.NewApp()
		_ = app.Run([]string{"bootgen", "-image", "test.bif"})
	}
	check.Succeed(t, "100 app lifecycles completed")
}

func testMemLargeArgumentLists(t *harness.T) {
	args := []string{"bootgen"}
	for i := 0; i < 100; i++ {
		args = append(args, "-verbose")
	}
	args = append(args, "-image", "test.bif")

	opts := bootgen.NewOptions()
	opts.ParseArgs(args)

	check.True(t, opts.ParseArgsCalled, "parse args called")
	check.Equal(t, len(args), len(opts.Arguments()))
	check.StrEqual(t, "test.bif", opts.BifFilename())
}

func testMemStringOperations(t *harness.T) {
	opts := bootgen.NewOptions()

	for i := 0; i < 1000; i++ {
		longFilename := strings.Repeat("a", 1000) + fmt.Sprintf("%d.bif", i)
		opts.Reset()
		opts.ParseArgs([]string{"bootgen", "-image", longFilename})

		if !opts.ParseArgsCalled {
			check.Failf(t, "iteration %d: parse args not called", i)
			return
		}
	}
	check.Succeed(t, "1000 long-filename parses completed")
}

func testStressRapidFileProcessing(t *harness.T) {
	opts := bootgen.NewOptions()

	for i := 0; i < 500; i++ {
		bif := bootgen.NewBIFFile(fmt.Sprintf("stress_test_%d.bif", i))
		if !bif.IsValid() {
			check.Failf(t, "file %d unexpectedly invalid", i)
			return
		}
		if err := bif.Process(opts); err != nil {
			check.Failf(t, "file %d: %v", i, err)
			return
		}
	}
	check.Succeed(t, "500 files processed")
}
