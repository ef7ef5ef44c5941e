package suites

import (
	"errors"
	"fmt"

	"bth/internal/bootgen"
	"bth/internal/check"
	"bth/internal/harness"
)

// ErrorHandling exercises error propagation through the App sequence and
// the exit-code classification of run outcomes.
func ErrorHandling() harness.Suite {
	return harness.Suite{
		Name: "ErrorHandling",
		Tests: []harness.Test{
			{Name: "Run_HelpSucceeds", Func: testRunHelpSucceeds},
			{Name: "Run_ThrowPatternFails", Func: testRunThrowPatternFails},
			{Name: "Run_InvalidPatternFails", Func: testRunInvalidPatternFails},
			{Name: "ErrorMessagePreserved", Func: testErrorMessagePreserved},
			{Name: "ValidationSentinelsWrapped", Func: testValidationSentinelsWrapped},
			{Name: "ExitCodeClassification", Func: testExitCodeClassification},
			{Name: "ErrorsAreValues", Func: testErrorsAreValues},
		},
	}
}

func testRunHelpSucceeds(t *harness.T) {
	app := bootgen.NewApp()
	check.NoError(t, app.Run([]string{"bootgen", "-help"}))
}

func testRunThrowPatternFails(t *harness.T) {
	app := bootgen.NewApp()
	err := app.Run([]string{"bootgen", "-image", "throw.bif"})

	check.Error(t, err)
	check.True(t, app.Options.ProcessVerifyKDFCalled, "verify KDF ran before failure")
	check.True(t, app.BIF != nil && app.BIF.ProcessCalled, "BIF process attempted")
}

func testRunInvalidPatternFails(t *harness.T) {
	app := bootgen.NewApp()
	err := app.Run([]string{"bootgen", "-image", "invalid_input.bif"})

	check.Error(t, err)
	check.ErrorContains(t, err, "invalid filename pattern")
}

func testErrorMessagePreserved(t *harness.T) {
	bif := bootgen.NewBIFFile("throw.bif")
	err := bif.Process(bootgen.NewOptions())

	check.Error(t, err)
	check.StrEqual(t, "simulated processing error", err.Error())
}

func testValidationSentinelsWrapped(t *harness.T) {
	empty := bootgen.NewBIFFile("")
	check.True(t, errors.Is(empty.Process(bootgen.NewOptions()), bootgen.ErrEmptyFilename),
		"empty-filename sentinel survives wrapping")

	bad := bootgen.NewBIFFile("invalid.bif")
	check.True(t, errors.Is(bad.Process(bootgen.NewOptions()), bootgen.ErrInvalidPattern),
		"invalid-pattern sentinel survives wrapping")
}

func testExitCodeClassification(t *harness.T) {
	check.Equal(t, 0, bootgen.ExitCode(nil))
	check.Equal(t, 1, bootgen.ExitCode(errors.New("boom")))
	check.Equal(t, 1, bootgen.ExitCode(fmt.Errorf("wrapped: %w", bootgen.ErrNoBIFFile)))
}

func testErrorsAreValues(t *harness.T) {
	// The same failing input yields the same error on every run.
	var messages []string
	for i := 0; i < 3; i++ {
		bif := bootgen.NewBIFFile("throw.bif")
		err := bif.Process(bootgen.NewOptions())
		if err == nil {
			check.Failf(t, "run %d: expected error", i)
			return
		}
		messages = append(messages, err.Error())
	}
	check.StrEqual(t, messages[0], messages[1])
	check.StrEqual(t, messages[1], messages[2])
}
