package suites

import (
	"fmt"
	"strings"

	"bth/internal/bootgen"
	"bth/internal/check"
	"bth/internal/harness"
)

// BIFProcessing exercises BIFFile construction-time validation and Process.
func BIFProcessing() harness.Suite {
	return harness.Suite{
		Name: "BIFProcessing",
		Tests: []harness.Test{
			{Name: "BIFFile_ValidFilename", Func: testBIFValidFilename},
			{Name: "BIFFile_EmptyFilename", Func: testBIFEmptyFilename},
			{Name: "BIFFile_LongFilename", Func: testBIFLongFilename},
			{Name: "BIFFile_InvalidPattern", Func: testBIFInvalidPattern},
			{Name: "BIFFile_ProcessValid", Func: testBIFProcessValid},
			{Name: "BIFFile_ProcessInvalid", Func: testBIFProcessInvalid},
			{Name: "BIFFile_ProcessWithThrowPattern", Func: testBIFProcessWithThrowPattern},
			{Name: "BIFFile_MultipleFiles", Func: testBIFMultipleFiles},
			{Name: "BIFFile_EdgeCases", Func: testBIFEdgeCases},
			{Name: "BIFFile_ProcessingState", Func: testBIFProcessingState},
		},
	}
}

func testBIFValidFilename(t *harness.T) {
	bif := bootgen.NewBIFFile("valid.bif")
	check.True(t, bif.IsValid(), "valid filename accepted")
	check.StrEqual(t, "valid.bif", bif.Filename)
	check.StrEqual(t, "", bif.ErrorMessage())
}

func testBIFEmptyFilename(t *harness.T) {
	bif := bootgen.NewBIFFile("")
	check.False(t, bif.IsValid(), "empty filename accepted")
	check.StrEqual(t, "empty filename provided", bif.ErrorMessage())
}

func testBIFLongFilename(t *harness.T) {
	longName := strings.Repeat("a", bootgen.MaxBIFNameLen+1) + ".bif"
	bif := bootgen.NewBIFFile(longName)
	check.False(t, bif.IsValid(), "overlong filename accepted")
	check.StrEqual(t, "filename too long", bif.ErrorMessage())
}

func testBIFInvalidPattern(t *harness.T) {
	bif := bootgen.NewBIFFile("invalid_pattern.bif")
	check.False(t, bif.IsValid(), "invalid-pattern filename accepted")
	check.StrEqual(t, "invalid filename pattern", bif.ErrorMessage())
}

func testBIFProcessValid(t *harness.T) {
	bif := bootgen.NewBIFFile("test.bif")
	opts := bootgen.NewOptions()

	check.NoError(t, bif.Process(opts))
	check.True(t, bif.ProcessCalled, "process called")
}

func testBIFProcessInvalid(t *harness.T) {
	bif := bootgen.NewBIFFile("")
	opts := bootgen.NewOptions()

	err := bif.Process(opts)
	check.Error(t, err)
	check.ErrorContains(t, err, "cannot process invalid BIF file")
}

func testBIFProcessWithThrowPattern(t *harness.T) {
	bif := bootgen.NewBIFFile("throw_error.bif")
	opts := bootgen.NewOptions()

	check.True(t, bif.IsValid(), "throw-pattern file passes validation")
	check.ErrorContains(t, bif.Process(opts), "simulated processing error")
}

func testBIFMultipleFiles(t *harness.T) {
	opts := bootgen.NewOptions()
	for _, filename := range []string{"file1.bif", "file2.bif", "file3.bif"} {
		bif := bootgen.NewBIFFile(filename)
		check.True(t, bif.IsValid(), filename+" valid")
		check.NoError(t, bif.Process(opts))
		check.True(t, bif.ProcessCalled, filename+" processed")
	}
}

func testBIFEdgeCases(t *harness.T) {
	cases := []struct {
		filename string
		valid    bool
	}{
		{"normal.bif", true},
		{"", false}, // Empty
		{"a", true}, // Single character
		{"file.txt", true},
		{"no_extension", true},
		{"invalid_test.bif", false}, // Contains "invalid"
		{"../parent.bif", true},     // Path traversal (allowed in mock)
		{"file with spaces.bif", true},
		{"file\twith\ttabs.bif", true},
		{"üñíçøðé.bif", true}, // Unicode
	}

	for _, tc := range cases {
		bif := bootgen.NewBIFFile(tc.filename)
		check.Equal(t, tc.valid, bif.IsValid())
	}
}

func testBIFProcessingState(t *harness.T) {
	bif := bootgen.NewBIFFile("state_test.bif")
	opts := bootgen.NewOptions()

	check.False(t, bif.ProcessCalled, "process called before processing")
	check.True(t, bif.IsValid(), "file valid")

	if err := bif.Process(opts); err != nil {
		check.Failf(t, "process: %v", err)
	}
	check.True(t, bif.ProcessCalled, fmt.Sprintf("process called for %s", bif.Filename))
}
