package bootgen

import (
	"errors"
	"strings"
	"testing"
)

func TestRealisticOptions_ParseArgs(t *testing.T) {
	longName := strings.Repeat("a", MaxOutputNameLen+5)

	t.Run("long image name accepted", func(t *testing.T) {
		opts := NewRealisticOptions()
		if err := opts.ParseArgs([]string{"bootgen", "-image", longName}); err != nil {
			t.Fatalf("ParseArgs() = %v", err)
		}
		name, ok := opts.BifFilename()
		if !ok || name != longName {
			t.Errorf("BifFilename() = %q, %v", name, ok)
		}
	})

	t.Run("long output name rejected", func(t *testing.T) {
		opts := NewRealisticOptions()
		err := opts.ParseArgs([]string{"bootgen", "-o", longName})
		if !errors.Is(err, ErrOutputNameTooLong) {
			t.Errorf("ParseArgs() = %v, want ErrOutputNameTooLong", err)
		}
	})

	t.Run("output name at limit accepted", func(t *testing.T) {
		opts := NewRealisticOptions()
		atLimit := strings.Repeat("b", MaxOutputNameLen)
		if err := opts.ParseArgs([]string{"bootgen", "-o", atLimit}); err != nil {
			t.Fatalf("ParseArgs() = %v", err)
		}
		if opts.OutputFilename() != atLimit {
			t.Error("output filename not recorded")
		}
	})
}

func TestRealisticOptions_ProcessVerifyKDF(t *testing.T) {
	opts := NewRealisticOptions()
	if err := opts.ProcessVerifyKDF(); !errors.Is(err, ErrNoBIFFile) {
		t.Errorf("ProcessVerifyKDF() = %v, want ErrNoBIFFile", err)
	}

	if err := opts.ParseArgs([]string{"bootgen", "-image", "test.bif"}); err != nil {
		t.Fatalf("ParseArgs() = %v", err)
	}
	if err := opts.ProcessVerifyKDF(); err != nil {
		t.Errorf("ProcessVerifyKDF() = %v after image given", err)
	}
}

func TestRealisticBIFFile_Process(t *testing.T) {
	t.Run("missing filename", func(t *testing.T) {
		opts := NewRealisticOptions()
		bif := NewRealisticBIFFile("orphan.bif")
		if err := bif.Process(opts); err == nil {
			t.Error("Process() = nil, want error for missing BIF filename")
		}
	})

	t.Run("name over processing limit", func(t *testing.T) {
		longName := strings.Repeat("c", MaxProcessNameLen+1)
		opts := NewRealisticOptions()
		if err := opts.ParseArgs([]string{"bootgen", "-image", longName}); err != nil {
			t.Fatalf("ParseArgs() = %v", err)
		}
		bif := NewRealisticBIFFile(longName)
		err := bif.Process(opts)
		if err == nil || !strings.Contains(err.Error(), "filename too long for processing") {
			t.Errorf("Process() = %v", err)
		}
	})

	t.Run("crash pattern", func(t *testing.T) {
		opts := NewRealisticOptions()
		if err := opts.ParseArgs([]string{"bootgen", "-image", "crash_case.bif"}); err != nil {
			t.Fatalf("ParseArgs() = %v", err)
		}
		bif := NewRealisticBIFFile("crash_case.bif")
		err := bif.Process(opts)
		if err == nil || !strings.Contains(err.Error(), "simulated crash") {
			t.Errorf("Process() = %v", err)
		}
		if !bif.ProcessCalled {
			t.Error("ProcessCalled not set")
		}
	})
}

func TestRealisticApp_Lifecycle(t *testing.T) {
	app := NewRealisticApp()
	if err := app.Run([]string{"bootgen", "-image", "test.bif"}); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !strings.Contains(app.Banner, Version) {
		t.Errorf("banner %q missing version stamp", app.Banner)
	}

	app.Close()
	app.Close() // closing twice is safe

	if err := app.Run([]string{"bootgen"}); !errors.Is(err, ErrAppClosed) {
		t.Errorf("Run() after Close = %v, want ErrAppClosed", err)
	}
}

func TestRealisticApp_ErrorPropagation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "parse error",
			args: []string{"bootgen", "-o", strings.Repeat("x", MaxOutputNameLen+1)},
			want: "parse args",
		},
		{
			name: "missing bif",
			args: []string{"bootgen"},
			want: "verify KDF",
		},
		{
			name: "crash during processing",
			args: []string{"bootgen", "-image", "crash.bif"},
			want: "process BIF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewRealisticApp()
			err := app.Run(tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Run() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}
