package bootgen

// App drives the mock Bootgen calling sequence the way the real tool's
// main entry does: banner, argument parsing, KDF verification, image read,
// then conditional BIF processing.
type App struct {
	Options *Options
	BIF     *BIFFile

	DisplayBannerCalled bool
}

// NewApp creates an App with fresh Options.
func NewApp() *App {
	return &App{Options: NewOptions()}
}

// DisplayBanner marks the banner step.
func (a *App) DisplayBanner() {
	a.DisplayBannerCalled = true
}

// Run executes the full sequence. Help short-circuits before processing.
// BIF processing only happens when an -image filename was parsed.
func (a *App) Run(args []string) error {
	a.DisplayBanner()

	a.Options.ParseArgs(args)

	if a.Options.HelpRequested() {
		return nil
	}

	a.Options.ProcessVerifyKDF()
	a.Options.ProcessReadImage()

	if name := a.Options.BifFilename(); name != "" {
		a.BIF = NewBIFFile(name)
		if err := a.BIF.Process(a.Options); err != nil {
			return err
		}
	}
	return nil
}

// ExitCode classifies a Run outcome the way the tool's main function maps
// outcomes to process exit codes: 0 for success, 1 for any error.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
