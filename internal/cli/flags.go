package cli

import "bth/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers       int
	Suite         string
	NameFilter    string
	ShowTests     bool
	FailFast      bool
	VerboseChecks bool
	Record        bool
	OpenFailures  bool
	All           bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:       f.Workers,
		Suite:         f.Suite,
		NameFilter:    f.NameFilter,
		ShowTests:     f.ShowTests,
		FailFast:      f.FailFast,
		VerboseChecks: f.VerboseChecks,
		Record:        f.Record,
		OpenFailures:  f.OpenFailures,
		All:           f.All,
	}
}
