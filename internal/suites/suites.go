// Package suites assembles the registered test corpus exercising the
// mock Bootgen application. Suites are built explicitly so registration
// order, and therefore report order, is deterministic.
package suites

import "bth/internal/harness"

// New builds the registry with every suite in its canonical order.
func New() (*harness.Registry, error) {
	reg := harness.NewRegistry()
	all := []harness.Suite{
		ArgumentParsing(),
		BasicFunctionality(),
		BIFProcessing(),
		ErrorHandling(),
		PerformanceMemory(),
		RigorousBugDetection(),
	}
	for _, s := range all {
		if err := reg.Add(s); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
