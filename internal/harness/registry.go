// Package harness is the test-registration and execution core: named
// tests grouped into named suites, run sequentially per suite with
// per-check bookkeeping and panic recovery, optionally across a pool of
// workers at the suite level.
package harness

import "fmt"

// Test is a single registered test function.
type Test struct {
	Name string
	Func func(*T)
}

// Suite is an ordered group of tests executed sequentially.
type Suite struct {
	Name  string
	Tests []Test
}

// TestNames returns the registered test names in order.
func (s Suite) TestNames() []string {
	names := make([]string, 0, len(s.Tests))
	for _, t := range s.Tests {
		names = append(names, t.Name)
	}
	return names
}

// Registry holds the registered suites in registration order.
type Registry struct {
	suites []Suite
	byName map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Add registers a suite. Duplicate suite names and unnamed tests are
// rejected so every reported result is addressable.
func (r *Registry) Add(s Suite) error {
	if s.Name == "" {
		return fmt.Errorf("suite has no name")
	}
	if _, ok := r.byName[s.Name]; ok {
		return fmt.Errorf("duplicate suite name: %s", s.Name)
	}
	seen := make(map[string]bool, len(s.Tests))
	for _, t := range s.Tests {
		if t.Name == "" {
			return fmt.Errorf("suite %s has an unnamed test", s.Name)
		}
		if t.Func == nil {
			return fmt.Errorf("test %s/%s has no function", s.Name, t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate test name in suite %s: %s", s.Name, t.Name)
		}
		seen[t.Name] = true
	}
	r.byName[s.Name] = len(r.suites)
	r.suites = append(r.suites, s)
	return nil
}

// Suites returns the registered suites in registration order.
func (r *Registry) Suites() []Suite {
	return r.suites
}

// Lookup returns the suite with the given name.
func (r *Registry) Lookup(name string) (Suite, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Suite{}, false
	}
	return r.suites[i], true
}

// TestCount returns the total number of registered tests.
func (r *Registry) TestCount() int {
	var n int
	for _, s := range r.suites {
		n += len(s.Tests)
	}
	return n
}
