package domain

// SuiteInfo describes a registered suite for listing output.
type SuiteInfo struct {
	Name  string
	Tests []string
}
