package config

const (
	// DefaultReportDir is the default directory for run artifacts
	DefaultReportDir = "storage"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultReportTextFile is the default text report file name
	DefaultReportTextFile = "test_report.txt"
	// DefaultWorkers is the default number of suite workers
	DefaultWorkers = 4
	// DefaultConfigFile is the optional YAML config file name
	DefaultConfigFile = "bth.yaml"
	// DefaultHistoryTable is the MySQL table run history is recorded to
	DefaultHistoryTable = "harness_runs"
)
