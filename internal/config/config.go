package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration for the harness
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	ReportDir      string
	OutputJSONFile string
	ReportTextFile string

	// Execution settings
	Workers int

	// History settings
	HistoryTable string

	// Command flags
	Flags Flags
}

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

// FileConfig is the optional bth.yaml override file
type FileConfig struct {
	ReportDir     string `yaml:"report_dir"`
	Workers       int    `yaml:"workers"`
	VerboseChecks bool   `yaml:"verbose_checks"`
	HistoryTable  string `yaml:"history_table"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    ".",
		ReportDir:      DefaultReportDir,
		OutputJSONFile: DefaultOutputJSONFile,
		ReportTextFile: DefaultReportTextFile,
		Workers:        DefaultWorkers,
		HistoryTable:   DefaultHistoryTable,
		Flags:          Flags{Workers: DefaultWorkers},
	}
}

// Load creates a config from defaults, .env, the optional YAML file, and flags,
// in that order of precedence (later wins).
func Load(flags Flags) (*Config, error) {
	cfg := New()

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))
	cfg.applyEnv()

	if err := cfg.applyFile(filepath.Join(cfg.ProjectPath, DefaultConfigFile)); err != nil {
		return nil, err
	}

	// applyFile may have turned verbose_checks on; merge rather than
	// letting the pre-parse zero flags wipe it.
	fileVerbose := cfg.Flags.VerboseChecks
	cfg.Flags = flags
	cfg.Flags.VerboseChecks = cfg.Flags.VerboseChecks || fileVerbose
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}
	return cfg, nil
}

// applyEnv applies BTH_* environment overrides.
func (c *Config) applyEnv() {
	if dir := os.Getenv("BTH_REPORT_DIR"); dir != "" {
		c.ReportDir = dir
	}
	if w := os.Getenv("BTH_WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil && n > 0 {
			c.Workers = n
		}
	}
	if table := os.Getenv("BTH_HISTORY_TABLE"); table != "" {
		c.HistoryTable = table
	}
}

// applyFile applies the optional YAML config file. A missing file is fine.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.ReportDir != "" {
		c.ReportDir = fc.ReportDir
	}
	if fc.Workers > 0 {
		c.Workers = fc.Workers
	}
	if fc.VerboseChecks {
		c.Flags.VerboseChecks = true
	}
	if fc.HistoryTable != "" {
		c.HistoryTable = fc.HistoryTable
	}
	return nil
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.ReportDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetReportPath returns the full path to the text report file.
func (c *Config) GetReportPath() string {
	p := filepath.Join(c.ProjectPath, c.ReportDir, c.ReportTextFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetReportDir returns the directory run artifacts are written to.
func (c *Config) GetReportDir() string {
	return filepath.Join(c.ProjectPath, c.ReportDir)
}

// GetHistoryDatabase returns the database name run history is recorded to.
func (c *Config) GetHistoryDatabase() string {
	name := os.Getenv("DB_DATABASE")
	if name == "" {
		name = "bth_history"
	}
	return name
}
