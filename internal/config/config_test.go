package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.ReportDir != DefaultReportDir {
		t.Errorf("ReportDir = %q", cfg.ReportDir)
	}
	if cfg.Workers != DefaultWorkers {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if cfg.OutputJSONFile != DefaultOutputJSONFile || cfg.ReportTextFile != DefaultReportTextFile {
		t.Errorf("output files = %q, %q", cfg.OutputJSONFile, cfg.ReportTextFile)
	}
	if cfg.HistoryTable != DefaultHistoryTable {
		t.Errorf("HistoryTable = %q", cfg.HistoryTable)
	}
}

func TestPaths(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = t.TempDir()

	out := cfg.GetOutputPath()
	if !filepath.IsAbs(out) {
		t.Errorf("output path not absolute: %q", out)
	}
	if !strings.HasSuffix(out, filepath.Join(DefaultReportDir, DefaultOutputJSONFile)) {
		t.Errorf("output path = %q", out)
	}

	report := cfg.GetReportPath()
	if !strings.HasSuffix(report, filepath.Join(DefaultReportDir, DefaultReportTextFile)) {
		t.Errorf("report path = %q", report)
	}

	if cfg.GetReportDir() != filepath.Join(cfg.ProjectPath, DefaultReportDir) {
		t.Errorf("report dir = %q", cfg.GetReportDir())
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BTH_REPORT_DIR", "artifacts")
	t.Setenv("BTH_WORKERS", "8")
	t.Setenv("BTH_HISTORY_TABLE", "ci_runs")

	cfg := New()
	cfg.applyEnv()

	if cfg.ReportDir != "artifacts" {
		t.Errorf("ReportDir = %q", cfg.ReportDir)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if cfg.HistoryTable != "ci_runs" {
		t.Errorf("HistoryTable = %q", cfg.HistoryTable)
	}
}

func TestApplyEnvIgnoresBadWorkers(t *testing.T) {
	t.Setenv("BTH_WORKERS", "lots")

	cfg := New()
	cfg.applyEnv()
	if cfg.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want default", cfg.Workers)
	}

	t.Setenv("BTH_WORKERS", "-2")
	cfg.applyEnv()
	if cfg.Workers != DefaultWorkers {
		t.Errorf("Workers = %d after negative override", cfg.Workers)
	}
}

func TestApplyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	content := "report_dir: out\nworkers: 2\nverbose_checks: true\nhistory_table: nightly\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := New()
	if err := cfg.applyFile(path); err != nil {
		t.Fatalf("applyFile: %v", err)
	}

	if cfg.ReportDir != "out" || cfg.Workers != 2 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Flags.VerboseChecks {
		t.Error("verbose_checks not applied to flags")
	}
	if cfg.HistoryTable != "nightly" {
		t.Errorf("HistoryTable = %q", cfg.HistoryTable)
	}
}

func TestApplyFileMissing(t *testing.T) {
	cfg := New()
	if err := cfg.applyFile(filepath.Join(t.TempDir(), DefaultConfigFile)); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.ReportDir != DefaultReportDir {
		t.Errorf("defaults changed: %+v", cfg)
	}
}

func TestApplyFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte("workers: [nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := New().applyFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadKeepsFileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "verbose_checks: true\nworkers: 9\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load(Flags{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Flags.VerboseChecks {
		t.Error("verbose_checks from the config file lost during Load")
	}
	if cfg.Workers != 9 {
		t.Errorf("Workers = %d, want file value 9", cfg.Workers)
	}
}

func TestLoadFlagWorkersWin(t *testing.T) {
	t.Setenv("BTH_WORKERS", "8")

	cfg, err := Load(Flags{Workers: 3})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want flag value 3", cfg.Workers)
	}
}

func TestGetHistoryDatabase(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	cfg := New()
	if got := cfg.GetHistoryDatabase(); got != "bth_history" {
		t.Errorf("default database = %q", got)
	}

	t.Setenv("DB_DATABASE", "harness_ci")
	if got := cfg.GetHistoryDatabase(); got != "harness_ci" {
		t.Errorf("database = %q", got)
	}
}
