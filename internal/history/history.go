// Package history records harness runs into MySQL so pass/fail trends
// survive across invocations. It is optional: nothing here runs unless
// recording is requested.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"bth/internal/config"
	"bth/internal/domain"
)

// Store manages the run-history database
type Store struct {
	config *config.Config
}

// NewStore creates a new Store
func NewStore(cfg *config.Config) *Store {
	return &Store{config: cfg}
}

// RunRecord is one recorded harness run.
type RunRecord struct {
	ID          int64
	TotalSuites int
	TotalTests  int
	Passed      int
	Failed      int
	Duration    float64
	Workers     int
	CreatedAt   time.Time
}

// connect opens a connection to the MySQL server using environment
// credentials (the .env file is loaded by config at startup).
func (s *Store) connect(database string) (*sql.DB, error) {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPassword, dbHost, dbPort, database)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the history database and table if they don't exist.
func (s *Store) EnsureSchema() error {
	dbName := s.config.GetHistoryDatabase()
	if !isValidIdentifier(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}
	table := s.config.HistoryTable
	if !isValidIdentifier(table) {
		return fmt.Errorf("invalid history table name: %s", table)
	}

	db, err := s.connect("")
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", dbName, err)
	}

	createTable := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS `+"`%s`.`%s`"+` (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		total_suites INT NOT NULL,
		total_tests INT NOT NULL,
		passed_tests INT NOT NULL,
		failed_tests INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		workers INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`, dbName, table)
	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}

// RecordRun inserts one run's metadata.
func (s *Store) RecordRun(meta domain.RunMeta) error {
	if err := s.EnsureSchema(); err != nil {
		return err
	}

	dbName := s.config.GetHistoryDatabase()
	db, err := s.connect(dbName)
	if err != nil {
		return err
	}
	defer db.Close()

	query := fmt.Sprintf("INSERT INTO `%s` (total_suites, total_tests, passed_tests, failed_tests, duration_seconds, workers) VALUES (?, ?, ?, ?, ?, ?)",
		s.config.HistoryTable)
	_, err = db.Exec(query,
		meta.TotalSuites, meta.TotalTests, meta.PassedTests, meta.FailedTests,
		meta.DurationSeconds, meta.Workers)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent recorded runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	dbName := s.config.GetHistoryDatabase()
	db, err := s.connect(dbName)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT id, total_suites, total_tests, passed_tests, failed_tests, duration_seconds, workers, created_at FROM `%s` ORDER BY id DESC LIMIT ?",
		s.config.HistoryTable)
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.TotalSuites, &r.TotalTests, &r.Passed, &r.Failed, &r.Duration, &r.Workers, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// isValidIdentifier validates a database or table name (basic check)
func isValidIdentifier(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
