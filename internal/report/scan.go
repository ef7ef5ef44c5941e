package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner locates saved report files under the report directory
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan finds report artifacts (.txt reports and .json results) under root,
// sorted by path. Hidden directories are skipped.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("report path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("report path is not a directory: %s", root)
	}

	var reports []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			return nil
		}

		switch filepath.Ext(d.Name()) {
		case ".txt", ".json":
			reports = append(reports, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(reports)
	return reports, nil
}
