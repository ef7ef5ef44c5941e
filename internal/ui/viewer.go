package ui

import "bth/internal/domain"

// Viewer displays run results in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}
