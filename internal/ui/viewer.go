package ui

import "junitdiff/internal/domain"

// Viewer displays a diff snapshot in an interactive TUI
type Viewer interface {
	View(output *domain.DiffOutput) error
}
