package ports

import (
	"io"

	"parcellocker/internal/core/domain/services"
)

// ReportRenderer writes the human-readable analytics report.
type ReportRenderer interface {
	// Render writes the report to w.
	Render(w io.Writer, analytics *services.Analytics) error
	// RenderFile replaces the file at path with the report.
	RenderFile(path string, analytics *services.Analytics) error
}
