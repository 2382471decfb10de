package output

import (
	"io"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// Progress event types
const (
	EventDirCreated  = "dir_created"
	EventDirError    = "dir_error"
	EventFileMoved   = "file_moved"
	EventFileSkipped = "file_skipped"
	EventFileError   = "file_error"
)

// ProgressUpdate represents a progress notification during a run
type ProgressUpdate struct {
	Type        string // one of the Event* constants
	Name        string // filename or category directory name
	Category    string // destination category for file events
	CurrentFile int
	Error       error
}

// Formatter defines the interface for output formatting
// Implementations include human-readable, JSON, and progress-bar formatters
type Formatter interface {
	// Start initializes the formatter for a new run
	Start(writer io.Writer, targetPath string, totalFiles int) error

	// Progress reports a per-file or per-directory event
	Progress(update ProgressUpdate) error

	// Complete finalizes output and displays the summary
	Complete(report *models.RunReport) error

	// Error reports an error during the run
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
