package output

import (
	"fmt"
	"io"
	"time"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer     io.Writer
	totalFiles int
	startTime  time.Time
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, targetPath string, totalFiles int) error {
	f.writer = writer
	f.totalFiles = totalFiles
	f.startTime = time.Now()

	if writer != nil {
		fmt.Fprintf(writer, "Organizing files in: %s (%d files)\n", targetPath, totalFiles)
	}

	return nil
}

// Progress reports progress during the run
func (f *HumanFormatter) Progress(update ProgressUpdate) error {
	if f.writer == nil {
		return nil
	}

	switch update.Type {
	case EventDirCreated:
		fmt.Fprintf(f.writer, "Created %s directory\n", update.Name)

	case EventDirError:
		fmt.Fprintf(f.writer, "Error creating %s directory: %v\n", update.Name, update.Error)

	case EventFileMoved:
		fmt.Fprintf(f.writer, "[%d/%d] Moved %s to %s\n",
			update.CurrentFile, f.totalFiles, update.Name, update.Category)

	case EventFileSkipped:
		fmt.Fprintf(f.writer, "[%d/%d] Warning: %s already exists in %s\n",
			update.CurrentFile, f.totalFiles, update.Name, update.Category)

	case EventFileError:
		fmt.Fprintf(f.writer, "[%d/%d] Error processing %s: %v\n",
			update.CurrentFile, f.totalFiles, update.Name, update.Error)
	}

	return nil
}

// Complete finalizes output and displays summary
func (f *HumanFormatter) Complete(report *models.RunReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Run completed in %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Summary:\n")
	fmt.Fprintf(f.writer, "  Files scanned:  %d\n", report.Stats.FilesScanned)
	fmt.Fprintf(f.writer, "  Files moved:    %d\n", report.Stats.FilesMoved)
	fmt.Fprintf(f.writer, "  Files skipped:  %d\n", report.Stats.FilesSkipped)
	fmt.Fprintf(f.writer, "  Files errored:  %d\n", report.Stats.FilesErrored)
	fmt.Fprintf(f.writer, "  Dirs created:   %d\n", report.Stats.DirsCreated)
	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Status: %s\n", report.Status)

	if len(report.Errors) > 0 {
		fmt.Fprintf(f.writer, "\nErrors:\n")
		for _, err := range report.Errors {
			fmt.Fprintf(f.writer, "  %s: %s\n", err.Name, err.Message)
		}
	}

	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	if f.writer != nil {
		fmt.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
