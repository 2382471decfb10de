package output

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// ProgressFormatter renders a progress bar over the candidate files and
// prints the human-readable summary on completion. Per-file warnings
// and errors are printed above the bar so they stay visible.
type ProgressFormatter struct {
	writer io.Writer
	bar    *pb.ProgressBar
	human  *HumanFormatter
}

// NewProgressFormatter creates a new progress bar formatter
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{
		human: NewHumanFormatter(),
	}
}

// Start initializes the progress bar
func (f *ProgressFormatter) Start(writer io.Writer, targetPath string, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer

	fmt.Fprintf(writer, "Organizing files in: %s (%d files)\n", targetPath, totalFiles)

	if totalFiles > 0 {
		f.bar = pb.New(totalFiles)
		f.bar.SetWriter(writer)
		f.bar.Start()
	}

	return nil
}

// Progress advances the bar for file events
func (f *ProgressFormatter) Progress(update ProgressUpdate) error {
	switch update.Type {
	case EventFileMoved:
		if f.bar != nil {
			f.bar.Increment()
		}

	case EventFileSkipped:
		fmt.Fprintf(f.writer, "Warning: %s already exists in %s\n", update.Name, update.Category)
		if f.bar != nil {
			f.bar.Increment()
		}

	case EventFileError:
		fmt.Fprintf(f.writer, "Error processing %s: %v\n", update.Name, update.Error)
		if f.bar != nil {
			f.bar.Increment()
		}

	case EventDirError:
		fmt.Fprintf(f.writer, "Error creating %s directory: %v\n", update.Name, update.Error)
	}

	return nil
}

// Complete stops the bar and prints the summary
func (f *ProgressFormatter) Complete(report *models.RunReport) error {
	if f.bar != nil {
		f.bar.Finish()
	}

	// Reuse the human summary below the finished bar
	f.human.writer = f.writer
	return f.human.Complete(report)
}

// Error reports an error
func (f *ProgressFormatter) Error(err error) error {
	if f.writer != nil {
		fmt.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
