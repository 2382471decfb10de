package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting.
// Events are collected during the run and emitted as a single document
// on Complete.
type JSONFormatter struct {
	writer     io.Writer
	targetPath string
	totalFiles int
	startTime  time.Time
	events     []JSONEvent
}

// JSONEvent represents a single event in the JSON output stream
type JSONEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Data      any       `json:"data,omitempty"`
}

// JSONStartData represents the data for a start event
type JSONStartData struct {
	TargetPath string `json:"target_path"`
	TotalFiles int    `json:"total_files"`
}

// JSONFileData represents file-related event data
type JSONFileData struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JSONReportData represents the final report data
type JSONReportData struct {
	Status     string          `json:"status"`
	Success    bool            `json:"success"`
	DryRun     bool            `json:"dry_run,omitempty"`
	Duration   string          `json:"duration"`
	DurationMs int64           `json:"duration_ms"`
	Stats      JSONStatsData   `json:"stats"`
	Errors     []JSONErrorData `json:"errors,omitempty"`
}

// JSONStatsData represents statistics in JSON format
type JSONStatsData struct {
	FilesScanned int `json:"files_scanned"`
	FilesMoved   int `json:"files_moved"`
	FilesSkipped int `json:"files_skipped"`
	FilesErrored int `json:"files_errored"`
	DirsCreated  int `json:"dirs_created"`
	DirsErrored  int `json:"dirs_errored"`
}

// JSONErrorData represents an error entry
type JSONErrorData struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		events: make([]JSONEvent, 0),
	}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, targetPath string, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.targetPath = targetPath
	f.totalFiles = totalFiles
	f.startTime = time.Now()

	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      "start",
		Data: JSONStartData{
			TargetPath: targetPath,
			TotalFiles: totalFiles,
		},
	})

	return nil
}

// Progress records a per-file or per-directory event
func (f *JSONFormatter) Progress(update ProgressUpdate) error {
	data := JSONFileData{
		Name:     update.Name,
		Category: update.Category,
	}
	if update.Error != nil {
		data.Error = update.Error.Error()
	}

	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      update.Type,
		Data:      data,
	})

	return nil
}

// Complete emits the collected events and the final report as one document
func (f *JSONFormatter) Complete(report *models.RunReport) error {
	if f.writer == nil {
		f.writer = os.Stdout
	}

	success, _ := report.Result()

	reportData := JSONReportData{
		Status:     string(report.Status),
		Success:    success,
		DryRun:     report.DryRun,
		Duration:   report.Duration.Round(time.Millisecond).String(),
		DurationMs: report.Duration.Milliseconds(),
		Stats: JSONStatsData{
			FilesScanned: report.Stats.FilesScanned,
			FilesMoved:   report.Stats.FilesMoved,
			FilesSkipped: report.Stats.FilesSkipped,
			FilesErrored: report.Stats.FilesErrored,
			DirsCreated:  report.Stats.DirsCreated,
			DirsErrored:  report.Stats.DirsErrored,
		},
	}

	for _, err := range report.Errors {
		reportData.Errors = append(reportData.Errors, JSONErrorData{
			Name:  err.Name,
			Error: err.Message,
		})
	}

	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      "complete",
		Data:      reportData,
	})

	doc := struct {
		OperationID string      `json:"operation_id"`
		TargetPath  string      `json:"target_path"`
		Events      []JSONEvent `json:"events"`
	}{
		OperationID: report.OperationID,
		TargetPath:  report.TargetPath,
		Events:      f.events,
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Error records an error event
func (f *JSONFormatter) Error(err error) error {
	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      "error",
		Data:      JSONErrorData{Error: err.Error()},
	})
	return nil
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
