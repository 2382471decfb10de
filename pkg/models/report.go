package models

import (
	"time"
)

// Action represents what was done with a file
type Action string

const (
	// ActionMove moved the file into its category directory
	ActionMove Action = "move"
	// ActionSkip left the file in place (collision or error)
	ActionSkip Action = "skip"
)

// FileOperation records the outcome for a single file
type FileOperation struct {
	// Name is the filename as seen in the target directory
	Name string

	// Category is the destination category name
	Category string

	// Action is what happened to the file
	Action Action

	// Reason explains a skip
	Reason string

	// Error is the failure, if any
	Error error
}

// RunReport represents the results of an organize run
type RunReport struct {
	// Operation details
	OperationID string
	TargetPath  string
	DryRun      bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Statistics
	Stats Statistics

	// Per-file outcomes in snapshot order
	Operations []FileOperation

	// Errors encountered
	Errors []OrganizeError

	// Overall status
	Status RunStatus
}

// Result returns the run outcome as a success flag and the number of
// files moved. Per-file errors never flip success; only a fatal error
// before or during the scan does.
func (r *RunReport) Result() (bool, int) {
	return r.Status != StatusFailed, r.Stats.FilesMoved
}

// Statistics holds organize run metrics
type Statistics struct {
	// FilesScanned counts eligible files in the snapshot
	FilesScanned int
	// FilesMoved counts files relocated into a category directory
	FilesMoved int
	// FilesSkipped counts files left in place due to collisions
	FilesSkipped int
	// FilesErrored counts files left in place due to I/O errors
	FilesErrored int
	// DirsCreated counts category directories created this run
	DirsCreated int
	// DirsErrored counts category directories that failed to create
	DirsErrored int
}

// RunStatus represents the overall result
type RunStatus string

const (
	// StatusSuccess indicates every eligible file was moved
	StatusSuccess RunStatus = "success"
	// StatusPartial indicates the run completed but some files were skipped
	StatusPartial RunStatus = "partial"
	// StatusFailed indicates the run aborted before organizing
	StatusFailed RunStatus = "failed"
)

// OrganizeError represents an error during an organize run
type OrganizeError struct {
	Name      string
	Message   string
	Timestamp time.Time
}

// ExitCode returns the appropriate exit code for the run status
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}
