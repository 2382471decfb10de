package models

import (
	"time"
)

// OrganizeOperation represents one organize run configuration
type OrganizeOperation struct {
	ID          string
	TargetPath  string
	LogDir      string
	DryRun      bool
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// Validate checks if the operation configuration is valid
func (op *OrganizeOperation) Validate() error {
	if op.TargetPath == "" {
		return &ValidationError{Field: "TargetPath", Message: "target path is required"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
