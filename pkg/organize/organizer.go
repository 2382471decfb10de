package organize

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"time"

	"github.com/sdejongh/sortnorris/pkg/category"
	"github.com/sdejongh/sortnorris/pkg/logging"
	"github.com/sdejongh/sortnorris/pkg/models"
	"github.com/sdejongh/sortnorris/pkg/output"
	"github.com/sdejongh/sortnorris/pkg/storage"
)

// Organizer relocates files in the target directory into category
// subdirectories. One level only; the directory listing is snapshotted
// before any file is moved.
type Organizer struct {
	backend   storage.Backend
	table     category.Table
	formatter output.Formatter
	logger    logging.Logger
	operation *models.OrganizeOperation
	out       io.Writer
}

// NewOrganizer creates a new organizer
func NewOrganizer(
	backend storage.Backend,
	table category.Table,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.OrganizeOperation,
) *Organizer {
	if formatter == nil {
		formatter = output.NewHumanFormatter()
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Organizer{
		backend:   backend,
		table:     table,
		formatter: formatter,
		logger:    logger,
		operation: operation,
		out:       os.Stdout,
	}
}

// SetOutput redirects formatter output (used by tests)
func (o *Organizer) SetOutput(w io.Writer) {
	o.out = w
}

// Run executes the organize operation. Per-file errors are logged and
// skipped; only a failure to read the directory listing is fatal.
func (o *Organizer) Run(ctx context.Context) (*models.RunReport, error) {
	startTime := time.Now()
	report := &models.RunReport{
		OperationID: o.operation.ID,
		TargetPath:  o.operation.TargetPath,
		DryRun:      o.operation.DryRun,
		StartTime:   startTime,
		Status:      models.StatusSuccess,
	}

	o.logger.Info(ctx, "Starting file organization", logging.Fields{
		"operation_id": o.operation.ID,
		"target":       o.operation.TargetPath,
		"dry_run":      o.operation.DryRun,
	})

	o.ensureCategoryDirs(ctx, report)

	entries, err := o.backend.List(ctx, ".")
	if err != nil {
		o.logger.Error(ctx, "Failed to list target directory", err, nil)
		return o.fail(report, startTime), err
	}

	candidates := o.selectCandidates(entries)
	report.Stats.FilesScanned = len(candidates)

	if err := o.formatter.Start(o.out, o.operation.TargetPath, len(candidates)); err != nil {
		return o.fail(report, startTime), err
	}

	for i, entry := range candidates {
		select {
		case <-ctx.Done():
			o.logger.Error(ctx, "Run cancelled", ctx.Err(), nil)
			return o.fail(report, startTime), ctx.Err()
		default:
		}

		o.processFile(ctx, report, entry.Name, i+1)
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
	if report.Stats.FilesErrored > 0 || (!o.operation.DryRun && report.Stats.FilesSkipped > 0) {
		report.Status = models.StatusPartial
	}

	o.logger.Info(ctx, "File organization complete", logging.Fields{
		"files_moved":   report.Stats.FilesMoved,
		"files_skipped": report.Stats.FilesSkipped,
		"files_errored": report.Stats.FilesErrored,
	})

	if err := o.formatter.Complete(report); err != nil {
		return report, err
	}

	return report, nil
}

// ensureCategoryDirs creates any missing category directories. A failed
// creation is logged and skipped; files destined for that category will
// fail per-file later.
func (o *Organizer) ensureCategoryDirs(ctx context.Context, report *models.RunReport) {
	for _, name := range o.table.Names() {
		exists, err := o.backend.Exists(ctx, name)
		if err == nil && exists {
			continue
		}
		if err == nil && o.operation.DryRun {
			continue
		}
		if err == nil {
			err = o.backend.MkdirAll(ctx, name)
		}
		if err != nil {
			report.Stats.DirsErrored++
			report.Errors = append(report.Errors, models.OrganizeError{
				Name:      name,
				Message:   err.Error(),
				Timestamp: time.Now(),
			})
			o.logger.Error(ctx, "Failed to create category directory", err, logging.Fields{
				"category": name,
			})
			o.formatter.Progress(output.ProgressUpdate{
				Type:  output.EventDirError,
				Name:  name,
				Error: err,
			})
			continue
		}

		report.Stats.DirsCreated++
		o.logger.Info(ctx, "Created category directory", logging.Fields{
			"category": name,
		})
		o.formatter.Progress(output.ProgressUpdate{
			Type: output.EventDirCreated,
			Name: name,
		})
	}
}

// selectCandidates filters the directory snapshot down to the files
// eligible for organizing: subdirectories (category directories
// included) and our own run log files are left alone.
func (o *Organizer) selectCandidates(entries []storage.FileInfo) []storage.FileInfo {
	candidates := make([]storage.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		if logging.IsRunLogName(entry.Name) {
			continue
		}
		candidates = append(candidates, entry)
	}
	return candidates
}

// processFile classifies and moves a single file, recording the outcome
func (o *Organizer) processFile(ctx context.Context, report *models.RunReport, name string, current int) {
	cat := o.table.Classify(name)
	fileOp := models.FileOperation{
		Name:     name,
		Category: cat,
	}

	if o.operation.DryRun {
		fileOp.Action = models.ActionSkip
		fileOp.Reason = "dry run"
		report.Stats.FilesSkipped++
		report.Operations = append(report.Operations, fileOp)
		o.logger.Info(ctx, "Would move file", logging.Fields{
			"file":     name,
			"category": cat,
		})
		o.formatter.Progress(output.ProgressUpdate{
			Type:        output.EventFileMoved,
			Name:        name,
			Category:    cat,
			CurrentFile: current,
		})
		return
	}

	err := o.backend.Move(ctx, name, path.Join(cat, name))
	switch {
	case errors.Is(err, storage.ErrDestinationExists):
		fileOp.Action = models.ActionSkip
		fileOp.Reason = "destination exists"
		fileOp.Error = err
		report.Stats.FilesSkipped++
		o.logger.Warn(ctx, "File already exists in destination", logging.Fields{
			"file":     name,
			"category": cat,
		})
		o.formatter.Progress(output.ProgressUpdate{
			Type:        output.EventFileSkipped,
			Name:        name,
			Category:    cat,
			CurrentFile: current,
		})

	case err != nil:
		fileOp.Action = models.ActionSkip
		fileOp.Reason = "move failed"
		fileOp.Error = err
		report.Stats.FilesErrored++
		report.Errors = append(report.Errors, models.OrganizeError{
			Name:      name,
			Message:   err.Error(),
			Timestamp: time.Now(),
		})
		o.logger.Error(ctx, "Failed to move file", err, logging.Fields{
			"file":     name,
			"category": cat,
		})
		o.formatter.Progress(output.ProgressUpdate{
			Type:        output.EventFileError,
			Name:        name,
			Category:    cat,
			CurrentFile: current,
			Error:       err,
		})

	default:
		fileOp.Action = models.ActionMove
		report.Stats.FilesMoved++
		o.logger.Info(ctx, "Moved file", logging.Fields{
			"file":     name,
			"category": cat,
		})
		o.formatter.Progress(output.ProgressUpdate{
			Type:        output.EventFileMoved,
			Name:        name,
			Category:    cat,
			CurrentFile: current,
		})
	}

	report.Operations = append(report.Operations, fileOp)
}

// fail finalizes a report for a fatal error
func (o *Organizer) fail(report *models.RunReport, startTime time.Time) *models.RunReport {
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(startTime)
	report.Status = models.StatusFailed
	return report
}
