package organize

import (
	"context"
	"time"

	"github.com/sdejongh/sortnorris/pkg/category"
	"github.com/sdejongh/sortnorris/pkg/logging"
	"github.com/sdejongh/sortnorris/pkg/models"
	"github.com/sdejongh/sortnorris/pkg/output"
	"github.com/sdejongh/sortnorris/pkg/storage"
)

// OrganizeDirectory validates the target, builds a local backend and
// runs the organizer. An invalid target directory is fatal: the
// returned report carries StatusFailed with zero files moved and no
// category directories are created.
func OrganizeDirectory(
	ctx context.Context,
	operation *models.OrganizeOperation,
	table category.Table,
	formatter output.Formatter,
	logger logging.Logger,
) (*models.RunReport, error) {
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	report := &models.RunReport{
		OperationID: operation.ID,
		TargetPath:  operation.TargetPath,
		DryRun:      operation.DryRun,
		StartTime:   time.Now(),
		Status:      models.StatusFailed,
	}

	if err := operation.Validate(); err != nil {
		logger.Error(ctx, "Invalid operation", err, nil)
		return finalize(report), err
	}

	if err := table.Validate(); err != nil {
		logger.Error(ctx, "Invalid category table", err, nil)
		return finalize(report), err
	}

	backend, err := storage.NewLocal(operation.TargetPath)
	if err != nil {
		logger.Error(ctx, "Invalid target directory", err, logging.Fields{
			"target": operation.TargetPath,
		})
		return finalize(report), err
	}
	defer backend.Close()

	organizer := NewOrganizer(backend, table, formatter, logger, operation)
	return organizer.Run(ctx)
}

func finalize(report *models.RunReport) *models.RunReport {
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
	return report
}
