package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/sortnorris/internal/platform"
	"github.com/sdejongh/sortnorris/pkg/config"
	"github.com/sdejongh/sortnorris/pkg/models"
)

// validateTarget checks the target path syntax. Whether the path exists
// and is a directory is the organizer's fatal check, not the CLI's.
func validateTarget(target string) error {
	if err := platform.ValidatePath(target); err != nil {
		return err
	}
	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config) error {
	if runFlags.LogDir != "" {
		cfg.Organize.LogDir = runFlags.LogDir
	}

	if runFlags.DryRun {
		cfg.Organize.DryRun = true
	}

	if runFlags.Output != "" {
		cfg.Output.Format = runFlags.Output
	}

	if runFlags.LogFormat != "" {
		cfg.Logging.Format = runFlags.LogFormat
	}

	if runFlags.LogLevel != "" {
		cfg.Logging.Level = runFlags.LogLevel
	}

	if runFlags.NoLogFile {
		cfg.Logging.Enabled = false
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Enable progress in verbose mode
	if globalFlags.Verbose {
		cfg.Output.Progress = true
	}

	// Flag values go through the same validation as the config file
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// createOperation creates an organize operation from configuration
func createOperation(target string, cfg *config.Config) *models.OrganizeOperation {
	return &models.OrganizeOperation{
		ID:         uuid.New().String(),
		TargetPath: platform.NormalizePath(target),
		LogDir:     cfg.Organize.LogDir,
		DryRun:     cfg.Organize.DryRun,
		CreatedAt:  time.Now(),
	}
}
