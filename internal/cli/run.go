package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sdejongh/sortnorris/pkg/config"
	"github.com/sdejongh/sortnorris/pkg/logging"
	"github.com/sdejongh/sortnorris/pkg/organize"
	"github.com/sdejongh/sortnorris/pkg/output"
)

// RunFlags holds run command flags
type RunFlags struct {
	LogDir string
	DryRun bool
	Output string
	// Logging flags
	LogFormat  string
	LogLevel   string
	NoLogFile  bool
}

var runFlags RunFlags

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Organize files in a directory by their types",
		Long: `Scan the target directory and move each file into a subdirectory
named after the category derived from its extension. Category
directories are created as needed and every action is logged to a
per-run log file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runOrganize,
	}

	cmd.Flags().StringVar(&runFlags.LogDir, "log-dir", "", "directory to save log files (default: current directory)")
	cmd.Flags().BoolVar(&runFlags.DryRun, "dry-run", false, "classify and report without moving anything")
	cmd.Flags().StringVarP(&runFlags.Output, "output", "o", "", "output format: human, json")

	// Logging flags
	cmd.Flags().StringVar(&runFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.Flags().StringVar(&runFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&runFlags.NoLogFile, "no-log-file", false, "disable the per-run log file")

	return cmd
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	// Validate target path syntax; existence is checked by the organizer
	if err := validateTarget(target); err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	if err := applyFlagsToConfig(cfg); err != nil {
		return err
	}

	// Category table from config (built-in default unless overridden)
	table := cfg.CategoryTable()
	if err := table.Validate(); err != nil {
		return fmt.Errorf("invalid category table: %w", err)
	}

	// Create organize operation
	operation := createOperation(target, cfg)

	// Create logger
	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// Create output formatter
	var formatter output.Formatter
	switch cfg.Output.Format {
	case "json":
		formatter = output.NewJSONFormatter()
	default:
		if cfg.Output.Progress {
			formatter = output.NewProgressFormatter()
		} else {
			formatter = output.NewHumanFormatter()
		}
	}

	// Run the organizer
	report, err := organize.OrganizeDirectory(ctx, operation, table, formatter, logger)
	if err != nil {
		if !cfg.Output.Quiet {
			fmt.Println("\nFile organization completed with errors. Check the log file for details.")
		}
		return fmt.Errorf("organize failed: %w", err)
	}

	// Final status line
	if !cfg.Output.Quiet && formatter.Name() != "json" {
		success, count := report.Result()
		switch {
		case !success:
			fmt.Println("\nFile organization completed with errors. Check the log file for details.")
		case count == 0:
			fmt.Println("\nNo files were processed. The directory may be empty or already organized.")
		default:
			fmt.Println("\nFile organization completed successfully!")
		}
	}

	// Exit with appropriate code
	os.Exit(report.Status.ExitCode())
	return nil
}

// createLogger creates the per-run file logger based on configuration
func createLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	if cfg.Organize.LogDir != "" {
		if err := os.MkdirAll(cfg.Organize.LogDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	var format logging.Format
	switch cfg.Logging.Format {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	loggerConfig := logging.FileLoggerConfig{
		Path:   logging.RunLogPath(cfg.Organize.LogDir, time.Now()),
		Format: format,
		Level:  logging.ParseLevel(cfg.Logging.Level),
	}

	return logging.NewFileLogger(loggerConfig)
}
