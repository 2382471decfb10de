package config

import (
	"github.com/sdejongh/sortnorris/pkg/category"
	"github.com/sdejongh/sortnorris/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Organize   OrganizeConfig   `yaml:"organize"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Categories []CategoryConfig `yaml:"categories"`
}

// OrganizeConfig holds organize-related settings
type OrganizeConfig struct {
	LogDir string `yaml:"log_dir"`
	DryRun bool   `yaml:"dry_run"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bar
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
}

// CategoryConfig describes one category override entry
type CategoryConfig struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Organize: OrganizeConfig{
			LogDir: "",
			DryRun: false,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: false,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Format:  "text",
			Level:   "info",
		},
		Categories: nil,
	}
}

// CategoryTable returns the configured category table, or the built-in
// default when no overrides are present.
func (c *Config) CategoryTable() category.Table {
	if len(c.Categories) == 0 {
		return category.Default()
	}

	table := make(category.Table, 0, len(c.Categories))
	for _, cc := range c.Categories {
		table = append(table, category.Category{
			Name:       cc.Name,
			Extensions: cc.Extensions,
		})
	}
	return table
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	if len(c.Categories) > 0 {
		if err := c.CategoryTable().Validate(); err != nil {
			return &models.ValidationError{
				Field:   "categories",
				Message: err.Error(),
			}
		}
	}

	return nil
}
