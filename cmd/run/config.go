package run

import (
	"errors"
	"fmt"
	"slices"

	"github.com/openfga/seqops/internal/queries"
	"github.com/openfga/seqops/internal/report"
)

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"none", "debug", "info", "warn", "error"}
)

// LogConfig controls the logger built for a run.
type LogConfig struct {
	// Format is the log format, either 'text' or 'json'.
	Format string

	// Level is the minimum level logged, or 'none' to disable logging.
	Level string
}

// OutputConfig controls how query results are rendered to stdout.
type OutputConfig struct {
	// Format is one of 'text', 'json' or 'yaml'.
	Format string
}

// Config defines the configuration of a query catalog run.
type Config struct {
	// Sections restricts the run to the named sections. Empty runs every section.
	Sections []string

	Log    LogConfig
	Output OutputConfig
}

// DefaultConfig returns the configuration used when no flag, env variable or
// config file overrides a value.
func DefaultConfig() *Config {
	return &Config{
		Sections: []string{},
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		Output: OutputConfig{
			Format: report.FormatText,
		},
	}
}

// Verify checks that every value in cfg is one the run can act on.
func (cfg *Config) Verify() error {
	var errs []error

	if !slices.Contains(logFormats, cfg.Log.Format) {
		errs = append(errs, fmt.Errorf("config 'log.format' must be one of %v, got %q", logFormats, cfg.Log.Format))
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("config 'log.level' must be one of %v, got %q", logLevels, cfg.Log.Level))
	}

	if !slices.Contains(report.Formats, cfg.Output.Format) {
		errs = append(errs, fmt.Errorf("config 'output.format' must be one of %v, got %q", report.Formats, cfg.Output.Format))
	}

	if _, err := queries.Lookup(cfg.Sections...); err != nil {
		errs = append(errs, fmt.Errorf("config 'sections': %w", err))
	}

	return errors.Join(errs...)
}
