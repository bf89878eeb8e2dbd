// Package run contains the command that runs the query catalog.
package run

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/internal/queries"
	"github.com/openfga/seqops/internal/report"
	"github.com/openfga/seqops/pkg/logger"
)

func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the query catalog",
		Long:  "Run the query catalog against the sample dataset and print the results to stdout.",
		RunE:  run,
		Args:  cobra.NoArgs,
	}

	defaultConfig := DefaultConfig()
	flags := cmd.Flags()

	sections := make([]string, 0, len(queries.Sections()))
	for _, s := range queries.Sections() {
		sections = append(sections, string(s))
	}

	flags.StringSlice("sections", defaultConfig.Sections, fmt.Sprintf("a comma-separated list of sections to run (default all). Allowed values: %s", strings.Join(sections, ", ")))

	flags.String("output-format", defaultConfig.Output.Format, fmt.Sprintf("the format results are written in. Allowed values: %s", strings.Join(report.Formats, ", ")))

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use")

	cmd.PreRun = bindRunFlagsFunc(flags)

	return cmd
}

// ReadConfig returns the run configuration based on the values provided in the 'config.yaml' file.
// The 'config.yaml' file is loaded from '/etc/seqops', '$HOME/.seqops', or the current working directory. If no configuration
// file is present, the default values are returned.
func ReadConfig() (*Config, error) {
	config := DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func run(cmd *cobra.Command, _ []string) error {
	config, err := ReadConfig()
	if err != nil {
		return err
	}

	if err := config.Verify(); err != nil {
		return err
	}

	log, err := logger.NewLogger(config.Log.Format, config.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	qs, err := queries.Lookup(config.Sections...)
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(config.Output.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	runID, err := report.Run(cmd.Context(), log, renderer, catalog.Default(), qs)
	if err != nil {
		log.Error("run failed", zap.String("run_id", runID.String()), zap.Error(err))
		return err
	}

	return nil
}
