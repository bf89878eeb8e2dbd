// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with SEQOPS, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SEQOPS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/seqops", "$HOME/.seqops", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	return &cobra.Command{
		Use:   "seqops",
		Short: "Query-style sequence operators over small in-memory collections",
		Long: `Query-style sequence operators over small in-memory collections.

seqops runs a catalog of numbered example queries (restriction, projection, aggregation,
ordering, set operations, quantifiers, partitioning and grouping) over a built-in sample
dataset and prints the results.`,
		SilenceUsage: true,
	}
}
