package run

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/openfga/seqops/cmd/util"
)

// bindRunFlagsFunc binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindRunFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(command *cobra.Command, args []string) {
		util.MustBindPFlag("sections", flags.Lookup("sections"))
		util.MustBindEnv("sections", "SEQOPS_SECTIONS")

		util.MustBindPFlag("output.format", flags.Lookup("output-format"))
		util.MustBindEnv("output.format", "SEQOPS_OUTPUT_FORMAT")

		util.MustBindPFlag("log.format", flags.Lookup("log-format"))
		util.MustBindEnv("log.format", "SEQOPS_LOG_FORMAT")

		util.MustBindPFlag("log.level", flags.Lookup("log-level"))
		util.MustBindEnv("log.level", "SEQOPS_LOG_LEVEL")
	}
}
