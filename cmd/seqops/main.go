package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/openfga/seqops/cmd"
	"github.com/openfga/seqops/cmd/run"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCommand()

	runCmd := run.NewRunCommand()
	rootCmd.AddCommand(runCmd)

	whereCmd := cmd.NewWhereCommand()
	rootCmd.AddCommand(whereCmd)

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
