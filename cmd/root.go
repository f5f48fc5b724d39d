package cmd

import (
	"fmt"
	"os"

	"registry-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it starts the server, so `registry-server 9090` works.
var RootCmd = &cobra.Command{
	Use:   "registry-server [port]",
	Short: "Component registry file server",
	Long: `Registry Server serves a component registry (an index plus one JSON manifest
per component) over HTTP for package-installer clients such as the shadcn CLI.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runStart,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 timestamps for a CLI error
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
